package setflag_test

import (
	"flag"
	"io"
	"testing"

	"github.com/amonks/songs/setflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSet(t *testing.T) {
	sf := setflag.New("genres", "artists", "top5")
	assert.True(t, sf.Empty())

	require.NoError(t, sf.Set("top5, Genres"))
	require.NoError(t, sf.Set("genres"))
	assert.Equal(t, []string{"genres", "top5"}, sf.List())
	assert.Equal(t, "genres,top5", sf.String())
	assert.True(t, sf.Has("top5"))
	assert.False(t, sf.Has("artists"))
}

func TestSetUnsupported(t *testing.T) {
	sf := setflag.New("genres", "artists")
	err := sf.Set("genres,compare")
	assert.ErrorContains(t, err, "unsupported value 'compare'")
	assert.ErrorContains(t, err, "artists, genres")
}

func TestAsFlag(t *testing.T) {
	sf := setflag.New("genres", "artists", "top5")
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Var(sf, "reports", "reports to export")

	require.NoError(t, fs.Parse([]string{"-reports", "artists", "-reports", "top5"}))
	assert.Equal(t, []string{"artists", "top5"}, sf.List())

	assert.Error(t, fs.Parse([]string{"-reports", "nope"}))
}
