package export_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/amonks/songs/data"
	"github.com/amonks/songs/dbtest"
	"github.com/amonks/songs/export"
	"github.com/amonks/songs/ranking"
	"github.com/amonks/songs/render"
	"github.com/amonks/songs/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func options(t *testing.T) export.Options {
	return export.Options{
		Dir:         filepath.Join(t.TempDir(), "out"),
		Format:      render.SVG,
		ChartSize:   render.Size{Width: 640, Height: 320},
		Workers:     3,
		Weights:     ranking.DefaultWeights(),
		Metric:      data.MetricPopularity,
		ArtistLimit: 5,
	}
}

func TestJobs(t *testing.T) {
	yr := data.YearRange{From: 2000, To: 2002}
	jobs := export.Jobs(export.Kinds, yr, options(t))

	var names []string
	for _, job := range jobs {
		names = append(names, job.Name)
	}
	assert.Equal(t, []string{
		"genres-2000", "genres-2001", "genres-2002",
		"artists-popularity-2000-2002",
		"top5-2000-2002",
	}, names)

	assert.Len(t, export.Jobs([]string{export.Top5}, yr, options(t)), 1)
}

func TestRun(t *testing.T) {
	opts := options(t)
	yr := data.YearRange{From: 2000, To: 2002}

	files, err := export.Run(context.Background(), dbtest.Open(t), export.Jobs(export.Kinds, yr, opts), opts)
	require.NoError(t, err)

	rel := make([]string, len(files))
	for i, f := range files {
		r, err := filepath.Rel(opts.Dir, f)
		require.NoError(t, err)
		rel[i] = r
	}
	assert.Equal(t, []string{
		"artists-popularity-2000-2002.txt",
		filepath.Join("artists-popularity-2000-2002", "top-5-artists-by-average-popularity-between-2000-2002.svg"),
		"genres-2000.txt",
		filepath.Join("genres-2000", "average-song-duration-s-for-genres-in-2000.svg"),
		filepath.Join("genres-2000", "genre-distribution-for-2000.svg"),
		"genres-2001.txt",
		filepath.Join("genres-2001", "average-song-duration-s-for-genres-in-2001.svg"),
		filepath.Join("genres-2001", "genre-distribution-for-2001.svg"),
		"genres-2002.txt",
		"top5-2000-2002.txt",
		filepath.Join("top5-2000-2002", "top-5-artists-between-2000-2002.svg"),
	}, rel)

	b, err := os.ReadFile(filepath.Join(opts.Dir, "genres-2002.txt"))
	require.NoError(t, err)
	assert.Equal(t, "No results found for 2002. Try another year.\n", string(b))
}

func TestRunStopsOnError(t *testing.T) {
	opts := options(t)
	boom := errors.New("boom")
	jobs := []export.Job{{
		Name: "broken",
		Build: func(context.Context, report.Store) (*report.Report, error) {
			return nil, boom
		},
	}}
	_, err := export.Run(context.Background(), dbtest.Open(t), jobs, opts)
	assert.ErrorIs(t, err, boom)
	assert.ErrorContains(t, err, "broken")
}

func TestRunCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	opts := options(t)
	_, err := export.Run(ctx, dbtest.Open(t), export.Jobs(export.Kinds, data.FullRange(), opts), opts)
	assert.ErrorIs(t, err, context.Canceled)
}
