package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/amonks/songs/config"
	"github.com/amonks/songs/ranking"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "songs.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

// chdir changes the working directory for the duration of the test
// (stand-in for testing.T.Chdir, which needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestDefaultIsValid(t *testing.T) {
	assert.NoError(t, config.Default().Validate())
}

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv(config.PathEnv, "")

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
database:
  path: /tmp/other.db
filter:
  min_popularity: 70
ranking:
  popularity: 0.5
charts:
  format: svg
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/other.db", cfg.Database.Path)
	assert.Equal(t, 70, cfg.Filter.MinPopularity)
	assert.Equal(t, 0.33, cfg.Filter.MinSpeechiness, "unset keys keep their defaults")
	assert.Equal(t, 0.5, cfg.Ranking.Popularity)
	assert.Equal(t, "svg", cfg.Charts.Format)
	assert.Equal(t, "localhost:8080", cfg.Server.Addr)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "database:\n  path: from-file.db\n")
	t.Setenv("SONGS_DATABASE_PATH", "from-env.db")
	t.Setenv("SONGS_RANKING_MIN_DURATION", "90")
	t.Setenv("SONGS_EXPORT_WORKERS", "2")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env.db", cfg.Database.Path)
	assert.Equal(t, 90.0, cfg.Ranking.MinDuration)
	assert.Equal(t, 2, cfg.Export.Workers)
}

func TestLoadPathFromEnv(t *testing.T) {
	path := writeConfig(t, "server:\n  addr: 127.0.0.1:9999\n")
	t.Setenv(config.PathEnv, path)

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9999", cfg.Server.Addr)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadInvalid(t *testing.T) {
	for name, body := range map[string]string{
		"format":     "charts:\n  format: gif\n",
		"workers":    "export:\n  workers: 0\n",
		"popularity": "filter:\n  min_popularity: 101\n",
		"speech":     "filter:\n  min_speechiness: 0.7\n",
		"log level":  "logging:\n  level: loud\n",
		"database":   "database:\n  path: \"\"\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := config.Load(writeConfig(t, body))
			assert.Error(t, err)
		})
	}
}

func TestLoadInvalidWeights(t *testing.T) {
	_, err := config.Load(writeConfig(t, "ranking:\n  song: 1.5\n"))
	assert.ErrorIs(t, err, ranking.ErrInvalidWeight)
}
