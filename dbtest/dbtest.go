// Package dbtest provides a small, fully-known dataset and a helper that
// loads it into a temporary database, for tests in other packages.
package dbtest

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/amonks/songs/data"
	"github.com/amonks/songs/db"
	"github.com/stretchr/testify/require"
)

// Fixture returns six songs by three artists across 2000 and 2001. "Delta"
// is only ever featured, so it has no songs of its own.
//
//	title  artist     year  pop  dance  dur  explicit  genres
//	A1     Alpha      2000  80   0.80   200  no        pop
//	A2     Alpha      2000  60   0.60   100  yes       pop, hip hop
//	A3     Alpha      2001  70   0.70   220  no        pop
//	B1     Beta Band  2000  90   0.50   240  no        rock
//	B2     Beta Band  2001  50   0.95   180  yes       hip hop
//	G1     Gamma      2001  75   0.40   300  no        pop, rock
func Fixture() *data.Dataset {
	return &data.Dataset{
		Artists: []string{"Alpha", "Beta Band", "Delta", "Gamma"},
		Genres:  []string{"hip hop", "pop", "rock"},
		Songs: []data.Song{
			{Title: "A1", Artist: "Alpha", Year: 2000, Popularity: 80, Danceability: 0.8, Speechiness: 0.4, Duration: 200, Genres: []string{"pop"}},
			{Title: "A2", Artist: "Alpha", Year: 2000, Popularity: 60, Danceability: 0.6, Speechiness: 0.4, Duration: 100, Explicit: true, Genres: []string{"pop", "hip hop"}},
			{Title: "A3", Artist: "Alpha", Year: 2001, Popularity: 70, Danceability: 0.7, Speechiness: 0.4, Duration: 220, Genres: []string{"pop"}},
			{Title: "B1", Artist: "Beta Band", Year: 2000, Popularity: 90, Danceability: 0.5, Speechiness: 0.5, Duration: 240, Genres: []string{"rock"}},
			{Title: "B2", Artist: "Beta Band", Year: 2001, Popularity: 50, Danceability: 0.95, Speechiness: 0.5, Duration: 180, Explicit: true, Genres: []string{"hip hop"}},
			{Title: "G1", Artist: "Gamma", Year: 2001, Popularity: 75, Danceability: 0.4, Speechiness: 0.6, Duration: 300, Genres: []string{"pop", "rock"}},
		},
	}
}

// Path returns a database file path inside a fresh temporary directory.
func Path(t testing.TB) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "songs.db")
}

// Open creates a temporary database loaded with Fixture. It's closed when
// the test ends.
func Open(t testing.TB) *db.DB {
	t.Helper()
	return OpenAt(t, Path(t))
}

// OpenAt is like Open, but at a chosen path.
func OpenAt(t testing.TB, filename string) *db.DB {
	t.Helper()
	d, err := db.Open(filename)
	require.NoError(t, err)
	t.Cleanup(func() { d.Close() })

	_, err = d.Load(context.Background(), Fixture())
	require.NoError(t, err)
	return d
}
