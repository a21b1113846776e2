package data

// Songs are the rows of the dataset that survive cleaning. Each song has
// exactly one artist, the first one listed in the source csv.
//
// Songs have many genres via the association table song_genres.
type Song struct {
	ID       int64
	Title    string
	ArtistID int64

	// Seconds, rounded from the csv's duration_ms.
	Duration int64
	Explicit bool

	// Always within [MinYear, MaxYear].
	Year int64

	// In the range [0, 100].
	Popularity int64

	// In the range [0, 1].
	Danceability float64
	Speechiness  float64

	Artist string   `gorm:"-"`
	Genres []string `gorm:"-"`
}
