package data

// Genres holds the names listed in the csv's genre column, like "pop" or
// "Dance/Electronic".
//
// Genres have many songs via the association table song_genres.
type Genre struct {
	ID   int64
	Name string
}
