package data

// A SongGenre represents a many-to-many relationship between songs and
// genres.
type SongGenre struct {
	SongID  int64
	GenreID int64
}
