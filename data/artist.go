package data

import "errors"

var ErrArtistNotFound = errors.New("artist not found")

// Artists holds every name listed in the csv's artist column, including
// featured artists that don't own any song.
type Artist struct {
	ID   int64
	Name string

	// See SearchName.
	SearchName string
}
