package db

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/amonks/songs/data"
	"gorm.io/gorm"
)

// FindArtist resolves user input to an artist, ignoring case and
// whitespace.
func (db *DB) FindArtist(ctx context.Context, input string) (*data.Artist, error) {
	name := strings.TrimSpace(input)
	if name == "" {
		return nil, fmt.Errorf("no artist name")
	}

	var artist data.Artist
	if err := db.WithContext(ctx).
		Table("artists").
		Where("search_name = ?", data.SearchName(name)).
		First(&artist).
		Error; errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("'%s': %w", name, data.ErrArtistNotFound)
	} else if err != nil {
		return nil, fmt.Errorf("error getting artist '%s': %w", name, err)
	}
	return &artist, nil
}
