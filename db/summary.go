package db

import (
	"context"
	"fmt"

	"github.com/amonks/songs/data"
)

func (db *DB) CountSongs(ctx context.Context) (int64, error) {
	return db.count(ctx, "songs")
}

func (db *DB) CountArtists(ctx context.Context) (int64, error) {
	return db.count(ctx, "artists")
}

func (db *DB) CountGenres(ctx context.Context) (int64, error) {
	return db.count(ctx, "genres")
}

func (db *DB) count(ctx context.Context, table string) (int64, error) {
	var count int64
	if err := db.WithContext(ctx).
		Table(table).
		Count(&count).
		Error; err != nil {
		return 0, fmt.Errorf("error counting %s: %w", table, err)
	}
	return count, nil
}

// Summary describes what's in the database: row counts, the span of years
// covered, and how many songs each year has.
func (db *DB) Summary(ctx context.Context) (*data.Summary, error) {
	var (
		summary data.Summary
		err     error
	)
	if summary.Songs, err = db.CountSongs(ctx); err != nil {
		return nil, err
	}
	if summary.Artists, err = db.CountArtists(ctx); err != nil {
		return nil, err
	}
	if summary.Genres, err = db.CountGenres(ctx); err != nil {
		return nil, err
	}

	if err := db.WithContext(ctx).
		Table("songs").
		Where("explicit = ?", true).
		Count(&summary.ExplicitSongs).
		Error; err != nil {
		return nil, fmt.Errorf("error counting explicit songs: %w", err)
	}

	var span struct {
		FirstYear, LastYear *int64
	}
	if err := db.WithContext(ctx).
		Table("songs").
		Select("min(year) as first_year", "max(year) as last_year").
		Scan(&span).
		Error; err != nil {
		return nil, fmt.Errorf("error fetching year span: %w", err)
	}
	if span.FirstYear != nil && span.LastYear != nil {
		summary.FirstYear, summary.LastYear = *span.FirstYear, *span.LastYear
	}

	summary.PerYear = []data.YearCount{}
	if err := db.WithContext(ctx).
		Table("songs").
		Select("year", "count(id) as songs").
		Group("year").
		Order("year asc").
		Scan(&summary.PerYear).
		Error; err != nil {
		return nil, fmt.Errorf("error counting songs per year: %w", err)
	}

	return &summary, nil
}
