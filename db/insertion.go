package db

import (
	"context"
	"fmt"

	"github.com/amonks/songs/data"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const batchSize = 500

// LoadResult counts the rows written by Load.
type LoadResult struct {
	Artists, Genres, Songs, SongGenres int
}

// Load inserts a cleaned dataset in a single transaction. Artists and genres
// that already exist are reused, so loading is safe against a database
// that already has some names in it.
func (db *DB) Load(ctx context.Context, ds *data.Dataset) (*LoadResult, error) {
	result := &LoadResult{}
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		artists := make([]data.Artist, len(ds.Artists))
		for i, name := range ds.Artists {
			if name == "" {
				return fmt.Errorf("no artist name")
			}
			artists[i] = data.Artist{Name: name, SearchName: data.SearchName(name)}
		}
		if len(artists) > 0 {
			if err := tx.
				Clauses(clause.OnConflict{DoNothing: true}).
				CreateInBatches(&artists, batchSize).
				Error; err != nil {
				return fmt.Errorf("error inserting %d artists: %w", len(artists), err)
			}
		}
		artistIDs, err := idsByName(tx, "artists")
		if err != nil {
			return err
		}
		result.Artists = len(artistIDs)

		genres := make([]data.Genre, len(ds.Genres))
		for i, name := range ds.Genres {
			if name == "" {
				return fmt.Errorf("no genre name")
			}
			genres[i] = data.Genre{Name: name}
		}
		if len(genres) > 0 {
			if err := tx.
				Clauses(clause.OnConflict{DoNothing: true}).
				CreateInBatches(&genres, batchSize).
				Error; err != nil {
				return fmt.Errorf("error inserting %d genres: %w", len(genres), err)
			}
		}
		genreIDs, err := idsByName(tx, "genres")
		if err != nil {
			return err
		}
		result.Genres = len(genreIDs)

		if err := ctx.Err(); err != nil {
			return fmt.Errorf("canceled: %w", err)
		}

		songs := make([]data.Song, len(ds.Songs))
		for i, song := range ds.Songs {
			artistID, ok := artistIDs[song.Artist]
			if !ok {
				return fmt.Errorf("song '%s' has unknown artist '%s'", song.Title, song.Artist)
			}
			song.ID = 0
			song.ArtistID = artistID
			songs[i] = song
		}
		if len(songs) > 0 {
			if err := tx.CreateInBatches(&songs, batchSize).Error; err != nil {
				return fmt.Errorf("error inserting %d songs: %w", len(songs), err)
			}
		}
		result.Songs = len(songs)

		var links []data.SongGenre
		for _, song := range songs {
			for _, genre := range song.Genres {
				genreID, ok := genreIDs[genre]
				if !ok {
					return fmt.Errorf("song '%s' has unknown genre '%s'", song.Title, genre)
				}
				links = append(links, data.SongGenre{SongID: song.ID, GenreID: genreID})
			}
		}
		if len(links) > 0 {
			if err := tx.
				Clauses(clause.OnConflict{DoNothing: true}).
				CreateInBatches(&links, batchSize).
				Error; err != nil {
				return fmt.Errorf("error inserting %d song genres: %w", len(links), err)
			}
		}
		result.SongGenres = len(links)

		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func idsByName(tx *gorm.DB, table string) (map[string]int64, error) {
	var rows []struct {
		ID   int64
		Name string
	}
	if err := tx.
		Table(table).
		Select("id", "name").
		Scan(&rows).
		Error; err != nil {
		return nil, fmt.Errorf("error fetching ids from %s: %w", table, err)
	}
	ids := make(map[string]int64, len(rows))
	for _, row := range rows {
		ids[row.Name] = row.ID
	}
	return ids, nil
}
