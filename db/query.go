package db

import (
	"context"
	"fmt"

	"github.com/amonks/songs/data"
)

// Every query filters on songs.year, so years outside the dataset simply
// return no rows.

// GenreStats aggregates the songs released in year by genre, ordered by
// genre name. A song with several genres counts toward each of them.
func (db *DB) GenreStats(ctx context.Context, year int) ([]data.GenreStat, error) {
	stats := []data.GenreStat{}
	if err := db.WithContext(ctx).
		Table("songs").
		Select(
			"genres.name as genre",
			"count(songs.id) as song_count",
			"avg(songs.popularity) as avg_popularity",
			"avg(songs.danceability) as avg_danceability",
			"avg(songs.duration) as avg_duration",
		).
		Joins("join song_genres on song_genres.song_id = songs.id").
		Joins("join genres on genres.id = song_genres.genre_id").
		Where("songs.year = ?", year).
		Group("genres.name").
		Order("genres.name asc").
		Scan(&stats).
		Error; err != nil {
		return nil, fmt.Errorf("error fetching genre stats for %d: %w", year, err)
	}
	return stats, nil
}

var metricOrder = map[data.Metric]string{
	data.MetricPopularity:   "avg_popularity desc",
	data.MetricDanceability: "avg_danceability desc",
	data.MetricSongs:        "song_count desc",
}

// ArtistStats aggregates each artist's songs across the range, sorted
// descending by metric with ties broken by name. A limit of zero or less
// returns every artist.
func (db *DB) ArtistStats(ctx context.Context, yr data.YearRange, metric data.Metric, limit int) ([]data.ArtistStat, error) {
	order, ok := metricOrder[metric]
	if !ok {
		return nil, fmt.Errorf("'%s': %w", metric, data.ErrUnknownMetric)
	}

	stats := []data.ArtistStat{}
	q := db.WithContext(ctx).
		Table("songs").
		Select(
			"artists.name as artist",
			"count(songs.id) as song_count",
			"sum(case when songs.explicit then 1 else 0 end) as explicit_count",
			"avg(songs.popularity) as avg_popularity",
			"avg(songs.danceability) as avg_danceability",
			"avg(songs.duration) as avg_duration",
		).
		Joins("join artists on artists.id = songs.artist_id").
		Where("songs.year between ? and ?", yr.From, yr.To).
		Group("artists.name").
		Order(order).
		Order("artists.name asc")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Scan(&stats).Error; err != nil {
		return nil, fmt.Errorf("error fetching artist stats for %s: %w", yr, err)
	}
	return stats, nil
}

// ArtistYearStats aggregates each artist's songs per year within the range,
// ordered by artist and year.
func (db *DB) ArtistYearStats(ctx context.Context, yr data.YearRange) ([]data.ArtistYearStat, error) {
	stats := []data.ArtistYearStat{}
	if err := db.WithContext(ctx).
		Table("songs").
		Select(
			"artists.name as artist",
			"songs.year as year",
			"count(songs.id) as song_count",
			"sum(case when songs.explicit then 1 else 0 end) as explicit_count",
			"avg(songs.popularity) as avg_popularity",
			"avg(songs.danceability) as avg_danceability",
			"avg(songs.duration) as avg_duration",
		).
		Joins("join artists on artists.id = songs.artist_id").
		Where("songs.year between ? and ?", yr.From, yr.To).
		Group("artists.name, songs.year").
		Order("artists.name asc, songs.year asc").
		Scan(&stats).
		Error; err != nil {
		return nil, fmt.Errorf("error fetching artist stats by year for %s: %w", yr, err)
	}
	return stats, nil
}

const genrePopularityQuery = `
select
	genres.name as genre,
	coalesce(avg(case when songs.artist_id = ? then songs.popularity end), 0) as artist_popularity,
	avg(songs.popularity) as overall_popularity
from songs
join song_genres on song_genres.song_id = songs.id
join genres on genres.id = song_genres.genre_id
group by genres.name
order by overall_popularity asc, genres.name asc
`

// GenrePopularity compares the artist's average popularity in every genre
// with the genre's overall average popularity, least popular genre first.
func (db *DB) GenrePopularity(ctx context.Context, artistID int64) ([]data.GenrePopularity, error) {
	rows := []data.GenrePopularity{}
	if err := db.WithContext(ctx).
		Raw(genrePopularityQuery, artistID).
		Scan(&rows).
		Error; err != nil {
		return nil, fmt.Errorf("error fetching genre popularity for artist %d: %w", artistID, err)
	}
	return rows, nil
}
