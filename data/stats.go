package data

// GenreStat aggregates the songs of one genre within one year.
type GenreStat struct {
	Genre           string
	SongCount       int64
	AvgPopularity   float64
	AvgDanceability float64

	// Seconds.
	AvgDuration float64
}

// ArtistStat aggregates an artist's songs across a year range.
type ArtistStat struct {
	Artist          string
	SongCount       int64
	ExplicitCount   int64
	AvgPopularity   float64
	AvgDanceability float64
	AvgDuration     float64
}

// ArtistYearStat aggregates an artist's songs within a single year. It's
// the input to the weighted top-5 ranking.
type ArtistYearStat struct {
	Artist          string
	Year            int64
	SongCount       int64
	ExplicitCount   int64
	AvgPopularity   float64
	AvgDanceability float64
	AvgDuration     float64
}

// GenrePopularity compares one artist's average popularity within a genre
// to the genre's overall average popularity. ArtistPopularity is 0 when the
// artist has no songs in the genre.
type GenrePopularity struct {
	Genre             string
	ArtistPopularity  float64
	OverallPopularity float64
}

// YearCount is the number of songs released in a year.
type YearCount struct {
	Year  int64
	Songs int64
}

// Summary describes the contents of a loaded database.
type Summary struct {
	Songs, Artists, Genres int64
	ExplicitSongs          int64
	FirstYear, LastYear    int64
	PerYear                []YearCount
}
