package ingest

import (
	"fmt"

	"github.com/amonks/songs/data"
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// A Filter holds the thresholds a row must meet to be kept. Bounds are
// exclusive.
type Filter struct {
	MinPopularity   int     `koanf:"min_popularity" validate:"gte=0,lte=100"`
	MinSpeechiness  float64 `koanf:"min_speechiness" validate:"gte=0,lte=1"`
	MaxSpeechiness  float64 `koanf:"max_speechiness" validate:"gte=0,lte=1,gtfield=MinSpeechiness"`
	MinDanceability float64 `koanf:"min_danceability" validate:"gte=0,lte=1"`
}

// DefaultFilter keeps reasonably popular, danceable songs with a moderate
// amount of speech.
func DefaultFilter() Filter {
	return Filter{
		MinPopularity:   50,
		MinSpeechiness:  0.33,
		MaxSpeechiness:  0.66,
		MinDanceability: 0.2,
	}
}

// Clean keeps the rows that pass the filter and fall within the years the
// dataset covers.
func Clean(df dataframe.DataFrame, filter Filter) (dataframe.DataFrame, error) {
	if err := requireColumns(df, "popularity", "speechiness", "danceability", "year"); err != nil {
		return df, err
	}

	cleaned := df.FilterAggregation(dataframe.And,
		dataframe.F{Colname: "popularity", Comparator: series.Greater, Comparando: filter.MinPopularity},
		dataframe.F{Colname: "speechiness", Comparator: series.Greater, Comparando: filter.MinSpeechiness},
		dataframe.F{Colname: "speechiness", Comparator: series.Less, Comparando: filter.MaxSpeechiness},
		dataframe.F{Colname: "danceability", Comparator: series.Greater, Comparando: filter.MinDanceability},
		dataframe.F{Colname: "year", Comparator: series.GreaterEq, Comparando: data.MinYear},
		dataframe.F{Colname: "year", Comparator: series.LessEq, Comparando: data.MaxYear},
	)
	if cleaned.Err != nil {
		return cleaned, fmt.Errorf("error filtering rows: %w", cleaned.Err)
	}
	return cleaned, nil
}
