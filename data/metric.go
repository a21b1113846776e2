package data

import (
	"errors"
	"fmt"
	"strings"
)

// A Metric is something artists can be ranked by.
type Metric string

const (
	MetricPopularity   Metric = "popularity"
	MetricDanceability Metric = "danceability"
	MetricSongs        Metric = "songs"
)

var ErrUnknownMetric = errors.New("unknown metric")

// Metrics lists the supported metrics in display order.
var Metrics = []Metric{MetricPopularity, MetricDanceability, MetricSongs}

func ParseMetric(s string) (Metric, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, m := range Metrics {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("'%s': %w", s, ErrUnknownMetric)
}

// Label is the column heading used when displaying the metric.
func (m Metric) Label() string {
	switch m {
	case MetricPopularity:
		return "Average Popularity"
	case MetricDanceability:
		return "Average Danceability"
	case MetricSongs:
		return "Song Count"
	default:
		return string(m)
	}
}

// Of returns the value of the metric for the given artist.
func (m Metric) Of(stat ArtistStat) float64 {
	switch m {
	case MetricDanceability:
		return stat.AvgDanceability
	case MetricSongs:
		return float64(stat.SongCount)
	default:
		return stat.AvgPopularity
	}
}
