package ranking

import (
	"errors"
	"fmt"
	"strings"
)

// Weights tune the rank score. Every weight must lie strictly between 0 and
// 1. Songs whose average duration falls outside [MinDuration, MaxDuration]
// seconds are penalized.
type Weights struct {
	Song         float64 `koanf:"song"`
	Popularity   float64 `koanf:"popularity"`
	Danceability float64 `koanf:"danceability"`
	Explicit     float64 `koanf:"explicit"`
	Duration     float64 `koanf:"duration"`

	MinDuration float64 `koanf:"min_duration"`
	MaxDuration float64 `koanf:"max_duration"`
}

var ErrInvalidWeight = errors.New("weights must be between 0 and 1")

func DefaultWeights() Weights {
	return Weights{
		Song:         0.2,
		Popularity:   0.6,
		Danceability: 0.4,
		Explicit:     0.15,
		Duration:     0.15,
		MinDuration:  120,
		MaxDuration:  270,
	}
}

func (w Weights) Validate() error {
	var invalid []string
	for _, weight := range []struct {
		name  string
		value float64
	}{
		{"song", w.Song},
		{"popularity", w.Popularity},
		{"danceability", w.Danceability},
		{"explicit", w.Explicit},
		{"duration", w.Duration},
	} {
		if weight.value <= 0 || weight.value >= 1 {
			invalid = append(invalid, fmt.Sprintf("%s=%g", weight.name, weight.value))
		}
	}
	if len(invalid) > 0 {
		return fmt.Errorf("%s: %w", strings.Join(invalid, ", "), ErrInvalidWeight)
	}
	if w.MinDuration >= w.MaxDuration {
		return fmt.Errorf("min duration %gs must be below max duration %gs", w.MinDuration, w.MaxDuration)
	}
	return nil
}
