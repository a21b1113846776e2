package data

import (
	"errors"
	"fmt"
)

// The dataset only covers these years, inclusive.
const (
	MinYear = 1998
	MaxYear = 2020
)

var (
	ErrYearOutOfRange = fmt.Errorf("year must be between %d-%d", MinYear, MaxYear)
	ErrSameYear       = errors.New("start and end year cannot be the same")
)

// ValidYear reports whether the dataset can contain songs from year.
func ValidYear(year int) bool {
	return year >= MinYear && year <= MaxYear
}

// A YearRange is an inclusive span of years.
type YearRange struct {
	From, To int
}

// NewYearRange returns the range between the two years, swapping them if
// they're given in reverse.
func NewYearRange(a, b int) YearRange {
	if a > b {
		a, b = b, a
	}
	return YearRange{From: a, To: b}
}

// FullRange covers the whole dataset.
func FullRange() YearRange {
	return YearRange{From: MinYear, To: MaxYear}
}

// Validate checks that both ends of the range lie within the dataset.
func (yr YearRange) Validate() error {
	if !ValidYear(yr.From) || !ValidYear(yr.To) {
		return fmt.Errorf("%d-%d: %w", yr.From, yr.To, ErrYearOutOfRange)
	}
	if yr.From > yr.To {
		return fmt.Errorf("start year %d is after end year %d", yr.From, yr.To)
	}
	return nil
}

func (yr YearRange) Contains(year int) bool {
	return year >= yr.From && year <= yr.To
}

// Years lists every year in the range, in order.
func (yr YearRange) Years() []int {
	if yr.To < yr.From {
		return nil
	}
	years := make([]int, 0, yr.To-yr.From+1)
	for y := yr.From; y <= yr.To; y++ {
		years = append(years, y)
	}
	return years
}

func (yr YearRange) String() string {
	return fmt.Sprintf("%d-%d", yr.From, yr.To)
}
