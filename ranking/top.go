// Package ranking scores artists year by year and picks the best of them
// across a range of years.
package ranking

import (
	"math"
	"sort"

	"github.com/amonks/songs/data"
)

// A Row is one artist's scores across a Table's years. A NaN score means
// the artist released no songs that year.
type Row struct {
	Artist  string
	Scores  []float64
	Average float64
}

// A Table ranks the best artists across a range of years.
type Table struct {
	Range data.YearRange
	Years []int
	Rows  []Row

	// YearAverages holds the mean of each year's column over Rows, or NaN
	// if none of them released songs that year.
	YearAverages []float64
}

// Top scores every artist-year in stats, pivots the scores by year across
// the whole range, and keeps the n artists with the highest average score.
// An artist's average only counts the years in which it released songs.
// Ties are broken by name so the result is deterministic.
func Top(stats []data.ArtistYearStat, yr data.YearRange, w Weights, n int) *Table {
	years := yr.Years()
	column := make(map[int]int, len(years))
	for i, year := range years {
		column[year] = i
	}

	byArtist := map[string]*Row{}
	for _, stat := range stats {
		col, ok := column[int(stat.Year)]
		if !ok {
			continue
		}
		row, ok := byArtist[stat.Artist]
		if !ok {
			row = &Row{Artist: stat.Artist, Scores: nanSlice(len(years))}
			byArtist[stat.Artist] = row
		}
		row.Scores[col] = w.Score(stat)
	}

	rows := make([]Row, 0, len(byArtist))
	for _, row := range byArtist {
		row.Average = mean(row.Scores)
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Average != rows[j].Average {
			return rows[i].Average > rows[j].Average
		}
		return rows[i].Artist < rows[j].Artist
	})
	if n > 0 && len(rows) > n {
		rows = rows[:n]
	}

	averages := make([]float64, len(years))
	for col := range years {
		column := make([]float64, len(rows))
		for i, row := range rows {
			column[i] = row.Scores[col]
		}
		averages[col] = mean(column)
	}

	return &Table{Range: yr, Years: years, Rows: rows, YearAverages: averages}
}

// Best returns the highest score in each year's column, or NaN.
func (t *Table) Best() []float64 {
	best := nanSlice(len(t.Years))
	for _, row := range t.Rows {
		for i, score := range row.Scores {
			if math.IsNaN(score) {
				continue
			}
			if math.IsNaN(best[i]) || score > best[i] {
				best[i] = score
			}
		}
	}
	return best
}

// mean averages the non-NaN values, returning NaN if there are none.
func mean(values []float64) float64 {
	var sum float64
	var count int
	for _, v := range values {
		if math.IsNaN(v) {
			continue
		}
		sum += v
		count++
	}
	if count == 0 {
		return math.NaN()
	}
	return sum / float64(count)
}

func nanSlice(n int) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = math.NaN()
	}
	return s
}
