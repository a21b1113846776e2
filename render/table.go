// Package render draws query results as text tables, HTML tables and
// charts.
package render

import (
	"math"
	"strconv"
)

// A Mark highlights a cell.
type Mark int

const (
	None Mark = iota

	// High and Low flag a value above or below the one it's compared to.
	High
	Low

	// Missing is a cell with no value, like a year without songs.
	Missing

	// Emphasis picks out the best value in a column.
	Emphasis
)

func (m Mark) String() string {
	switch m {
	case High:
		return "high"
	case Low:
		return "low"
	case Missing:
		return "missing"
	case Emphasis:
		return "emphasis"
	default:
		return ""
	}
}

type Cell struct {
	Text string
	Mark Mark
}

// Text makes an unmarked cell.
func Text(s string) Cell {
	return Cell{Text: s}
}

// Number formats f with two decimal places.
func Number(f float64) Cell {
	return Cell{Text: strconv.FormatFloat(Round(f), 'f', 2, 64)}
}

// Int formats n.
func Int(n int64) Cell {
	return Cell{Text: strconv.FormatInt(n, 10)}
}

// Round rounds f to two decimal places.
func Round(f float64) float64 {
	return math.Round(f*100) / 100
}

type Table struct {
	Title   string
	Note    string
	Columns []string
	Rows    [][]Cell

	// Footer is an optional summary row.
	Footer []Cell
}

func (t *Table) Empty() bool {
	return len(t.Rows) == 0
}
