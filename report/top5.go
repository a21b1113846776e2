package report

import (
	"context"
	"fmt"
	"math"

	"github.com/amonks/songs/data"
	"github.com/amonks/songs/ranking"
	"github.com/amonks/songs/render"
)

// TopN is how many artists Top5 keeps.
const TopN = 5

const noSongs = "NS"

// Top5 ranks the artists with the best weighted score across yr, year by
// year. Each year's best score is emphasized.
func Top5(ctx context.Context, s Store, yr data.YearRange, w ranking.Weights) (*Report, error) {
	title := fmt.Sprintf("Top %d Artists between %s", TopN, yr)

	stats, err := s.ArtistYearStats(ctx, yr)
	if err != nil {
		return nil, err
	}
	top := ranking.Top(stats, yr, w, TopN)
	if len(top.Rows) == 0 {
		return warning(title, "No songs found between %s. Try another range.", yr), nil
	}

	columns := []string{"Name"}
	for _, year := range top.Years {
		columns = append(columns, fmt.Sprint(year))
	}
	columns = append(columns, "Average")

	table := &render.Table{Title: title, Note: "NS = No Songs", Columns: columns}
	best := top.Best()
	var series []render.Series
	for _, row := range top.Rows {
		cells := []render.Cell{render.Text(row.Artist)}
		for i, score := range row.Scores {
			cell := scoreCell(score)
			if cell.Mark == render.None && render.Round(score) == render.Round(best[i]) {
				cell.Mark = render.Emphasis
			}
			cells = append(cells, cell)
		}
		cells = append(cells, render.Number(row.Average))
		table.Rows = append(table.Rows, cells)
		series = append(series, render.Series{Name: row.Artist, Values: row.Scores})
	}

	table.Footer = []render.Cell{render.Text("Year Average")}
	for _, avg := range top.YearAverages {
		table.Footer = append(table.Footer, scoreCell(avg))
	}
	table.Footer = append(table.Footer, render.Text(""))

	return &Report{
		Title: title,
		Table: table,
		Charts: []render.Chart{
			&render.LineChart{
				Title:  title,
				XName:  "Years",
				YName:  "Rank Value",
				X:      top.Years,
				Series: series,
			},
		},
	}, nil
}

func scoreCell(score float64) render.Cell {
	if math.IsNaN(score) {
		return render.Cell{Text: noSongs, Mark: render.Missing}
	}
	return render.Number(score)
}
