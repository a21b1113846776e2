package report

import (
	"context"
	"fmt"

	"github.com/amonks/songs/data"
	"github.com/amonks/songs/render"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var humanPrinter = message.NewPrinter(language.English)

// Summary describes what's in the database, year by year.
func Summary(ctx context.Context, s Store) (*Report, error) {
	const title = "Dataset Summary"

	summary, err := s.Summary(ctx)
	if err != nil {
		return nil, err
	}
	if summary.Songs == 0 {
		return warning(title, "The database is empty. Run `songs load` first."), nil
	}

	table := &render.Table{
		Title:   title,
		Columns: []string{"Year", "Songs"},
		Note: humanPrinter.Sprintf("%d songs (%d explicit) by %d artists across %d genres, %s.",
			summary.Songs, summary.ExplicitSongs, summary.Artists, summary.Genres,
			data.NewYearRange(int(summary.FirstYear), int(summary.LastYear)).String()),
	}
	labels := make([]string, len(summary.PerYear))
	counts := make([]float64, len(summary.PerYear))
	for i, yc := range summary.PerYear {
		labels[i] = fmt.Sprint(yc.Year)
		counts[i] = float64(yc.Songs)
		table.Rows = append(table.Rows, []render.Cell{
			render.Text(labels[i]),
			render.Text(humanPrinter.Sprintf("%d", yc.Songs)),
		})
	}

	return &Report{
		Title: title,
		Table: table,
		Charts: []render.Chart{
			&render.BarChart{
				Title:  "Songs per Year",
				Labels: labels,
				Series: []render.Series{{Name: "Songs", Values: counts}},
			},
		},
	}, nil
}
