package report

import (
	"context"
	"errors"
	"fmt"

	"github.com/amonks/songs/data"
	"github.com/amonks/songs/render"
)

// Compare sets an artist's average popularity in each genre against the
// genre's overall average. Genres the artist hasn't released songs in
// show a popularity of zero.
func Compare(ctx context.Context, s Store, name string) (*Report, error) {
	artist, err := s.FindArtist(ctx, name)
	if errors.Is(err, data.ErrArtistNotFound) {
		return warning(name, "%s cannot be found in the database.", name), nil
	} else if err != nil {
		return nil, err
	}

	title := fmt.Sprintf("%s Popularity vs Overall Popularity", titleCase(artist.Name))

	rows, err := s.GenrePopularity(ctx, artist.ID)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return warning(title, "No data has been found for %s.", artist.Name), nil
	}

	table := &render.Table{
		Title:   title,
		Columns: []string{"Genre", "Artist Popularity", "Overall Popularity"},
	}
	labels := make([]string, len(rows))
	overall := make([]float64, len(rows))
	mine := make([]float64, len(rows))
	for i, row := range rows {
		labels[i] = titleCase(row.Genre)
		mine[i] = render.Round(row.ArtistPopularity)
		overall[i] = render.Round(row.OverallPopularity)

		cell := render.Number(row.ArtistPopularity)
		switch {
		case mine[i] > overall[i]:
			cell.Mark = render.High
		case mine[i] < overall[i]:
			cell.Mark = render.Low
		}
		table.Rows = append(table.Rows, []render.Cell{
			render.Text(labels[i]),
			cell,
			render.Number(row.OverallPopularity),
		})
	}

	return &Report{
		Title: title,
		Table: table,
		Charts: []render.Chart{
			&render.BarChart{
				Title:  title,
				Labels: labels,
				Series: []render.Series{
					{Name: "Overall", Values: overall},
					{Name: artist.Name, Values: mine},
				},
			},
		},
	}, nil
}
