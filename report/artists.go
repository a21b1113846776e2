package report

import (
	"context"
	"fmt"

	"github.com/amonks/songs/data"
	"github.com/amonks/songs/render"
)

// Artists ranks the artists with songs in yr by metric.
func Artists(ctx context.Context, s Store, yr data.YearRange, metric data.Metric, limit int) (*Report, error) {
	title := fmt.Sprintf("Top Artists by %s between %s", metric.Label(), yr)
	if limit > 0 {
		title = fmt.Sprintf("Top %d Artists by %s between %s", limit, metric.Label(), yr)
	}

	stats, err := s.ArtistStats(ctx, yr, metric, limit)
	if err != nil {
		return nil, err
	}
	if len(stats) == 0 {
		return warning(title, "No songs found between %s. Try another range.", yr), nil
	}

	table := &render.Table{
		Title: title,
		Columns: []string{
			"Rank",
			"Artist",
			"Song Count",
			"Explicit Songs",
			"Average Popularity",
			"Average Danceability",
			"Average Duration (s)",
		},
	}
	labels := make([]string, len(stats))
	values := make([]float64, len(stats))
	for i, stat := range stats {
		labels[i] = stat.Artist
		values[i] = render.Round(metric.Of(stat))
		table.Rows = append(table.Rows, []render.Cell{
			render.Int(int64(i + 1)),
			render.Text(stat.Artist),
			render.Int(stat.SongCount),
			render.Int(stat.ExplicitCount),
			render.Number(stat.AvgPopularity),
			render.Number(stat.AvgDanceability),
			render.Number(stat.AvgDuration),
		})
	}

	return &Report{
		Title: title,
		Table: table,
		Charts: []render.Chart{
			&render.BarChart{
				Title:  title,
				Labels: labels,
				Series: []render.Series{{Name: metric.Label(), Values: values}},
			},
		},
	}, nil
}
