package report

import (
	"context"
	"fmt"
	"sort"

	"github.com/amonks/songs/render"
)

// Genres summarizes each genre's songs in year, longest songs first.
func Genres(ctx context.Context, s Store, year int) (*Report, error) {
	title := fmt.Sprintf("Genre Statistics for %d", year)

	stats, err := s.GenreStats(ctx, year)
	if err != nil {
		return nil, err
	}
	if len(stats) == 0 {
		return warning(title, "No results found for %d. Try another year.", year), nil
	}

	// Stats arrive ordered by name, which breaks ties.
	sort.SliceStable(stats, func(i, j int) bool {
		return render.Round(stats[i].AvgDuration) > render.Round(stats[j].AvgDuration)
	})

	table := &render.Table{
		Title: title,
		Columns: []string{
			"Genre",
			"Song Count",
			"Average Popularity",
			"Average Danceability",
			"Average Duration (s)",
		},
	}
	labels := make([]string, len(stats))
	durations := make([]float64, len(stats))
	counts := make([]float64, len(stats))
	for i, stat := range stats {
		name := titleCase(stat.Genre)
		labels[i] = name
		durations[i] = render.Round(stat.AvgDuration)
		counts[i] = float64(stat.SongCount)
		table.Rows = append(table.Rows, []render.Cell{
			render.Text(name),
			render.Int(stat.SongCount),
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
				Title:  fmt.Sprintf("Average Song Duration (s) for Genres in %d", year),
				Labels: labels,
				Series: []render.Series{{Name: "Duration (s)", Values: durations}},
			},
			&render.PieChart{
				Title:  fmt.Sprintf("Genre Distribution for %d", year),
				Labels: labels,
				Values: counts,
			},
		},
	}, nil
}
