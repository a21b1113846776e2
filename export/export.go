// Package export renders batches of reports to disk in parallel.
package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/amonks/songs/data"
	"github.com/amonks/songs/logging"
	"github.com/amonks/songs/ranking"
	"github.com/amonks/songs/render"
	"github.com/amonks/songs/report"
	"golang.org/x/sync/errgroup"
)

// The kinds of report an export can include.
const (
	Genres  = "genres"
	Artists = "artists"
	Top5    = "top5"
)

var Kinds = []string{Genres, Artists, Top5}

type Options struct {
	Dir       string
	Format    render.Format
	ChartSize render.Size
	Workers   int

	Weights     ranking.Weights
	Metric      data.Metric
	ArtistLimit int
}

// A Job builds one report.
type Job struct {
	Name  string
	Build func(ctx context.Context, s report.Store) (*report.Report, error)
}

// Jobs lists the reports of each kind across yr: one genre report per year,
// one artist ranking and one top-5 table.
func Jobs(kinds []string, yr data.YearRange, opts Options) []Job {
	var jobs []Job
	for _, kind := range kinds {
		switch kind {
		case Genres:
			for _, year := range yr.Years() {
				jobs = append(jobs, Job{
					Name: fmt.Sprintf("genres-%d", year),
					Build: func(ctx context.Context, s report.Store) (*report.Report, error) {
						return report.Genres(ctx, s, year)
					},
				})
			}
		case Artists:
			jobs = append(jobs, Job{
				Name: fmt.Sprintf("artists-%s-%s", opts.Metric, yr),
				Build: func(ctx context.Context, s report.Store) (*report.Report, error) {
					return report.Artists(ctx, s, yr, opts.Metric, opts.ArtistLimit)
				},
			})
		case Top5:
			jobs = append(jobs, Job{
				Name: fmt.Sprintf("top5-%s", yr),
				Build: func(ctx context.Context, s report.Store) (*report.Report, error) {
					return report.Top5(ctx, s, yr, opts.Weights)
				},
			})
		}
	}
	return jobs
}

// Run builds every job, at most opts.Workers at once, writing each
// report's text and charts into opts.Dir. It returns the files written,
// sorted. The first failure cancels the jobs that haven't started.
func Run(ctx context.Context, s report.Store, jobs []Job, opts Options) ([]string, error) {
	if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("error creating export directory '%s': %w", opts.Dir, err)
	}

	var (
		mu    sync.Mutex
		files []string
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, opts.Workers))
	for _, job := range jobs {
		job := job
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			written, err := write(ctx, s, job, opts)
			if err != nil {
				return fmt.Errorf("error exporting %s: %w", job.Name, err)
			}
			logging.Debug().Str("job", job.Name).Int("files", len(written)).Msg("exported")

			mu.Lock()
			defer mu.Unlock()
			files = append(files, written...)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}

func write(ctx context.Context, s report.Store, job Job, opts Options) ([]string, error) {
	r, err := job.Build(ctx, s)
	if err != nil {
		return nil, err
	}

	path := filepath.Join(opts.Dir, job.Name+".txt")
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	if err := r.WriteText(f); err != nil {
		f.Close()
		return nil, err
	}
	if err := f.Close(); err != nil {
		return nil, err
	}
	if r.Warning != "" {
		return []string{path}, nil
	}

	r.Resize(opts.ChartSize)
	charts, err := r.WriteCharts(filepath.Join(opts.Dir, job.Name), opts.Format)
	if err != nil {
		return nil, err
	}
	return append([]string{path}, charts...), nil
}
