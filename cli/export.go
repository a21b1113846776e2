package main

import (
	"context"
	"fmt"

	"github.com/amonks/songs/config"
	"github.com/amonks/songs/data"
	"github.com/amonks/songs/db"
	"github.com/amonks/songs/export"
	"github.com/amonks/songs/render"
	"github.com/amonks/songs/setflag"
	"github.com/amonks/songs/subcmd"
)

func exportCmd(ctx context.Context, cfg *config.Config, args []string) error {
	subcmd := subcmd.New("export", "write reports and charts for a range of years to a directory")
	reports := setflag.New(export.Kinds...)
	subcmd.Var(reports, "reports", "comma separated reports to export (default all): genres, artists, top5")
	var (
		from    = subcmd.Int("from", data.MinYear, "first year")
		to      = subcmd.Int("to", data.MaxYear, "last year")
		dir     = subcmd.String("dir", cfg.Export.Dir, "output directory")
		format  = subcmd.String("format", cfg.Charts.Format, "chart format: png or svg")
		metric  = subcmd.String("metric", string(data.MetricPopularity), "artist ranking metric")
		workers = subcmd.Int("workers", cfg.Export.Workers, "reports to render at once")
	)
	if err := subcmd.Parse(args); err != nil {
		return fmt.Errorf("flag parsing err: %w", err)
	}

	yr, err := yearRange(*from, *to)
	if err != nil {
		return err
	}
	f, err := render.ParseFormat(*format)
	if err != nil {
		return err
	}
	m, err := data.ParseMetric(*metric)
	if err != nil {
		return err
	}
	kinds := export.Kinds
	if !reports.Empty() {
		kinds = reports.List()
	}

	opts := export.Options{
		Dir:         *dir,
		Format:      f,
		ChartSize:   render.Size{Width: cfg.Charts.Width, Height: cfg.Charts.Height},
		Workers:     *workers,
		Weights:     cfg.Ranking,
		Metric:      m,
		ArtistLimit: 10,
	}
	db, err := db.OpenExisting(cfg.Database.Path)
	if err != nil {
		return err
	}
	defer db.Close()

	files, err := export.Run(ctx, db, export.Jobs(kinds, yr, opts), opts)
	if err != nil {
		return err
	}
	for _, file := range files {
		fmt.Println(file)
	}
	return nil
}
