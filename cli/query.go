package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/amonks/songs/config"
	"github.com/amonks/songs/data"
	"github.com/amonks/songs/db"
	"github.com/amonks/songs/report"
	"github.com/amonks/songs/subcmd"
)

func genres(ctx context.Context, cfg *config.Config, args []string) error {
	subcmd := subcmd.New("genres", "show genre statistics for a year")
	var (
		year           = subcmd.Int("year", 0, fmt.Sprintf("year, %d-%d", data.MinYear, data.MaxYear))
		charts, format = chartFlags(subcmd, cfg)
	)
	if err := subcmd.Parse(args); err != nil {
		return fmt.Errorf("flag parsing err: %w", err)
	}
	if *year == 0 {
		subcmd.Usage()
		return errors.New("-year is required")
	}

	db, err := db.OpenExisting(cfg.Database.Path)
	if err != nil {
		return err
	}
	defer db.Close()

	r, err := report.Genres(ctx, db, *year)
	if err != nil {
		return err
	}
	return show(cfg, r, *charts, *format)
}

func artists(ctx context.Context, cfg *config.Config, args []string) error {
	subcmd := subcmd.New("artists", "rank artists over a range of years")
	var (
		from           = subcmd.Int("from", data.MinYear, "first year")
		to             = subcmd.Int("to", data.MaxYear, "last year")
		metric         = subcmd.String("metric", string(data.MetricPopularity), "rank by popularity, danceability or songs")
		count          = subcmd.Int("count", 10, "number of artists to show; 0 for all")
		charts, format = chartFlags(subcmd, cfg)
	)
	if err := subcmd.Parse(args); err != nil {
		return fmt.Errorf("flag parsing err: %w", err)
	}

	yr, err := yearRange(*from, *to)
	if err != nil {
		return err
	}
	m, err := data.ParseMetric(*metric)
	if err != nil {
		return err
	}

	db, err := db.OpenExisting(cfg.Database.Path)
	if err != nil {
		return err
	}
	defer db.Close()

	r, err := report.Artists(ctx, db, yr, m, *count)
	if err != nil {
		return err
	}
	return show(cfg, r, *charts, *format)
}

func top5(ctx context.Context, cfg *config.Config, args []string) error {
	subcmd := subcmd.New("top5", "show the top 5 artists, year by year, by weighted score")
	var (
		from           = subcmd.Int("from", data.MinYear, "first year")
		to             = subcmd.Int("to", data.MaxYear, "last year")
		charts, format = chartFlags(subcmd, cfg)
	)
	if err := subcmd.Parse(args); err != nil {
		return fmt.Errorf("flag parsing err: %w", err)
	}

	yr, err := yearRange(*from, *to)
	if err != nil {
		return err
	}

	db, err := db.OpenExisting(cfg.Database.Path)
	if err != nil {
		return err
	}
	defer db.Close()

	r, err := report.Top5(ctx, db, yr, cfg.Ranking)
	if err != nil {
		return err
	}
	return show(cfg, r, *charts, *format)
}

func compare(ctx context.Context, cfg *config.Config, args []string) error {
	subcmd := subcmd.New("compare", "compare an artist's popularity in each genre with the genre's")
	subcmd.SetArg("artist", "string", "artist name; case and spaces don't matter")
	charts, format := chartFlags(subcmd, cfg)
	if err := subcmd.Parse(args); err != nil {
		return fmt.Errorf("flag parsing err: %w", err)
	}

	db, err := db.OpenExisting(cfg.Database.Path)
	if err != nil {
		return err
	}
	defer db.Close()

	r, err := report.Compare(ctx, db, subcmd.Value())
	if err != nil {
		return err
	}
	return show(cfg, r, *charts, *format)
}

func summary(ctx context.Context, cfg *config.Config, args []string) error {
	subcmd := subcmd.New("summary", "describe what's in the database")
	charts, format := chartFlags(subcmd, cfg)
	if err := subcmd.Parse(args); err != nil {
		return fmt.Errorf("flag parsing err: %w", err)
	}

	db, err := db.OpenExisting(cfg.Database.Path)
	if err != nil {
		return err
	}
	defer db.Close()

	r, err := report.Summary(ctx, db)
	if err != nil {
		return err
	}
	return show(cfg, r, *charts, *format)
}
