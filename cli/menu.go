package main

import (
	"context"
	"fmt"
	"os"

	"github.com/amonks/songs/config"
	"github.com/amonks/songs/db"
	"github.com/amonks/songs/menu"
	"github.com/amonks/songs/render"
	"github.com/amonks/songs/subcmd"
)

func menuCmd(ctx context.Context, cfg *config.Config, args []string) error {
	subcmd := subcmd.New("menu", "explore the dataset interactively")
	charts, format := chartFlags(subcmd, cfg)
	if err := subcmd.Parse(args); err != nil {
		return fmt.Errorf("flag parsing err: %w", err)
	}

	opts := menu.Options{Weights: cfg.Ranking}
	if *charts {
		f, err := render.ParseFormat(*format)
		if err != nil {
			return err
		}
		opts.ChartDir, opts.ChartFormat = cfg.Charts.Dir, f
	}
	db, err := db.OpenExisting(cfg.Database.Path)
	if err != nil {
		return err
	}
	defer db.Close()

	return menu.New(db, opts, os.Stdin, os.Stdout).Run(ctx)
}
