package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/amonks/songs/config"
	"github.com/amonks/songs/data"
	"github.com/amonks/songs/db"
	"github.com/amonks/songs/ingest"
	"github.com/amonks/songs/logging"
	"github.com/amonks/songs/subcmd"
)

var errDatabaseExists = errors.New("database already exists; use -force to rebuild it")

func load(ctx context.Context, cfg *config.Config, args []string) error {
	subcmd := subcmd.New("load", "clean the songs csv and load it into the database")
	var (
		csv   = subcmd.String("csv", cfg.Dataset.Path, "songs csv file")
		force = subcmd.Bool("force", false, "replace an existing database")
	)
	if err := subcmd.Parse(args); err != nil {
		return fmt.Errorf("flag parsing err: %w", err)
	}

	filename := cfg.Database.Path
	if _, err := os.Stat(filename); err == nil && !*force {
		fmt.Fprintf(os.Stderr, "%s: %s\n", filename, errDatabaseExists)
		return nil
	}

	ds, err := ingest.Run(*csv, cfg.Filter)
	if err != nil {
		return err
	}
	logging.Info().
		Str("csv", *csv).
		Int("songs", len(ds.Songs)).
		Int("artists", len(ds.Artists)).
		Int("genres", len(ds.Genres)).
		Msg("cleaned dataset")

	// Build next to the target so the rename can't cross filesystems.
	tmp, err := os.CreateTemp(filepath.Dir(filename), ".songs-*.db")
	if err != nil {
		return fmt.Errorf("error creating temp database: %w", err)
	}
	tmp.Close()
	defer os.Remove(tmp.Name())

	res, err := build(ctx, tmp.Name(), ds)
	if err != nil {
		return err
	}
	if err := os.Rename(tmp.Name(), filename); err != nil {
		return fmt.Errorf("error replacing database '%s': %w", filename, err)
	}
	printLoadResult(filename, res)
	return nil
}

func build(ctx context.Context, filename string, ds *data.Dataset) (*db.LoadResult, error) {
	db, err := db.Open(filename)
	if err != nil {
		return nil, err
	}
	defer db.Close()
	return db.Load(ctx, ds)
}
