package main

import (
	"context"
	"fmt"

	"github.com/amonks/songs/config"
	"github.com/amonks/songs/db"
	"github.com/amonks/songs/server"
	"github.com/amonks/songs/subcmd"
)

func serve(ctx context.Context, cfg *config.Config, args []string) error {
	subcmd := subcmd.New("serve", "browse the reports in a web browser")
	var (
		addr = subcmd.String("addr", cfg.Server.Addr, "http listen address")
	)
	if err := subcmd.Parse(args); err != nil {
		return fmt.Errorf("flag parsing err: %w", err)
	}

	db, err := db.OpenExisting(cfg.Database.Path)
	if err != nil {
		return err
	}
	defer db.Close()

	fmt.Printf("serving on http://%s\n", *addr)
	return server.Run(ctx, server.New(db, server.Options{Weights: cfg.Ranking}), *addr)
}
