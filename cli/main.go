// songs loads a dataset of popular songs (1998-2020) into a sqlite3
// database and reports on it: genre statistics, artist rankings, a
// weighted top-5 and artist-vs-genre popularity.
//
// see db/schema.sql for info about the database.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/amonks/songs/config"
	"github.com/amonks/songs/data"
	"github.com/amonks/songs/db"
	"github.com/amonks/songs/ingest"
	"github.com/amonks/songs/logging"
	"github.com/amonks/songs/render"
	"github.com/amonks/songs/report"
	"github.com/amonks/songs/sigctx"
	"github.com/amonks/songs/subcmd"
)

func main() {
	err := run()
	if err == nil || errors.Is(err, context.Canceled) || errors.Is(err, flag.ErrHelp) {
		return
	}
	if expected(err) {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	logging.Err(err).Msg("songs failed")
	os.Exit(1)
}

var usage = strings.TrimSpace(`
usage: songs $cmd
valid $cmd are 'load', 'genres', 'artists', 'top5', 'compare', 'summary',
'menu', 'serve', 'export'
for help: songs $cmd -help
`)

func run() error {
	ctx := sigctx.New()

	cfg, err := config.Load("")
	if err != nil {
		return err
	}
	logging.Init(cfg.Logging)

	if len(os.Args) < 2 {
		return errors.New(usage)
	}
	cmd, args := os.Args[1], os.Args[2:]

	var f func(context.Context, *config.Config, []string) error
	switch cmd {
	case "load":
		f = load
	case "genres":
		f = genres
	case "artists":
		f = artists
	case "top5":
		f = top5
	case "compare":
		f = compare
	case "summary":
		f = summary
	case "menu":
		f = menuCmd
	case "serve":
		f = serve
	case "export":
		f = exportCmd
	default:
		return fmt.Errorf("unknown cmd: '%s'\n%s", cmd, usage)
	}
	return f(ctx, cfg, args)
}

// expected reports whether err is a mistake the user can fix, which gets a
// plain message rather than an error log.
func expected(err error) bool {
	switch {
	case errors.Is(err, db.ErrNoDatabase):
		return true
	case errors.Is(err, ingest.ErrFileNotFound),
		errors.Is(err, ingest.ErrUnsupportedFormat),
		errors.Is(err, ingest.ErrMissingColumn):
		return true
	case errors.Is(err, subcmd.ErrMissingArg),
		errors.Is(err, render.ErrUnknownFormat):
		return true
	default:
		return report.IsWarning(err)
	}
}

// chartFlags adds the flags shared by commands that can draw charts.
func chartFlags(sc *subcmd.Subcommand, cfg *config.Config) (charts *bool, format *string) {
	charts = sc.Bool("charts", false, fmt.Sprintf("also write charts into %s", cfg.Charts.Dir))
	format = sc.String("format", cfg.Charts.Format, "chart format: png or svg")
	return charts, format
}

// show prints the report and, if asked, writes its charts.
func show(cfg *config.Config, r *report.Report, charts bool, format string) error {
	if err := r.WriteText(os.Stdout); err != nil {
		return err
	}
	if !charts || r.Warning != "" {
		return nil
	}

	f, err := render.ParseFormat(format)
	if err != nil {
		return err
	}
	r.Resize(render.Size{Width: cfg.Charts.Width, Height: cfg.Charts.Height})
	paths, err := r.WriteCharts(cfg.Charts.Dir, f)
	if err != nil {
		return err
	}
	for _, path := range paths {
		fmt.Printf("chart: %s\n", path)
	}
	return nil
}

// yearRange validates a range given on the command line. Reversed years
// are swapped.
func yearRange(from, to int) (data.YearRange, error) {
	if from == to {
		return data.YearRange{}, data.ErrSameYear
	}
	yr := data.NewYearRange(from, to)
	if yr.From != from {
		logging.Info().Stringer("range", yr).Msg("start year is after end year; swapping")
	}
	return yr, yr.Validate()
}
