// Package menu is an interactive, line-oriented front end to the reports.
package menu

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/amonks/songs/data"
	"github.com/amonks/songs/logging"
	"github.com/amonks/songs/ranking"
	"github.com/amonks/songs/render"
	"github.com/amonks/songs/report"
)

type Options struct {
	Weights ranking.Weights

	// ArtistLimit is how many artists the artist ranking shows.
	ArtistLimit int

	// If ChartDir is set, each report's charts are written there.
	ChartDir    string
	ChartFormat render.Format
}

type Menu struct {
	store report.Store
	opts  Options
	in    *bufio.Scanner
	out   io.Writer
}

func New(store report.Store, opts Options, in io.Reader, out io.Writer) *Menu {
	if opts.ArtistLimit <= 0 {
		opts.ArtistLimit = 10
	}
	if opts.ChartFormat == "" {
		opts.ChartFormat = render.PNG
	}
	return &Menu{store: store, opts: opts, in: bufio.NewScanner(in), out: out}
}

var choices = strings.TrimSpace(`
What would you like to see?
  1) Genre statistics for a year
  2) Top artists over a range of years
  3) Top 5 artists over a range of years
  4) An artist's popularity in each genre
  5) Dataset summary
  q) Quit
`)

// Run shows the menu until the user quits or the input ends.
func (m *Menu) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		m.println("\n" + choices)
		choice, err := m.readLine("> ")
		if err == io.EOF {
			return nil
		} else if err != nil {
			return err
		}

		var r *report.Report
		switch strings.ToLower(choice) {
		case "1", "genres":
			r, err = m.genres(ctx)
		case "2", "artists":
			r, err = m.artists(ctx)
		case "3", "top5":
			r, err = m.top5(ctx)
		case "4", "compare":
			r, err = m.compare(ctx)
		case "5", "summary":
			r, err = report.Summary(ctx, m.store)
		case "q", "quit", "exit":
			return nil
		default:
			m.printf("'%s' isn't an option. Try again.\n", choice)
			continue
		}
		if err == io.EOF {
			return nil
		} else if err != nil {
			return err
		}

		if err := m.show(r); err != nil {
			return err
		}
	}
}

func (m *Menu) show(r *report.Report) error {
	m.println("")
	if err := r.WriteText(m.out); err != nil {
		return err
	}
	if m.opts.ChartDir == "" || r.Warning != "" {
		return nil
	}
	paths, err := r.WriteCharts(m.opts.ChartDir, m.opts.ChartFormat)
	if err != nil {
		return err
	}
	for _, path := range paths {
		logging.Debug().Str("path", path).Msg("wrote chart")
		m.printf("chart: %s\n", path)
	}
	return nil
}

func (m *Menu) genres(ctx context.Context) (*report.Report, error) {
	year, err := m.Year("Enter a year between 1998 and 2020:")
	if err != nil {
		return nil, err
	}
	return report.Genres(ctx, m.store, year)
}

func (m *Menu) artists(ctx context.Context) (*report.Report, error) {
	yr, err := m.YearRange()
	if err != nil {
		return nil, err
	}
	metric, err := m.Metric()
	if err != nil {
		return nil, err
	}
	return report.Artists(ctx, m.store, yr, metric, m.opts.ArtistLimit)
}

func (m *Menu) top5(ctx context.Context) (*report.Report, error) {
	yr, err := m.YearRange()
	if err != nil {
		return nil, err
	}
	return report.Top5(ctx, m.store, yr, m.opts.Weights)
}

func (m *Menu) compare(ctx context.Context) (*report.Report, error) {
	artist, err := m.Artist()
	if err != nil {
		return nil, err
	}
	return report.Compare(ctx, m.store, artist)
}

// Year asks until it gets a year the dataset covers.
func (m *Menu) Year(prompt string) (int, error) {
	for {
		line, err := m.readLine(prompt + "\n")
		if err != nil {
			return 0, err
		}
		year, err := strconv.Atoi(line)
		if err != nil {
			m.println("Year must be a whole number. Try again.")
			continue
		}
		if !data.ValidYear(year) {
			m.printf("Year must be between %d-%d. Try again.\n", data.MinYear, data.MaxYear)
			continue
		}
		return year, nil
	}
}

// YearRange asks for a start and end year until they differ. Years given
// in reverse are swapped.
func (m *Menu) YearRange() (data.YearRange, error) {
	for {
		from, err := m.Year("Enter a start year between 1998 and 2020:")
		if err != nil {
			return data.YearRange{}, err
		}
		to, err := m.Year("Enter an end year between 1998 and 2020:")
		if err != nil {
			return data.YearRange{}, err
		}
		if from == to {
			m.println("Start and end year cannot be the same. Try again.")
			continue
		}
		yr := data.NewYearRange(from, to)
		if from > to {
			m.printf("Start year is after end year; showing %s.\n", yr)
		}
		return yr, nil
	}
}

// Artist asks until it gets a non-empty name.
func (m *Menu) Artist() (string, error) {
	for {
		artist, err := m.readLine("Enter an artist you would like to analyse\n")
		if err != nil {
			return "", err
		}
		if artist != "" {
			return artist, nil
		}
		m.println("Artist cannot be empty. Please try again.")
	}
}

// Metric asks what to rank artists by. An empty answer means popularity.
func (m *Menu) Metric() (data.Metric, error) {
	for {
		line, err := m.readLine("Rank by popularity, danceability or songs? [popularity]\n")
		if err != nil {
			return "", err
		}
		if line == "" {
			return data.MetricPopularity, nil
		}
		metric, err := data.ParseMetric(line)
		if err != nil {
			m.printf("'%s' isn't a metric. Try again.\n", line)
			continue
		}
		return metric, nil
	}
}

// readLine returns the next line of input, trimmed, or io.EOF.
func (m *Menu) readLine(prompt string) (string, error) {
	fmt.Fprint(m.out, prompt)
	if !m.in.Scan() {
		if err := m.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(m.in.Text()), nil
}

func (m *Menu) println(s string) {
	fmt.Fprintln(m.out, s)
}

func (m *Menu) printf(format string, args ...any) {
	fmt.Fprintf(m.out, format, args...)
}
