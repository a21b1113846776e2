// Package report runs the dataset's queries and shapes their results into
// tables and charts.
package report

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/amonks/songs/data"
	"github.com/amonks/songs/render"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Store is the subset of *db.DB that reports read from.
type Store interface {
	GenreStats(ctx context.Context, year int) ([]data.GenreStat, error)
	ArtistStats(ctx context.Context, yr data.YearRange, metric data.Metric, limit int) ([]data.ArtistStat, error)
	ArtistYearStats(ctx context.Context, yr data.YearRange) ([]data.ArtistYearStat, error)
	FindArtist(ctx context.Context, input string) (*data.Artist, error)
	GenrePopularity(ctx context.Context, artistID int64) ([]data.GenrePopularity, error)
	Summary(ctx context.Context) (*data.Summary, error)
}

// A Report is a table and its charts. A report with a Warning has nothing
// else to show: the query ran but found nothing worth drawing.
type Report struct {
	Title   string
	Warning string
	Table   *render.Table
	Charts  []render.Chart
}

func warning(title, format string, args ...any) *Report {
	return &Report{Title: title, Warning: fmt.Sprintf(format, args...)}
}

func (r *Report) WriteText(w io.Writer) error {
	if r.Warning != "" {
		_, err := fmt.Fprintln(w, r.Warning)
		return err
	}
	return r.Table.WriteText(w)
}

var reportTemplate = template.Must(template.New("report").Parse(`<article class="report">
{{- if .Warning}}
<p class="warning">{{.Warning}}</p>
{{- else}}
{{.Table}}
{{- range .Images}}
<figure><img alt="{{.Alt}}" src="{{.Src}}"></figure>
{{- end}}
{{- end}}
</article>
`))

type image struct {
	Alt string
	Src template.URL
}

// WriteHTML writes the report as an HTML fragment with its charts inlined
// as PNG data URLs.
func (r *Report) WriteHTML(w io.Writer) error {
	page := struct {
		Warning string
		Table   template.HTML
		Images  []image
	}{Warning: r.Warning}

	if r.Warning == "" {
		var buf bytes.Buffer
		if err := r.Table.WriteHTML(&buf); err != nil {
			return fmt.Errorf("error rendering table '%s': %w", r.Title, err)
		}
		page.Table = template.HTML(buf.String())

		for _, chart := range r.Charts {
			buf.Reset()
			if err := chart.Render(render.PNG, &buf); err != nil {
				return fmt.Errorf("error rendering chart '%s': %w", chart.Name(), err)
			}
			src := "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
			page.Images = append(page.Images, image{Alt: chart.Name(), Src: template.URL(src)})
		}
	}

	return reportTemplate.Execute(w, page)
}

// Resize sets the size of every chart.
func (r *Report) Resize(size render.Size) {
	for _, chart := range r.Charts {
		chart.Resize(size)
	}
}

// WriteCharts renders each chart into its own file in dir, named after the
// chart's title, and returns the paths it wrote.
func (r *Report) WriteCharts(dir string, format render.Format) ([]string, error) {
	if len(r.Charts) == 0 {
		return nil, nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("error creating chart directory '%s': %w", dir, err)
	}

	var paths []string
	for _, chart := range r.Charts {
		path := filepath.Join(dir, Slug(chart.Name())+format.Ext())
		if err := writeChart(path, chart, format); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func writeChart(path string, chart render.Chart, format render.Format) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating chart file '%s': %w", path, err)
	}
	if err := chart.Render(format, f); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("error rendering chart '%s': %w", chart.Name(), err)
	}
	return f.Close()
}

// Slug turns a title into a file name: lowercase letters and digits with
// single dashes between words.
func Slug(title string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(title) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			dash = false
			b.WriteRune(r)
			continue
		}
		dash = true
	}
	return b.String()
}

// titleCase capitalizes each word, the way genre and artist names are
// displayed.
func titleCase(s string) string {
	return cases.Title(language.English).String(s)
}

// IsWarning reports whether err is one of the expected, user-facing
// failures a report can run into, as opposed to a broken database.
func IsWarning(err error) bool {
	return errors.Is(err, data.ErrYearOutOfRange) ||
		errors.Is(err, data.ErrSameYear) ||
		errors.Is(err, data.ErrUnknownMetric)
}
