package report_test

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/amonks/songs/data"
	"github.com/amonks/songs/db"
	"github.com/amonks/songs/dbtest"
	"github.com/amonks/songs/ranking"
	"github.com/amonks/songs/render"
	"github.com/amonks/songs/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func texts(row []render.Cell) []string {
	out := make([]string, len(row))
	for i, cell := range row {
		out[i] = cell.Text
	}
	return out
}

func TestGenres(t *testing.T) {
	r, err := report.Genres(context.Background(), dbtest.Open(t), 2000)
	require.NoError(t, err)
	require.Empty(t, r.Warning)

	assert.Equal(t, "Genre Statistics for 2000", r.Table.Title)
	require.Len(t, r.Table.Rows, 3)
	assert.Equal(t, []string{"Rock", "1", "90.00", "0.50", "240.00"}, texts(r.Table.Rows[0]))
	assert.Equal(t, []string{"Pop", "2", "70.00", "0.70", "150.00"}, texts(r.Table.Rows[1]))
	assert.Equal(t, []string{"Hip Hop", "1", "60.00", "0.60", "100.00"}, texts(r.Table.Rows[2]))
	assert.Len(t, r.Charts, 2)
}

func TestGenresNoResults(t *testing.T) {
	for _, year := range []int{1990, 2010, 2077} {
		r, err := report.Genres(context.Background(), dbtest.Open(t), year)
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("No results found for %d. Try another year.", year), r.Warning)
		assert.Nil(t, r.Table)
		assert.Empty(t, r.Charts)
	}
}

func TestArtists(t *testing.T) {
	r, err := report.Artists(context.Background(), dbtest.Open(t), data.YearRange{From: 2000, To: 2001}, data.MetricPopularity, 2)
	require.NoError(t, err)

	assert.Equal(t, "Top 2 Artists by Average Popularity between 2000-2001", r.Title)
	require.Len(t, r.Table.Rows, 2)
	assert.Equal(t, []string{"1", "Gamma", "1", "0", "75.00", "0.40", "300.00"}, texts(r.Table.Rows[0]))
	assert.Equal(t, []string{"2", "Alpha", "3", "1", "70.00", "0.70", "173.33"}, texts(r.Table.Rows[1]))
	assert.Len(t, r.Charts, 1)
}

func TestArtistsUnknownMetric(t *testing.T) {
	_, err := report.Artists(context.Background(), dbtest.Open(t), data.FullRange(), data.Metric("tempo"), 5)
	assert.ErrorIs(t, err, data.ErrUnknownMetric)
	assert.True(t, report.IsWarning(err))
}

func TestTop5(t *testing.T) {
	yr := data.YearRange{From: 2000, To: 2001}
	r, err := report.Top5(context.Background(), dbtest.Open(t), yr, ranking.DefaultWeights())
	require.NoError(t, err)

	table := r.Table
	assert.Equal(t, "Top 5 Artists between 2000-2001", table.Title)
	assert.Equal(t, "NS = No Songs", table.Note)
	assert.Equal(t, []string{"Name", "2000", "2001", "Average"}, table.Columns)
	require.Len(t, table.Rows, 3)

	assert.Equal(t, []string{"Alpha", "78.26", "75.60", "76.93"}, texts(table.Rows[0]))
	assert.Equal(t, []string{"Beta Band", "78.00", "68.76", "73.38"}, texts(table.Rows[1]))
	assert.Equal(t, []string{"Gamma", "NS", "61.32", "61.32"}, texts(table.Rows[2]))

	assert.Equal(t, render.Emphasis, table.Rows[0][1].Mark)
	assert.Equal(t, render.Emphasis, table.Rows[0][2].Mark)
	assert.Equal(t, render.None, table.Rows[1][1].Mark)
	assert.Equal(t, render.Missing, table.Rows[2][1].Mark)

	assert.Equal(t, []string{"Year Average", "78.13", "68.56", ""}, texts(table.Footer))
	assert.Len(t, r.Charts, 1)
}

func TestTop5Deterministic(t *testing.T) {
	d := dbtest.Open(t)
	yr := data.FullRange()

	first, err := report.Top5(context.Background(), d, yr, ranking.DefaultWeights())
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := report.Top5(context.Background(), d, yr, ranking.DefaultWeights())
		require.NoError(t, err)
		assert.Equal(t, first.Table, again.Table)
	}
}

func TestTop5NoSongs(t *testing.T) {
	r, err := report.Top5(context.Background(), dbtest.Open(t), data.YearRange{From: 2010, To: 2012}, ranking.DefaultWeights())
	require.NoError(t, err)
	assert.Equal(t, "No songs found between 2010-2012. Try another range.", r.Warning)
}

func TestCompare(t *testing.T) {
	r, err := report.Compare(context.Background(), dbtest.Open(t), " ALPHA ")
	require.NoError(t, err)

	assert.Equal(t, "Alpha Popularity vs Overall Popularity", r.Title)
	rows := r.Table.Rows
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Hip Hop", "60.00", "55.00"}, texts(rows[0]))
	assert.Equal(t, render.High, rows[0][1].Mark)
	assert.Equal(t, []string{"Pop", "70.00", "71.25"}, texts(rows[1]))
	assert.Equal(t, render.Low, rows[1][1].Mark)
	assert.Equal(t, []string{"Rock", "0.00", "82.50"}, texts(rows[2]))
	assert.Equal(t, render.Low, rows[2][1].Mark)
}

func TestCompareUnknownArtist(t *testing.T) {
	r, err := report.Compare(context.Background(), dbtest.Open(t), "Nobody")
	require.NoError(t, err)
	assert.Equal(t, "Nobody cannot be found in the database.", r.Warning)
}

// missingArtists is a Store that knows no artists.
type missingArtists struct{ report.Store }

func (missingArtists) FindArtist(ctx context.Context, input string) (*data.Artist, error) {
	return nil, fmt.Errorf("'%s': %w", input, data.ErrArtistNotFound)
}

func TestCompareUnknownArtistAnyStore(t *testing.T) {
	r, err := report.Compare(context.Background(), missingArtists{}, "Nobody")
	require.NoError(t, err)
	assert.Equal(t, "Nobody cannot be found in the database.", r.Warning)
}

func TestSummary(t *testing.T) {
	r, err := report.Summary(context.Background(), dbtest.Open(t))
	require.NoError(t, err)

	require.Len(t, r.Table.Rows, 2)
	assert.Equal(t, []string{"2000", "3"}, texts(r.Table.Rows[0]))
	assert.Equal(t, []string{"2001", "3"}, texts(r.Table.Rows[1]))
	assert.Equal(t, "6 songs (2 explicit) by 4 artists across 3 genres, 2000-2001.", r.Table.Note)
}

func TestSummaryEmpty(t *testing.T) {
	d, err := db.Open(dbtest.Path(t))
	require.NoError(t, err)
	defer d.Close()

	r, err := report.Summary(context.Background(), d)
	require.NoError(t, err)
	assert.NotEmpty(t, r.Warning)
}

func TestWriteText(t *testing.T) {
	d := dbtest.Open(t)

	var buf bytes.Buffer
	r, err := report.Genres(context.Background(), d, 2000)
	require.NoError(t, err)
	require.NoError(t, r.WriteText(&buf))
	assert.True(t, strings.HasPrefix(buf.String(), "Genre Statistics for 2000\n"))

	buf.Reset()
	r, err = report.Genres(context.Background(), d, 1990)
	require.NoError(t, err)
	require.NoError(t, r.WriteText(&buf))
	assert.Equal(t, "No results found for 1990. Try another year.\n", buf.String())
}

func TestWriteHTML(t *testing.T) {
	r, err := report.Genres(context.Background(), dbtest.Open(t), 2000)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.WriteHTML(&buf))

	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)
	assert.Equal(t, 3, doc.Find("table tbody tr").Length())

	imgs := doc.Find("figure img")
	require.Equal(t, 2, imgs.Length())
	imgs.Each(func(_ int, img *goquery.Selection) {
		src, _ := img.Attr("src")
		assert.True(t, strings.HasPrefix(src, "data:image/png;base64,"), src)
	})
	alt, _ := imgs.First().Attr("alt")
	assert.Equal(t, "Average Song Duration (s) for Genres in 2000", alt)
}

func TestWriteHTMLWarning(t *testing.T) {
	r, err := report.Compare(context.Background(), dbtest.Open(t), "Nobody")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.WriteHTML(&buf))

	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)
	assert.Equal(t, "Nobody cannot be found in the database.", doc.Find("p.warning").Text())
	assert.Equal(t, 0, doc.Find("table").Length())
}

func TestWriteCharts(t *testing.T) {
	r, err := report.Genres(context.Background(), dbtest.Open(t), 2000)
	require.NoError(t, err)

	dir := filepath.Join(t.TempDir(), "charts")
	paths, err := r.WriteCharts(dir, render.SVG)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "average-song-duration-s-for-genres-in-2000.svg"),
		filepath.Join(dir, "genre-distribution-for-2000.svg"),
	}, paths)

	for _, path := range paths {
		b, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(b), "<svg")
	}
}

func TestSlug(t *testing.T) {
	assert.Equal(t, "top-5-artists-between-2000-2001", report.Slug("Top 5 Artists between 2000-2001"))
	assert.Equal(t, "beyonc-popularity", report.Slug("  Beyoncé Popularity!"))
}
