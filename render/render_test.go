package render_test

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/amonks/songs/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

func sample() *render.Table {
	return &render.Table{
		Title:   "Genres in 2000",
		Note:    "Sorted by duration.",
		Columns: []string{"Genre", "Songs", "Popularity"},
		Rows: [][]render.Cell{
			{render.Text("Pop"), render.Int(3), {Text: "70.00", Mark: render.High}},
			{render.Text("Rock"), render.Int(1), {Text: "NS", Mark: render.Missing}},
		},
		Footer: []render.Cell{render.Text("Average"), render.Int(2), {Text: "70.00", Mark: render.Emphasis}},
	}
}

func TestNumber(t *testing.T) {
	assert.Equal(t, "76.93", render.Number(76.925000001).Text)
	assert.Equal(t, "3.00", render.Number(3).Text)
	assert.Equal(t, 0.7, render.Round(0.69999999))
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, sample().WriteText(&buf))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, "Genres in 2000", lines[0])
	assert.Equal(t, "", lines[1])
	assert.Equal(t, "Genre    Songs  Popularity", lines[2])
	assert.Equal(t, "Pop      3      70.00 ▲", lines[3])
	assert.Equal(t, "Rock     1      NS", lines[4])
	assert.Equal(t, "Average  2      70.00 *", lines[5])
	assert.Equal(t, "Sorted by duration.", lines[len(lines)-1])
}

func TestWriteHTML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, sample().WriteHTML(&buf))

	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)

	assert.Equal(t, "Genres in 2000", doc.Find("h2").Text())
	assert.Equal(t, 3, doc.Find("thead th").Length())
	assert.Equal(t, 2, doc.Find("tbody tr").Length())
	assert.Equal(t, "70.00", doc.Find("tbody td.high").Text())
	assert.Equal(t, "NS", doc.Find("tbody td.missing").Text())
	assert.Equal(t, "70.00", doc.Find("tfoot td.emphasis").Text())
	assert.Equal(t, "Sorted by duration.", doc.Find("p.note").Text())

	_, hasClass := doc.Find("tbody td").First().Attr("class")
	assert.False(t, hasClass)
}

func TestWriteHTMLEscapes(t *testing.T) {
	table := &render.Table{
		Columns: []string{"Artist"},
		Rows:    [][]render.Cell{{render.Text("<script>alert(1)</script>")}},
	}
	var buf bytes.Buffer
	require.NoError(t, table.WriteHTML(&buf))
	assert.NotContains(t, buf.String(), "<script>")
}

func TestParseFormat(t *testing.T) {
	f, err := render.ParseFormat(" SVG ")
	require.NoError(t, err)
	assert.Equal(t, render.SVG, f)
	assert.Equal(t, ".svg", f.Ext())

	_, err = render.ParseFormat("gif")
	assert.ErrorIs(t, err, render.ErrUnknownFormat)
}

func TestBarChart(t *testing.T) {
	c := &render.BarChart{
		Title:  "Average Duration",
		Labels: []string{"Pop", "Rock", "Hip Hop"},
		Series: []render.Series{{Name: "seconds", Values: []float64{173.33, 240, 140}}},
	}
	var buf bytes.Buffer
	require.NoError(t, c.Render(render.PNG, &buf))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), pngMagic))
}

func TestGroupedBarChart(t *testing.T) {
	c := &render.BarChart{
		Title:  "Popularity",
		Labels: []string{"Pop", "Rock"},
		Series: []render.Series{
			{Name: "Alpha", Values: []float64{70, 0}},
			{Name: "Overall", Values: []float64{71.25, 82.5}},
		},
	}
	var buf bytes.Buffer
	require.NoError(t, c.Render(render.SVG, &buf))
	assert.Contains(t, buf.String(), "<svg")
	assert.Contains(t, buf.String(), "Alpha / Overall")
}

func TestBarChartNoData(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, (&render.BarChart{Title: "empty"}).Render(render.PNG, &buf), render.ErrNoData)

	short := &render.BarChart{
		Labels: []string{"a", "b"},
		Series: []render.Series{{Name: "s", Values: []float64{1}}},
	}
	assert.ErrorIs(t, short.Render(render.PNG, &buf), render.ErrNoData)
}

func TestPieChart(t *testing.T) {
	c := &render.PieChart{
		Title:  "Songs",
		Labels: []string{"Pop", "Rock", "Jazz"},
		Values: []float64{3, 1, 0},
	}
	var buf bytes.Buffer
	require.NoError(t, c.Render(render.PNG, &buf))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), pngMagic))

	empty := &render.PieChart{Labels: []string{"Jazz"}, Values: []float64{0}}
	assert.ErrorIs(t, empty.Render(render.PNG, &buf), render.ErrNoData)
}

func TestLineChart(t *testing.T) {
	nan := math.NaN()
	c := &render.LineChart{
		Title: "Top 5",
		XName: "Year",
		YName: "Score",
		X:     []int{2000, 2001, 2002},
		Series: []render.Series{
			{Name: "Alpha", Values: []float64{78.26, 75.6, nan}},
			{Name: "Gamma", Values: []float64{nan, 61.32, nan}},
			{Name: "Nobody", Values: []float64{nan, nan, nan}},
		},
	}
	var buf bytes.Buffer
	require.NoError(t, c.Render(render.SVG, &buf))
	assert.Contains(t, buf.String(), "<svg")
}

func TestLineChartNoData(t *testing.T) {
	c := &render.LineChart{
		X:      []int{2000},
		Series: []render.Series{{Name: "Nobody", Values: []float64{math.NaN()}}},
	}
	var buf bytes.Buffer
	assert.ErrorIs(t, c.Render(render.PNG, &buf), render.ErrNoData)
}

func TestYRange(t *testing.T) {
	lo, hi := render.YRange(60, 80)
	assert.InDelta(t, 57, lo, 1e-9)
	assert.InDelta(t, 84, hi, 1e-9)

	lo, hi = render.YRange(5, 5)
	assert.Equal(t, 4.0, lo)
	assert.Equal(t, 6.0, hi)
}
