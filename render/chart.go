package render

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

var (
	ErrNoData        = errors.New("nothing to chart")
	ErrUnknownFormat = errors.New("unknown chart format")
)

// A Format is an image encoding for charts.
type Format string

const (
	PNG Format = "png"
	SVG Format = "svg"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case PNG, SVG:
		return f, nil
	default:
		return "", fmt.Errorf("'%s': %w", s, ErrUnknownFormat)
	}
}

func (f Format) provider() chart.RendererProvider {
	if f == SVG {
		return chart.SVG
	}
	return chart.PNG
}

// Ext is the file extension, with its dot.
func (f Format) Ext() string {
	if f == SVG {
		return ".svg"
	}
	return ".png"
}

// A Chart can be drawn into an image.
type Chart interface {
	Name() string
	Resize(Size)
	Render(f Format, w io.Writer) error
}

// Size is a chart's dimensions in pixels. Zero values take defaults.
type Size struct {
	Width, Height int
}

const (
	defaultWidth  = 1024
	defaultHeight = 512
)

func (s Size) dimensions() (int, int) {
	w, h := s.Width, s.Height
	if w <= 0 {
		w = defaultWidth
	}
	if h <= 0 {
		h = defaultHeight
	}
	return w, h
}

// A Series is a named list of values, one per label of the chart it
// belongs to. NaN values are gaps.
type Series struct {
	Name   string
	Values []float64
}

var palette = []drawing.Color{
	chart.ColorBlue,
	chart.ColorAlternateGray,
	chart.ColorGreen,
	chart.ColorRed,
	chart.ColorOrange,
	chart.ColorYellow,
	chart.ColorCyan,
}

func color(i int) drawing.Color {
	return palette[i%len(palette)]
}

// BarChart draws one bar per label, or a group of bars per label when it
// has more than one series.
type BarChart struct {
	Title  string
	Labels []string
	Series []Series
	Size   Size
}

func (c *BarChart) Name() string { return c.Title }
func (c *BarChart) Resize(s Size) { c.Size = s }

func (c *BarChart) Render(f Format, w io.Writer) error {
	if len(c.Labels) == 0 || len(c.Series) == 0 {
		return ErrNoData
	}

	var bars []chart.Value
	top := 0.0
	for i, label := range c.Labels {
		for j, s := range c.Series {
			if i >= len(s.Values) || math.IsNaN(s.Values[i]) {
				return fmt.Errorf("series '%s' has no value for '%s': %w", s.Name, label, ErrNoData)
			}
			v := s.Values[i]
			top = math.Max(top, v)

			// Grouped bars share their label, written under the first.
			text := label
			if j > 0 {
				text = ""
			}
			col := color(j)
			bars = append(bars, chart.Value{
				Label: text,
				Value: v,
				Style: chart.Style{FillColor: col, StrokeColor: col},
			})
		}
	}
	if top <= 0 {
		top = 1
	}

	width, height := c.Size.dimensions()
	barWidth := (width - 100) / len(bars)
	barWidth = max(4, min(barWidth-barWidth/5, 60))

	bc := chart.BarChart{
		Title:      c.title(),
		Width:      width,
		Height:     height,
		BarWidth:   barWidth,
		BarSpacing: max(2, barWidth/5),
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		YAxis:      chart.YAxis{Range: &chart.ContinuousRange{Min: 0, Max: top * 1.1}},
		Bars:       bars,
	}
	return bc.Render(f.provider(), w)
}

// title names the series in the order their colors are used, since bar
// charts have no legend.
func (c *BarChart) title() string {
	if len(c.Series) < 2 {
		return c.Title
	}
	names := make([]string, len(c.Series))
	for i, s := range c.Series {
		names[i] = s.Name
	}
	return fmt.Sprintf("%s (%s)", c.Title, strings.Join(names, " / "))
}

// PieChart draws each label's share of the total. Non-positive values are
// left out.
type PieChart struct {
	Title  string
	Labels []string
	Values []float64
	Size   Size
}

func (c *PieChart) Name() string { return c.Title }
func (c *PieChart) Resize(s Size) { c.Size = s }

func (c *PieChart) Render(f Format, w io.Writer) error {
	var values []chart.Value
	for i, label := range c.Labels {
		if i >= len(c.Values) || !(c.Values[i] > 0) {
			continue
		}
		values = append(values, chart.Value{Label: label, Value: c.Values[i]})
	}
	if len(values) == 0 {
		return ErrNoData
	}

	width, height := c.Size.dimensions()
	pc := chart.PieChart{
		Title:  c.Title,
		Width:  width,
		Height: height,
		Values: values,
	}
	return pc.Render(f.provider(), w)
}

// LineChart draws one line per series across integer x values, such as
// years.
type LineChart struct {
	Title  string
	XName  string
	YName  string
	X      []int
	Series []Series
	Size   Size
}

func (c *LineChart) Name() string { return c.Title }
func (c *LineChart) Resize(s Size) { c.Size = s }

func (c *LineChart) Render(f Format, w io.Writer) error {
	var series []chart.Series
	lo, hi := math.Inf(1), math.Inf(-1)
	for i, s := range c.Series {
		var xs, ys []float64
		for j, x := range c.X {
			if j >= len(s.Values) || math.IsNaN(s.Values[j]) {
				continue
			}
			xs = append(xs, float64(x))
			ys = append(ys, s.Values[j])
			lo, hi = math.Min(lo, s.Values[j]), math.Max(hi, s.Values[j])
		}
		if len(xs) == 0 {
			continue
		}
		// A single point can't make a line; draw it as a dot.
		if len(xs) == 1 {
			xs = append(xs, xs[0])
			ys = append(ys, ys[0])
		}
		col := color(i)
		series = append(series, chart.ContinuousSeries{
			Name:    s.Name,
			XValues: xs,
			YValues: ys,
			Style: chart.Style{
				StrokeColor: col,
				StrokeWidth: 2,
				DotColor:    col,
				DotWidth:    4,
			},
		})
	}
	if len(series) == 0 {
		return ErrNoData
	}

	ticks := make([]chart.Tick, len(c.X))
	for i, x := range c.X {
		ticks[i] = chart.Tick{Value: float64(x), Label: strconv.Itoa(x)}
	}
	xmin, xmax := float64(c.X[0]), float64(c.X[len(c.X)-1])
	if xmin == xmax {
		xmin, xmax = xmin-1, xmax+1
	}
	ymin, ymax := YRange(lo, hi)

	width, height := c.Size.dimensions()
	ch := chart.Chart{
		Title:      c.Title,
		Width:      width,
		Height:     height,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		XAxis: chart.XAxis{
			Name:  c.XName,
			Ticks: ticks,
			Range: &chart.ContinuousRange{Min: xmin, Max: xmax},
		},
		YAxis: chart.YAxis{
			Name:  c.YName,
			Range: &chart.ContinuousRange{Min: ymin, Max: ymax},
		},
		Series: series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}
	return ch.Render(f.provider(), w)
}

// YRange pads the span of the data by 5% on each side, or by 1 if the
// data is a single value.
func YRange(lo, hi float64) (float64, float64) {
	if lo == hi {
		return lo - 1, hi + 1
	}
	return lo * 0.95, hi * 1.05
}
