package render

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// WriteText writes the table as aligned plain text. High and Low cells get
// an arrow and emphasized cells get a star.
func (t *Table) WriteText(w io.Writer) error {
	if t.Title != "" {
		if _, err := fmt.Fprintf(w, "%s\n\n", t.Title); err != nil {
			return err
		}
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(t.Columns, "\t"))
	for _, row := range t.Rows {
		fmt.Fprintln(tw, textRow(row))
	}
	if len(t.Footer) > 0 {
		fmt.Fprintln(tw, textRow(t.Footer))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if t.Note != "" {
		if _, err := fmt.Fprintf(w, "\n%s\n", t.Note); err != nil {
			return err
		}
	}
	return nil
}

func textRow(row []Cell) string {
	texts := make([]string, len(row))
	for i, cell := range row {
		texts[i] = cell.text()
	}
	return strings.Join(texts, "\t")
}

func (c Cell) text() string {
	switch c.Mark {
	case High:
		return c.Text + " ▲"
	case Low:
		return c.Text + " ▼"
	case Emphasis:
		return c.Text + " *"
	default:
		return c.Text
	}
}
