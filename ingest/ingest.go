// Package ingest turns the raw songs csv into a data.Dataset: it imports
// the file into a dataframe, drops rows that don't meet the dataset's
// criteria, and extracts the artists, genres and songs to be loaded.
package ingest

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/amonks/songs/data"
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported format, please use a .csv file")
	ErrFileNotFound      = errors.New("file not found")
	ErrMissingColumn     = errors.New("column does not exist")
)

// Columns lists the csv columns we rely on. Other columns are ignored.
var Columns = []string{
	"artist", "song", "duration_ms", "explicit", "year",
	"popularity", "danceability", "speechiness", "genre",
}

var columnTypes = map[string]series.Type{
	"artist":       series.String,
	"song":         series.String,
	"duration_ms":  series.Float,
	"explicit":     series.String,
	"year":         series.Int,
	"popularity":   series.Int,
	"danceability": series.Float,
	"speechiness":  series.Float,
	"genre":        series.String,
}

// Run imports, cleans and extracts the csv at path.
func Run(path string, filter Filter) (*data.Dataset, error) {
	df, err := Import(path)
	if err != nil {
		return nil, err
	}
	df, err = Clean(df, filter)
	if err != nil {
		return nil, err
	}
	return Extract(df)
}

// Import reads the csv at path into a dataframe.
func Import(path string) (dataframe.DataFrame, error) {
	if !strings.EqualFold(fileExt(path), ".csv") {
		return dataframe.DataFrame{}, fmt.Errorf("'%s': %w", path, ErrUnsupportedFormat)
	}

	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return dataframe.DataFrame{}, fmt.Errorf("%w: '%s'", ErrFileNotFound, path)
	} else if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("error opening '%s': %w", path, err)
	}
	defer f.Close()

	df, err := Read(f)
	if err != nil {
		return df, fmt.Errorf("error reading '%s': %w", path, err)
	}
	return df, nil
}

// Read parses csv from r. Known columns are given fixed types so that, say,
// a year column is never mistaken for floats.
func Read(r io.Reader) (dataframe.DataFrame, error) {
	df := dataframe.ReadCSV(r,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(true),
		dataframe.WithTypes(columnTypes),
	)
	if df.Err != nil {
		return df, fmt.Errorf("error parsing csv: %w", df.Err)
	}
	return df, nil
}

func fileExt(path string) string {
	i := strings.LastIndex(path, ".")
	if i < 0 || strings.ContainsAny(path[i:], `/\`) {
		return ""
	}
	return path[i:]
}

func requireColumns(df dataframe.DataFrame, columns ...string) error {
	have := make(map[string]struct{}, df.Ncol())
	for _, name := range df.Names() {
		have[name] = struct{}{}
	}
	var missing []string
	for _, name := range columns {
		if _, ok := have[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%s: %w", strings.Join(missing, ", "), ErrMissingColumn)
	}
	return nil
}
