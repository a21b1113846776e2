package ingest

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/amonks/songs/data"
	"github.com/go-gota/gota/dataframe"
)

// The source data uses this placeholder for songs without a genre.
const noGenre = "set()"

// Extract converts cleaned rows into a Dataset.
//
// The artist and genre columns hold comma separated lists. Every listed
// artist is kept, but a song belongs to the first one. Rows repeating an
// earlier (title, artist, year) are dropped.
func Extract(df dataframe.DataFrame) (*data.Dataset, error) {
	if err := requireColumns(df, Columns...); err != nil {
		return nil, err
	}

	titles := df.Col("song").Records()
	artistLists := df.Col("artist").Records()
	genreLists := df.Col("genre").Records()
	explicits := df.Col("explicit").Records()
	durations := df.Col("duration_ms").Float()
	danceabilities := df.Col("danceability").Float()
	speechinesses := df.Col("speechiness").Float()
	years, err := df.Col("year").Int()
	if err != nil {
		return nil, fmt.Errorf("error reading year column: %w", err)
	}
	popularities, err := df.Col("popularity").Int()
	if err != nil {
		return nil, fmt.Errorf("error reading popularity column: %w", err)
	}

	artistSet := map[string]struct{}{}
	genreSet := map[string]struct{}{}
	seen := map[string]struct{}{}
	ds := &data.Dataset{}

	for i := 0; i < df.Nrow(); i++ {
		artists := splitList(artistLists[i])
		if len(artists) == 0 {
			return nil, fmt.Errorf("row %d ('%s') has no artist", i+1, titles[i])
		}
		explicit, err := strconv.ParseBool(strings.TrimSpace(explicits[i]))
		if err != nil {
			return nil, fmt.Errorf("row %d ('%s') has invalid explicit value '%s': %w", i+1, titles[i], explicits[i], err)
		}

		title := strings.TrimSpace(titles[i])
		key := fmt.Sprintf("%s\x00%s\x00%d", title, artists[0], years[i])
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		for _, artist := range artists {
			artistSet[artist] = struct{}{}
		}
		var genres []string
		for _, genre := range splitList(genreLists[i]) {
			if genre == noGenre {
				continue
			}
			genreSet[genre] = struct{}{}
			genres = append(genres, genre)
		}

		ds.Songs = append(ds.Songs, data.Song{
			Title:        title,
			Artist:       artists[0],
			Duration:     int64(math.Round(durations[i] / 1000)),
			Explicit:     explicit,
			Year:         int64(years[i]),
			Popularity:   int64(popularities[i]),
			Danceability: danceabilities[i],
			Speechiness:  speechinesses[i],
			Genres:       genres,
		})
	}

	ds.Artists = sortedKeys(artistSet)
	ds.Genres = sortedKeys(genreSet)
	return ds, nil
}

// splitList splits a comma separated cell, trimming and deduplicating
// entries while keeping their order.
func splitList(cell string) []string {
	var out []string
	seen := map[string]struct{}{}
	for _, part := range strings.Split(cell, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if _, dup := seen[part]; dup {
			continue
		}
		seen[part] = struct{}{}
		out = append(out, part)
	}
	return out
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
