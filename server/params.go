package server

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/amonks/songs/data"
)

var errNoArtist = errors.New("artist cannot be empty")

func yearParam(req *http.Request, name string) (int, error) {
	s := strings.TrimSpace(req.URL.Query().Get(name))
	if s == "" {
		return 0, fmt.Errorf("missing '%s'", name)
	}
	year, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("'%s' must be a whole number", name)
	}
	if !data.ValidYear(year) {
		return 0, fmt.Errorf("%s %d: %w", name, year, data.ErrYearOutOfRange)
	}
	return year, nil
}

// rangeParams reads from and to. Reversed years are swapped; equal years
// are rejected.
func rangeParams(req *http.Request) (data.YearRange, error) {
	from, err := yearParam(req, "from")
	if err != nil {
		return data.YearRange{}, err
	}
	to, err := yearParam(req, "to")
	if err != nil {
		return data.YearRange{}, err
	}
	if from == to {
		return data.YearRange{}, data.ErrSameYear
	}
	return data.NewYearRange(from, to), nil
}

func countParam(req *http.Request, def int) (int, error) {
	s := strings.TrimSpace(req.URL.Query().Get("count"))
	if s == "" {
		return def, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, errors.New("'count' must be a positive whole number")
	}
	return n, nil
}

func artistParam(req *http.Request) (string, error) {
	artist := strings.TrimSpace(req.URL.Query().Get("artist"))
	if artist == "" {
		return "", errNoArtist
	}
	return artist, nil
}
