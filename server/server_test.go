package server_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/amonks/songs/dbtest"
	"github.com/amonks/songs/ranking"
	"github.com/amonks/songs/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func get(t *testing.T, h http.Handler, url string) (int, *goquery.Document) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, url, nil))

	doc, err := goquery.NewDocumentFromReader(rec.Body)
	require.NoError(t, err)
	return rec.Code, doc
}

func handler(t *testing.T) http.Handler {
	return server.New(dbtest.Open(t), server.Options{Weights: ranking.DefaultWeights()})
}

func TestIndex(t *testing.T) {
	code, doc := get(t, handler(t), "/")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, 4, doc.Find("form").Length())
	assert.Equal(t, 3, doc.Find("select[name=metric] option").Length())
}

func TestGenres(t *testing.T) {
	code, doc := get(t, handler(t), "/genres?year=2000")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Genre Statistics for 2000", doc.Find("h1").Text())
	assert.Equal(t, 3, doc.Find("tbody tr").Length())
	assert.Equal(t, "Rock", doc.Find("tbody tr").First().Find("td").First().Text())
	assert.Equal(t, 2, doc.Find("figure img").Length())
}

func TestGenresEmptyYear(t *testing.T) {
	code, doc := get(t, handler(t), "/genres?year=2015")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "No results found for 2015. Try another year.", doc.Find("p.warning").Text())
	assert.Equal(t, 0, doc.Find("img").Length())
}

func TestBadParams(t *testing.T) {
	h := handler(t)
	for _, url := range []string{
		"/genres",
		"/genres?year=abc",
		"/genres?year=1997",
		"/artists?from=2000",
		"/artists?from=2000&to=2000",
		"/artists?from=2000&to=2030",
		"/artists?from=2000&to=2001&metric=tempo",
		"/artists?from=2000&to=2001&count=0",
		"/top5?from=2001&to=2001",
		"/compare",
		"/compare?artist=%20%20",
	} {
		code, doc := get(t, h, url)
		assert.Equal(t, http.StatusBadRequest, code, url)
		assert.NotEmpty(t, strings.TrimSpace(doc.Find("p.error").Text()), url)
	}
}

func TestArtists(t *testing.T) {
	code, doc := get(t, handler(t), "/artists?from=2001&to=2000&metric=danceability&count=2")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Top 2 Artists by Average Danceability between 2000-2001", doc.Find("h1").Text())

	var names []string
	doc.Find("tbody tr").Each(func(_ int, tr *goquery.Selection) {
		names = append(names, tr.Find("td").Eq(1).Text())
	})
	assert.Equal(t, []string{"Beta Band", "Alpha"}, names)
}

func TestTop5(t *testing.T) {
	code, doc := get(t, handler(t), "/top5?from=2000&to=2001")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, 3, doc.Find("tbody tr").Length())
	assert.Equal(t, 2, doc.Find("tbody td.emphasis").Length())
	assert.Equal(t, "NS", doc.Find("tbody td.missing").Text())
	assert.Equal(t, "Year Average", doc.Find("tfoot td").First().Text())
	assert.Equal(t, 1, doc.Find("figure img").Length())
}

func TestCompare(t *testing.T) {
	code, doc := get(t, handler(t), "/compare?artist=beta+band")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Beta Band Popularity vs Overall Popularity", doc.Find("h1").Text())
	assert.Equal(t, 1, doc.Find("td.high").Length())

	code, doc = get(t, handler(t), "/compare?artist=nobody")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "nobody cannot be found in the database.", doc.Find("p.warning").Text())
}

func TestSummary(t *testing.T) {
	code, doc := get(t, handler(t), "/summary")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, 2, doc.Find("tbody tr").Length())
}

func TestNotFound(t *testing.T) {
	code, _ := get(t, handler(t), "/nope")
	assert.Equal(t, http.StatusNotFound, code)
}
