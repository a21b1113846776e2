package server

import (
	"bytes"
	"html/template"
	"net/http"

	"github.com/amonks/songs/data"
	"github.com/amonks/songs/logging"
	"github.com/amonks/songs/report"
)

var layout = template.Must(template.New("layout").Parse(`<!doctype html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: sans-serif; margin: 2em; }
table { border-collapse: collapse; }
th { background: #cce5ff; color: #004085; }
th, td { border: 1px solid lightgrey; padding: 0.3em 0.8em; text-align: center; }
td.high { background: #d4edda; }
td.low { background: #f8d7da; }
td.missing { color: grey; }
td.emphasis { font-weight: bold; }
.warning, .error { color: #856404; background: #fff3cd; padding: 0.5em; }
img { max-width: 100%; }
</style>
</head>
<body>
<nav><a href="/">songs</a></nav>
<h1>{{.Title}}</h1>
{{.Body}}
</body>
</html>
`))

var forms = template.Must(template.New("forms").Parse(`<form action="/genres">
<h2>Genre statistics</h2>
<label>Year <input name="year" type="number" min="{{.Min}}" max="{{.Max}}" value="{{.Max}}"></label>
<button>Show</button>
</form>
<form action="/artists">
<h2>Top artists</h2>
<label>From <input name="from" type="number" min="{{.Min}}" max="{{.Max}}" value="{{.Min}}"></label>
<label>To <input name="to" type="number" min="{{.Min}}" max="{{.Max}}" value="{{.Max}}"></label>
<label>By <select name="metric">{{range .Metrics}}<option value="{{.}}">{{.Label}}</option>{{end}}</select></label>
<label>Count <input name="count" type="number" min="1" value="10"></label>
<button>Show</button>
</form>
<form action="/top5">
<h2>Top 5 artists</h2>
<label>From <input name="from" type="number" min="{{.Min}}" max="{{.Max}}" value="{{.Min}}"></label>
<label>To <input name="to" type="number" min="{{.Min}}" max="{{.Max}}" value="{{.Max}}"></label>
<button>Show</button>
</form>
<form action="/compare">
<h2>Artist vs genre popularity</h2>
<label>Artist <input name="artist" required></label>
<button>Show</button>
</form>
<p><a href="/summary">Dataset summary</a></p>
`))

func (s *server) page(w http.ResponseWriter, status int, title string, body template.HTML) {
	var buf bytes.Buffer
	if err := layout.Execute(&buf, struct {
		Title string
		Body  template.HTML
	}{title, body}); err != nil {
		logging.Err(err).Msg("error rendering page")
		http.Error(w, "error rendering page", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}

func (s *server) fail(w http.ResponseWriter, status int, title string, err error) {
	body := template.HTML(`<p class="error">` + template.HTMLEscapeString(err.Error()) + `</p>`)
	s.page(w, status, title, body)
}

func (s *server) show(w http.ResponseWriter, r *report.Report, err error) {
	if err != nil {
		if report.IsWarning(err) {
			s.fail(w, http.StatusBadRequest, "Bad Request", err)
			return
		}
		logging.Err(err).Msg("error building report")
		s.fail(w, http.StatusInternalServerError, "Error", err)
		return
	}

	var buf bytes.Buffer
	if err := r.WriteHTML(&buf); err != nil {
		logging.Err(err).Str("report", r.Title).Msg("error rendering report")
		s.fail(w, http.StatusInternalServerError, "Error", err)
		return
	}
	s.page(w, http.StatusOK, r.Title, template.HTML(buf.String()))
}

func (s *server) index(w http.ResponseWriter, req *http.Request) {
	var buf bytes.Buffer
	if err := forms.Execute(&buf, struct {
		Min, Max int
		Metrics  []data.Metric
	}{data.MinYear, data.MaxYear, data.Metrics}); err != nil {
		s.fail(w, http.StatusInternalServerError, "Error", err)
		return
	}
	s.page(w, http.StatusOK, "Songs", template.HTML(buf.String()))
}

func (s *server) genres(w http.ResponseWriter, req *http.Request) {
	year, err := yearParam(req, "year")
	if err != nil {
		s.fail(w, http.StatusBadRequest, "Bad Request", err)
		return
	}
	r, err := report.Genres(req.Context(), s.store, year)
	s.show(w, r, err)
}

func (s *server) artists(w http.ResponseWriter, req *http.Request) {
	yr, err := rangeParams(req)
	if err != nil {
		s.fail(w, http.StatusBadRequest, "Bad Request", err)
		return
	}
	metric := data.MetricPopularity
	if m := req.URL.Query().Get("metric"); m != "" {
		if metric, err = data.ParseMetric(m); err != nil {
			s.fail(w, http.StatusBadRequest, "Bad Request", err)
			return
		}
	}
	limit, err := countParam(req, s.opts.ArtistLimit)
	if err != nil {
		s.fail(w, http.StatusBadRequest, "Bad Request", err)
		return
	}
	r, err := report.Artists(req.Context(), s.store, yr, metric, limit)
	s.show(w, r, err)
}

func (s *server) top5(w http.ResponseWriter, req *http.Request) {
	yr, err := rangeParams(req)
	if err != nil {
		s.fail(w, http.StatusBadRequest, "Bad Request", err)
		return
	}
	r, err := report.Top5(req.Context(), s.store, yr, s.opts.Weights)
	s.show(w, r, err)
}

func (s *server) compare(w http.ResponseWriter, req *http.Request) {
	artist, err := artistParam(req)
	if err != nil {
		s.fail(w, http.StatusBadRequest, "Bad Request", err)
		return
	}
	r, err := report.Compare(req.Context(), s.store, artist)
	s.show(w, r, err)
}

func (s *server) summary(w http.ResponseWriter, req *http.Request) {
	r, err := report.Summary(req.Context(), s.store)
	s.show(w, r, err)
}
