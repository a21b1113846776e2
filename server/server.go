// Package server renders the reports as web pages, with charts inlined,
// for browsing the dataset from a local browser.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/amonks/songs/logging"
	"github.com/amonks/songs/ranking"
	"github.com/amonks/songs/report"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type Options struct {
	Weights     ranking.Weights
	ArtistLimit int
}

type server struct {
	store report.Store
	opts  Options
}

// New returns the handler for every page.
func New(store report.Store, opts Options) http.Handler {
	if opts.ArtistLimit <= 0 {
		opts.ArtistLimit = 10
	}
	s := &server{store: store, opts: opts}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(logRequests)

	r.Get("/", s.index)
	r.Get("/genres", s.genres)
	r.Get("/artists", s.artists)
	r.Get("/top5", s.top5)
	r.Get("/compare", s.compare)
	r.Get("/summary", s.summary)
	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		s.fail(w, http.StatusNotFound, "Not Found", errors.New("there's no page here"))
	})
	return r
}

func Run(ctx context.Context, handler http.Handler, addr string) error {
	srv := http.Server{Addr: addr, Handler: handler, ReadHeaderTimeout: 10 * time.Second}

	errs := make(chan error)
	go func() { errs <- srv.ListenAndServe() }()
	logging.Info().Str("addr", addr).Msg("listening")

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
		if err := srv.Shutdown(context.Background()); err != nil {
			return err
		}
		if err := <-errs; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return ctx.Err()
	}
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, req.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, req)
		logging.Debug().
			Str("method", req.Method).
			Str("path", req.URL.Path).
			Int("status", ww.Status()).
			Dur("took", time.Since(start)).
			Msg("request")
	})
}
