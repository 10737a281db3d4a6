// Package debugserver exposes a run's progress.Feed over HTTP when
// cmd/tspbb is started with --debug-addr. It is a passive, read-only
// subscriber: nothing it serves feeds back into the solver.
package debugserver

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/coldbrew-labs/tspbb/internal/progress"
)

// Server wraps an http.Server that serves one route, GET /status, returning
// the current progress.Feed snapshot as JSON.
type Server struct {
	http *http.Server
}

// New builds a Server bound to addr, reading feed on every request.
func New(addr string, feed *progress.Feed) *Server {
	r := chi.NewRouter()
	r.Get("/status", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(feed.Snapshot())
	})

	return &Server{http: &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}}
}

// Start runs the server in a new goroutine and returns immediately. Callers
// should defer Shutdown once the solve completes.
func (s *Server) Start() {
	go func() {
		_ = s.http.ListenAndServe()
	}()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
