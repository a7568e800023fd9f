// Package web exposes the puzzle engine over HTTP: a JSON solve
// endpoint, a health check, a server-side shuffle, and optional static UI
// files. The presentation layer itself is externally owned; this package
// is only the wire boundary in front of the solver.
package web

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/pbnjay/memory"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/castilho/ocho/config"
)

const shutdownTimeout = 10 * time.Second

// Rough per-node footprint in the search structures (arena entry plus
// visited-map overhead), used to size the default node budget.
const approxNodeBytes = 96

type Server struct {
	cfg        *config.Config
	depthLimit int
	maxNodes   int
	srv        *http.Server
}

func NewServer(cfg *config.Config) *Server {
	s := &Server{
		cfg:        cfg,
		depthLimit: cfg.GetInt(config.KeyDepthLimit),
		maxNodes:   cfg.GetInt(config.KeyMaxNodes),
	}
	if s.maxNodes <= 0 {
		// Cap any single solve at a quarter of physical memory. For the
		// supported sizes the reachable space is far smaller; this guard
		// only matters when validation is somehow bypassed.
		s.maxNodes = int(memory.TotalMemory() / 4 / approxNodeBytes)
		log.Debug().Int("maxNodes", s.maxNodes).Msg("node budget sized from memory")
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /solve", s.handleSolve)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /shuffle", s.handleShuffle)
	if dir := cfg.GetString(config.KeyStaticDir); dir != "" {
		mux.Handle("GET /", http.FileServer(http.Dir(dir)))
	}

	s.srv = &http.Server{
		Addr:         cfg.GetString(config.KeyListenAddr),
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second,
	}
	return s
}

// Start serves until ctx is canceled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info().Str("addr", s.srv.Addr).Msg("web server listening")
		if err := s.srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		log.Info().Msg("web server shutting down")
		return s.srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
