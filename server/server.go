// Package server hosts the live visualization of a running duel: a
// single page, pushed resource-bar and action-log updates over a
// websocket, and a prometheus /metrics endpoint. No gameplay logic
// lives here; it is purely observational, grounded on the teacher's
// server.Server/server/fastview/server/root_view stack.
package server

import (
	"context"
	"fmt"
	"html/template"
	"io"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"duel/server/duelview"
	"duel/server/fastview"
	"duel/server/rootview"
	"duel/stat"
)

// DuelSnapshot is the unit pushed from the arena loop to the
// visualization views: one turn's before/after state plus the
// actions that produced it.
type DuelSnapshot = duelview.Snapshot

// Server serves the duel visualization page, its websocket, and a
// prometheus metrics endpoint.
type Server struct {
	addr     string
	rootView *rootview.RootView
	registry *prometheus.Registry
	logger   zerolog.Logger
}

// NewServer builds the root view from snapshots and registers tally's
// counters for scraping.
func NewServer(
	ctx context.Context,
	addr string,
	snapshots <-chan DuelSnapshot,
	tally *stat.Tally,
) (*Server, error) {
	rv, err := rootview.NewRootView(ctx, snapshots)
	if err != nil {
		return nil, err
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(NewMetrics(tally))

	return &Server{
		addr:     addr,
		rootView: rv,
		registry: registry,
		logger:   log.With().Str("component", "server").Logger(),
	}, nil
}

// Serve blocks, serving the page, websocket, and metrics routes.
func (s *Server) Serve() error {
	r := mux.NewRouter()
	r.HandleFunc("/", s.serveIndex).Methods(http.MethodGet)
	r.HandleFunc("/ws", s.serveWebsocket)
	r.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))

	s.logger.Info().Str("addr", s.addr).Msg("serving duel visualization")
	if err := http.ListenAndServe(s.addr, r); err != nil {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}

func (s *Server) serveWebsocket(w http.ResponseWriter, r *http.Request) {
	cli, err := fastview.NewClient(s.rootView.Updates(), w, r)
	if err != nil {
		s.logger.Error().Err(err).Msg("websocket upgrade failed")
		return
	}

	s.logger.Info().Str("remote", r.RemoteAddr).Msg("client connected")
	if err := cli.Sync(); err != nil {
		s.logger.Warn().Err(err).Str("remote", r.RemoteAddr).Msg("client disconnected")
		return
	}
	s.logger.Info().Str("remote", r.RemoteAddr).Msg("client disconnected")
}

func (s *Server) serveIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html")
	if err := renderTemplate(w, s.rootView); err != nil {
		s.logger.Error().Err(err).Msg("failed to render index")
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func renderTemplate(w io.Writer, rv *rootview.RootView) error {
	t := template.New("index.html")
	tname, err := rv.Parse(t)
	if err != nil {
		return err
	}
	if _, err = t.Parse(`{{ template "` + tname + `" . }}`); err != nil {
		return err
	}
	return t.Execute(w, nil)
}
