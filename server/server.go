// Package server exposes the canonical dataset and the shared selection
// state over an HTTP JSON API. It owns the one mutable slot holding the
// current selection; the views read their filtered data back out on every
// change.
package server

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"github.com/ShaokangXie/trackboard/data"
	"github.com/ShaokangXie/trackboard/selection"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// The three linked views. Each can be disabled at startup; the selection
// endpoints are always on.
const (
	ViewScatter  = "scatter"
	ViewHeatmap  = "heatmap"
	ViewParallel = "parallel"
)

// AllViews lists every view name, for flag validation.
var AllViews = []string{ViewScatter, ViewHeatmap, ViewParallel}

type Options struct {
	// Views to enable; nil enables all of them.
	Views []string

	// SampleCap bounds how many rows a view endpoint returns; 0 means
	// unbounded.
	SampleCap int
}

type Server struct {
	dataset *data.Dataset
	top     []string

	views     map[string]bool
	sampleCap int

	mu    sync.Mutex
	state selection.State

	registry   *prometheus.Registry
	requests   *prometheus.CounterVec
	selections prometheus.Counter
}

// New builds a Server over an already-loaded dataset. The top-k genre buckets
// are computed once here and shared by every view.
func New(dataset *data.Dataset, opts Options) *Server {
	views := opts.Views
	if views == nil {
		views = AllViews
	}

	srv := &Server{
		dataset:   dataset,
		top:       dataset.TopGenres(),
		views:     make(map[string]bool, len(views)),
		sampleCap: opts.SampleCap,
		registry:  prometheus.NewRegistry(),
	}
	for _, view := range views {
		srv.views[view] = true
	}

	srv.requests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "trackboard_view_requests_total",
		Help: "View data requests served, by view.",
	}, []string{"view"})
	srv.selections = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "trackboard_selection_transitions_total",
		Help: "Selection state transitions applied.",
	})
	srv.registry.MustRegister(srv.requests, srv.selections)

	return srv
}

// Routes builds the server's mux.
func (srv *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", srv.handleIndex)
	mux.HandleFunc("GET /api/tracks", srv.viewHandler(ViewScatter, srv.handleTracks))
	mux.HandleFunc("GET /api/heatmap", srv.viewHandler(ViewHeatmap, srv.handleHeatmap))
	mux.HandleFunc("GET /api/parallel", srv.viewHandler(ViewParallel, srv.handleParallel))
	mux.HandleFunc("GET /api/selection", srv.handleGetSelection)
	mux.HandleFunc("POST /api/selection/cell", srv.handleSelectCell)
	mux.HandleFunc("POST /api/selection/hover", srv.handleHover)
	mux.Handle("GET /metrics", promhttp.HandlerFor(srv.registry, promhttp.HandlerOpts{}))

	return mux
}

// viewHandler gates a view endpoint on whether the view is enabled and
// counts its requests.
func (srv *Server) viewHandler(view string, h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		if !srv.views[view] {
			http.NotFound(w, req)
			return
		}
		srv.requests.WithLabelValues(view).Inc()
		h(w, req)
	}
}

// selection returns a snapshot of the current selection state.
func (srv *Server) selection() selection.State {
	srv.mu.Lock()
	defer srv.mu.Unlock()
	return srv.state
}

// transition applies a pure state transition to the one mutable slot and
// returns the new state.
func (srv *Server) transition(f func(selection.State) selection.State) selection.State {
	srv.mu.Lock()
	defer srv.mu.Unlock()
	srv.state = f(srv.state)
	srv.selections.Inc()
	return srv.state
}

// Run serves until the context is canceled, then shuts down gracefully.
func Run(ctx context.Context, srv *Server, addr string) error {
	hs := http.Server{Addr: addr, Handler: srv.Routes()}

	errs := make(chan error)
	go func() { errs <- hs.ListenAndServe() }()

	select {
	case err := <-errs:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
		if err := hs.Shutdown(context.Background()); err != nil {
			return err
		}
		<-errs
		return nil
	}
}
