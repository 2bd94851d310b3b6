// Package ui exposes the computed reports over HTTP for the dashboard
// renderer. It serves JSON only; chart and table rendering happen in
// the external dashboard layer.
package ui

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	internal "recipelens/internal"
	"recipelens/internal/session"
)

// Server wraps the chi router around one analysis session.
type Server struct {
	router   chi.Router
	analysis *session.Analysis
	log      *internal.Logger
}

// NewServer creates the report server for an analysis session.
func NewServer(analysis *session.Analysis) *Server {
	s := &Server{
		router:   chi.NewRouter(),
		analysis: analysis,
		log:      internal.DefaultLogger,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.Recoverer)

	s.router.Route("/api", func(r chi.Router) {
		r.Get("/report", s.handleDatasetReport)
		r.Get("/anomalies", s.handleAnomalies)
		r.Get("/columns", s.handleColumns)
		r.Get("/facets/{facet}", s.handleFacet)
		r.Post("/clean", s.handleClean)
	})
}

// Router exposes the mux, mainly for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

// Start blocks serving HTTP on the given address.
func (s *Server) Start(addr string) error {
	s.log.Info("report server listening on %s", addr)
	return http.ListenAndServe(addr, s.router)
}
