package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"SeasonScope/internal/collector"
	"SeasonScope/internal/store"
)

// Server exposes the seasonality engine and the scan store over HTTP.
type Server struct {
	Fetcher collector.Fetcher
	Store   store.Store
	Addr    string
}

// NewServer creates a Server.
func NewServer(addr string, fetcher collector.Fetcher, st store.Store) *Server {
	return &Server{Addr: addr, Fetcher: fetcher, Store: st}
}

// Router builds the chi router with all API routes.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.Route("/api", func(r chi.Router) {
		r.Get("/seasonality", s.handleSeasonality)
		r.Post("/seasonality/range", s.handleRange)
		r.Get("/scan/{assetClass}/{cellKey}", s.handleScan)
	})
	return r
}

// HTTPServer wraps the router in an http.Server with sane timeouts.
func (s *Server) HTTPServer() *http.Server {
	return &http.Server{
		Addr:         s.Addr,
		Handler:      s.Router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
	}
}
