// Package api provides the local HTTP server for habitquest.
// It exposes the tracker as a small REST API consumed by the web UI.
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/habitquest/habitquest/internal/app/tracker"
	"github.com/habitquest/habitquest/internal/infra/store"
)

// Server is the habitquest HTTP API server.
type Server struct {
	tracker        *tracker.Engine
	db             *store.DB
	corsOrigins    []string
	metricsEnabled bool
}

// NewServer creates a new API server.
func NewServer(eng *tracker.Engine, db *store.DB, corsOrigins []string) *Server {
	return &Server{tracker: eng, db: db, corsOrigins: corsOrigins}
}

// EnableMetrics enables the /metrics Prometheus endpoint.
func (s *Server) EnableMetrics() { s.metricsEnabled = true }

// Handler returns the chi router with all routes mounted.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(s.corsMiddleware)

	r.Get("/health", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Get("/status", s.handleStatus)
		r.Get("/today", s.handleToday)
		r.Post("/goals/{id}", s.handleUpdateGoal)
		r.Post("/missions/{id}/toggle", s.handleToggleMission)
		r.Post("/mood", s.handleSetMood)
		r.Get("/week", s.handleWeek)
		r.Get("/achievements", s.handleAchievements)
		r.Get("/level", s.handleLevel)
		r.Get("/stats", s.handleStats)
		r.Get("/badges", s.handleBadges)
		r.Get("/badges/today", s.handleTodaysBadges)
		r.Get("/export", s.handleExport)
		r.Post("/import", s.handleImport)
	})

	// Prometheus metrics endpoint
	if s.metricsEnabled {
		r.Handle("/metrics", promhttp.Handler())
	}

	return r
}

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]interface{}{
		"error": map[string]interface{}{
			"message": msg,
			"type":    "error",
		},
	})
}

// corsMiddleware adds CORS headers for the local web UI.
func (s *Server) corsMiddleware(next http.Handler) http.Handler {
	origin := "*"
	if len(s.corsOrigins) > 0 {
		origin = s.corsOrigins[0]
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}
