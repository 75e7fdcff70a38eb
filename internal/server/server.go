// Package server exposes the console over HTTP: the REST API the live
// client mode talks to, plus a WebSocket event feed for scan and check
// activity.
package server

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/hmartins/secconsole/internal/config"
	"github.com/hmartins/secconsole/internal/database"
	"github.com/hmartins/secconsole/internal/report"
	"github.com/hmartins/secconsole/internal/store"
)

type Server struct {
	cfg       *config.Config
	store     *store.Store
	db        *database.DB
	hub       *Hub
	reportGen *report.Generator
	mux       *http.ServeMux
}

func New(cfg *config.Config, st *store.Store, db *database.DB, gen *report.Generator) *Server {
	s := &Server{
		cfg:       cfg,
		store:     st,
		db:        db,
		hub:       NewHub(),
		reportGen: gen,
		mux:       http.NewServeMux(),
	}
	s.registerRoutes()
	return s
}

func (s *Server) ListenAndServe() error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Server.Host, s.cfg.Server.Port)
	slog.Info("starting server", "addr", addr, "require_auth", s.cfg.Server.RequireAuth)

	return http.ListenAndServe(addr, s.Handler())
}

// Handler returns the full middleware chain. Split out so tests can mount
// the server on an httptest.Server.
func (s *Server) Handler() http.Handler {
	return recoveryMiddleware(securityHeaders(loggingMiddleware(s.authMiddleware(s.mux))))
}

func (s *Server) registerRoutes() {
	// Auth
	s.mux.HandleFunc("/api/auth/login", s.handleLogin)
	s.mux.HandleFunc("/api/auth/register", s.handleRegister)
	s.mux.HandleFunc("/api/auth/logout", s.handleLogout)
	s.mux.HandleFunc("/api/auth/profile", s.handleProfile)

	// Assets
	s.mux.HandleFunc("/api/assets", s.handleAssets)
	s.mux.HandleFunc("/api/assets/", s.handleAsset)

	// Vulnerability database
	s.mux.HandleFunc("/api/vulnerabilities", s.handleVulnerabilities)
	s.mux.HandleFunc("/api/vulnerabilities/", s.handleVulnerability)

	// Scans
	s.mux.HandleFunc("/api/scans", s.handleScans)
	s.mux.HandleFunc("/api/scans/", s.handleScan)

	// Security baselines
	s.mux.HandleFunc("/api/security-baselines", s.handleBaselines)
	s.mux.HandleFunc("/api/security-baselines/", s.handleBaseline)

	// Reports
	s.mux.HandleFunc("/api/reports", s.handleReports)
	s.mux.HandleFunc("/api/reports/", s.handleReport)

	// Dashboard
	s.mux.HandleFunc("/api/dashboard/summary", s.handleDashboardSummary)
	s.mux.HandleFunc("/api/dashboard/vulnerability-stats", s.handleVulnerabilityStats)
	s.mux.HandleFunc("/api/dashboard/recent-scans", s.handleRecentScans)
	s.mux.HandleFunc("/api/dashboard/asset-stats", s.handleAssetStats)

	// WebSocket event feed
	s.mux.HandleFunc("/ws", s.handleWebSocket)
}
