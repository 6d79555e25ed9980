package api

import (
	"log/slog"
	"net/http"

	"github.com/dmorales/tesiscan/internal/analyzer"
	"github.com/dmorales/tesiscan/internal/config"
	"github.com/dmorales/tesiscan/internal/pipeline"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server is the HTTP API server for tesiscan.
type Server struct {
	router       chi.Router
	orchestrator *pipeline.Orchestrator
	analyzer     *analyzer.Analyzer
	log          *slog.Logger
	cfg          config.Config
}

// NewServer creates and configures the HTTP server.
func NewServer(orch *pipeline.Orchestrator, an *analyzer.Analyzer, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		orchestrator: orch,
		analyzer:     an,
		log:          log,
		cfg:          cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	// Public endpoints.
	r.Get("/health", s.handleHealth)

	// API endpoints, authenticated when a key is configured.
	r.Group(func(r chi.Router) {
		if s.cfg.APIKey != "" {
			r.Use(AuthMiddleware(s.cfg.APIKey, s.log))
		}

		r.Post("/api/analyze", s.handleAnalyze)
		r.Post("/api/analyze/text", s.handleAnalyzeText)
		r.Post("/api/analyze/batch", s.handleBatchAnalyze)
		r.Get("/api/analyze/{jobID}", s.handleAnalyzeStatus)

		r.Get("/api/schema", s.handleSchema)
		r.Get("/api/stats", s.handleStats)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
