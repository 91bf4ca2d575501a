// Package api exposes the grading engine over HTTP.
package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"storytutor/internal/evaluate"
	"storytutor/internal/rubric"
)

// Server bundles the handlers' dependencies.
type Server struct {
	engine   *evaluate.Engine
	registry *rubric.Registry
	log      *slog.Logger
}

// NewServer creates the HTTP server facade.
func NewServer(engine *evaluate.Engine, registry *rubric.Registry, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{engine: engine, registry: registry, log: log}
}

// Router builds the chi router with middleware and all routes.
func (s *Server) Router(allowedOrigins []string) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/healthz", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Get("/stories", s.handleListStories)
		r.Get("/stories/{story}/questions", s.handleListQuestions)
		r.Post("/check", s.handleCheck)
		r.Post("/questions/{questionID}/check", s.handleCheckQuestion)
	})

	return r
}
