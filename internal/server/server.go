package server

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/claude/liftcoach/internal/models"
	"github.com/go-chi/chi/v5"
)

// Store is the persistence surface the HTTP handlers need.
type Store interface {
	InsertSet(ctx context.Context, userID int, set models.WorkoutSet) (*models.SetRow, error)
	LastSet(ctx context.Context, userID int, exerciseID string) (*models.SetRow, error)
	RecentSets(ctx context.Context, userID int, limit int) ([]models.SetRow, error)
	UpsertPersonalRecord(ctx context.Context, record models.PersonalRecord) (bool, error)
	ListPersonalRecords(ctx context.Context, userID int) ([]models.PersonalRecord, error)
}

// Server holds dependencies for HTTP handlers.
type Server struct {
	store  Store
	mcp    http.Handler
	log    *slog.Logger
	apiKey string
	router chi.Router
}

// New creates a new Server with all routes configured. The mcpHandler is
// mounted at /mcp and may be nil when MCP-over-HTTP is disabled.
func New(store Store, mcpHandler http.Handler, apiKey string, log *slog.Logger) *Server {
	s := &Server{
		store:  store,
		mcp:    mcpHandler,
		log:    log,
		apiKey: apiKey,
		router: chi.NewRouter(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(RequestLogging(s.log))
	s.router.Use(CORS)

	// Set log and record endpoints (API key required)
	s.router.Route("/api/v1/sets", func(r chi.Router) {
		r.Use(APIKeyAuth(s.apiKey))
		r.Post("/", s.handleInsertSet)
		r.Get("/", s.handleRecentSets)
		r.Get("/last", s.handleLastSet)
	})
	s.router.Route("/api/v1/records", func(r chi.Router) {
		r.Use(APIKeyAuth(s.apiKey))
		r.Get("/", s.handleListRecords)
		r.Put("/", s.handleUpsertRecord)
	})

	// Calculation endpoints (no auth — tsnet handles access)
	s.router.Post("/api/v1/progression", s.handleProgression)
	s.router.Post("/api/v1/plans", s.handleGeneratePlan)
	s.router.Post("/api/v1/effort", s.handleInterpretEffort)
	s.router.Get("/api/v1/periodization", s.handlePeriodization)
	s.router.Get("/api/v1/schedule", s.handleSchedule)
	s.router.Get("/api/v1/formcues", s.handleFormCues)
	s.router.Get("/api/v1/splits", s.handleSplitRecommendations)
	s.router.Get("/api/v1/exercises", s.handleExerciseCatalog)

	if s.mcp != nil {
		s.router.Handle("/mcp", s.mcp)
	}
}
