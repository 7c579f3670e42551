package httptransport

import (
	"context"
	"log/slog"

	"github.com/go-chi/chi/v5"

	"bloodlink/internal/blood"
	"bloodlink/internal/donor"
	"bloodlink/internal/emergency"
	"bloodlink/internal/engine"
	"bloodlink/internal/platform/metrics"
	"bloodlink/internal/platform/middleware"
)

// Service defines the engine operations the transport layer depends on.
type Service interface {
	RegisterDonor(ctx context.Context, in engine.RegisterInput) (donor.Donor, error)
	Donors(ctx context.Context) []donor.Donor
	DonorsByType(ctx context.Context, bloodGroup string) ([]donor.Donor, error)
	Match(ctx context.Context, bloodGroup, location string) (*engine.MatchResult, error)
	SubmitEmergency(ctx context.Context, urgency int, patient emergency.Patient) (emergency.Ticket, int, error)
	ProcessNextEmergency(ctx context.Context) (*engine.EmergencyOutcome, error)
	QueueSnapshot(ctx context.Context) []emergency.Ticket
	Stats(ctx context.Context) map[blood.Type]engine.TypeStats
	History(ctx context.Context) []engine.HistoryEntry
}

// Handler is the thin HTTP layer. It delegates to the engine without
// embedding business logic so transport concerns remain isolated.
type Handler struct {
	engine  Service
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// New creates the API handler.
func New(engine Service, logger *slog.Logger, m *metrics.Metrics) *Handler {
	return &Handler{engine: engine, logger: logger, metrics: m}
}

// Register mounts the API routes onto r.
func (h *Handler) Register(r chi.Router) {
	api := chi.NewRouter()
	api.Use(middleware.Recovery(h.logger))
	api.Use(middleware.RequestID)
	api.Use(middleware.Logger(h.logger))
	api.Use(middleware.ContentTypeJSON)
	api.Use(middleware.Latency(h.metrics))

	api.Post("/donors", h.handleRegisterDonor)
	api.Get("/donors", h.handleListDonors)
	api.Get("/donors/search", h.handleSearchDonors)
	api.Get("/match", h.handleMatch)
	api.Post("/emergency", h.handleSubmitEmergency)
	api.Post("/emergency/process", h.handleProcessEmergency)
	api.Get("/emergency/queue", h.handleEmergencyQueue)
	api.Get("/stats", h.handleStats)
	api.Get("/matching-history", h.handleHistory)

	r.Mount("/api", api)
}
