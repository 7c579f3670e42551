package engine

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"bloodlink/internal/blood"
	"bloodlink/internal/donor"
	"bloodlink/internal/emergency"
	"bloodlink/internal/geo"
	"bloodlink/internal/ledger"
	"bloodlink/internal/platform/metrics"
	dErrors "bloodlink/pkg/domain-errors"
)

// Engine owns all mutable matching state: the donor registry, the emergency
// queue, and the match ledger. Every state-mutating operation is serialized
// under one mutex spanning the whole engine. Finer-grained locking would be
// unsafe: a match is a read-select-mutate-record sequence that must be atomic
// relative to any other match, or two concurrent emergency dequeues could
// both claim the same donor. Pure reads take the read lock and observe a
// consistent pre- or post-mutation snapshot.
type Engine struct {
	mu       sync.RWMutex
	graph    *geo.Graph
	registry *donor.Registry
	queue    *emergency.Queue
	ledger   *ledger.Ledger

	logger  *slog.Logger
	metrics *metrics.Metrics
	now     func() time.Time
}

// Option configures optional engine collaborators.
type Option func(*Engine)

// WithLogger attaches a structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) { e.logger = logger }
}

// WithMetrics attaches Prometheus metrics.
func WithMetrics(m *metrics.Metrics) Option {
	return func(e *Engine) { e.metrics = m }
}

// WithClock overrides the engine clock; tests pin time with it.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// New builds an engine over the given site graph. The graph is the only
// required collaborator; it is immutable and shared.
func New(graph *geo.Graph, opts ...Option) *Engine {
	e := &Engine{
		graph:    graph,
		registry: donor.NewRegistry(),
		queue:    emergency.NewQueue(),
		ledger:   ledger.New(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return e
}

// RegisterInput carries raw donor registration fields. Field presence is the
// boundary layer's job; the engine validates blood type and site.
type RegisterInput struct {
	Name         string
	BloodGroup   string
	Location     string
	LastDonation string
}

// RegisterDonor validates and stores a new donor. The returned donor is a
// copy: the registry retains exclusive ownership of the live record.
func (e *Engine) RegisterDonor(ctx context.Context, in RegisterInput) (donor.Donor, error) {
	t, err := blood.Normalize(in.BloodGroup)
	if err != nil {
		return donor.Donor{}, err
	}
	site := geo.Site(strings.TrimSpace(in.Location))
	if !e.graph.HasSite(site) {
		return donor.Donor{}, dErrors.New(dErrors.CodeInvalidSite, "unknown location")
	}

	d := &donor.Donor{
		ID:           uuid.NewString(),
		Name:         in.Name,
		BloodType:    t,
		Site:         site,
		LastDonation: strings.TrimSpace(in.LastDonation),
	}

	e.mu.Lock()
	e.registry.Add(d)
	out := *d
	e.mu.Unlock()

	e.metrics.IncDonorsRegistered()
	e.logger.InfoContext(ctx, "donor registered",
		"donor_id", out.ID,
		"blood_group", out.BloodType,
		"location", out.Site,
	)
	return out, nil
}

// Donors returns every registered donor, grouped by canonical blood type
// order and insertion order within a type.
func (e *Engine) Donors(ctx context.Context) []donor.Donor {
	e.mu.RLock()
	defer e.mu.RUnlock()
	all := e.registry.All()
	out := make([]donor.Donor, len(all))
	for i, d := range all {
		out[i] = *d
	}
	return out
}

// DonorsByType returns the donors of one blood type in insertion order.
func (e *Engine) DonorsByType(ctx context.Context, bloodGroup string) ([]donor.Donor, error) {
	t, err := blood.Normalize(bloodGroup)
	if err != nil {
		return nil, err
	}
	e.mu.RLock()
	defer e.mu.RUnlock()
	donors := e.registry.ListByType(t)
	out := make([]donor.Donor, len(donors))
	for i, d := range donors {
		out[i] = *d
	}
	return out, nil
}
