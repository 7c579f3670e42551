package engine

import (
	"context"

	"github.com/google/uuid"

	"bloodlink/internal/blood"
	"bloodlink/internal/ledger"
)

// TypeStats summarizes one blood type's donor pool.
type TypeStats struct {
	Total    int `json:"total"`
	Eligible int `json:"eligible"`
}

// Stats recomputes per-type donor counts live against the eligibility rule.
// Every canonical type gets a row, including empty pools. Nothing is cached:
// eligibility depends on the current time.
func (e *Engine) Stats(ctx context.Context) map[blood.Type]TypeStats {
	e.mu.RLock()
	defer e.mu.RUnlock()

	now := e.now()
	stats := make(map[blood.Type]TypeStats, len(blood.All))
	for _, t := range blood.All {
		donors := e.registry.ListByType(t)
		eligible := 0
		for _, d := range donors {
			if d.Eligible(now) {
				eligible++
			}
		}
		stats[t] = TypeStats{Total: len(donors), Eligible: eligible}
	}
	return stats
}

// HistoryEntry is a ledger record dressed with a display-only identifier. The
// identifier is assigned per query and is not stable across calls.
type HistoryEntry struct {
	MatchID string `json:"match_id"`
	ledger.Record
}

// History returns all completed matches, most recent first.
func (e *Engine) History(ctx context.Context) []HistoryEntry {
	e.mu.RLock()
	defer e.mu.RUnlock()

	records := e.ledger.Query()
	out := make([]HistoryEntry, len(records))
	for i, rec := range records {
		out[i] = HistoryEntry{MatchID: uuid.NewString(), Record: rec}
	}
	return out
}
