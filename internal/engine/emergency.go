package engine

import (
	"context"
	"errors"
	"time"

	"bloodlink/internal/emergency"
	"bloodlink/internal/ledger"
	dErrors "bloodlink/pkg/domain-errors"
	"bloodlink/pkg/platform/sentinel"
)

// EmergencyOutcome reports one processed ticket. The ticket is consumed
// whether or not a donor was found: MatchErr carries the failure so the
// caller can escalate, but the ticket is never re-enqueued. That is the
// triage policy, not a defect — the queue must never stall on an unmatchable
// ticket.
type EmergencyOutcome struct {
	Ticket    emergency.Ticket
	Match     *MatchResult
	MatchErr  error
	Remaining int
}

// SubmitEmergency validates and enqueues an emergency ticket, returning the
// stored ticket (as a copy) and its current position in the queue.
func (e *Engine) SubmitEmergency(ctx context.Context, urgency int, patient emergency.Patient) (emergency.Ticket, int, error) {
	e.mu.Lock()
	ticket, err := e.queue.Submit(urgency, patient, e.now())
	depth := e.queue.Len()
	e.mu.Unlock()

	if err != nil {
		return emergency.Ticket{}, 0, err
	}

	e.metrics.IncEmergenciesSubmitted()
	e.metrics.SetQueueDepth(depth)
	e.logger.InfoContext(ctx, "emergency ticket queued",
		"ticket_id", ticket.ID,
		"urgency", ticket.Urgency,
		"position", depth,
	)
	return *ticket, depth, nil
}

// ProcessNextEmergency dequeues the most urgent ticket and attempts a match
// for its patient. Returns CodeQueueEmpty when nothing is waiting; any match
// failure is reported inside the outcome, alongside the consumed ticket.
func (e *Engine) ProcessNextEmergency(ctx context.Context) (*EmergencyOutcome, error) {
	start := time.Now()

	e.mu.Lock()
	ticket, err := e.queue.Pop()
	if err != nil {
		e.mu.Unlock()
		if errors.Is(err, sentinel.ErrEmpty) {
			return nil, dErrors.New(dErrors.CodeQueueEmpty, "no emergency requests in queue")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to dequeue ticket")
	}
	res, matchErr := e.matchLocked(ledger.KindEmergency, ticket.Urgency, ticket.Patient.BloodGroup, ticket.Patient.Location)
	remaining := e.queue.Len()
	e.mu.Unlock()

	e.metrics.SetQueueDepth(remaining)
	if matchErr != nil {
		e.metrics.IncMatchFailure(string(dErrors.CodeOf(matchErr)))
		e.logger.WarnContext(ctx, "emergency processed without match",
			"ticket_id", ticket.ID,
			"urgency", ticket.Urgency,
			"error", matchErr.Error(),
		)
	} else {
		e.metrics.IncMatchCompleted(string(ledger.KindEmergency))
		e.metrics.ObserveMatch(start)
		e.logger.InfoContext(ctx, "emergency processed",
			"ticket_id", ticket.ID,
			"urgency", ticket.Urgency,
			"donor_id", res.Donor.ID,
			"distance_km", res.DistanceKm,
		)
	}

	return &EmergencyOutcome{
		Ticket:    *ticket,
		Match:     res,
		MatchErr:  matchErr,
		Remaining: remaining,
	}, nil
}

// QueueSnapshot returns the waiting tickets in priority order without
// consuming anything.
func (e *Engine) QueueSnapshot(ctx context.Context) []emergency.Ticket {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.queue.Snapshot()
}
