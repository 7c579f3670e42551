package engine

import (
	"context"
	"strings"
	"time"

	"bloodlink/internal/blood"
	"bloodlink/internal/donor"
	"bloodlink/internal/geo"
	"bloodlink/internal/ledger"
	dErrors "bloodlink/pkg/domain-errors"
)

// MatchResult is the outcome of a successful match. Donor is a post-mutation
// copy of the chosen record; Record is the ledger entry that was appended in
// the same critical section.
type MatchResult struct {
	Donor      donor.Donor
	DistanceKm float64
	Record     ledger.Record
}

// Match finds the best donor for a normal (non-emergency) patient request and
// consumes that donor's eligibility: under one critical section the donor's
// cooldown restarts and the match is appended to the ledger. A record is
// never written without the donor mutation, and vice versa.
func (e *Engine) Match(ctx context.Context, bloodGroup, location string) (*MatchResult, error) {
	start := time.Now()

	e.mu.Lock()
	res, err := e.matchLocked(ledger.KindNormal, 0, bloodGroup, location)
	e.mu.Unlock()

	if err != nil {
		e.metrics.IncMatchFailure(string(dErrors.CodeOf(err)))
		e.logger.WarnContext(ctx, "match failed",
			"blood_group", bloodGroup,
			"location", location,
			"error", err.Error(),
		)
		return nil, err
	}

	e.metrics.IncMatchCompleted(string(ledger.KindNormal))
	e.metrics.ObserveMatch(start)
	e.logger.InfoContext(ctx, "match completed",
		"donor_id", res.Donor.ID,
		"distance_km", res.DistanceKm,
	)
	return res, nil
}

// matchLocked runs the full match sequence. Callers hold the write lock.
func (e *Engine) matchLocked(kind ledger.Kind, urgency int, bloodGroup, location string) (*MatchResult, error) {
	patientType, err := blood.Normalize(bloodGroup)
	if err != nil {
		return nil, err
	}
	patientSite := geo.Site(strings.TrimSpace(location))
	if !e.graph.HasSite(patientSite) {
		return nil, dErrors.New(dErrors.CodeInvalidSite, "unknown location")
	}

	best, distance, err := e.selectDonorLocked(patientType, patientSite)
	if err != nil {
		return nil, err
	}

	// The donor mutation and the ledger append form one indivisible unit
	// under the engine lock.
	now := e.now()
	best.MarkDonated(now)
	rec := ledger.Record{
		Timestamp: now,
		Kind:      kind,
		Urgency:   urgency,
		Patient:   ledger.PatientSnapshot{BloodType: patientType, Site: patientSite},
		Donor: ledger.DonorSnapshot{
			ID:        best.ID,
			Name:      best.Name,
			BloodType: best.BloodType,
			Site:      best.Site,
		},
		DistanceKm: distance,
	}
	e.ledger.Append(rec)

	return &MatchResult{Donor: *best, DistanceKm: distance, Record: rec}, nil
}

// selectDonorLocked picks the eligible compatible donor nearest to the
// patient. Ties on distance go to the first-registered donor, which keeps
// selection deterministic and stable. Callers hold the lock.
func (e *Engine) selectDonorLocked(patientType blood.Type, patientSite geo.Site) (*donor.Donor, float64, error) {
	types, err := blood.CompatibleDonorTypes(patientType)
	if err != nil {
		return nil, 0, err
	}

	var pool []*donor.Donor
	for _, t := range types {
		pool = append(pool, e.registry.ListByType(t)...)
	}
	if len(pool) == 0 {
		return nil, 0, dErrors.New(dErrors.CodeNoCompatibleDonors, "no compatible donors registered")
	}

	now := e.now()
	var best *donor.Donor
	bestDistance := geo.Unreachable
	eligible := 0
	for _, d := range pool {
		if !d.Eligible(now) {
			continue
		}
		eligible++
		dist := e.graph.ShortestDistance(patientSite, d.Site)
		if geo.IsUnreachable(dist) {
			continue
		}
		if best == nil || dist < bestDistance || (dist == bestDistance && d.Seq() < best.Seq()) {
			best = d
			bestDistance = dist
		}
	}
	if eligible == 0 {
		return nil, 0, dErrors.New(dErrors.CodeNoEligibleDonors, "no eligible donor found")
	}
	if best == nil {
		// Eligible donors exist but none is reachable from the patient site.
		return nil, 0, dErrors.New(dErrors.CodeNoEligibleDonors, "no eligible donor reachable")
	}
	return best, bestDistance, nil
}
