package ledger

import (
	"time"

	"bloodlink/internal/blood"
	"bloodlink/internal/geo"
)

// Kind distinguishes how a match was initiated.
type Kind string

const (
	KindNormal    Kind = "Normal"
	KindEmergency Kind = "Emergency"
)

// PatientSnapshot captures the patient side of a match at match time.
type PatientSnapshot struct {
	BloodType blood.Type `json:"blood_group"`
	Site      geo.Site   `json:"location"`
}

// DonorSnapshot captures the donor side of a match at match time. The live
// donor record keeps mutating afterwards; the snapshot does not.
type DonorSnapshot struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	BloodType blood.Type `json:"blood_group"`
	Site      geo.Site   `json:"location"`
}

// Record is one completed match. Immutable once appended.
type Record struct {
	Timestamp  time.Time       `json:"timestamp"`
	Kind       Kind            `json:"match_type"`
	Urgency    int             `json:"urgency_level,omitempty"`
	Patient    PatientSnapshot `json:"patient"`
	Donor      DonorSnapshot   `json:"donor"`
	DistanceKm float64         `json:"distance_km"`
}

// Ledger is the append-only history of completed matches. The engine
// serializes access; entries are never mutated after creation.
type Ledger struct {
	records []Record
}

func New() *Ledger {
	return &Ledger{}
}

// Append records a completed match.
func (l *Ledger) Append(rec Record) {
	l.records = append(l.records, rec)
}

// Query returns all records, most recent first.
func (l *Ledger) Query() []Record {
	out := make([]Record, len(l.records))
	for i, rec := range l.records {
		out[len(l.records)-1-i] = rec
	}
	return out
}

// Len returns the number of recorded matches.
func (l *Ledger) Len() int { return len(l.records) }
