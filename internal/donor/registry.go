package donor

import (
	"bloodlink/internal/blood"
)

// Registry stores donors partitioned by blood type, preserving insertion
// order within each partition. It carries no lock of its own: the engine
// serializes all access under its single mutex, because a match must read,
// select, and mutate atomically relative to any other match.
type Registry struct {
	byType  map[blood.Type][]*Donor
	nextSeq uint64
}

func NewRegistry() *Registry {
	return &Registry{byType: make(map[blood.Type][]*Donor, len(blood.All))}
}

// Add stores a donor and stamps its registry-wide insertion order. The caller
// has already validated blood type and site.
func (r *Registry) Add(d *Donor) {
	d.seq = r.nextSeq
	r.nextSeq++
	r.byType[d.BloodType] = append(r.byType[d.BloodType], d)
}

// ListByType returns the donors of one type in insertion order. Cost is
// proportional to the number of matching donors.
func (r *Registry) ListByType(t blood.Type) []*Donor {
	donors := r.byType[t]
	out := make([]*Donor, len(donors))
	copy(out, donors)
	return out
}

// All returns every donor, grouped by canonical type order and by insertion
// order within a type.
func (r *Registry) All() []*Donor {
	var out []*Donor
	for _, t := range blood.All {
		out = append(out, r.byType[t]...)
	}
	return out
}
