package emergency

import (
	"container/heap"
	"sort"
	"time"

	"github.com/google/uuid"

	dErrors "bloodlink/pkg/domain-errors"
	"bloodlink/pkg/platform/sentinel"
)

// Patient is the snapshot carried by a ticket. Fields are kept as submitted:
// blood group and location are validated when the ticket is processed, not
// when it is queued, so a malformed ticket surfaces its error to the operator
// who processes it.
type Patient struct {
	BloodGroup string `json:"blood_group"`
	Location   string `json:"location"`
}

// Ticket is an admission request waiting in the emergency queue.
//
// Invariants:
//   - Urgency is 1..5, 1 most urgent
//   - Seq is monotonically increasing and never reused, giving equal-urgency
//     tickets a strict FIFO order
//   - a ticket is removed exactly once and never re-enqueued
type Ticket struct {
	ID          string    `json:"id"`
	Urgency     int       `json:"urgency_level"`
	Seq         uint64    `json:"-"`
	Patient     Patient   `json:"patient"`
	SubmittedAt time.Time `json:"timestamp"`
}

// Queue is a priority-ordered admission queue keyed by (urgency asc, seq
// asc). Like the donor registry it carries no lock: the engine serializes all
// access.
type Queue struct {
	items   ticketHeap
	nextSeq uint64
}

func NewQueue() *Queue {
	return &Queue{}
}

// Submit validates urgency, assigns the next sequence number, and inserts the
// ticket. Returns CodeInvalidUrgency for urgency outside 1..5.
func (q *Queue) Submit(urgency int, patient Patient, now time.Time) (*Ticket, error) {
	if urgency < 1 || urgency > 5 {
		return nil, dErrors.New(dErrors.CodeInvalidUrgency, "urgency level must be an integer between 1 and 5")
	}
	q.nextSeq++
	t := &Ticket{
		ID:          uuid.NewString(),
		Urgency:     urgency,
		Seq:         q.nextSeq,
		Patient:     patient,
		SubmittedAt: now,
	}
	heap.Push(&q.items, t)
	return t, nil
}

// Pop removes and returns the minimal ticket by (urgency, seq). Returns
// sentinel.ErrEmpty when the queue holds nothing.
func (q *Queue) Pop() (*Ticket, error) {
	if q.items.Len() == 0 {
		return nil, sentinel.ErrEmpty
	}
	return heap.Pop(&q.items).(*Ticket), nil
}

// Len returns the number of waiting tickets.
func (q *Queue) Len() int { return q.items.Len() }

// Snapshot returns the waiting tickets in priority order without altering the
// queue or its sequence counter.
func (q *Queue) Snapshot() []Ticket {
	out := make([]Ticket, q.items.Len())
	for i, t := range q.items {
		out[i] = *t
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Urgency != out[j].Urgency {
			return out[i].Urgency < out[j].Urgency
		}
		return out[i].Seq < out[j].Seq
	})
	return out
}

// ticketHeap orders tickets by urgency ascending, then sequence ascending.
type ticketHeap []*Ticket

func (h ticketHeap) Len() int { return len(h) }
func (h ticketHeap) Less(i, j int) bool {
	if h[i].Urgency != h[j].Urgency {
		return h[i].Urgency < h[j].Urgency
	}
	return h[i].Seq < h[j].Seq
}
func (h ticketHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *ticketHeap) Push(x interface{}) { *h = append(*h, x.(*Ticket)) }
func (h *ticketHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return item
}
