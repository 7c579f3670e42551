package emergency

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "bloodlink/pkg/domain-errors"
	"bloodlink/pkg/platform/sentinel"
)

var submitTime = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func TestSubmitValidatesUrgency(t *testing.T) {
	q := NewQueue()
	for _, urgency := range []int{0, -1, 6, 100} {
		_, err := q.Submit(urgency, Patient{BloodGroup: "O-", Location: "Hospital A"}, submitTime)
		require.Error(t, err, "urgency %d", urgency)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidUrgency))
	}
	assert.Equal(t, 0, q.Len(), "rejected tickets must not enter the queue")
}

// Submissions with urgencies (3,1,3,2) dequeue as 1, 2, 3, 3 with the two
// urgency-3 tickets in their original submission order.
func TestDequeueOrder(t *testing.T) {
	q := NewQueue()
	var ids []string
	for _, urgency := range []int{3, 1, 3, 2} {
		tk, err := q.Submit(urgency, Patient{BloodGroup: "O-", Location: "Hospital A"}, submitTime)
		require.NoError(t, err)
		ids = append(ids, tk.ID)
	}

	var got []int
	var gotIDs []string
	for q.Len() > 0 {
		tk, err := q.Pop()
		require.NoError(t, err)
		got = append(got, tk.Urgency)
		gotIDs = append(gotIDs, tk.ID)
	}
	assert.Equal(t, []int{1, 2, 3, 3}, got)
	assert.Equal(t, ids[0], gotIDs[2], "first urgency-3 ticket dequeues before the second")
	assert.Equal(t, ids[2], gotIDs[3])
}

func TestPopEmpty(t *testing.T) {
	q := NewQueue()
	_, err := q.Pop()
	require.ErrorIs(t, err, sentinel.ErrEmpty)
	assert.Equal(t, 0, q.Len())
}

func TestSnapshotDoesNotConsume(t *testing.T) {
	q := NewQueue()
	for _, urgency := range []int{5, 2, 4} {
		_, err := q.Submit(urgency, Patient{BloodGroup: "A+", Location: "Hospital B"}, submitTime)
		require.NoError(t, err)
	}

	snap := q.Snapshot()
	require.Len(t, snap, 3)
	assert.Equal(t, 2, snap[0].Urgency)
	assert.Equal(t, 4, snap[1].Urgency)
	assert.Equal(t, 5, snap[2].Urgency)

	assert.Equal(t, 3, q.Len(), "snapshot must not consume")

	// The sequence counter is untouched: a new submission still orders after
	// the existing tickets at equal urgency.
	tk, err := q.Submit(2, Patient{BloodGroup: "A+", Location: "Hospital B"}, submitTime)
	require.NoError(t, err)
	popped, err := q.Pop()
	require.NoError(t, err)
	assert.NotEqual(t, tk.ID, popped.ID, "earlier urgency-2 ticket wins")
}

func TestSequenceNeverReused(t *testing.T) {
	q := NewQueue()
	t1, err := q.Submit(1, Patient{}, submitTime)
	require.NoError(t, err)
	_, err = q.Pop()
	require.NoError(t, err)

	t2, err := q.Submit(1, Patient{}, submitTime)
	require.NoError(t, err)
	assert.Greater(t, t2.Seq, t1.Seq)
}
