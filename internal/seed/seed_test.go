package seed

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bloodlink/internal/blood"
	"bloodlink/internal/engine"
	"bloodlink/internal/geo"
)

func TestApply(t *testing.T) {
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	eng := engine.New(geo.NewGraph(geo.DefaultTopology()),
		engine.WithClock(func() time.Time { return now }),
	)

	n, err := Apply(context.Background(), eng, now)
	require.NoError(t, err)
	assert.Equal(t, len(fixtures), n)
	assert.Len(t, eng.Donors(context.Background()), len(fixtures))

	// The fixture set mixes eligible and cooling-down donors.
	stats := eng.Stats(context.Background())
	assert.Equal(t, engine.TypeStats{Total: 2, Eligible: 2}, stats[blood.ONeg])
	assert.Equal(t, engine.TypeStats{Total: 1, Eligible: 0}, stats[blood.APos])
}
