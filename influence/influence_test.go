package influence_test

import (
	"testing"

	"github.com/katalvlaran/moma/influence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_Validation covers range rejection and composite collection.
func TestNew_Validation(t *testing.T) {
	_, err := influence.New(20, 10)
	assert.ErrorIs(t, err, influence.ErrInvalidRange)

	f, err := influence.New(8, 12)
	require.NoError(t, err)
	// Composites 8, 9, 10, 12 (11 is prime).
	assert.Equal(t, map[uint64]float64{8: 3, 9: 2, 10: 2, 12: 3}, f.Masses())
}

// TestAt_OnCompositeClampsDistance verifies a point sitting on a
// composite contributes its full mass (clamped dist² = 1).
func TestAt_OnCompositeClampsDistance(t *testing.T) {
	f, err := influence.New(8, 8) // only composite 8, mass 3
	require.NoError(t, err)

	assert.InDelta(t, 3.0, f.At(8), 1e-12, "on-composite point")
	assert.InDelta(t, 3.0/4.0, f.At(10), 1e-12, "dist 2 → mass/4")
}

// TestAt_DecaysWithDistance verifies influence falls off away from the
// composite cluster.
func TestAt_DecaysWithDistance(t *testing.T) {
	f, err := influence.New(1, 30)
	require.NoError(t, err)

	near := f.At(24) // inside the dense 24..28 composite run
	far := f.At(1000)
	assert.Greater(t, near, far, "influence must decay with distance")
	assert.Positive(t, far)
}

// TestNew_PrimeOnlyRangeIsEmpty verifies a range without composites
// yields zero influence everywhere.
func TestNew_PrimeOnlyRangeIsEmpty(t *testing.T) {
	f, err := influence.New(2, 3)
	require.NoError(t, err)
	assert.Empty(t, f.Masses())
	assert.Zero(t, f.At(2.5))
}
