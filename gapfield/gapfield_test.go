package gapfield_test

import (
	"testing"

	"github.com/katalvlaran/moma/gapfield"
	"github.com/katalvlaran/moma/goldbach"
	"github.com/katalvlaran/moma/influence"
	"github.com/katalvlaran/moma/primes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_Validation covers modulus and ordering preconditions.
func TestNew_Validation(t *testing.T) {
	_, err := gapfield.New([]uint64{2, 3, 5}, 0)
	assert.ErrorIs(t, err, gapfield.ErrZeroModulus)

	_, err = gapfield.New([]uint64{2, 5, 3}, 6)
	assert.ErrorIs(t, err, gapfield.ErrNotAscending, "out of order")

	_, err = gapfield.New([]uint64{2, 3, 3}, 6)
	assert.ErrorIs(t, err, gapfield.ErrNotAscending, "duplicates are not strictly increasing")

	f, err := gapfield.New([]uint64{13}, 6)
	require.NoError(t, err, "a single prime forms zero gaps")
	assert.Empty(t, f.Gaps())

	f, err = gapfield.New(nil, 6)
	require.NoError(t, err, "an empty sequence forms zero gaps")
	assert.Empty(t, f.Gaps())
}

// TestGaps_SizesClassesOffsets pins sizes, residue classes and
// whole-sequence-mean offsets on a hand-computed sequence.
func TestGaps_SizesClassesOffsets(t *testing.T) {
	f, err := gapfield.New([]uint64{2, 3, 5, 7, 11, 13}, 6)
	require.NoError(t, err)

	gaps := f.Gaps()
	require.Len(t, gaps, 5)

	// Sizes 1,2,2,4,2; mean 2.2.
	wantSizes := []uint64{1, 2, 2, 4, 2}
	wantClasses := []uint64{1, 2, 2, 4, 2}
	wantOffsets := []float64{-1.2, -0.2, -0.2, 1.8, -0.2}
	for i, g := range gaps {
		assert.Equal(t, wantSizes[i], g.Size, "gap %d size", i)
		assert.Equal(t, wantClasses[i], g.ResidueClass, "gap %d class", i)
		assert.InDelta(t, wantOffsets[i], g.BaryOffset, 1e-12, "gap %d offset", i)
	}
	assert.Equal(t, uint64(2), gaps[0].StartPrime)
	assert.Equal(t, uint64(3), gaps[0].EndPrime)
}

// TestFilterByBaryOffset_ReferenceVector pins a hand-checked vector: over the
// primes up to 100 with threshold 3.0, exactly the [89, 97] gap remains
// (offset ≈ +4.04 against the mean gap size 3.958).
func TestFilterByBaryOffset_ReferenceVector(t *testing.T) {
	f, err := gapfield.New(primes.PrimesUpTo(100), 6)
	require.NoError(t, err)

	outliers := f.FilterByBaryOffset(3.0)
	require.Len(t, outliers, 1, "exactly one outlier above 3.0")
	assert.Equal(t, uint64(89), outliers[0].StartPrime)
	assert.Equal(t, uint64(97), outliers[0].EndPrime)
	assert.Greater(t, outliers[0].BaryOffset, 3.0)
	assert.InDelta(t, 4.0417, outliers[0].BaryOffset, 1e-3)
}

// TestFilterByClass groups the classic mod-6 structure: every prime gap
// above the 2→3 gap is even, so odd classes stay near-empty.
func TestFilterByClass(t *testing.T) {
	f, err := gapfield.New(primes.PrimesUpTo(100), 6)
	require.NoError(t, err)

	class1 := f.FilterByClass(1)
	require.Len(t, class1, 1, "only 2→3 has odd size")
	assert.Equal(t, uint64(2), class1[0].StartPrime)

	for _, g := range f.FilterByClass(2) {
		assert.Equal(t, uint64(2), g.Size%6, "class-2 member %v", g)
	}
}

// TestEntropyByClass verifies the per-class size-distribution entropy:
// classes whose gaps all share one size score 0, mixed classes score
// the entropy of their size split.
func TestEntropyByClass(t *testing.T) {
	f, err := gapfield.New(primes.PrimesUpTo(100), 6)
	require.NoError(t, err)

	scores := f.EntropyByClass()
	require.Contains(t, scores, uint64(0))
	require.Contains(t, scores, uint64(1))
	require.Contains(t, scores, uint64(2))
	require.Contains(t, scores, uint64(4))

	assert.Zero(t, scores[0], "class 0: every gap has size 6")
	assert.Zero(t, scores[1], "class 1: single gap")
	assert.Zero(t, scores[4], "class 4: every gap has size 4")
	// Class 2 holds sizes {2×8, 8×1}: H = −(8/9)log2(8/9) − (1/9)log2(1/9).
	assert.InDelta(t, 0.50326, scores[2], 1e-4)
}

// TestWithCompositeInfluence verifies influence modulation derives a
// new field and leaves the receiver untouched.
func TestWithCompositeInfluence(t *testing.T) {
	f, err := gapfield.New(primes.PrimesUpTo(50), 6)
	require.NoError(t, err)
	inf, err := influence.New(1, 50)
	require.NoError(t, err)

	modulated := f.WithCompositeInfluence(inf)
	original := f.Gaps()
	adjusted := modulated.Gaps()
	require.Len(t, adjusted, len(original))

	for i := range original {
		assert.Greater(t, adjusted[i].BaryOffset, original[i].BaryOffset,
			"influence is strictly positive inside the range (gap %d)", i)
		assert.Equal(t, original[i].Size, adjusted[i].Size, "sizes unchanged")
	}
}

// TestProjectGoldbach verifies projection over the field's own primes
// and the odd-target rejection.
func TestProjectGoldbach(t *testing.T) {
	f, err := gapfield.New(primes.PrimesUpTo(100), 6)
	require.NoError(t, err)

	pairs, err := f.ProjectGoldbach(96)
	require.NoError(t, err)
	assert.Contains(t, pairs, goldbach.Pair{A: 7, B: 89})
	for _, pair := range pairs {
		assert.Equal(t, uint64(96), pair.A+pair.B)
	}

	_, err = f.ProjectGoldbach(95)
	assert.ErrorIs(t, err, gapfield.ErrOddTarget)
	_, err = f.ProjectGoldbach(2)
	assert.ErrorIs(t, err, gapfield.ErrOddTarget)
}
