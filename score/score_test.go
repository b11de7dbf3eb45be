package score_test

import (
	"testing"

	"github.com/katalvlaran/moma/score"
	"github.com/stretchr/testify/assert"
)

// TestSignalToNoise covers flat, peaked and degenerate series.
func TestSignalToNoise(t *testing.T) {
	assert.Zero(t, score.SignalToNoise(nil), "empty series")
	assert.Zero(t, score.SignalToNoise([]float64{1, -1}), "zero mean")

	assert.InDelta(t, 1.0, score.SignalToNoise([]float64{2, 2, 2, 2}), 1e-12, "flat series")

	// mean = 2, max = 5 → 2.5.
	assert.InDelta(t, 2.5, score.SignalToNoise([]float64{1, 1, 1, 5}), 1e-12)
}

// TestKurtosis covers constant, two-point and peaked series.
func TestKurtosis(t *testing.T) {
	assert.Zero(t, score.Kurtosis(nil), "empty series")
	assert.Zero(t, score.Kurtosis([]float64{3, 3, 3}), "constant series (σ=0)")

	// A symmetric two-point distribution has kurtosis exactly 1.
	assert.InDelta(t, 1.0, score.Kurtosis([]float64{-1, 1}), 1e-12)

	// A single spike among zeros is sharper than the two-point case.
	spiky := score.Kurtosis([]float64{0, 0, 0, 0, 0, 0, 0, 10})
	assert.Greater(t, spiky, 1.0)
}
