// Package score provides scalar scores for numeric series produced by
// the moma analyzers: peak strength and peak sharpness.
//
// What:
//
//   - SignalToNoise: maximum over mean of a series. High values mean
//     one dominant peak, values near 1 mean a flat series.
//   - Kurtosis: normalized fourth moment (μ₄/σ⁴). Sharp, heavy-tailed
//     distributions score high; a constant series scores 0 by
//     convention (σ = 0).
//
// Why:
//
//   - Drift histories and influence profiles are unbounded float
//     series; these two scores compress them into comparable scalars
//     for ranking strategies and ranges.
//
// Degenerate inputs (empty or constant series) return defined values,
// never errors or NaNs.
package score
