// Package entropy computes Shannon entropy over frequency
// distributions of observed values.
//
// What:
//
//   - Calculator[T] accumulates observations of any comparable type and
//     reports H(X) = −Σ p·log2(p) over the non-zero categories seen so
//     far, with p = count/total.
//   - Of and FromCounts are one-shot conveniences for slices and
//     pre-counted distributions.
//
// Why:
//
//   - Several analyzers (gapfield class scoring, scenario reports)
//     share this one scoring rule; a uniform distribution over k
//     categories scores exactly log2(k), a constant sequence scores 0.
//
// Numerical notes:
//
//   - Probabilities are derived once from the final totals, never by
//     repeated incremental division, so large counts do not drift.
//   - Zero observations and single-category distributions are defined
//     results (0), not errors.
//
// Complexity: TotalEntropy is O(k) over k distinct categories;
// Add is O(1) amortized.
package entropy
