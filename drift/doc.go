// Package drift provides OriginDrift, a streaming analyzer that tracks
// how volatile a strategy's signatures are over a sequence of primes.
//
// What:
//
//   - A Drift instance owns an internal signature ring (fixed modulus +
//     strategy) and a running accumulator of successive signature
//     deltas.
//   - Next(p) feeds one prime: its signature is computed and the
//     absolute difference to the previous signature is accumulated.
//   - DriftMagnitude() reports the mean absolute successive difference:
//     0 for zero or one observations, 0 for a perfectly constant
//     signature sequence, strictly positive as soon as any signature
//     differs, and non-decreasing in the spread of the deltas for a
//     fixed sequence length.
//
// Why:
//
//   - Comparing the magnitude of two analyzers fed the same primes
//     ranks origin strategies by volatility — the original motivating
//     experiment for the moving-origin construction.
//
// Concurrency:
//
//   - A Drift instance is the one mutable accumulator in moma's core.
//     Construct one instance per goroutine, or guard a shared instance
//     with external mutual exclusion; the package itself does not lock.
//
// Errors:
//
//   - Construction and Next propagate ring/strategy errors unchanged
//     (ring.ErrInvalidModulus, primes.ErrNoPredecessor, ...). A failed
//     Next leaves the accumulator untouched.
package drift
