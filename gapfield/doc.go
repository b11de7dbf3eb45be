// Package gapfield analyzes the statistical structure of gaps between
// consecutive primes: sizes, deviations from the local average, residue
// classes and per-class entropy.
//
// What:
//
//   - Field is built from a caller-supplied, strictly increasing prime
//     sequence and a grouping modulus N.
//   - Gaps() returns one Gap per consecutive pair: start/end primes,
//     size, residue class (size mod N) and barycentric offset.
//   - Window policy: the barycentric offset is the gap's deviation from
//     the mean gap size of the whole sequence. The same policy backs
//     FilterByBaryOffset, so thresholds are comparable across calls.
//   - EntropyByClass() scores the Shannon entropy of the gap-size
//     distribution within each residue class.
//   - WithCompositeInfluence derives a new field whose offsets are
//     modulated by an influence.Field (inverse-square pull of nearby
//     composite mass at each gap's midpoint); the original field is
//     untouched — gaps are immutable once computed.
//   - ProjectGoldbach suggests Goldbach pairs for an even target using
//     only the primes already in the field.
//
// Why:
//
//   - Prime gaps modulo small N (6 is the classic choice: every prime
//     above 3 is 6k±1) expose residue-class structure that plain gap
//     histograms hide.
//
// Complexity: construction O(n) over n primes; EntropyByClass O(n);
// ProjectGoldbach O(n).
//
// Errors (sentinel):
//
//   - ErrZeroModulus  — grouping modulus 0.
//   - ErrNotAscending — the prime sequence is not strictly increasing.
//   - ErrOddTarget    — ProjectGoldbach target is odd or below 4.
package gapfield
