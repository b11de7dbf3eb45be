// Package goldbach enumerates the prime pairs summing to even targets,
// the constructive side of Goldbach's conjecture.
//
// What:
//
//   - Projector precomputes the set of all primes up to a limit once,
//     at construction (sieve-backed), then answers arbitrary targets
//     with O(1) membership tests.
//   - Project(n) returns every unordered pair (a, b), a ≤ b, a + b = n,
//     ascending by a. Uniqueness is by unordered pair: (7, 89) and
//     (89, 7) are one result.
//
// Why:
//
//   - Prime-pair structure of even numbers is a standard probe for the
//     sequence patterns the rest of moma studies; sharing one immutable
//     precomputed set across calls keeps repeated projection cheap.
//
// Complexity: construction O(L log log L); Project O(L) per call.
//
// Errors (sentinel):
//
//   - ErrInvalidTarget — n is odd or below 4.
//   - ErrBeyondLimit   — n exceeds twice the precomputation limit, so
//     pairs could not be verified against the prime set.
//
// Concurrency: a Projector is immutable after construction and safe to
// share across goroutines.
package goldbach
