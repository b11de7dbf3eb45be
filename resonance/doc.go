// Package resonance finds primes whose moma signature "resonates" with
// a second, independently supplied numeric property of the same prime.
//
// What:
//
//   - A Finder couples a signature ring (modulus + strategy) with a
//     PropertyFunc, any unary integer property of a prime
//     (primes.PrimeFactorMass is the classic choice).
//   - Resonance at p: property(p) ≠ 0 and signature(p) is an exact
//     multiple of property(p). A zero property never resonates, by
//     definition, so no division by zero can occur.
//   - FindInRange scans every prime in the closed range [low, high] in
//     ascending order and reports each resonance as an Event.
//
// Why:
//
//   - Alignments between a prime's reduced signature and an unrelated
//     arithmetic property are exactly the "structural coincidences" the
//     moving-origin construction exists to surface.
//
// Boundary behavior:
//
//   - A range containing p = 2 fails under a predecessor-requiring
//     strategy (primes.ErrNoPredecessor propagates); start the scan at
//     3 for such strategies.
//
// Complexity: O(π(high) · (signature + property cost)) per scan.
//
// Errors (sentinel):
//
//   - ErrNilProperty  — no property function supplied.
//   - ErrInvalidRange — low > high.
//   - ring.ErrInvalidModulus / ring.ErrNilStrategy at construction.
package resonance
