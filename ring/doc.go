// Package ring implements the SignatureRing, the single numeric
// primitive the rest of moma is built around.
//
// What:
//
//   - A Ring couples a modulus with a strategy.OriginStrategy.
//   - Signature(p) = (p + PrevPrime(p) + origin(p)) mod modulus, where
//     origin(p) comes from the ring's strategy and the reduction is
//     Euclidean: the result is always in [0, modulus), even for
//     negative origins.
//   - Residue(value, primeContext) is the general form: reduce any
//     value under the origin computed for a chosen prime context.
//
// Why:
//
//   - Drift tracking, resonance scanning and the demonstration KDF all
//     consume exactly this one deterministic function; keeping it in
//     one place keeps every analyzer's numbers provably comparable.
//
// Boundary behavior:
//
//   - modulus = 0 is rejected at construction (ErrInvalidModulus).
//   - modulus = 1 is degenerate but legal: every signature is 0.
//   - p = 2 has no prime predecessor. If the ring's strategy itself
//     needs one (PrimeGap), Signature(2) fails with
//     primes.ErrNoPredecessor; otherwise the predecessor term is
//     defined as 0 and the signature is still produced.
//
// Complexity: Signature is O(√p · g) for predecessor gap g, plus the
// strategy's own cost.
//
// Errors (sentinel):
//
//   - ErrInvalidModulus — modulus = 0 at construction.
//   - ErrNilStrategy    — nil strategy at construction.
//   - primes.ErrNoPredecessor — Signature(2) under a predecessor-
//     requiring strategy.
package ring
