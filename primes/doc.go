// Package primes provides the prime-number utilities every moma analyzer
// is built on: primality testing, prime enumeration in both directions,
// prime-factor "mass", and bulk sieve generation.
//
// What:
//
//   - IsPrime reports deterministic primality for any uint64 via 6k±1
//     trial division (no probabilistic rounds, no false positives).
//   - NextPrime / PrevPrime enumerate the neighboring primes of any value.
//   - PrimeFactorMass counts prime factors with multiplicity
//     (mass(12) = mass(2·2·3) = 3); mass(1) = 0 by definition.
//   - PrimesUpTo generates all primes ≤ limit with a sieve of
//     Eratosthenes, agreeing exactly with IsPrime at every value.
//
// Why:
//
//   - Origin strategies (strategy.PrimeGap, strategy.CompositeMass)
//     consult predecessors, successors and factor masses per prime.
//   - Batch analyzers (massfield, gapfield, goldbach) need cheap bulk
//     enumeration; the sieve covers that without weakening correctness.
//
// Complexity:
//
//   - IsPrime:         O(√n)
//   - NextPrime:       O(g·√n) for gap g to the next prime
//   - PrevPrime:       O(g·√n) for gap g to the previous prime
//   - PrimeFactorMass: O(√n)
//   - PrimesUpTo:      O(n log log n), Memory: O(n)
//
// Errors (sentinel):
//
//   - ErrNoPredecessor  if PrevPrime is asked for a prime below 2 (n ≤ 2).
//   - ErrInvalidInput   if PrimeFactorMass receives 0.
//   - ErrRangeExhausted if NextPrime would have to search past the
//     largest prime representable in uint64.
package primes
