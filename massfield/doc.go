// Package massfield maps each prime in a numeric range to the total
// prime-factor mass of the composites filling the gap to its successor.
//
// What:
//
//   - Field analyzes the closed range [Low, High].
//   - GenerateMassMap returns one Entry{Prime, Mass} per prime p in the
//     range, ascending, where Mass = Σ PrimeFactorMass(c) over every
//     composite c strictly between p and NextPrime(p).
//   - Final-gap policy: the successor of the last in-range prime may
//     lie beyond High; the final gap is always closed, so every prime
//     in range gets an entry.
//
// Why:
//
//   - The mass map exposes where "composite matter" concentrates
//     between primes — twin gaps carry mass 0, wide gaps around
//     highly-composite numbers carry the most.
//
// Complexity: O(R·√R) for a range of width R (sieve enumeration plus
// per-composite factorization).
//
// Errors:
//
//   - ErrInvalidRange — Low > High at construction.
//   - An empty range or one containing no primes yields an empty map,
//     not an error.
package massfield
