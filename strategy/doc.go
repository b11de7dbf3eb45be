// Package strategy defines the OriginStrategy capability — the rule
// that moves the "zero point" of a moma reduction — and its built-in
// implementations.
//
// What:
//
//   - OriginStrategy is a single-method capability: given a prime
//     context, produce a signed integer origin offset.
//   - Fixed(c) ignores the prime and always returns c (c may be
//     negative; rings reduce with Euclidean modulo).
//   - PrimeGap returns p − PrevPrime(p), the gap to the predecessor.
//   - CompositeMass returns the total prime-factor mass of every
//     composite strictly between p and NextPrime(p); 0 across a
//     twin-prime gap.
//   - Func adapts any ordinary function into a strategy, the extension
//     point for user-defined rules.
//
// Why:
//
//   - Every ring and analyzer in moma is parameterized by this one
//     capability; new origin rules plug in without touching any of
//     them. Strategies are immutable value objects and safe to share
//     across goroutines.
//
// Errors:
//
//   - PrimeGap propagates primes.ErrNoPredecessor at p = 2.
//   - CompositeMass propagates primes.ErrRangeExhausted if the
//     successor search would leave the uint64 range.
package strategy
