package strategy

import (
	"fmt"

	"github.com/katalvlaran/moma/primes"
)

// OriginStrategy computes the moving origin for a given prime context.
//
// Implementations must be pure: the same prime always yields the same
// origin, and no call mutates the strategy. That makes every strategy
// safe to hold by value or reference in any number of rings and
// analyzers concurrently.
type OriginStrategy interface {
	// CalculateOrigin returns the signed origin offset for prime p.
	CalculateOrigin(p uint64) (int64, error)
}

// Func adapts an ordinary function to the OriginStrategy capability,
// the extension point for user-defined origin rules:
//
//	doubled := strategy.Func(func(p uint64) (int64, error) {
//	    return int64(2 * p), nil
//	})
type Func func(p uint64) (int64, error)

// CalculateOrigin calls f(p).
func (f Func) CalculateOrigin(p uint64) (int64, error) {
	return f(p)
}

// Fixed is an origin strategy pinned to a constant offset, which may be
// negative. Fixed(0) reproduces classical modular arithmetic.
type Fixed int64

// CalculateOrigin returns the constant offset regardless of p.
func (f Fixed) CalculateOrigin(_ uint64) (int64, error) {
	return int64(f), nil
}

// PrimeGap is an origin strategy where the origin is the gap between a
// prime and its predecessor: origin(p) = p − PrevPrime(p).
type PrimeGap struct{}

// CalculateOrigin returns p − PrevPrime(p). For p = 2 it propagates
// primes.ErrNoPredecessor: the first prime has no gap behind it.
func (PrimeGap) CalculateOrigin(p uint64) (int64, error) {
	prev, err := primes.PrevPrime(p)
	if err != nil {
		return 0, fmt.Errorf("strategy: prime gap origin for p=%d: %w", p, err)
	}

	return int64(p - prev), nil
}

// CompositeMass is an origin strategy where the origin is the summed
// prime-factor mass of every composite strictly between a prime and its
// successor: origin(p) = Σ mass(c) for c in (p, NextPrime(p)).
//
// Twin primes enclose no composites, so the origin across a gap of 2
// is 0.
type CompositeMass struct{}

// CalculateOrigin sums PrimeFactorMass over the composites between p
// and its successor prime.
func (CompositeMass) CalculateOrigin(p uint64) (int64, error) {
	next, err := primes.NextPrime(p)
	if err != nil {
		return 0, fmt.Errorf("strategy: composite mass origin for p=%d: %w", p, err)
	}

	var total int64
	for c := p + 1; c < next; c++ {
		if primes.IsPrime(c) {
			continue
		}
		mass, merr := primes.PrimeFactorMass(c)
		if merr != nil {
			return 0, fmt.Errorf("strategy: composite mass origin for p=%d: %w", p, merr)
		}
		total += int64(mass)
	}

	return total, nil
}
