package ring

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/moma/primes"
	"github.com/katalvlaran/moma/strategy"
)

// Ring performs Moving Origin Modular Arithmetic for one (modulus,
// strategy) pair. A Ring is immutable after construction and safe to
// share across goroutines.
type Ring struct {
	modulus  uint64
	strategy strategy.OriginStrategy
}

// New constructs a Ring from a modulus and an origin strategy.
//
// modulus = 0 fails with ErrInvalidModulus; modulus = 1 is degenerate
// but legal (every signature reduces to 0). A nil strategy fails with
// ErrNilStrategy.
func New(modulus uint64, s strategy.OriginStrategy) (*Ring, error) {
	if modulus == 0 {
		return nil, ErrInvalidModulus
	}
	if s == nil {
		return nil, ErrNilStrategy
	}

	return &Ring{modulus: modulus, strategy: s}, nil
}

// Modulus returns the ring's modulus.
func (r *Ring) Modulus() uint64 {
	return r.modulus
}

// Residue reduces an arbitrary value under the origin computed for
// primeContext: (value + origin(primeContext)) mod modulus, Euclidean.
func (r *Ring) Residue(value, primeContext uint64) (uint64, error) {
	origin, err := r.strategy.CalculateOrigin(primeContext)
	if err != nil {
		return 0, fmt.Errorf("ring: residue under p=%d: %w", primeContext, err)
	}

	return addMod(value%r.modulus, originMod(origin, r.modulus), r.modulus), nil
}

// Signature computes the moma signature of a prime: the residue of the
// prime plus its predecessor, shifted by the strategy's origin.
//
// For p = 2 the predecessor term is defined as 0 when the strategy
// itself produces an origin without one; a strategy that requires a
// predecessor (PrimeGap) makes Signature(2) fail with
// primes.ErrNoPredecessor.
func (r *Ring) Signature(p uint64) (uint64, error) {
	// The strategy decides whether p=2 is workable: compute its origin
	// first so a predecessor-requiring strategy fails here.
	origin, err := r.strategy.CalculateOrigin(p)
	if err != nil {
		return 0, fmt.Errorf("ring: signature of p=%d: %w", p, err)
	}

	prev, err := primes.PrevPrime(p)
	if err != nil {
		if !errors.Is(err, primes.ErrNoPredecessor) {
			return 0, fmt.Errorf("ring: signature of p=%d: %w", p, err)
		}
		prev = 0 // p = 2 under a predecessor-free strategy
	}

	value := addMod(p%r.modulus, prev%r.modulus, r.modulus)

	return addMod(value, originMod(origin, r.modulus), r.modulus), nil
}

// originMod reduces a signed origin into [0, m) with Euclidean
// (floored) semantics, so negative origins shift backwards instead of
// producing negative residues.
func originMod(origin int64, m uint64) uint64 {
	if origin >= 0 {
		return uint64(origin) % m
	}
	// 0−uint64(origin) yields the magnitude correctly even for MinInt64.
	neg := (0 - uint64(origin)) % m
	if neg == 0 {
		return 0
	}

	return m - neg
}

// addMod returns (a + b) mod m for a, b already reduced below m,
// tolerating uint64 wraparound for moduli above 2⁶³.
func addMod(a, b, m uint64) uint64 {
	sum := a + b
	if sum < a || sum >= m {
		sum -= m
	}

	return sum
}
