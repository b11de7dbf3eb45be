package goldbach

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/moma/primes"
)

// Sentinel errors returned by the goldbach package.
var (
	// ErrInvalidTarget indicates a target that is odd or below 4, the
	// smallest even sum of two primes.
	ErrInvalidTarget = errors.New("goldbach: target must be even and >= 4")

	// ErrBeyondLimit indicates a target beyond twice the projector's
	// precomputation limit; pairs that large cannot be verified.
	ErrBeyondLimit = errors.New("goldbach: target exceeds twice the precomputed prime limit")
)

// Pair is an unordered pair of primes with A ≤ B.
type Pair struct {
	A uint64
	B uint64
}

// Projector answers Goldbach projections against a prime set
// precomputed once at construction. Immutable afterwards.
type Projector struct {
	limit   uint64
	ordered []uint64
	set     map[uint64]bool
}

// NewProjector sieves all primes up to limit and retains them for O(1)
// membership tests. A limit below 2 yields an empty set; every
// projection against it fails with ErrBeyondLimit or ErrInvalidTarget.
func NewProjector(limit uint64) *Projector {
	ordered := primes.PrimesUpTo(limit)
	set := make(map[uint64]bool, len(ordered))
	for _, p := range ordered {
		set[p] = true
	}

	return &Projector{limit: limit, ordered: ordered, set: set}
}

// Limit returns the projector's precomputation limit.
func (pr *Projector) Limit() uint64 {
	return pr.limit
}

// Project returns every unordered prime pair (a, b), a ≤ b, with
// a + b = n, ascending by a.
//
// Fails with ErrInvalidTarget for odd n or n < 4, and with
// ErrBeyondLimit for n > 2·limit.
func (pr *Projector) Project(n uint64) ([]Pair, error) {
	if n < 4 || n%2 != 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidTarget, n)
	}
	if n/2 > pr.limit {
		return nil, fmt.Errorf("%w: %d > 2*%d", ErrBeyondLimit, n, pr.limit)
	}

	pairs := make([]Pair, 0)
	for _, a := range pr.ordered {
		if a > n/2 {
			break
		}
		if pr.set[n-a] {
			pairs = append(pairs, Pair{A: a, B: n - a})
		}
	}

	return pairs, nil
}
