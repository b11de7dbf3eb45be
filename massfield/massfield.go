package massfield

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/moma/primes"
)

// ErrInvalidRange indicates a range whose lower bound exceeds its upper
// bound.
var ErrInvalidRange = errors.New("massfield: range lower bound exceeds upper bound")

// Entry pairs a prime with the total composite mass of the gap to its
// successor prime.
type Entry struct {
	Prime uint64
	Mass  uint64
}

// Field analyzes composite mass between consecutive primes over a
// closed numeric range. Immutable after construction.
type Field struct {
	low  uint64
	high uint64
}

// New constructs a Field over [low, high]. Fails with ErrInvalidRange
// when low > high; a range without primes is legal and yields an empty
// map.
func New(low, high uint64) (*Field, error) {
	if low > high {
		return nil, fmt.Errorf("%w: [%d, %d]", ErrInvalidRange, low, high)
	}

	return &Field{low: low, high: high}, nil
}

// GenerateMassMap returns one entry per prime in the field's range, in
// ascending prime order. The successor closing each gap may exceed the
// range's upper bound (final-gap policy, see package docs).
func (f *Field) GenerateMassMap() ([]Entry, error) {
	inRange := primes.PrimesUpTo(f.high)
	entries := make([]Entry, 0, len(inRange))

	for _, p := range inRange {
		if p < f.low {
			continue
		}
		next, err := primes.NextPrime(p)
		if err != nil {
			return nil, fmt.Errorf("massfield: closing gap after p=%d: %w", p, err)
		}

		var mass uint64
		for c := p + 1; c < next; c++ {
			m, merr := primes.PrimeFactorMass(c)
			if merr != nil {
				return nil, fmt.Errorf("massfield: mass of composite %d: %w", c, merr)
			}
			mass += m
		}
		entries = append(entries, Entry{Prime: p, Mass: mass})
	}

	return entries, nil
}
