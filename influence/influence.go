package influence

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/moma/primes"
)

// ErrInvalidRange indicates a range whose lower bound exceeds its upper
// bound.
var ErrInvalidRange = errors.New("influence: range lower bound exceeds upper bound")

// Field holds the mass of every composite in a closed range. Immutable
// after construction and safe to share.
type Field struct {
	masses map[uint64]float64
}

// New builds the influence field for [low, high]: every composite in
// range is assigned its prime-factor mass.
func New(low, high uint64) (*Field, error) {
	if low > high {
		return nil, fmt.Errorf("%w: [%d, %d]", ErrInvalidRange, low, high)
	}

	masses := make(map[uint64]float64)
	for n := low; n <= high && n > 0; n++ {
		if n < 2 || primes.IsPrime(n) {
			continue
		}
		mass, err := primes.PrimeFactorMass(n)
		if err != nil {
			return nil, fmt.Errorf("influence: mass of %d: %w", n, err)
		}
		masses[n] = float64(mass)
	}

	return &Field{masses: masses}, nil
}

// At returns the total influence exerted at a point of the number line:
// Σ mass/dist² over every composite in the field, with dist² clamped to
// 1 to keep on-composite points finite.
func (f *Field) At(point float64) float64 {
	var total float64
	for composite, mass := range f.masses {
		d := point - float64(composite)
		distSq := d * d
		if distSq < 1 {
			distSq = 1
		}
		total += mass / distSq
	}

	return total
}

// Masses returns a copy of the composite→mass mapping.
func (f *Field) Masses() map[uint64]float64 {
	out := make(map[uint64]float64, len(f.masses))
	for composite, mass := range f.masses {
		out[composite] = mass
	}

	return out
}
