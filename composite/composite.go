package composite

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/moma/primes"
)

// ErrInvalidRange indicates a range whose lower bound exceeds its upper
// bound.
var ErrInvalidRange = errors.New("composite: range lower bound exceeds upper bound")

// Composites returns every composite number in the closed range
// [low, high], ascending. Values below 2 are neither prime nor
// composite and are skipped.
func Composites(low, high uint64) ([]uint64, error) {
	if low > high {
		return nil, fmt.Errorf("%w: [%d, %d]", ErrInvalidRange, low, high)
	}

	if low < 2 {
		low = 2 // 0 and 1 are neither prime nor composite
	}
	out := make([]uint64, 0)
	for n := low; n <= high; n++ {
		if !primes.IsPrime(n) {
			out = append(out, n)
		}
	}

	return out, nil
}

// Dampener scores the small-prime regularity of the composites strictly
// between Low and High.
type Dampener struct {
	// Low and High bound the scored range exclusively on both sides.
	Low  uint64
	High uint64

	// SmallPrimes is the divisor set a composite counts as "dampened"
	// by. Typically the first few primes: 2, 3, 5, 7.
	SmallPrimes []uint64
}

// Score returns the fraction of composites in (Low, High) divisible by
// at least one of SmallPrimes, in [0, 1]. A range without composites
// scores 0 — a defined result, not an error.
func (d *Dampener) Score() (float64, error) {
	if d.Low > d.High {
		return 0, fmt.Errorf("%w: [%d, %d]", ErrInvalidRange, d.Low, d.High)
	}
	if d.High-d.Low < 2 {
		return 0, nil // nothing strictly between the bounds
	}

	composites, err := Composites(d.Low+1, d.High-1)
	if err != nil {
		return 0, err
	}
	if len(composites) == 0 {
		return 0, nil
	}

	var hits int
	for _, c := range composites {
		for _, sp := range d.SmallPrimes {
			if sp != 0 && c%sp == 0 {
				hits++
				break
			}
		}
	}

	return float64(hits) / float64(len(composites)), nil
}
