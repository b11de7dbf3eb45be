package resonance

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/moma/primes"
	"github.com/katalvlaran/moma/ring"
	"github.com/katalvlaran/moma/strategy"
)

// Sentinel errors returned by the resonance package.
var (
	// ErrNilProperty indicates that no property function was supplied.
	ErrNilProperty = errors.New("resonance: property function must not be nil")

	// ErrInvalidRange indicates a scan range whose lower bound exceeds
	// its upper bound.
	ErrInvalidRange = errors.New("resonance: range lower bound exceeds upper bound")
)

// PropertyFunc computes an integer property of a prime, the target the
// signature is checked against. A returned value of 0 means "no
// resonance possible at this prime".
type PropertyFunc func(p uint64) (uint64, error)

// Event records one resonance: a prime whose signature is an exact
// multiple of its property value.
type Event struct {
	Prime     uint64
	Signature uint64
}

// Finder scans primes for resonance events. Immutable after
// construction and safe to share.
type Finder struct {
	ring     *ring.Ring
	property PropertyFunc
}

// NewFinder constructs a Finder from a modulus, an origin strategy and
// a property function. Ring construction errors propagate unchanged.
func NewFinder(modulus uint64, s strategy.OriginStrategy, property PropertyFunc) (*Finder, error) {
	if property == nil {
		return nil, ErrNilProperty
	}
	r, err := ring.New(modulus, s)
	if err != nil {
		return nil, err
	}

	return &Finder{ring: r, property: property}, nil
}

// CheckPrime tests a single prime for resonance. The boolean reports
// whether the event fired; the signature is returned either way.
func (f *Finder) CheckPrime(p uint64) (uint64, bool, error) {
	sig, err := f.ring.Signature(p)
	if err != nil {
		return 0, false, err
	}
	prop, err := f.property(p)
	if err != nil {
		return 0, false, fmt.Errorf("resonance: property of p=%d: %w", p, err)
	}
	if prop == 0 {
		return sig, false, nil
	}

	return sig, sig%prop == 0, nil
}

// FindInRange returns every resonance event for primes in the closed
// range [low, high], in ascending prime order.
func (f *Finder) FindInRange(low, high uint64) ([]Event, error) {
	if low > high {
		return nil, fmt.Errorf("%w: [%d, %d]", ErrInvalidRange, low, high)
	}

	events := make([]Event, 0)
	p := low
	if !primes.IsPrime(p) {
		next, err := primes.NextPrime(p)
		if err != nil {
			return events, nil // no primes above low at all
		}
		p = next
	}

	for p <= high {
		sig, ok, err := f.CheckPrime(p)
		if err != nil {
			return nil, err
		}
		if ok {
			events = append(events, Event{Prime: p, Signature: sig})
		}

		next, err := primes.NextPrime(p)
		if err != nil {
			break // reached the top of the representable primes
		}
		p = next
	}

	return events, nil
}
