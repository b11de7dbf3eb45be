package drift

import (
	"github.com/katalvlaran/moma/ring"
	"github.com/katalvlaran/moma/strategy"
)

// Drift accumulates signature volatility for one (modulus, strategy)
// pair. All state is owned by the instance; reset by constructing a
// new one.
type Drift struct {
	ring *ring.Ring

	count         uint64
	lastSignature uint64
	deltaSum      uint64 // Σ |sig_i − sig_{i−1}|
}

// New constructs a Drift analyzer around a fresh signature ring.
// Construction errors (modulus 0, nil strategy) propagate from ring.New.
func New(modulus uint64, s strategy.OriginStrategy) (*Drift, error) {
	r, err := ring.New(modulus, s)
	if err != nil {
		return nil, err
	}

	return &Drift{ring: r}, nil
}

// Next feeds one prime into the analyzer: its signature is computed via
// the internal ring and the delta to the previous signature is
// accumulated. On error the accumulator state is unchanged.
func (d *Drift) Next(p uint64) error {
	sig, err := d.ring.Signature(p)
	if err != nil {
		return err
	}

	if d.count > 0 {
		d.deltaSum += absDiff(sig, d.lastSignature)
	}
	d.lastSignature = sig
	d.count++

	return nil
}

// DriftMagnitude reports the mean absolute successive signature
// difference. Zero or one observations score 0, as does any constant
// signature sequence.
func (d *Drift) DriftMagnitude() float64 {
	if d.count < 2 {
		return 0
	}

	return float64(d.deltaSum) / float64(d.count-1)
}

// Count returns the number of primes observed so far.
func (d *Drift) Count() uint64 {
	return d.count
}

// LastSignature returns the most recent signature and whether any
// observation has been recorded yet.
func (d *Drift) LastSignature() (uint64, bool) {
	return d.lastSignature, d.count > 0
}

// absDiff returns |a − b| without signed conversion.
func absDiff(a, b uint64) uint64 {
	if a > b {
		return a - b
	}

	return b - a
}
