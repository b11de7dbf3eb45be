package entropy

import "math"

// Calculator accumulates observations and scores the Shannon entropy of
// their distribution. The zero value is not usable; construct with
// NewCalculator.
type Calculator[T comparable] struct {
	frequencies map[T]uint64
	count       uint64
}

// NewCalculator returns an empty entropy accumulator.
func NewCalculator[T comparable]() *Calculator[T] {
	return &Calculator[T]{frequencies: make(map[T]uint64)}
}

// Add records a single observation.
func (c *Calculator[T]) Add(item T) {
	c.frequencies[item]++
	c.count++
}

// AddAll records every observation in items.
func (c *Calculator[T]) AddAll(items []T) {
	for _, item := range items {
		c.Add(item)
	}
}

// Count returns the total number of observations recorded so far.
func (c *Calculator[T]) Count() uint64 {
	return c.count
}

// TotalEntropy returns H(X) = −Σ p·log2(p) over the categories observed
// so far. Zero observations or a single distinct category score 0.
//
// Each probability is computed once from the final totals, keeping the
// result stable for large counts.
func (c *Calculator[T]) TotalEntropy() float64 {
	if c.count == 0 {
		return 0
	}

	total := float64(c.count)
	var h float64
	for _, count := range c.frequencies {
		p := float64(count) / total
		h -= p * math.Log2(p)
	}
	if h < 0 {
		h = 0 // guard the −0.0 of a single-category distribution
	}

	return h
}

// Of returns the Shannon entropy of the distribution of items.
func Of[T comparable](items []T) float64 {
	c := NewCalculator[T]()
	c.AddAll(items)

	return c.TotalEntropy()
}

// FromCounts returns the Shannon entropy of a pre-counted frequency
// distribution. Zero-count categories contribute nothing.
func FromCounts[T comparable](counts map[T]uint64) float64 {
	var total uint64
	for _, count := range counts {
		total += count
	}
	if total == 0 {
		return 0
	}

	ftotal := float64(total)
	var h float64
	for _, count := range counts {
		if count == 0 {
			continue
		}
		p := float64(count) / ftotal
		h -= p * math.Log2(p)
	}
	if h < 0 {
		h = 0
	}

	return h
}
