package gapfield

import (
	"fmt"
	"math"

	"github.com/katalvlaran/moma/entropy"
	"github.com/katalvlaran/moma/goldbach"
	"github.com/katalvlaran/moma/influence"
)

// Field holds the analyzed gaps of one prime sequence. Immutable after
// construction and safe to share across goroutines.
type Field struct {
	gaps    []Gap
	modulus uint64
	primes  []uint64
}

// New builds a Field from a strictly increasing prime sequence and a
// residue-class grouping modulus.
//
// Fewer than two primes yield a field with zero gaps, which is legal;
// a non-increasing sequence fails with ErrNotAscending and modulus 0
// with ErrZeroModulus.
func New(ps []uint64, modulus uint64) (*Field, error) {
	if modulus == 0 {
		return nil, ErrZeroModulus
	}
	for i := 1; i < len(ps); i++ {
		if ps[i] <= ps[i-1] {
			return nil, fmt.Errorf("%w: %d followed by %d at index %d",
				ErrNotAscending, ps[i-1], ps[i], i)
		}
	}

	f := &Field{
		modulus: modulus,
		primes:  append([]uint64(nil), ps...),
	}
	if len(ps) < 2 {
		f.gaps = []Gap{}
		return f, nil
	}

	// First pass: sizes and classes. Second pass: offsets against the
	// whole-sequence mean (the documented window policy).
	gaps := make([]Gap, len(ps)-1)
	var sizeSum uint64
	for i := 1; i < len(ps); i++ {
		size := ps[i] - ps[i-1]
		sizeSum += size
		gaps[i-1] = Gap{
			StartPrime:   ps[i-1],
			EndPrime:     ps[i],
			Size:         size,
			ResidueClass: size % modulus,
		}
	}
	mean := float64(sizeSum) / float64(len(gaps))
	for i := range gaps {
		gaps[i].BaryOffset = float64(gaps[i].Size) - mean
	}
	f.gaps = gaps

	return f, nil
}

// Modulus returns the field's residue-class grouping modulus.
func (f *Field) Modulus() uint64 {
	return f.modulus
}

// Gaps returns the field's gaps in sequence order.
func (f *Field) Gaps() []Gap {
	return append([]Gap(nil), f.gaps...)
}

// FilterByBaryOffset returns the gaps whose absolute barycentric offset
// exceeds threshold, preserving sequence order.
func (f *Field) FilterByBaryOffset(threshold float64) []Gap {
	out := make([]Gap, 0)
	for _, g := range f.gaps {
		if math.Abs(g.BaryOffset) > threshold {
			out = append(out, g)
		}
	}

	return out
}

// FilterByClass returns the gaps belonging to one residue class,
// preserving sequence order.
func (f *Field) FilterByClass(class uint64) []Gap {
	out := make([]Gap, 0)
	for _, g := range f.gaps {
		if g.ResidueClass == class {
			out = append(out, g)
		}
	}

	return out
}

// EntropyByClass returns, for every residue class present in the field,
// the Shannon entropy of the gap-size distribution within that class.
// A class whose gaps all share one size scores 0.
func (f *Field) EntropyByClass() map[uint64]float64 {
	sizesByClass := make(map[uint64][]uint64)
	for _, g := range f.gaps {
		sizesByClass[g.ResidueClass] = append(sizesByClass[g.ResidueClass], g.Size)
	}

	scores := make(map[uint64]float64, len(sizesByClass))
	for class, sizes := range sizesByClass {
		scores[class] = entropy.Of(sizes)
	}

	return scores
}

// WithCompositeInfluence derives a new field whose barycentric offsets
// are increased by the influence the given field exerts at each gap's
// midpoint. The receiver is left untouched.
func (f *Field) WithCompositeInfluence(inf *influence.Field) *Field {
	gaps := append([]Gap(nil), f.gaps...)
	for i := range gaps {
		midpoint := float64(gaps[i].StartPrime) + float64(gaps[i].Size)/2
		gaps[i].BaryOffset += inf.At(midpoint)
	}

	return &Field{gaps: gaps, modulus: f.modulus, primes: f.primes}
}

// ProjectGoldbach suggests Goldbach pairs for an even target using only
// the primes the field was built from. Pairs come back ascending by
// their smaller element. Fails with ErrOddTarget for odd targets or
// targets below 4.
func (f *Field) ProjectGoldbach(target uint64) ([]goldbach.Pair, error) {
	if target < 4 || target%2 != 0 {
		return nil, fmt.Errorf("%w: %d", ErrOddTarget, target)
	}

	set := make(map[uint64]bool, len(f.primes))
	for _, p := range f.primes {
		set[p] = true
	}

	// The field's primes are ascending, so pairs come out ascending by A.
	pairs := make([]goldbach.Pair, 0)
	for _, a := range f.primes {
		if a > target/2 {
			break
		}
		if set[target-a] {
			pairs = append(pairs, goldbach.Pair{A: a, B: target - a})
		}
	}

	return pairs, nil
}
