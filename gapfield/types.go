package gapfield

import "errors"

// Sentinel errors returned by the gapfield package.
var (
	// ErrZeroModulus indicates a residue-class grouping modulus of 0.
	ErrZeroModulus = errors.New("gapfield: grouping modulus must be >= 1")

	// ErrNotAscending indicates the supplied prime sequence is not
	// strictly increasing.
	ErrNotAscending = errors.New("gapfield: prime sequence must be strictly increasing")

	// ErrOddTarget indicates a Goldbach projection target that is odd or
	// below the smallest even sum of two primes (4).
	ErrOddTarget = errors.New("gapfield: goldbach target must be even and >= 4")
)

// Gap records a single gap between two consecutive primes of a field.
// Immutable once computed.
type Gap struct {
	// StartPrime and EndPrime bound the gap.
	StartPrime uint64
	EndPrime   uint64

	// Size is EndPrime − StartPrime.
	Size uint64

	// ResidueClass is Size mod the field's grouping modulus.
	ResidueClass uint64

	// BaryOffset is the gap's deviation from the mean gap size of the
	// whole sequence (see package docs for the window policy).
	BaryOffset float64
}
