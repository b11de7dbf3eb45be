package ring

import "errors"

// Sentinel errors returned by the ring package.
var (
	// ErrInvalidModulus indicates a modulus of 0, which defines no ring.
	ErrInvalidModulus = errors.New("ring: modulus must be >= 1")

	// ErrNilStrategy indicates that no origin strategy was supplied.
	ErrNilStrategy = errors.New("ring: origin strategy must not be nil")
)
