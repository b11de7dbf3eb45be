package primes

import "errors"

// Sentinel errors returned by the primes package.
var (
	// ErrNoPredecessor indicates that no prime exists below the given value
	// (PrevPrime of n ≤ 2: there is no prime strictly less than 2).
	ErrNoPredecessor = errors.New("primes: no prime predecessor exists")

	// ErrInvalidInput indicates a value outside a function's domain,
	// such as PrimeFactorMass(0).
	ErrInvalidInput = errors.New("primes: input must be a positive integer")

	// ErrRangeExhausted indicates that enumeration was requested beyond
	// the largest prime representable in uint64.
	ErrRangeExhausted = errors.New("primes: enumeration exhausted the uint64 range")
)

// MaxPrime is the largest prime number representable in a uint64.
// NextPrime fails with ErrRangeExhausted for any n ≥ MaxPrime.
const MaxPrime uint64 = 18446744073709551557
