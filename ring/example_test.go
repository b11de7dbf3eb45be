// File: ring/example_test.go
package ring_test

import (
	"fmt"

	"github.com/katalvlaran/moma/ring"
	"github.com/katalvlaran/moma/strategy"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Signature
////////////////////////////////////////////////////////////////////////////////

// ExampleRing_Signature demonstrates the reference moma computation:
// modulus 37 with the PrimeGap strategy at p = 29.
//
//	value  = 29 + prev(29) = 52
//	origin = 29 − 23       = 6
//	(52 + 6) mod 37        = 21
func ExampleRing_Signature() {
	r, _ := ring.New(37, strategy.PrimeGap{})

	sig, _ := r.Signature(29)
	fmt.Println("signature of 29:", sig)

	// Output:
	// signature of 29: 21
}

////////////////////////////////////////////////////////////////////////////////
// Example: custom strategy
////////////////////////////////////////////////////////////////////////////////

// ExampleRing_Signature_customStrategy demonstrates plugging a
// user-defined origin rule into a ring via strategy.Func.
func ExampleRing_Signature_customStrategy() {
	half := strategy.Func(func(p uint64) (int64, error) {
		return int64(p / 2), nil
	})
	r, _ := ring.New(100, half)

	sig, _ := r.Signature(29) // (29 + 23 + 14) mod 100
	fmt.Println("signature:", sig)

	// Output:
	// signature: 66
}
