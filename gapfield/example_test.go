// File: gapfield/example_test.go
package gapfield_test

import (
	"fmt"

	"github.com/katalvlaran/moma/gapfield"
	"github.com/katalvlaran/moma/primes"
)

////////////////////////////////////////////////////////////////////////////////
// Example: outlier gaps
////////////////////////////////////////////////////////////////////////////////

// ExampleField_FilterByBaryOffset demonstrates finding unusually wide
// prime gaps below 100: only 89→97 deviates from the mean gap size by
// more than 3.
func ExampleField_FilterByBaryOffset() {
	field, _ := gapfield.New(primes.PrimesUpTo(100), 6)

	for _, g := range field.FilterByBaryOffset(3.0) {
		fmt.Printf("gap [%d, %d] size %d offset %+.2f\n",
			g.StartPrime, g.EndPrime, g.Size, g.BaryOffset)
	}

	// Output:
	// gap [89, 97] size 8 offset +4.04
}

////////////////////////////////////////////////////////////////////////////////
// Example: residue classes
////////////////////////////////////////////////////////////////////////////////

// ExampleField_FilterByClass demonstrates the mod-6 view of prime gaps:
// the only odd gap is 2→3, every other gap size is even.
func ExampleField_FilterByClass() {
	field, _ := gapfield.New(primes.PrimesUpTo(30), 6)

	for _, g := range field.FilterByClass(0) {
		fmt.Printf("size-6 gap: [%d, %d]\n", g.StartPrime, g.EndPrime)
	}

	// Output:
	// size-6 gap: [23, 29]
}
