// File: primes/example_test.go
package primes_test

import (
	"fmt"

	"github.com/katalvlaran/moma/primes"
)

////////////////////////////////////////////////////////////////////////////////
// Example: neighbor enumeration
////////////////////////////////////////////////////////////////////////////////

// ExampleNextPrime demonstrates walking the prime line in both
// directions around an arbitrary value.
func ExampleNextPrime() {
	next, _ := primes.NextPrime(29)
	prev, _ := primes.PrevPrime(29)
	fmt.Println("next after 29:", next)
	fmt.Println("prev before 29:", prev)

	// Output:
	// next after 29: 31
	// prev before 29: 23
}

////////////////////////////////////////////////////////////////////////////////
// Example: prime-factor mass
////////////////////////////////////////////////////////////////////////////////

// ExamplePrimeFactorMass demonstrates the "mass" of a composite:
// the count of its prime factors with multiplicity.
func ExamplePrimeFactorMass() {
	for _, n := range []uint64{12, 16, 97} {
		mass, _ := primes.PrimeFactorMass(n)
		fmt.Printf("mass(%d) = %d\n", n, mass)
	}

	// Output:
	// mass(12) = 3
	// mass(16) = 4
	// mass(97) = 1
}
