package primes

// IsPrime reports whether n is prime.
//
// The test is deterministic trial division in 6k±1 form: after handling
// 2 and 3, only candidates of the form 6k−1 and 6k+1 up to √n are
// probed. Divisions use i ≤ n/i instead of i·i ≤ n so the bound never
// overflows near the top of the uint64 range.
//
// Complexity: O(√n).
func IsPrime(n uint64) bool {
	if n < 2 {
		return false
	}
	if n == 2 || n == 3 {
		return true
	}
	if n%2 == 0 || n%3 == 0 {
		return false
	}
	for i := uint64(5); i <= n/i; i += 6 {
		if n%i == 0 || n%(i+2) == 0 {
			return false
		}
	}

	return true
}

// NextPrime returns the smallest prime strictly greater than n.
//
// Fails with ErrRangeExhausted when n ≥ MaxPrime, since no larger prime
// fits in a uint64. Terminates for every other input: prime gaps below
// 2⁶⁴ are small relative to the search bound.
func NextPrime(n uint64) (uint64, error) {
	if n >= MaxPrime {
		return 0, ErrRangeExhausted
	}
	if n < 2 {
		return 2, nil
	}

	// Advance to the next odd candidate and step by 2 from there.
	x := n + 1
	if x%2 == 0 {
		x++
	}
	for !IsPrime(x) {
		x += 2
	}

	return x, nil
}

// PrevPrime returns the largest prime strictly less than n.
//
// Fails with ErrNoPredecessor for n ≤ 2: no prime lies below 2.
func PrevPrime(n uint64) (uint64, error) {
	if n <= 2 {
		return 0, ErrNoPredecessor
	}
	if n == 3 {
		return 2, nil
	}

	// Step down through odd candidates only; 3 is prime, so the loop
	// always terminates at an odd prime.
	x := n - 1
	if x%2 == 0 {
		x--
	}
	for !IsPrime(x) {
		x -= 2
	}

	return x, nil
}

// PrimeFactorMass returns the number of prime factors of n counted with
// multiplicity: mass(12) = mass(2·2·3) = 3, mass(p) = 1 for prime p.
//
// mass(1) = 0 by definition (the empty factorization). Fails with
// ErrInvalidInput for n = 0.
//
// Complexity: O(√n).
func PrimeFactorMass(n uint64) (uint64, error) {
	if n == 0 {
		return 0, ErrInvalidInput
	}
	if n == 1 {
		return 0, nil
	}

	var count uint64
	for n%2 == 0 {
		count++
		n /= 2
	}
	for factor := uint64(3); factor <= n/factor; factor += 2 {
		for n%factor == 0 {
			count++
			n /= factor
		}
	}
	if n > 1 {
		count++ // remaining prime cofactor
	}

	return count, nil
}
