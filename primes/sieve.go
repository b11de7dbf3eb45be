package primes

// PrimesUpTo returns every prime p with 2 ≤ p ≤ limit, in ascending
// order, using a sieve of Eratosthenes.
//
// The sieve is an optimization for bulk enumeration only: it agrees
// exactly with IsPrime at every value (covered by a cross-check test).
// A limit below 2 yields an empty, non-nil slice.
//
// Complexity: O(n log log n), Memory: O(n).
func PrimesUpTo(limit uint64) []uint64 {
	if limit < 2 {
		return []uint64{}
	}

	composite := make([]bool, limit+1)
	for i := uint64(2); i <= limit/i; i++ {
		if composite[i] {
			continue
		}
		for multiple := i * i; multiple <= limit; multiple += i {
			composite[multiple] = true
		}
	}

	out := make([]uint64, 0, limit/4+4)
	for p := uint64(2); p <= limit; p++ {
		if !composite[p] {
			out = append(out, p)
		}
	}

	return out
}
