package primes_test

import (
	"testing"

	"github.com/katalvlaran/moma/primes"
)

// BenchmarkIsPrime_Large measures trial division on a large prime,
// the worst case for the 6k±1 loop.
func BenchmarkIsPrime_Large(b *testing.B) {
	const p = 1_000_000_007
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = primes.IsPrime(p)
	}
}

// BenchmarkPrimesUpTo_1e6 measures bulk sieve generation.
func BenchmarkPrimesUpTo_1e6(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = primes.PrimesUpTo(1_000_000)
	}
}

// BenchmarkPrimeFactorMass measures factorization of a highly
// composite value.
func BenchmarkPrimeFactorMass(b *testing.B) {
	const n = 720720 // 2^4·3^2·5·7·11·13
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = primes.PrimeFactorMass(n)
	}
}
