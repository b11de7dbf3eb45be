package kdf

import (
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/katalvlaran/moma/primes"
	"github.com/katalvlaran/moma/ring"
	"github.com/katalvlaran/moma/strategy"
)

// Sentinel errors returned by the kdf package.
var (
	// ErrZeroIterations indicates a work factor of 0.
	ErrZeroIterations = errors.New("kdf: iterations must be >= 1")

	// ErrBadKeyLength indicates a requested key length outside 1..32
	// bytes, the span one SHA-256 finalization can provide.
	ErrBadKeyLength = errors.New("kdf: output length must be in 1..32 bytes")
)

// KDF configures one key derivation. Immutable after construction;
// DeriveKey may be called repeatedly and always returns the same key
// for the same configuration.
type KDF struct {
	password   []byte
	salt       []byte
	iterations uint32
	outputLen  int
}

// New configures a derivation from a password, a salt, a work factor
// and a desired key length in bytes.
func New(password, salt []byte, iterations uint32, outputLen int) (*KDF, error) {
	if iterations == 0 {
		return nil, ErrZeroIterations
	}
	if outputLen < 1 || outputLen > sha256.Size {
		return nil, fmt.Errorf("%w: %d", ErrBadKeyLength, outputLen)
	}

	return &KDF{
		password:   append([]byte(nil), password...),
		salt:       append([]byte(nil), salt...),
		iterations: iterations,
		outputLen:  outputLen,
	}, nil
}

// DeriveKey runs the seeded signature chain and returns the derived key.
func (k *KDF) DeriveKey() ([]byte, error) {
	// Seeding: hash order distinguishes the two parameters.
	modulusSeed := sha256.Sum256(append(append([]byte(nil), k.password...), k.salt...))
	primeSeed := sha256.Sum256(append(append([]byte(nil), k.salt...), k.password...))

	modulus, err := primes.NextPrime(uint64(binary.LittleEndian.Uint32(modulusSeed[:4])))
	if err != nil {
		return nil, fmt.Errorf("kdf: seeding modulus: %w", err)
	}
	current, err := primes.NextPrime(uint64(binary.LittleEndian.Uint32(primeSeed[:4])))
	if err != nil {
		return nil, fmt.Errorf("kdf: seeding start prime: %w", err)
	}
	if current == 2 {
		current = 3 // the gap strategy needs a predecessor
	}

	r, err := ring.New(modulus, strategy.PrimeGap{})
	if err != nil {
		return nil, fmt.Errorf("kdf: building ring: %w", err)
	}

	// Iteration: each residue decides the next prime, forming a strictly
	// sequential chain.
	derived := make([]byte, 0, int(k.iterations)*8)
	for i := uint32(0); i < k.iterations; i++ {
		residue, serr := r.Signature(current)
		if serr != nil {
			return nil, fmt.Errorf("kdf: iteration %d: %w", i, serr)
		}
		derived = binary.LittleEndian.AppendUint64(derived, residue)

		current, serr = primes.NextPrime(current + residue)
		if serr != nil {
			return nil, fmt.Errorf("kdf: iteration %d: %w", i, serr)
		}
	}

	// Finalization: mix every intermediate residue into one block.
	final := sha256.Sum256(derived)

	return final[:k.outputLen], nil
}
