// Package kdf implements a demonstration key derivation function over
// chained moma signatures.
//
// What:
//
//   - Seeding: SHA-256 of password‖salt and salt‖password deterministically
//     derive the ring modulus and the starting prime (each rounded up to
//     the next prime).
//   - Iteration: the work factor drives a chain of Signature calls; each
//     iteration's residue feeds the search for the next prime, so the
//     chain cannot be parallelized.
//   - Finalization: SHA-256 over the concatenated residues, truncated to
//     the requested key length.
//
// Why:
//
//   - A worked example of using the signature primitive as a
//     computational core, with the cryptographic guarantees supplied by
//     the outer hash, not by moma itself.
//
// This is a pedagogical demonstration, NOT a production KDF. Use a
// vetted construction (argon2, scrypt, PBKDF2) for real credentials.
//
// Errors (sentinel):
//
//   - ErrZeroIterations — work factor 0.
//   - ErrBadKeyLength   — requested length outside 1..32 bytes (one
//     SHA-256 block of output).
package kdf
