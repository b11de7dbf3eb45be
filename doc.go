// Package moma is your in-memory laboratory for Moving Origin Modular
// Arithmetic — modular reduction where the "zero point" (origin) is not
// fixed but recomputed per element by a pluggable rule.
//
// 🚀 What is moma?
//
//	A modern, thread-friendly library that brings together:
//		• Prime utilities: primality, next/prev enumeration, factor mass, sieve
//		• Origin strategies: Fixed, PrimeGap, CompositeMass + user extensions
//		• Signature rings: (prime + predecessor + origin) mod m, Euclidean
//		• Streaming analysis: OriginDrift volatility tracking
//		• Batch analysis: mass fields, prime-gap fields, resonance scans
//		• Goldbach projection over a precomputed prime set
//		• Shannon entropy, signal scores, and a demonstration KDF
//
// ✨ Why choose moma?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – every signature is a pure function of its inputs
//   - Pure Go – no cgo, no hidden deps
//   - Extensible – implement strategy.OriginStrategy (or wrap a func)
//     and every ring and analyzer accepts it unchanged
//
// Under the hood, everything is organized as flat subpackages:
//
//	primes/    — primality testing, enumeration, prime-factor mass, sieve
//	strategy/  — the OriginStrategy capability and built-in rules
//	ring/      — the SignatureRing reduction primitive
//	entropy/   — Shannon entropy over observed frequency distributions
//	drift/     — streaming signature-volatility accumulator
//	massfield/ — composite mass between consecutive primes over a range
//	gapfield/  — prime-gap statistics: offsets, residue classes, entropy
//	resonance/ — primes whose signature divides by an independent property
//	goldbach/  — even-number prime-pair projection
//	influence/ — inverse-square "influence" of composite masses
//	composite/ — composite enumeration and small-prime dampening scores
//	score/     — signal-to-noise and kurtosis scores for series
//	kdf/       — demonstration key derivation over chained signatures
//	scenario/  — YAML-declared analysis runs with UUID-stamped reports
//
// Quick numeric example:
//
//	modulus 37, strategy PrimeGap, prime 29:
//	value  = 29 + prev(29) = 29 + 23 = 52
//	origin = 29 - 23 = 6
//	signature = (52 + 6) mod 37 = 21
//
// Dive into each package's doc.go for complexity notes, error contracts
// and runnable examples.
//
//	go get github.com/katalvlaran/moma
package moma
