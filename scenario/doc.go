// Package scenario runs declaratively described moma analyses: a YAML
// document names a strategy, a modulus, a numeric range and the
// analyses to perform, and Run executes them into a single report.
//
// What:
//
//   - Config is the YAML-tagged description; Validate rejects unknown
//     strategies and analyses, modulus 0 and inverted ranges before
//     anything runs.
//   - Load / LoadFile parse and validate in one step.
//   - Run executes the requested analyses (drift, gapfield, massfield,
//     resonance, goldbach) over the configured range and returns a
//     Report stamped with a UUID run ID.
//   - Report.WriteCSV streams the scalar results as section,key,value
//     rows for downstream plotting.
//
// Why:
//
//   - Sweeping moduli and strategies over many ranges is the daily
//     loop of moma research; a config file per sweep beats hand-wiring
//     every analyzer each time.
//
// Example document:
//
//	name: mod37-primegap
//	modulus: 37
//	strategy: primegap
//	range: {low: 3, high: 1000}
//	analyses: [drift, gapfield, goldbach]
//	goldbach_targets: [96, 100]
//
// Notes:
//
//   - The drift feed starts at max(low, 3): the first prime has no
//     predecessor, and skipping it keeps predecessor-requiring
//     strategies usable over ranges that begin at 2.
//   - The resonance property is primes.PrimeFactorMass.
//
// Errors (sentinel):
//
//   - ErrUnknownStrategy, ErrUnknownAnalysis, ErrNoAnalyses,
//     ErrBadRange — configuration rejects; analyzer errors propagate
//     unchanged from Run.
package scenario
