// Package composite provides utilities over the composite numbers of a
// range: enumeration and small-prime "dampening" scores.
//
// What:
//
//   - Composites lists every composite in a closed range [low, high]
//     (values below 4 contribute nothing: 0 and 1 are neither prime
//     nor composite here, 2 and 3 are prime).
//   - Dampener scores how "regular" the composites strictly between two
//     bounds are: the fraction divisible by at least one of a supplied
//     set of small primes. 1.0 means every composite is a small-prime
//     multiple; lower scores mean rougher composites.
//
// Why:
//
//   - Dampening quantifies how much of a gap's composite matter is
//     explained by trivial small factors, a companion view to the
//     massfield and influence analyzers.
//
// Complexity: O(R·√R) over range width R.
//
// Errors:
//
//   - ErrInvalidRange — lower bound exceeds upper bound.
package composite
