// Package influence models the gravitational-style "influence" of
// composite numbers on points of the number line.
//
// What:
//
//   - Field maps every composite in a closed range to its prime-factor
//     mass.
//   - At(point) sums mass/dist² over all composites, with the squared
//     distance clamped to 1 so a point sitting on a composite
//     contributes its full mass.
//
// Why:
//
//   - gapfield uses the field to modulate barycentric offsets: gaps
//     surrounded by heavy composite clusters are pulled harder than
//     gaps next to prime-dense stretches.
//
// Complexity: construction O(R·√R) over range width R; At is O(C) over
// the number of composites in range.
//
// Errors:
//
//   - ErrInvalidRange — lower bound exceeds upper bound.
package influence
