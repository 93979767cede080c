// Package scale maps data domains to pixel ranges.
//
// Scales are immutable values: a chart builds new scales whenever its dataset
// or outer dimensions change and never mutates one in place.
//
//   - [Band] divides a range into equal, padded slots, one per key.
//   - [Point] places each key at the center of an unpadded slot.
//   - [Linear] maps a numeric interval to a range, with optional nice bounds
//     and clamping.
//   - [Ordinal] assigns palette colors to keys by first-seen index.
//
// Discrete scales with an empty domain are valid and have zero bandwidth, so
// charts with no data render empty instead of failing. Looking up a key that
// is not in a discrete scale's domain returns an [errors.DomainError].
//
// [errors.DomainError]: github.com/matzehuels/stackchart/pkg/errors.DomainError
package scale
