package scale

import "math"

// Range is a continuous pixel interval. Lo may be greater than Hi, which is
// how vertical value axes grow upward.
type Range struct {
	Lo, Hi float64
}

// NewRange returns the interval [lo, hi].
func NewRange(lo, hi float64) Range { return Range{Lo: lo, Hi: hi} }

// Len returns the signed span Hi - Lo.
func (r Range) Len() float64 { return r.Hi - r.Lo }

// Min returns the smaller bound.
func (r Range) Min() float64 { return math.Min(r.Lo, r.Hi) }

// Max returns the larger bound.
func (r Range) Max() float64 { return math.Max(r.Lo, r.Hi) }

// Contains reports whether px lies within the interval, bounds included.
func (r Range) Contains(px float64) bool { return px >= r.Min() && px <= r.Max() }
