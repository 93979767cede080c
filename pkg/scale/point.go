package scale

import (
	"math"
	"slices"

	"github.com/matzehuels/stackchart/pkg/errors"
)

// Point is a discrete scale that maps each key to the center of its slot.
// It is a band scale with full inner padding: bandwidth is always 0, and
// padding only controls the space left before the first and after the last
// point, in steps.
type Point struct {
	keys    []string
	index   map[string]int
	rng     Range
	padding float64
	start   float64
	step    float64
}

// NewPoint creates a point scale. A single key is placed at the range
// midpoint.
func NewPoint(keys []string, r Range, padding float64) Point {
	p := Point{rng: r, padding: math.Max(0, padding)}
	if math.IsNaN(p.padding) {
		p.padding = 0
	}
	p.keys, p.index = dedupe(keys)

	n := float64(len(p.keys))
	if n == 0 {
		return p
	}
	p.step = r.Len() / math.Max(1, n-1+2*p.padding)
	p.start = r.Lo + (r.Len()-p.step*(n-1))*0.5
	return p
}

// Position returns the pixel position of key.
func (p Point) Position(key string) (float64, error) {
	i, ok := p.index[key]
	if !ok {
		return 0, &errors.DomainError{Key: key, Domain: slices.Clone(p.keys)}
	}
	return p.start + p.step*float64(i), nil
}

// Bandwidth is always 0 for point scales.
func (p Point) Bandwidth() float64 { return 0 }

// Step returns the distance between adjacent points.
func (p Point) Step() float64 { return p.step }

// Index returns the ordinal position of key in the domain.
func (p Point) Index(key string) (int, bool) {
	i, ok := p.index[key]
	return i, ok
}

// Domain returns a copy of the keys in order.
func (p Point) Domain() []string { return slices.Clone(p.keys) }

// Range returns the output range.
func (p Point) Range() Range { return p.rng }
