package scale

import (
	"math"
	"slices"

	"github.com/matzehuels/stackchart/pkg/errors"
)

// Band is a discrete scale that divides its range into one equal slot per
// key. Padding is the fraction of a step left empty between bands and, at
// half that amount on each end, outside the first and last band.
type Band struct {
	keys      []string
	index     map[string]int
	rng       Range
	padding   float64
	start     float64
	step      float64
	bandwidth float64
}

// NewBand creates a band scale. Duplicate keys collapse to their first
// occurrence. padding is clamped to [0, 1].
func NewBand(keys []string, r Range, padding float64) Band {
	b := Band{rng: r, padding: clamp01(padding)}
	b.keys, b.index = dedupe(keys)

	n := float64(len(b.keys))
	if n == 0 {
		return b
	}

	// Inner and outer padding are equal, alignment is centered.
	b.step = r.Len() / math.Max(1, n-b.padding+2*b.padding)
	b.start = r.Lo + (r.Len()-b.step*(n-b.padding))*0.5
	b.bandwidth = math.Abs(b.step) * (1 - b.padding)
	if b.step < 0 {
		// Reversed range: slots still run in key order, each band's
		// position is its lower pixel edge.
		b.start -= b.bandwidth
	}
	return b
}

// Position returns the start of the band for key.
func (b Band) Position(key string) (float64, error) {
	i, ok := b.index[key]
	if !ok {
		return 0, &errors.DomainError{Key: key, Domain: slices.Clone(b.keys)}
	}
	return b.start + b.step*float64(i), nil
}

// Center returns the midpoint of the band for key.
func (b Band) Center(key string) (float64, error) {
	p, err := b.Position(key)
	if err != nil {
		return 0, err
	}
	return p + b.bandwidth/2, nil
}

// Bandwidth returns the width of each band. It is 0 for an empty domain.
func (b Band) Bandwidth() float64 { return b.bandwidth }

// Step returns the distance between the starts of adjacent bands.
func (b Band) Step() float64 { return b.step }

// Padding returns the padding fraction.
func (b Band) Padding() float64 { return b.padding }

// Index returns the ordinal position of key in the domain.
func (b Band) Index(key string) (int, bool) {
	i, ok := b.index[key]
	return i, ok
}

// Domain returns a copy of the keys in order.
func (b Band) Domain() []string { return slices.Clone(b.keys) }

// Range returns the output range.
func (b Band) Range() Range { return b.rng }

func dedupe(keys []string) ([]string, map[string]int) {
	out := make([]string, 0, len(keys))
	index := make(map[string]int, len(keys))
	for _, k := range keys {
		if _, seen := index[k]; seen {
			continue
		}
		index[k] = len(out)
		out = append(out, k)
	}
	return out, index
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(0, math.Min(1, v))
}
