package scale

import (
	"math"

	mscale "github.com/aclements/go-moremath/scale"
)

// DefaultTickCount is the tick count used when none is given.
const DefaultTickCount = 10

// Linear maps the interval [lo, hi] linearly onto a Range. Values outside
// the domain extrapolate unless the scale clamps.
type Linear struct {
	lo, hi float64
	rng    Range
	clamp  bool
}

type linearConfig struct {
	nice  int
	clamp bool
}

// LinearOption configures [NewLinear].
type LinearOption func(*linearConfig)

// Nice expands the domain bounds outward to the coarsest tick level whose
// ticks over the expanded domain number at most count.
func Nice(count int) LinearOption { return func(c *linearConfig) { c.nice = count } }

// Clamp restricts mapped and inverted values to the domain.
func Clamp() LinearOption { return func(c *linearConfig) { c.clamp = true } }

// NewLinear creates a linear scale. Bounds are swapped when lo > hi and NaN
// bounds are replaced by 0.
func NewLinear(lo, hi float64, r Range, opts ...LinearOption) Linear {
	var cfg linearConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if math.IsNaN(lo) {
		lo = 0
	}
	if math.IsNaN(hi) {
		hi = 0
	}
	if lo > hi {
		lo, hi = hi, lo
	}
	if cfg.nice > 0 && lo < hi && !math.IsInf(hi-lo, 0) {
		ml := mscale.Linear{Min: lo, Max: hi}
		ml.Nice(mscale.TickOptions{Max: cfg.nice})
		lo, hi = ml.Min, ml.Max
	}
	return Linear{lo: lo, hi: hi, rng: r, clamp: cfg.clamp}
}

// Map returns the pixel position of v. A degenerate domain maps every value
// to Range.Lo.
func (l Linear) Map(v float64) float64 {
	if math.IsNaN(v) {
		return math.NaN()
	}
	if l.lo == l.hi {
		return l.rng.Lo
	}
	if l.clamp {
		v = math.Max(l.lo, math.Min(l.hi, v))
	}
	return l.rng.Lo + (v-l.lo)/(l.hi-l.lo)*l.rng.Len()
}

// Invert returns the domain value for pixel position px.
func (l Linear) Invert(px float64) float64 {
	if l.lo == l.hi || l.rng.Len() == 0 {
		return l.lo
	}
	v := l.lo + (px-l.rng.Lo)/l.rng.Len()*(l.hi-l.lo)
	if l.clamp {
		v = math.Max(l.lo, math.Min(l.hi, v))
	}
	return v
}

// Ticks returns at most count human-friendly values inside the domain, in
// increasing order. A degenerate domain has a single tick.
func (l Linear) Ticks(count int) []float64 {
	if count < 1 {
		count = DefaultTickCount
	}
	if l.lo == l.hi {
		return []float64{l.lo}
	}
	ml := mscale.Linear{Min: l.lo, Max: l.hi}
	major, _ := ml.Ticks(mscale.TickOptions{Max: count})
	return major
}

// Domain returns the (possibly niced) domain bounds.
func (l Linear) Domain() (lo, hi float64) { return l.lo, l.hi }

// Range returns the output range.
func (l Linear) Range() Range { return l.rng }

// Clamped reports whether the scale clamps.
func (l Linear) Clamped() bool { return l.clamp }
