package geom

import (
	"image/color"
	"math"

	"github.com/aclements/go-gg/palette"

	"github.com/matzehuels/stackchart/pkg/dataset"
	"github.com/matzehuels/stackchart/pkg/scale"
)

// Defaults used when no option overrides them.
const (
	DefaultPadding      = 0.1
	DefaultPointPadding = 0.5
	DefaultFill         = "steelblue"
	DefaultMarkerRadius = 4.0
	DefaultPieMargin    = 10.0
	DefaultLabelSize    = 11.0
)

// Option configures a geometry builder.
type Option func(*config)

type config struct {
	padding      float64
	pointPadding float64
	curve        Curve
	palette      []color.Color
	gradient     palette.Continuous
	fill         string
	nice         int
	domain       *[2]float64
	keys         []string
	pieMargin    float64
	labels       bool
	markerRadius float64
}

func newConfig(opts []Option) config {
	c := config{
		padding:      DefaultPadding,
		pointPadding: DefaultPointPadding,
		curve:        MonotoneX{},
		fill:         DefaultFill,
		pieMargin:    DefaultPieMargin,
		labels:       true,
		markerRadius: DefaultMarkerRadius,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// WithPadding sets the band padding fraction used by bar charts.
func WithPadding(p float64) Option { return func(c *config) { c.padding = p } }

// WithPointPadding sets the outer padding, in steps, of the line chart's
// point scale. The default of 0.5 puts vertices at band centers.
func WithPointPadding(p float64) Option { return func(c *config) { c.pointPadding = p } }

// WithCurve sets the line interpolation. A nil curve keeps the default.
func WithCurve(cv Curve) Option {
	return func(c *config) {
		if cv != nil {
			c.curve = cv
		}
	}
}

// WithPalette sets the colors used for pie slices.
func WithPalette(p []color.Color) Option { return func(c *config) { c.palette = p } }

// WithGradient colors pie slices by sampling g evenly, one stop per slice.
// It takes precedence over WithPalette.
func WithGradient(g palette.Continuous) Option { return func(c *config) { c.gradient = g } }

// WithFill sets the fill of bars and the stroke of lines.
func WithFill(fill string) Option { return func(c *config) { c.fill = fill } }

// WithNice rounds the value domain outward so that at most count ticks
// cover it. 0 disables rounding.
func WithNice(count int) Option { return func(c *config) { c.nice = count } }

// WithValueDomain fixes the value domain instead of deriving it from data.
func WithValueDomain(lo, hi float64) Option {
	return func(c *config) { c.domain = &[2]float64{lo, hi} }
}

// WithKeys fixes the categorical domain. Records whose key is not in it are
// skipped with a domain error.
func WithKeys(keys ...string) Option { return func(c *config) { c.keys = keys } }

// WithPieMargin sets the gap between the pie and the frame edge.
func WithPieMargin(m float64) Option { return func(c *config) { c.pieMargin = m } }

// WithMarkerRadius sets the radius of line chart markers.
func WithMarkerRadius(r float64) Option { return func(c *config) { c.markerRadius = r } }

// WithoutLabels omits value labels.
func WithoutLabels() Option { return func(c *config) { c.labels = false } }

// Scales holds the scales a layout was built with. Fields a chart kind
// does not use are zero.
type Scales struct {
	Band  scale.Band
	Point scale.Point
	Value scale.Linear
	Color scale.Ordinal
}

// ValueDomain returns the extent of the finite values in ds, widened to
// include 0 so bars and lines share a baseline.
func ValueDomain(ds dataset.Dataset) (lo, hi float64) {
	vmin, vmax, ok := ds.Extent()
	if !ok {
		return 0, 0
	}
	return math.Min(0, vmin), math.Max(0, vmax)
}

func (c config) categoryKeys(ds dataset.Dataset) []string {
	if c.keys != nil {
		return c.keys
	}
	return ds.Keys()
}

func (c config) valueScale(ds dataset.Dataset, f Frame) scale.Linear {
	lo, hi := ValueDomain(ds)
	if c.domain != nil {
		lo, hi = c.domain[0], c.domain[1]
	}
	inner := f.Inner()
	var opts []scale.LinearOption
	if c.nice > 0 {
		opts = append(opts, scale.Nice(c.nice))
	}
	return scale.NewLinear(lo, hi, scale.NewRange(inner.Bottom(), inner.Y), opts...)
}

// Baseline returns the pixel position of 0, clamped to the value domain.
func Baseline(lin scale.Linear) float64 {
	lo, hi := lin.Domain()
	return lin.Map(math.Max(lo, math.Min(hi, 0)))
}
