package interact

import (
	"sync"
	"time"

	"github.com/matzehuels/stackchart/pkg/geom"
)

// Defaults used when no option overrides them.
const (
	DefaultFade    = 200 * time.Millisecond
	DefaultDarken  = 0.25
	DefaultOffsetX = 12.0
	DefaultOffsetY = -28.0
)

// TooltipID is the surface node ID of the tooltip.
const TooltipID = "tooltip"

// Tooltip box metrics used for placement.
const (
	tooltipPad       = 6.0
	tooltipCharWidth = 6.5
	tooltipHeight    = 22.0
)

// Formatter renders tooltip content for a datum.
type Formatter func(geom.Datum) string

// DefaultFormatter renders "key: value".
func DefaultFormatter(d geom.Datum) string { return d.Key + ": " + geom.FormatValue(d.Value) }

// Option configures a [Layer].
type Option func(*config)

type config struct {
	fade    time.Duration
	darken  float64
	offsetX float64
	offsetY float64
	format  Formatter
	lock    sync.Locker
}

func newConfig(opts []Option) config {
	c := config{
		fade:    DefaultFade,
		darken:  DefaultDarken,
		offsetX: DefaultOffsetX,
		offsetY: DefaultOffsetY,
		format:  DefaultFormatter,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// WithFade sets how long the tooltip takes to fade out.
func WithFade(d time.Duration) Option { return func(c *config) { c.fade = d } }

// WithDarken sets how far hovered fills blend toward black, in [0, 1].
func WithDarken(amount float64) Option { return func(c *config) { c.darken = amount } }

// WithOffset sets the tooltip position relative to the pointer.
func WithOffset(dx, dy float64) Option {
	return func(c *config) { c.offsetX, c.offsetY = dx, dy }
}

// WithFormatter sets how tooltip content is rendered.
func WithFormatter(f Formatter) Option {
	return func(c *config) {
		if f != nil {
			c.format = f
		}
	}
}

// WithLocker makes pointer handlers hold mu while they run, so a host that
// ticks the scheduler under mu can take pointer input from another goroutine.
func WithLocker(mu sync.Locker) Option { return func(c *config) { c.lock = mu } }
