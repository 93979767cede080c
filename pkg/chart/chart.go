package chart

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/stackchart/pkg/axis"
	"github.com/matzehuels/stackchart/pkg/dataset"
	"github.com/matzehuels/stackchart/pkg/errors"
	"github.com/matzehuels/stackchart/pkg/geom"
	"github.com/matzehuels/stackchart/pkg/interact"
	"github.com/matzehuels/stackchart/pkg/observability"
	"github.com/matzehuels/stackchart/pkg/surface"
	"github.com/matzehuels/stackchart/pkg/transition"
)

// maxSettleRounds bounds how often Settle re-checks for transitions
// scheduled by completion callbacks.
const maxSettleRounds = 64

// Resizer is implemented by surfaces whose size the chart may change.
type Resizer interface {
	Resize(w, h float64)
}

// Chart renders datasets onto a surface.
type Chart struct {
	mu sync.Mutex

	id      string
	kind    Kind
	surface surface.Surface
	opts    Options
	logger  *log.Logger

	sched   *transition.Scheduler
	layer   *interact.Layer
	layout  geom.Layout
	axes    []axis.Axis
	nodes   []string
	data    dataset.Dataset
	hasData bool
	started time.Time
	closed  bool
}

// Option configures a Chart.
type Option func(*chartConfig)

type chartConfig struct {
	opts   Options
	logger *log.Logger
	start  time.Time
}

// WithOptions sets layout and animation options.
func WithOptions(o Options) Option { return func(c *chartConfig) { c.opts = o } }

// WithLogger sets the logger for rebuild and teardown events.
func WithLogger(l *log.Logger) Option {
	return func(c *chartConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithClock sets the time of the first frame. It defaults to time.Now.
func WithClock(start time.Time) Option { return func(c *chartConfig) { c.start = start } }

// New creates a chart of the given kind on s. The chart takes its size from
// the surface.
func New(kind Kind, s surface.Surface, opts ...Option) (*Chart, error) {
	if _, err := ParseKind(string(kind)); err != nil {
		return nil, err
	}
	if s == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "nil surface")
	}

	cfg := chartConfig{opts: DefaultOptions(), logger: log.New(io.Discard)}
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.opts.Validate(); err != nil {
		return nil, err
	}
	if cfg.start.IsZero() {
		cfg.start = time.Now()
	}

	c := &Chart{
		id:      uuid.NewString(),
		kind:    kind,
		surface: s,
		opts:    cfg.opts,
		logger:  cfg.logger,
	}
	c.sched = transition.NewScheduler(s, cfg.start, transition.WithLogger(c.logger))
	c.layer = interact.NewLayer(s, c.sched,
		interact.WithFade(c.opts.TooltipFade.Duration),
		interact.WithDarken(c.opts.Darken),
		interact.WithLocker(&c.mu),
	)
	c.started = cfg.start
	return c, nil
}

// ID returns the chart's unique identifier.
func (c *Chart) ID() string { return c.id }

// Kind returns the chart type.
func (c *Chart) Kind() Kind {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.kind
}

// Options returns the chart options.
func (c *Chart) Options() Options { return c.opts }

// Render replaces whatever the chart shows with ds.
func (c *Chart) Render(ctx context.Context, ds dataset.Dataset) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return errClosed()
	}
	c.data, c.hasData = ds, true
	return c.rebuild(ctx)
}

// Select renders the dataset named sel from coll. An unknown selection
// leaves the chart unchanged.
func (c *Chart) Select(ctx context.Context, coll dataset.Collection, sel dataset.Selection) error {
	ds, err := coll.Get(sel)
	if err != nil {
		return err
	}
	return c.Render(ctx, ds)
}

// SetKind switches the chart type and rebuilds.
func (c *Chart) SetKind(ctx context.Context, kind Kind) error {
	if _, err := ParseKind(string(kind)); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return errClosed()
	}
	c.kind = kind
	if !c.hasData {
		return nil
	}
	return c.rebuild(ctx)
}

// Resize changes the chart size and rebuilds. The surface is resized too
// when it implements [Resizer].
func (c *Chart) Resize(ctx context.Context, w, h float64) error {
	if w <= 0 || h <= 0 {
		return errors.New(errors.ErrCodeInvalidInput, "size %vx%v must be positive", w, h)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return errClosed()
	}
	if r, ok := c.surface.(Resizer); ok {
		r.Resize(w, h)
	}
	c.opts.Width, c.opts.Height = w, h
	if !c.hasData {
		return nil
	}
	return c.rebuild(ctx)
}

// Tick advances animations to now and returns the number of transitions
// still running. A closed chart does nothing.
func (c *Chart) Tick(now time.Time) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return 0
	}
	return c.sched.Tick(now)
}

// Settle advances the clock until every transition has completed and
// returns the time of the last frame.
func (c *Chart) Settle() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.sched.Now()
	if c.closed {
		return now
	}
	for range maxSettleRounds {
		if c.sched.Pending() == 0 {
			break
		}
		for _, t := range c.sched.Transitions() {
			if end := t.Start.Add(t.Delay + t.Duration); end.After(now) {
				now = end
			}
		}
		c.sched.Tick(now)
	}
	// One more frame runs callbacks of groups that ended without
	// transitions.
	c.sched.Tick(now)
	return now
}

// Started returns the frame time at which the last rebuild began its
// entrance transitions.
func (c *Chart) Started() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.started
}

// Pending returns the number of running transitions.
func (c *Chart) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sched.Pending()
}

// Layout returns the geometry of the last rebuild.
func (c *Chart) Layout() geom.Layout {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.layout
}

// Axes returns the axes of the last rebuild. Pie charts have none.
func (c *Chart) Axes() []axis.Axis {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]axis.Axis(nil), c.axes...)
}

// Tooltip returns the current tooltip, if any.
func (c *Chart) Tooltip() (interact.Tooltip, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.layer.Tooltip()
}

// Close cancels all transitions, detaches pointer handlers, and removes
// every node including the tooltip. Later renders fail with CHART_CLOSED.
// Closing twice is a no-op.
func (c *Chart) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.closed = true
	cancelled := c.teardown()
	c.logger.Debug("chart closed", "id", c.id, "cancelled", cancelled)
	observability.Chart().OnTeardown(c.id, cancelled)
	return nil
}

// teardown releases everything the last rebuild acquired and returns the
// number of transitions it cancelled.
func (c *Chart) teardown() int {
	cancelled := c.sched.Clear()
	c.layer.Detach()
	for _, id := range c.nodes {
		if c.surface.Exists(id) {
			_ = c.surface.Remove(id)
		}
	}
	c.nodes = c.nodes[:0]
	return cancelled
}

func errClosed() error {
	return errors.New(errors.ErrCodeChartClosed, "chart is closed")
}
