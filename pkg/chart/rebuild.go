package chart

import (
	"context"
	"time"

	"github.com/matzehuels/stackchart/pkg/axis"
	"github.com/matzehuels/stackchart/pkg/errors"
	"github.com/matzehuels/stackchart/pkg/geom"
	"github.com/matzehuels/stackchart/pkg/observability"
)

// rebuild tears down the previous render and mounts the current dataset.
// The caller holds c.mu.
func (c *Chart) rebuild(ctx context.Context) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	start := time.Now()
	observability.Chart().OnRebuildStart(ctx, c.id, string(c.kind), c.data.Len())
	defer func() {
		observability.Chart().OnRebuildComplete(ctx, c.id, string(c.kind),
			len(c.layout.Primitives), len(c.layout.Skipped), time.Since(start), err)
	}()

	cancelled := c.teardown()

	w, h := c.surface.Size()
	frame := geom.Frame{Width: w, Height: h, Margin: c.opts.Margin}
	c.layout, c.axes = c.build(frame)

	for _, s := range c.layout.Skipped {
		c.logger.Debug("datum skipped", "index", s.Index, "key", s.Key, "err", s.Err)
	}

	prims := make([]geom.Primitive, 0, len(c.layout.Primitives)+8)
	for _, a := range c.axes {
		prims = append(prims, a.Primitives(frame)...)
	}
	prims = append(prims, c.layout.Primitives...)

	for _, p := range prims {
		if err := mount(c.surface, p); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "mount %s", p.ID)
		}
		c.nodes = append(c.nodes, p.ID)
	}

	c.started = c.sched.Now()
	if err := c.enter(prims); err != nil {
		return err
	}
	for _, p := range prims {
		if !p.Interactive() {
			continue
		}
		if err := c.layer.Attach(p); err != nil {
			return err
		}
	}

	c.logger.Debug("chart rebuilt",
		"id", c.id,
		"kind", c.kind,
		"dataset", c.data.Name,
		"primitives", len(prims),
		"skipped", len(c.layout.Skipped),
		"cancelled", cancelled,
	)
	return nil
}

// build computes the layout and axes for the current kind.
func (c *Chart) build(f geom.Frame) (geom.Layout, []axis.Axis) {
	opts := c.opts.geomOptions()
	switch c.kind {
	case Line:
		l := geom.Lines(c.data, f, opts...)
		return l, []axis.Axis{
			axis.FromPoint(l.Scales.Point, axis.Bottom),
			axis.FromLinear(l.Scales.Value, axis.Left, c.opts.tickCount()),
		}
	case Pie:
		return geom.Pie(c.data, f, opts...), nil
	default:
		l := geom.Bars(c.data, f, opts...)
		return l, []axis.Axis{
			axis.FromBand(l.Scales.Band, axis.Bottom),
			axis.FromLinear(l.Scales.Value, axis.Left, c.opts.tickCount()),
		}
	}
}
