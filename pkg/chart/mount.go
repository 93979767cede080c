package chart

import (
	"time"

	"github.com/matzehuels/stackchart/pkg/geom"
	"github.com/matzehuels/stackchart/pkg/interact"
	"github.com/matzehuels/stackchart/pkg/surface"
	"github.com/matzehuels/stackchart/pkg/transition"
)

// mount creates the node for p and writes its final geometry and style.
func mount(s surface.Surface, p geom.Primitive) error {
	if err := s.Create(p.ID, p.Kind); err != nil {
		return err
	}

	attrs := map[string]float64{}
	switch p.Kind {
	case geom.KindRect:
		attrs[surface.AttrX] = p.Rect.X
		attrs[surface.AttrY] = p.Rect.Y
		attrs[surface.AttrWidth] = p.Rect.W
		attrs[surface.AttrHeight] = p.Rect.H
	case geom.KindPath:
		if err := s.SetPath(p.ID, p.Path); err != nil {
			return err
		}
	case geom.KindCircle:
		attrs[surface.AttrCX] = p.Circle.CX
		attrs[surface.AttrCY] = p.Circle.CY
		attrs[surface.AttrR] = p.Circle.R
	case geom.KindArc:
		attrs[surface.AttrCX] = p.Arc.CX
		attrs[surface.AttrCY] = p.Arc.CY
		attrs[surface.AttrStartAngle] = p.Arc.StartAngle
		attrs[surface.AttrEndAngle] = p.Arc.EndAngle
		attrs[surface.AttrInnerRadius] = p.Arc.InnerRadius
		attrs[surface.AttrOuterRadius] = p.Arc.OuterRadius
		attrs[surface.AttrScale] = 1
	case geom.KindLine:
		attrs[surface.AttrX1] = p.Line.X1
		attrs[surface.AttrY1] = p.Line.Y1
		attrs[surface.AttrX2] = p.Line.X2
		attrs[surface.AttrY2] = p.Line.Y2
	case geom.KindText:
		attrs[surface.AttrX] = p.Text.X
		attrs[surface.AttrY] = p.Text.Y
	}

	st := p.Style
	if st.StrokeWidth > 0 {
		attrs[surface.AttrStrokeWidth] = st.StrokeWidth
	}
	if st.FontSize > 0 {
		attrs[surface.AttrFontSize] = st.FontSize
	}
	if st.Opacity > 0 {
		attrs[surface.AttrOpacity] = st.Opacity
	}
	for name, v := range attrs {
		if err := s.SetAttr(p.ID, name, v); err != nil {
			return err
		}
	}

	styles := map[string]string{
		surface.StyleFill:     st.Fill,
		surface.StyleStroke:   st.Stroke,
		surface.StyleAnchor:   st.Anchor,
		surface.StyleBaseline: st.Baseline,
		surface.StyleClass:    string(p.Role),
	}
	if p.Kind == geom.KindText {
		styles[surface.StyleText] = p.Text.Content
	}
	if p.Interactive() {
		styles[surface.StyleTitle] = interact.DefaultFormatter(*p.Datum)
	}
	for name, v := range styles {
		if v == "" {
			continue
		}
		if err := s.SetStyle(p.ID, name, v); err != nil {
			return err
		}
	}
	return nil
}

// enter schedules the entrance animation of freshly mounted primitives.
// Bars grow from the baseline, the line draws in, markers and labels fade
// in, slices grow from the center. Marks of each kind are staggered by
// their datum index.
func (c *Chart) enter(prims []geom.Primitive) error {
	base := geom.Baseline(c.layout.Scales.Value)
	stagger := c.opts.Stagger.Duration
	timing := func(delay time.Duration) []transition.Option {
		return []transition.Option{
			transition.Duration(c.opts.Duration.Duration),
			transition.Delay(delay),
			transition.Ease(c.opts.easing()),
		}
	}

	for _, p := range prims {
		var idx time.Duration
		if p.Datum != nil {
			idx = time.Duration(p.Datum.Index)
		}

		switch {
		case p.Role == geom.RoleSeries && p.Kind == geom.KindPath:
			length, err := c.surface.PathLength(p.ID)
			if err != nil {
				return err
			}
			if _, err := c.sched.DrawIn(c.surface, p.ID, length, timing(0)...); err != nil {
				return err
			}

		case p.Role == geom.RoleMark && p.Kind == geom.KindRect:
			if err := c.set(p.ID, map[string]float64{
				surface.AttrY:      base,
				surface.AttrHeight: 0,
			}); err != nil {
				return err
			}
			c.sched.Animate(p.ID, map[string]float64{
				surface.AttrY:      p.Rect.Y,
				surface.AttrHeight: p.Rect.H,
			}, timing(idx*stagger)...)

		case p.Role == geom.RoleMark && p.Kind == geom.KindArc:
			if err := c.set(p.ID, map[string]float64{surface.AttrScale: 0}); err != nil {
				return err
			}
			c.sched.Animate(p.ID, map[string]float64{surface.AttrScale: 1}, timing(idx*stagger)...)

		case p.Role == geom.RoleMark:
			if err := c.set(p.ID, map[string]float64{surface.AttrOpacity: 0}); err != nil {
				return err
			}
			c.sched.Animate(p.ID, map[string]float64{surface.AttrOpacity: 1}, timing(idx*stagger)...)

		case p.Role == geom.RoleLabel:
			if err := c.set(p.ID, map[string]float64{surface.AttrOpacity: 0}); err != nil {
				return err
			}
			c.sched.Animate(p.ID, map[string]float64{surface.AttrOpacity: 1},
				timing(c.opts.LabelDelay.Duration+idx*stagger)...)
		}
	}
	return nil
}

func (c *Chart) set(id string, attrs map[string]float64) error {
	for name, v := range attrs {
		if err := c.surface.SetAttr(id, name, v); err != nil {
			return err
		}
	}
	return nil
}
