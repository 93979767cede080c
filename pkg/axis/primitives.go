package axis

import (
	"strconv"

	"github.com/matzehuels/stackchart/pkg/geom"
)

const (
	tickSize    = 6.0
	labelOffset = 9.0
	fontSize    = 10.0
	axisColor   = "#333333"
)

// Primitives returns the axis geometry for frame f: the domain line, then a
// tick line and a label per tick.
func (a Axis) Primitives(f geom.Frame) []geom.Primitive {
	inner := f.Inner()
	prefix := "axis-" + string(a.Edge)

	// at returns the point on the axis line for position pos, moved d
	// pixels outward from the plot area.
	var at func(pos, d float64) (float64, float64)
	var anchor, baseline string
	switch a.Edge {
	case Left:
		at = func(pos, d float64) (float64, float64) { return inner.X - d, pos }
		anchor, baseline = "end", "middle"
	case Right:
		at = func(pos, d float64) (float64, float64) { return inner.Right() + d, pos }
		anchor, baseline = "start", "middle"
	case Top:
		at = func(pos, d float64) (float64, float64) { return pos, inner.Y - d }
		anchor, baseline = "middle", "auto"
	default:
		at = func(pos, d float64) (float64, float64) { return pos, inner.Bottom() + d }
		anchor, baseline = "middle", "hanging"
	}

	x1, y1 := at(a.Start, 0)
	x2, y2 := at(a.End, 0)
	out := make([]geom.Primitive, 0, 1+2*len(a.Ticks))
	out = append(out, geom.Primitive{
		ID:    prefix + "-domain",
		Kind:  geom.KindLine,
		Role:  geom.RoleAxis,
		Line:  geom.Segment{X1: x1, Y1: y1, X2: x2, Y2: y2},
		Style: geom.Style{Stroke: axisColor, StrokeWidth: 1, Opacity: 1},
	})

	for i, t := range a.Ticks {
		tx1, ty1 := at(t.Pos, 0)
		tx2, ty2 := at(t.Pos, tickSize)
		out = append(out, geom.Primitive{
			ID:    prefix + "-tick-" + strconv.Itoa(i),
			Kind:  geom.KindLine,
			Role:  geom.RoleAxis,
			Line:  geom.Segment{X1: tx1, Y1: ty1, X2: tx2, Y2: ty2},
			Style: geom.Style{Stroke: axisColor, StrokeWidth: 1, Opacity: 1},
		})
	}
	for i, t := range a.Ticks {
		lx, ly := at(t.Pos, labelOffset)
		out = append(out, geom.Primitive{
			ID:   prefix + "-label-" + strconv.Itoa(i),
			Kind: geom.KindText,
			Role: geom.RoleAxis,
			Text: geom.Text{X: lx, Y: ly, Content: t.Label},
			Style: geom.Style{
				Fill:     axisColor,
				Opacity:  1,
				FontSize: fontSize,
				Anchor:   anchor,
				Baseline: baseline,
			},
		})
	}
	return out
}
