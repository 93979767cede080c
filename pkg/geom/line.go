package geom

import (
	"github.com/matzehuels/stackchart/pkg/dataset"
	"github.com/matzehuels/stackchart/pkg/scale"
)

// LineID is the ID of the series path in a line layout.
const LineID = "line"

// Lines lays out a single series: one path through every drawable record in
// dataset order, a circle marker per vertex and optional value labels. A
// dataset with fewer than two drawable records yields a path with a single
// move-to, or no commands at all.
func Lines(ds dataset.Dataset, f Frame, opts ...Option) Layout {
	c := newConfig(opts)
	inner := f.Inner()
	point := scale.NewPoint(c.categoryKeys(ds), scale.NewRange(inner.X, inner.Right()), c.pointPadding)
	lin := c.valueScale(ds, f)

	l := Layout{Frame: f, Scales: Scales{Point: point, Value: lin}}
	seen := make(map[string]bool, ds.Len())
	var (
		vertices []Point
		markers  []Primitive
		labels   []Primitive
	)

	for i, r := range ds.Records {
		if err := admit(r, seen, true); err != nil {
			l.skip(i, r.Key, err)
			continue
		}
		x, err := point.Position(r.Key)
		if err != nil {
			l.skip(i, r.Key, err)
			continue
		}

		v := Point{X: x, Y: lin.Map(r.Value)}
		vertices = append(vertices, v)
		d := &Datum{Index: i, Key: r.Key, Value: r.Value}
		markers = append(markers, Primitive{
			ID:     primitiveID("marker", i),
			Kind:   KindCircle,
			Role:   RoleMark,
			Datum:  d,
			Circle: Circle{CX: v.X, CY: v.Y, R: c.markerRadius},
			Style:  Style{Fill: c.fill, Stroke: "white", StrokeWidth: 1.5, Opacity: 1},
		})
		if c.labels {
			labels = append(labels, valueLabel(primitiveID("line-label", i), d, v.X, v.Y-c.markerRadius-labelGap, "middle", "auto"))
		}
	}

	l.Primitives = append(l.Primitives, Primitive{
		ID:    LineID,
		Kind:  KindPath,
		Role:  RoleSeries,
		Path:  c.curve.Build(vertices),
		Style: Style{Fill: "none", Stroke: c.fill, StrokeWidth: 2, Opacity: 1},
	})
	l.Primitives = append(l.Primitives, markers...)
	l.Primitives = append(l.Primitives, labels...)
	return l
}
