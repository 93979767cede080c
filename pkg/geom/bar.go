package geom

import (
	"math"

	"github.com/matzehuels/stackchart/pkg/dataset"
	"github.com/matzehuels/stackchart/pkg/scale"
)

// labelGap is the distance between a bar end and its value label.
const labelGap = 4.0

// Bars lays out one rectangle per record. Bars span from the zero baseline
// to their value, so negative values hang below it. Value labels follow all
// bars in the primitive list.
func Bars(ds dataset.Dataset, f Frame, opts ...Option) Layout {
	c := newConfig(opts)
	inner := f.Inner()
	band := scale.NewBand(c.categoryKeys(ds), scale.NewRange(inner.X, inner.Right()), c.padding)
	lin := c.valueScale(ds, f)

	l := Layout{Frame: f, Scales: Scales{Band: band, Value: lin}}
	base := Baseline(lin)
	seen := make(map[string]bool, ds.Len())
	var labels []Primitive

	for i, r := range ds.Records {
		if err := admit(r, seen, true); err != nil {
			l.skip(i, r.Key, err)
			continue
		}
		x, err := band.Position(r.Key)
		if err != nil {
			l.skip(i, r.Key, err)
			continue
		}

		y := lin.Map(r.Value)
		d := &Datum{Index: i, Key: r.Key, Value: r.Value}
		rect := Rect{X: x, Y: math.Min(base, y), W: band.Bandwidth(), H: math.Abs(base - y)}
		l.Primitives = append(l.Primitives, Primitive{
			ID:    primitiveID("bar", i),
			Kind:  KindRect,
			Role:  RoleMark,
			Datum: d,
			Rect:  rect,
			Style: Style{Fill: c.fill, Opacity: 1},
		})

		if c.labels {
			if y <= base {
				labels = append(labels, valueLabel(primitiveID("bar-label", i), d, rect.CenterX(), rect.Y-labelGap, "middle", "auto"))
			} else {
				labels = append(labels, valueLabel(primitiveID("bar-label", i), d, rect.CenterX(), rect.Bottom()+labelGap, "middle", "hanging"))
			}
		}
	}

	l.Primitives = append(l.Primitives, labels...)
	return l
}
