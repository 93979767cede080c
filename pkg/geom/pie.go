package geom

import (
	"math"

	"github.com/matzehuels/stackchart/pkg/dataset"
	"github.com/matzehuels/stackchart/pkg/scale"
)

// Pie lays out one slice per record, clockwise from 12 o'clock in dataset
// order. Negative and non-finite values count as 0. When the total is 0
// every slice has zero span. Slice labels sit at arc centroids and are only
// emitted for slices with a positive span.
func Pie(ds dataset.Dataset, f Frame, opts ...Option) Layout {
	c := newConfig(opts)
	keys := c.categoryKeys(ds)
	pal := c.palette
	if c.gradient != nil {
		pal = scale.FromGradient(c.gradient, len(keys))
	}
	colors := scale.NewOrdinal(keys, pal)

	l := Layout{Frame: f, Scales: Scales{Color: colors}}
	cx, cy := f.Width/2, f.Height/2
	outer := math.Max(0, math.Min(f.Width, f.Height)/2-c.pieMargin)

	type slice struct {
		index int
		rec   dataset.Record
		fill  string
		value float64
	}
	seen := make(map[string]bool, ds.Len())
	slices := make([]slice, 0, ds.Len())
	var total float64
	for i, r := range ds.Records {
		if err := admit(r, seen, false); err != nil {
			l.skip(i, r.Key, err)
			continue
		}
		fill, err := colors.Hex(r.Key)
		if err != nil {
			l.skip(i, r.Key, err)
			continue
		}
		v := r.Value
		if !finite(v) || v < 0 {
			v = 0
		}
		total += v
		slices = append(slices, slice{index: i, rec: r, fill: fill, value: v})
	}

	var labels []Primitive
	var cum float64
	for _, s := range slices {
		start := angleAt(cum, total)
		cum += s.value
		end := angleAt(cum, total)

		arc := Arc{CX: cx, CY: cy, StartAngle: start, EndAngle: end, OuterRadius: outer}
		d := &Datum{Index: s.index, Key: s.rec.Key, Value: s.rec.Value}
		l.Primitives = append(l.Primitives, Primitive{
			ID:    primitiveID("slice", s.index),
			Kind:  KindArc,
			Role:  RoleMark,
			Datum: d,
			Arc:   arc,
			Style: Style{Fill: s.fill, Stroke: "white", StrokeWidth: 1, Opacity: 1},
		})

		if c.labels && arc.Span() > 0 {
			at := arc.Centroid()
			labels = append(labels, Primitive{
				ID:    primitiveID("slice-label", s.index),
				Kind:  KindText,
				Role:  RoleLabel,
				Datum: d,
				Text:  Text{X: at.X, Y: at.Y, Content: s.rec.Key},
				Style: Style{Fill: "white", Opacity: 1, FontSize: DefaultLabelSize, Anchor: "middle", Baseline: "middle"},
			})
		}
	}

	l.Primitives = append(l.Primitives, labels...)
	return l
}

func angleAt(cum, total float64) float64 {
	if total <= 0 || math.IsInf(total, 0) {
		return 0
	}
	return 2 * math.Pi * cum / total
}
