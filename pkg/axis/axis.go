package axis

import (
	"github.com/matzehuels/stackchart/pkg/geom"
	"github.com/matzehuels/stackchart/pkg/scale"
)

// Edge is the side of the plot area an axis is drawn on.
type Edge string

const (
	Bottom Edge = "bottom"
	Left   Edge = "left"
	Top    Edge = "top"
	Right  Edge = "right"
)

// Tick is one labelled position along an axis.
type Tick struct {
	Pos   float64
	Label string
}

// Axis is the ticks of one scale along one edge. Start and End bound the
// domain line in pixels.
type Axis struct {
	Edge  Edge
	Start float64
	End   float64
	Ticks []Tick
}

// FromBand builds a categorical axis with ticks at band centers.
func FromBand(b scale.Band, e Edge) Axis {
	a := Axis{Edge: e, Start: b.Range().Min(), End: b.Range().Max()}
	for _, k := range b.Domain() {
		c, err := b.Center(k)
		if err != nil {
			continue
		}
		a.Ticks = append(a.Ticks, Tick{Pos: c, Label: k})
	}
	return a
}

// FromPoint builds a categorical axis with ticks at the points.
func FromPoint(p scale.Point, e Edge) Axis {
	a := Axis{Edge: e, Start: p.Range().Min(), End: p.Range().Max()}
	for _, k := range p.Domain() {
		pos, err := p.Position(k)
		if err != nil {
			continue
		}
		a.Ticks = append(a.Ticks, Tick{Pos: pos, Label: k})
	}
	return a
}

// FromLinear builds a value axis with at most count ticks. A count below 1
// uses [scale.DefaultTickCount].
func FromLinear(l scale.Linear, e Edge, count int) Axis {
	a := Axis{Edge: e, Start: l.Range().Min(), End: l.Range().Max()}
	for _, v := range l.Ticks(count) {
		a.Ticks = append(a.Ticks, Tick{Pos: l.Map(v), Label: geom.FormatValue(v)})
	}
	return a
}

// Labels returns the tick labels in order.
func (a Axis) Labels() []string {
	out := make([]string, len(a.Ticks))
	for i, t := range a.Ticks {
		out[i] = t.Label
	}
	return out
}
