package geom

import (
	"math"
	"testing"

	"github.com/matzehuels/stackchart/pkg/dataset"
	"github.com/matzehuels/stackchart/pkg/scale"
)

func TestPieSpansSumToFullTurn(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
	}{
		{"categories", []float64{35, 25, 20, 12, 8}},
		{"single", []float64{3}},
		{"with zero", []float64{0, 1, 2}},
		{"with negative", []float64{-5, 1, 1}},
		{"thirds", []float64{1, 1, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := Pie(dataset.FromValues("p", tt.values...), Frame{Width: 200, Height: 200})
			arcs := l.ByKind(KindArc)
			if len(arcs) != len(tt.values) {
				t.Fatalf("got %d arcs, want %d", len(arcs), len(tt.values))
			}
			var sum float64
			prevEnd := 0.0
			for i, a := range arcs {
				if a.Arc.StartAngle != prevEnd {
					t.Errorf("arc %d starts at %v, want %v", i, a.Arc.StartAngle, prevEnd)
				}
				if a.Arc.Span() < 0 {
					t.Errorf("arc %d has negative span %v", i, a.Arc.Span())
				}
				sum += a.Arc.Span()
				prevEnd = a.Arc.EndAngle
			}
			if math.Abs(sum-2*math.Pi) > 1e-9 {
				t.Errorf("sum of spans = %v, want 2π", sum)
			}
		})
	}
}

func TestPieZeroTotal(t *testing.T) {
	ds := dataset.New("zero",
		dataset.Record{Key: "A", Value: 0},
		dataset.Record{Key: "B", Value: 0},
	)
	l := Pie(ds, Frame{Width: 200, Height: 200})

	arcs := l.ByKind(KindArc)
	if len(arcs) != 2 {
		t.Fatalf("got %d arcs, want 2", len(arcs))
	}
	for _, a := range arcs {
		if a.Arc.Span() != 0 {
			t.Errorf("%s span = %v, want 0", a.ID, a.Arc.Span())
		}
		if math.IsNaN(a.Arc.StartAngle) || math.IsNaN(a.Arc.EndAngle) {
			t.Errorf("%s has NaN angles", a.ID)
		}
	}
	if labels := l.ByKind(KindText); len(labels) != 0 {
		t.Errorf("got %d labels for zero-span slices, want 0", len(labels))
	}
}

func TestPieGeometry(t *testing.T) {
	ds := dataset.FromValues("p", 1, 1)
	l := Pie(ds, Frame{Width: 300, Height: 200}, WithPieMargin(10))

	first, _ := l.Find("slice-0")
	if first.Arc.CX != 150 || first.Arc.CY != 100 {
		t.Errorf("center = (%v, %v), want (150, 100)", first.Arc.CX, first.Arc.CY)
	}
	if first.Arc.OuterRadius != 90 {
		t.Errorf("OuterRadius = %v, want 90", first.Arc.OuterRadius)
	}
	if first.Arc.InnerRadius != 0 {
		t.Errorf("InnerRadius = %v, want 0", first.Arc.InnerRadius)
	}

	// The first half-turn covers the right side: its centroid sits at
	// 3 o'clock, half the radius out.
	c := first.Arc.Centroid()
	if !approx(c.X, 150+45) || !approx(c.Y, 100) {
		t.Errorf("Centroid() = %+v, want (195, 100)", c)
	}

	label, ok := l.Find("slice-label-0")
	if !ok {
		t.Fatal("no label for slice 0")
	}
	if !approx(label.Text.X, c.X) || !approx(label.Text.Y, c.Y) {
		t.Errorf("label at (%v, %v), want centroid", label.Text.X, label.Text.Y)
	}
}

func TestPieColorsCycle(t *testing.T) {
	ds := dataset.FromValues("p", 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1)
	l := Pie(ds, Frame{Width: 100, Height: 100})
	first, _ := l.Find("slice-0")
	eleventh, _ := l.Find("slice-10")
	if first.Style.Fill != eleventh.Style.Fill {
		t.Errorf("slice 10 fill = %s, want palette to cycle back to %s", eleventh.Style.Fill, first.Style.Fill)
	}
}

func TestPieTinyFrame(t *testing.T) {
	l := Pie(dataset.FromValues("p", 1), Frame{Width: 10, Height: 10})
	arc, _ := l.Find("slice-0")
	if arc.Arc.OuterRadius != 0 {
		t.Errorf("OuterRadius = %v, want 0", arc.Arc.OuterRadius)
	}
}

func TestPieGradient(t *testing.T) {
	g, err := scale.Gradient("#000000", "#ffffff")
	if err != nil {
		t.Fatal(err)
	}
	l := Pie(dataset.FromValues("p", 1, 1, 1), Frame{Width: 100, Height: 100}, WithGradient(g))
	for id, want := range map[string]string{"slice-0": "#000000", "slice-2": "#ffffff"} {
		p, _ := l.Find(id)
		if p.Style.Fill != want {
			t.Errorf("%s fill = %s, want %s", id, p.Style.Fill, want)
		}
	}
}
