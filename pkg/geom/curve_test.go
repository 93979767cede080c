package geom

import (
	"math"
	"testing"
)

func TestMonotoneXNoOvershoot(t *testing.T) {
	tests := []struct {
		name string
		ys   []float64
	}{
		{"increasing", []float64{0, 1, 5, 6, 20}},
		{"peak", []float64{0, 10, 0}},
		{"zigzag", []float64{3, 9, 1, 7, 2, 8}},
		{"plateau", []float64{4, 4, 4, 9}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pts := make([]Point, len(tt.ys))
			for i, y := range tt.ys {
				pts[i] = Point{X: float64(i * 10), Y: y}
			}
			p := MonotoneX{}.Build(pts)
			if len(p) != len(pts) {
				t.Fatalf("got %d commands, want %d", len(p), len(pts))
			}
			for i, c := range p[1:] {
				lo := math.Min(pts[i].Y, pts[i+1].Y)
				hi := math.Max(pts[i].Y, pts[i+1].Y)
				for _, cp := range c.Points[:2] {
					if cp.Y < lo-1e-9 || cp.Y > hi+1e-9 {
						t.Errorf("segment %d control y %v outside [%v, %v]", i, cp.Y, lo, hi)
					}
				}
				if c.Points[2] != pts[i+1] {
					t.Errorf("segment %d ends at %+v, want %+v", i, c.Points[2], pts[i+1])
				}
			}
		})
	}
}

func TestMonotoneXShortInputs(t *testing.T) {
	if p := (MonotoneX{}).Build(nil); len(p) != 0 {
		t.Errorf("Build(nil) = %v, want empty", p)
	}
	two := MonotoneX{}.Build([]Point{{0, 0}, {1, 1}})
	if len(two) != 2 || two[1].Op != LineTo {
		t.Errorf("Build(2 points) = %v, want M then L", two)
	}
}

func TestStep(t *testing.T) {
	p := Step{}.Build([]Point{{0, 0}, {10, 5}})
	want := "M0,0L5,0L5,5L10,5"
	if got := p.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestCurveByName(t *testing.T) {
	for _, name := range []string{"", "monotone", "linear", "step"} {
		if _, ok := CurveByName(name); !ok {
			t.Errorf("CurveByName(%q) not found", name)
		}
	}
	if _, ok := CurveByName("basis"); ok {
		t.Error("CurveByName(basis) should fail")
	}
}
