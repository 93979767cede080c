package geom

import (
	"math"
	"strings"
	"testing"
)

func TestPathString(t *testing.T) {
	var p Path
	p.moveTo(Point{0, 0})
	p.lineTo(Point{10.5, 20})
	p.curveTo(Point{1, 2}, Point{3, 4}, Point{5.678, 6})
	p.closePath()

	want := "M0,0L10.5,20C1,2 3,4 5.68,6Z"
	if got := p.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestPathLength(t *testing.T) {
	tests := []struct {
		name string
		path func() Path
		want float64
	}{
		{"empty", func() Path { return nil }, 0},
		{"move only", func() Path {
			var p Path
			p.moveTo(Point{5, 5})
			return p
		}, 0},
		{"triangle", func() Path {
			var p Path
			p.moveTo(Point{0, 0})
			p.lineTo(Point{3, 0})
			p.lineTo(Point{3, 4})
			p.closePath()
			return p
		}, 12},
		{"straight cubic", func() Path {
			var p Path
			p.moveTo(Point{0, 0})
			p.curveTo(Point{10, 0}, Point{20, 0}, Point{30, 0})
			return p
		}, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.path().Length(); math.Abs(got-tt.want) > 1e-6 {
				t.Errorf("Length() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPathFlatten(t *testing.T) {
	var p Path
	p.moveTo(Point{0, 0})
	p.lineTo(Point{1, 0})
	p.moveTo(Point{5, 5})
	p.curveTo(Point{6, 5}, Point{7, 5}, Point{8, 5})

	lines := p.Flatten()
	if len(lines) != 2 {
		t.Fatalf("got %d polylines, want 2", len(lines))
	}
	if len(lines[0]) != 2 {
		t.Errorf("first polyline has %d points, want 2", len(lines[0]))
	}
	last := lines[1][len(lines[1])-1]
	if !approx(last.X, 8) || !approx(last.Y, 5) {
		t.Errorf("last point = %+v, want (8, 5)", last)
	}
}

func TestArcPath(t *testing.T) {
	tests := []struct {
		name   string
		arc    Arc
		prefix string
		arcs   int
	}{
		{"zero span", Arc{CX: 50, CY: 50, OuterRadius: 40}, "M50,50", 0},
		{"quarter", Arc{CX: 50, CY: 50, EndAngle: math.Pi / 2, OuterRadius: 40}, "M50,10A40,40 0 0 1 90,50", 1},
		{"full", Arc{CX: 50, CY: 50, EndAngle: 2 * math.Pi, OuterRadius: 40}, "M50,10A40,40 0 1 1", 2},
		{"donut", Arc{CX: 0, CY: 0, EndAngle: math.Pi, InnerRadius: 10, OuterRadius: 20}, "M0,-20", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := tt.arc.Path()
			if !strings.HasPrefix(d, tt.prefix) {
				t.Errorf("Path() = %q, want prefix %q", d, tt.prefix)
			}
			if got := strings.Count(d, "A"); got != tt.arcs {
				t.Errorf("Path() = %q has %d arc commands, want %d", d, got, tt.arcs)
			}
		})
	}
}

func TestArcContains(t *testing.T) {
	right := Arc{CX: 0, CY: 0, StartAngle: 0, EndAngle: math.Pi, OuterRadius: 10}
	tests := []struct {
		x, y float64
		want bool
	}{
		{5, 0, true},
		{-5, 0, false},
		{0, -5, true},
		{20, 0, false},
	}
	for _, tt := range tests {
		if got := right.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
	if (Arc{OuterRadius: 10}).Contains(1, 1) {
		t.Error("zero-span arc should contain nothing")
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{30, "30"},
		{0.1 + 0.2, "0.3"},
		{-2.5, "-2.5"},
		{math.Copysign(0, -1), "0"},
		{1e6, "1000000"},
	}
	for _, tt := range tests {
		if got := FormatValue(tt.in); got != tt.want {
			t.Errorf("FormatValue(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
