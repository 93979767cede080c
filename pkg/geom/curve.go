package geom

import "math"

// Curve connects an ordered list of vertices into a path.
type Curve interface {
	Name() string
	Build(pts []Point) Path
}

// CurveByName returns the curve registered under name, or false.
func CurveByName(name string) (Curve, bool) {
	switch name {
	case "", "monotone", "monotone-x":
		return MonotoneX{}, true
	case "linear":
		return Linear{}, true
	case "step":
		return Step{}, true
	}
	return nil, false
}

// Linear joins vertices with straight segments.
type Linear struct{}

func (Linear) Name() string { return "linear" }

func (Linear) Build(pts []Point) Path {
	var p Path
	for i, pt := range pts {
		if i == 0 {
			p.moveTo(pt)
			continue
		}
		p.lineTo(pt)
	}
	return p
}

// Step holds each value until halfway to the next vertex.
type Step struct{}

func (Step) Name() string { return "step" }

func (Step) Build(pts []Point) Path {
	var p Path
	for i, pt := range pts {
		if i == 0 {
			p.moveTo(pt)
			continue
		}
		prev := pts[i-1]
		mid := (prev.X + pt.X) / 2
		p.lineTo(Point{X: mid, Y: prev.Y})
		p.lineTo(Point{X: mid, Y: pt.Y})
		p.lineTo(pt)
	}
	return p
}

// MonotoneX is a cubic Hermite spline that preserves monotonicity in y,
// assuming vertices are sorted by x. Tangents follow Steffen's method, so
// the curve never overshoots between two consecutive vertices.
type MonotoneX struct{}

func (MonotoneX) Name() string { return "monotone-x" }

func (MonotoneX) Build(pts []Point) Path {
	if len(pts) < 3 {
		return Linear{}.Build(pts)
	}

	n := len(pts)
	t := make([]float64, n)
	for i := 1; i < n-1; i++ {
		t[i] = slope3(pts[i-1], pts[i], pts[i+1])
	}
	t[0] = slope2(pts[0], pts[1], t[1])
	t[n-1] = slope2(pts[n-2], pts[n-1], t[n-2])

	var p Path
	p.moveTo(pts[0])
	for i := 0; i < n-1; i++ {
		a, b := pts[i], pts[i+1]
		dx := (b.X - a.X) / 3
		p.curveTo(
			Point{X: a.X + dx, Y: a.Y + dx*t[i]},
			Point{X: b.X - dx, Y: b.Y - dx*t[i+1]},
			b,
		)
	}
	return p
}

// slope3 returns the tangent at b given its neighbours a and c.
func slope3(a, b, c Point) float64 {
	h0, h1 := b.X-a.X, c.X-b.X
	if h0 == 0 || h1 == 0 {
		return 0
	}
	s0, s1 := (b.Y-a.Y)/h0, (c.Y-b.Y)/h1
	p := (s0*h1 + s1*h0) / (h0 + h1)
	v := (sign(s0) + sign(s1)) * math.Min(math.Min(math.Abs(s0), math.Abs(s1)), 0.5*math.Abs(p))
	if math.IsNaN(v) {
		return 0
	}
	return v
}

// slope2 returns the one-sided tangent at an end vertex from the tangent t
// at its neighbour.
func slope2(a, b Point, t float64) float64 {
	h := b.X - a.X
	if h == 0 {
		return t
	}
	return (3*(b.Y-a.Y)/h - t) / 2
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
