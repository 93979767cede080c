package geom

import (
	"fmt"
	"math"
)

// Arc is an annular sector. Angles are in radians, measured clockwise from
// 12 o'clock.
type Arc struct {
	CX, CY      float64
	StartAngle  float64
	EndAngle    float64
	InnerRadius float64
	OuterRadius float64
}

// Span returns the angular extent of the arc.
func (a Arc) Span() float64 { return a.EndAngle - a.StartAngle }

// Centroid returns the point on the angle bisector at mid radius.
func (a Arc) Centroid() Point {
	return polar(a.CX, a.CY, (a.InnerRadius+a.OuterRadius)/2, (a.StartAngle+a.EndAngle)/2)
}

// Contains reports whether (x, y) falls inside the arc.
func (a Arc) Contains(x, y float64) bool {
	if a.Span() <= 0 {
		return false
	}
	dx, dy := x-a.CX, y-a.CY
	r := math.Hypot(dx, dy)
	if r < a.InnerRadius || r > a.OuterRadius {
		return false
	}
	if a.Span() >= 2*math.Pi {
		return true
	}
	ang := math.Atan2(dx, -dy)
	if ang < 0 {
		ang += 2 * math.Pi
	}
	start := math.Mod(a.StartAngle, 2*math.Pi)
	if start < 0 {
		start += 2 * math.Pi
	}
	rel := ang - start
	if rel < 0 {
		rel += 2 * math.Pi
	}
	return rel <= a.Span()
}

// Scaled returns the arc with both radii multiplied by k.
func (a Arc) Scaled(k float64) Arc {
	a.InnerRadius *= k
	a.OuterRadius *= k
	return a
}

// Path returns the arc outline in SVG path data syntax. A zero-span or
// zero-radius arc yields a bare move-to at the center.
func (a Arc) Path() string {
	span := a.Span()
	if span <= 0 || a.OuterRadius <= 0 {
		return fmt.Sprintf("M%s,%s", formatCoord(a.CX), formatCoord(a.CY))
	}
	if span >= 2*math.Pi-1e-9 {
		return a.ringPath()
	}

	large := 0
	if span > math.Pi {
		large = 1
	}
	s0 := polar(a.CX, a.CY, a.OuterRadius, a.StartAngle)
	s1 := polar(a.CX, a.CY, a.OuterRadius, a.EndAngle)
	d := fmt.Sprintf("M%s,%sA%s,%s 0 %d 1 %s,%s",
		formatCoord(s0.X), formatCoord(s0.Y),
		formatCoord(a.OuterRadius), formatCoord(a.OuterRadius), large,
		formatCoord(s1.X), formatCoord(s1.Y))
	if a.InnerRadius <= 0 {
		return d + fmt.Sprintf("L%s,%sZ", formatCoord(a.CX), formatCoord(a.CY))
	}
	i1 := polar(a.CX, a.CY, a.InnerRadius, a.EndAngle)
	i0 := polar(a.CX, a.CY, a.InnerRadius, a.StartAngle)
	return d + fmt.Sprintf("L%s,%sA%s,%s 0 %d 0 %s,%sZ",
		formatCoord(i1.X), formatCoord(i1.Y),
		formatCoord(a.InnerRadius), formatCoord(a.InnerRadius), large,
		formatCoord(i0.X), formatCoord(i0.Y))
}

// ringPath draws a full circle (or ring) as two half arcs.
func (a Arc) ringPath() string {
	ring := func(r float64, sweep int) string {
		top := polar(a.CX, a.CY, r, 0)
		bottom := polar(a.CX, a.CY, r, math.Pi)
		rs := formatCoord(r)
		return fmt.Sprintf("M%s,%sA%s,%s 0 1 %d %s,%sA%s,%s 0 1 %d %s,%sZ",
			formatCoord(top.X), formatCoord(top.Y),
			rs, rs, sweep, formatCoord(bottom.X), formatCoord(bottom.Y),
			rs, rs, sweep, formatCoord(top.X), formatCoord(top.Y))
	}
	d := ring(a.OuterRadius, 1)
	if a.InnerRadius > 0 {
		d += ring(a.InnerRadius, 0)
	}
	return d
}

// polar converts a clock angle and radius around (cx, cy) to a point.
func polar(cx, cy, r, angle float64) Point {
	return Point{X: cx + r*math.Sin(angle), Y: cy - r*math.Cos(angle)}
}
