package geom

import (
	"math"
	"strconv"
	"strings"
)

// Point is a position in surface coordinates.
type Point struct {
	X, Y float64
}

// Op is a path command.
type Op byte

const (
	MoveTo  Op = 'M'
	LineTo  Op = 'L'
	CurveTo Op = 'C' // cubic Bézier: two control points, then the end point
	Close   Op = 'Z'
)

// Command is one path instruction. Points holds 1 point for MoveTo and
// LineTo, 3 for CurveTo and none for Close.
type Command struct {
	Op     Op
	Points []Point
}

// Path is a sequence of drawing commands.
type Path []Command

// curveSteps is the number of chords used to measure a cubic segment.
const curveSteps = 32

func (p *Path) moveTo(pt Point) { *p = append(*p, Command{Op: MoveTo, Points: []Point{pt}}) }
func (p *Path) lineTo(pt Point) { *p = append(*p, Command{Op: LineTo, Points: []Point{pt}}) }
func (p *Path) closePath()      { *p = append(*p, Command{Op: Close}) }
func (p *Path) curveTo(c1, c2, end Point) {
	*p = append(*p, Command{Op: CurveTo, Points: []Point{c1, c2, end}})
}

// String returns the path in SVG path data syntax.
func (p Path) String() string {
	var b strings.Builder
	for _, c := range p {
		b.WriteByte(byte(c.Op))
		for i, pt := range c.Points {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(formatCoord(pt.X))
			b.WriteByte(',')
			b.WriteString(formatCoord(pt.Y))
		}
	}
	return b.String()
}

// Length returns the total drawn length of the path. Cubic segments are
// measured by flattening.
func (p Path) Length() float64 {
	var total float64
	var cur, start Point
	for _, c := range p {
		switch c.Op {
		case MoveTo:
			cur, start = c.Points[0], c.Points[0]
		case LineTo:
			total += dist(cur, c.Points[0])
			cur = c.Points[0]
		case CurveTo:
			prev := cur
			for i := 1; i <= curveSteps; i++ {
				pt := cubicAt(cur, c.Points[0], c.Points[1], c.Points[2], float64(i)/curveSteps)
				total += dist(prev, pt)
				prev = pt
			}
			cur = c.Points[2]
		case Close:
			total += dist(cur, start)
			cur = start
		}
	}
	return total
}

// Flatten returns the path as polylines, one per subpath, with cubic
// segments approximated by straight chords.
func (p Path) Flatten() [][]Point {
	var out [][]Point
	var cur []Point
	for _, c := range p {
		switch c.Op {
		case MoveTo:
			if len(cur) > 0 {
				out = append(out, cur)
			}
			cur = []Point{c.Points[0]}
		case LineTo:
			cur = append(cur, c.Points[0])
		case CurveTo:
			if len(cur) == 0 {
				continue
			}
			p0 := cur[len(cur)-1]
			for i := 1; i <= curveSteps; i++ {
				cur = append(cur, cubicAt(p0, c.Points[0], c.Points[1], c.Points[2], float64(i)/curveSteps))
			}
		case Close:
			if len(cur) > 0 {
				cur = append(cur, cur[0])
			}
		}
	}
	if len(cur) > 0 {
		out = append(out, cur)
	}
	return out
}

func cubicAt(p0, p1, p2, p3 Point, t float64) Point {
	u := 1 - t
	a, b, c, d := u*u*u, 3*u*u*t, 3*u*t*t, t*t*t
	return Point{
		X: a*p0.X + b*p1.X + c*p2.X + d*p3.X,
		Y: a*p0.Y + b*p1.Y + c*p2.Y + d*p3.Y,
	}
}

func dist(a, b Point) float64 { return math.Hypot(b.X-a.X, b.Y-a.Y) }

func formatCoord(v float64) string {
	r := math.Round(v*100) / 100
	if r == 0 {
		r = 0
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}
