package geom

import (
	"math"
	"strconv"
)

// Kind identifies the shape a primitive describes.
type Kind string

const (
	KindRect   Kind = "rect"
	KindPath   Kind = "path"
	KindArc    Kind = "arc"
	KindCircle Kind = "circle"
	KindText   Kind = "text"
	KindLine   Kind = "line"
)

// Role tells the chart controller how a primitive enters and whether it
// reacts to the pointer.
type Role string

const (
	RoleMark   Role = "mark"   // bars, markers, slices: interactive
	RoleSeries Role = "series" // the line path
	RoleLabel  Role = "label"  // value and slice labels
	RoleAxis   Role = "axis"   // domain lines, ticks and tick labels
)

// Datum references the record a primitive was built from.
type Datum struct {
	Index int
	Key   string
	Value float64
}

// Style holds the presentation attributes of a primitive.
type Style struct {
	Fill        string
	Stroke      string
	StrokeWidth float64
	Opacity     float64
	FontSize    float64
	Anchor      string // text-anchor: start, middle, end
	Baseline    string // dominant-baseline
}

// Circle is a circle by center and radius.
type Circle struct {
	CX, CY, R float64
}

// Segment is a straight line between two points.
type Segment struct {
	X1, Y1, X2, Y2 float64
}

// Text is a positioned string.
type Text struct {
	X, Y    float64
	Content string
}

// Primitive is the descriptor for one renderable shape. Only the geometry
// field matching Kind is meaningful.
type Primitive struct {
	ID    string
	Kind  Kind
	Role  Role
	Datum *Datum

	Rect   Rect
	Path   Path
	Arc    Arc
	Circle Circle
	Line   Segment
	Text   Text

	Style Style
}

// Interactive reports whether the primitive carries a datum and takes
// pointer events.
func (p Primitive) Interactive() bool { return p.Role == RoleMark && p.Datum != nil }

// Skip records a datum left out of a layout.
type Skip struct {
	Index int
	Key   string
	Err   error
}

// Layout is the output of a geometry builder.
type Layout struct {
	Frame      Frame
	Scales     Scales
	Primitives []Primitive
	Skipped    []Skip
}

// Find returns the primitive with the given ID.
func (l Layout) Find(id string) (Primitive, bool) {
	for _, p := range l.Primitives {
		if p.ID == id {
			return p, true
		}
	}
	return Primitive{}, false
}

// ByKind returns the primitives of kind k in layout order.
func (l Layout) ByKind(k Kind) []Primitive {
	var out []Primitive
	for _, p := range l.Primitives {
		if p.Kind == k {
			out = append(out, p)
		}
	}
	return out
}

// ByRole returns the primitives with role r in layout order.
func (l Layout) ByRole(r Role) []Primitive {
	var out []Primitive
	for _, p := range l.Primitives {
		if p.Role == r {
			out = append(out, p)
		}
	}
	return out
}

// FormatValue renders a number compactly: rounded to six decimals, trailing
// zeros dropped.
func FormatValue(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	r := math.Round(v*1e6) / 1e6
	if r == 0 {
		r = 0 // drop negative zero
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
