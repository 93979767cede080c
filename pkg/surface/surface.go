package surface

import "github.com/matzehuels/stackchart/pkg/geom"

// EventType names a pointer event.
type EventType string

const (
	PointerEnter EventType = "pointerenter"
	PointerLeave EventType = "pointerleave"
	PointerMove  EventType = "pointermove"
)

// Event is a pointer event delivered to a node handler. X and Y are in
// surface coordinates.
type Event struct {
	Type EventType
	Node string
	X, Y float64
}

// Handler reacts to a pointer event.
type Handler func(Event)

// Surface is the drawing capability the chart engine renders into.
//
// Node operations on an unknown ID return a NOT_FOUND error. Creating an
// existing ID returns INVALID_INPUT.
type Surface interface {
	// Size returns the surface width and height.
	Size() (w, h float64)

	Create(id string, kind geom.Kind) error
	Remove(id string) error
	Exists(id string) bool

	SetAttr(id, name string, v float64) error
	Attr(id, name string) (float64, bool)
	SetStyle(id, name, value string) error
	Style(id, name string) (string, bool)

	// SetPath replaces the geometry of a path node.
	SetPath(id string, p geom.Path) error
	// PathLength returns the total length of a path node.
	PathLength(id string) (float64, error)

	On(id string, t EventType, h Handler) error
	Off(id string, t EventType) error
}
