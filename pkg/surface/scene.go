package surface

import (
	"maps"
	"math"
	"slices"
	"sync"

	"github.com/matzehuels/stackchart/pkg/errors"
	"github.com/matzehuels/stackchart/pkg/geom"
)

// Node is a snapshot of one scene node.
type Node struct {
	ID     string
	Kind   geom.Kind
	Attrs  map[string]float64
	Styles map[string]string
	Path   geom.Path
}

// Attr returns the named attribute, or def when it is unset.
func (n Node) Attr(name string, def float64) float64 {
	if v, ok := n.Attrs[name]; ok {
		return v
	}
	return def
}

// Style returns the named style, or "".
func (n Node) Style(name string) string { return n.Styles[name] }

// Opacity returns the node opacity, 1 when unset.
func (n Node) Opacity() float64 { return n.Attr(AttrOpacity, 1) }

// Arc returns the arc geometry of an arc node, with its scale applied.
func (n Node) Arc() geom.Arc {
	a := geom.Arc{
		CX:          n.Attr(AttrCX, 0),
		CY:          n.Attr(AttrCY, 0),
		StartAngle:  n.Attr(AttrStartAngle, 0),
		EndAngle:    n.Attr(AttrEndAngle, 0),
		InnerRadius: n.Attr(AttrInnerRadius, 0),
		OuterRadius: n.Attr(AttrOuterRadius, 0),
	}
	return a.Scaled(n.Attr(AttrScale, 1))
}

// Rect returns the rectangle of a rect node.
func (n Node) Rect() geom.Rect {
	return geom.Rect{
		X: n.Attr(AttrX, 0),
		Y: n.Attr(AttrY, 0),
		W: n.Attr(AttrWidth, 0),
		H: n.Attr(AttrHeight, 0),
	}
}

// Contains reports whether (x, y) hits the node's geometry. Only rects,
// circles and arcs are hit-testable.
func (n Node) Contains(x, y float64) bool {
	switch n.Kind {
	case geom.KindRect:
		return n.Rect().Contains(x, y)
	case geom.KindCircle:
		return math.Hypot(x-n.Attr(AttrCX, 0), y-n.Attr(AttrCY, 0)) <= n.Attr(AttrR, 0)
	case geom.KindArc:
		return n.Arc().Contains(x, y)
	}
	return false
}

type node struct {
	Node
	handlers map[EventType]Handler
}

// Scene is an in-memory [Surface]. It is safe for concurrent use; handlers
// run without the scene lock held, so they may call back into the scene.
type Scene struct {
	mu      sync.RWMutex
	width   float64
	height  float64
	nodes   map[string]*node
	order   []string
	hovered string
}

var _ Surface = (*Scene)(nil)

// NewScene creates an empty scene of the given size.
func NewScene(w, h float64) *Scene {
	return &Scene{width: w, height: h, nodes: make(map[string]*node)}
}

// Size returns the scene dimensions.
func (s *Scene) Size() (float64, float64) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.width, s.height
}

// Resize changes the scene dimensions. Nodes are kept as they are.
func (s *Scene) Resize(w, h float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.width, s.height = w, h
}

// Create adds a node on top of all existing nodes.
func (s *Scene) Create(id string, kind geom.Kind) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.nodes[id]; ok {
		return errors.New(errors.ErrCodeInvalidInput, "node %q already exists", id)
	}
	s.nodes[id] = &node{
		Node: Node{
			ID:     id,
			Kind:   kind,
			Attrs:  make(map[string]float64),
			Styles: make(map[string]string),
		},
	}
	s.order = append(s.order, id)
	return nil
}

// Remove deletes a node and its handlers.
func (s *Scene) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.nodes[id]; !ok {
		return notFound(id)
	}
	delete(s.nodes, id)
	s.order = slices.DeleteFunc(s.order, func(o string) bool { return o == id })
	if s.hovered == id {
		s.hovered = ""
	}
	return nil
}

// Exists reports whether a node exists.
func (s *Scene) Exists(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.nodes[id]
	return ok
}

// SetAttr sets a numeric attribute.
func (s *Scene) SetAttr(id, name string, v float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, ok := s.nodes[id]
	if !ok {
		return notFound(id)
	}
	n.Attrs[name] = v
	return nil
}

// Attr returns a numeric attribute.
func (s *Scene) Attr(id, name string) (float64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n, ok := s.nodes[id]
	if !ok {
		return 0, false
	}
	v, ok := n.Attrs[name]
	return v, ok
}

// SetStyle sets a string style.
func (s *Scene) SetStyle(id, name, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, ok := s.nodes[id]
	if !ok {
		return notFound(id)
	}
	n.Styles[name] = value
	return nil
}

// Style returns a string style.
func (s *Scene) Style(id, name string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n, ok := s.nodes[id]
	if !ok {
		return "", false
	}
	v, ok := n.Styles[name]
	return v, ok
}

// SetPath replaces a node's path geometry.
func (s *Scene) SetPath(id string, p geom.Path) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, ok := s.nodes[id]
	if !ok {
		return notFound(id)
	}
	n.Path = slices.Clone(p)
	return nil
}

// PathLength returns the length of a node's path.
func (s *Scene) PathLength(id string) (float64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n, ok := s.nodes[id]
	if !ok {
		return 0, notFound(id)
	}
	return n.Path.Length(), nil
}

// On attaches a handler, replacing any previous handler for the same event.
func (s *Scene) On(id string, t EventType, h Handler) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, ok := s.nodes[id]
	if !ok {
		return notFound(id)
	}
	if n.handlers == nil {
		n.handlers = make(map[EventType]Handler)
	}
	n.handlers[t] = h
	return nil
}

// Off detaches a handler. Detaching an absent handler is a no-op.
func (s *Scene) Off(id string, t EventType) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, ok := s.nodes[id]
	if !ok {
		return notFound(id)
	}
	delete(n.handlers, t)
	return nil
}

// HandlerCount returns the number of attached handlers across all nodes.
func (s *Scene) HandlerCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var count int
	for _, n := range s.nodes {
		count += len(n.handlers)
	}
	return count
}

// Len returns the number of nodes.
func (s *Scene) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}

// Node returns a snapshot of one node.
func (s *Scene) Node(id string) (Node, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n, ok := s.nodes[id]
	if !ok {
		return Node{}, false
	}
	return n.snapshot(), true
}

// Nodes returns snapshots of all nodes in paint order.
func (s *Scene) Nodes() []Node {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Node, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.nodes[id].snapshot())
	}
	return out
}

// HitTest returns the topmost node with pointer handlers whose geometry
// contains (x, y).
func (s *Scene) HitTest(x, y float64) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.hitTest(x, y)
}

func (s *Scene) hitTest(x, y float64) (string, bool) {
	for i := len(s.order) - 1; i >= 0; i-- {
		n := s.nodes[s.order[i]]
		if len(n.handlers) == 0 {
			continue
		}
		if n.Contains(x, y) {
			return n.ID, true
		}
	}
	return "", false
}

// Dispatch delivers ev to the handler registered on ev.Node, if any.
func (s *Scene) Dispatch(ev Event) {
	s.mu.RLock()
	var h Handler
	if n, ok := s.nodes[ev.Node]; ok {
		h = n.handlers[ev.Type]
	}
	s.mu.RUnlock()
	if h != nil {
		h(ev)
	}
}

// Pointer moves the pointer to (x, y), sending leave to the node it left,
// enter to the node it entered, or move to the node it stays over.
func (s *Scene) Pointer(x, y float64) {
	s.mu.Lock()
	prev := s.hovered
	if prev != "" {
		if _, ok := s.nodes[prev]; !ok {
			prev = ""
		}
	}
	next, _ := s.hitTest(x, y)
	s.hovered = next
	s.mu.Unlock()

	if prev == next {
		if next != "" {
			s.Dispatch(Event{Type: PointerMove, Node: next, X: x, Y: y})
		}
		return
	}
	if prev != "" {
		s.Dispatch(Event{Type: PointerLeave, Node: prev, X: x, Y: y})
	}
	if next != "" {
		s.Dispatch(Event{Type: PointerEnter, Node: next, X: x, Y: y})
	}
}

// PointerOut moves the pointer off the scene.
func (s *Scene) PointerOut() {
	s.mu.Lock()
	prev := s.hovered
	s.hovered = ""
	s.mu.Unlock()
	if prev != "" {
		s.Dispatch(Event{Type: PointerLeave, Node: prev})
	}
}

// Hovered returns the node under the pointer, or "".
func (s *Scene) Hovered() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.hovered
}

func (n *node) snapshot() Node {
	return Node{
		ID:     n.ID,
		Kind:   n.Kind,
		Attrs:  maps.Clone(n.Attrs),
		Styles: maps.Clone(n.Styles),
		Path:   slices.Clone(n.Path),
	}
}

func notFound(id string) error {
	return errors.New(errors.ErrCodeNotFound, "node %q not found", id)
}
