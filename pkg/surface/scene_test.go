package surface

import (
	"math"
	"testing"

	"github.com/matzehuels/stackchart/pkg/errors"
	"github.com/matzehuels/stackchart/pkg/geom"
)

func TestSceneNodeLifecycle(t *testing.T) {
	s := NewScene(100, 100)
	if err := s.Create("a", geom.KindRect); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := s.Create("a", geom.KindRect); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("duplicate Create error = %v, want INVALID_INPUT", err)
	}

	if err := s.SetAttr("a", AttrWidth, 10); err != nil {
		t.Fatalf("SetAttr: %v", err)
	}
	if v, ok := s.Attr("a", AttrWidth); !ok || v != 10 {
		t.Errorf("Attr(width) = %v, %v, want 10, true", v, ok)
	}
	if _, ok := s.Attr("a", AttrHeight); ok {
		t.Error("Attr(height) should be unset")
	}
	if err := s.SetStyle("a", StyleFill, "red"); err != nil {
		t.Fatalf("SetStyle: %v", err)
	}
	if v, _ := s.Style("a", StyleFill); v != "red" {
		t.Errorf("Style(fill) = %q, want red", v)
	}

	if err := s.Remove("a"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if s.Exists("a") {
		t.Error("node still exists after Remove")
	}

	tests := []struct {
		name string
		err  error
	}{
		{"Remove", s.Remove("a")},
		{"SetAttr", s.SetAttr("a", AttrX, 1)},
		{"SetStyle", s.SetStyle("a", StyleFill, "x")},
		{"SetPath", s.SetPath("a", nil)},
		{"On", s.On("a", PointerEnter, func(Event) {})},
		{"Off", s.Off("a", PointerEnter)},
	}
	for _, tt := range tests {
		if !errors.Is(tt.err, errors.ErrCodeNotFound) {
			t.Errorf("%s on missing node error = %v, want NOT_FOUND", tt.name, tt.err)
		}
	}
}

func TestSceneNodesInPaintOrder(t *testing.T) {
	s := NewScene(10, 10)
	for _, id := range []string{"c", "a", "b"} {
		s.Create(id, geom.KindText)
	}
	s.Remove("a")

	nodes := s.Nodes()
	if len(nodes) != 2 || nodes[0].ID != "c" || nodes[1].ID != "b" {
		t.Errorf("Nodes() = %v, want [c b]", nodes)
	}

	// Snapshots are copies.
	nodes[0].Attrs["x"] = 99
	if _, ok := s.Attr("c", "x"); ok {
		t.Error("mutating a snapshot changed the scene")
	}
}

func TestScenePathLength(t *testing.T) {
	s := NewScene(10, 10)
	s.Create("p", geom.KindPath)
	path := geom.Linear{}.Build([]geom.Point{{X: 0, Y: 0}, {X: 3, Y: 4}})
	s.SetPath("p", path)

	if l, err := s.PathLength("p"); err != nil || l != 5 {
		t.Errorf("PathLength() = %v, %v, want 5", l, err)
	}
	if _, err := s.PathLength("missing"); !errors.Is(err, errors.ErrCodeNotFound) {
		t.Errorf("PathLength(missing) error = %v, want NOT_FOUND", err)
	}
}

func TestSceneHitTest(t *testing.T) {
	s := NewScene(200, 200)
	rect := func(id string, x, y, w, h float64) {
		s.Create(id, geom.KindRect)
		s.SetAttr(id, AttrX, x)
		s.SetAttr(id, AttrY, y)
		s.SetAttr(id, AttrWidth, w)
		s.SetAttr(id, AttrHeight, h)
		s.On(id, PointerEnter, func(Event) {})
	}
	rect("below", 0, 0, 100, 100)
	rect("above", 50, 50, 100, 100)
	s.Create("inert", geom.KindRect)
	s.SetAttr("inert", AttrWidth, 200)
	s.SetAttr("inert", AttrHeight, 200)

	s.Create("slice", geom.KindArc)
	s.SetAttr("slice", AttrCX, 150)
	s.SetAttr("slice", AttrCY, 20)
	s.SetAttr("slice", AttrEndAngle, math.Pi)
	s.SetAttr("slice", AttrOuterRadius, 15)
	s.On("slice", PointerEnter, func(Event) {})

	tests := []struct {
		x, y float64
		want string
	}{
		{10, 10, "below"},
		{75, 75, "above"},
		{190, 190, ""},
		{160, 20, "slice"},
		{140, 20, ""},
	}
	for _, tt := range tests {
		got, _ := s.HitTest(tt.x, tt.y)
		if got != tt.want {
			t.Errorf("HitTest(%v, %v) = %q, want %q", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestSceneArcScale(t *testing.T) {
	s := NewScene(100, 100)
	s.Create("s", geom.KindArc)
	s.SetAttr("s", AttrEndAngle, 2*math.Pi)
	s.SetAttr("s", AttrOuterRadius, 10)
	s.SetAttr("s", AttrScale, 0)
	s.On("s", PointerEnter, func(Event) {})

	if _, ok := s.HitTest(1, 1); ok {
		t.Error("arc scaled to 0 should not be hit")
	}
	s.SetAttr("s", AttrScale, 1)
	if _, ok := s.HitTest(1, 1); !ok {
		t.Error("arc at full scale should be hit")
	}
}

func TestScenePointerEvents(t *testing.T) {
	s := NewScene(100, 100)
	var events []Event
	record := func(ev Event) { events = append(events, ev) }
	for i, id := range []string{"left", "right"} {
		s.Create(id, geom.KindRect)
		s.SetAttr(id, AttrX, float64(i*50))
		s.SetAttr(id, AttrWidth, 50)
		s.SetAttr(id, AttrHeight, 100)
		s.On(id, PointerEnter, record)
		s.On(id, PointerLeave, record)
		s.On(id, PointerMove, record)
	}

	s.Pointer(10, 10)
	s.Pointer(20, 10)
	s.Pointer(60, 10)
	s.PointerOut()

	want := []struct {
		typ  EventType
		node string
	}{
		{PointerEnter, "left"},
		{PointerMove, "left"},
		{PointerLeave, "left"},
		{PointerEnter, "right"},
		{PointerLeave, "right"},
	}
	if len(events) != len(want) {
		t.Fatalf("got %d events, want %d: %+v", len(events), len(want), events)
	}
	for i, w := range want {
		if events[i].Type != w.typ || events[i].Node != w.node {
			t.Errorf("event %d = %s %s, want %s %s", i, events[i].Type, events[i].Node, w.typ, w.node)
		}
	}
	if s.Hovered() != "" {
		t.Errorf("Hovered() = %q after PointerOut", s.Hovered())
	}
}

func TestSceneHandlerCount(t *testing.T) {
	s := NewScene(10, 10)
	s.Create("a", geom.KindRect)
	s.On("a", PointerEnter, func(Event) {})
	s.On("a", PointerEnter, func(Event) {})
	s.On("a", PointerLeave, func(Event) {})
	if got := s.HandlerCount(); got != 2 {
		t.Errorf("HandlerCount() = %d, want 2", got)
	}
	s.Off("a", PointerEnter)
	s.Off("a", PointerMove)
	if got := s.HandlerCount(); got != 1 {
		t.Errorf("HandlerCount() = %d, want 1", got)
	}
}

func TestHandlerMayCallBack(t *testing.T) {
	s := NewScene(10, 10)
	s.Create("a", geom.KindRect)
	s.SetAttr("a", AttrWidth, 10)
	s.SetAttr("a", AttrHeight, 10)
	s.On("a", PointerEnter, func(ev Event) {
		s.SetStyle(ev.Node, StyleFill, "black")
	})
	s.Pointer(5, 5)
	if v, _ := s.Style("a", StyleFill); v != "black" {
		t.Errorf("fill = %q, want black", v)
	}
}
