package interact

import (
	"maps"
	"math"
	"slices"

	"github.com/matzehuels/stackchart/pkg/errors"
	"github.com/matzehuels/stackchart/pkg/geom"
	"github.com/matzehuels/stackchart/pkg/scale"
	"github.com/matzehuels/stackchart/pkg/surface"
	"github.com/matzehuels/stackchart/pkg/transition"
)

// State is the hover state of one interactive primitive.
type State int

const (
	Idle State = iota
	Hovered
)

func (s State) String() string {
	if s == Hovered {
		return "hovered"
	}
	return "idle"
}

// Tooltip is the current tooltip content and position.
type Tooltip struct {
	Content string
	X, Y    float64
	W, H    float64
	Owner   string // the hovered primitive, "" while fading
}

type mark struct {
	datum     geom.Datum
	fill      string
	highlight string
	state     State
}

// Layer tracks hover state for a set of primitives on one surface. Like the
// scheduler it drives, it is not safe for concurrent use; [WithLocker]
// serialises its pointer handlers with the host.
type Layer struct {
	surface surface.Surface
	sched   *transition.Scheduler
	cfg     config

	marks map[string]*mark
	owner string
	tip   *Tooltip
}

// NewLayer creates a layer that fades the tooltip with sched.
func NewLayer(s surface.Surface, sched *transition.Scheduler, opts ...Option) *Layer {
	return &Layer{
		surface: s,
		sched:   sched,
		cfg:     newConfig(opts),
		marks:   make(map[string]*mark),
	}
}

// Attach registers pointer handlers for p. Primitives without a datum are
// ignored.
func (l *Layer) Attach(p geom.Primitive) error {
	if p.Datum == nil {
		return nil
	}
	m := &mark{datum: *p.Datum, fill: p.Style.Fill}
	m.highlight = m.fill
	if c, err := scale.ParseColor(p.Style.Fill); err == nil {
		m.highlight = scale.Darken(c, l.cfg.darken).Hex()
	}

	handlers := map[surface.EventType]surface.Handler{
		surface.PointerEnter: l.guard(func(ev surface.Event) { l.Enter(ev.Node, ev.X, ev.Y) }),
		surface.PointerLeave: l.guard(func(ev surface.Event) { l.Leave(ev.Node) }),
		surface.PointerMove:  l.guard(func(ev surface.Event) { l.Move(ev.Node, ev.X, ev.Y) }),
	}
	for _, t := range slices.Sorted(maps.Keys(handlers)) {
		if err := l.surface.On(p.ID, t, handlers[t]); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "attach %s handler to %q", t, p.ID)
		}
	}
	l.marks[p.ID] = m
	return nil
}

// guard wraps h with the configured locker, if any.
func (l *Layer) guard(h surface.Handler) surface.Handler {
	if l.cfg.lock == nil {
		return h
	}
	return func(ev surface.Event) {
		l.cfg.lock.Lock()
		defer l.cfg.lock.Unlock()
		h(ev)
	}
}

// Detach removes every handler, restores highlighted fills and removes the
// tooltip node.
func (l *Layer) Detach() {
	for _, id := range slices.Sorted(maps.Keys(l.marks)) {
		m := l.marks[id]
		if m.state == Hovered {
			_ = l.surface.SetStyle(id, surface.StyleFill, m.fill)
		}
		for _, t := range []surface.EventType{surface.PointerEnter, surface.PointerLeave, surface.PointerMove} {
			_ = l.surface.Off(id, t)
		}
	}
	clear(l.marks)
	l.owner = ""
	l.releaseTooltip()
}

// Enter moves id to the hovered state and shows the tooltip at the pointer.
func (l *Layer) Enter(id string, x, y float64) {
	m, ok := l.marks[id]
	if !ok {
		return
	}
	if l.owner != "" && l.owner != id {
		l.restore(l.owner)
	}
	m.state = Hovered
	_ = l.surface.SetStyle(id, surface.StyleFill, m.highlight)
	l.owner = id
	l.showTooltip(l.cfg.format(m.datum), x, y)
}

// Move repositions the tooltip while id stays hovered.
func (l *Layer) Move(id string, x, y float64) {
	if l.owner != id || l.tip == nil {
		return
	}
	l.place(x, y)
}

// Leave returns id to idle and fades the tooltip if id owned it.
func (l *Layer) Leave(id string) {
	if _, ok := l.marks[id]; !ok {
		return
	}
	l.restore(id)
	if l.owner != id {
		return
	}
	l.owner = ""
	if l.tip == nil {
		return
	}
	l.tip.Owner = ""

	// Entering any mark cancels this fade, so OnEnd only runs for a tooltip
	// nobody reclaimed.
	l.sched.Animate(TooltipID, map[string]float64{surface.AttrOpacity: 0},
		transition.Duration(l.cfg.fade),
		transition.OnEnd(func() {
			if l.owner == "" {
				l.releaseTooltip()
			}
		}),
	)
}

// State returns the hover state of id.
func (l *Layer) State(id string) State {
	if m, ok := l.marks[id]; ok {
		return m.state
	}
	return Idle
}

// Tooltip returns the current tooltip, if one exists.
func (l *Layer) Tooltip() (Tooltip, bool) {
	if l.tip == nil {
		return Tooltip{}, false
	}
	return *l.tip, true
}

// Len returns the number of attached primitives.
func (l *Layer) Len() int { return len(l.marks) }

func (l *Layer) restore(id string) {
	m, ok := l.marks[id]
	if !ok || m.state == Idle {
		return
	}
	m.state = Idle
	_ = l.surface.SetStyle(id, surface.StyleFill, m.fill)
}

func (l *Layer) showTooltip(content string, x, y float64) {
	l.sched.CancelElement(TooltipID)
	if l.tip == nil || !l.surface.Exists(TooltipID) {
		if err := l.surface.Create(TooltipID, surface.KindTooltip); err != nil && !l.surface.Exists(TooltipID) {
			return
		}
		l.tip = &Tooltip{}
	}
	l.tip.Content = content
	l.tip.Owner = l.owner
	l.tip.W = float64(len([]rune(content)))*tooltipCharWidth + 2*tooltipPad
	l.tip.H = tooltipHeight
	_ = l.surface.SetStyle(TooltipID, surface.StyleText, content)
	_ = l.surface.SetAttr(TooltipID, surface.AttrOpacity, 1)
	l.place(x, y)
}

// place positions the tooltip at the pointer plus offset, kept inside the
// surface.
func (l *Layer) place(x, y float64) {
	w, h := l.surface.Size()
	tx := clamp(x+l.cfg.offsetX, 0, w-l.tip.W)
	ty := clamp(y+l.cfg.offsetY, 0, h-l.tip.H)
	l.tip.X, l.tip.Y = tx, ty
	_ = l.surface.SetAttr(TooltipID, surface.AttrX, tx)
	_ = l.surface.SetAttr(TooltipID, surface.AttrY, ty)
	_ = l.surface.SetAttr(TooltipID, surface.AttrWidth, l.tip.W)
	_ = l.surface.SetAttr(TooltipID, surface.AttrHeight, l.tip.H)
}

func (l *Layer) releaseTooltip() {
	l.sched.CancelElement(TooltipID)
	if l.surface.Exists(TooltipID) {
		_ = l.surface.Remove(TooltipID)
	}
	l.tip = nil
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		return lo
	}
	return math.Max(lo, math.Min(hi, v))
}
