package transition

import (
	"io"
	"maps"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/stackchart/pkg/observability"
)

// Target is the attribute store transitions write to.
type Target interface {
	Attr(id, name string) (float64, bool)
	SetAttr(id, name string, v float64) error
}

// Transition interpolates one attribute of one element.
type Transition struct {
	ID       string
	Attr     string
	From     float64
	To       float64
	Start    time.Time
	Delay    time.Duration
	Duration time.Duration
	Ease     Easing

	group *Group
}

// valueAt returns the attribute value at now and whether the transition
// has finished. pending is true while the delay has not elapsed.
func (t *Transition) valueAt(now time.Time) (v float64, pending, done bool) {
	elapsed := now.Sub(t.Start) - t.Delay
	if elapsed < 0 {
		return 0, true, false
	}
	if elapsed >= t.Duration {
		return t.To, false, true
	}
	p := t.Ease(float64(elapsed) / float64(t.Duration))
	return t.From + (t.To-t.From)*p, false, false
}

// Group tracks the transitions scheduled by one Animate call.
type Group struct {
	remaining int
	cancelled bool
	ended     bool
	onEnd     func()
}

// Done reports whether every attribute of the group completed.
func (g *Group) Done() bool { return g.ended }

// Cancelled reports whether any attribute of the group was cancelled.
func (g *Group) Cancelled() bool { return g.cancelled }

type key struct{ id, attr string }

// Scheduler runs transitions against a target on a frame clock. It is not
// safe for concurrent use; the chart controller serialises access.
type Scheduler struct {
	target Target
	now    time.Time
	logger *log.Logger

	running map[key]*Transition
	order   []key
	settled []*Group
}

// SchedulerOption configures a Scheduler.
type SchedulerOption func(*Scheduler)

// WithLogger sets the logger used for debug output.
func WithLogger(l *log.Logger) SchedulerOption {
	return func(s *Scheduler) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewScheduler creates a scheduler whose clock starts at start.
func NewScheduler(target Target, start time.Time, opts ...SchedulerOption) *Scheduler {
	s := &Scheduler{
		target:  target,
		now:     start,
		logger:  log.New(io.Discard),
		running: make(map[key]*Transition),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Now returns the time of the last frame.
func (s *Scheduler) Now() time.Time { return s.now }

// Animate schedules one transition per entry of to, starting at the last
// frame time from each attribute's current value. An attribute with no
// current value starts at its end value.
func (s *Scheduler) Animate(id string, to map[string]float64, opts ...Option) *Group {
	o := newOptions(opts)
	g := &Group{onEnd: o.onEnd}

	for _, attr := range slices.Sorted(maps.Keys(to)) {
		k := key{id, attr}
		old, replaced := s.running[k]
		if replaced {
			s.drop(k, old)
			observability.Transition().OnReplaced(id, attr)
		}

		from, ok := s.target.Attr(id, attr)
		if !ok {
			from = to[attr]
		}
		s.running[k] = &Transition{
			ID:       id,
			Attr:     attr,
			From:     from,
			To:       to[attr],
			Start:    s.now,
			Delay:    o.delay,
			Duration: o.duration,
			Ease:     o.ease,
			group:    g,
		}
		if !replaced {
			// A replaced key keeps its place in the run order.
			s.order = append(s.order, k)
		}
		g.remaining++
		observability.Transition().OnScheduled(id, attr, o.duration)
	}

	if g.remaining == 0 {
		s.settled = append(s.settled, g)
	}
	return g
}

// Tick advances the clock to now and applies every running transition.
// Completion callbacks run after all attributes of the frame are written.
// Tick returns the number of transitions still running. A time earlier than
// the last frame is treated as the last frame.
func (s *Scheduler) Tick(now time.Time) int {
	if now.After(s.now) {
		s.now = now
	}

	order := s.order[:0]
	for _, k := range s.order {
		t, ok := s.running[k]
		if !ok {
			continue
		}
		v, pending, done := t.valueAt(s.now)
		if pending {
			order = append(order, k)
			continue
		}
		if err := s.target.SetAttr(t.ID, t.Attr, v); err != nil {
			s.logger.Debug("transition target vanished", "id", t.ID, "attr", t.Attr, "err", err)
			s.drop(k, t)
			continue
		}
		if !done {
			order = append(order, k)
			continue
		}
		delete(s.running, k)
		t.group.remaining--
		if t.group.remaining == 0 && !t.group.cancelled {
			s.settled = append(s.settled, t.group)
		}
	}
	s.order = order

	settled := s.settled
	s.settled = nil
	for _, g := range settled {
		if g.cancelled || g.ended {
			continue
		}
		g.ended = true
		if g.onEnd != nil {
			g.onEnd()
		}
	}

	observability.Transition().OnFrame(len(s.running))
	return len(s.running)
}

// Cancel stops the named attributes of element id where they are.
func (s *Scheduler) Cancel(id string, attrs ...string) int {
	var n int
	for _, attr := range attrs {
		k := key{id, attr}
		if t, ok := s.running[k]; ok {
			s.drop(k, t)
			n++
		}
	}
	s.compact()
	if n > 0 {
		observability.Transition().OnCancelled(n)
	}
	return n
}

// CancelElement stops every attribute of element id.
func (s *Scheduler) CancelElement(id string) int {
	var attrs []string
	for k := range s.running {
		if k.id == id {
			attrs = append(attrs, k.attr)
		}
	}
	return s.Cancel(id, attrs...)
}

// Clear drops every transition without running completion callbacks and
// returns how many were dropped.
func (s *Scheduler) Clear() int {
	n := len(s.running)
	for k, t := range s.running {
		t.group.cancelled = true
		delete(s.running, k)
	}
	for _, g := range s.settled {
		g.cancelled = true
	}
	s.order = nil
	s.settled = nil
	if n > 0 {
		observability.Transition().OnCancelled(n)
		s.logger.Debug("transitions cleared", "count", n)
	}
	return n
}

// Pending returns the number of transitions not yet completed, including
// those still waiting out their delay.
func (s *Scheduler) Pending() int { return len(s.running) }

// Active reports whether a transition is scheduled on the attribute.
func (s *Scheduler) Active(id, attr string) bool {
	_, ok := s.running[key{id, attr}]
	return ok
}

// Transitions returns copies of the running transitions in scheduling order.
func (s *Scheduler) Transitions() []Transition {
	out := make([]Transition, 0, len(s.running))
	for _, k := range s.order {
		if t, ok := s.running[k]; ok {
			out = append(out, *t)
		}
	}
	return out
}

func (s *Scheduler) drop(k key, t *Transition) {
	t.group.cancelled = true
	delete(s.running, k)
}

// compact removes keys of dropped transitions from the run order.
func (s *Scheduler) compact() {
	s.order = slices.DeleteFunc(s.order, func(k key) bool {
		_, ok := s.running[k]
		return !ok
	})
}
