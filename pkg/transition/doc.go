// Package transition animates numeric node attributes on a frame clock.
//
// A [Scheduler] owns the transitions of one chart. Nothing happens between
// frames: the host calls [Scheduler.Tick] with the current time, and every
// running transition writes its interpolated value to the [Target]. A
// transition whose delay has not elapsed is pending and writes nothing; one
// whose duration has elapsed writes its end value and completes.
//
// # Cancel and replace
//
// At most one transition runs per (element, attribute). Scheduling another
// cancels the running one and starts from the attribute's current value, so
// the attribute never jumps back to the cancelled transition's end value.
//
// # Groups
//
// [Scheduler.Animate] returns a [Group] covering every attribute it
// scheduled. The group's OnEnd callback fires once, after the tick on which
// its last attribute completed. If any attribute was cancelled, or the
// target node vanished, OnEnd never fires. [Scheduler.Clear] drops every
// transition without completion effects.
//
// # Easing
//
// Easing functions come from github.com/tanema/gween/ease and are looked up
// by name with [EaseByName].
package transition
