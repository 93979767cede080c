// Package chart orchestrates scales, geometry, axes, transitions and
// interaction into an animated chart on a drawing surface.
//
// A [Chart] renders one [dataset.Dataset] at a time as a bar, line or pie
// chart. Every render is a full rebuild: running transitions are cleared,
// pointer handlers detached and all previous nodes removed before the new
// layout is mounted and its entrance transitions start. Bars rise from the
// baseline, the line draws in from the left while its markers fade in, pie
// slices grow from the center, and value labels fade in with a delay that
// grows with their index.
//
// Nothing moves on its own: the host advances the animation by calling
// [Chart.Tick] with the current time on every frame, or [Chart.Settle] to
// jump to the final state.
//
// # Concurrency
//
// All methods are serialised by a mutex, so a rebuild always completes
// before the next one starts. The pointer handlers the chart registers on
// the surface take the same mutex, so a host may deliver pointer events
// from a different goroutine than the one calling Tick.
//
// # Options
//
// [Options] configures margins, padding, curve, easing, durations, colors
// and ticks. It can be loaded from a TOML file with [LoadOptions].
package chart
