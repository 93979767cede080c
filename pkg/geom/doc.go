// Package geom turns datasets into drawable primitive descriptors.
//
// Each chart kind has a builder ([Bars], [Lines], [Pie]) that computes its
// scales from a [dataset.Dataset] and a [Frame], then emits one
// [Primitive] per shape: rectangles for bars, a path plus circle markers
// for lines, and arcs for pie slices, each with an optional value label.
// Builders are pure functions: calling them twice with the same inputs
// yields identical layouts.
//
// # Coordinates
//
// All geometry is in surface coordinates: margins are already applied, so a
// primitive can be handed to a drawing surface as-is. The value axis grows
// upward, which means its range runs from the bottom of the inner frame to
// the top.
//
// # Failures
//
// Problems that concern a single datum (a non-finite value, a key missing
// from a fixed categorical domain, a duplicated key) never abort a layout.
// The datum is left out and recorded in [Layout.Skipped]; every other datum
// renders normally.
//
// # Curves
//
// Line charts connect their vertices with a pluggable [Curve]. [MonotoneX]
// is the default: it is smooth and never overshoots between consecutive
// points. [Linear] and [Step] are also available.
package geom
