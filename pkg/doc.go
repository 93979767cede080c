// Package pkg holds the libraries behind Stackchart, an animated chart
// engine for bar, line and pie charts.
//
// # Overview
//
// A chart is rebuilt from scratch whenever its data, type or size changes.
// The packages are layered so each one only knows about the ones below it:
//
//  1. [dataset] - Records, collections and TOML/JSON loading
//  2. [scale] - Band, point, linear and color scales
//  3. [geom] - Pure layout: bars, line paths, pie arcs and labels
//  4. [axis] - Tick generation and axis primitives
//  5. [surface] - The retained node tree a chart draws into
//  6. [transition] - Frame-clocked attribute animation
//  7. [interact] - Hover highlighting and the tooltip
//  8. [chart] - The orchestrator tying the above together
//  9. [sink] - SVG, PNG, JSON and terminal output from a surface
//
// # Data Flow
//
//	Collection + Selection
//	         ↓
//	    [scale] domains from the records
//	         ↓
//	    [geom] primitives inside the plot frame
//	         ↓
//	    [surface] nodes, animated by [transition]
//	         ↓
//	    [sink] SVG/PNG/JSON/terminal
//
// # Quick Start
//
//	scene := surface.NewScene(640, 360)
//	c, _ := chart.New(chart.Bar, scene)
//	defer c.Close()
//
//	_ = c.Select(ctx, dataset.Sample(), "sales")
//	c.Settle()
//
//	svg := sink.RenderSVG(scene)
//
// # Error Handling
//
// Operations return [errors.Error] values carrying a stable code, so callers
// can branch with errors.Is(err, errors.ErrCodeInvalidInput) and the CLI can
// print a readable message.
//
// # Observability
//
// [observability] exposes hook interfaces for rebuilds, transitions and
// renders. The defaults are no-ops.
//
// [dataset]: github.com/matzehuels/stackchart/pkg/dataset
// [scale]: github.com/matzehuels/stackchart/pkg/scale
// [geom]: github.com/matzehuels/stackchart/pkg/geom
// [axis]: github.com/matzehuels/stackchart/pkg/axis
// [surface]: github.com/matzehuels/stackchart/pkg/surface
// [transition]: github.com/matzehuels/stackchart/pkg/transition
// [interact]: github.com/matzehuels/stackchart/pkg/interact
// [chart]: github.com/matzehuels/stackchart/pkg/chart
// [sink]: github.com/matzehuels/stackchart/pkg/sink
// [errors.Error]: github.com/matzehuels/stackchart/pkg/errors.Error
// [observability]: github.com/matzehuels/stackchart/pkg/observability
package pkg
