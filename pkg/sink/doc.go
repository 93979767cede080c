// Package sink turns a scene snapshot into output files.
//
// # Overview
//
// A sink reads the nodes of a [surface.Scene] (or anything else that
// implements [Source]) as they are at one instant and encodes them:
//
//   - SVG: vector output with hover highlighting and tooltips
//   - PNG: raster output drawn with fogleman/gg
//   - JSON: the node descriptors for external tools
//   - Terminal: a half-block raster for previews in a terminal
//
// Because sinks read attributes rather than layouts, a snapshot taken while
// transitions are running shows the chart mid-animation:
//
//	c.Tick(start.Add(300 * time.Millisecond))
//	svg := sink.RenderSVG(scene)
//
// # Formats
//
// [Render] dispatches on a [Format] name, which is how the CLI selects
// outputs:
//
//	data, err := sink.Render(sink.FormatPNG, scene)
//
// [surface.Scene]: github.com/matzehuels/stackchart/pkg/surface.Scene
package sink
