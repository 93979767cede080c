// Package surface defines the drawing surface the chart engine paints on.
//
// A [Surface] holds named nodes. Each node has a kind, numeric attributes
// (positions, sizes, opacity, dash offsets), string styles (fill, stroke,
// text content) and, for paths, the path geometry. Pointer handlers attach
// per node and event type.
//
// [Scene] is the in-memory implementation. It keeps nodes in creation
// order, which is also paint order, hit-tests pointer positions against
// node geometry and dispatches enter, leave and move events. Output sinks
// render a Scene snapshot, so any frame of an animation can be captured.
package surface
