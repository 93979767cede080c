package sink

import (
	"bytes"
	"image"
	"math"

	"github.com/fogleman/gg"

	"github.com/matzehuels/stackchart/pkg/errors"
	"github.com/matzehuels/stackchart/pkg/geom"
	"github.com/matzehuels/stackchart/pkg/scale"
	"github.com/matzehuels/stackchart/pkg/surface"
)

// PNGOption configures raster rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	scale      float64
	background string
}

// WithScale sets the pixel density (default 2.0 for 2x resolution).
func WithScale(s float64) PNGOption {
	return func(r *pngRenderer) {
		if s > 0 {
			r.scale = s
		}
	}
}

// WithBackground sets the canvas color. "none" leaves it transparent.
func WithBackground(c string) PNGOption { return func(r *pngRenderer) { r.background = c } }

func newPNGRenderer(opts []PNGOption) pngRenderer {
	r := pngRenderer{scale: 2.0, background: "white"}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// RenderPNG rasterizes the current state of src.
func RenderPNG(src Source, opts ...PNGOption) ([]byte, error) {
	img := Image(src, opts...)
	var buf bytes.Buffer
	if err := gg.NewContextForImage(img).EncodePNG(&buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode png")
	}
	return buf.Bytes(), nil
}

// Image rasterizes the current state of src.
func Image(src Source, opts ...PNGOption) image.Image {
	r := newPNGRenderer(opts)
	w, h := src.Size()
	dc := gg.NewContext(pixels(w, r.scale), pixels(h, r.scale))
	dc.Scale(r.scale, r.scale)

	if setColor(dc, r.background, 1) {
		dc.Clear()
	}
	for _, n := range src.Nodes() {
		drawNode(dc, n)
	}
	return dc.Image()
}

// pixels converts a length to a whole pixel count, ignoring float noise.
func pixels(v, scale float64) int {
	return max(1, int(math.Ceil(v*scale-1e-6)))
}

func drawNode(dc *gg.Context, n surface.Node) {
	op := n.Opacity()
	if op <= 0 {
		return
	}
	dc.SetFillRule(gg.FillRuleWinding)
	switch n.Kind {
	case geom.KindRect:
		r := n.Rect()
		if r.W <= 0 || r.H <= 0 {
			return
		}
		dc.DrawRectangle(r.X, r.Y, r.W, r.H)
		paint(dc, n, op)
	case geom.KindPath:
		tracePath(dc, n.Path)
		paint(dc, n, op)
	case geom.KindArc:
		if traceArc(dc, n.Arc()) {
			paint(dc, n, op)
		}
	case geom.KindCircle:
		dc.DrawCircle(n.Attr(surface.AttrCX, 0), n.Attr(surface.AttrCY, 0), n.Attr(surface.AttrR, 0))
		paint(dc, n, op)
	case geom.KindLine:
		dc.DrawLine(n.Attr(surface.AttrX1, 0), n.Attr(surface.AttrY1, 0), n.Attr(surface.AttrX2, 0), n.Attr(surface.AttrY2, 0))
		paint(dc, n, op)
	case geom.KindText:
		if setColor(dc, n.Style(surface.StyleFill), op) {
			dc.DrawStringAnchored(n.Style(surface.StyleText),
				n.Attr(surface.AttrX, 0), n.Attr(surface.AttrY, 0),
				anchorFactor(n.Style(surface.StyleAnchor)), baselineFactor(n.Style(surface.StyleBaseline)))
		}
	case surface.KindTooltip:
		r := n.Rect()
		dc.DrawRoundedRectangle(r.X, r.Y, r.W, r.H, 4)
		setColor(dc, tooltipFill, 0.9*op)
		dc.Fill()
		setColor(dc, "white", op)
		dc.DrawStringAnchored(n.Style(surface.StyleText), r.X+tooltipPad, r.CenterY(), 0, 0.5)
	}
}

// paint fills and then strokes the current path.
func paint(dc *gg.Context, n surface.Node, op float64) {
	filled := n.Kind != geom.KindLine && setColor(dc, n.Style(surface.StyleFill), op)
	stroked := false
	if sw := n.Attr(surface.AttrStrokeWidth, 1); sw > 0 && setStroke(dc, n, op) {
		dc.SetLineWidth(sw)
		stroked = true
	}
	switch {
	case filled && stroked:
		setColor(dc, n.Style(surface.StyleFill), op)
		dc.FillPreserve()
		setStroke(dc, n, op)
		dc.Stroke()
	case filled:
		dc.Fill()
	case stroked:
		dc.Stroke()
	default:
		dc.ClearPath()
	}
}

func setStroke(dc *gg.Context, n surface.Node, op float64) bool {
	dc.SetDash()
	if !setColor(dc, n.Style(surface.StyleStroke), op) {
		return false
	}
	if dash, ok := parseDash(n.Style(surface.StyleDashArray)); ok {
		dc.SetDash(dash...)
		dc.SetDashOffset(n.Attr(surface.AttrDashOffset, 0))
	}
	return true
}

func tracePath(dc *gg.Context, p geom.Path) {
	for _, cmd := range p {
		pts := cmd.Points
		switch cmd.Op {
		case geom.MoveTo:
			dc.MoveTo(pts[0].X, pts[0].Y)
		case geom.LineTo:
			dc.LineTo(pts[0].X, pts[0].Y)
		case geom.CurveTo:
			dc.CubicTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
		case geom.Close:
			dc.ClosePath()
		}
	}
}

// traceArc adds the outline of a to the path. gg measures angles from the
// positive x axis, a quarter turn behind the arc's 12 o'clock origin.
func traceArc(dc *gg.Context, a geom.Arc) bool {
	span := a.Span()
	if span <= 0 || a.OuterRadius <= 0 {
		return false
	}
	a0, a1 := a.StartAngle-math.Pi/2, a.EndAngle-math.Pi/2
	if span >= 2*math.Pi-1e-9 {
		dc.DrawCircle(a.CX, a.CY, a.OuterRadius)
		if a.InnerRadius > 0 {
			dc.NewSubPath()
			dc.DrawCircle(a.CX, a.CY, a.InnerRadius)
			dc.SetFillRule(gg.FillRuleEvenOdd)
		}
		return true
	}
	if a.InnerRadius <= 0 {
		dc.MoveTo(a.CX, a.CY)
		dc.DrawArc(a.CX, a.CY, a.OuterRadius, a0, a1)
	} else {
		dc.DrawArc(a.CX, a.CY, a.OuterRadius, a0, a1)
		dc.DrawArc(a.CX, a.CY, a.InnerRadius, a1, a0)
	}
	dc.ClosePath()
	return true
}

// setColor sets the drawing color from a CSS color name or hex string and
// reports whether anything should be drawn.
func setColor(dc *gg.Context, css string, op float64) bool {
	if css == "" || css == "none" {
		return false
	}
	c, err := scale.ParseColor(css)
	if err != nil {
		return false
	}
	dc.SetRGBA(c.R, c.G, c.B, math.Max(0, math.Min(1, op)))
	return true
}
