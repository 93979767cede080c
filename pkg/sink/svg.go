package sink

import (
	"bytes"
	"fmt"
	"math"
	"strconv"

	"github.com/matzehuels/stackchart/pkg/geom"
	"github.com/matzehuels/stackchart/pkg/surface"
)

const markInteractionCSS = `
    .mark { cursor: pointer; transition: filter 0.2s ease; }
    .mark.highlight { filter: brightness(0.75); }
    .tip { pointer-events: none; transition: opacity 0.2s ease; }`

const markInteractionJS = `
    (function () {
      const svg = document.documentElement;
      const ns = 'http://www.w3.org/2000/svg';
      const tip = document.createElementNS(ns, 'g');
      tip.setAttribute('class', 'tip');
      tip.setAttribute('opacity', '0');
      const box = document.createElementNS(ns, 'rect');
      box.setAttribute('rx', '4');
      box.setAttribute('height', '22');
      box.setAttribute('fill', '#333333');
      const label = document.createElementNS(ns, 'text');
      label.setAttribute('x', '6');
      label.setAttribute('y', '11');
      label.setAttribute('fill', 'white');
      label.setAttribute('font-size', '11');
      label.setAttribute('dominant-baseline', 'middle');
      tip.append(box, label);
      svg.append(tip);
      function place(ev) {
        const p = svg.createSVGPoint();
        p.x = ev.clientX;
        p.y = ev.clientY;
        const q = p.matrixTransform(svg.getScreenCTM().inverse());
        tip.setAttribute('transform', 'translate(' + (q.x + 12) + ',' + (q.y - 28) + ')');
      }
      document.querySelectorAll('.mark').forEach(el => {
        const title = el.querySelector('title');
        if (!title) return;
        el.addEventListener('mouseenter', ev => {
          el.classList.add('highlight');
          label.textContent = title.textContent;
          box.setAttribute('width', label.getComputedTextLength() + 12);
          place(ev);
          tip.setAttribute('opacity', '1');
        });
        el.addEventListener('mousemove', place);
        el.addEventListener('mouseleave', () => {
          el.classList.remove('highlight');
          tip.setAttribute('opacity', '0');
        });
      });
    })();`

// Tooltip box geometry shared by the raster sinks.
const (
	tooltipFill     = "#333333"
	tooltipPad      = 6.0
	tooltipFontSize = 11.0
)

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	static bool
}

// WithStatic omits the hover script and styles.
func WithStatic() SVGOption { return func(r *svgRenderer) { r.static = true } }

// RenderSVG renders the current state of src as a standalone SVG document.
func RenderSVG(src Source, opts ...SVGOption) []byte {
	var r svgRenderer
	for _, opt := range opts {
		opt(&r)
	}

	w, h := src.Size()
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %s %s" width="%.0f" height="%.0f" font-family="sans-serif">`+"\n",
		num(w), num(h), w, h)
	if !r.static {
		fmt.Fprintf(&buf, "  <style>%s\n  </style>\n", markInteractionCSS)
	}
	for _, n := range src.Nodes() {
		renderNode(&buf, n)
	}
	if !r.static {
		fmt.Fprintf(&buf, "  <script type=\"text/javascript\"><![CDATA[%s\n  ]]></script>\n", markInteractionJS)
	}
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func renderNode(buf *bytes.Buffer, n surface.Node) {
	switch n.Kind {
	case geom.KindRect:
		r := n.Rect()
		element(buf, n, "rect", fmt.Sprintf(`x="%s" y="%s" width="%s" height="%s"`,
			num(r.X), num(r.Y), num(r.W), num(r.H)), "")
	case geom.KindPath:
		element(buf, n, "path", fmt.Sprintf(`d="%s"`, n.Path.String()), "")
	case geom.KindArc:
		element(buf, n, "path", fmt.Sprintf(`d="%s"`, n.Arc().Path()), "")
	case geom.KindCircle:
		element(buf, n, "circle", fmt.Sprintf(`cx="%s" cy="%s" r="%s"`,
			num(n.Attr(surface.AttrCX, 0)), num(n.Attr(surface.AttrCY, 0)), num(n.Attr(surface.AttrR, 0))), "")
	case geom.KindLine:
		element(buf, n, "line", fmt.Sprintf(`x1="%s" y1="%s" x2="%s" y2="%s"`,
			num(n.Attr(surface.AttrX1, 0)), num(n.Attr(surface.AttrY1, 0)),
			num(n.Attr(surface.AttrX2, 0)), num(n.Attr(surface.AttrY2, 0))), "")
	case geom.KindText:
		geo := fmt.Sprintf(`x="%s" y="%s"`, num(n.Attr(surface.AttrX, 0)), num(n.Attr(surface.AttrY, 0)))
		if fs, ok := n.Attrs[surface.AttrFontSize]; ok {
			geo += fmt.Sprintf(` font-size="%s"`, num(fs))
		}
		if a := n.Style(surface.StyleAnchor); a != "" {
			geo += fmt.Sprintf(` text-anchor="%s"`, EscapeXML(a))
		}
		if b := n.Style(surface.StyleBaseline); b != "" {
			geo += fmt.Sprintf(` dominant-baseline="%s"`, EscapeXML(b))
		}
		element(buf, n, "text", geo, EscapeXML(n.Style(surface.StyleText)))
	case surface.KindTooltip:
		renderTooltip(buf, n)
	}
}

// element writes one SVG element with the node's presentation attributes.
// A title style becomes a <title> child.
func element(buf *bytes.Buffer, n surface.Node, tag, geometry, content string) {
	fmt.Fprintf(buf, `  <%s id="%s" %s%s`, tag, EscapeXML(n.ID), geometry, presentation(n))
	title := n.Style(surface.StyleTitle)
	if title == "" && content == "" {
		buf.WriteString("/>\n")
		return
	}
	buf.WriteString(">")
	if title != "" {
		fmt.Fprintf(buf, "<title>%s</title>", EscapeXML(title))
	}
	buf.WriteString(content)
	fmt.Fprintf(buf, "</%s>\n", tag)
}

func presentation(n surface.Node) string {
	var b bytes.Buffer
	for _, name := range []string{surface.StyleClass, surface.StyleFill, surface.StyleStroke, surface.StyleDashArray} {
		if v := n.Style(name); v != "" {
			fmt.Fprintf(&b, ` %s="%s"`, name, EscapeXML(v))
		}
	}
	for _, name := range []string{surface.AttrStrokeWidth, surface.AttrDashOffset} {
		if v, ok := n.Attrs[name]; ok {
			fmt.Fprintf(&b, ` %s="%s"`, name, num(v))
		}
	}
	if op := n.Opacity(); op < 1 {
		fmt.Fprintf(&b, ` opacity="%s"`, num(math.Max(0, op)))
	}
	return b.String()
}

func renderTooltip(buf *bytes.Buffer, n surface.Node) {
	r := n.Rect()
	fmt.Fprintf(buf, `  <g id="%s" class="tooltip" pointer-events="none" opacity="%s">`+"\n",
		EscapeXML(n.ID), num(math.Max(0, math.Min(1, n.Opacity()))))
	fmt.Fprintf(buf, `    <rect x="%s" y="%s" width="%s" height="%s" rx="4" fill="%s" fill-opacity="0.9"/>`+"\n",
		num(r.X), num(r.Y), num(r.W), num(r.H), tooltipFill)
	fmt.Fprintf(buf, `    <text x="%s" y="%s" font-size="%s" fill="white" dominant-baseline="middle">%s</text>`+"\n",
		num(r.X+tooltipPad), num(r.CenterY()), num(tooltipFontSize), EscapeXML(n.Style(surface.StyleText)))
	buf.WriteString("  </g>\n")
}

// num formats a coordinate with at most two decimals.
func num(v float64) string {
	r := math.Round(v*100) / 100
	if r == 0 {
		r = 0
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}
