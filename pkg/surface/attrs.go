package surface

import "github.com/matzehuels/stackchart/pkg/geom"

// Numeric attribute names.
const (
	AttrX      = "x"
	AttrY      = "y"
	AttrWidth  = "width"
	AttrHeight = "height"

	AttrCX = "cx"
	AttrCY = "cy"
	AttrR  = "r"

	AttrX1 = "x1"
	AttrY1 = "y1"
	AttrX2 = "x2"
	AttrY2 = "y2"

	AttrStartAngle  = "start-angle"
	AttrEndAngle    = "end-angle"
	AttrInnerRadius = "inner-radius"
	AttrOuterRadius = "outer-radius"
	AttrScale       = "scale"

	AttrOpacity     = "opacity"
	AttrStrokeWidth = "stroke-width"
	AttrDashOffset  = "stroke-dashoffset"
	AttrFontSize    = "font-size"
)

// Style names.
const (
	StyleFill      = "fill"
	StyleStroke    = "stroke"
	StyleDashArray = "stroke-dasharray"
	StyleText      = "text"
	StyleAnchor    = "text-anchor"
	StyleBaseline  = "dominant-baseline"
	StyleClass     = "class"
	StyleTitle     = "title"
)

// KindTooltip is the node kind of the interaction tooltip: a text box
// anchored at (x, y).
const KindTooltip geom.Kind = "tooltip"
