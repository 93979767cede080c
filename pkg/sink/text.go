package sink

import (
	"bytes"
	"encoding/xml"
	"strconv"
	"strings"
)

// EscapeXML escapes s for use in XML text and attribute values.
func EscapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

// anchorFactor maps a text-anchor value to the horizontal fraction of the
// text width left of the anchor point.
func anchorFactor(anchor string) float64 {
	switch anchor {
	case "middle":
		return 0.5
	case "end":
		return 1
	}
	return 0
}

// baselineFactor maps a dominant-baseline value to the vertical fraction of
// the text height above the anchor point.
func baselineFactor(baseline string) float64 {
	switch baseline {
	case "middle", "central":
		return 0.5
	case "hanging", "text-before-edge":
		return 1
	}
	return 0
}

// parseDash reads a stroke-dasharray value of comma or space separated
// lengths.
func parseDash(s string) ([]float64, bool) {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' })
	if len(fields) == 0 {
		return nil, false
	}
	dash := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil || v < 0 {
			return nil, false
		}
		dash = append(dash, v)
	}
	return dash, true
}
