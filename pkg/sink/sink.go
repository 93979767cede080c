package sink

import (
	"strings"

	"github.com/matzehuels/stackchart/pkg/errors"
	"github.com/matzehuels/stackchart/pkg/surface"
)

// Source is a snapshot provider. [surface.Scene] implements it.
type Source interface {
	Size() (float64, float64)
	Nodes() []surface.Node
}

// Format names an output encoding.
type Format string

const (
	FormatSVG  Format = "svg"
	FormatPNG  Format = "png"
	FormatJSON Format = "json"
)

// Formats lists the file formats [Render] accepts.
var Formats = []Format{FormatSVG, FormatPNG, FormatJSON}

// ParseFormat parses a format name.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	switch f {
	case FormatSVG, FormatPNG, FormatJSON:
		return f, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "unknown format %q (want svg, png or json)", s)
}

// Ext returns the file extension for f, including the dot.
func (f Format) Ext() string { return "." + string(f) }

// Render encodes src in format f.
func Render(f Format, src Source) ([]byte, error) {
	switch f {
	case FormatSVG:
		return RenderSVG(src), nil
	case FormatPNG:
		return RenderPNG(src)
	case FormatJSON:
		return RenderJSON(src)
	}
	return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown format %q", f)
}
