package scale

import (
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"

	"github.com/matzehuels/stackchart/pkg/errors"
)

// ParseColor parses a "#rgb" or "#rrggbb" hex color or an SVG color name
// such as "steelblue".
func ParseColor(s string) (colorful.Color, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		c, err := colorful.Hex(s)
		if err != nil {
			return colorful.Color{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "color %q", s)
		}
		return c, nil
	}
	if rgba, ok := colornames.Map[strings.ToLower(s)]; ok {
		c, _ := colorful.MakeColor(rgba)
		return c, nil
	}
	return colorful.Color{}, errors.New(errors.ErrCodeInvalidConfig, "unknown color %q", s)
}

// MustColor is like [ParseColor] but returns fallback on failure.
func MustColor(s string, fallback color.Color) color.Color {
	c, err := ParseColor(s)
	if err != nil {
		return fallback
	}
	return c
}

// Darken blends c toward black in CIE Lab space by amount in [0, 1].
func Darken(c colorful.Color, amount float64) colorful.Color {
	return c.BlendLab(colorful.Color{}, clamp01(amount)).Clamped()
}
