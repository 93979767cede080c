package scale

import (
	"fmt"
	"image/color"
	"slices"

	"github.com/aclements/go-gg/palette"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/stackchart/pkg/errors"
)

// Category10 is the default categorical palette.
var Category10 = mustHexes(
	"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd",
	"#8c564b", "#e377c2", "#7f7f7f", "#bcbd22", "#17becf",
)

// Ordinal assigns palette colors to keys by first-seen index. With more keys
// than colors the palette repeats.
type Ordinal struct {
	keys    []string
	index   map[string]int
	palette []color.Color
}

// NewOrdinal creates an ordinal color scale. An empty palette falls back to
// [Category10].
func NewOrdinal(keys []string, pal []color.Color) Ordinal {
	if len(pal) == 0 {
		pal = Category10
	}
	o := Ordinal{palette: slices.Clone(pal)}
	o.keys, o.index = dedupe(keys)
	return o
}

// Color returns the color assigned to key.
func (o Ordinal) Color(key string) (color.Color, error) {
	i, ok := o.index[key]
	if !ok {
		return nil, &errors.DomainError{Key: key, Domain: slices.Clone(o.keys)}
	}
	return o.palette[i%len(o.palette)], nil
}

// Hex returns the color assigned to key as "#rrggbb".
func (o Ordinal) Hex(key string) (string, error) {
	c, err := o.Color(key)
	if err != nil {
		return "", err
	}
	return Hex(c), nil
}

// Domain returns a copy of the keys in order.
func (o Ordinal) Domain() []string { return slices.Clone(o.keys) }

// Palette returns a copy of the palette.
func (o Ordinal) Palette() []color.Color { return slices.Clone(o.palette) }

// FromGradient samples n evenly spaced colors from a continuous palette.
func FromGradient(g palette.Continuous, n int) []color.Color {
	if n <= 0 {
		return nil
	}
	out := make([]color.Color, n)
	for i := range out {
		x := 0.5
		if n > 1 {
			x = float64(i) / float64(n-1)
		}
		out[i] = g.Map(x)
	}
	return out
}

// Gradient builds an sRGB gradient through the given colors.
func Gradient(colors ...string) (palette.Continuous, error) {
	stops := make([]color.RGBA, 0, len(colors))
	for _, s := range colors {
		c, err := ParseColor(s)
		if err != nil {
			return nil, err
		}
		r, g, b := c.RGB255()
		stops = append(stops, color.RGBA{R: r, G: g, B: b, A: 0xff})
	}
	if len(stops) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "gradient needs at least one color")
	}
	return palette.RGBGradient{Colors: stops}, nil
}

// ParsePalette parses hex colors or color names into a palette.
func ParsePalette(colors []string) ([]color.Color, error) {
	out := make([]color.Color, 0, len(colors))
	for _, s := range colors {
		c, err := ParseColor(s)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// Hex formats c as "#rrggbb", ignoring alpha.
func Hex(c color.Color) string {
	if cf, ok := colorful.MakeColor(c); ok {
		return cf.Hex()
	}
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
}

func mustHexes(hexes ...string) []color.Color {
	pal, err := ParsePalette(hexes)
	if err != nil {
		panic(err)
	}
	return pal
}
