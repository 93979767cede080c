package sink

import (
	"image"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// halfBlock draws the upper pixel of a cell in the foreground color and the
// lower one in the background color.
const halfBlock = "▀"

// RenderTerminal rasterizes src to cols terminal columns. Each cell holds
// two vertically stacked pixels, so the result is roughly square-pixeled
// on common terminal fonts.
func RenderTerminal(src Source, cols int) string {
	w, _ := src.Size()
	if cols <= 0 || w <= 0 {
		return ""
	}
	img := Image(src, WithScale(float64(cols)/w))
	return halfBlocks(img)
}

func halfBlocks(img image.Image) string {
	b := img.Bounds()
	var sb strings.Builder
	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		if y > b.Min.Y {
			sb.WriteByte('\n')
		}
		for x := b.Min.X; x < b.Max.X; x++ {
			top := hexAt(img, x, y)
			bottom := top
			if y+1 < b.Max.Y {
				bottom = hexAt(img, x, y+1)
			}
			sb.WriteString(lipgloss.NewStyle().
				Foreground(lipgloss.Color(top)).
				Background(lipgloss.Color(bottom)).
				Render(halfBlock))
		}
	}
	return sb.String()
}

func hexAt(img image.Image, x, y int) string {
	c, ok := colorful.MakeColor(img.At(x, y))
	if !ok {
		return "#ffffff"
	}
	return c.Hex()
}
