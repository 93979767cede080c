package geom

import "math"

// Margin is the space reserved around the plot area for axes and labels.
type Margin struct {
	Top    float64 `toml:"top" json:"top"`
	Right  float64 `toml:"right" json:"right"`
	Bottom float64 `toml:"bottom" json:"bottom"`
	Left   float64 `toml:"left" json:"left"`
}

// Uniform returns a margin of m on every side.
func Uniform(m float64) Margin { return Margin{Top: m, Right: m, Bottom: m, Left: m} }

// Frame is the outer size of a chart and its margins.
type Frame struct {
	Width  float64
	Height float64
	Margin Margin
}

// InnerWidth returns the plot width, never negative.
func (f Frame) InnerWidth() float64 { return math.Max(0, f.Width-f.Margin.Left-f.Margin.Right) }

// InnerHeight returns the plot height, never negative.
func (f Frame) InnerHeight() float64 { return math.Max(0, f.Height-f.Margin.Top-f.Margin.Bottom) }

// Inner returns the plot area in surface coordinates.
func (f Frame) Inner() Rect {
	return Rect{X: f.Margin.Left, Y: f.Margin.Top, W: f.InnerWidth(), H: f.InnerHeight()}
}

// Bounds returns the whole frame as a rectangle at the origin.
func (f Frame) Bounds() Rect { return Rect{W: math.Max(0, f.Width), H: math.Max(0, f.Height)} }
