package geom

// Rect is an axis-aligned rectangle. Y grows downward.
type Rect struct {
	X, Y float64
	W, H float64
}

// Right returns the horizontal end of the rectangle.
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the vertical end of the rectangle.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// CenterX returns the horizontal center point of the rectangle.
func (r Rect) CenterX() float64 { return r.X + r.W/2 }

// CenterY returns the vertical center point of the rectangle.
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

// Contains reports whether (x, y) lies inside the rectangle, edges included.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.Right() && y >= r.Y && y <= r.Bottom()
}
