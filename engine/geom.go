package engine

import "github.com/jakecoffman/cp"

// Point is a 2D position or velocity in pixel coordinates.
type Point = cp.Vector

// Rect is an axis-aligned rectangle addressed by its top-left corner.
// Collision math is delegated to cp's bounding boxes; note cp.BB is
// bottom-up while screen space is top-down, so the conversion flips Y.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, Width: w, Height: h}
}

func (r Rect) Right() float64 {
	return r.X + r.Width
}

func (r Rect) Bottom() float64 {
	return r.Y + r.Height
}

func (r Rect) bb() cp.BB {
	return cp.BB{L: r.X, B: -r.Bottom(), R: r.Right(), T: -r.Y}
}

func (r Rect) Intersects(other Rect) bool {
	return r.bb().Intersects(other.bb())
}

// Translate returns the rect moved by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}
