// Package geom holds the value types shared by layout and painting:
// rectangles, sizes and sizing constraints.
//
// All coordinates use a bottom-left origin. Y grows upward, so a
// rectangle's Top is Y + Height.
package geom

import "math"

// Inf is an unbounded extent, used for the unconstrained measurement pass.
var Inf = math.Inf(1)

// Point represents a 2D coordinate
type Point struct {
	X float64
	Y float64
}

// Size represents dimensions (width and height)
type Size struct {
	Width  float64
	Height float64
}

// Rect represents a rectangular region. X, Y is the bottom-left corner.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// NewRect creates a rectangle at the origin with the given size.
func NewRect(s Size) Rect {
	return Rect{Width: s.Width, Height: s.Height}
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.Width }

// Top returns the y coordinate of the top edge.
func (r Rect) Top() float64 { return r.Y + r.Height }

// Size returns the rectangle's dimensions.
func (r Rect) Size() Size { return Size{Width: r.Width, Height: r.Height} }

// IsEmpty reports whether the rectangle encloses no area.
func (r Rect) IsEmpty() bool { return r.Width <= 0 || r.Height <= 0 }

// Translate returns a copy of r moved by dx, dy.
func (r Rect) Translate(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Intersect returns the overlap of r and o. The result is empty (zero
// width or height) when they do not overlap.
func (r Rect) Intersect(o Rect) Rect {
	x0 := math.Max(r.X, o.X)
	y0 := math.Max(r.Y, o.Y)
	x1 := math.Min(r.Right(), o.Right())
	y1 := math.Min(r.Top(), o.Top())
	if x1 <= x0 || y1 <= y0 {
		return Rect{X: x0, Y: y0}
	}
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// Contains reports whether p lies inside r (edges inclusive).
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.Right() && p.Y >= r.Y && p.Y <= r.Top()
}
