package sprite

import "github.com/chewxy/math32"

// Point represents a 2D point or vector in float32 screen space.
// Sprite geometry is float32 end to end because that is what the GPU
// vertex stream carries; converting at the API boundary would only add
// rounding noise.
type Point struct {
	X, Y float32
}

// Pt is a convenience function to create a Point.
func Pt(x, y float32) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by a scalar.
func (p Point) Mul(s float32) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Length returns the length of the vector.
func (p Point) Length() float32 {
	return math32.Sqrt(p.X*p.X + p.Y*p.Y)
}

// Rect is an axis-aligned rectangle with min/max corners.
// For texture source rectangles the coordinates are normalized UVs;
// for destination rectangles they are pixels.
type Rect struct {
	MinX, MinY float32
	MaxX, MaxY float32
}

// RectXYWH creates a Rect from an origin and a size.
func RectXYWH(x, y, w, h float32) Rect {
	return Rect{MinX: x, MinY: y, MaxX: x + w, MaxY: y + h}
}

// UnitRect is the full [0,1] texture source rectangle.
func UnitRect() Rect {
	return Rect{MinX: 0, MinY: 0, MaxX: 1, MaxY: 1}
}

// Width returns the rectangle width.
func (r Rect) Width() float32 { return r.MaxX - r.MinX }

// Height returns the rectangle height.
func (r Rect) Height() float32 { return r.MaxY - r.MinY }

// IsEmpty reports whether the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.MaxX <= r.MinX || r.MaxY <= r.MinY
}
