package sprite

import (
	"github.com/chewxy/math32"

	"github.com/gogpu/sprite/gpucore"
)

// Flip selects texture mirroring for a sprite.
type Flip uint8

const (
	FlipNone       Flip = 0
	FlipHorizontal Flip = 1 << 0
	FlipVertical   Flip = 1 << 1
)

// Quad is the four transformed vertices of one sprite, in the corner
// order top-left, top-right, bottom-right, bottom-left. Two triangles
// (0,1,2) and (0,2,3) cover it.
type Quad [4]gpucore.Vertex

// QuadParams describes one sprite for BuildQuad. Position is where the
// origin point lands in destination space; Origin is in unscaled texel
// units relative to the source rectangle, so rotation and scaling pivot
// around it.
type QuadParams struct {
	Position Point
	Size     Point // destination size in pixels, before Scale
	Origin   Point
	Scale    Point
	Rotation float32 // radians, clockwise in y-down screen space
	Source   Rect    // normalized UVs
	Color    Color
	Depth    float32
	Flip     Flip
}

// BuildQuad computes the four vertices of a sprite from its draw
// parameters. Flipping mirrors only the texture coordinates; the
// destination geometry is unaffected.
func BuildQuad(p QuadParams) Quad {
	w := p.Size.X * p.Scale.X
	h := p.Size.Y * p.Scale.Y
	ox := p.Origin.X * p.Scale.X
	oy := p.Origin.Y * p.Scale.Y

	u0, v0 := p.Source.MinX, p.Source.MinY
	u1, v1 := p.Source.MaxX, p.Source.MaxY
	if p.Flip&FlipHorizontal != 0 {
		u0, u1 = u1, u0
	}
	if p.Flip&FlipVertical != 0 {
		v0, v1 = v1, v0
	}

	packed := p.Color.Packed()

	var q Quad
	if p.Rotation == 0 {
		// Axis-aligned fast path: no per-corner trig, just the
		// translated rectangle.
		x0 := p.Position.X - ox
		y0 := p.Position.Y - oy
		x1 := x0 + w
		y1 := y0 + h
		q[0] = gpucore.Vertex{X: x0, Y: y0, U: u0, V: v0, Color: packed, Depth: p.Depth}
		q[1] = gpucore.Vertex{X: x1, Y: y0, U: u1, V: v0, Color: packed, Depth: p.Depth}
		q[2] = gpucore.Vertex{X: x1, Y: y1, U: u1, V: v1, Color: packed, Depth: p.Depth}
		q[3] = gpucore.Vertex{X: x0, Y: y1, U: u0, V: v1, Color: packed, Depth: p.Depth}
		return q
	}

	sin, cos := math32.Sincos(p.Rotation)
	// Corner offsets relative to the rotation origin.
	lx := -ox
	ty := -oy
	rx := lx + w
	by := ty + h

	corner := func(cx, cy, u, v float32) gpucore.Vertex {
		return gpucore.Vertex{
			X:     p.Position.X + cx*cos - cy*sin,
			Y:     p.Position.Y + cx*sin + cy*cos,
			U:     u,
			V:     v,
			Color: packed,
			Depth: p.Depth,
		}
	}
	q[0] = corner(lx, ty, u0, v0)
	q[1] = corner(rx, ty, u1, v0)
	q[2] = corner(rx, by, u1, v1)
	q[3] = corner(lx, by, u0, v1)
	return q
}

// Transform applies an affine transform to all four vertices in place.
func (q *Quad) Transform(m Affine) {
	for i := range q {
		p := m.Apply(Point{X: q[i].X, Y: q[i].Y})
		q[i].X = p.X
		q[i].Y = p.Y
	}
}
