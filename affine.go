package sprite

import "github.com/chewxy/math32"

// Affine is a 2D affine transform stored as the top two rows of a 3x3
// matrix in column-major order:
//
//	| A C E |
//	| B D F |
//	| 0 0 1 |
//
// It transforms every destination vertex a batch produces, so a single
// camera transform set at Begin applies to the whole frame without
// touching individual draw calls.
type Affine struct {
	A, B, C, D, E, F float32
}

// Identity returns the identity transform.
func Identity() Affine {
	return Affine{A: 1, D: 1}
}

// Translate returns a translation transform.
func Translate(tx, ty float32) Affine {
	return Affine{A: 1, D: 1, E: tx, F: ty}
}

// Scale returns a scaling transform about the origin.
func Scale(sx, sy float32) Affine {
	return Affine{A: sx, D: sy}
}

// Rotate returns a rotation transform about the origin. The angle is
// in radians, positive values rotating clockwise in screen space
// (y-down).
func Rotate(angle float32) Affine {
	sin, cos := math32.Sincos(angle)
	return Affine{A: cos, B: sin, C: -sin, D: cos}
}

// Mul returns the transform m·n, applying n first and then m.
func (m Affine) Mul(n Affine) Affine {
	return Affine{
		A: m.A*n.A + m.C*n.B,
		B: m.B*n.A + m.D*n.B,
		C: m.A*n.C + m.C*n.D,
		D: m.B*n.C + m.D*n.D,
		E: m.A*n.E + m.C*n.F + m.E,
		F: m.B*n.E + m.D*n.F + m.F,
	}
}

// Apply transforms the point p.
func (m Affine) Apply(p Point) Point {
	return Point{
		X: m.A*p.X + m.C*p.Y + m.E,
		Y: m.B*p.X + m.D*p.Y + m.F,
	}
}

// IsIdentity reports whether the transform is exactly the identity.
// The batch uses this to skip per-vertex transformation entirely.
func (m Affine) IsIdentity() bool {
	return m == Affine{A: 1, D: 1}
}
