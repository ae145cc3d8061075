package sprite

import (
	"math"
	"testing"
)

func TestAffineIdentity(t *testing.T) {
	m := Identity()
	if !m.IsIdentity() {
		t.Fatal("Identity().IsIdentity() = false")
	}
	p := m.Apply(Pt(3, 4))
	if p != Pt(3, 4) {
		t.Fatalf("identity moved point to %+v", p)
	}
}

func TestAffineTranslate(t *testing.T) {
	p := Translate(10, -5).Apply(Pt(1, 1))
	if p != Pt(11, -4) {
		t.Fatalf("translated point = %+v, want (11, -4)", p)
	}
}

func TestAffineRotateClockwise(t *testing.T) {
	// Quarter turn clockwise in y-down space sends +x to +y.
	p := Rotate(float32(math.Pi / 2)).Apply(Pt(1, 0))
	if !approxEq(p.X, 0) || !approxEq(p.Y, 1) {
		t.Fatalf("rotated point = %+v, want (0, 1)", p)
	}
}

func TestAffineMulOrder(t *testing.T) {
	// Mul applies the right operand first: scale then translate.
	m := Translate(100, 0).Mul(Scale(2, 2))
	p := m.Apply(Pt(1, 1))
	if p != Pt(102, 2) {
		t.Fatalf("composed point = %+v, want (102, 2)", p)
	}

	// The other order translates first.
	n := Scale(2, 2).Mul(Translate(100, 0))
	q := n.Apply(Pt(1, 1))
	if q != Pt(202, 2) {
		t.Fatalf("composed point = %+v, want (202, 2)", q)
	}
}

func TestColorPacked(t *testing.T) {
	c := RGBA(0x12, 0x34, 0x56, 0x78)
	if c.Packed() != 0x78563412 {
		t.Fatalf("Packed = %#x, want 0x78563412", c.Packed())
	}
	if White.Packed() != 0xFFFFFFFF {
		t.Fatalf("White.Packed = %#x", White.Packed())
	}
	if Transparent.Packed() != 0 {
		t.Fatalf("Transparent.Packed = %#x", Transparent.Packed())
	}
}

func TestColorRoundTrip(t *testing.T) {
	c := RGBA(200, 100, 50, 128)
	got := FromColor(c)
	// Premultiply and un-premultiply loses at most one step per channel.
	diff := func(a, b uint8) int {
		d := int(a) - int(b)
		if d < 0 {
			d = -d
		}
		return d
	}
	if diff(got.R, c.R) > 1 || diff(got.G, c.G) > 1 || diff(got.B, c.B) > 1 || got.A != c.A {
		t.Fatalf("round trip %+v -> %+v", c, got)
	}
}

func TestRectHelpers(t *testing.T) {
	r := RectXYWH(10, 20, 30, 40)
	if r.Width() != 30 || r.Height() != 40 {
		t.Fatalf("size = %v x %v", r.Width(), r.Height())
	}
	if r.IsEmpty() {
		t.Fatal("non-empty rect reported empty")
	}
	if !(Rect{}).IsEmpty() {
		t.Fatal("zero rect reported non-empty")
	}
	u := UnitRect()
	if u.MinX != 0 || u.MaxY != 1 {
		t.Fatalf("unit rect = %+v", u)
	}
}
