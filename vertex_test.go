package sprite

import (
	"math"
	"testing"
)

func approxEq(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-4
}

func TestBuildQuadAxisAligned(t *testing.T) {
	q := BuildQuad(QuadParams{
		Position: Pt(10, 20),
		Size:     Pt(30, 40),
		Scale:    Pt(1, 1),
		Source:   UnitRect(),
		Color:    White,
	})

	// Corner order: TL, TR, BR, BL.
	wantX := []float32{10, 40, 40, 10}
	wantY := []float32{20, 20, 60, 60}
	wantU := []float32{0, 1, 1, 0}
	wantV := []float32{0, 0, 1, 1}
	for i := range q {
		if q[i].X != wantX[i] || q[i].Y != wantY[i] {
			t.Errorf("corner %d = (%v, %v), want (%v, %v)", i, q[i].X, q[i].Y, wantX[i], wantY[i])
		}
		if q[i].U != wantU[i] || q[i].V != wantV[i] {
			t.Errorf("corner %d uv = (%v, %v), want (%v, %v)", i, q[i].U, q[i].V, wantU[i], wantV[i])
		}
	}
}

func TestBuildQuadScaleAndOrigin(t *testing.T) {
	// Origin at the sprite center: scaling grows outward from the
	// position in every direction.
	q := BuildQuad(QuadParams{
		Position: Pt(100, 100),
		Size:     Pt(10, 10),
		Origin:   Pt(5, 5),
		Scale:    Pt(2, 2),
		Source:   UnitRect(),
		Color:    White,
	})
	if q[0].X != 90 || q[0].Y != 90 {
		t.Errorf("top-left = (%v, %v), want (90, 90)", q[0].X, q[0].Y)
	}
	if q[2].X != 110 || q[2].Y != 110 {
		t.Errorf("bottom-right = (%v, %v), want (110, 110)", q[2].X, q[2].Y)
	}
}

func TestBuildQuadRotationQuarterTurn(t *testing.T) {
	// 90 degrees clockwise around the top-left corner: the top-right
	// corner swings down to (position.x, position.y + width).
	q := BuildQuad(QuadParams{
		Position: Pt(0, 0),
		Size:     Pt(10, 4),
		Scale:    Pt(1, 1),
		Rotation: float32(math.Pi / 2),
		Source:   UnitRect(),
		Color:    White,
	})
	if !approxEq(q[1].X, 0) || !approxEq(q[1].Y, 10) {
		t.Errorf("rotated top-right = (%v, %v), want (0, 10)", q[1].X, q[1].Y)
	}
}

func TestBuildQuadFlipMirrorsUVOnly(t *testing.T) {
	base := QuadParams{
		Position: Pt(0, 0),
		Size:     Pt(8, 8),
		Scale:    Pt(1, 1),
		Source:   Rect{MinX: 0.25, MinY: 0.5, MaxX: 0.75, MaxY: 1},
		Color:    White,
	}

	plain := BuildQuad(base)

	flipped := base
	flipped.Flip = FlipHorizontal
	qh := BuildQuad(flipped)
	for i := range qh {
		if qh[i].X != plain[i].X || qh[i].Y != plain[i].Y {
			t.Fatalf("flip moved geometry at corner %d", i)
		}
	}
	if qh[0].U != 0.75 || qh[1].U != 0.25 {
		t.Errorf("horizontal flip UVs = %v, %v; want 0.75, 0.25", qh[0].U, qh[1].U)
	}
	if qh[0].V != plain[0].V {
		t.Errorf("horizontal flip changed V")
	}

	flipped.Flip = FlipVertical
	qv := BuildQuad(flipped)
	if qv[0].V != 1 || qv[3].V != 0.5 {
		t.Errorf("vertical flip UVs = %v, %v; want 1, 0.5", qv[0].V, qv[3].V)
	}

	flipped.Flip = FlipHorizontal | FlipVertical
	qb := BuildQuad(flipped)
	if qb[0].U != 0.75 || qb[0].V != 1 {
		t.Errorf("double flip corner 0 uv = (%v, %v), want (0.75, 1)", qb[0].U, qb[0].V)
	}
}

func TestBuildQuadPacksColorAndDepth(t *testing.T) {
	q := BuildQuad(QuadParams{
		Position: Pt(0, 0),
		Size:     Pt(1, 1),
		Scale:    Pt(1, 1),
		Source:   UnitRect(),
		Color:    RGBA(0x11, 0x22, 0x33, 0x44),
		Depth:    0.75,
	})
	want := uint32(0x44332211)
	for i := range q {
		if q[i].Color != want {
			t.Errorf("corner %d color = %#x, want %#x", i, q[i].Color, want)
		}
		if q[i].Depth != 0.75 {
			t.Errorf("corner %d depth = %v, want 0.75", i, q[i].Depth)
		}
	}
}

func TestQuadTransform(t *testing.T) {
	q := BuildQuad(QuadParams{
		Position: Pt(1, 2),
		Size:     Pt(3, 4),
		Scale:    Pt(1, 1),
		Source:   UnitRect(),
		Color:    White,
	})
	q.Transform(Scale(2, 2))
	if q[0].X != 2 || q[0].Y != 4 {
		t.Errorf("scaled corner = (%v, %v), want (2, 4)", q[0].X, q[0].Y)
	}
}

func BenchmarkBuildQuadAxisAligned(b *testing.B) {
	p := QuadParams{
		Position: Pt(100, 100),
		Size:     Pt(32, 32),
		Scale:    Pt(1, 1),
		Source:   UnitRect(),
		Color:    White,
	}
	for i := 0; i < b.N; i++ {
		_ = BuildQuad(p)
	}
}

func BenchmarkBuildQuadRotated(b *testing.B) {
	p := QuadParams{
		Position: Pt(100, 100),
		Size:     Pt(32, 32),
		Scale:    Pt(1, 1),
		Rotation: 0.7,
		Source:   UnitRect(),
		Color:    White,
	}
	for i := 0; i < b.N; i++ {
		_ = BuildQuad(p)
	}
}
