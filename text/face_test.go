package text

import (
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/sprite/backend/record"
	"github.com/gogpu/sprite/gpucore"
)

func newTestFace(t testing.TB, size float64) *Face {
	t.Helper()
	source, err := NewFontSource(goregular.TTF)
	if err != nil {
		t.Fatalf("NewFontSource: %v", err)
	}
	face, err := source.NewFace(size, NewAtlas(record.New()))
	if err != nil {
		t.Fatalf("NewFace: %v", err)
	}
	return face
}

func TestLayoutProducesDrawableGlyphs(t *testing.T) {
	face := newTestFace(t, 24)

	glyphs, err := face.Layout("Hi")
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}
	if len(glyphs) != 2 {
		t.Fatalf("got %d glyphs, want 2", len(glyphs))
	}
	for i, g := range glyphs {
		if g.Texture == gpucore.InvalidID {
			t.Errorf("glyph %d has no texture", i)
		}
		if g.W <= 0 || g.H <= 0 {
			t.Errorf("glyph %d has empty rectangle %vx%v", i, g.W, g.H)
		}
		if g.U1 <= g.U0 || g.V1 <= g.V0 {
			t.Errorf("glyph %d has degenerate UVs (%v,%v)-(%v,%v)",
				i, g.U0, g.V0, g.U1, g.V1)
		}
	}
	if glyphs[1].X <= glyphs[0].X {
		t.Error("second glyph not advanced past the first")
	}
}

func TestLayoutSkipsSpaces(t *testing.T) {
	face := newTestFace(t, 24)

	glyphs, err := face.Layout("a b")
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}
	if len(glyphs) != 2 {
		t.Fatalf("got %d glyphs, want 2 (space is invisible)", len(glyphs))
	}
}

func TestLayoutCachesGlyphs(t *testing.T) {
	face := newTestFace(t, 24)

	if _, err := face.Layout("abc"); err != nil {
		t.Fatalf("Layout: %v", err)
	}
	first := face.CacheStats()
	if first.Misses == 0 {
		t.Fatal("first layout hit a cold cache")
	}

	if _, err := face.Layout("abc"); err != nil {
		t.Fatalf("Layout: %v", err)
	}
	second := face.CacheStats()
	if second.Misses != first.Misses {
		t.Errorf("second layout missed: %d -> %d", first.Misses, second.Misses)
	}
	if second.Hits <= first.Hits {
		t.Errorf("second layout did not hit: %d -> %d", first.Hits, second.Hits)
	}
}

func TestLayoutEmptyString(t *testing.T) {
	face := newTestFace(t, 24)

	glyphs, err := face.Layout("")
	if err != nil {
		t.Fatalf("Layout: %v", err)
	}
	if glyphs != nil {
		t.Errorf("empty string produced %d glyphs", len(glyphs))
	}
}

func TestMetricsAndMeasure(t *testing.T) {
	face := newTestFace(t, 24)

	m := face.Metrics()
	if m.Ascent <= 0 || m.Descent <= 0 {
		t.Errorf("metrics not positive: %+v", m)
	}
	if m.Height < m.Ascent+m.Descent-1 {
		t.Errorf("line height %v below ascent+descent %v", m.Height, m.Ascent+m.Descent)
	}

	short := face.Measure("a")
	long := face.Measure("aaaa")
	if short <= 0 || long <= short {
		t.Errorf("Measure not growing with content: %v then %v", short, long)
	}
}

func BenchmarkLayoutWarmCache(b *testing.B) {
	face := newTestFace(b, 16)
	if _, err := face.Layout("The quick brown fox"); err != nil {
		b.Fatalf("Layout: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := face.Layout("The quick brown fox"); err != nil {
			b.Fatal(err)
		}
	}
}
