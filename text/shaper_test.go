package text

import (
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func TestShapePositionsGlyphs(t *testing.T) {
	source, err := NewFontSource(goregular.TTF)
	if err != nil {
		t.Fatalf("NewFontSource: %v", err)
	}
	sh := NewShaper()

	glyphs := sh.Shape(source, 24, "AVA")
	if len(glyphs) != 3 {
		t.Fatalf("got %d glyphs, want 3", len(glyphs))
	}
	for i := 1; i < len(glyphs); i++ {
		if glyphs[i].x <= glyphs[i-1].x {
			t.Errorf("glyph %d at x=%v not right of glyph %d at x=%v",
				i, glyphs[i].x, i-1, glyphs[i-1].x)
		}
	}
	if glyphs[0].gid != glyphs[2].gid {
		t.Error("same rune shaped to different glyph ids")
	}
}

func TestShapeEmptyString(t *testing.T) {
	source, err := NewFontSource(goregular.TTF)
	if err != nil {
		t.Fatalf("NewFontSource: %v", err)
	}
	if glyphs := NewShaper().Shape(source, 24, ""); len(glyphs) != 0 {
		t.Errorf("empty string produced %d glyphs", len(glyphs))
	}
}

func TestAdvanceScalesWithSize(t *testing.T) {
	source, err := NewFontSource(goregular.TTF)
	if err != nil {
		t.Fatalf("NewFontSource: %v", err)
	}
	sh := NewShaper()

	small := sh.Advance(source, 12, "Hello")
	large := sh.Advance(source, 24, "Hello")
	if small <= 0 {
		t.Fatalf("advance at 12px = %v, want > 0", small)
	}
	if large <= small {
		t.Errorf("advance did not grow with size: 12px=%v 24px=%v", small, large)
	}
}

func BenchmarkShape(b *testing.B) {
	source, err := NewFontSource(goregular.TTF)
	if err != nil {
		b.Fatalf("NewFontSource: %v", err)
	}
	sh := NewShaper()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sh.Shape(source, 16, "The quick brown fox jumps over the lazy dog")
	}
}
