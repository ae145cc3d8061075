package text

import (
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

// shapedGlyph is one positioned glyph from the shaper: a glyph ID and
// the pen-relative offset at which its bitmap origin lands, in pixels.
type shapedGlyph struct {
	gid  uint16
	x, y float32
}

// Shaper wraps go-text/typesetting's HarfBuzz shaper. HarfbuzzShaper
// instances carry mutable buffers and are not safe for concurrent use,
// so they are pooled; the Shaper itself is safe to share.
type Shaper struct {
	pool sync.Pool
}

// NewShaper creates a shaper.
func NewShaper() *Shaper {
	return &Shaper{
		pool: sync.Pool{
			New: func() any { return &shaping.HarfbuzzShaper{} },
		},
	}
}

// Shape positions the glyphs of s at the given pixel size. The
// returned offsets are relative to the pen start at the baseline.
func (sh *Shaper) Shape(source *FontSource, size float64, s string) []shapedGlyph {
	if s == "" {
		return nil
	}

	// font.Face is not safe for concurrent use; it is a cheap wrapper
	// over the shared read-only font, so one per call is fine.
	face := font.NewFace(source.shapeFont)
	runes := []rune(s)

	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      face,
		Size:      fixed.Int26_6(size * 64),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	hb := sh.pool.Get().(*shaping.HarfbuzzShaper)
	output := hb.Shape(input)
	sh.pool.Put(hb)

	if len(output.Glyphs) == 0 {
		return nil
	}

	out := make([]shapedGlyph, len(output.Glyphs))
	var penX, penY fixed.Int26_6
	for i, g := range output.Glyphs {
		out[i] = shapedGlyph{
			gid: uint16(g.GlyphID),
			x:   fixedToFloat32(penX + g.XOffset),
			y:   fixedToFloat32(penY - g.YOffset),
		}
		penX += g.XAdvance
		penY -= g.YAdvance
	}
	return out
}

// Advance returns the total horizontal advance of s in pixels.
func (sh *Shaper) Advance(source *FontSource, size float64, s string) float32 {
	if s == "" {
		return 0
	}
	face := font.NewFace(source.shapeFont)
	runes := []rune(s)

	hb := sh.pool.Get().(*shaping.HarfbuzzShaper)
	output := hb.Shape(shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      face,
		Size:      fixed.Int26_6(size * 64),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	})
	sh.pool.Put(hb)

	return fixedToFloat32(output.Advance)
}

// detectScript returns the script of the first non-space rune, used to
// pick shaping rules. Mixed-script text should be split into runs by
// the caller.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		switch r {
		case ' ', '\t', '\n', '\r':
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

func fixedToFloat32(v fixed.Int26_6) float32 {
	return float32(v) / 64
}
