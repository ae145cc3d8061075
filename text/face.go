package text

import (
	"sync"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/sprite/cache"
	"github.com/gogpu/sprite/gpucore"
)

// Glyph is one positioned, atlas-backed glyph ready for a sprite
// batch: a destination rectangle relative to the string origin and the
// atlas texture region holding the rendered glyph, as normalized UVs.
type Glyph struct {
	Texture gpucore.TextureID

	// Destination, relative to the DrawString position (baseline at
	// the origin's y).
	X, Y, W, H float32

	// Normalized atlas coordinates.
	U0, V0, U1, V1 float32
}

// Metrics are the face's vertical metrics in pixels.
type Metrics struct {
	Ascent  float32 // distance from baseline to top, positive
	Descent float32 // distance from baseline to bottom, positive
	Height  float32 // recommended line spacing
}

// glyphKey identifies a rasterized glyph in the atlas cache. Size is
// stored in 26.6 fixed point so fractional sizes don't collide.
type glyphKey struct {
	source uint64
	size   fixed.Int26_6
	gid    uint16
}

func glyphKeyHasher(k glyphKey) uint64 {
	h := k.source*0x9E3779B97F4A7C15 ^ uint64(k.size)<<16 ^ uint64(k.gid)
	h ^= h >> 29
	h *= 0xBF58476D1CE4E5B9
	return h ^ h>>32
}

// glyphSlot is a cached glyph's atlas placement. A zero-width slot
// marks a glyph with no visible outline (spaces), cached so they skip
// rasterization too.
type glyphSlot struct {
	region Region
	offX   float32
	offY   float32
}

// Face is a FontSource at a fixed pixel size, rendering into an atlas.
// Face is safe for concurrent use; rasterization state is guarded by
// its own lock.
type Face struct {
	source *FontSource
	size   float64
	atlas  *Atlas
	shaper *Shaper
	cache  *cache.Sharded[glyphKey, glyphSlot]

	metrics Metrics

	// sfnt.Buffer is scratch space that LoadGlyph mutates.
	rastMu  sync.Mutex
	rastBuf sfnt.Buffer
}

func newFace(source *FontSource, size float64, atlas *Atlas) (*Face, error) {
	f := &Face{
		source: source,
		size:   size,
		atlas:  atlas,
		shaper: NewShaper(),
		cache:  cache.NewSharded[glyphKey, glyphSlot](0, glyphKeyHasher),
	}

	var buf sfnt.Buffer
	m, err := source.rastFont.Metrics(&buf, fixed.Int26_6(size*64), xfont.HintingFull)
	if err != nil {
		return nil, ErrEmptyFont
	}
	f.metrics = Metrics{
		Ascent:  fixed26_6To32(m.Ascent),
		Descent: fixed26_6To32(m.Descent),
		Height:  fixed26_6To32(m.Height),
	}
	return f, nil
}

// Size returns the face's pixel size.
func (f *Face) Size() float64 { return f.size }

// Metrics returns the face's vertical metrics.
func (f *Face) Metrics() Metrics { return f.metrics }

// Source returns the face's font source.
func (f *Face) Source() *FontSource { return f.source }

// Measure returns the horizontal advance of s in pixels.
func (f *Face) Measure(s string) float32 {
	return f.shaper.Advance(f.source, f.size, s)
}

// Layout shapes s and returns its visible glyphs with atlas regions,
// rasterizing and packing any glyph seen for the first time. The atlas
// texture is flushed before returning, so the glyphs are immediately
// drawable.
func (f *Face) Layout(s string) ([]Glyph, error) {
	shaped := f.shaper.Shape(f.source, f.size, s)
	if len(shaped) == 0 {
		return nil, nil
	}

	atlasSize := float32(f.atlas.Size())
	out := make([]Glyph, 0, len(shaped))
	for _, sg := range shaped {
		slot, err := f.glyphSlot(sg.gid)
		if err != nil {
			return nil, err
		}
		if !slot.region.IsValid() {
			continue // invisible glyph
		}
		out = append(out, Glyph{
			X: sg.x + slot.offX,
			Y: sg.y + slot.offY,
			W: float32(slot.region.Width),
			H: float32(slot.region.Height),

			U0: float32(slot.region.X) / atlasSize,
			V0: float32(slot.region.Y) / atlasSize,
			U1: float32(slot.region.X+slot.region.Width) / atlasSize,
			V1: float32(slot.region.Y+slot.region.Height) / atlasSize,
		})
	}

	if err := f.atlas.Flush(); err != nil {
		return nil, err
	}
	// The texture may not exist until the first Flush.
	tex := f.atlas.Texture()
	for i := range out {
		out[i].Texture = tex
	}
	return out, nil
}

// glyphSlot returns the atlas slot for gid, rasterizing on a miss.
func (f *Face) glyphSlot(gid uint16) (glyphSlot, error) {
	key := glyphKey{source: f.source.id, size: fixed.Int26_6(f.size * 64), gid: gid}
	if slot, ok := f.cache.Get(key); ok {
		return slot, nil
	}

	f.rastMu.Lock()
	rg, err := rasterizeGlyph(f.source.rastFont, &f.rastBuf, gid, f.size)
	f.rastMu.Unlock()
	if err != nil {
		return glyphSlot{}, err
	}

	var slot glyphSlot
	if rg.mask != nil {
		region, err := f.atlas.add(rg.mask)
		if err != nil {
			return glyphSlot{}, err
		}
		slot = glyphSlot{region: region, offX: rg.offX, offY: rg.offY}
	}
	f.cache.Set(key, slot)
	return slot, nil
}

// CacheStats returns the face's glyph cache counters.
func (f *Face) CacheStats() cache.Stats {
	return f.cache.Stats()
}
