package text

import (
	"image"
	"sync"

	"github.com/gogpu/sprite/gpucore"
)

// TextureUploader is the slice of a draw backend the atlas needs:
// texture creation and whole-texture updates. Both shipped backends
// implement it.
type TextureUploader interface {
	CreateTexture(width, height int, pixels []byte) (gpucore.TextureID, error)
	UpdateTexture(id gpucore.TextureID, pixels []byte) error
}

// Region is an allocated rectangle inside the atlas, in pixels.
type Region struct {
	X, Y          int
	Width, Height int
}

// IsValid reports whether the region holds an actual allocation.
func (r Region) IsValid() bool { return r.Width > 0 && r.Height > 0 }

const (
	// DefaultAtlasSize is the atlas edge length in pixels. 1024x1024
	// holds several complete Latin faces at UI sizes.
	DefaultAtlasSize = 1024

	// atlasPadding separates entries so linear sampling never bleeds
	// a neighbor in.
	atlasPadding = 1
)

// shelf is one horizontal strip of the shelf-packing allocator.
type shelf struct {
	y      int
	height int
	nextX  int
}

// Atlas is a shelf-packed glyph atlas backed by a single RGBA texture.
// Glyph masks accumulate in CPU-side pixels and upload lazily: Flush
// pushes the pixels to the GPU only when something changed since the
// last upload.
//
// Atlas is safe for concurrent use.
type Atlas struct {
	mu       sync.Mutex
	uploader TextureUploader
	size     int
	pixels   []byte
	shelves  []shelf
	texture  gpucore.TextureID
	dirty    bool
}

// AtlasOption configures NewAtlas.
type AtlasOption func(*Atlas)

// WithAtlasSize overrides the atlas edge length.
func WithAtlasSize(size int) AtlasOption {
	return func(a *Atlas) {
		if size > 0 {
			a.size = size
		}
	}
}

// NewAtlas creates an empty atlas uploading through the given backend.
func NewAtlas(uploader TextureUploader, opts ...AtlasOption) *Atlas {
	a := &Atlas{
		uploader: uploader,
		size:     DefaultAtlasSize,
	}
	for _, opt := range opts {
		opt(a)
	}
	a.pixels = make([]byte, a.size*a.size*4)
	return a
}

// Size returns the atlas edge length in pixels.
func (a *Atlas) Size() int { return a.size }

// Texture returns the atlas texture ID, or gpucore.InvalidID before
// the first Flush.
func (a *Atlas) Texture() gpucore.TextureID {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.texture
}

// add copies a glyph alpha mask into the atlas as premultiplied white
// pixels and returns its region. Returns ErrAtlasFull when no shelf
// can hold it.
func (a *Atlas) add(mask *image.Alpha) (Region, error) {
	b := mask.Bounds()
	w, h := b.Dx(), b.Dy()

	a.mu.Lock()
	defer a.mu.Unlock()

	region := a.allocate(w, h)
	if !region.IsValid() {
		return Region{}, ErrAtlasFull
	}

	for y := 0; y < h; y++ {
		srcRow := mask.Pix[(y+b.Min.Y-mask.Rect.Min.Y)*mask.Stride:]
		dstRow := a.pixels[((region.Y+y)*a.size+region.X)*4:]
		for x := 0; x < w; x++ {
			alpha := srcRow[x+b.Min.X-mask.Rect.Min.X]
			o := x * 4
			dstRow[o+0] = alpha
			dstRow[o+1] = alpha
			dstRow[o+2] = alpha
			dstRow[o+3] = alpha
		}
	}
	a.dirty = true
	return region, nil
}

// allocate finds room for a w x h rectangle. Caller holds a.mu.
func (a *Atlas) allocate(w, h int) Region {
	if w <= 0 || h <= 0 {
		return Region{}
	}
	pw, ph := w+atlasPadding, h+atlasPadding
	if pw > a.size || ph > a.size {
		return Region{}
	}

	// Existing shelf with room.
	for i := range a.shelves {
		s := &a.shelves[i]
		if s.nextX+pw > a.size {
			continue
		}
		if ph > s.height {
			// A shelf's height is fixed by its first occupant.
			continue
		}
		r := Region{X: s.nextX, Y: s.y, Width: w, Height: h}
		s.nextX += pw
		return r
	}

	// New shelf below the last one.
	y := 0
	if n := len(a.shelves); n > 0 {
		last := &a.shelves[n-1]
		y = last.y + last.height
	}
	if y+ph > a.size {
		return Region{}
	}
	a.shelves = append(a.shelves, shelf{y: y, height: ph, nextX: pw})
	return Region{X: 0, Y: y, Width: w, Height: h}
}

// Flush uploads pending pixel changes to the GPU texture, creating it
// on first use. A clean atlas is a no-op.
func (a *Atlas) Flush() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.dirty {
		return nil
	}
	if a.uploader == nil {
		return ErrNilUploader
	}
	if a.texture == gpucore.InvalidID {
		id, err := a.uploader.CreateTexture(a.size, a.size, a.pixels)
		if err != nil {
			return err
		}
		a.texture = id
	} else {
		if err := a.uploader.UpdateTexture(a.texture, a.pixels); err != nil {
			return err
		}
	}
	a.dirty = false
	return nil
}

// Utilization returns the fraction of shelf area in use, for sizing
// diagnostics.
func (a *Atlas) Utilization() float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	used := 0
	for i := range a.shelves {
		used += a.shelves[i].nextX * a.shelves[i].height
	}
	total := a.size * a.size
	if total == 0 {
		return 0
	}
	return float64(used) / float64(total)
}
