package text

import (
	"bytes"
	"os"
	"sync/atomic"

	"github.com/go-text/typesetting/font"
	"golang.org/x/image/font/sfnt"
)

var nextSourceID atomic.Uint64

// FontSource is a parsed font file. The same source backs every face
// size; it holds two parsed views of the data: a go-text font for
// shaping and an sfnt font for outline rasterization and metrics.
//
// FontSource is safe for concurrent use. Both parsed forms are
// read-only; per-call mutable state (sfnt.Buffer, shaper buffers)
// lives in Face and Shaper.
type FontSource struct {
	id   uint64
	data []byte
	name string

	shapeFont *font.Font
	rastFont  *sfnt.Font
}

// NewFontSource parses TTF/OTF font data. The data is retained; the
// caller must not modify it afterwards.
func NewFontSource(data []byte) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFont
	}

	shaped, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, ErrEmptyFont
	}
	rast, err := sfnt.Parse(data)
	if err != nil {
		return nil, ErrEmptyFont
	}

	name := ""
	if n, err := rast.Name(nil, sfnt.NameIDFamily); err == nil {
		name = n
	}

	return &FontSource{
		id:        nextSourceID.Add(1),
		data:      data,
		name:      name,
		shapeFont: shaped.Font,
		rastFont:  rast,
	}, nil
}

// NewFontSourceFromFile reads and parses a font file.
func NewFontSourceFromFile(path string) (*FontSource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return NewFontSource(data)
}

// Name returns the font family name, or "" if the font has none.
func (s *FontSource) Name() string { return s.name }

// NewFace creates a sized face rendering into the given atlas.
func (s *FontSource) NewFace(size float64, atlas *Atlas) (*Face, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}
	if atlas == nil {
		return nil, ErrNilAtlas
	}
	return newFace(s, size, atlas)
}
