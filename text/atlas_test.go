package text

import (
	"errors"
	"image"
	"testing"

	"github.com/gogpu/sprite/gpucore"
)

// fakeUploader counts texture operations for atlas tests.
type fakeUploader struct {
	creates int
	updates int
}

func (u *fakeUploader) CreateTexture(w, h int, pixels []byte) (gpucore.TextureID, error) {
	u.creates++
	return gpucore.TextureID(u.creates), nil
}

func (u *fakeUploader) UpdateTexture(id gpucore.TextureID, pixels []byte) error {
	u.updates++
	return nil
}

func solidMask(w, h int) *image.Alpha {
	m := image.NewAlpha(image.Rect(0, 0, w, h))
	for i := range m.Pix {
		m.Pix[i] = 0xFF
	}
	return m
}

func TestAtlasAllocatesOnShelves(t *testing.T) {
	a := NewAtlas(&fakeUploader{}, WithAtlasSize(64))

	r1, err := a.add(solidMask(20, 10))
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	r2, err := a.add(solidMask(20, 10))
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if r1.Y != r2.Y {
		t.Errorf("same-height masks on different shelves: y=%d vs %d", r1.Y, r2.Y)
	}
	if r2.X <= r1.X {
		t.Errorf("second region not to the right: x=%d after %d", r2.X, r1.X)
	}

	// Taller mask starts a new shelf.
	r3, err := a.add(solidMask(20, 30))
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if r3.Y <= r1.Y {
		t.Errorf("taller mask stayed on shelf: y=%d", r3.Y)
	}
}

func TestAtlasFull(t *testing.T) {
	a := NewAtlas(&fakeUploader{}, WithAtlasSize(32))
	if _, err := a.add(solidMask(40, 40)); !errors.Is(err, ErrAtlasFull) {
		t.Fatalf("oversized add error = %v, want ErrAtlasFull", err)
	}

	// Fill up and overflow.
	for i := 0; ; i++ {
		_, err := a.add(solidMask(10, 10))
		if err != nil {
			if !errors.Is(err, ErrAtlasFull) {
				t.Fatalf("add error = %v, want ErrAtlasFull", err)
			}
			if i == 0 {
				t.Fatal("no allocation succeeded")
			}
			break
		}
		if i > 100 {
			t.Fatal("32x32 atlas never filled")
		}
	}
}

func TestAtlasFlushLazy(t *testing.T) {
	u := &fakeUploader{}
	a := NewAtlas(u, WithAtlasSize(64))

	// Clean atlas: no texture, no upload.
	if err := a.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if u.creates != 0 {
		t.Fatal("clean flush created a texture")
	}
	if a.Texture() != gpucore.InvalidID {
		t.Fatal("texture exists before first upload")
	}

	if _, err := a.add(solidMask(8, 8)); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := a.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if u.creates != 1 || a.Texture() == gpucore.InvalidID {
		t.Fatal("first flush did not create the texture")
	}

	// Unchanged atlas flushes to nothing.
	if err := a.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if u.updates != 0 {
		t.Fatal("clean flush uploaded")
	}

	// New glyph updates in place.
	if _, err := a.add(solidMask(8, 8)); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := a.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if u.creates != 1 || u.updates != 1 {
		t.Fatalf("creates=%d updates=%d, want 1 and 1", u.creates, u.updates)
	}
}

func TestAtlasPixelsPremultipliedWhite(t *testing.T) {
	a := NewAtlas(&fakeUploader{}, WithAtlasSize(16))
	m := image.NewAlpha(image.Rect(0, 0, 2, 1))
	m.Pix[0] = 0x80
	m.Pix[1] = 0x00

	r, err := a.add(m)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	o := (r.Y*a.size + r.X) * 4
	for c := 0; c < 4; c++ {
		if a.pixels[o+c] != 0x80 {
			t.Fatalf("channel %d = %#x, want 0x80", c, a.pixels[o+c])
		}
	}
	if a.pixels[o+4] != 0 {
		t.Fatalf("transparent texel = %#x, want 0", a.pixels[o+4])
	}
}
