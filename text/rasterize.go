package text

import (
	"image"
	"math"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// rasterizedGlyph is a glyph alpha mask plus the offset from the pen
// position (on the baseline) to the mask's top-left corner.
type rasterizedGlyph struct {
	mask *image.Alpha
	offX float32
	offY float32
}

// rasterizeGlyph loads the outline for gid at the given pixel size and
// fills it into an alpha mask. Glyphs with no visible outline (spaces)
// return a nil mask and no error.
func rasterizeGlyph(f *sfnt.Font, buf *sfnt.Buffer, gid uint16, size float64) (rasterizedGlyph, error) {
	ppem := fixed.Int26_6(size * 64)
	segs, err := f.LoadGlyph(buf, sfnt.GlyphIndex(gid), ppem, nil)
	if err != nil {
		return rasterizedGlyph{}, err
	}
	if len(segs) == 0 {
		return rasterizedGlyph{}, nil
	}

	minX, minY, maxX, maxY := segmentBounds(segs)
	// Snap outward to whole pixels.
	x0 := int(math.Floor(float64(minX)))
	y0 := int(math.Floor(float64(minY)))
	x1 := int(math.Ceil(float64(maxX)))
	y1 := int(math.Ceil(float64(maxY)))
	w, h := x1-x0, y1-y0
	if w <= 0 || h <= 0 {
		return rasterizedGlyph{}, nil
	}

	r := vector.NewRasterizer(w, h)
	dx, dy := float32(-x0), float32(-y0)
	for _, seg := range segs {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			r.MoveTo(fixed26_6To32(seg.Args[0].X)+dx, fixed26_6To32(seg.Args[0].Y)+dy)
		case sfnt.SegmentOpLineTo:
			r.LineTo(fixed26_6To32(seg.Args[0].X)+dx, fixed26_6To32(seg.Args[0].Y)+dy)
		case sfnt.SegmentOpQuadTo:
			r.QuadTo(
				fixed26_6To32(seg.Args[0].X)+dx, fixed26_6To32(seg.Args[0].Y)+dy,
				fixed26_6To32(seg.Args[1].X)+dx, fixed26_6To32(seg.Args[1].Y)+dy,
			)
		case sfnt.SegmentOpCubeTo:
			r.CubeTo(
				fixed26_6To32(seg.Args[0].X)+dx, fixed26_6To32(seg.Args[0].Y)+dy,
				fixed26_6To32(seg.Args[1].X)+dx, fixed26_6To32(seg.Args[1].Y)+dy,
				fixed26_6To32(seg.Args[2].X)+dx, fixed26_6To32(seg.Args[2].Y)+dy,
			)
		}
	}
	r.ClosePath()

	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	r.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})

	return rasterizedGlyph{
		mask: mask,
		offX: float32(x0),
		offY: float32(y0),
	}, nil
}

// segmentBounds returns the outline bounding box in pixels. Glyph
// outlines from sfnt are y-down with the origin at the pen position on
// the baseline.
func segmentBounds(segs sfnt.Segments) (minX, minY, maxX, maxY float32) {
	minX = math.MaxFloat32
	minY = math.MaxFloat32
	maxX = -math.MaxFloat32
	maxY = -math.MaxFloat32
	point := func(p fixed.Point26_6) {
		x, y := fixed26_6To32(p.X), fixed26_6To32(p.Y)
		if x < minX {
			minX = x
		}
		if y < minY {
			minY = y
		}
		if x > maxX {
			maxX = x
		}
		if y > maxY {
			maxY = y
		}
	}
	for _, seg := range segs {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo, sfnt.SegmentOpLineTo:
			point(seg.Args[0])
		case sfnt.SegmentOpQuadTo:
			point(seg.Args[0])
			point(seg.Args[1])
		case sfnt.SegmentOpCubeTo:
			point(seg.Args[0])
			point(seg.Args[1])
			point(seg.Args[2])
		}
	}
	return minX, minY, maxX, maxY
}

func fixed26_6To32(v fixed.Int26_6) float32 {
	return float32(v) / 64
}
