package sprite

import "image/color"

// Color is a 32-bit RGBA color with 8 bits per channel, stored
// non-premultiplied. It packs into a single uint32 in the vertex
// stream, so tinting a sprite costs nothing beyond the vertex write.
type Color struct {
	R, G, B, A uint8
}

// Common colors.
var (
	White       = Color{255, 255, 255, 255}
	Black       = Color{0, 0, 0, 255}
	Red         = Color{255, 0, 0, 255}
	Green       = Color{0, 255, 0, 255}
	Blue        = Color{0, 0, 255, 255}
	Transparent = Color{0, 0, 0, 0}
)

// RGBA creates a color from 8-bit channel values.
func RGBA(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// FromColor converts a standard library color.Color.
func FromColor(c color.Color) Color {
	if c, ok := c.(color.NRGBA); ok {
		return Color{R: c.R, G: c.G, B: c.B, A: c.A}
	}
	r, g, b, a := c.RGBA()
	if a == 0 {
		return Transparent
	}
	// Un-premultiply back to straight alpha.
	return Color{
		R: uint8((r * 0xFF) / a),
		G: uint8((g * 0xFF) / a),
		B: uint8((b * 0xFF) / a),
		A: uint8(a >> 8),
	}
}

// Packed returns the color packed as 0xAABBGGRR, the byte order the
// vertex layout expects (R in the lowest byte).
func (c Color) Packed() uint32 {
	return uint32(c.R) | uint32(c.G)<<8 | uint32(c.B)<<16 | uint32(c.A)<<24
}

// WithAlpha returns the color with a replaced alpha channel.
func (c Color) WithAlpha(a uint8) Color {
	c.A = a
	return c
}

// RGBA implements the color.Color interface, returning premultiplied
// 16-bit channels.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}
