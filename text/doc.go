// Package text turns strings into atlas-backed glyph quads that batch
// like any other sprite.
//
// The pipeline has three stages:
//
//   - Shaping: go-text/typesetting's HarfBuzz port positions glyphs
//     with kerning, ligatures, and script-aware substitution.
//   - Rasterization: glyph outlines are loaded through x/image's sfnt
//     and filled into alpha masks with x/image/vector.
//   - Atlas packing: masks land in a shelf-packed RGBA atlas texture;
//     a sharded LRU cache keeps each glyph's atlas slot so steady-state
//     frames rasterize nothing.
//
// A typical setup:
//
//	src, err := text.NewFontSourceFromFile("font.ttf")
//	atlas := text.NewAtlas(be) // be is the draw backend
//	face, err := src.NewFace(24, atlas)
//
//	sb.Begin()
//	sb.DrawString(face, "score: 1200", sprite.Pt(8, 24), sprite.White)
//	sb.End()
package text
