// Package sprite provides a batched 2D sprite renderer for Go.
//
// # Overview
//
// sprite is a Pure Go sprite batching library designed to integrate with
// the GoGPU ecosystem. It accumulates textured quads and glyph runs per
// frame, sorts them according to a configurable policy, coalesces
// contiguous same-texture runs into a minimal number of GPU draw calls,
// and streams vertex data into growable buffers that are reused across
// frames without per-frame allocation.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/sprite"
//	    "github.com/gogpu/sprite/backend"
//	    _ "github.com/gogpu/sprite/backend/native" // register wgpu backend
//	)
//
//	be, err := backend.New("native", backend.Config{Provider: provider})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	sb, err := sprite.New(be)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Each frame:
//	sb.Begin(sprite.WithSortMode(sprite.SortTexture))
//	sb.Draw(tex, sprite.QuadParams{Position: sprite.Pt(100, 100), Size: sprite.Pt(32, 32)})
//	sb.End() // sort, coalesce, submit, reset
//
// # Architecture
//
// The library is organized into:
//   - Public API: SpriteBatch, Color, Point, Rect, Affine, SortMode
//   - gpucore: opaque resource IDs and the DrawBackend contract
//   - backend/: one concrete GPU backend per package, selected by name
//     at construction (native = gogpu/wgpu, record = capture for tests)
//   - text/: font parsing, HarfBuzz shaping, and the glyph atlas behind
//     DrawString
//
// # Batching Model
//
// In the deferred modes, Draw calls only build vertices and append a
// draw item; nothing reaches the GPU until End. End sorts the pending
// items (stable, so equal keys keep submission order), walks them once,
// and emits one draw call per maximal run of items sharing a texture.
// In SortImmediate mode each Draw is submitted synchronously as its own
// draw call and nothing is buffered.
//
// # Concurrency
//
// A SpriteBatch is single-threaded by design: it must be used from the
// thread that owns the GPU context, and Begin/Draw/End calls must not
// overlap. There is no internal locking. Multiple independent
// SpriteBatch instances may exist, each owning its own buffers.
package sprite

// Version information
const (
	// Version is the current version of the library
	Version = "0.2.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 2

	// VersionPatch is the patch version
	VersionPatch = 0
)
