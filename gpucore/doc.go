// Package gpucore provides the shared GPU abstractions for the sprite
// batching pipeline.
//
// This package defines the [DrawBackend] interface, which abstracts over
// different GPU backend implementations, allowing the same batching and
// coalescing algorithms to work with:
//   - gogpu/wgpu (Pure Go WebGPU via HAL)
//   - a recording backend (pure Go, for tests and tooling)
//
// # Architecture
//
// The batching core (package sprite) never talks to a graphics API
// directly. It accumulates draw items, sorts and coalesces them, and
// hands the resulting vertex stream and draw calls to a DrawBackend:
//
//	              +-----------------+
//	              |     sprite      |
//	              |  (SpriteBatch)  |
//	              +--------+--------+
//	                       |
//	        +--------------+--------------+
//	        |                             |
//	+-------v--------+           +--------v--------+
//	| native backend |           | record backend  |
//	|  (wgpu/hal)    |           |   (pure Go)     |
//	+----------------+           +-----------------+
//
// One concrete backend exists per package under backend/; the backend is
// selected once at construction time, never via per-call conditionals.
//
// # Resource Management
//
// GPU textures are addressed via opaque handles ([TextureID]). The
// backend owns the mapping between handles and actual GPU resources;
// two draw items coalesce into one draw call iff their handles compare
// equal. A handle stays valid until the backend's DestroyTexture is
// called for it; issuing a draw against a destroyed handle is a caller
// error, reported at submit time.
package gpucore
