// Package backend provides the draw backend registry for the sprite
// library.
//
// Backends implement gpucore.DrawBackend and register themselves by
// name from an init function, following the database/sql driver
// pattern. Importing a backend package for its side effect makes it
// available:
//
//	import _ "github.com/gogpu/sprite/backend/native"
//
//	be, err := backend.New("native", backend.Config{Provider: provider})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	sb, err := sprite.New(be)
//
// Two backends ship with the library:
//
//   - native: submits draw calls through a WebGPU HAL device
//   - record: captures draw calls in memory for tests and tooling
package backend
