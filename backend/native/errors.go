package native

import "errors"

// Backend errors.
var (
	// ErrNoProvider is returned when the backend is constructed without
	// a device provider.
	ErrNoProvider = errors.New("native: device provider is required")

	// ErrNoHALDevice is returned when the provider does not expose a
	// usable HAL device and queue.
	ErrNoHALDevice = errors.New("native: provider does not expose HAL device")

	// ErrNoTarget is returned when a flush runs before a render target
	// was set.
	ErrNoTarget = errors.New("native: no render target set")

	// ErrTextureNotFound is returned for operations on an unknown or
	// destroyed texture ID.
	ErrTextureNotFound = errors.New("native: texture not found")

	// ErrNoOpenPass is returned when a draw call arrives without a
	// preceding ApplyRenderState.
	ErrNoOpenPass = errors.New("native: no render pass open")
)
