package sprite

import "errors"

// Package errors. All failures in this package are programming errors
// (caller misuse or contract violations), not environmental ones; none
// are retryable.
var (
	// ErrNotBegun is returned when Draw or End is called outside a
	// Begin/End pair.
	ErrNotBegun = errors.New("sprite: Begin has not been called")

	// ErrAlreadyBegun is returned when Begin is called twice without an
	// intervening End.
	ErrAlreadyBegun = errors.New("sprite: Begin called inside an open Begin/End pair")

	// ErrNilBackend is returned by New when no backend is supplied.
	ErrNilBackend = errors.New("sprite: backend is nil")

	// ErrInvalidTexture is returned by Draw when the texture handle does
	// not refer to a live texture. Surfaced at submit time so the caller
	// gets a stack at the point of mistake, not at flush.
	ErrInvalidTexture = errors.New("sprite: invalid or destroyed texture handle")

	// ErrUnknownSortMode is returned by Begin for a SortMode value this
	// package does not define. Unrecognized modes are an explicit error,
	// never a silent fallback to depth ordering.
	ErrUnknownSortMode = errors.New("sprite: unknown sort mode")

	// ErrNoFont is returned by DrawString when face is nil.
	ErrNoFont = errors.New("sprite: no font face")
)
