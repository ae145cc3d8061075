package text

import "errors"

// Package errors.
var (
	// ErrEmptyFont is returned when font data is empty or unparsable.
	ErrEmptyFont = errors.New("text: font data is empty or invalid")

	// ErrNilUploader is returned when an atlas is created without a
	// texture uploader.
	ErrNilUploader = errors.New("text: texture uploader is required")

	// ErrNilAtlas is returned when a face is created without an atlas.
	ErrNilAtlas = errors.New("text: atlas is required")

	// ErrAtlasFull is returned when a glyph does not fit in the atlas.
	ErrAtlasFull = errors.New("text: atlas is full")

	// ErrInvalidSize is returned for non-positive font sizes.
	ErrInvalidSize = errors.New("text: font size must be positive")
)
