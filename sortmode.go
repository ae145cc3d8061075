package sprite

import "sort"

// SortMode controls how buffered sprites are ordered before batching.
type SortMode int

const (
	// SortDeferred keeps sprites in submission order and flushes them
	// at End. This is the default.
	SortDeferred SortMode = iota
	// SortImmediate bypasses buffering entirely: every Draw call is
	// flushed to the backend on its own.
	SortImmediate
	// SortTexture groups sprites by texture to minimize draw calls.
	// Sprites sharing a texture keep their submission order.
	SortTexture
	// SortFrontToBack orders sprites by ascending depth.
	SortFrontToBack
	// SortBackToFront orders sprites by descending depth, the usual
	// choice for alpha-blended scenes.
	SortBackToFront
)

func (m SortMode) valid() bool {
	return m >= SortDeferred && m <= SortBackToFront
}

// String returns the mode name.
func (m SortMode) String() string {
	switch m {
	case SortDeferred:
		return "deferred"
	case SortImmediate:
		return "immediate"
	case SortTexture:
		return "texture"
	case SortFrontToBack:
		return "front-to-back"
	case SortBackToFront:
		return "back-to-front"
	default:
		return "unknown"
	}
}

// sortItems orders items according to the mode. All sorts are stable:
// items that compare equal keep their submission order, which the
// Sequence stamp guarantees even if the underlying sort reorders equal
// elements.
func sortItems(items []DrawItem, mode SortMode) error {
	switch mode {
	case SortDeferred, SortImmediate:
		// Submission order; nothing to do.
		return nil
	case SortTexture:
		sort.SliceStable(items, func(i, j int) bool {
			if items[i].Texture != items[j].Texture {
				return items[i].Texture < items[j].Texture
			}
			return items[i].Sequence < items[j].Sequence
		})
		return nil
	case SortFrontToBack:
		sort.SliceStable(items, func(i, j int) bool {
			if items[i].SortKey != items[j].SortKey {
				return items[i].SortKey < items[j].SortKey
			}
			return items[i].Sequence < items[j].Sequence
		})
		return nil
	case SortBackToFront:
		sort.SliceStable(items, func(i, j int) bool {
			if items[i].SortKey != items[j].SortKey {
				return items[i].SortKey > items[j].SortKey
			}
			return items[i].Sequence < items[j].Sequence
		})
		return nil
	default:
		return ErrUnknownSortMode
	}
}
