package sprite

// beginConfig holds the per-frame settings chosen at Begin.
type beginConfig struct {
	sortMode  SortMode
	transform Affine
}

func defaultBeginConfig() beginConfig {
	return beginConfig{
		sortMode:  SortDeferred,
		transform: Identity(),
	}
}

// BeginOption configures one Begin/End frame.
type BeginOption func(*beginConfig)

// WithSortMode selects how buffered sprites are ordered before
// batching. The default is SortDeferred.
func WithSortMode(m SortMode) BeginOption {
	return func(c *beginConfig) {
		c.sortMode = m
	}
}

// WithTransform sets a transform applied to every sprite drawn in the
// frame, typically a camera or viewport matrix. The default is the
// identity.
func WithTransform(m Affine) BeginOption {
	return func(c *beginConfig) {
		c.transform = m
	}
}
