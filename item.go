package sprite

import "github.com/gogpu/sprite/gpucore"

// DrawItem is one buffered sprite awaiting flush. Sequence records the
// submission order so that sorts which compare equal keys can fall back
// to it and stay stable.
type DrawItem struct {
	Texture  gpucore.TextureID
	Quad     Quad
	SortKey  float32
	Sequence uint32
}

// itemBuffer accumulates draw items between Begin and End. Capacity is
// kept across Reset so a steady-state frame allocates nothing.
type itemBuffer struct {
	items []DrawItem
	seq   uint32
}

const initialItemCapacity = 64

// Push appends an item, stamping its sequence number.
func (b *itemBuffer) Push(it DrawItem) {
	if len(b.items) == cap(b.items) {
		b.grow(1)
	}
	it.Sequence = b.seq
	b.seq++
	b.items = append(b.items, it)
}

// grow extends capacity to hold n more items, doubling to amortize.
func (b *itemBuffer) grow(n int) {
	sz := 2 * cap(b.items)
	if sz < initialItemCapacity {
		sz = initialItemCapacity
	}
	if sz < len(b.items)+n {
		sz = len(b.items) + n
	}
	items := make([]DrawItem, len(b.items), sz)
	copy(items, b.items)
	b.items = items
}

// Len returns the number of buffered items.
func (b *itemBuffer) Len() int { return len(b.items) }

// Reset empties the buffer without releasing its backing storage and
// restarts sequence numbering for the next frame.
func (b *itemBuffer) Reset() {
	b.items = b.items[:0]
	b.seq = 0
}

// At returns a pointer to the i-th buffered item.
func (b *itemBuffer) At(i int) *DrawItem { return &b.items[i] }
