// Package cache provides a sharded LRU cache used by the text stack to
// keep rasterized glyphs across frames. Sharding keeps lock contention
// low when several goroutines rasterize glyphs concurrently during
// atlas warm-up.
package cache

import (
	"hash/maphash"
	"sync"
	"sync/atomic"
)

const (
	// ShardCount is the number of shards. Power of two for fast
	// modulo via bitwise AND.
	ShardCount = 16

	// DefaultCapacity is the per-shard entry limit when none is given.
	DefaultCapacity = 256

	shardMask = ShardCount - 1
)

// Hasher computes the shard hash for a key.
type Hasher[K any] func(K) uint64

var hashSeed = maphash.MakeSeed()

// StringHasher hashes a string key.
func StringHasher(s string) uint64 {
	return maphash.String(hashSeed, s)
}

// Uint64Hasher is the identity hash for keys that are already
// well-distributed integers.
func Uint64Hasher(u uint64) uint64 { return u }

// Stats is a snapshot of cache effectiveness counters.
type Stats struct {
	Len       int
	Capacity  int // per shard
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

// HitRate returns the fraction of lookups served from cache.
func (s Stats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}

// Sharded is a thread-safe LRU cache split into ShardCount shards,
// each with its own lock and eviction list. Values are stored as-is;
// callers must not mutate a value after inserting it.
type Sharded[K comparable, V any] struct {
	shards   [ShardCount]shard[K, V]
	hasher   Hasher[K]
	capacity int

	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

type shard[K comparable, V any] struct {
	mu      sync.Mutex
	entries map[K]*entry[K, V]
	// Intrusive doubly-linked LRU list. head is most recently used.
	head *entry[K, V]
	tail *entry[K, V]
}

type entry[K comparable, V any] struct {
	key   K
	value V
	prev  *entry[K, V]
	next  *entry[K, V]
}

// NewSharded creates a cache holding up to capacity entries per shard.
// capacity <= 0 selects DefaultCapacity.
func NewSharded[K comparable, V any](capacity int, hasher Hasher[K]) *Sharded[K, V] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	c := &Sharded[K, V]{hasher: hasher, capacity: capacity}
	for i := range c.shards {
		c.shards[i].entries = make(map[K]*entry[K, V])
	}
	return c
}

func (c *Sharded[K, V]) shardFor(key K) *shard[K, V] {
	return &c.shards[c.hasher(key)&shardMask]
}

// Get returns the cached value for key, marking it most recently used.
func (c *Sharded[K, V]) Get(key K) (V, bool) {
	s := c.shardFor(key)
	s.mu.Lock()
	e, ok := s.entries[key]
	if !ok {
		s.mu.Unlock()
		c.misses.Add(1)
		var zero V
		return zero, false
	}
	s.moveToFront(e)
	value := e.value
	s.mu.Unlock()
	c.hits.Add(1)
	return value, true
}

// Set stores a value, evicting the least recently used entries if the
// shard is full.
func (c *Sharded[K, V]) Set(key K, value V) {
	s := c.shardFor(key)
	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.entries[key]; ok {
		e.value = value
		s.moveToFront(e)
		return
	}
	c.evictLocked(s)
	s.insertFront(key, value)
}

// GetOrCreate returns the cached value for key, calling create to
// produce it on a miss. create runs with the shard lock held so
// concurrent lookups of the same key compute it once; keep it fast.
func (c *Sharded[K, V]) GetOrCreate(key K, create func() V) V {
	s := c.shardFor(key)
	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.entries[key]; ok {
		s.moveToFront(e)
		c.hits.Add(1)
		return e.value
	}
	c.misses.Add(1)
	value := create()
	c.evictLocked(s)
	s.insertFront(key, value)
	return value
}

// Delete removes an entry; reports whether it existed.
func (c *Sharded[K, V]) Delete(key K) bool {
	s := c.shardFor(key)
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[key]
	if !ok {
		return false
	}
	s.unlink(e)
	delete(s.entries, key)
	return true
}

// Clear removes all entries from every shard.
func (c *Sharded[K, V]) Clear() {
	for i := range c.shards {
		s := &c.shards[i]
		s.mu.Lock()
		s.entries = make(map[K]*entry[K, V])
		s.head = nil
		s.tail = nil
		s.mu.Unlock()
	}
}

// Len returns the total entry count across shards.
func (c *Sharded[K, V]) Len() int {
	total := 0
	for i := range c.shards {
		s := &c.shards[i]
		s.mu.Lock()
		total += len(s.entries)
		s.mu.Unlock()
	}
	return total
}

// Stats returns a snapshot of the counters.
func (c *Sharded[K, V]) Stats() Stats {
	return Stats{
		Len:       c.Len(),
		Capacity:  c.capacity,
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Evictions: c.evictions.Load(),
	}
}

// evictLocked makes room for one insertion.
func (c *Sharded[K, V]) evictLocked(s *shard[K, V]) {
	for len(s.entries) >= c.capacity && s.tail != nil {
		oldest := s.tail
		s.unlink(oldest)
		delete(s.entries, oldest.key)
		c.evictions.Add(1)
	}
}

func (s *shard[K, V]) insertFront(key K, value V) {
	e := &entry[K, V]{key: key, value: value}
	e.next = s.head
	if s.head != nil {
		s.head.prev = e
	}
	s.head = e
	if s.tail == nil {
		s.tail = e
	}
	s.entries[key] = e
}

func (s *shard[K, V]) moveToFront(e *entry[K, V]) {
	if e == s.head {
		return
	}
	s.unlink(e)
	e.next = s.head
	if s.head != nil {
		s.head.prev = e
	}
	s.head = e
	if s.tail == nil {
		s.tail = e
	}
}

func (s *shard[K, V]) unlink(e *entry[K, V]) {
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		s.head = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	} else {
		s.tail = e.prev
	}
	e.prev = nil
	e.next = nil
}
