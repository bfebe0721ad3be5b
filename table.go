package longmap

import (
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

type table[V comparable] struct {
	// Bucket slots, nil until the first key lands in them.
	// len(buckets) is always a power of two.
	buckets []*bucket[V]

	mask      uint64
	size      int
	threshold int

	loadFactor      float64
	initialCapacity uint64
	grows           int

	logger *zap.Logger
}

func (t *table[V]) init(opts ...Option) {
	cfg := newConfig(opts...)

	t.loadFactor = cfg.loadFactor
	t.initialCapacity = cfg.initialCapacity
	t.logger = cfg.logger

	t.reset(t.initialCapacity)
}

// reset drops every entry and starts over with a fresh bucket array.
func (t *table[V]) reset(capacity uint64) {
	if !isPowerOf2(capacity) {
		panic(errors.AssertionFailedf("longmap: capacity %d is not a power of two", capacity))
	}

	t.buckets = make([]*bucket[V], capacity)
	t.mask = capacity - 1
	t.size = 0
	t.threshold = thresholdFor(capacity, t.loadFactor)
}

func (t *table[V]) capacity() int {
	return len(t.buckets)
}

func (t *table[V]) index(key int64) uint64 {
	return bucketIndex(key, t.mask)
}

func (t *table[V]) put(key int64, value V) {
	idx := t.index(key)

	b := t.buckets[idx]
	if b == nil {
		b = &bucket[V]{}
		b.setHead(key, value)
		t.buckets[idx] = b
	} else if !b.upsert(key, value) {
		return
	}

	t.size++
	if t.size > t.threshold {
		t.grow()
	}
}

// grow rebuilds the table into a bucket array twice as large. The new
// array is filled completely before it replaces the old one.
func (t *table[V]) grow() {
	oldCapacity := uint64(len(t.buckets))
	newCapacity := oldCapacity << 1

	// Tiny load factors can leave a single doubling short.
	for newCapacity < maxCapacity && thresholdFor(newCapacity, t.loadFactor) < t.size {
		newCapacity <<= 1
	}

	if newCapacity > maxCapacity || thresholdFor(newCapacity, t.loadFactor) < t.size {
		panic(errors.AssertionFailedf("longmap: cannot grow past capacity %d with load factor %v",
			oldCapacity, t.loadFactor))
	}

	buckets := make([]*bucket[V], newCapacity)
	mask := newCapacity - 1

	for _, b := range t.buckets {
		if b == nil {
			continue
		}

		b.each(func(n *node[V]) bool {
			idx := bucketIndex(n.key, mask)
			if buckets[idx] == nil {
				buckets[idx] = &bucket[V]{}
				buckets[idx].setHead(n.key, n.value)
			} else {
				buckets[idx].addBack(n.key, n.value)
			}

			return true
		})
	}

	t.buckets = buckets
	t.mask = mask
	t.threshold = thresholdFor(newCapacity, t.loadFactor)
	t.grows++

	t.logger.Debug("long map grown",
		zap.Uint64("old-capacity", oldCapacity),
		zap.Uint64("new-capacity", newCapacity),
		zap.Int("size", t.size),
		zap.Int("threshold", t.threshold),
	)
}

func (t *table[V]) get(key int64) (V, error) {
	var zero V

	idx := t.index(key)
	b := t.buckets[idx]
	if b == nil {
		return zero, bucketUninitialized(key, idx)
	}

	n, ok := b.find(key)
	if !ok {
		return zero, valueNotFound(key, idx)
	}

	return n.value, nil
}

func (t *table[V]) remove(key int64) (V, bool, error) {
	idx := t.index(key)
	b := t.buckets[idx]
	if b == nil {
		var zero V
		return zero, false, bucketUninitialized(key, idx)
	}

	v, ok := b.deleteNode(key)
	if ok {
		t.size--
	}

	return v, ok, nil
}

func (t *table[V]) containsKey(key int64) bool {
	b := t.buckets[t.index(key)]
	if b == nil {
		return false
	}

	_, ok := b.find(key)

	return ok
}

func (t *table[V]) containsValue(value V) bool {
	found := false
	t.each(func(n *node[V]) bool {
		found = n.value == value
		return !found
	})

	return found
}

// each visits entries in bucket array order, each chain head to tail,
// until fn returns false.
func (t *table[V]) each(fn func(n *node[V]) bool) {
	for _, b := range t.buckets {
		if b == nil {
			continue
		}

		if !b.each(fn) {
			return
		}
	}
}

func (t *table[V]) keys() []int64 {
	keys := make([]int64, 0, t.size)
	t.each(func(n *node[V]) bool {
		keys = append(keys, n.key)
		return true
	})

	return keys
}

func (t *table[V]) values() []V {
	values := make([]V, 0, t.size)
	t.each(func(n *node[V]) bool {
		values = append(values, n.value)
		return true
	})

	return values
}

// clear returns the table to its initial capacity.
func (t *table[V]) clear() {
	size := t.size
	t.reset(t.initialCapacity)

	t.logger.Debug("long map cleared",
		zap.Int("dropped", size),
		zap.Uint64("capacity", t.initialCapacity),
	)
}

func (t *table[V]) stats() Stats {
	s := Stats{
		Size:       t.size,
		Capacity:   len(t.buckets),
		Threshold:  t.threshold,
		LoadFactor: t.loadFactor,
		Grows:      t.grows,
	}

	for _, b := range t.buckets {
		if b == nil {
			continue
		}

		s.Buckets++
		if b.empty() {
			s.EmptyBuckets++
			continue
		}
		s.LongestChain = max(s.LongestChain, b.len())
	}

	return s
}
