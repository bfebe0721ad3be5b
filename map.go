package longmap

import (
	"fmt"
	"iter"
	"strings"
)

// LongMap maps int64 keys to values using separate chaining.
//
// A key's bucket is its raw bit pattern masked by the bucket array length,
// there is no hash function. The bucket array doubles once the number of
// entries exceeds capacity * load factor.
//
// LongMap is not safe for concurrent use. Callers sharing a map between
// goroutines must serialize every call, reads included, e.g. with a
// sync.Mutex.
type LongMap[V comparable] struct {
	table[V]
}

// Returns a new, empty map.
func New[V comparable](opts ...Option) *LongMap[V] {
	var m LongMap[V]
	m.init(opts...)

	return &m
}

// Stores value under key, replacing any previous value. A replaced key
// moves to the end of its bucket chain.
func (m *LongMap[V]) Put(key int64, value V) {
	m.put(key, value)
}

// Returns the value stored under key.
// Fails with ErrBucketUninitialized if no key ever landed in the key's
// bucket, and with ErrValueNotFound if the bucket doesn't hold the key.
func (m *LongMap[V]) Get(key int64) (V, error) {
	return m.get(key)
}

// Deletes key and returns the value it held, and whether it was present.
// Fails with ErrBucketUninitialized if no key ever landed in the key's
// bucket.
func (m *LongMap[V]) Remove(key int64) (V, bool, error) {
	return m.remove(key)
}

// Checks whether a key is in the map. Unlike Get, it never fails.
func (m *LongMap[V]) ContainsKey(key int64) bool {
	return m.containsKey(key)
}

// Checks whether any key holds value. Scans the whole map.
//
// Values are compared with ==. When V is an interface type, comparing
// values whose dynamic type isn't comparable (slices, maps, funcs) panics,
// just like == does.
func (m *LongMap[V]) ContainsValue(value V) bool {
	return m.containsValue(value)
}

// Returns all keys in bucket order, each bucket in chain order.
func (m *LongMap[V]) Keys() []int64 {
	return m.keys()
}

// Returns all values in the same order as Keys.
func (m *LongMap[V]) Values() []V {
	return m.values()
}

// All iterates over entries in the same order as Keys.
// The map must not be modified during iteration.
func (m *LongMap[V]) All() iter.Seq2[int64, V] {
	return func(yield func(int64, V) bool) {
		m.each(func(n *node[V]) bool {
			return yield(n.key, n.value)
		})
	}
}

func (m *LongMap[V]) Size() int {
	return m.size
}

func (m *LongMap[V]) IsEmpty() bool {
	return m.size == 0
}

// Current length of the bucket array.
func (m *LongMap[V]) Capacity() int {
	return m.capacity()
}

// Drops every entry and shrinks the bucket array back to the initial
// capacity.
func (m *LongMap[V]) Clear() {
	m.clear()
}

func (m *LongMap[V]) Stats() Stats {
	return m.stats()
}

// ToMap copies all entries into a builtin map.
func (m *LongMap[V]) ToMap() map[int64]V {
	out := make(map[int64]V, m.size)
	for k, v := range m.All() {
		out[k] = v
	}

	return out
}

// String implements fmt.Stringer. Entries are printed in key order.
func (m *LongMap[V]) String() string {
	return strings.Replace(fmt.Sprint(m.ToMap()), "map[", "LongMap[", 1)
}
