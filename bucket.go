package longmap

// node is a single entry of a chain.
type node[V any] struct {
	key   int64
	value V

	// next is the following entry in the same chain, nil at the tail.
	next *node[V]
}

// bucket is a singly linked chain of entries sharing one bucket index.
//
// head owns the chain. tail is an auxiliary reference into the same chain
// used for O(1) appends; every structural mutation below keeps it pointing
// at the last node, or nil when the chain is empty.
type bucket[V any] struct {
	head *node[V]
	tail *node[V]
}

// setHead makes a new node the sole entry of a freshly allocated bucket.
func (b *bucket[V]) setHead(key int64, value V) {
	n := &node[V]{key: key, value: value}
	b.head = n
	b.tail = n
}

// addBack appends a new node at the tail.
func (b *bucket[V]) addBack(key int64, value V) {
	n := &node[V]{key: key, value: value}

	if b.tail == nil {
		b.head = n
	} else {
		b.tail.next = n
	}

	b.tail = n
}

// upsert stores value under key. An existing entry is unlinked and a fresh
// one is appended at the tail, so an updated key always ends up last.
// Returns whether the chain gained an entry.
func (b *bucket[V]) upsert(key int64, value V) bool {
	for n := b.head; n != nil; n = n.next {
		if n.key == key {
			b.deleteNode(key)
			b.addBack(key, value)

			return false
		}
	}

	b.addBack(key, value)

	return true
}

// deleteNode unlinks the entry with the given key and returns its value.
// Deleting a key that isn't in the chain is a no-op, including on a
// single-entry chain.
func (b *bucket[V]) deleteNode(key int64) (V, bool) {
	var zero V

	// Empty chain.
	if b.head == nil {
		return zero, false
	}

	// Head matches, which also covers the single-entry chain.
	if b.head.key == key {
		n := b.head
		b.head = n.next
		if b.head == nil {
			b.tail = nil
		}

		return n.value, true
	}

	// Interior or tail.
	for prev := b.head; prev.next != nil; prev = prev.next {
		n := prev.next
		if n.key != key {
			continue
		}

		prev.next = n.next
		if b.tail == n {
			b.tail = prev
		}

		return n.value, true
	}

	return zero, false
}

// find returns the entry with the given key.
func (b *bucket[V]) find(key int64) (*node[V], bool) {
	for n := b.head; n != nil; n = n.next {
		if n.key == key {
			return n, true
		}
	}

	return nil, false
}

// each walks the chain head to tail until fn returns false.
// Returns false if the walk was stopped early.
func (b *bucket[V]) each(fn func(n *node[V]) bool) bool {
	for n := b.head; n != nil; n = n.next {
		if !fn(n) {
			return false
		}
	}

	return true
}

func (b *bucket[V]) len() int {
	l := 0
	for n := b.head; n != nil; n = n.next {
		l++
	}

	return l
}

func (b *bucket[V]) empty() bool {
	return b.head == nil
}
