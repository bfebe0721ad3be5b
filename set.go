package longmap

// LongSet is a set of int64 keys. It shares the LongMap table, bucket
// layout and growth rules, and stores no values.
//
// LongSet is not safe for concurrent use.
type LongSet struct {
	t table[struct{}]
}

func NewSet(opts ...Option) *LongSet {
	var ls LongSet
	ls.t.init(opts...)

	return &ls
}

// Puts a key in the set.
// Returns whether the key is new.
func (ls *LongSet) Add(key int64) bool {
	if ls.t.containsKey(key) {
		return false
	}

	ls.t.put(key, struct{}{})

	return true
}

// Checks whether a key is in the set.
func (ls *LongSet) Has(key int64) bool {
	return ls.t.containsKey(key)
}

// Deletes a key from the set.
// Returns false if the key wasn't there, whether or not its bucket was
// ever allocated.
func (ls *LongSet) Remove(key int64) bool {
	_, ok, err := ls.t.remove(key)

	return err == nil && ok
}

func (ls *LongSet) Len() int {
	return ls.t.size
}

// Returns all keys in bucket order, each bucket in chain order.
func (ls *LongSet) Keys() []int64 {
	return ls.t.keys()
}

func (ls *LongSet) Clear() {
	ls.t.clear()
}

func (ls *LongSet) Stats() Stats {
	return ls.t.stats()
}
