/*
Package longmap provides a hash table keyed by int64, using separate
chaining.

Basic usage:

	m := longmap.New[string]()
	m.Put(31, "a")
	m.Put(-127, "b")

	v, err := m.Get(31)
	if err != nil {
		// errors.Is(err, longmap.ErrBucketUninitialized) or
		// errors.Is(err, longmap.ErrValueNotFound)
	}

Layout:

  - The bucket array length is a power of two (16 by default).
  - A key's bucket is uint64(key) & (capacity - 1). Negative keys use their
    two's-complement bits, so placement is the same on every platform.
  - Each bucket is a singly linked chain kept in insertion order. Updating a
    key moves it to the end of its chain.
  - Once the number of entries exceeds capacity * load factor (0.75 by
    default) the bucket array doubles and every entry is re-inserted.

Keys, Values and All walk buckets in array order and each chain from head to
tail. There is no ordering across buckets.

Neither LongMap nor LongSet is safe for concurrent use.
*/
package longmap
