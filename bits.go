package longmap

// bucketIndex returns the slot of key in a bucket array whose length is mask+1.
//
// The key's two's-complement bit pattern is reinterpreted as unsigned before
// masking, so negative keys land on the same slot on every platform
// (e.g. -127 & 15 == 1).
//
//go:inline
func bucketIndex(key int64, mask uint64) uint64 {
	return uint64(key) & mask
}

// isPowerOf2 reports whether v is a non-zero power of two.
//
//go:inline
func isPowerOf2(v uint64) bool {
	return v != 0 && v&(v-1) == 0
}
