package longmap

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// requireChain fails if the tail doesn't point at the last node reachable
// from head. Returns the chain length.
func requireChain[V any](t *testing.T, b *bucket[V]) int {
	t.Helper()

	if b.head == nil {
		require.Nil(t, b.tail, "empty chain with a dangling tail")
		return 0
	}

	l := 1
	last := b.head
	for last.next != nil {
		last = last.next
		l++
	}

	require.Same(t, last, b.tail, "tail is not the last node of the chain")
	require.Nil(t, b.tail.next)

	return l
}

// requireTable checks every chain, bucket placement and the size counters.
func requireTable[V comparable](t *testing.T, tt *table[V]) {
	t.Helper()

	require.True(t, isPowerOf2(uint64(len(tt.buckets))))
	require.Equal(t, uint64(len(tt.buckets)-1), tt.mask)
	require.Equal(t, thresholdFor(uint64(len(tt.buckets)), tt.loadFactor), tt.threshold)

	total := 0
	for idx, b := range tt.buckets {
		if b == nil {
			continue
		}

		total += requireChain(t, b)

		seen := map[int64]struct{}{}
		for n := b.head; n != nil; n = n.next {
			require.Equalf(t, uint64(idx), bucketIndex(n.key, tt.mask), "key %d in the wrong bucket", n.key)

			_, dup := seen[n.key]
			require.Falsef(t, dup, "key %d stored twice", n.key)
			seen[n.key] = struct{}{}
		}
	}

	require.Equal(t, total, tt.size)
	require.LessOrEqual(t, tt.size, tt.threshold)
}
