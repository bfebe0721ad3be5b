package longmap

import (
	"math"
	"math/bits"
)

// Largest bucket array length the map will ever ask for.
const maxCapacity = 1 << 40

// Returns the next power of 2 for the given value `v`.
// Zero and one both yield 1.
func NextPowerOf2(v uint64) uint64 {
	if v <= 1 {
		return 1
	}

	return uint64(1) << min(bits.Len64(v-1), 63)
}

// Returns the smallest power-of-two capacity able to hold `n` entries
// at the given load factor without growing, capped at 1<<40.
func CapacityFor(n int, loadFactor float64) int {
	if n <= 0 {
		return 1
	}

	need := math.Ceil(float64(n) / loadFactor)
	if need >= maxCapacity {
		return maxCapacity
	}

	capacity := NextPowerOf2(uint64(need))
	for capacity < maxCapacity && thresholdFor(capacity, loadFactor) < n {
		capacity <<= 1
	}

	return int(capacity)
}

// Number of entries a table of the given capacity holds before growing.
// The product is truncated and saturates at math.MaxInt.
func thresholdFor(capacity uint64, loadFactor float64) int {
	t := float64(capacity) * loadFactor
	if t >= math.MaxInt {
		return math.MaxInt
	}

	return int(t)
}
