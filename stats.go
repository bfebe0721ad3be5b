package longmap

// Stats is a point-in-time snapshot of the table layout.
type Stats struct {
	Size       int
	Capacity   int
	Threshold  int
	LoadFactor float64

	// Allocated bucket slots, including the ones emptied by removals.
	Buckets      int
	EmptyBuckets int
	LongestChain int

	// Number of times the bucket array has been rebuilt since construction.
	Grows int
}
