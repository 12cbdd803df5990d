package alloc

// Stats is a snapshot of the region sequence produced by a read-only
// traversal.
type Stats struct {
	TotalRegions int
	UsedRegions  int
	FreeRegions  int
	UsedBytes    int64 // sum of payload bytes over in-use regions
	FreeBytes    int64 // sum of payload bytes over free regions
}

// TotalBytes returns the tracked payload bytes, used plus free.
func (s Stats) TotalBytes() int64 {
	return s.UsedBytes + s.FreeBytes
}

// Fragmentation returns the free share of tracked bytes as a percentage.
// ok is false when no bytes are tracked and the ratio is not applicable.
func (s Stats) Fragmentation() (pct float64, ok bool) {
	total := s.TotalBytes()
	if total == 0 {
		return 0, false
	}
	return float64(s.FreeBytes) / float64(total) * 100, true
}

// Stats walks the region sequence and sums counts and payload bytes per
// state. The heap is not mutated.
func (h *Heap) Stats() Stats {
	var s Stats
	if h.closed {
		return s
	}
	for ri := h.head; ri != noRegion; ri = h.regions[ri].next {
		r := h.regions[ri]
		s.TotalRegions++
		if r.free {
			s.FreeRegions++
			s.FreeBytes += int64(r.size)
		} else {
			s.UsedRegions++
			s.UsedBytes += int64(r.size)
		}
	}
	return s
}

// Metrics holds cumulative operation counters for instrumentation and tests.
type Metrics struct {
	AllocCalls    int
	AllocFastPath int // satisfied from an existing free region
	AllocSlowPath int // required arena growth
	FreeCalls     int
	ResizeCalls   int

	GrowCalls int
	GrowBytes int64

	SplitCount       int
	CoalesceForward  int
	CoalesceBackward int

	BytesAllocated int64
	BytesFreed     int64
}

// Metrics returns the cumulative counters.
func (h *Heap) Metrics() Metrics {
	return h.metrics
}
