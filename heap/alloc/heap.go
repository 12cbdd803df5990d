package alloc

import (
	"fmt"

	"github.com/cheranb/heapkit/internal/arena"
	"github.com/cheranb/heapkit/internal/format"
)

// Heap is a first-fit allocator instance. Each heap owns its own arena and
// descriptor table; independent heaps do not share state. Not goroutine-safe.
type Heap struct {
	ar *arena.Arena

	// regions is the descriptor table. head/tail index the address-ordered
	// doubly-linked sequence; slots recycles table entries of descriptors
	// absorbed during coalescing.
	regions []region
	head    int32
	tail    int32
	slots   []int32

	// byOff maps a payload ref to its descriptor index for O(1) lookup.
	byOff map[Ref]int32

	metrics Metrics
	closed  bool
}

// New creates a heap. A nil config means DefaultConfig.
func New(cfg *Config) (*Heap, error) {
	if cfg == nil {
		cfg = &DefaultConfig
	}
	limit := cfg.ArenaLimit
	if limit <= 0 {
		limit = DefaultArenaLimit
	}
	if limit > maxArenaLimit {
		return nil, fmt.Errorf("alloc: arena limit %d exceeds maximum %d", limit, maxArenaLimit)
	}

	ar, err := arena.New(limit)
	if err != nil {
		return nil, err
	}

	return &Heap{
		ar:    ar,
		head:  noRegion,
		tail:  noRegion,
		byOff: make(map[Ref]int32, 64),
	}, nil
}

// Close releases the arena. Any payload slice previously handed out becomes
// invalid; further heap operations return ErrClosed. Close is idempotent.
func (h *Heap) Close() error {
	if h.closed {
		return nil
	}
	h.closed = true
	return h.ar.Close()
}

// Payload resolves a ref to its current payload view. The slice is valid
// until the heap is closed.
func (h *Heap) Payload(ref Ref) ([]byte, error) {
	if h.closed {
		return nil, ErrClosed
	}
	if ref == NilRef {
		return nil, ErrNilRef
	}
	ri, ok := h.byOff[ref]
	if !ok {
		return nil, ErrBadRef
	}
	return h.payload(ri), nil
}

// Bytes returns the raw in-use arena extent. Read-only inspection surface for
// heap/verify and tests; mutating it corrupts the heap.
func (h *Heap) Bytes() []byte {
	if h.closed {
		return nil
	}
	return h.ar.Bytes()
}

// ArenaSize returns the in-use arena extent in bytes.
func (h *Heap) ArenaSize() int64 {
	if h.closed {
		return 0
	}
	return h.ar.Size()
}

// Snapshot returns the region sequence in address order. Read-only; the heap
// is not mutated.
func (h *Heap) Snapshot() []RegionInfo {
	if h.closed {
		return nil
	}
	out := make([]RegionInfo, 0, len(h.regions)-len(h.slots))
	for ri := h.head; ri != noRegion; ri = h.regions[ri].next {
		r := h.regions[ri]
		out = append(out, RegionInfo{
			Ref:    h.payloadRef(ri),
			Offset: int64(r.off),
			Size:   int(r.size),
			Free:   r.free,
		})
	}
	return out
}

// ============================================================================
// Descriptor table plumbing
// ============================================================================

// slot returns a free descriptor table index, recycling slots of absorbed
// regions before growing the table.
func (h *Heap) slot() int32 {
	if n := len(h.slots); n > 0 {
		ri := h.slots[n-1]
		h.slots = h.slots[:n-1]
		return ri
	}
	h.regions = append(h.regions, region{})
	return int32(len(h.regions) - 1)
}

// recycle returns an absorbed descriptor's slot to the free list. The
// descriptor is not destroyed individually; its arena bytes now belong to the
// absorbing region.
func (h *Heap) recycle(ri int32) {
	h.regions[ri] = region{next: noRegion, prev: noRegion}
	h.slots = append(h.slots, ri)
}

// payloadRef returns the handle for a descriptor: its payload offset.
func (h *Heap) payloadRef(ri int32) Ref {
	return Ref(h.regions[ri].off) + format.HeaderSize
}

// payload returns the region's payload view, capped so writes cannot reach
// the following header.
func (h *Heap) payload(ri int32) []byte {
	r := h.regions[ri]
	buf := h.ar.Bytes()
	p := int(r.off) + format.HeaderSize
	return buf[p : p+int(r.size) : p+int(r.size)]
}

// writeHeader mirrors the descriptor into the in-arena header.
func (h *Heap) writeHeader(ri int32) {
	r := h.regions[ri]
	state := format.StateUsed
	if r.free {
		state = format.StateFree
	}
	format.PutHeader(h.ar.Bytes(), int(r.off), int(r.size), state)
}

// absorbNext merges the successor of ri into ri. The successor must exist.
// Its payload and header bytes become part of ri's payload; its descriptor
// slot is recycled and its handle is dropped from the offset index.
func (h *Heap) absorbNext(ri int32) {
	ni := h.regions[ri].next
	n := h.regions[ni]

	delete(h.byOff, h.payloadRef(ni))
	h.regions[ri].size += format.HeaderSize + n.size
	h.regions[ri].next = n.next
	if n.next != noRegion {
		h.regions[n.next].prev = ri
	} else {
		h.tail = ri
	}
	h.recycle(ni)
}
