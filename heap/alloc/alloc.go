package alloc

import (
	"fmt"

	"github.com/cheranb/heapkit/internal/format"
)

// maxAllocSize caps a single request so the aligned size plus header fits in
// an int32 region descriptor.
const maxAllocSize = maxArenaLimit - format.HeaderSize

// Alloc allocates at least size bytes of writable, 8-byte aligned memory and
// returns the region handle plus its payload view. The payload content is
// unspecified (not zeroed).
//
// size 0 is valid: the call returns a unique Ref with a zero-length payload.
//
// The scan is strict first-fit over the address-ordered region sequence; on a
// miss the arena grows by exactly the header plus the aligned request.
func (h *Heap) Alloc(size int) (Ref, []byte, error) {
	if h.closed {
		return NilRef, nil, ErrClosed
	}
	h.metrics.AllocCalls++

	if size < 0 {
		return NilRef, nil, fmt.Errorf("%w: negative size %d", ErrInvalidSize, size)
	}
	if size > maxAllocSize {
		return NilRef, nil, fmt.Errorf("%w: size %d exceeds maximum region size %d",
			ErrInvalidSize, size, maxAllocSize)
	}
	aligned := int32(format.Align8(size))

	// First-fit scan from the head: the first free region large enough wins.
	for ri := h.head; ri != noRegion; ri = h.regions[ri].next {
		if !h.regions[ri].free || h.regions[ri].size < aligned {
			continue
		}
		h.regions[ri].free = false
		h.splitTail(ri, aligned)
		h.writeHeader(ri)
		if debugAlloc {
			debugLogf("Alloc(%d): reused region off=%d size=%d", size, h.regions[ri].off, h.regions[ri].size)
		}

		h.metrics.AllocFastPath++
		h.metrics.BytesAllocated += int64(h.regions[ri].size)
		return h.payloadRef(ri), h.payload(ri), nil
	}

	// No match: extend the arena by one region's worth of bytes and append.
	ri, err := h.appendTail(aligned)
	if err != nil {
		return NilRef, nil, err
	}
	h.metrics.AllocSlowPath++
	h.metrics.BytesAllocated += int64(aligned)
	return h.payloadRef(ri), h.payload(ri), nil
}

// AllocZeroed allocates count*elemSize bytes and zero-fills the payload
// before returning it. A zero count or element size, or a product that
// overflows int, fails with ErrInvalidSize before any allocation is attempted.
func (h *Heap) AllocZeroed(count, elemSize int) (Ref, []byte, error) {
	if h.closed {
		return NilRef, nil, ErrClosed
	}
	if count <= 0 || elemSize <= 0 {
		return NilRef, nil, fmt.Errorf("%w: count=%d elemSize=%d", ErrInvalidSize, count, elemSize)
	}
	total := count * elemSize
	if total/count != elemSize {
		return NilRef, nil, fmt.Errorf("%w: count=%d elemSize=%d overflows", ErrInvalidSize, count, elemSize)
	}

	ref, payload, err := h.Alloc(total)
	if err != nil {
		return NilRef, nil, err
	}
	clear(payload)
	return ref, payload, nil
}

// splitTail carves a free region from the trailing bytes of ri when the
// remainder beyond keep can host a header plus at least 8 bytes of payload.
// Smaller remainders stay inside ri as internal waste. Returns the new
// region's index, or noRegion when no split happened.
func (h *Heap) splitTail(ri int32, keep int32) int32 {
	r := h.regions[ri]
	rem := r.size - keep
	if rem < format.HeaderSize+format.RegionAlignment {
		return noRegion
	}
	h.metrics.SplitCount++

	ti := h.slot()
	h.regions[ti] = region{
		off:  r.off + format.HeaderSize + keep,
		size: rem - format.HeaderSize,
		free: true,
		prev: ri,
		next: r.next,
	}
	h.regions[ri].size = keep
	h.regions[ri].next = ti
	if n := h.regions[ti].next; n != noRegion {
		h.regions[n].prev = ti
	} else {
		h.tail = ti
	}
	h.byOff[h.payloadRef(ti)] = ti
	h.writeHeader(ti)
	return ti
}

// appendTail extends the arena by header+size bytes and appends a new in-use
// region at the end of the sequence. Growth failure is a hard allocation
// failure; the heap is left unchanged.
func (h *Heap) appendTail(size int32) (int32, error) {
	need := int64(format.HeaderSize) + int64(size)
	base, err := h.ar.Extend(need)
	if err != nil {
		tracef("grow failed: need=%d arena=%d: %v", need, h.ar.Size(), err)
		return noRegion, fmt.Errorf("%w: %v", ErrGrowFail, err)
	}
	h.metrics.GrowCalls++
	h.metrics.GrowBytes += need
	if debugAlloc {
		debugLogf("grow: +%d bytes, arena now %d", need, h.ar.Size())
	}

	ri := h.slot()
	h.regions[ri] = region{
		off:  int32(base),
		size: size,
		prev: h.tail,
		next: noRegion,
	}
	if h.tail != noRegion {
		h.regions[h.tail].next = ri
	} else {
		h.head = ri
	}
	h.tail = ri
	h.byOff[h.payloadRef(ri)] = ri
	h.writeHeader(ri)
	return ri, nil
}
