package alloc

import (
	"fmt"

	"github.com/cheranb/heapkit/internal/format"
)

// Resize changes the usable size of the region named by ref.
//
//   - ref == NilRef behaves as Alloc(newSize).
//   - newSize == 0 releases the region and returns NilRef.
//   - Shrinking returns the same ref; the freed tail is carved into a new
//     free region when it is large enough to host one, otherwise the region
//     keeps its current size as internal waste.
//   - Growing allocates a fresh region, copies the old payload, and releases
//     the original. If the fresh allocation fails the original region is left
//     valid and unmodified.
func (h *Heap) Resize(ref Ref, newSize int) (Ref, []byte, error) {
	if h.closed {
		return NilRef, nil, ErrClosed
	}
	if ref == NilRef {
		return h.Alloc(newSize)
	}
	h.metrics.ResizeCalls++

	if newSize < 0 {
		return NilRef, nil, fmt.Errorf("%w: negative size %d", ErrInvalidSize, newSize)
	}
	if newSize == 0 {
		if err := h.Free(ref); err != nil {
			return NilRef, nil, err
		}
		return NilRef, nil, nil
	}
	if newSize > maxAllocSize {
		return NilRef, nil, fmt.Errorf("%w: size %d exceeds maximum region size %d",
			ErrInvalidSize, newSize, maxAllocSize)
	}

	ri, ok := h.byOff[ref]
	if !ok {
		return NilRef, nil, ErrBadRef
	}
	if h.regions[ri].free {
		return NilRef, nil, fmt.Errorf("%w: resize of free region 0x%X", ErrBadRef, ref)
	}

	aligned := int32(format.Align8(newSize))
	if aligned <= h.regions[ri].size {
		h.shrink(ri, aligned)
		return ref, h.payload(ri), nil
	}
	return h.relocate(ref, ri, newSize)
}

// shrink reduces ri to keep payload bytes in place. A tail large enough for a
// header plus 8 bytes of payload is carved into a new free region; because
// the successor may already be free, the carved tail is then coalesced
// forward to preserve the no-adjacent-free invariant. A smaller tail stays
// inside the region (shrinking the descriptor without a split would break
// address ordering).
func (h *Heap) shrink(ri int32, keep int32) {
	ti := h.splitTail(ri, keep)
	if ti == noRegion {
		return
	}
	h.writeHeader(ri)

	for h.regions[ti].next != noRegion && h.regions[h.regions[ti].next].free {
		h.metrics.CoalesceForward++
		h.absorbNext(ti)
	}
	h.writeHeader(ti)
}

// relocate grows ref by allocating a fresh region, copying exactly the old
// usable size, and releasing the original.
func (h *Heap) relocate(ref Ref, ri int32, newSize int) (Ref, []byte, error) {
	oldSize := int(h.regions[ri].size)

	newRef, dst, err := h.Alloc(newSize)
	if err != nil {
		// Hard failure: the original region remains valid and unmodified.
		return NilRef, nil, err
	}

	src := h.ar.Bytes()[int(ref) : int(ref)+oldSize]
	copy(dst, src)

	if err := h.Free(ref); err != nil {
		return NilRef, nil, err
	}
	return newRef, dst, nil
}
