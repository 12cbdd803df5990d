package alloc

// Free releases the region named by ref and coalesces it with every adjacent
// free neighbor, forward first, then backward, so no two adjacent regions are
// ever both free.
//
// Freeing NilRef reports ErrNilRef and changes nothing. The payload bytes of
// a freed region are not cleared.
func (h *Heap) Free(ref Ref) error {
	if h.closed {
		return ErrClosed
	}
	h.metrics.FreeCalls++

	if ref == NilRef {
		tracef("free of nil ref")
		return ErrNilRef
	}
	ri, ok := h.byOff[ref]
	if !ok {
		tracef("free of unknown ref 0x%X", ref)
		return ErrBadRef
	}
	if h.regions[ri].free {
		tracef("double free of ref 0x%X", ref)
		return ErrDoubleFree
	}

	h.regions[ri].free = true
	h.metrics.BytesFreed += int64(h.regions[ri].size)

	// Forward pass: absorb every free successor.
	for h.regions[ri].next != noRegion && h.regions[h.regions[ri].next].free {
		h.metrics.CoalesceForward++
		h.absorbNext(ri)
	}

	// Backward pass: every free predecessor absorbs the merged region.
	for h.regions[ri].prev != noRegion && h.regions[h.regions[ri].prev].free {
		h.metrics.CoalesceBackward++
		ri = h.regions[ri].prev
		h.absorbNext(ri)
	}

	h.writeHeader(ri)
	return nil
}
