// Package alloc implements a first-fit heap allocator over a growable arena.
//
// # Overview
//
// A Heap manages an address-ordered sequence of regions carved out of a
// single contiguous arena. Each region is an 8-byte header followed by its
// payload; descriptors for all regions live in an index-linked table owned by
// the Heap. The allocator supports allocation, zero-initialized allocation,
// in-place and relocating resize, and release with coalescing of adjacent
// free regions.
//
// # Design
//
// The public surface deals in Refs: a Ref is the arena offset of a region's
// payload and acts as an opaque handle. NilRef is the null handle. Descriptor
// lookup from a Ref is O(1) via an offset index; region links are table
// indices, not pointers, so the descriptor table can grow freely.
//
// Allocation is strict first-fit: the first free region large enough wins.
// Oversized matches are split when the remainder can host a header plus at
// least 8 bytes of payload; smaller remainders stay inside the region as
// internal waste. When no free region fits, the arena grows by exactly the
// header plus the aligned request. Releasing a region merges it with every
// adjacent free neighbor, so no two adjacent regions are ever both free.
//
// # Usage
//
//	h, err := alloc.New(nil) // DefaultConfig
//	if err != nil {
//	    return err
//	}
//	defer h.Close()
//
//	ref, buf, err := h.Alloc(32)
//	if err != nil {
//	    return err
//	}
//	copy(buf, "payload")
//
//	// Later
//	if err := h.Free(ref); err != nil {
//	    return err
//	}
//
// Payload slices are views into the arena and stay valid until the heap is
// closed; the arena never relocates on growth.
//
// # Zero-size allocations
//
// Alloc(0) is valid and returns a unique Ref with a zero-length payload.
// AllocZeroed rejects a zero count or element size with ErrInvalidSize.
//
// # Alignment
//
// All payload sizes are rounded up to a multiple of 8 bytes and all payload
// offsets are 8-byte aligned.
//
// # Thread safety
//
// Heap is not goroutine-safe. Callers must serialize access externally if
// concurrent use is ever required.
package alloc
