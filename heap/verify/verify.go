// Package verify provides validation functions for heap structures.
// These helpers are used in tests to ensure allocator invariants are
// maintained, and by heapctl for diagnostics.
package verify

import (
	"fmt"

	"github.com/cheranb/heapkit/heap/alloc"
	"github.com/cheranb/heapkit/internal/format"
)

// ValidationError describes one invariant violation.
type ValidationError struct {
	Type    string
	Message string
	Offset  int64
}

func (e *ValidationError) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("%s at offset 0x%X: %s", e.Type, e.Offset, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Heap validates all allocator invariants in one call.
// Returns the first error encountered, or nil if all checks pass.
func Heap(h *alloc.Heap) error {
	regions := h.Snapshot()
	if err := AddressOrder(regions, h.ArenaSize()); err != nil {
		return err
	}
	if err := Alignment(regions); err != nil {
		return err
	}
	if err := NoAdjacentFree(regions); err != nil {
		return err
	}
	return Headers(h.Bytes(), regions)
}

// AddressOrder validates that the region sequence tiles the arena exactly:
// the first region starts at offset 0, each region starts immediately after
// its predecessor's payload, and the last region ends at the arena extent.
func AddressOrder(regions []alloc.RegionInfo, arenaSize int64) error {
	if len(regions) == 0 {
		if arenaSize != 0 {
			return &ValidationError{
				Type:    "AddressOrder",
				Message: fmt.Sprintf("empty sequence but arena holds %d bytes", arenaSize),
				Offset:  -1,
			}
		}
		return nil
	}

	var want int64
	for i, r := range regions {
		if r.Offset != want {
			return &ValidationError{
				Type:    "AddressOrder",
				Message: fmt.Sprintf("region %d starts at 0x%X, expected 0x%X", i, r.Offset, want),
				Offset:  r.Offset,
			}
		}
		if int64(r.Ref) != r.Offset+format.HeaderSize {
			return &ValidationError{
				Type:    "AddressOrder",
				Message: fmt.Sprintf("region %d ref 0x%X does not follow its header", i, r.Ref),
				Offset:  r.Offset,
			}
		}
		want = r.Offset + format.HeaderSize + int64(r.Size)
	}
	if want != arenaSize {
		return &ValidationError{
			Type:    "AddressOrder",
			Message: fmt.Sprintf("sequence ends at 0x%X, arena extent is 0x%X", want, arenaSize),
			Offset:  want,
		}
	}
	return nil
}

// Alignment validates that every payload size is a non-negative multiple of
// the alignment granularity and every payload offset is aligned.
func Alignment(regions []alloc.RegionInfo) error {
	for i, r := range regions {
		if r.Size < 0 || r.Size%format.RegionAlignment != 0 {
			return &ValidationError{
				Type:    "Alignment",
				Message: fmt.Sprintf("region %d has size %d, not a multiple of %d", i, r.Size, format.RegionAlignment),
				Offset:  r.Offset,
			}
		}
		if int64(r.Ref)%format.RegionAlignment != 0 {
			return &ValidationError{
				Type:    "Alignment",
				Message: fmt.Sprintf("region %d payload 0x%X is misaligned", i, r.Ref),
				Offset:  r.Offset,
			}
		}
	}
	return nil
}

// NoAdjacentFree validates that no two adjacent regions are both free.
// Release must restore this by coalescing.
func NoAdjacentFree(regions []alloc.RegionInfo) error {
	for i := 1; i < len(regions); i++ {
		if regions[i-1].Free && regions[i].Free {
			return &ValidationError{
				Type:    "NoAdjacentFree",
				Message: fmt.Sprintf("regions %d and %d are both free", i-1, i),
				Offset:  regions[i].Offset,
			}
		}
	}
	return nil
}

// Headers validates that the in-arena headers agree with the descriptor
// table on size and state.
func Headers(data []byte, regions []alloc.RegionInfo) error {
	for i, r := range regions {
		if r.Offset+format.HeaderSize > int64(len(data)) {
			return &ValidationError{
				Type:    "Headers",
				Message: fmt.Sprintf("region %d header extends past the arena", i),
				Offset:  r.Offset,
			}
		}
		size, state := format.ReadHeader(data, int(r.Offset))
		if size != r.Size {
			return &ValidationError{
				Type:    "Headers",
				Message: fmt.Sprintf("region %d header size %d, descriptor size %d", i, size, r.Size),
				Offset:  r.Offset,
			}
		}
		want := format.StateUsed
		if r.Free {
			want = format.StateFree
		}
		if state != want {
			return &ValidationError{
				Type:    "Headers",
				Message: fmt.Sprintf("region %d header state %d, descriptor state %d", i, state, want),
				Offset:  r.Offset,
			}
		}
	}
	return nil
}
