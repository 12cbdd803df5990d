package alloc

import "errors"

var (
	// ErrInvalidSize indicates a negative size, a zero count or element size
	// passed to AllocZeroed, or a count*size product that overflows.
	ErrInvalidSize = errors.New("alloc: invalid size")

	// ErrNilRef indicates an operation on the nil handle where a live region
	// is required. The operation is a no-op; no heap state changes.
	ErrNilRef = errors.New("alloc: nil ref")

	// ErrBadRef indicates a handle that does not name a live region.
	ErrBadRef = errors.New("alloc: bad ref")

	// ErrDoubleFree indicates a release of a region that is already free.
	ErrDoubleFree = errors.New("alloc: region already free")

	// ErrGrowFail indicates that extending the arena failed. The triggering
	// call returns failure; the heap is left unchanged and there is no retry.
	ErrGrowFail = errors.New("alloc: arena growth failed")

	// ErrClosed indicates use of a heap after Close.
	ErrClosed = errors.New("alloc: heap closed")
)
