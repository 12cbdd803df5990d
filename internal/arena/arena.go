// Package arena provides the growable memory extent backing a heap.
//
// An Arena models the host growth primitive of a classic allocator (the sbrk
// call): a contiguous span of address space that only ever grows, never moves,
// and is never handed back to the host until the arena is closed. The full
// reservation is made at creation time and Extend only advances the in-use
// extent, so slices into the arena remain valid across growth.
//
// On unix builds the reservation is an anonymous private mapping; pages are
// committed lazily by the kernel as they are touched. Other platforms fall
// back to a single pre-sized byte slice.
package arena

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfSpace indicates that extending the arena would exceed its
	// reservation. This is the hard growth failure the allocator reports to
	// its caller; the arena does not retry.
	ErrOutOfSpace = errors.New("arena: reservation exhausted")

	// ErrClosed indicates use of an arena after Close.
	ErrClosed = errors.New("arena: closed")
)

// Arena is a monotonically growing extent of raw memory. Not goroutine-safe;
// the owning heap serializes access.
type Arena struct {
	buf     []byte // full reservation
	size    int64  // in-use extent
	cleanup func() error
}

// New reserves limit bytes of address space and returns an arena with an
// empty in-use extent.
func New(limit int64) (*Arena, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("arena: non-positive reservation %d", limit)
	}
	buf, cleanup, err := reserve(limit)
	if err != nil {
		return nil, fmt.Errorf("arena: reserving %d bytes: %w", limit, err)
	}
	return &Arena{buf: buf, cleanup: cleanup}, nil
}

// Extend grows the in-use extent by n bytes and returns the offset of the
// newly added span. The extent never shrinks and never relocates.
func (a *Arena) Extend(n int64) (int64, error) {
	if a.buf == nil {
		return 0, ErrClosed
	}
	if n <= 0 {
		return 0, fmt.Errorf("arena: non-positive extend %d", n)
	}
	if a.size+n > int64(len(a.buf)) {
		return 0, fmt.Errorf("%w: in use %d, requested %d, reservation %d",
			ErrOutOfSpace, a.size, n, len(a.buf))
	}
	off := a.size
	a.size += n
	return off, nil
}

// Bytes returns the in-use extent. The returned slice is valid until Close.
func (a *Arena) Bytes() []byte {
	if a.buf == nil {
		return nil
	}
	return a.buf[:a.size:a.size]
}

// Size returns the in-use extent in bytes.
func (a *Arena) Size() int64 { return a.size }

// Limit returns the reservation size in bytes.
func (a *Arena) Limit() int64 { return int64(len(a.buf)) }

// Close releases the reservation. Any slice previously returned by Bytes
// must not be used afterwards. Close is idempotent.
func (a *Arena) Close() error {
	if a.buf == nil {
		return nil
	}
	a.buf = nil
	a.size = 0
	if a.cleanup == nil {
		return nil
	}
	err := a.cleanup()
	a.cleanup = nil
	return err
}
