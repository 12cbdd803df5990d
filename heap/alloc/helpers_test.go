package alloc_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cheranb/heapkit/heap/alloc"
	"github.com/cheranb/heapkit/heap/verify"
)

// newTestHeap creates a heap with a small reservation and registers cleanup.
// limit 0 means a 64 KiB test default.
func newTestHeap(t testing.TB, limit int64) *alloc.Heap {
	t.Helper()
	if limit == 0 {
		limit = 1 << 16
	}
	h, err := alloc.New(&alloc.Config{ArenaLimit: limit})
	require.NoError(t, err)
	t.Cleanup(func() { _ = h.Close() })
	return h
}

// requireInvariants fails the test if any allocator invariant is violated.
func requireInvariants(t testing.TB, h *alloc.Heap) {
	t.Helper()
	require.NoError(t, verify.Heap(h))
}

// mustAlloc allocates or fails the test.
func mustAlloc(t testing.TB, h *alloc.Heap, size int) (alloc.Ref, []byte) {
	t.Helper()
	ref, payload, err := h.Alloc(size)
	require.NoError(t, err)
	require.NotEqual(t, alloc.NilRef, ref)
	return ref, payload
}

// fillPattern writes a deterministic byte pattern derived from seed.
func fillPattern(buf []byte, seed byte) {
	for i := range buf {
		buf[i] = seed + byte(i)
	}
}

// requirePattern verifies the first n bytes of buf still hold the pattern.
func requirePattern(t testing.TB, buf []byte, seed byte, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		require.Equal(t, seed+byte(i), buf[i], "pattern mismatch at byte %d", i)
	}
}
