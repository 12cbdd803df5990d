package alloc_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cheranb/heapkit/heap/alloc"
)

func Test_AllocZeroed_ZeroFill(t *testing.T) {
	h := newTestHeap(t, 0)

	// Dirty a region, free it, then calloc into the recycled bytes.
	ref, payload := mustAlloc(t, h, 64)
	fillPattern(payload, 0xAA)
	require.NoError(t, h.Free(ref))

	_, zeroed, err := h.AllocZeroed(8, 8)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(zeroed), 64)
	for i, b := range zeroed {
		require.Zero(t, b, "byte %d not zeroed", i)
	}
	requireInvariants(t, h)
}

func Test_AllocZeroed_ZeroCountOrSize(t *testing.T) {
	h := newTestHeap(t, 0)

	_, _, err := h.AllocZeroed(0, 8)
	require.ErrorIs(t, err, alloc.ErrInvalidSize)

	_, _, err = h.AllocZeroed(8, 0)
	require.ErrorIs(t, err, alloc.ErrInvalidSize)

	_, _, err = h.AllocZeroed(-1, 8)
	require.ErrorIs(t, err, alloc.ErrInvalidSize)

	// Rejected before any allocation is attempted.
	require.Zero(t, h.ArenaSize())
	require.Zero(t, h.Metrics().AllocCalls)
}

func Test_AllocZeroed_OverflowRejected(t *testing.T) {
	h := newTestHeap(t, 0)

	cases := []struct {
		count, elemSize int
	}{
		{math.MaxInt, 2},
		{2, math.MaxInt},
		{3, math.MaxInt / 2},
		{math.MaxInt/2 + 1, 4},
	}
	for _, tc := range cases {
		_, _, err := h.AllocZeroed(tc.count, tc.elemSize)
		require.ErrorIs(t, err, alloc.ErrInvalidSize, "AllocZeroed(%d, %d)", tc.count, tc.elemSize)
	}

	// No side effects from rejected calls.
	require.Zero(t, h.ArenaSize())
	require.Zero(t, h.Metrics().AllocCalls)
}

func Test_AllocZeroed_PropagatesGrowthFailure(t *testing.T) {
	h := newTestHeap(t, 16)

	_, _, err := h.AllocZeroed(1, 64)
	require.ErrorIs(t, err, alloc.ErrGrowFail)
	require.Zero(t, h.ArenaSize())
}

func Test_AllocZeroed_WholePayloadZeroed(t *testing.T) {
	h := newTestHeap(t, 0)

	// An un-splittable reuse hands out more than count*elemSize bytes; every
	// byte of the returned payload must still be zero.
	ref, payload := mustAlloc(t, h, 40)
	fillPattern(payload, 0x55)
	require.NoError(t, h.Free(ref))

	_, zeroed, err := h.AllocZeroed(4, 8) // 32 bytes into a 40-byte region
	require.NoError(t, err)
	require.Len(t, zeroed, 40)
	for i, b := range zeroed {
		require.Zero(t, b, "byte %d not zeroed", i)
	}
}
