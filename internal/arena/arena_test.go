package arena

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Arena_ExtendIsMonotonic(t *testing.T) {
	a, err := New(4096)
	require.NoError(t, err)
	defer a.Close()

	off1, err := a.Extend(64)
	require.NoError(t, err)
	require.Equal(t, int64(0), off1)

	off2, err := a.Extend(128)
	require.NoError(t, err)
	require.Equal(t, int64(64), off2)

	require.Equal(t, int64(192), a.Size())
	require.Len(t, a.Bytes(), 192)
	require.Equal(t, int64(4096), a.Limit())
}

func Test_Arena_ExtentIsStableAcrossGrowth(t *testing.T) {
	a, err := New(1 << 16)
	require.NoError(t, err)
	defer a.Close()

	_, err = a.Extend(64)
	require.NoError(t, err)

	first := a.Bytes()
	copy(first, "stable")

	// Grow well past the original extent; the backing memory must not move.
	_, err = a.Extend(1 << 14)
	require.NoError(t, err)

	require.Equal(t, &a.Bytes()[0], &first[0], "arena relocated on growth")
	require.Equal(t, []byte("stable"), a.Bytes()[:6])
}

func Test_Arena_OutOfSpace(t *testing.T) {
	a, err := New(256)
	require.NoError(t, err)
	defer a.Close()

	_, err = a.Extend(200)
	require.NoError(t, err)

	_, err = a.Extend(100)
	require.ErrorIs(t, err, ErrOutOfSpace)

	// A failed extend must not change the in-use extent.
	require.Equal(t, int64(200), a.Size())
}

func Test_Arena_Close(t *testing.T) {
	a, err := New(256)
	require.NoError(t, err)

	_, err = a.Extend(64)
	require.NoError(t, err)

	require.NoError(t, a.Close())
	require.NoError(t, a.Close(), "Close must be idempotent")

	_, err = a.Extend(8)
	require.ErrorIs(t, err, ErrClosed)
	require.Nil(t, a.Bytes())
}

func Test_Arena_RejectsBadSizes(t *testing.T) {
	_, err := New(0)
	require.Error(t, err)

	_, err = New(-1)
	require.Error(t, err)

	a, err := New(256)
	require.NoError(t, err)
	defer a.Close()

	_, err = a.Extend(0)
	require.Error(t, err)

	_, err = a.Extend(-8)
	require.Error(t, err)
}
