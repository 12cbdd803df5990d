package alloc_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cheranb/heapkit/heap/alloc"
)

// Test_Fuzz_RandomOps_GuardInvariants drives a fixed-seed random mix of
// allocate, release, and resize calls, checking the structural invariants and
// payload integrity of every live region after each operation.
func Test_Fuzz_RandomOps_GuardInvariants(t *testing.T) {
	h := newTestHeap(t, 1<<22)
	rng := rand.New(rand.NewSource(42))

	type live struct {
		ref  alloc.Ref
		seed byte
		n    int
	}
	var lives []live

	check := func(l live) {
		buf, err := h.Payload(l.ref)
		require.NoError(t, err)
		require.GreaterOrEqual(t, len(buf), l.n)
		requirePattern(t, buf, l.seed, l.n)
	}

	for op := 0; op < 500; op++ {
		switch r := rng.Intn(10); {
		case r < 5 || len(lives) == 0: // allocate
			size := rng.Intn(257)
			var (
				ref alloc.Ref
				buf []byte
				err error
			)
			if rng.Intn(8) == 0 {
				elem := 1 + rng.Intn(16)
				count := 1 + size/elem
				ref, buf, err = h.AllocZeroed(count, elem)
				require.NoError(t, err)
				for _, b := range buf {
					require.Zero(t, b)
				}
			} else {
				ref, buf, err = h.Alloc(size)
				require.NoError(t, err)
			}
			seed := byte(rng.Intn(256))
			fillPattern(buf, seed)
			lives = append(lives, live{ref: ref, seed: seed, n: len(buf)})

		case r < 8: // release
			i := rng.Intn(len(lives))
			check(lives[i])
			require.NoError(t, h.Free(lives[i].ref))
			lives[i] = lives[len(lives)-1]
			lives = lives[:len(lives)-1]

		default: // resize
			i := rng.Intn(len(lives))
			check(lives[i])
			newSize := rng.Intn(301)
			ref, buf, err := h.Resize(lives[i].ref, newSize)
			require.NoError(t, err)
			if newSize == 0 {
				require.Equal(t, alloc.NilRef, ref)
				lives[i] = lives[len(lives)-1]
				lives = lives[:len(lives)-1]
				break
			}
			seed := byte(rng.Intn(256))
			fillPattern(buf, seed)
			lives[i] = live{ref: ref, seed: seed, n: len(buf)}
		}

		requireInvariants(t, h)
		for _, l := range lives {
			check(l)
		}
	}

	for _, l := range lives {
		check(l)
		require.NoError(t, h.Free(l.ref))
	}

	stats := h.Stats()
	require.Equal(t, 1, stats.TotalRegions)
	require.Equal(t, 1, stats.FreeRegions)
	require.Equal(t, h.ArenaSize()-8, stats.FreeBytes)
	requireInvariants(t, h)
}
