package alloc

// Ref is an opaque handle to an allocated region: the arena offset of the
// region's payload. Refs are stable for the lifetime of the region.
type Ref uint32

// NilRef is the null handle. Offset 0 always holds the first region's header,
// never a payload, so no live region can have this ref.
const NilRef Ref = 0

const (
	// DefaultArenaLimit is the default arena reservation (64 MiB).
	DefaultArenaLimit = 64 << 20

	// maxArenaLimit caps the reservation so that region offsets fit in int32
	// and refs fit in uint32.
	maxArenaLimit = 0x7FFFFFFF // 2GB - 1
)

// Config controls heap construction.
type Config struct {
	// ArenaLimit is the arena reservation in bytes. Growth beyond it fails
	// with ErrGrowFail. Zero or negative means DefaultArenaLimit.
	ArenaLimit int64
}

// DefaultConfig is used when New is called with a nil config.
var DefaultConfig = Config{
	ArenaLimit: DefaultArenaLimit,
}

// RegionInfo is a read-only snapshot of one region descriptor, in address
// order. Used by heap/verify, heap/printer, and tests.
type RegionInfo struct {
	Ref    Ref   // payload handle
	Offset int64 // arena offset of the region header
	Size   int   // payload bytes
	Free   bool
}

// region is one descriptor in the heap's table. Links are table indices, not
// pointers; noRegion marks the ends of the sequence.
type region struct {
	off  int32 // arena offset of the region header
	size int32 // payload bytes, always a multiple of 8
	free bool
	next int32
	prev int32
}

const noRegion int32 = -1
