package format

// Layout constants for the in-arena region header.
//
// Every region in the arena is an 8-byte header immediately followed by its
// payload. The header records the payload size and the region state in
// little-endian byte order, so the arena is self-describing even though the
// descriptor table is the authoritative structure.

const (
	// HeaderSize is the size of the region header in bytes. It is a multiple
	// of RegionAlignment so that payloads stay 8-byte aligned.
	HeaderSize = 8

	// SizeFieldOffset is the header offset of the payload size field (u32).
	SizeFieldOffset = 0

	// StateFieldOffset is the header offset of the region state field (u32).
	StateFieldOffset = 4
)

const (
	// RegionAlignment is the alignment granularity for payload sizes and
	// payload addresses.
	RegionAlignment = 8

	// RegionAlignmentMask is used by the Align8 helpers.
	RegionAlignmentMask = RegionAlignment - 1
)

// Region state words stored in the header state field.
const (
	StateFree uint32 = 0
	StateUsed uint32 = 1
)
