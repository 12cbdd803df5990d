package format

// Alignment utilities for the heap arena layout.
// All payload sizes and payload offsets must be aligned to 8 bytes.

// Align8 returns n aligned up to the next 8-byte boundary.
//
// Example:
//
//	Align8(0)  = 0
//	Align8(1)  = 8
//	Align8(8)  = 8
//	Align8(9)  = 16
func Align8(n int) int {
	return (n + RegionAlignmentMask) & ^RegionAlignmentMask
}

// Align8I32 returns n aligned up to the next 8-byte boundary.
// int32 version for use in allocator code that keeps descriptor fields as int32.
func Align8I32(n int32) int32 {
	return (n + RegionAlignmentMask) & ^RegionAlignmentMask
}
