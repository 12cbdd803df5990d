package format

import "encoding/binary"

// Binary encoding utilities for little-endian region headers.
//
// Implementation: encoding/binary.LittleEndian. The compiler inlines these
// calls, so there is no benefit to an unsafe variant.

// PutU32 writes a uint32 value to the buffer at the specified offset in little-endian format.
func PutU32(b []byte, off int, v uint32) {
	binary.LittleEndian.PutUint32(b[off:off+4], v)
}

// ReadU32 reads a uint32 value from the buffer at the specified offset in little-endian format.
func ReadU32(b []byte, off int) uint32 {
	return binary.LittleEndian.Uint32(b[off : off+4])
}

// PutHeader writes a region header (payload size and state word) at off.
func PutHeader(b []byte, off int, size int, state uint32) {
	PutU32(b, off+SizeFieldOffset, uint32(size))
	PutU32(b, off+StateFieldOffset, state)
}

// ReadHeader reads a region header at off and returns the payload size and state word.
func ReadHeader(b []byte, off int) (size int, state uint32) {
	size = int(ReadU32(b, off+SizeFieldOffset))
	state = ReadU32(b, off+StateFieldOffset)
	return size, state
}
