// Package format provides binary encoding helpers for structures stored
// inside a pool arena.
//
// Arena-resident records use little-endian byte order. The helpers wrap
// encoding/binary.LittleEndian; the Go compiler inlines these calls, so no
// unsafe variants are needed.
package format

import "encoding/binary"

// Layout of a linked-list node inside the arena.
//
//	Offset  Size  Description
//	0x00    4     Next node ref (int32, NilRef when last)
//	0x04    2     Node value (uint16)
const (
	NodeNextOffset  = 0
	NodeValueOffset = 4
	NodeSize        = 6
)

// PutU16 writes a uint16 value to the buffer at the specified offset in little-endian format.
func PutU16(b []byte, off int, v uint16) {
	binary.LittleEndian.PutUint16(b[off:off+2], v)
}

// ReadU16 reads a uint16 value from the buffer at the specified offset in little-endian format.
func ReadU16(b []byte, off int) uint16 {
	return binary.LittleEndian.Uint16(b[off : off+2])
}

// PutI32 writes an int32 value to the buffer at the specified offset in little-endian format.
func PutI32(b []byte, off int, v int32) {
	binary.LittleEndian.PutUint32(b[off:off+4], uint32(v))
}

// ReadI32 reads an int32 value from the buffer at the specified offset in little-endian format.
func ReadI32(b []byte, off int) int32 {
	return int32(binary.LittleEndian.Uint32(b[off : off+4]))
}
