// Package wire provides unchecked big-endian scalar access into message
// buffers. These are the hot-path primitives under the header accessors in
// package message: the caller guarantees offset+width <= len(b), and no
// validation is performed here. Build with the ofwiredebug tag to turn the
// contract into a panic instead of silent memory corruption.
package wire

import "encoding/binary"

// U8 reads the byte at off.
func U8(b []byte, off int) uint8 {
	assertRange(b, off, 1)
	return b[off]
}

// PutU8 writes v at off.
func PutU8(b []byte, off int, v uint8) {
	assertRange(b, off, 1)
	b[off] = v
}

// U16 reads a 16-bit value at off, converting from network byte order.
func U16(b []byte, off int) uint16 {
	assertRange(b, off, 2)
	return binary.BigEndian.Uint16(b[off:])
}

// PutU16 writes v at off in network byte order.
func PutU16(b []byte, off int, v uint16) {
	assertRange(b, off, 2)
	binary.BigEndian.PutUint16(b[off:], v)
}

// U32 reads a 32-bit value at off, converting from network byte order.
func U32(b []byte, off int) uint32 {
	assertRange(b, off, 4)
	return binary.BigEndian.Uint32(b[off:])
}

// PutU32 writes v at off in network byte order.
func PutU32(b []byte, off int, v uint32) {
	assertRange(b, off, 4)
	binary.BigEndian.PutUint32(b[off:], v)
}
