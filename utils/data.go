package utils

import (
	"bytes"
	"encoding/binary"
	"math"
)

// WriteLUint64 writes a little-endian uint64 to the buffer.
func WriteLUint64(buf *bytes.Buffer, v uint64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	buf.Write(b[:])
}

// WriteLUint32 writes a little-endian uint32 to the buffer.
func WriteLUint32(buf *bytes.Buffer, v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	buf.Write(b[:])
}

// WriteLFloat32 writes a little-endian IEEE 754 float32 to the buffer.
func WriteLFloat32(buf *bytes.Buffer, v float32) {
	WriteLUint32(buf, math.Float32bits(v))
}

// WriteString writes a uint32 length prefix followed by the string bytes.
func WriteString(buf *bytes.Buffer, s string) {
	WriteLUint32(buf, uint32(len(s)))
	buf.WriteString(s)
}
