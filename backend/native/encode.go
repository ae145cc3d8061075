package native

import (
	"encoding/binary"
	"math"
)

// putFloat32 writes a little-endian float32 into buf.
func putFloat32(buf []byte, v float32) {
	binary.LittleEndian.PutUint32(buf, math.Float32bits(v))
}

// indexBytes serializes the 16-bit index pattern for upload.
func indexBytes(indices []uint16) []byte {
	out := make([]byte, len(indices)*2)
	for i, idx := range indices {
		binary.LittleEndian.PutUint16(out[i*2:], idx)
	}
	return out
}
