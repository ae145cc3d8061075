package gpucore

import (
	"encoding/binary"
	"math"
)

// Resource IDs
//
// These opaque IDs represent GPU resources. Each backend implementation
// maintains a mapping between IDs and actual backend resources.
// IDs are uint64 to accommodate various backend handle sizes.

// TextureID is an opaque handle to a GPU texture. Two draw items batch
// together iff their texture IDs compare equal.
type TextureID uint64

// BufferID is an opaque handle to a GPU buffer.
type BufferID uint64

// InvalidID is the zero value, representing an invalid/null resource.
const InvalidID = 0

// VertexStride is the byte stride per vertex as uploaded to the GPU.
// Layout per vertex:
//
//	position  (vec2<f32>)       =  8 bytes (location 0)
//	tex_coord (vec2<f32>)       =  8 bytes (location 1)
//	color     (unorm8x4)        =  4 bytes (location 2)
//	depth     (f32)             =  4 bytes (location 3)
//
// Total = 24 bytes per vertex.
const VertexStride = 24

// Vertex is a single sprite vertex in the layout the GPU consumes.
// Color is packed RGBA8 (R in the low byte), matching unorm8x4
// vertex attribute format.
type Vertex struct {
	X, Y  float32
	U, V  float32
	Color uint32
	Depth float32
}

// Encode appends the vertex's GPU byte representation to dst and
// returns the extended slice. Floats are little-endian IEEE 754,
// matching WebGPU buffer layout rules.
func (v Vertex) Encode(dst []byte) []byte {
	dst = binary.LittleEndian.AppendUint32(dst, f32bits(v.X))
	dst = binary.LittleEndian.AppendUint32(dst, f32bits(v.Y))
	dst = binary.LittleEndian.AppendUint32(dst, f32bits(v.U))
	dst = binary.LittleEndian.AppendUint32(dst, f32bits(v.V))
	dst = binary.LittleEndian.AppendUint32(dst, v.Color)
	dst = binary.LittleEndian.AppendUint32(dst, f32bits(v.Depth))
	return dst
}

// EncodeVertices serializes verts into raw bytes suitable for GPU
// upload, reusing dst's backing storage when large enough.
func EncodeVertices(dst []byte, verts []Vertex) []byte {
	need := len(verts) * VertexStride
	if cap(dst) < need {
		dst = make([]byte, 0, need)
	} else {
		dst = dst[:0]
	}
	for _, v := range verts {
		dst = v.Encode(dst)
	}
	return dst
}

func f32bits(f float32) uint32 { return math.Float32bits(f) }
