package gpucore

// VerticesPerQuad and IndicesPerQuad fix the quad topology: two
// triangles (0,1,2) and (0,2,3) per four vertices.
const (
	VerticesPerQuad = 4
	IndicesPerQuad  = 6
)

// QuadIndices appends the index pattern for quadCount quads to dst and
// returns the extended slice. The pattern is fully determined by the
// quad count, so backends precompute it once and only extend it when a
// frame exceeds the previous maximum.
func QuadIndices(dst []uint16, quadCount int) []uint16 {
	for q := len(dst) / IndicesPerQuad; q < quadCount; q++ {
		base := uint16(q * VerticesPerQuad)
		dst = append(dst,
			base, base+1, base+2,
			base, base+2, base+3,
		)
	}
	return dst
}

// MaxQuadsPerDraw is the largest quad count addressable with 16-bit
// indices. Frames larger than this split into multiple uploads.
const MaxQuadsPerDraw = 65536 / VerticesPerQuad
