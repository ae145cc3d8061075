package sprite

import "github.com/gogpu/sprite/gpucore"

// vertexStream is the CPU-side staging area for flush: sorted quads are
// unrolled into it and the whole run is handed to the backend in one
// upload. Capacity only ever grows, so repeated frames of similar size
// reuse the same allocation.
type vertexStream struct {
	verts []gpucore.Vertex
}

const initialStreamQuads = 64

// EnsureCapacity grows the backing array to hold at least n vertices.
// Shrinking never happens; a frame that once needed the space will
// likely need it again.
func (s *vertexStream) EnsureCapacity(n int) {
	if cap(s.verts) >= n {
		return
	}
	sz := 2 * cap(s.verts)
	if sz < initialStreamQuads*4 {
		sz = initialStreamQuads * 4
	}
	if sz < n {
		sz = n
	}
	verts := make([]gpucore.Vertex, len(s.verts), sz)
	copy(verts, s.verts)
	s.verts = verts
}

// AppendQuad unrolls a quad's four corners onto the stream and returns
// the index of its first vertex.
func (s *vertexStream) AppendQuad(q *Quad) int {
	first := len(s.verts)
	s.EnsureCapacity(first + 4)
	s.verts = append(s.verts, q[0], q[1], q[2], q[3])
	return first
}

// Len returns the number of staged vertices.
func (s *vertexStream) Len() int { return len(s.verts) }

// Reset empties the stream, keeping its capacity.
func (s *vertexStream) Reset() { s.verts = s.verts[:0] }
