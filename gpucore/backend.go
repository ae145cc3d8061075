package gpucore

// DrawBackend is the narrow contract the batching core consumes. One
// implementation exists per backend package; the batching core calls it
// in a fixed per-flush order:
//
//	EnsureBufferCapacity (once, before upload)
//	UploadVertices       (once, full vertex stream)
//	ApplyRenderState     (once, before the first draw call)
//	SubmitDrawCall       (once per coalesced batch)
//	FinishFrame          (once, after the last draw call)
//
// Implementations may assume this ordering; they are not required to be
// safe for concurrent use. All methods are called from the thread that
// owns the GPU context.
type DrawBackend interface {
	// EnsureBufferCapacity guarantees room for at least minVertices
	// vertices and minIndices indices in the backend's GPU buffers.
	// Capacity only grows; a request at or below the current capacity
	// is a no-op.
	EnsureBufferCapacity(minVertices, minIndices int) error

	// UploadVertices replaces the contents of the vertex buffer with
	// the given vertex stream, starting at offset zero. The slice is
	// only valid for the duration of the call.
	UploadVertices(verts []Vertex) error

	// ApplyRenderState binds the sprite pipeline and the shared
	// vertex/index buffers. Called once per flush, before any
	// SubmitDrawCall.
	ApplyRenderState() error

	// SubmitDrawCall issues one GPU draw call covering vertexCount
	// vertices starting at firstVertex, textured with tex. vertexCount
	// is always a multiple of 4; the backend derives the index range
	// from the shared quad index pattern.
	SubmitDrawCall(tex TextureID, firstVertex, vertexCount int) error

	// FinishFrame completes the flush: GPU backends close the render
	// pass and submit the recorded command buffer. Called once per
	// non-empty flush, after the last SubmitDrawCall.
	FinishFrame() error

	// ValidTexture reports whether tex refers to a live texture
	// registered with this backend.
	ValidTexture(tex TextureID) bool
}
