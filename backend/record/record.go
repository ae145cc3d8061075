// Package record provides an in-memory draw backend that captures
// every call made to it. It exists for tests and for tooling that
// inspects a frame's draw stream without a GPU.
package record

import (
	"fmt"
	"sync"

	"github.com/gogpu/sprite/backend"
	"github.com/gogpu/sprite/gpucore"
)

func init() {
	backend.Register("record", func(backend.Config) (gpucore.DrawBackend, error) {
		return New(), nil
	})
}

// DrawCall is one captured SubmitDrawCall.
type DrawCall struct {
	Texture     gpucore.TextureID
	FirstVertex int
	VertexCount int
}

// Upload is one captured UploadVertices, with the vertex data copied
// at capture time so later uploads cannot alias it.
type Upload struct {
	Vertices []gpucore.Vertex
}

// Backend records the calls a SpriteBatch makes during flush. The zero
// value is not usable; create one with New.
type Backend struct {
	mu sync.Mutex

	nextTexture gpucore.TextureID
	textures    map[gpucore.TextureID]bool

	// Captured state, in call order.
	VertexCapacity int
	IndexCapacity  int
	Uploads        []Upload
	StateApplies   int
	Calls          []DrawCall
	FrameFinishes  int
}

// New creates an empty recording backend.
func New() *Backend {
	return &Backend{
		nextTexture: 1,
		textures:    make(map[gpucore.TextureID]bool),
	}
}

// CreateTexture allocates a texture ID. The record backend discards
// the pixels; it only tracks dimensions and validity. It satisfies the
// text package's uploader interface so glyph atlases work in tests.
func (b *Backend) CreateTexture(width, height int, pixels []byte) (gpucore.TextureID, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	id := b.nextTexture
	b.nextTexture++
	b.textures[id] = true
	return id, nil
}

// UpdateTexture accepts a pixel update for a registered texture.
func (b *Backend) UpdateTexture(id gpucore.TextureID, pixels []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.textures[id] {
		return fmt.Errorf("record: texture %d not found", id)
	}
	return nil
}

// DestroyTexture invalidates a texture ID. Subsequent draws with it
// fail validation.
func (b *Backend) DestroyTexture(id gpucore.TextureID) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.textures, id)
}

// ValidTexture implements gpucore.DrawBackend.
func (b *Backend) ValidTexture(id gpucore.TextureID) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.textures[id]
}

// EnsureBufferCapacity implements gpucore.DrawBackend. Capacity is
// monotonic, mirroring how a GPU backend grows its buffers.
func (b *Backend) EnsureBufferCapacity(minVertices, minIndices int) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if minVertices > b.VertexCapacity {
		b.VertexCapacity = minVertices
	}
	if minIndices > b.IndexCapacity {
		b.IndexCapacity = minIndices
	}
	return nil
}

// UploadVertices implements gpucore.DrawBackend.
func (b *Backend) UploadVertices(verts []gpucore.Vertex) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	cp := make([]gpucore.Vertex, len(verts))
	copy(cp, verts)
	b.Uploads = append(b.Uploads, Upload{Vertices: cp})
	return nil
}

// ApplyRenderState implements gpucore.DrawBackend.
func (b *Backend) ApplyRenderState() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.StateApplies++
	return nil
}

// SubmitDrawCall implements gpucore.DrawBackend.
func (b *Backend) SubmitDrawCall(tex gpucore.TextureID, firstVertex, vertexCount int) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.Calls = append(b.Calls, DrawCall{
		Texture:     tex,
		FirstVertex: firstVertex,
		VertexCount: vertexCount,
	})
	return nil
}

// FinishFrame implements gpucore.DrawBackend.
func (b *Backend) FinishFrame() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.FrameFinishes++
	return nil
}

// LastUpload returns the vertex data of the most recent upload, or nil
// if nothing was uploaded yet.
func (b *Backend) LastUpload() []gpucore.Vertex {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.Uploads) == 0 {
		return nil
	}
	return b.Uploads[len(b.Uploads)-1].Vertices
}

// Reset clears all captured calls but keeps texture registrations.
func (b *Backend) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.Uploads = nil
	b.Calls = nil
	b.StateApplies = 0
	b.FrameFinishes = 0
	b.VertexCapacity = 0
	b.IndexCapacity = 0
}
