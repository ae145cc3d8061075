package record

import (
	"testing"

	"github.com/gogpu/sprite/gpucore"
)

func TestTextureLifecycle(t *testing.T) {
	b := New()
	id, err := b.CreateTexture(8, 8, nil)
	if err != nil {
		t.Fatalf("CreateTexture: %v", err)
	}
	if id == gpucore.InvalidID {
		t.Fatal("CreateTexture returned InvalidID")
	}
	if !b.ValidTexture(id) {
		t.Fatal("fresh texture is invalid")
	}

	b.DestroyTexture(id)
	if b.ValidTexture(id) {
		t.Fatal("destroyed texture still valid")
	}
	if err := b.UpdateTexture(id, nil); err == nil {
		t.Fatal("UpdateTexture on destroyed texture succeeded")
	}
}

func TestCapacityIsMonotonic(t *testing.T) {
	b := New()
	if err := b.EnsureBufferCapacity(100, 150); err != nil {
		t.Fatalf("EnsureBufferCapacity: %v", err)
	}
	if err := b.EnsureBufferCapacity(10, 15); err != nil {
		t.Fatalf("EnsureBufferCapacity: %v", err)
	}
	if b.VertexCapacity != 100 || b.IndexCapacity != 150 {
		t.Fatalf("capacity = %d/%d, want 100/150", b.VertexCapacity, b.IndexCapacity)
	}
}

func TestUploadsAreCopied(t *testing.T) {
	b := New()
	verts := []gpucore.Vertex{{X: 1}, {X: 2}}
	if err := b.UploadVertices(verts); err != nil {
		t.Fatalf("UploadVertices: %v", err)
	}
	verts[0].X = 99
	if got := b.LastUpload()[0].X; got != 1 {
		t.Fatalf("captured vertex aliases caller data: X = %v", got)
	}
}

func TestResetKeepsTextures(t *testing.T) {
	b := New()
	id, _ := b.CreateTexture(8, 8, nil)
	_ = b.UploadVertices([]gpucore.Vertex{{}})
	_ = b.SubmitDrawCall(id, 0, 4)
	_ = b.FinishFrame()

	b.Reset()
	if len(b.Uploads) != 0 || len(b.Calls) != 0 || b.FrameFinishes != 0 {
		t.Fatal("Reset left captured calls")
	}
	if !b.ValidTexture(id) {
		t.Fatal("Reset dropped texture registration")
	}
}
