package sprite

import "github.com/gogpu/sprite/gpucore"

// batchRun is one coalesced draw call: a contiguous span of staged
// vertices sharing a texture.
type batchRun struct {
	texture     gpucore.TextureID
	firstVertex int
	vertexCount int
}

// coalesce walks the (already sorted) items, unrolls their quads onto
// the stream, and merges adjacent items with the same texture into
// single runs. With texture sorting this reduces a frame to one run
// per distinct texture; without it, to one run per texture switch.
func coalesce(items []DrawItem, stream *vertexStream, runs []batchRun) []batchRun {
	runs = runs[:0]
	stream.Reset()
	stream.EnsureCapacity(len(items) * gpucore.VerticesPerQuad)

	for i := range items {
		it := &items[i]
		first := stream.AppendQuad(&it.Quad)
		if n := len(runs); n > 0 && runs[n-1].texture == it.Texture {
			runs[n-1].vertexCount += gpucore.VerticesPerQuad
			continue
		}
		runs = append(runs, batchRun{
			texture:     it.Texture,
			firstVertex: first,
			vertexCount: gpucore.VerticesPerQuad,
		})
	}
	return runs
}
