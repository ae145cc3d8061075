// Package native implements the sprite draw backend on top of the
// WebGPU HAL. One render pipeline draws every sprite; per-texture bind
// groups are created once per texture and reused across frames, so the
// per-flush cost is one buffer upload plus one draw call per batch.
package native

import (
	"fmt"
	"sync"
	"time"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/sprite/backend"
	"github.com/gogpu/sprite/gpucore"
)

func init() {
	backend.Register("native", func(cfg backend.Config) (gpucore.DrawBackend, error) {
		return New(cfg)
	})
}

// spriteUniformSize is the byte size of the shader's Uniforms struct:
// one vec4<f32> holding the viewport size.
const spriteUniformSize = 16

// initialQuadCapacity sizes the GPU buffers on first use.
const initialQuadCapacity = 256

// fenceTimeout bounds the wait for frame completion.
const fenceTimeout = 5 * time.Second

// textureEntry is one registered texture with its view and the bind
// group that samples it.
type textureEntry struct {
	texture   hal.Texture
	view      hal.TextureView
	bindGroup hal.BindGroup
	width     int
	height    int
}

// Backend submits sprite draw calls through a HAL device. Texture
// registration is safe for concurrent use; the draw path follows the
// single-threaded gpucore.DrawBackend contract.
type Backend struct {
	device hal.Device
	queue  hal.Queue
	label  string

	// Pipeline objects, created lazily on first use.
	shader      hal.ShaderModule
	bindLayout  hal.BindGroupLayout
	pipeLayout  hal.PipelineLayout
	pipeline    hal.RenderPipeline
	sampler     hal.Sampler
	uniformBuf  hal.Buffer

	// Shared vertex/index buffers with monotonic capacity.
	vertexBuf    hal.Buffer
	indexBuf     hal.Buffer
	vertexCap    int
	indexCap     int
	indexPattern []uint16
	staging      []byte

	mu       sync.RWMutex
	nextID   gpucore.TextureID
	textures map[gpucore.TextureID]*textureEntry

	// Current render target. The first flush after SetRenderTarget
	// clears it; later flushes in the same frame load.
	target       hal.TextureView
	width        uint32
	height       uint32
	clearValue   gputypes.Color
	clearPending bool

	// In-flight flush state between ApplyRenderState and FinishFrame.
	encoder hal.CommandEncoder
	pass    hal.RenderPassEncoder
}

// New creates a backend from the registry config. The provider must
// expose HAL device and queue handles via HalDevice() any and
// HalQueue() any.
func New(cfg backend.Config) (*Backend, error) {
	if cfg.Provider == nil {
		return nil, ErrNoProvider
	}
	type halProvider interface {
		HalDevice() any
		HalQueue() any
	}
	hp, ok := cfg.Provider.(halProvider)
	if !ok {
		return nil, ErrNoHALDevice
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		return nil, ErrNoHALDevice
	}
	queue, ok := hp.HalQueue().(hal.Queue)
	if !ok || queue == nil {
		return nil, ErrNoHALDevice
	}

	label := cfg.Label
	if label == "" {
		label = "sprite"
	}
	return &Backend{
		device:   device,
		queue:    queue,
		label:    label,
		nextID:   1,
		textures: make(map[gpucore.TextureID]*textureEntry),
	}, nil
}

// SetRenderTarget directs subsequent flushes at the given texture view.
// The first flush clears it to clearValue; later flushes in the same
// frame draw on top. The caller retains ownership of the view.
func (b *Backend) SetRenderTarget(view hal.TextureView, width, height uint32, clearValue gputypes.Color) error {
	if err := b.ensurePipeline(); err != nil {
		return err
	}
	b.target = view
	b.width = width
	b.height = height
	b.clearValue = clearValue
	b.clearPending = true

	// Viewport uniform: vec4(width, height, 0, 0).
	var uniform [spriteUniformSize]byte
	putFloat32(uniform[0:], float32(width))
	putFloat32(uniform[4:], float32(height))
	b.queue.WriteBuffer(b.uniformBuf, 0, uniform[:])
	return nil
}

// CreateTexture registers an RGBA8 texture and uploads its pixels.
// pixels must hold width*height*4 bytes.
func (b *Backend) CreateTexture(width, height int, pixels []byte) (gpucore.TextureID, error) {
	if width <= 0 || height <= 0 {
		return gpucore.InvalidID, fmt.Errorf("native: texture dimensions must be positive, got %dx%d", width, height)
	}
	if len(pixels) != width*height*4 {
		return gpucore.InvalidID, fmt.Errorf("native: pixel data is %d bytes, want %d", len(pixels), width*height*4)
	}
	if err := b.ensurePipeline(); err != nil {
		return gpucore.InvalidID, err
	}

	tex, err := b.device.CreateTexture(&hal.TextureDescriptor{
		Label: b.label + "_texture",
		Size: hal.Extent3D{
			Width:              uint32(width),
			Height:             uint32(height),
			DepthOrArrayLayers: 1,
		},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        gputypes.TextureFormatRGBA8Unorm,
		Usage:         gputypes.TextureUsageTextureBinding | gputypes.TextureUsageCopyDst,
	})
	if err != nil {
		return gpucore.InvalidID, fmt.Errorf("native: create texture: %w", err)
	}

	view, err := b.device.CreateTextureView(tex, &hal.TextureViewDescriptor{
		Label:         b.label + "_texture_view",
		Format:        gputypes.TextureFormatRGBA8Unorm,
		Dimension:     gputypes.TextureViewDimension2D,
		Aspect:        gputypes.TextureAspectAll,
		MipLevelCount: 1,
	})
	if err != nil {
		b.device.DestroyTexture(tex)
		return gpucore.InvalidID, fmt.Errorf("native: create texture view: %w", err)
	}

	bindGroup, err := b.device.CreateBindGroup(&hal.BindGroupDescriptor{
		Label:  b.label + "_texture_bind",
		Layout: b.bindLayout,
		Entries: []gputypes.BindGroupEntry{
			{Binding: 0, Resource: gputypes.BufferBinding{
				Buffer: b.uniformBuf.NativeHandle(), Offset: 0, Size: spriteUniformSize,
			}},
			{Binding: 1, Resource: gputypes.TextureViewBinding{
				TextureView: view.NativeHandle(),
			}},
			{Binding: 2, Resource: gputypes.SamplerBinding{
				Sampler: b.sampler.NativeHandle(),
			}},
		},
	})
	if err != nil {
		b.device.DestroyTextureView(view)
		b.device.DestroyTexture(tex)
		return gpucore.InvalidID, fmt.Errorf("native: create texture bind group: %w", err)
	}

	b.queue.WriteTexture(
		&hal.ImageCopyTexture{Texture: tex, MipLevel: 0},
		pixels,
		&hal.ImageDataLayout{
			Offset:       0,
			BytesPerRow:  uint32(width * 4),
			RowsPerImage: uint32(height),
		},
		&hal.Extent3D{
			Width:              uint32(width),
			Height:             uint32(height),
			DepthOrArrayLayers: 1,
		},
	)

	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.textures[id] = &textureEntry{
		texture:   tex,
		view:      view,
		bindGroup: bindGroup,
		width:     width,
		height:    height,
	}
	b.mu.Unlock()
	return id, nil
}

// UpdateTexture replaces the pixel contents of an existing texture.
func (b *Backend) UpdateTexture(id gpucore.TextureID, pixels []byte) error {
	b.mu.RLock()
	entry, ok := b.textures[id]
	b.mu.RUnlock()
	if !ok {
		return ErrTextureNotFound
	}
	if len(pixels) != entry.width*entry.height*4 {
		return fmt.Errorf("native: pixel data is %d bytes, want %d", len(pixels), entry.width*entry.height*4)
	}
	b.queue.WriteTexture(
		&hal.ImageCopyTexture{Texture: entry.texture, MipLevel: 0},
		pixels,
		&hal.ImageDataLayout{
			Offset:       0,
			BytesPerRow:  uint32(entry.width * 4),
			RowsPerImage: uint32(entry.height),
		},
		&hal.Extent3D{
			Width:              uint32(entry.width),
			Height:             uint32(entry.height),
			DepthOrArrayLayers: 1,
		},
	)
	return nil
}

// DestroyTexture releases a texture and its bind group. Draws already
// buffered against the ID will fail validation on their next use.
func (b *Backend) DestroyTexture(id gpucore.TextureID) {
	b.mu.Lock()
	entry, ok := b.textures[id]
	if ok {
		delete(b.textures, id)
	}
	b.mu.Unlock()
	if !ok {
		return
	}
	b.device.DestroyBindGroup(entry.bindGroup)
	b.device.DestroyTextureView(entry.view)
	b.device.DestroyTexture(entry.texture)
}

// ValidTexture implements gpucore.DrawBackend.
func (b *Backend) ValidTexture(id gpucore.TextureID) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, ok := b.textures[id]
	return ok
}

// EnsureBufferCapacity implements gpucore.DrawBackend. Buffers grow by
// doubling and never shrink; the index buffer is refilled with the quad
// index pattern whenever it grows.
func (b *Backend) EnsureBufferCapacity(minVertices, minIndices int) error {
	if err := b.ensurePipeline(); err != nil {
		return err
	}
	if minVertices > gpucore.MaxQuadsPerDraw*gpucore.VerticesPerQuad {
		return fmt.Errorf("native: %d vertices exceeds the 16-bit index range", minVertices)
	}

	if minVertices > b.vertexCap {
		newCap := growCapacity(b.vertexCap, minVertices, initialQuadCapacity*gpucore.VerticesPerQuad)
		buf, err := b.device.CreateBuffer(&hal.BufferDescriptor{
			Label: b.label + "_vertices",
			Size:  uint64(newCap) * gpucore.VertexStride,
			Usage: gputypes.BufferUsageVertex | gputypes.BufferUsageCopyDst,
		})
		if err != nil {
			return fmt.Errorf("native: grow vertex buffer: %w", err)
		}
		if b.vertexBuf != nil {
			b.device.DestroyBuffer(b.vertexBuf)
		}
		b.vertexBuf = buf
		b.vertexCap = newCap
	}

	if minIndices > b.indexCap {
		newCap := growCapacity(b.indexCap, minIndices, initialQuadCapacity*gpucore.IndicesPerQuad)
		buf, err := b.device.CreateBuffer(&hal.BufferDescriptor{
			Label: b.label + "_indices",
			Size:  uint64(newCap) * 2,
			Usage: gputypes.BufferUsageIndex | gputypes.BufferUsageCopyDst,
		})
		if err != nil {
			return fmt.Errorf("native: grow index buffer: %w", err)
		}
		if b.indexBuf != nil {
			b.device.DestroyBuffer(b.indexBuf)
		}
		b.indexBuf = buf
		b.indexCap = newCap

		b.indexPattern = gpucore.QuadIndices(b.indexPattern, newCap/gpucore.IndicesPerQuad)
		b.queue.WriteBuffer(b.indexBuf, 0, indexBytes(b.indexPattern[:newCap/gpucore.IndicesPerQuad*gpucore.IndicesPerQuad]))
	}
	return nil
}

// UploadVertices implements gpucore.DrawBackend.
func (b *Backend) UploadVertices(verts []gpucore.Vertex) error {
	if len(verts) == 0 {
		return nil
	}
	if len(verts) > b.vertexCap {
		return fmt.Errorf("native: upload of %d vertices exceeds capacity %d", len(verts), b.vertexCap)
	}
	b.staging = gpucore.EncodeVertices(b.staging, verts)
	b.queue.WriteBuffer(b.vertexBuf, 0, b.staging)
	return nil
}

// ApplyRenderState implements gpucore.DrawBackend. It opens the frame's
// command encoder and render pass and binds the sprite pipeline and
// shared buffers.
func (b *Backend) ApplyRenderState() error {
	if b.target == nil {
		return ErrNoTarget
	}
	if err := b.ensurePipeline(); err != nil {
		return err
	}

	encoder, err := b.device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{
		Label: b.label + "_encoder",
	})
	if err != nil {
		return fmt.Errorf("native: create command encoder: %w", err)
	}
	if err := encoder.BeginEncoding(b.label + "_flush"); err != nil {
		return fmt.Errorf("native: begin encoding: %w", err)
	}

	loadOp := gputypes.LoadOpLoad
	if b.clearPending {
		loadOp = gputypes.LoadOpClear
	}
	rp := encoder.BeginRenderPass(&hal.RenderPassDescriptor{
		Label: b.label + "_pass",
		ColorAttachments: []hal.RenderPassColorAttachment{{
			View:       b.target,
			LoadOp:     loadOp,
			StoreOp:    gputypes.StoreOpStore,
			ClearValue: b.clearValue,
		}},
	})
	rp.SetPipeline(b.pipeline)
	rp.SetVertexBuffer(0, b.vertexBuf, 0)
	rp.SetIndexBuffer(b.indexBuf, gputypes.IndexFormatUint16, 0)

	b.encoder = encoder
	b.pass = rp
	b.clearPending = false
	return nil
}

// SubmitDrawCall implements gpucore.DrawBackend. vertexCount is a
// multiple of 4; the draw covers the corresponding span of the quad
// index pattern.
func (b *Backend) SubmitDrawCall(tex gpucore.TextureID, firstVertex, vertexCount int) error {
	if b.pass == nil {
		return ErrNoOpenPass
	}
	b.mu.RLock()
	entry, ok := b.textures[tex]
	b.mu.RUnlock()
	if !ok {
		return ErrTextureNotFound
	}

	firstIndex := firstVertex / gpucore.VerticesPerQuad * gpucore.IndicesPerQuad
	indexCount := vertexCount / gpucore.VerticesPerQuad * gpucore.IndicesPerQuad

	b.pass.SetBindGroup(0, entry.bindGroup, nil)
	b.pass.DrawIndexed(uint32(indexCount), 1, uint32(firstIndex), 0, 0)
	return nil
}

// FinishFrame implements gpucore.DrawBackend. It closes the render
// pass, submits the command buffer, and waits for completion.
func (b *Backend) FinishFrame() error {
	if b.pass == nil {
		return ErrNoOpenPass
	}
	b.pass.End()
	b.pass = nil

	cmdBuf, err := b.encoder.EndEncoding()
	b.encoder = nil
	if err != nil {
		return fmt.Errorf("native: end encoding: %w", err)
	}
	defer b.device.FreeCommandBuffer(cmdBuf)

	fence, err := b.device.CreateFence()
	if err != nil {
		return fmt.Errorf("native: create fence: %w", err)
	}
	defer b.device.DestroyFence(fence)

	if err := b.queue.Submit([]hal.CommandBuffer{cmdBuf}, fence, 1); err != nil {
		return fmt.Errorf("native: submit: %w", err)
	}
	fenceOK, err := b.device.Wait(fence, 1, fenceTimeout)
	if err != nil || !fenceOK {
		return fmt.Errorf("native: wait for GPU: ok=%v err=%w", fenceOK, err)
	}
	return nil
}

// Destroy releases every GPU resource the backend holds, in reverse
// creation order. Safe to call multiple times.
func (b *Backend) Destroy() {
	b.mu.Lock()
	for id, entry := range b.textures {
		b.device.DestroyBindGroup(entry.bindGroup)
		b.device.DestroyTextureView(entry.view)
		b.device.DestroyTexture(entry.texture)
		delete(b.textures, id)
	}
	b.mu.Unlock()

	if b.indexBuf != nil {
		b.device.DestroyBuffer(b.indexBuf)
		b.indexBuf = nil
		b.indexCap = 0
	}
	if b.vertexBuf != nil {
		b.device.DestroyBuffer(b.vertexBuf)
		b.vertexBuf = nil
		b.vertexCap = 0
	}
	if b.uniformBuf != nil {
		b.device.DestroyBuffer(b.uniformBuf)
		b.uniformBuf = nil
	}
	if b.sampler != nil {
		b.device.DestroySampler(b.sampler)
		b.sampler = nil
	}
	if b.pipeline != nil {
		b.device.DestroyRenderPipeline(b.pipeline)
		b.pipeline = nil
	}
	if b.pipeLayout != nil {
		b.device.DestroyPipelineLayout(b.pipeLayout)
		b.pipeLayout = nil
	}
	if b.bindLayout != nil {
		b.device.DestroyBindGroupLayout(b.bindLayout)
		b.bindLayout = nil
	}
	if b.shader != nil {
		b.device.DestroyShaderModule(b.shader)
		b.shader = nil
	}
}

// ensurePipeline creates the shader, layouts, sampler, uniform buffer,
// and render pipeline if they don't already exist.
func (b *Backend) ensurePipeline() error {
	if b.pipeline != nil {
		return nil
	}

	shader, err := compileShader(b.device, b.label+"_shader", spriteShaderSource)
	if err != nil {
		return fmt.Errorf("native: compile sprite shader: %w", err)
	}
	b.shader = shader

	// Bind group layout:
	//   Binding 0: Uniforms (uniform buffer, vertex)
	//   Binding 1: sprite texture (texture_2d, fragment)
	//   Binding 2: sampler (fragment)
	bindLayout, err := b.device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label: b.label + "_bind_layout",
		Entries: []gputypes.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: gputypes.ShaderStageVertex,
				Buffer:     &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeUniform},
			},
			{
				Binding:    1,
				Visibility: gputypes.ShaderStageFragment,
				Texture: &gputypes.TextureBindingLayout{
					SampleType:    gputypes.TextureSampleTypeFloat,
					ViewDimension: gputypes.TextureViewDimension2D,
				},
			},
			{
				Binding:    2,
				Visibility: gputypes.ShaderStageFragment,
				Sampler:    &gputypes.SamplerBindingLayout{Type: gputypes.SamplerBindingTypeFiltering},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("native: create bind group layout: %w", err)
	}
	b.bindLayout = bindLayout

	pipeLayout, err := b.device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label:            b.label + "_pipe_layout",
		BindGroupLayouts: []hal.BindGroupLayout{b.bindLayout},
	})
	if err != nil {
		return fmt.Errorf("native: create pipeline layout: %w", err)
	}
	b.pipeLayout = pipeLayout

	sampler, err := b.device.CreateSampler(&hal.SamplerDescriptor{
		Label:        b.label + "_sampler",
		AddressModeU: gputypes.AddressModeClampToEdge,
		AddressModeV: gputypes.AddressModeClampToEdge,
		AddressModeW: gputypes.AddressModeClampToEdge,
		MagFilter:    gputypes.FilterModeLinear,
		MinFilter:    gputypes.FilterModeLinear,
		MipmapFilter: gputypes.FilterModeNearest,
	})
	if err != nil {
		return fmt.Errorf("native: create sampler: %w", err)
	}
	b.sampler = sampler

	uniformBuf, err := b.device.CreateBuffer(&hal.BufferDescriptor{
		Label: b.label + "_uniforms",
		Size:  spriteUniformSize,
		Usage: gputypes.BufferUsageUniform | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("native: create uniform buffer: %w", err)
	}
	b.uniformBuf = uniformBuf

	premulBlend := gputypes.BlendStatePremultiplied()
	pipeline, err := b.device.CreateRenderPipeline(&hal.RenderPipelineDescriptor{
		Label:  b.label + "_pipeline",
		Layout: b.pipeLayout,
		Vertex: hal.VertexState{
			Module:     b.shader,
			EntryPoint: "vs_main",
			Buffers:    spriteVertexLayout(),
		},
		Fragment: &hal.FragmentState{
			Module:     b.shader,
			EntryPoint: "fs_main",
			Targets: []gputypes.ColorTargetState{
				{
					Format:    gputypes.TextureFormatBGRA8Unorm,
					Blend:     &premulBlend,
					WriteMask: gputypes.ColorWriteMaskAll,
				},
			},
		},
		Primitive: gputypes.PrimitiveState{
			Topology: gputypes.PrimitiveTopologyTriangleList,
			CullMode: gputypes.CullModeNone,
		},
		Multisample: gputypes.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
	})
	if err != nil {
		return fmt.Errorf("native: create sprite pipeline: %w", err)
	}
	b.pipeline = pipeline
	return nil
}

// spriteVertexLayout returns the vertex buffer layout matching
// gpucore.Vertex.
func spriteVertexLayout() []gputypes.VertexBufferLayout {
	return []gputypes.VertexBufferLayout{
		{
			ArrayStride: gpucore.VertexStride,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0}, // position
				{Format: gputypes.VertexFormatFloat32x2, Offset: 8, ShaderLocation: 1}, // uv
				{Format: gputypes.VertexFormatUnorm8x4, Offset: 16, ShaderLocation: 2}, // color
				{Format: gputypes.VertexFormatFloat32, Offset: 20, ShaderLocation: 3},  // depth
			},
		},
	}
}

// growCapacity doubles cap until it covers want, starting from a
// minimum initial size.
func growCapacity(current, want, initial int) int {
	next := current * 2
	if next < initial {
		next = initial
	}
	if next < want {
		next = want
	}
	return next
}
