package sprite

import (
	"log/slog"

	"github.com/gogpu/sprite/gpucore"
	"github.com/gogpu/sprite/text"
)

// SpriteBatch accumulates sprites between Begin and End and flushes
// them to a backend as a minimal set of draw calls. It is not safe for
// concurrent use; a batch belongs to the goroutine driving the frame.
//
// The lifecycle is a strict two-state machine:
//
//	sb.Begin()        // idle -> drawing
//	sb.Draw(...)      // drawing only
//	sb.End()          // drawing -> idle, flushes
//
// Calling Draw or End while idle returns ErrNotBegun; calling Begin
// twice returns ErrAlreadyBegun.
type SpriteBatch struct {
	backend gpucore.DrawBackend

	active bool
	cfg    beginConfig

	buf    itemBuffer
	stream vertexStream
	runs   []batchRun

	// Flush statistics for the most recent End, exposed for tests and
	// frame profiling.
	stats FlushStats
}

// FlushStats describes the work done by the most recent flush.
type FlushStats struct {
	Sprites   int
	DrawCalls int
}

// New creates a SpriteBatch on the given backend.
func New(backend gpucore.DrawBackend) (*SpriteBatch, error) {
	if backend == nil {
		return nil, ErrNilBackend
	}
	return &SpriteBatch{backend: backend}, nil
}

// Begin starts a frame. Options choose the sort mode and an optional
// global transform for the frame.
func (sb *SpriteBatch) Begin(opts ...BeginOption) error {
	if sb.active {
		return ErrAlreadyBegun
	}
	cfg := defaultBeginConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if !cfg.sortMode.valid() {
		return ErrUnknownSortMode
	}
	sb.cfg = cfg
	sb.active = true
	sb.buf.Reset()
	return nil
}

// Draw buffers one sprite. In immediate mode it is flushed to the
// backend before Draw returns; otherwise it waits for End.
//
// Zero-value conveniences: a zero Scale means (1,1) and a zero Source
// means the full texture.
func (sb *SpriteBatch) Draw(tex gpucore.TextureID, p QuadParams) error {
	if !sb.active {
		return ErrNotBegun
	}
	if tex == gpucore.InvalidID || !sb.backend.ValidTexture(tex) {
		return ErrInvalidTexture
	}
	if p.Scale == (Point{}) {
		p.Scale = Point{X: 1, Y: 1}
	}
	if p.Source == (Rect{}) {
		p.Source = UnitRect()
	}
	if p.Color == (Color{}) {
		p.Color = White
	}

	q := BuildQuad(p)
	if !sb.cfg.transform.IsIdentity() {
		q.Transform(sb.cfg.transform)
	}
	sb.buf.Push(DrawItem{
		Texture: tex,
		Quad:    q,
		SortKey: p.Depth,
	})

	if sb.cfg.sortMode == SortImmediate {
		return sb.flush()
	}
	return nil
}

// DrawRect draws the full texture into a destination rectangle with a
// tint. It is shorthand for Draw with a sized QuadParams.
func (sb *SpriteBatch) DrawRect(tex gpucore.TextureID, dst Rect, tint Color) error {
	return sb.Draw(tex, QuadParams{
		Position: Point{X: dst.MinX, Y: dst.MinY},
		Size:     Point{X: dst.Width(), Y: dst.Height()},
		Color:    tint,
	})
}

// DrawString draws a line of text at pos using a shaped face. Glyphs
// come from the face's atlas texture and batch like any other sprite,
// so text interleaves freely with sprite draws.
func (sb *SpriteBatch) DrawString(face *text.Face, s string, pos Point, tint Color) error {
	if !sb.active {
		return ErrNotBegun
	}
	if face == nil {
		return ErrNoFont
	}
	glyphs, err := face.Layout(s)
	if err != nil {
		return err
	}
	for i := range glyphs {
		g := &glyphs[i]
		if err := sb.Draw(g.Texture, QuadParams{
			Position: Point{X: pos.X + g.X, Y: pos.Y + g.Y},
			Size:     Point{X: g.W, Y: g.H},
			Source:   Rect{MinX: g.U0, MinY: g.V0, MaxX: g.U1, MaxY: g.V1},
			Color:    tint,
		}); err != nil {
			return err
		}
	}
	return nil
}

// End flushes all buffered sprites and returns the batch to the idle
// state. The batch stays usable after an error; a failed flush drops
// the frame's items so the next Begin starts clean.
func (sb *SpriteBatch) End() error {
	if !sb.active {
		return ErrNotBegun
	}
	err := sb.flush()
	sb.active = false
	return err
}

// Stats returns the flush statistics of the most recent End (or of the
// most recent immediate-mode Draw).
func (sb *SpriteBatch) Stats() FlushStats {
	return sb.stats
}

// Pending returns the number of sprites buffered and not yet flushed.
// In immediate mode this is always zero after Draw returns.
func (sb *SpriteBatch) Pending() int {
	return sb.buf.Len()
}

// flush sorts, coalesces, and submits everything currently buffered.
func (sb *SpriteBatch) flush() error {
	items := sb.buf.items
	defer sb.buf.Reset()

	sb.stats = FlushStats{Sprites: len(items)}
	if len(items) == 0 {
		return nil
	}

	if err := sortItems(items, sb.cfg.sortMode); err != nil {
		return err
	}
	sb.runs = coalesce(items, &sb.stream, sb.runs)
	sb.stats.DrawCalls = len(sb.runs)

	quads := len(items)
	if err := sb.backend.EnsureBufferCapacity(
		quads*gpucore.VerticesPerQuad,
		quads*gpucore.IndicesPerQuad,
	); err != nil {
		return err
	}
	if err := sb.backend.UploadVertices(sb.stream.verts); err != nil {
		return err
	}
	if err := sb.backend.ApplyRenderState(); err != nil {
		return err
	}
	for _, run := range sb.runs {
		if err := sb.backend.SubmitDrawCall(run.texture, run.firstVertex, run.vertexCount); err != nil {
			return err
		}
	}
	if err := sb.backend.FinishFrame(); err != nil {
		return err
	}

	Logger().Debug("sprite: flush",
		slog.Int("sprites", len(items)),
		slog.Int("draw_calls", len(sb.runs)),
		slog.String("sort_mode", sb.cfg.sortMode.String()),
	)
	return nil
}
