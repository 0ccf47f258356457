package sprite

import "fmt"

// MaxSprites is the accumulation capacity per flush. 2048 sprites is
// 8192 vertices, the largest power-of-two batch that still addresses
// every vertex with a uint16 index.
const MaxSprites = 2048

// Batch accumulates sprite submissions and turns them into the minimal
// sequence of vertex uploads and indexed draw calls for the device.
//
// A Batch is used in sessions bracketed by Begin and End. Within a
// session, consecutive submissions that share a texture merge into a
// single draw call; a full buffer flushes implicitly and keeps going.
//
// A Batch is not safe for concurrent use. All methods must be called
// from one goroutine, and callbacks into the device happen on that
// goroutine.
type Batch struct {
	device Device

	// verts is the vertex arena: 4*MaxSprites entries allocated once,
	// reused across flushes. Entries [0, 4*count) are valid.
	verts []Vertex

	// textures[i] is the batching identity of quad i, parallel to
	// verts[i*4 : i*4+4].
	textures []Texture

	count int
	open  bool

	// Session state captured at Begin.
	blend     BlendState
	sampler   SamplerState
	depth     DepthStencilState
	raster    RasterizerState
	effect    Effect
	transform Mat4
	immediate bool
}

// NewBatch creates a batch driving the given device. The device's
// vertex store is sized for MaxSprites quads and its index store is
// filled with the static quad index pattern, once, here.
func NewBatch(device Device) (*Batch, error) {
	if device == nil {
		return nil, ErrNilDevice
	}
	if err := device.InitBuffers(4*MaxSprites, quadIndices(MaxSprites)); err != nil {
		return nil, fmt.Errorf("sprite: init device buffers: %w", err)
	}
	Logger().Debug("sprite: batch created",
		"capacity", MaxSprites,
		"vertexBytes", 4*MaxSprites*VertexStride)
	return &Batch{
		device:   device,
		verts:    make([]Vertex, 4*MaxSprites),
		textures: make([]Texture, MaxSprites),
	}, nil
}

// Begin opens a session. opts may be nil for all defaults; see Options
// for the per-field defaults. Begin fails with ErrAlreadyOpen if a
// session is already open, leaving the batch untouched.
func (b *Batch) Begin(opts *Options) error {
	if b.open {
		return ErrAlreadyOpen
	}
	if opts == nil {
		opts = &Options{}
	}

	effect := opts.Effect
	if effect == nil {
		effect = b.device.DefaultEffect()
	}
	if effect == nil {
		return ErrNoEffect
	}

	b.blend = BlendAlphaPremultiplied
	if opts.Blend != nil {
		b.blend = *opts.Blend
	}
	b.sampler = SamplerLinearClamp
	if opts.Sampler != nil {
		b.sampler = *opts.Sampler
	}
	b.depth = DepthNone
	if opts.DepthStencil != nil {
		b.depth = *opts.DepthStencil
	}
	b.raster = RasterCullCounterClockwise
	if opts.Rasterizer != nil {
		b.raster = *opts.Rasterizer
	}
	b.transform = Identity()
	if opts.Transform != nil {
		b.transform = *opts.Transform
	}
	b.effect = effect
	b.immediate = opts.Immediate
	b.open = true

	// Immediate sessions draw standalone on every submission, so the
	// render state must be bound up front rather than per flush.
	if b.immediate {
		b.applyRenderState()
	}
	return nil
}

// End closes the session. Batched sessions flush any accumulated
// sprites first; immediate sessions have nothing left to flush. The
// session always closes, even when the flush fails, and sprites that
// could not be flushed are discarded rather than carried into the
// next session.
func (b *Batch) End() error {
	if !b.open {
		return ErrNotOpen
	}
	var err error
	if !b.immediate {
		err = b.flush()
	}
	b.count = 0
	b.open = false
	b.effect = nil
	return err
}

// IsOpen reports whether a session is open.
func (b *Batch) IsOpen() bool {
	return b.open
}

// SpriteCount returns the number of sprites accumulated since the last
// flush.
func (b *Batch) SpriteCount() int {
	return b.count
}

// DrawSprite submits one sprite. Outside a session it fails with
// ErrNotOpen; a full buffer flushes implicitly and the submission
// still succeeds.
func (b *Batch) DrawSprite(sp *Sprite) error {
	if !b.open {
		return ErrNotOpen
	}
	if sp == nil {
		return ErrNilSprite
	}
	if sp.Texture == nil {
		return ErrNilTexture
	}

	texW := float32(sp.Texture.Width())
	texH := float32(sp.Texture.Height())

	if b.immediate {
		buildQuad(b.verts[:4], sp, texW, texH)
		b.textures[0] = sp.Texture
		if err := b.applyTransform(); err != nil {
			return err
		}
		if err := b.device.UploadVertices(b.verts[:4], true); err != nil {
			return fmt.Errorf("sprite: upload vertices: %w", err)
		}
		return b.drawRuns(1)
	}

	if b.count == MaxSprites {
		if err := b.flush(); err != nil {
			return err
		}
	}
	i := b.count
	buildQuad(b.verts[i*4:i*4+4], sp, texW, texH)
	b.textures[i] = sp.Texture
	b.count = i + 1
	return nil
}

// Draw submits the whole texture at its natural size with its top-left
// corner at (x, y), untinted.
func (b *Batch) Draw(tex Texture, x, y float32) error {
	return b.DrawSprite(&Sprite{
		Texture:       tex,
		Dest:          Rect{X: x, Y: y, W: 1, H: 1},
		ScaleBySource: true,
		Color:         White,
	})
}

// DrawRect submits the whole texture stretched into dst, untinted.
func (b *Batch) DrawRect(tex Texture, dst Rect) error {
	return b.DrawSprite(&Sprite{
		Texture: tex,
		Dest:    dst,
		Color:   White,
	})
}

// flush emits everything accumulated since the last flush: render
// state, the combined transform, one vertex upload, and one indexed
// draw call per run of consecutive same-texture quads. An empty buffer
// flushes to nothing without touching the device.
func (b *Batch) flush() error {
	if b.count == 0 {
		return nil
	}
	b.applyRenderState()
	if err := b.applyTransform(); err != nil {
		return err
	}
	if err := b.device.UploadVertices(b.verts[:4*b.count], true); err != nil {
		return fmt.Errorf("sprite: upload vertices: %w", err)
	}
	if err := b.drawRuns(b.count); err != nil {
		return err
	}
	Logger().Debug("sprite: batch flushed", "sprites", b.count)
	b.count = 0
	return nil
}

// applyRenderState binds the session's render state and the engine's
// vertex and index stores.
func (b *Batch) applyRenderState() {
	b.device.SetBlendState(b.blend)
	b.device.SetSamplerState(0, b.sampler)
	b.device.SetDepthStencilState(b.depth)
	b.device.SetRasterizerState(b.raster)
	b.device.BindBuffers()
}

// applyTransform rebuilds the projection from the device's current
// viewport, combines it with the session transform, and hands the
// result to the effect. Recomputed every flush because the viewport
// may change between flushes.
func (b *Batch) applyTransform() error {
	w, h := b.device.ViewportSize()
	combined := Ortho(float32(w), float32(h)).Mul(b.transform)
	if err := b.effect.SetMatrix(TransformParam, combined); err != nil {
		return fmt.Errorf("sprite: set %s parameter: %w", TransformParam, err)
	}
	return nil
}

// drawRuns issues the draw calls for quads [0, n): for every effect
// pass, scan the texture identities left to right and emit one indexed
// draw per maximal run of equal textures.
func (b *Batch) drawRuns(n int) error {
	for _, pass := range b.effect.Passes() {
		if err := pass.Apply(); err != nil {
			return fmt.Errorf("sprite: apply effect pass: %w", err)
		}
		start := 0
		for i := 1; i <= n; i++ {
			if i < n && b.textures[i] == b.textures[start] {
				continue
			}
			if err := b.device.BindTexture(0, b.textures[start]); err != nil {
				return fmt.Errorf("sprite: bind texture: %w", err)
			}
			if err := b.device.DrawIndexedQuads(start, i-start); err != nil {
				return fmt.Errorf("sprite: draw quads: %w", err)
			}
			start = i
		}
	}
	return nil
}
