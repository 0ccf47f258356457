package sprite

// Flip mirrors a sprite's texture coordinates. Flips affect only which
// texel each corner samples; the quad's position winding never changes.
type Flip uint8

const (
	FlipNone       Flip = 0
	FlipHorizontal Flip = 1 << 0
	FlipVertical   Flip = 1 << 1
)

// Sprite is a full draw pose: one textured quad submission.
//
// The zero Color is transparent; set Color (usually White) for the
// sprite to be visible. The convenience methods Draw and DrawRect fill
// these fields for the common cases.
type Sprite struct {
	// Texture supplies the pixels and the batching identity: consecutive
	// submissions with the same Texture value merge into one draw call.
	Texture Texture

	// Source selects a texel sub-rectangle of the texture.
	// Nil draws the whole texture.
	Source *Rect

	// Dest places the sprite. X, Y anchor the Origin point in pixel
	// space. W, H are the size in pixels, or scale factors applied to
	// the source size when ScaleBySource is set.
	Dest Rect

	// ScaleBySource interprets Dest.W and Dest.H as multipliers of the
	// source rectangle's pixel size (the full texture size when Source
	// is nil) instead of absolute pixels.
	ScaleBySource bool

	// Origin is the anchor and rotation pivot in pixels, relative to the
	// source rectangle's top-left corner.
	Origin Point

	// Rotation is the angle in radians around Origin, clockwise in
	// Y-down pixel space.
	Rotation float32

	// Flip mirrors the sampled texels horizontally and/or vertically.
	Flip Flip

	// Color tints all four corners.
	Color Color

	// Depth is written unchanged to the Z component of every vertex.
	Depth float32
}

// Options configures a session at Begin. Nil pointer fields select the
// engine defaults; a nil *Options selects all defaults.
type Options struct {
	// Blend defaults to BlendAlphaPremultiplied.
	Blend *BlendState

	// Sampler defaults to SamplerLinearClamp.
	Sampler *SamplerState

	// DepthStencil defaults to DepthNone.
	DepthStencil *DepthStencilState

	// Rasterizer defaults to RasterCullCounterClockwise.
	Rasterizer *RasterizerState

	// Effect overrides the device's default effect for this session.
	Effect Effect

	// Transform is applied to sprite positions before the projection.
	// Defaults to identity.
	Transform *Mat4

	// Immediate disables batching: every submission uploads and draws
	// on its own, and End performs no final flush. Render state is
	// applied once at Begin.
	Immediate bool
}
