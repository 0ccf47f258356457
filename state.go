// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package sprite

// BlendFactor selects a source or destination blend coefficient.
type BlendFactor uint8

const (
	BlendZero BlendFactor = iota
	BlendOne
	BlendSrcAlpha
	BlendOneMinusSrcAlpha
	BlendDstAlpha
	BlendOneMinusDstAlpha
)

// BlendOp combines the weighted source and destination terms.
type BlendOp uint8

const (
	BlendOpAdd BlendOp = iota
	BlendOpSubtract
	BlendOpReverseSubtract
)

// BlendState describes how fragment output is combined with the render
// target, with separate color and alpha equations.
type BlendState struct {
	ColorSrc BlendFactor
	ColorDst BlendFactor
	ColorOp  BlendOp
	AlphaSrc BlendFactor
	AlphaDst BlendFactor
	AlphaOp  BlendOp
}

// Predefined blend states. Treat as read-only.
var (
	// BlendAlphaPremultiplied blends premultiplied-alpha sources over the
	// target. It is the session default.
	BlendAlphaPremultiplied = BlendState{
		ColorSrc: BlendOne, ColorDst: BlendOneMinusSrcAlpha, ColorOp: BlendOpAdd,
		AlphaSrc: BlendOne, AlphaDst: BlendOneMinusSrcAlpha, AlphaOp: BlendOpAdd,
	}

	// BlendNonPremultiplied blends straight-alpha sources over the target.
	BlendNonPremultiplied = BlendState{
		ColorSrc: BlendSrcAlpha, ColorDst: BlendOneMinusSrcAlpha, ColorOp: BlendOpAdd,
		AlphaSrc: BlendSrcAlpha, AlphaDst: BlendOneMinusSrcAlpha, AlphaOp: BlendOpAdd,
	}

	// BlendAdditive adds source color weighted by alpha onto the target.
	BlendAdditive = BlendState{
		ColorSrc: BlendSrcAlpha, ColorDst: BlendOne, ColorOp: BlendOpAdd,
		AlphaSrc: BlendSrcAlpha, AlphaDst: BlendOne, AlphaOp: BlendOpAdd,
	}

	// BlendOpaque overwrites the target, ignoring alpha.
	BlendOpaque = BlendState{
		ColorSrc: BlendOne, ColorDst: BlendZero, ColorOp: BlendOpAdd,
		AlphaSrc: BlendOne, AlphaDst: BlendZero, AlphaOp: BlendOpAdd,
	}
)

// Filter selects texture sampling interpolation.
type Filter uint8

const (
	FilterLinear Filter = iota
	FilterNearest
)

// Wrap selects texture addressing outside [0, 1].
type Wrap uint8

const (
	WrapClamp Wrap = iota
	WrapRepeat
	WrapMirror
)

// SamplerState describes how the sprite texture is sampled.
type SamplerState struct {
	Filter   Filter
	AddressU Wrap
	AddressV Wrap
}

// Predefined sampler states. Treat as read-only.
var (
	// SamplerLinearClamp is the session default.
	SamplerLinearClamp = SamplerState{Filter: FilterLinear, AddressU: WrapClamp, AddressV: WrapClamp}
	SamplerPointClamp  = SamplerState{Filter: FilterNearest, AddressU: WrapClamp, AddressV: WrapClamp}
	SamplerLinearWrap  = SamplerState{Filter: FilterLinear, AddressU: WrapRepeat, AddressV: WrapRepeat}
	SamplerPointWrap   = SamplerState{Filter: FilterNearest, AddressU: WrapRepeat, AddressV: WrapRepeat}
)

// CompareFunc is a depth comparison function.
type CompareFunc uint8

const (
	CompareNever CompareFunc = iota
	CompareLess
	CompareEqual
	CompareLessEqual
	CompareGreater
	CompareNotEqual
	CompareGreaterEqual
	CompareAlways
)

// DepthStencilState describes depth testing for sprite draws. Sprites
// do not interact with stencil; the type name leaves room for backends
// that bind a combined depth/stencil target.
type DepthStencilState struct {
	TestEnabled  bool
	WriteEnabled bool
	Compare      CompareFunc
}

// Predefined depth states. Treat as read-only.
var (
	// DepthNone disables depth testing entirely. It is the session
	// default: batched sprites rely on submission order, not the depth
	// buffer.
	DepthNone = DepthStencilState{TestEnabled: false, WriteEnabled: false, Compare: CompareAlways}

	// DepthDefault tests and writes depth using the sprite Depth value.
	DepthDefault = DepthStencilState{TestEnabled: true, WriteEnabled: true, Compare: CompareLessEqual}

	// DepthReadOnly tests against existing depth without writing.
	DepthReadOnly = DepthStencilState{TestEnabled: true, WriteEnabled: false, Compare: CompareLessEqual}
)

// CullMode selects which triangle winding is discarded, measured in
// framebuffer space (Y down).
type CullMode uint8

const (
	CullNone CullMode = iota
	CullClockwise
	CullCounterClockwise
)

// RasterizerState describes primitive rasterization for sprite draws.
type RasterizerState struct {
	Cull CullMode
}

// Predefined rasterizer states. Treat as read-only.
var (
	// RasterCullCounterClockwise discards counter-clockwise triangles.
	// Sprite quads are emitted clockwise, so this is the session default.
	RasterCullCounterClockwise = RasterizerState{Cull: CullCounterClockwise}
	RasterCullClockwise        = RasterizerState{Cull: CullClockwise}
	RasterCullNone             = RasterizerState{Cull: CullNone}
)
