// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package sprite

// TransformParam is the effect parameter name the engine assigns the
// combined transform to on every flush. Custom effects must expose a
// 4x4 matrix parameter under this name.
const TransformParam = "transform"

// Device is the GPU collaborator the engine drives. Implementations
// own the vertex and index stores and translate state values into
// native pipeline state; backend/wgpu provides the WebGPU one, and
// tests substitute a recording fake.
//
// UploadVertices, BindTexture, and DrawIndexedQuads report device
// failures, which the engine treats as fatal and propagates. State
// setters only record state and cannot fail.
type Device interface {
	// ViewportSize reports the current render-target size in pixels.
	// The engine rereads it on every flush to rebuild the projection.
	ViewportSize() (width, height int)

	// InitBuffers allocates the device vertex store for capacity
	// vertices and uploads the static quad index pattern. Called once
	// per engine, at construction.
	InitBuffers(vertexCapacity int, indices []uint16) error

	// DefaultEffect returns the device's built-in sprite effect, used
	// by sessions that do not supply their own.
	DefaultEffect() Effect

	// UploadVertices transfers verts into the vertex store in a single
	// write starting at vertex zero. discard marks the store's previous
	// contents dead, letting the device rename the buffer instead of
	// synchronizing with in-flight draws.
	UploadVertices(verts []Vertex, discard bool) error

	// BindBuffers makes the vertex and index stores current for
	// subsequent draws.
	BindBuffers()

	// SetBlendState records the blend state for subsequent draws.
	SetBlendState(state BlendState)

	// SetSamplerState records the sampler state for the given texture
	// slot.
	SetSamplerState(slot int, state SamplerState)

	// SetDepthStencilState records the depth state for subsequent draws.
	SetDepthStencilState(state DepthStencilState)

	// SetRasterizerState records the rasterizer state for subsequent
	// draws.
	SetRasterizerState(state RasterizerState)

	// BindTexture binds tex to the given texture slot.
	BindTexture(slot int, tex Texture) error

	// DrawIndexedQuads issues one indexed triangle-list draw call
	// covering quadCount quads starting at firstQuad, against the
	// bound vertex and index stores.
	DrawIndexedQuads(firstQuad, quadCount int) error
}

// Effect is a shader program with named parameters and one or more
// render passes. The engine sets TransformParam once per flush and
// applies each pass before issuing the flush's draw calls.
type Effect interface {
	// SetMatrix assigns a 4x4 matrix to the named shader parameter.
	// Unknown names are a device failure.
	SetMatrix(name string, m Mat4) error

	// Passes returns the effect's render passes in application order.
	Passes() []EffectPass
}

// EffectPass is one applicable pass of an Effect.
type EffectPass interface {
	// Apply binds the pass's pipeline state for subsequent draws.
	Apply() error
}

// Texture is a sampled image the device can bind. The engine needs
// only its dimensions, for geometry normalization; batching identity
// is the interface value itself, so two submissions merge exactly when
// they carry the same Texture.
type Texture interface {
	// Width returns the texture width in pixels.
	Width() int

	// Height returns the texture height in pixels.
	Height() int
}
