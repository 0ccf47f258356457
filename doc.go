// Package sprite provides batched 2D sprite rendering for Go.
//
// # Overview
//
// sprite is a textured-quad batching engine for the GoGPU ecosystem.
// It accumulates sprite submissions on the CPU, merges consecutive
// submissions that share a texture into single draw calls, and emits
// the minimal sequence of vertex uploads and indexed draws to a GPU
// device. The engine itself is device-agnostic; backend/wgpu supplies
// the WebGPU implementation via gogpu/wgpu.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/sprite"
//	    "github.com/gogpu/sprite/backend/wgpu"
//	)
//
//	dev, err := wgpu.New(provider) // provider is a gpucontext.DeviceProvider
//	batch, err := sprite.NewBatch(dev)
//
//	// Per frame:
//	batch.Begin(nil)
//	batch.Draw(playerTex, 100, 80)
//	batch.DrawSprite(&sprite.Sprite{
//	    Texture:  tileTex,
//	    Source:   &sprite.Rect{X: 32, Y: 0, W: 16, H: 16},
//	    Dest:     sprite.Rect{X: 200, Y: 40, W: 16, H: 16},
//	    Color:    sprite.White,
//	    Rotation: 0.25,
//	})
//	batch.End()
//
// # Sessions
//
// Drawing happens inside Begin/End sessions. Begin captures the render
// state for the whole session (blend, sampler, depth, rasterizer,
// effect, transform); End flushes whatever is still accumulated.
// Submissions outside a session fail fast. Options.Immediate disables
// batching for a session, drawing every submission on its own.
//
// # Batching Model
//
// Submissions accumulate in a fixed arena of MaxSprites quads. A flush
// happens when the arena fills, and at End. Each flush uploads all
// accumulated vertices in one transfer, then walks the quads left to
// right issuing one indexed draw call per run of consecutive quads
// that share a texture. Interleaving many textures therefore costs one
// draw call per switch; grouping by texture costs one per group.
//
// # Coordinate System
//
// Pixel coordinates with the origin at the top-left, X right, Y down;
// rotation angles in radians, clockwise. Depth maps through an
// orthographic projection from the [0, 1] range, with a half-pixel
// offset so pixel centers land on sample centers.
//
// # Architecture
//
// The library is organized into:
//   - Public API: Batch, Sprite, Options, state values, Mat4, Color
//   - Collaborator interfaces: Device, Effect, Texture
//   - Backend: backend/wgpu (WebGPU via gogpu/wgpu hal)
package sprite

// Version information
const (
	// Version is the current version of the library
	Version = "0.3.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 3

	// VersionPatch is the patch version
	VersionPatch = 0
)
