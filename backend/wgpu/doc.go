// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package wgpu provides a GPU-accelerated sprite device using gogpu/wgpu.
//
// This backend executes sprite batches on WebGPU through the gogpu/wgpu HAL,
// which supports Vulkan, Metal, and DX12 depending on the platform. It
// implements the sprite.Device contract: vertex and index buffers live on the
// GPU, render state maps to cached render pipelines, and every batch flush
// becomes one or more indexed draws inside a single render pass.
//
// # Architecture
//
// A sprite frame runs through a fixed sequence:
//
//	BeginFrame -> batch sessions (upload + indexed draws) -> EndFrame -> submit
//
// Key components:
//
//   - Device: implements sprite.Device over a hal.Device and hal.Queue
//   - Effect: built-in WGSL shader with a 64-byte transform uniform
//   - Texture: sampled RGBA8 texture uploaded from an image.Image
//   - pipeline cache: one render pipeline per blend/depth/rasterizer combination
//
// Color rendering is multisampled (4x) and resolved into the texture view the
// caller hands to BeginFrame, matching the render pass layout used elsewhere
// in gogpu. A depth/stencil attachment is always bound so pipelines with and
// without depth testing stay pass-compatible.
//
// # Basic Usage
//
// Obtain HAL handles from a gpucontext provider and drive a batch:
//
//	dev, err := wgpu.New(provider)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer dev.Destroy()
//
//	batch, err := sprite.NewBatch(dev)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	tex, err := wgpu.NewTexture(dev, img)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if err := dev.BeginFrame(surfaceView, width, height, sprite.Black); err != nil {
//	    log.Fatal(err)
//	}
//	batch.Begin(nil)
//	batch.Draw(tex, 10, 10)
//	batch.End()
//	if err := dev.EndFrame(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Requirements
//
//   - gogpu/wgpu module (github.com/gogpu/wgpu)
//   - A GPU that supports Vulkan, Metal, or DX12
//
// # Error Handling
//
// Common errors returned by this package:
//
//   - ErrNilProvider: device provider is nil
//   - ErrNoHAL: provider does not expose HAL device and queue handles
//   - ErrNoFrame: a draw or frame operation was issued outside BeginFrame/EndFrame
//   - ErrFrameOpen: BeginFrame was called while a frame is already recording
//   - ErrNoBuffers: the device buffers were never initialized
//   - ErrForeignTexture: a texture was not created by this backend
//
// # Related Packages
//
//   - github.com/gogpu/sprite: batching engine and device contract
//   - github.com/gogpu/wgpu: Pure Go WebGPU implementation
//   - github.com/gogpu/gpucontext: shared device/queue provider interfaces
//
// # References
//
//   - W3C WebGPU Specification: https://www.w3.org/TR/webgpu/
//   - gogpu Organization: https://github.com/gogpu
package wgpu
