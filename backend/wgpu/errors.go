// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package wgpu

import "errors"

// Errors returned by the wgpu sprite backend.
var (
	// ErrNilProvider is returned by New when the device provider is nil.
	ErrNilProvider = errors.New("wgpu: nil device provider")

	// ErrNoHAL is returned by New when the provider does not expose
	// HAL device and queue handles.
	ErrNoHAL = errors.New("wgpu: provider does not expose HAL device and queue")

	// ErrNilTarget is returned by BeginFrame when the target view is nil.
	ErrNilTarget = errors.New("wgpu: nil target texture view")

	// ErrFrameOpen is returned by BeginFrame when a frame is already
	// being recorded.
	ErrFrameOpen = errors.New("wgpu: frame already in progress")

	// ErrNoFrame is returned when a draw or EndFrame is issued outside
	// a BeginFrame/EndFrame bracket.
	ErrNoFrame = errors.New("wgpu: no frame in progress")

	// ErrNoBuffers is returned when the device buffers were never
	// initialized via InitBuffers.
	ErrNoBuffers = errors.New("wgpu: device buffers not initialized")

	// ErrForeignTexture is returned by BindTexture when the texture was
	// not created by this backend.
	ErrForeignTexture = errors.New("wgpu: texture was not created by this backend")
)
