// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package wgpu

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// frameTargets holds the MSAA color and depth/stencil attachments backing a
// sprite frame. The caller-provided target view serves as the MSAA resolve
// target, so no resolve texture is created here.
//
//   - MSAA color: 4x samples, surface format, RenderAttachment
//   - Depth/stencil: 4x samples, Depth24PlusStencil8, RenderAttachment
type frameTargets struct {
	colorTex  hal.Texture
	colorView hal.TextureView
	depthTex  hal.Texture
	depthView hal.TextureView
	width     uint32
	height    uint32
}

// ensure creates or recreates the attachments if the requested dimensions
// differ from the current size. If dimensions match and textures exist,
// this is a no-op.
func (ft *frameTargets) ensure(device hal.Device, w, h uint32, format gputypes.TextureFormat) error {
	if ft.width == w && ft.height == h && ft.colorTex != nil {
		return nil
	}
	ft.destroy(device)

	size := hal.Extent3D{Width: w, Height: h, DepthOrArrayLayers: 1}

	colorTex, err := device.CreateTexture(&hal.TextureDescriptor{
		Label:         "sprite_msaa_color",
		Size:          size,
		MipLevelCount: 1,
		SampleCount:   sampleCount,
		Dimension:     gputypes.TextureDimension2D,
		Format:        format,
		Usage:         gputypes.TextureUsageRenderAttachment,
	})
	if err != nil {
		return fmt.Errorf("create MSAA color texture: %w", err)
	}
	ft.colorTex = colorTex

	colorView, err := device.CreateTextureView(colorTex, &hal.TextureViewDescriptor{
		Label: "sprite_msaa_color_view",
	})
	if err != nil {
		ft.destroy(device)
		return fmt.Errorf("create MSAA color view: %w", err)
	}
	ft.colorView = colorView

	depthTex, err := device.CreateTexture(&hal.TextureDescriptor{
		Label:         "sprite_depth_stencil",
		Size:          size,
		MipLevelCount: 1,
		SampleCount:   sampleCount,
		Dimension:     gputypes.TextureDimension2D,
		Format:        gputypes.TextureFormatDepth24PlusStencil8,
		Usage:         gputypes.TextureUsageRenderAttachment,
	})
	if err != nil {
		ft.destroy(device)
		return fmt.Errorf("create depth/stencil texture: %w", err)
	}
	ft.depthTex = depthTex

	depthView, err := device.CreateTextureView(depthTex, &hal.TextureViewDescriptor{
		Label: "sprite_depth_stencil_view",
	})
	if err != nil {
		ft.destroy(device)
		return fmt.Errorf("create depth/stencil view: %w", err)
	}
	ft.depthView = depthView

	ft.width = w
	ft.height = h
	return nil
}

// destroy releases all attachment resources and resets dimensions.
func (ft *frameTargets) destroy(device hal.Device) {
	if ft.depthView != nil {
		device.DestroyTextureView(ft.depthView)
		ft.depthView = nil
	}
	if ft.depthTex != nil {
		device.DestroyTexture(ft.depthTex)
		ft.depthTex = nil
	}
	if ft.colorView != nil {
		device.DestroyTextureView(ft.colorView)
		ft.colorView = nil
	}
	if ft.colorTex != nil {
		device.DestroyTexture(ft.colorTex)
		ft.colorTex = nil
	}
	ft.width = 0
	ft.height = 0
}
