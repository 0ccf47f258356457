// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package wgpu

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/sprite"
)

// Texture is a sampled RGBA8 texture created through a Device. It
// satisfies sprite.Texture; submissions carrying the same *Texture batch
// into the same draw call.
type Texture struct {
	tex    hal.Texture
	view   hal.TextureView
	width  int
	height int
}

var _ sprite.Texture = (*Texture)(nil)

// Width returns the texture width in pixels.
func (t *Texture) Width() int { return t.width }

// Height returns the texture height in pixels.
func (t *Texture) Height() int { return t.height }

// NewTexture uploads img as a sampled texture. Pixels are converted to
// premultiplied RGBA, which pairs with the engine's default premultiplied
// blend state.
func NewTexture(d *Device, img image.Image) (*Texture, error) {
	rgba := toRGBA(img)
	b := rgba.Bounds()
	return NewTextureFromRGBA(d, b.Dx(), b.Dy(), rgba.Pix)
}

// NewTextureFromRGBA uploads raw 8-bit RGBA pixels, tightly packed at
// 4*width bytes per row, as a sampled texture.
func NewTextureFromRGBA(d *Device, width, height int, pix []byte) (*Texture, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("wgpu: invalid texture size %dx%d", width, height)
	}
	if len(pix) < width*height*4 {
		return nil, fmt.Errorf("wgpu: texture data too short: %d bytes for %dx%d", len(pix), width, height)
	}

	w, h := uint32(width), uint32(height)
	tex, err := d.device.CreateTexture(&hal.TextureDescriptor{
		Label:         "sprite_texture",
		Size:          hal.Extent3D{Width: w, Height: h, DepthOrArrayLayers: 1},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        gputypes.TextureFormatRGBA8Unorm,
		Usage:         gputypes.TextureUsageTextureBinding | gputypes.TextureUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("wgpu: create texture: %w", err)
	}

	view, err := d.device.CreateTextureView(tex, &hal.TextureViewDescriptor{
		Label:         "sprite_texture_view",
		Format:        gputypes.TextureFormatRGBA8Unorm,
		Dimension:     gputypes.TextureViewDimension2D,
		Aspect:        gputypes.TextureAspectAll,
		MipLevelCount: 1,
	})
	if err != nil {
		d.device.DestroyTexture(tex)
		return nil, fmt.Errorf("wgpu: create texture view: %w", err)
	}

	d.queue.WriteTexture(
		&hal.ImageCopyTexture{
			Texture:  tex,
			MipLevel: 0,
		},
		pix[:width*height*4],
		&hal.ImageDataLayout{
			Offset:       0,
			BytesPerRow:  w * 4,
			RowsPerImage: h,
		},
		&hal.Extent3D{Width: w, Height: h, DepthOrArrayLayers: 1},
	)

	return &Texture{tex: tex, view: view, width: width, height: height}, nil
}

// DestroyTexture releases a texture and drops its cached bind groups.
func (d *Device) DestroyTexture(t *Texture) {
	if t == nil {
		return
	}
	for key, bg := range d.binds {
		if key.tex == t {
			d.device.DestroyBindGroup(bg)
			delete(d.binds, key)
		}
	}
	if t.view != nil {
		d.device.DestroyTextureView(t.view)
		t.view = nil
	}
	if t.tex != nil {
		d.device.DestroyTexture(t.tex)
		t.tex = nil
	}
}

// toRGBA returns img as premultiplied RGBA with tightly packed rows,
// converting only when needed.
func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok &&
		rgba.Rect.Min == (image.Point{}) && rgba.Stride == 4*rgba.Rect.Dx() {
		return rgba
	}
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return rgba
}
