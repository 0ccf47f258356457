// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package wgpu

import (
	"fmt"
	"time"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/sprite"
)

// sampleCount is the MSAA sample count for the frame color and
// depth/stencil attachments. All sprite pipelines are created with the
// same count so they stay compatible with the render pass.
const sampleCount = 4

// frameTimeout bounds the fence wait at the end of a frame.
const frameTimeout = 5 * time.Second

// halProvider is the optional interface a gpucontext.DeviceProvider
// implements to expose its underlying HAL handles. The methods return `any`
// to keep gpucontext free of a wgpu dependency; New type-asserts them back
// to hal.Device and hal.Queue.
type halProvider interface {
	HalDevice() any
	HalQueue() any
}

// bindKey identifies a cached texture bind group. Sampler state is part of
// the key because the sampler is baked into the bind group.
type bindKey struct {
	tex     *Texture
	sampler sprite.SamplerState
}

// Device implements sprite.Device on top of a gogpu/wgpu HAL device.
//
// A Device owns the GPU-side sprite resources: the shared vertex and index
// buffers, the built-in effect, the per-state pipeline and sampler caches,
// and the MSAA frame attachments. Frames are bracketed by BeginFrame and
// EndFrame; batch sessions record into the frame's render pass.
//
// Device is not safe for concurrent use. Drive it from the thread that owns
// the HAL device.
type Device struct {
	device hal.Device
	queue  hal.Queue
	format gputypes.TextureFormat

	vertexBuf hal.Buffer
	indexBuf  hal.Buffer

	targets       frameTargets
	textureLayout hal.BindGroupLayout
	effect        *Effect

	samplers map[sprite.SamplerState]hal.Sampler
	binds    map[bindKey]hal.BindGroup

	blend   sprite.BlendState
	sampler sprite.SamplerState
	depth   sprite.DepthStencilState
	raster  sprite.RasterizerState

	encoder      hal.CommandEncoder
	pass         hal.RenderPassEncoder
	width        int
	height       int
	buffersDirty bool
}

var _ sprite.Device = (*Device)(nil)

// New creates a sprite device from a shared gpucontext provider. The
// provider must expose its HAL device and queue via HalDevice/HalQueue;
// the surface format reported by the provider becomes the pipeline target
// format.
func New(provider gpucontext.DeviceProvider) (*Device, error) {
	if provider == nil {
		return nil, ErrNilProvider
	}
	hp, ok := provider.(halProvider)
	if !ok {
		return nil, ErrNoHAL
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		return nil, fmt.Errorf("%w: HalDevice is not a hal.Device", ErrNoHAL)
	}
	queue, ok := hp.HalQueue().(hal.Queue)
	if !ok || queue == nil {
		return nil, fmt.Errorf("%w: HalQueue is not a hal.Queue", ErrNoHAL)
	}
	return NewWithHAL(device, queue, provider.SurfaceFormat())
}

// NewWithHAL creates a sprite device directly from HAL handles. The device
// borrows the handles and never destroys them; format is the texture format
// of the views passed to BeginFrame.
func NewWithHAL(device hal.Device, queue hal.Queue, format gputypes.TextureFormat) (*Device, error) {
	if device == nil || queue == nil {
		return nil, ErrNoHAL
	}
	d := &Device{
		device:   device,
		queue:    queue,
		format:   format,
		samplers: make(map[sprite.SamplerState]hal.Sampler),
		binds:    make(map[bindKey]hal.BindGroup),
	}

	layout, err := device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label: "sprite_texture_layout",
		Entries: []gputypes.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: gputypes.ShaderStageFragment,
				Texture: &gputypes.TextureBindingLayout{
					SampleType:    gputypes.TextureSampleTypeFloat,
					ViewDimension: gputypes.TextureViewDimension2D,
				},
			},
			{
				Binding:    1,
				Visibility: gputypes.ShaderStageFragment,
				Sampler: &gputypes.SamplerBindingLayout{
					Type: gputypes.SamplerBindingTypeFiltering,
				},
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("wgpu: create texture bind group layout: %w", err)
	}
	d.textureLayout = layout

	effect, err := newBuiltinEffect(d)
	if err != nil {
		device.DestroyBindGroupLayout(layout)
		return nil, err
	}
	d.effect = effect

	sprite.Logger().Info("wgpu: sprite device ready", "samples", sampleCount)
	return d, nil
}

// Destroy releases all GPU resources owned by the device. The underlying
// HAL device and queue belong to the provider and are left untouched.
// Textures created through this device must be destroyed separately.
func (d *Device) Destroy() {
	for key, bg := range d.binds {
		d.device.DestroyBindGroup(bg)
		delete(d.binds, key)
	}
	for key, smp := range d.samplers {
		d.device.DestroySampler(smp)
		delete(d.samplers, key)
	}
	if d.effect != nil {
		d.effect.destroy()
		d.effect = nil
	}
	if d.textureLayout != nil {
		d.device.DestroyBindGroupLayout(d.textureLayout)
		d.textureLayout = nil
	}
	if d.indexBuf != nil {
		d.device.DestroyBuffer(d.indexBuf)
		d.indexBuf = nil
	}
	if d.vertexBuf != nil {
		d.device.DestroyBuffer(d.vertexBuf)
		d.vertexBuf = nil
	}
	d.targets.destroy(d.device)
}

// BeginFrame starts recording a frame that resolves into target, a
// single-sample texture view of the device's surface format. The frame
// clears to the given color. Batch sessions must run between BeginFrame
// and EndFrame.
func (d *Device) BeginFrame(target hal.TextureView, width, height int, clear sprite.Color) error {
	if d.pass != nil {
		return ErrFrameOpen
	}
	if target == nil {
		return ErrNilTarget
	}
	if err := d.targets.ensure(d.device, uint32(width), uint32(height), d.format); err != nil {
		return fmt.Errorf("wgpu: frame targets: %w", err)
	}

	encoder, err := d.device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{
		Label: "sprite_frame_encoder",
	})
	if err != nil {
		return fmt.Errorf("wgpu: create command encoder: %w", err)
	}
	if err := encoder.BeginEncoding("sprite_frame"); err != nil {
		return fmt.Errorf("wgpu: begin encoding: %w", err)
	}

	pass := encoder.BeginRenderPass(&hal.RenderPassDescriptor{
		Label: "sprite_pass",
		ColorAttachments: []hal.RenderPassColorAttachment{
			{
				View:          d.targets.colorView,
				ResolveTarget: target,
				LoadOp:        gputypes.LoadOpClear,
				StoreOp:       gputypes.StoreOpStore,
				ClearValue: gputypes.Color{
					R: float64(clear.R),
					G: float64(clear.G),
					B: float64(clear.B),
					A: float64(clear.A),
				},
			},
		},
		DepthStencilAttachment: &hal.RenderPassDepthStencilAttachment{
			View:              d.targets.depthView,
			DepthLoadOp:       gputypes.LoadOpClear,
			DepthStoreOp:      gputypes.StoreOpDiscard,
			DepthClearValue:   1.0,
			StencilLoadOp:     gputypes.LoadOpClear,
			StencilStoreOp:    gputypes.StoreOpDiscard,
			StencilClearValue: 0,
		},
	})

	d.encoder = encoder
	d.pass = pass
	d.width = width
	d.height = height
	d.buffersDirty = true
	return nil
}

// EndFrame finishes the render pass, submits the frame, and blocks until
// the GPU signals completion.
func (d *Device) EndFrame() error {
	if d.pass == nil {
		return ErrNoFrame
	}
	d.pass.End()
	d.pass = nil
	encoder := d.encoder
	d.encoder = nil

	cmdBuf, err := encoder.EndEncoding()
	if err != nil {
		return fmt.Errorf("wgpu: end encoding: %w", err)
	}
	defer d.device.FreeCommandBuffer(cmdBuf)

	fence, err := d.device.CreateFence()
	if err != nil {
		return fmt.Errorf("wgpu: create fence: %w", err)
	}
	defer d.device.DestroyFence(fence)

	if err := d.queue.Submit([]hal.CommandBuffer{cmdBuf}, fence, 1); err != nil {
		return fmt.Errorf("wgpu: submit frame: %w", err)
	}
	ok, err := d.device.Wait(fence, 1, frameTimeout)
	if err != nil || !ok {
		return fmt.Errorf("wgpu: wait for GPU: ok=%v err=%w", ok, err)
	}
	return nil
}

// CancelFrame abandons the current frame without submitting it. Safe to
// call when no frame is open.
func (d *Device) CancelFrame() {
	if d.pass == nil {
		return
	}
	d.pass.End()
	d.pass = nil
	d.encoder.DiscardEncoding()
	d.encoder = nil
}

// ViewportSize reports the dimensions passed to BeginFrame. It is valid
// while a frame is open; batches use it to build the pixel-space
// projection.
func (d *Device) ViewportSize() (int, int) {
	return d.width, d.height
}

// DefaultEffect returns the built-in sprite effect.
func (d *Device) DefaultEffect() sprite.Effect {
	if d.effect == nil {
		return nil
	}
	return d.effect
}

// InitBuffers creates the shared vertex buffer and uploads the static quad
// index pattern. Calling it again replaces the previous buffers.
func (d *Device) InitBuffers(vertexCapacity int, indices []uint16) error {
	if d.vertexBuf != nil {
		d.device.DestroyBuffer(d.vertexBuf)
		d.vertexBuf = nil
	}
	if d.indexBuf != nil {
		d.device.DestroyBuffer(d.indexBuf)
		d.indexBuf = nil
	}

	vbuf, err := d.device.CreateBuffer(&hal.BufferDescriptor{
		Label: "sprite_vertices",
		Size:  uint64(vertexCapacity) * sprite.VertexStride,
		Usage: gputypes.BufferUsageVertex | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("wgpu: create vertex buffer: %w", err)
	}

	indexData := sprite.IndexBytes(indices)
	ibuf, err := d.device.CreateBuffer(&hal.BufferDescriptor{
		Label: "sprite_indices",
		Size:  uint64(len(indexData)),
		Usage: gputypes.BufferUsageIndex | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		d.device.DestroyBuffer(vbuf)
		return fmt.Errorf("wgpu: create index buffer: %w", err)
	}
	d.queue.WriteBuffer(ibuf, 0, indexData)

	d.vertexBuf = vbuf
	d.indexBuf = ibuf
	d.buffersDirty = true
	return nil
}

// UploadVertices copies the accumulated vertices into the vertex buffer.
// WriteBuffer stages the copy through the queue, so the discard hint needs
// no extra handling here.
func (d *Device) UploadVertices(verts []sprite.Vertex, discard bool) error {
	if d.vertexBuf == nil {
		return ErrNoBuffers
	}
	d.queue.WriteBuffer(d.vertexBuf, 0, sprite.VertexBytes(verts))
	return nil
}

// BindBuffers marks the vertex and index buffers for rebinding. The actual
// pass commands are recorded lazily on the next draw, which keeps the call
// legal outside a frame.
func (d *Device) BindBuffers() {
	d.buffersDirty = true
}

// SetBlendState records the blend state for subsequent pipeline selection.
func (d *Device) SetBlendState(s sprite.BlendState) { d.blend = s }

// SetSamplerState records the sampler state for subsequent texture binds.
// The sprite pipeline samples a single texture, so slot is ignored.
func (d *Device) SetSamplerState(slot int, s sprite.SamplerState) { d.sampler = s }

// SetDepthStencilState records the depth state for subsequent pipeline
// selection.
func (d *Device) SetDepthStencilState(s sprite.DepthStencilState) { d.depth = s }

// SetRasterizerState records the rasterizer state for subsequent pipeline
// selection.
func (d *Device) SetRasterizerState(s sprite.RasterizerState) { d.raster = s }

// BindTexture binds a texture created by this backend, pairing it with the
// current sampler state. Bind groups are cached per texture and sampler.
func (d *Device) BindTexture(slot int, tex sprite.Texture) error {
	if d.pass == nil {
		return ErrNoFrame
	}
	t, ok := tex.(*Texture)
	if !ok || t == nil {
		return ErrForeignTexture
	}
	bg, err := d.textureBind(t)
	if err != nil {
		return err
	}
	d.pass.SetBindGroup(1, bg, nil)
	return nil
}

// DrawIndexedQuads records one indexed draw covering quadCount quads
// starting at firstQuad in the shared buffers.
func (d *Device) DrawIndexedQuads(firstQuad, quadCount int) error {
	if d.pass == nil {
		return ErrNoFrame
	}
	if d.vertexBuf == nil || d.indexBuf == nil {
		return ErrNoBuffers
	}
	if d.buffersDirty {
		d.pass.SetVertexBuffer(0, d.vertexBuf, 0)
		d.pass.SetIndexBuffer(d.indexBuf, gputypes.IndexFormatUint16, 0)
		d.buffersDirty = false
	}
	d.pass.DrawIndexed(uint32(quadCount*6), 1, uint32(firstQuad*6), 0, 0)
	return nil
}

// applyPass resolves the pipeline for the current render state and binds
// the effect's uniform group. Called by the effect's pass during a flush.
func (d *Device) applyPass(e *Effect) error {
	if d.pass == nil {
		return ErrNoFrame
	}
	pipeline, err := e.pipeline(pipelineKey{
		blend:  d.blend,
		depth:  d.depth,
		raster: d.raster,
	})
	if err != nil {
		return err
	}
	d.pass.SetPipeline(pipeline)
	d.pass.SetBindGroup(0, e.bindGroup, nil)
	return nil
}

// textureBind returns the cached bind group for the texture and the
// current sampler state, creating it on first use.
func (d *Device) textureBind(t *Texture) (hal.BindGroup, error) {
	key := bindKey{tex: t, sampler: d.sampler}
	if bg, ok := d.binds[key]; ok {
		return bg, nil
	}
	smp, err := d.samplerFor(d.sampler)
	if err != nil {
		return nil, err
	}
	bg, err := d.device.CreateBindGroup(&hal.BindGroupDescriptor{
		Label:  "sprite_texture_bind",
		Layout: d.textureLayout,
		Entries: []gputypes.BindGroupEntry{
			{Binding: 0, Resource: gputypes.TextureViewBinding{
				TextureView: gputypes.TextureViewHandle(t.view.NativeHandle()),
			}},
			{Binding: 1, Resource: gputypes.SamplerBinding{
				Sampler: gputypes.SamplerHandle(smp.NativeHandle()),
			}},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("wgpu: create texture bind group: %w", err)
	}
	d.binds[key] = bg
	return bg, nil
}

// samplerFor returns the cached sampler for a sampler state, creating it
// on first use.
func (d *Device) samplerFor(s sprite.SamplerState) (hal.Sampler, error) {
	if smp, ok := d.samplers[s]; ok {
		return smp, nil
	}
	filter := filterMode(s.Filter)
	smp, err := d.device.CreateSampler(&hal.SamplerDescriptor{
		Label:        "sprite_sampler",
		AddressModeU: addressMode(s.AddressU),
		AddressModeV: addressMode(s.AddressV),
		AddressModeW: gputypes.AddressModeClampToEdge,
		MagFilter:    filter,
		MinFilter:    filter,
		MipmapFilter: filter,
	})
	if err != nil {
		return nil, fmt.Errorf("wgpu: create sampler: %w", err)
	}
	d.samplers[s] = smp
	return smp, nil
}
