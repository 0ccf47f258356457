// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package wgpu

import (
	_ "embed"
	"encoding/binary"
	"fmt"
	"math"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/naga"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/sprite"
)

//go:embed shaders/sprite.wgsl
var spriteShaderSource string

// effectUniformSize is the transform uniform block size: one 4x4 float32
// matrix.
const effectUniformSize = 64

// Effect is a sprite shader program backed by a WGSL module, a transform
// uniform buffer, and a cache of compiled pipeline variants. The built-in
// effect samples the bound texture and multiplies by vertex color; custom
// effects supply their own WGSL with the same entry points and bindings.
type Effect struct {
	dev *Device

	shader        hal.ShaderModule
	uniformLayout hal.BindGroupLayout
	pipeLayout    hal.PipelineLayout
	uniformBuf    hal.Buffer
	bindGroup     hal.BindGroup

	pipelines map[pipelineKey]hal.RenderPipeline
	passes    []sprite.EffectPass
}

var _ sprite.Effect = (*Effect)(nil)

// newBuiltinEffect creates the default sprite effect.
func newBuiltinEffect(d *Device) (*Effect, error) {
	return NewEffect(d, spriteShaderSource)
}

// NewEffect compiles a custom sprite effect from WGSL source. The shader
// must expose vs_main and fs_main entry points, bind the transform matrix
// at group 0 binding 0, and the texture and sampler at group 1 bindings 0
// and 1. Vertex inputs follow the sprite.Vertex layout.
//
// Effects created here are not owned by the device; release them with
// Destroy.
func NewEffect(d *Device, source string) (*Effect, error) {
	e := &Effect{
		dev:       d,
		pipelines: make(map[pipelineKey]hal.RenderPipeline),
	}
	e.passes = []sprite.EffectPass{&effectPass{effect: e}}

	shader, err := compileShader(d.device, source)
	if err != nil {
		return nil, err
	}
	e.shader = shader

	uniformLayout, err := d.device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label: "sprite_uniform_layout",
		Entries: []gputypes.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: gputypes.ShaderStageVertex,
				Buffer:     &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeUniform},
			},
		},
	})
	if err != nil {
		e.destroy()
		return nil, fmt.Errorf("wgpu: create uniform layout: %w", err)
	}
	e.uniformLayout = uniformLayout

	pipeLayout, err := d.device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label:            "sprite_pipe_layout",
		BindGroupLayouts: []hal.BindGroupLayout{uniformLayout, d.textureLayout},
	})
	if err != nil {
		e.destroy()
		return nil, fmt.Errorf("wgpu: create pipeline layout: %w", err)
	}
	e.pipeLayout = pipeLayout

	uniformBuf, err := d.device.CreateBuffer(&hal.BufferDescriptor{
		Label: "sprite_transform",
		Size:  effectUniformSize,
		Usage: gputypes.BufferUsageUniform | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		e.destroy()
		return nil, fmt.Errorf("wgpu: create uniform buffer: %w", err)
	}
	e.uniformBuf = uniformBuf

	bindGroup, err := d.device.CreateBindGroup(&hal.BindGroupDescriptor{
		Label:  "sprite_uniform_bind",
		Layout: uniformLayout,
		Entries: []gputypes.BindGroupEntry{
			{Binding: 0, Resource: gputypes.BufferBinding{
				Buffer: uniformBuf.NativeHandle(), Offset: 0, Size: effectUniformSize,
			}},
		},
	})
	if err != nil {
		e.destroy()
		return nil, fmt.Errorf("wgpu: create uniform bind group: %w", err)
	}
	e.bindGroup = bindGroup

	return e, nil
}

// compileShader builds a shader module from WGSL source. The source is
// translated to SPIR-V through naga first; if translation fails, the WGSL
// is handed to the device untranslated.
func compileShader(device hal.Device, source string) (hal.ShaderModule, error) {
	shaderSource := hal.ShaderSource{WGSL: source}
	if spirvBytes, err := naga.Compile(source); err == nil {
		spirvCode := make([]uint32, len(spirvBytes)/4)
		for i := range spirvCode {
			spirvCode[i] = uint32(spirvBytes[i*4]) |
				uint32(spirvBytes[i*4+1])<<8 |
				uint32(spirvBytes[i*4+2])<<16 |
				uint32(spirvBytes[i*4+3])<<24
		}
		shaderSource = hal.ShaderSource{SPIRV: spirvCode}
	} else {
		sprite.Logger().Warn("wgpu: naga translation failed, using WGSL source", "err", err)
	}

	module, err := device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  "sprite_shader",
		Source: shaderSource,
	})
	if err != nil {
		return nil, fmt.Errorf("wgpu: create shader module: %w", err)
	}
	return module, nil
}

// SetMatrix assigns a 4x4 matrix to the named shader parameter. The only
// parameter an Effect exposes is sprite.TransformParam.
func (e *Effect) SetMatrix(name string, m sprite.Mat4) error {
	if name != sprite.TransformParam {
		return fmt.Errorf("wgpu: unknown effect parameter %q", name)
	}
	buf := transformBytes(m)
	e.dev.queue.WriteBuffer(e.uniformBuf, 0, buf[:])
	return nil
}

// transformBytes serializes a column-major matrix for the uniform buffer.
// WGSL mat4x4 storage is column-major, so the elements upload in order.
func transformBytes(m sprite.Mat4) [effectUniformSize]byte {
	var buf [effectUniformSize]byte
	for i, v := range m {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(v))
	}
	return buf
}

// Passes returns the effect's single render pass.
func (e *Effect) Passes() []sprite.EffectPass { return e.passes }

// Destroy releases the effect's GPU resources. The device's built-in
// effect is destroyed with the device and must not be destroyed directly.
func (e *Effect) Destroy() { e.destroy() }

func (e *Effect) destroy() {
	d := e.dev.device
	for key, p := range e.pipelines {
		d.DestroyRenderPipeline(p)
		delete(e.pipelines, key)
	}
	if e.bindGroup != nil {
		d.DestroyBindGroup(e.bindGroup)
		e.bindGroup = nil
	}
	if e.uniformBuf != nil {
		d.DestroyBuffer(e.uniformBuf)
		e.uniformBuf = nil
	}
	if e.pipeLayout != nil {
		d.DestroyPipelineLayout(e.pipeLayout)
		e.pipeLayout = nil
	}
	if e.uniformLayout != nil {
		d.DestroyBindGroupLayout(e.uniformLayout)
		e.uniformLayout = nil
	}
	if e.shader != nil {
		d.DestroyShaderModule(e.shader)
		e.shader = nil
	}
}

// effectPass is the single pass of an Effect.
type effectPass struct {
	effect *Effect
}

// Apply resolves the pipeline for the device's current render state and
// binds it together with the transform uniform.
func (p *effectPass) Apply() error {
	return p.effect.dev.applyPass(p.effect)
}
