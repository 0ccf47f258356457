// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package wgpu

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/sprite"
)

// pipelineKey identifies a cached render pipeline variant. WebGPU bakes
// blend, depth, and cull state into the pipeline object, so each distinct
// combination gets its own compiled variant. The target format and sample
// count are fixed per device and stay out of the key.
type pipelineKey struct {
	blend  sprite.BlendState
	depth  sprite.DepthStencilState
	raster sprite.RasterizerState
}

// pipeline returns the effect's render pipeline for the given state,
// compiling it on first use.
func (e *Effect) pipeline(key pipelineKey) (hal.RenderPipeline, error) {
	if p, ok := e.pipelines[key]; ok {
		return p, nil
	}
	p, err := e.buildPipeline(key)
	if err != nil {
		return nil, err
	}
	e.pipelines[key] = p
	sprite.Logger().Debug("wgpu: sprite pipeline compiled", "variants", len(e.pipelines))
	return p, nil
}

func (e *Effect) buildPipeline(key pipelineKey) (hal.RenderPipeline, error) {
	blend := blendState(key.blend)
	pipeline, err := e.dev.device.CreateRenderPipeline(&hal.RenderPipelineDescriptor{
		Label:  "sprite_pipeline",
		Layout: e.pipeLayout,
		Vertex: hal.VertexState{
			Module:     e.shader,
			EntryPoint: "vs_main",
			Buffers:    spriteVertexLayout(),
		},
		Fragment: &hal.FragmentState{
			Module:     e.shader,
			EntryPoint: "fs_main",
			Targets: []gputypes.ColorTargetState{
				{
					Format:    e.dev.format,
					Blend:     &blend,
					WriteMask: gputypes.ColorWriteMaskAll,
				},
			},
		},
		DepthStencil: depthStencilState(key.depth),
		Primitive: gputypes.PrimitiveState{
			Topology: gputypes.PrimitiveTopologyTriangleList,
			CullMode: cullMode(key.raster.Cull),
		},
		Multisample: gputypes.MultisampleState{
			Count: sampleCount,
			Mask:  0xFFFFFFFF,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("wgpu: create sprite pipeline: %w", err)
	}
	return pipeline, nil
}

// spriteVertexLayout describes the sprite.Vertex wire format.
func spriteVertexLayout() []gputypes.VertexBufferLayout {
	return []gputypes.VertexBufferLayout{
		{
			ArrayStride: sprite.VertexStride,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0},  // position
				{Format: gputypes.VertexFormatFloat32x4, Offset: 12, ShaderLocation: 1}, // color
				{Format: gputypes.VertexFormatFloat32x2, Offset: 28, ShaderLocation: 2}, // tex_coord
			},
		},
	}
}

// depthStencilState converts a sprite depth state into the pipeline
// depth/stencil block. The stencil faces are Always/Keep with zero masks:
// sprites never touch stencil, but the frame's combined depth/stencil
// attachment requires every pipeline to declare the format.
func depthStencilState(s sprite.DepthStencilState) *hal.DepthStencilState {
	compare := gputypes.CompareFunctionAlways
	if s.TestEnabled {
		compare = compareFunction(s.Compare)
	}
	return &hal.DepthStencilState{
		Format:            gputypes.TextureFormatDepth24PlusStencil8,
		DepthWriteEnabled: s.WriteEnabled,
		DepthCompare:      compare,
		StencilFront: hal.StencilFaceState{
			Compare:     gputypes.CompareFunctionAlways,
			FailOp:      hal.StencilOperationKeep,
			DepthFailOp: hal.StencilOperationKeep,
			PassOp:      hal.StencilOperationKeep,
		},
		StencilBack: hal.StencilFaceState{
			Compare:     gputypes.CompareFunctionAlways,
			FailOp:      hal.StencilOperationKeep,
			DepthFailOp: hal.StencilOperationKeep,
			PassOp:      hal.StencilOperationKeep,
		},
		StencilReadMask:  0x00,
		StencilWriteMask: 0x00,
	}
}

// blendState converts a sprite blend state to the WebGPU form.
func blendState(s sprite.BlendState) gputypes.BlendState {
	return gputypes.BlendState{
		Color: gputypes.BlendComponent{
			SrcFactor: blendFactor(s.ColorSrc),
			DstFactor: blendFactor(s.ColorDst),
			Operation: blendOperation(s.ColorOp),
		},
		Alpha: gputypes.BlendComponent{
			SrcFactor: blendFactor(s.AlphaSrc),
			DstFactor: blendFactor(s.AlphaDst),
			Operation: blendOperation(s.AlphaOp),
		},
	}
}

func blendFactor(f sprite.BlendFactor) gputypes.BlendFactor {
	switch f {
	case sprite.BlendZero:
		return gputypes.BlendFactorZero
	case sprite.BlendOne:
		return gputypes.BlendFactorOne
	case sprite.BlendSrcAlpha:
		return gputypes.BlendFactorSrcAlpha
	case sprite.BlendOneMinusSrcAlpha:
		return gputypes.BlendFactorOneMinusSrcAlpha
	case sprite.BlendDstAlpha:
		return gputypes.BlendFactorDstAlpha
	case sprite.BlendOneMinusDstAlpha:
		return gputypes.BlendFactorOneMinusDstAlpha
	default:
		return gputypes.BlendFactorOne
	}
}

func blendOperation(op sprite.BlendOp) gputypes.BlendOperation {
	switch op {
	case sprite.BlendOpSubtract:
		return gputypes.BlendOperationSubtract
	case sprite.BlendOpReverseSubtract:
		return gputypes.BlendOperationReverseSubtract
	default:
		return gputypes.BlendOperationAdd
	}
}

func compareFunction(f sprite.CompareFunc) gputypes.CompareFunction {
	switch f {
	case sprite.CompareNever:
		return gputypes.CompareFunctionNever
	case sprite.CompareLess:
		return gputypes.CompareFunctionLess
	case sprite.CompareEqual:
		return gputypes.CompareFunctionEqual
	case sprite.CompareLessEqual:
		return gputypes.CompareFunctionLessEqual
	case sprite.CompareGreater:
		return gputypes.CompareFunctionGreater
	case sprite.CompareNotEqual:
		return gputypes.CompareFunctionNotEqual
	case sprite.CompareGreaterEqual:
		return gputypes.CompareFunctionGreaterEqual
	default:
		return gputypes.CompareFunctionAlways
	}
}

// cullMode maps a sprite cull mode onto WebGPU's front/back model. The
// pipeline keeps the default counter-clockwise front face, so culling
// counter-clockwise triangles means culling front faces.
func cullMode(c sprite.CullMode) gputypes.CullMode {
	switch c {
	case sprite.CullCounterClockwise:
		return gputypes.CullModeFront
	case sprite.CullClockwise:
		return gputypes.CullModeBack
	default:
		return gputypes.CullModeNone
	}
}

func filterMode(f sprite.Filter) gputypes.FilterMode {
	if f == sprite.FilterNearest {
		return gputypes.FilterModeNearest
	}
	return gputypes.FilterModeLinear
}

func addressMode(w sprite.Wrap) gputypes.AddressMode {
	switch w {
	case sprite.WrapRepeat:
		return gputypes.AddressModeRepeat
	case sprite.WrapMirror:
		return gputypes.AddressModeMirrorRepeat
	default:
		return gputypes.AddressModeClampToEdge
	}
}
