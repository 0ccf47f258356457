// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package sprite

import (
	"encoding/binary"
	"math"
)

// VertexStride is the byte stride per vertex on the wire.
// Layout per vertex, little-endian:
//
//	position (vec3<f32>) = 12 bytes  (location 0)
//	color    (vec4<f32>) = 16 bytes  (location 1)
//	uv       (vec2<f32>) =  8 bytes  (location 2)
//
// Total = 36 bytes per vertex.
const VertexStride = 36

// Vertex is one corner of a sprite quad: position, tint, and texture
// coordinate. Four consecutive vertices form a quad in fixed corner
// order top-left, top-right, bottom-left, bottom-right.
type Vertex struct {
	// Position in pixel space; Z carries the sprite depth unchanged.
	X, Y, Z float32

	// Tint color, copied to every corner of the quad.
	R, G, B, A float32

	// Texture coordinate in [0, 1] texture space.
	U, V float32
}

// VertexBytes serializes vertices into raw little-endian bytes suitable
// for GPU upload, VertexStride bytes each.
func VertexBytes(verts []Vertex) []byte {
	data := make([]byte, len(verts)*VertexStride)
	off := 0
	for i := range verts {
		writeVertex(data[off:], &verts[i])
		off += VertexStride
	}
	return data
}

// writeVertex writes a single vertex into buf.
func writeVertex(buf []byte, v *Vertex) {
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(v.X))
	binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(v.Y))
	binary.LittleEndian.PutUint32(buf[8:12], math.Float32bits(v.Z))
	binary.LittleEndian.PutUint32(buf[12:16], math.Float32bits(v.R))
	binary.LittleEndian.PutUint32(buf[16:20], math.Float32bits(v.G))
	binary.LittleEndian.PutUint32(buf[20:24], math.Float32bits(v.B))
	binary.LittleEndian.PutUint32(buf[24:28], math.Float32bits(v.A))
	binary.LittleEndian.PutUint32(buf[28:32], math.Float32bits(v.U))
	binary.LittleEndian.PutUint32(buf[32:36], math.Float32bits(v.V))
}

// quadIndices generates the static index buffer for quadCount quads.
// Each quad contributes the pattern {0,1,2, 3,2,1} offset by its
// 4-vertex base: triangle one is top-left, top-right, bottom-left;
// triangle two is bottom-right, bottom-left, top-right. Both wind the
// same way, so backface culling treats the quad as one surface.
func quadIndices(quadCount int) []uint16 {
	indices := make([]uint16, quadCount*6)
	for i := 0; i < quadCount; i++ {
		base := i * 6
		vertex := uint16(i * 4)

		indices[base+0] = vertex + 0
		indices[base+1] = vertex + 1
		indices[base+2] = vertex + 2

		indices[base+3] = vertex + 3
		indices[base+4] = vertex + 2
		indices[base+5] = vertex + 1
	}
	return indices
}

// IndexBytes serializes uint16 indices into raw little-endian bytes.
func IndexBytes(indices []uint16) []byte {
	data := make([]byte, len(indices)*2)
	for i, idx := range indices {
		binary.LittleEndian.PutUint16(data[i*2:], idx)
	}
	return data
}
