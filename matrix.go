package sprite

import "github.com/chewxy/math32"

// Mat4 is a 4x4 matrix of float32 in column-major order, the layout
// GPU uniform buffers and WGSL mat4x4<f32> expect:
//
//	| m[0]  m[4]  m[8]   m[12] |
//	| m[1]  m[5]  m[9]   m[13] |
//	| m[2]  m[6]  m[10]  m[14] |
//	| m[3]  m[7]  m[11]  m[15] |
//
// Vectors are column vectors, so a transform chain applies right to left:
// a.Mul(b) transforms by b first, then a.
type Mat4 [16]float32

// Identity returns the identity matrix.
func Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Translation creates a 2D translation matrix.
func Translation(x, y float32) Mat4 {
	m := Identity()
	m[12] = x
	m[13] = y
	return m
}

// Scaling creates a 2D scaling matrix.
func Scaling(sx, sy float32) Mat4 {
	m := Identity()
	m[0] = sx
	m[5] = sy
	return m
}

// RotationZ creates a rotation matrix around the Z axis.
// The angle is in radians; positive values rotate clockwise in the
// engine's Y-down pixel space.
func RotationZ(angle float32) Mat4 {
	sin, cos := math32.Sincos(angle)
	m := Identity()
	m[0] = cos
	m[1] = sin
	m[4] = -sin
	m[5] = cos
	return m
}

// Ortho returns the pixel-to-clip projection for a render target of the
// given size in pixels: origin at the top-left, X right, Y down, depth
// mapped from the [0, 1] range. A half-pixel offset is folded into the
// translation terms so that pixel centers land on sample centers.
func Ortho(width, height float32) Mat4 {
	m := Mat4{}
	m[0] = 2 / width
	m[5] = -2 / height
	m[10] = -1
	m[12] = -1 - 1/width
	m[13] = 1 + 1/height
	m[15] = 1
	return m
}

// Mul returns the matrix product m * n. Applied to a vector, n acts
// first and m second.
func (m Mat4) Mul(n Mat4) Mat4 {
	var out Mat4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += m[k*4+row] * n[col*4+k]
			}
			out[col*4+row] = sum
		}
	}
	return out
}

// Apply transforms the point (x, y, z, 1) and returns the x, y, z
// components of the result. The w component is discarded; the engine's
// transforms are affine or orthographic, so w stays 1.
func (m Mat4) Apply(x, y, z float32) (float32, float32, float32) {
	ox := m[0]*x + m[4]*y + m[8]*z + m[12]
	oy := m[1]*x + m[5]*y + m[9]*z + m[13]
	oz := m[2]*x + m[6]*y + m[10]*z + m[14]
	return ox, oy, oz
}
