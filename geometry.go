// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package sprite

import "github.com/chewxy/math32"

// cornerX and cornerY are the unit offsets of the four quad corners in
// fixed order: top-left, top-right, bottom-left, bottom-right. The
// corner index doubles as a bitfield (bit 0 = right column, bit 1 =
// bottom row), which is what makes the flip XOR in buildQuad work.
var (
	cornerX = [4]float32{0, 1, 0, 1}
	cornerY = [4]float32{0, 0, 1, 1}
)

const (
	// sourceEpsilon is the minimum source rectangle extent in texels,
	// the float32 machine epsilon. Degenerate rectangles clamp to it
	// instead of producing zero-area texture coordinates.
	sourceEpsilon = 1.1920929e-7

	// rotationEpsilon is the angle in radians below which rotation uses
	// the identity basis and skips trigonometry.
	rotationEpsilon = 1e-6
)

// buildQuad expands a sprite pose into the four vertices dst[0:4], in
// corner order top-left, top-right, bottom-left, bottom-right. Flips
// reorder only the texture coordinates; position winding is fixed.
func buildQuad(dst []Vertex, sp *Sprite, texW, texH float32) {
	// Source region in [0, 1] texture space.
	var srcX, srcY, srcW, srcH float32
	destW, destH := sp.Dest.W, sp.Dest.H
	if sp.Source != nil {
		rc := sp.Source
		srcX = rc.X / texW
		srcY = rc.Y / texH
		srcW = math32.Max(rc.W, sourceEpsilon) / texW
		srcH = math32.Max(rc.H, sourceEpsilon) / texH
		if sp.ScaleBySource {
			destW *= rc.W
			destH *= rc.H
		}
	} else {
		srcW, srcH = 1, 1
		if sp.ScaleBySource {
			destW *= texW
			destH *= texH
		}
	}

	// Origin in texture space, via two divisions: first a fraction of
	// the normalized source extent, then of the texture. The order is
	// load-bearing; collapsing it into one division changes rounding.
	originU := sp.Origin.X / srcW / texW
	originV := sp.Origin.Y / srcH / texH

	sin, cos := float32(0), float32(1)
	if math32.Abs(sp.Rotation) > rotationEpsilon {
		sin, cos = math32.Sincos(sp.Rotation)
	}

	c := sp.Color
	flip := int(sp.Flip) & 3
	for i := 0; i < 4; i++ {
		cx := (cornerX[i] - originU) * destW
		cy := (cornerY[i] - originV) * destH
		j := i ^ flip

		dst[i] = Vertex{
			X: cos*cx - sin*cy + sp.Dest.X,
			Y: sin*cx + cos*cy + sp.Dest.Y,
			Z: sp.Depth,
			R: c.R, G: c.G, B: c.B, A: c.A,
			U: cornerX[j]*srcW + srcX,
			V: cornerY[j]*srcH + srcY,
		}
	}
}
