// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package sprite

import (
	"testing"

	"github.com/chewxy/math32"
)

func buildTestQuad(sp *Sprite, texW, texH float32) [4]Vertex {
	var dst [4]Vertex
	buildQuad(dst[:], sp, texW, texH)
	return dst
}

func near(a, b, eps float32) bool {
	return math32.Abs(a-b) <= eps
}

// Axis-aligned quad with a full-texture source: corners in order
// top-left, top-right, bottom-left, bottom-right, texture coordinates
// spanning the unit square.
func TestQuadCorners(t *testing.T) {
	verts := buildTestQuad(&Sprite{
		Source: &Rect{X: 0, Y: 0, W: 64, H: 32},
		Dest:   Rct(10, 20, 64, 32),
		Color:  White,
	}, 64, 32)

	wantPos := [4][2]float32{{10, 20}, {74, 20}, {10, 52}, {74, 52}}
	wantUV := [4][2]float32{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
	for i, v := range verts {
		if v.X != wantPos[i][0] || v.Y != wantPos[i][1] {
			t.Errorf("corner %d position = (%g, %g), want (%g, %g)",
				i, v.X, v.Y, wantPos[i][0], wantPos[i][1])
		}
		if v.U != wantUV[i][0] || v.V != wantUV[i][1] {
			t.Errorf("corner %d uv = (%g, %g), want (%g, %g)",
				i, v.U, v.V, wantUV[i][0], wantUV[i][1])
		}
	}
}

// Flips permute texture coordinates only. Positions never move, and
// corner i's uv under flip f is corner i^f's uv without a flip.
func TestFlipMovesOnlyUV(t *testing.T) {
	base := &Sprite{
		Source: &Rect{X: 16, Y: 8, W: 32, H: 16},
		Dest:   Rct(5, 7, 48, 24),
		Color:  White,
	}
	plain := buildTestQuad(base, 64, 32)

	flips := []Flip{FlipNone, FlipHorizontal, FlipVertical, FlipHorizontal | FlipVertical}
	for _, f := range flips {
		sp := *base
		sp.Flip = f
		got := buildTestQuad(&sp, 64, 32)
		for i, v := range got {
			if v.X != plain[i].X || v.Y != plain[i].Y {
				t.Errorf("flip %d corner %d position = (%g, %g), want (%g, %g)",
					f, i, v.X, v.Y, plain[i].X, plain[i].Y)
			}
			j := i ^ int(f)
			if v.U != plain[j].U || v.V != plain[j].V {
				t.Errorf("flip %d corner %d uv = (%g, %g), want corner %d uv (%g, %g)",
					f, i, v.U, v.V, j, plain[j].U, plain[j].V)
			}
		}
	}
}

// Rotations below the epsilon threshold take the identity basis, so a
// zero rotation is bit-identical to no rotation at all.
func TestRotationZeroExact(t *testing.T) {
	sp := &Sprite{
		Source: &Rect{X: 0, Y: 0, W: 32, H: 32},
		Dest:   Rct(3, 9, 32, 32),
		Origin: Pt(4, 4),
		Color:  White,
	}
	plain := buildTestQuad(sp, 32, 32)

	for _, r := range []float32{0, 1e-8, -1e-8} {
		rot := *sp
		rot.Rotation = r
		got := buildTestQuad(&rot, 32, 32)
		if got != plain {
			t.Errorf("rotation %g output differs from unrotated quad", r)
		}
	}
	if plain[0].X != 3-4 || plain[0].Y != 9-4 {
		t.Errorf("top-left = (%g, %g), want (-1, 5)", plain[0].X, plain[0].Y)
	}
}

// A quarter turn maps the corner offsets (cx, cy) to (-cy, cx) around
// the pivot.
func TestRotationQuarterTurn(t *testing.T) {
	sp := &Sprite{
		Dest:     Rct(100, 50, 40, 20),
		Rotation: math32.Pi / 2,
		Color:    White,
	}
	verts := buildTestQuad(sp, 8, 8)

	wantOffsets := [4][2]float32{{0, 0}, {0, 40}, {-20, 0}, {-20, 40}}
	const eps = 1e-3
	for i, v := range verts {
		wantX := 100 + wantOffsets[i][0]
		wantY := 50 + wantOffsets[i][1]
		if !near(v.X, wantX, eps) || !near(v.Y, wantY, eps) {
			t.Errorf("corner %d = (%g, %g), want (%g, %g)", i, v.X, v.Y, wantX, wantY)
		}
	}
}

// The origin pins Dest to the pivot point rather than the top-left
// corner.
func TestOriginShiftsPivot(t *testing.T) {
	verts := buildTestQuad(&Sprite{
		Source: &Rect{X: 0, Y: 0, W: 32, H: 32},
		Dest:   Rct(100, 100, 32, 32),
		Origin: Pt(16, 16),
		Color:  White,
	}, 32, 32)

	if verts[0].X != 84 || verts[0].Y != 84 {
		t.Errorf("top-left = (%g, %g), want (84, 84)", verts[0].X, verts[0].Y)
	}
	if verts[3].X != 116 || verts[3].Y != 116 {
		t.Errorf("bottom-right = (%g, %g), want (116, 116)", verts[3].X, verts[3].Y)
	}
}

// The origin is measured in source texels even when the source is a
// sub-rectangle of the texture.
func TestOriginWithSourceRegion(t *testing.T) {
	verts := buildTestQuad(&Sprite{
		Source: &Rect{X: 16, Y: 8, W: 16, H: 8},
		Dest:   Rct(0, 0, 16, 8),
		Origin: Pt(8, 4),
		Color:  White,
	}, 64, 32)

	if verts[0].X != -8 || verts[0].Y != -4 {
		t.Errorf("top-left = (%g, %g), want (-8, -4)", verts[0].X, verts[0].Y)
	}
}

// ScaleBySource treats Dest.W/H as multipliers of the source extent in
// texels: of the source rectangle when present, of the full texture
// otherwise.
func TestScaleBySource(t *testing.T) {
	withSource := buildTestQuad(&Sprite{
		Source:        &Rect{X: 0, Y: 0, W: 16, H: 8},
		Dest:          Rct(0, 0, 2, 3),
		ScaleBySource: true,
		Color:         White,
	}, 64, 32)
	if withSource[3].X != 32 || withSource[3].Y != 24 {
		t.Errorf("bottom-right with source = (%g, %g), want (32, 24)",
			withSource[3].X, withSource[3].Y)
	}

	fullTexture := buildTestQuad(&Sprite{
		Dest:          Rct(0, 0, 2, 3),
		ScaleBySource: true,
		Color:         White,
	}, 64, 32)
	if fullTexture[3].X != 128 || fullTexture[3].Y != 96 {
		t.Errorf("bottom-right full texture = (%g, %g), want (128, 96)",
			fullTexture[3].X, fullTexture[3].Y)
	}
}

// A zero-extent source clamps to the minimum extent instead of
// collapsing the texture coordinates.
func TestDegenerateSourceClamped(t *testing.T) {
	verts := buildTestQuad(&Sprite{
		Source: &Rect{X: 10, Y: 10, W: 0, H: 0},
		Dest:   Rct(0, 0, 16, 16),
		Color:  White,
	}, 64, 32)

	for i, v := range verts {
		for name, f := range map[string]float32{"U": v.U, "V": v.V, "X": v.X, "Y": v.Y} {
			if math32.IsNaN(f) || math32.IsInf(f, 0) {
				t.Errorf("corner %d %s = %g, want finite", i, name, f)
			}
		}
	}
	if !(verts[1].U > verts[0].U) {
		t.Errorf("u extent = %g, want positive", verts[1].U-verts[0].U)
	}
	if !(verts[2].V > verts[0].V) {
		t.Errorf("v extent = %g, want positive", verts[2].V-verts[0].V)
	}
}

func TestSourceRegionUV(t *testing.T) {
	verts := buildTestQuad(&Sprite{
		Source: &Rect{X: 16, Y: 8, W: 16, H: 8},
		Dest:   Rct(0, 0, 16, 8),
		Color:  White,
	}, 64, 32)

	if verts[0].U != 0.25 || verts[0].V != 0.25 {
		t.Errorf("top-left uv = (%g, %g), want (0.25, 0.25)", verts[0].U, verts[0].V)
	}
	if verts[3].U != 0.5 || verts[3].V != 0.5 {
		t.Errorf("bottom-right uv = (%g, %g), want (0.5, 0.5)", verts[3].U, verts[3].V)
	}
}

// Tint and depth ride along unmodified on all four vertices.
func TestTintAndDepth(t *testing.T) {
	tint := Color{R: 0.5, G: 0.25, B: 0.125, A: 0.75}
	verts := buildTestQuad(&Sprite{
		Dest:  Rct(0, 0, 8, 8),
		Color: tint,
		Depth: 0.625,
	}, 8, 8)

	for i, v := range verts {
		if v.R != tint.R || v.G != tint.G || v.B != tint.B || v.A != tint.A {
			t.Errorf("corner %d color = (%g, %g, %g, %g), want (%g, %g, %g, %g)",
				i, v.R, v.G, v.B, v.A, tint.R, tint.G, tint.B, tint.A)
		}
		if v.Z != 0.625 {
			t.Errorf("corner %d depth = %g, want 0.625", i, v.Z)
		}
	}
}

func BenchmarkBuildQuad(b *testing.B) {
	sp := &Sprite{
		Source:   &Rect{X: 16, Y: 8, W: 32, H: 16},
		Dest:     Rct(100, 100, 32, 16),
		Origin:   Pt(16, 8),
		Rotation: 0.3,
		Color:    White,
		Depth:    0.5,
	}
	var dst [4]Vertex
	for b.Loop() {
		buildQuad(dst[:], sp, 256, 256)
	}
}
