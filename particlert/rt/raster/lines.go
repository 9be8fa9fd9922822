package raster

import (
	"context"

	"github.com/chewxy/math32"
	"github.com/gekko3d/particleviz/particlert/rt/core"
	"github.com/go-gl/mathgl/mgl32"
)

const minClipW float32 = 1e-6

// DrawLines renders verts as a line list (pairs of vertices) with replace
// blending. Each vertex goes through core.AxesVertexStage; segments are
// clipped to the depth range, walked with a DDA, and the color varying is
// interpolated perspective-correctly. The fragment stage passes color through.
// A trailing unpaired vertex is ignored.
func DrawLines(ctx context.Context, t *Target, verts []core.AxesVertex, pc *core.AxesPushConstants) (Stats, error) {
	full := pc.Full()
	vp := t.Viewport()
	stats := Stats{Primitives: len(verts) / 2}

	for i := 0; i+1 < len(verts); i += 2 {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		a := core.AxesVertexStage(verts[i], full)
		b := core.AxesVertexStage(verts[i+1], full)

		var ok bool
		if a, b, ok = clipSegment(a, b); !ok {
			stats.Culled++
			continue
		}
		stats.Fragments += rasterizeSegment(t, vp, a, b)
	}
	return stats, nil
}

// clipSegment clips against z >= 0 and z <= w, the planes a DDA cannot
// handle. x/y overflow is dropped per pixel instead.
func clipSegment(a, b core.VertexOutput) (core.VertexOutput, core.VertexOutput, bool) {
	planes := []func(mgl32.Vec4) float32{
		func(c mgl32.Vec4) float32 { return c.Z() },
		func(c mgl32.Vec4) float32 { return c.W() - c.Z() },
	}
	for _, dist := range planes {
		da, db := dist(a.Clip), dist(b.Clip)
		if da < 0 && db < 0 {
			return a, b, false
		}
		if da < 0 {
			a = lerpVertex(a, b, da/(da-db))
		} else if db < 0 {
			b = lerpVertex(b, a, db/(db-da))
		}
	}
	if a.Clip.W() < minClipW || b.Clip.W() < minClipW {
		return a, b, false
	}
	return a, b, true
}

func lerpVertex(a, b core.VertexOutput, s float32) core.VertexOutput {
	return core.VertexOutput{
		Clip:  a.Clip.Add(b.Clip.Sub(a.Clip).Mul(s)),
		Color: a.Color.Add(b.Color.Sub(a.Color).Mul(s)),
	}
}

func rasterizeSegment(t *Target, vp Viewport, a, b core.VertexOutput) int {
	ax, ay, _ := vp.ToWindow(a.Clip)
	bx, by, _ := vp.ToWindow(b.Clip)
	invWa, invWb := 1/a.Clip.W(), 1/b.Clip.W()

	dx, dy := bx-ax, by-ay
	steps := int(math32.Ceil(math32.Max(math32.Abs(dx), math32.Abs(dy))))
	if steps < 1 {
		steps = 1
	}

	written := 0
	lastX, lastY := -1, -1
	for i := 0; i <= steps; i++ {
		s := float32(i) / float32(steps)
		x := int(math32.Floor(ax + dx*s))
		y := int(math32.Floor(ay + dy*s))
		if x == lastX && y == lastY {
			continue
		}
		lastX, lastY = x, y
		if x < 0 || y < 0 || x >= t.Width || y >= t.Height {
			continue
		}
		// Interpolate color/w and 1/w linearly in screen space.
		wa := (1 - s) * invWa
		wb := s * invWb
		color := a.Color.Mul(wa).Add(b.Color.Mul(wb)).Mul(1 / (wa + wb))
		t.blend(x, y, color, BlendReplace)
		written++
	}
	return written
}
