package raster

import (
	"context"

	"github.com/chewxy/math32"
	"github.com/gekko3d/particleviz/particlert/rt/core"
	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/sync/errgroup"
)

// minPointSize matches the smallest point size GPUs rasterize.
const minPointSize float32 = 1

// sprite is a point after the vertex stage: its square in window space.
type sprite struct {
	x0, y0 float32
	size   float32
	color  mgl32.Vec4
}

type rowBand struct{ y0, y1 int }

// DrawPoints renders verts as point sprites with additive blending.
//
// Each point runs through core.ParticleVertexStage and covers a PointSize
// square centered on its window position. Every pixel whose center lies in
// the square becomes a fragment with pointCoord = (center - squareMin) / size,
// which shader turns into a color or a discard.
//
// Rows are split into bands processed concurrently; each band walks the
// points in submission order so blending per pixel is deterministic.
func DrawPoints(ctx context.Context, t *Target, verts []core.ParticleVertex, pc *core.PushConstants, shader core.ParticleShader) (Stats, error) {
	stats := Stats{Primitives: len(verts)}
	vp := t.Viewport()

	sprites := make([]sprite, 0, len(verts))
	for _, v := range verts {
		out := core.ParticleVertexStage(v, pc)
		if out.Culled || !insideClipVolume(out.Clip) {
			stats.Culled++
			continue
		}
		size := math32.Max(out.PointSize, minPointSize)
		cx, cy, _ := vp.ToWindow(out.Clip)
		sprites = append(sprites, sprite{
			x0:    cx - size/2,
			y0:    cy - size/2,
			size:  size,
			color: out.Color,
		})
	}
	if len(sprites) == 0 || t.Width == 0 || t.Height == 0 {
		return stats, ctx.Err()
	}

	bands := splitRows(t.Height, t.workers())
	results := make([]Stats, len(bands))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(t.workers())
	for i, band := range bands {
		g.Go(func() error {
			for _, s := range sprites {
				if err := ctx.Err(); err != nil {
					return err
				}
				results[i].Add(shadeSprite(t, s, band, shader))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return stats, err
	}
	for _, r := range results {
		stats.Add(r)
	}
	return stats, nil
}

func shadeSprite(t *Target, s sprite, band rowBand, shader core.ParticleShader) Stats {
	var st Stats
	// Pixel i is covered when i+0.5 lies in [min, min+size).
	ix0 := max(int(math32.Ceil(s.x0-0.5)), 0)
	ix1 := min(int(math32.Ceil(s.x0+s.size-0.5)), t.Width)
	iy0 := max(int(math32.Ceil(s.y0-0.5)), band.y0)
	iy1 := min(int(math32.Ceil(s.y0+s.size-0.5)), band.y1)

	inv := 1 / s.size
	for y := iy0; y < iy1; y++ {
		v := (float32(y) + 0.5 - s.y0) * inv
		for x := ix0; x < ix1; x++ {
			u := (float32(x) + 0.5 - s.x0) * inv
			frag := shader.Shade(mgl32.Vec2{u, v}, s.color)
			if frag.IsDiscarded() {
				st.Discarded++
				continue
			}
			t.blend(x, y, frag.RGBA(), BlendAdditive)
			st.Fragments++
		}
	}
	return st
}

// splitRows divides [0,height) into at most n contiguous bands.
func splitRows(height, n int) []rowBand {
	if n < 1 {
		n = 1
	}
	if n > height {
		n = height
	}
	bands := make([]rowBand, 0, n)
	for i := 0; i < n; i++ {
		y0 := height * i / n
		y1 := height * (i + 1) / n
		if y1 > y0 {
			bands = append(bands, rowBand{y0: y0, y1: y1})
		}
	}
	return bands
}
