package raster

import "github.com/go-gl/mathgl/mgl32"

// Viewport maps normalized device coordinates to window pixels. NDC +Y is up
// and the window origin is the top-left corner, as in WebGPU.
type Viewport struct {
	Width  float32
	Height float32
}

// ToWindow performs the perspective divide and viewport transform. Depth is
// returned in NDC (0..1).
func (vp Viewport) ToWindow(clip mgl32.Vec4) (x, y, depth float32) {
	w := clip.W()
	ndcX, ndcY := clip.X()/w, clip.Y()/w
	x = (ndcX + 1) * 0.5 * vp.Width
	y = (1 - ndcY) * 0.5 * vp.Height
	return x, y, clip.Z() / w
}

// insideClipVolume reports whether a clip position lies in -w<=x,y<=w, 0<=z<=w.
func insideClipVolume(c mgl32.Vec4) bool {
	w := c.W()
	if w <= 0 {
		return false
	}
	return c.X() >= -w && c.X() <= w &&
		c.Y() >= -w && c.Y() <= w &&
		c.Z() >= 0 && c.Z() <= w
}
