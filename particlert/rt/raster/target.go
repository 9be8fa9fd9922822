package raster

import (
	"image"
	"image/color"
	"runtime"

	"github.com/go-gl/mathgl/mgl32"
)

// Target is a float RGBA color target. Values are stored unclamped so
// additive glow can exceed 1 (or go below 0) until Image resolves them.
type Target struct {
	Width  int
	Height int
	Pix    []mgl32.Vec4 // row-major

	// Workers bounds the number of concurrent row bands. Zero means GOMAXPROCS.
	Workers int
}

func NewTarget(width, height int) *Target {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Target{
		Width:  width,
		Height: height,
		Pix:    make([]mgl32.Vec4, width*height),
	}
}

func (t *Target) Clear(c mgl32.Vec4) {
	for i := range t.Pix {
		t.Pix[i] = c
	}
}

func (t *Target) At(x, y int) mgl32.Vec4 {
	return t.Pix[y*t.Width+x]
}

func (t *Target) Viewport() Viewport {
	return Viewport{Width: float32(t.Width), Height: float32(t.Height)}
}

func (t *Target) blend(x, y int, src mgl32.Vec4, mode BlendMode) {
	i := y*t.Width + x
	t.Pix[i] = mode.Apply(t.Pix[i], src)
}

func (t *Target) workers() int {
	if t.Workers > 0 {
		return t.Workers
	}
	return runtime.GOMAXPROCS(0)
}

// Image clamps every channel to [0,1] and quantizes to 8 bits.
func (t *Target) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, t.Width, t.Height))
	for y := 0; y < t.Height; y++ {
		for x := 0; x < t.Width; x++ {
			c := t.At(x, y)
			img.SetNRGBA(x, y, color.NRGBA{
				R: quantize(c[0]),
				G: quantize(c[1]),
				B: quantize(c[2]),
				A: quantize(c[3]),
			})
		}
	}
	return img
}

func quantize(v float32) uint8 {
	return uint8(mgl32.Clamp(v, 0, 1)*255 + 0.5)
}
