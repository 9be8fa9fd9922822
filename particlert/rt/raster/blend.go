package raster

import "github.com/go-gl/mathgl/mgl32"

// BlendMode is the color-target blend state of a draw.
type BlendMode int

const (
	// BlendReplace writes the fragment as is (axes pipeline).
	BlendReplace BlendMode = iota
	// BlendAdditive is src*One + dst*One for color and alpha (particle pipeline).
	BlendAdditive
)

func (m BlendMode) Apply(dst, src mgl32.Vec4) mgl32.Vec4 {
	if m == BlendAdditive {
		return dst.Add(src)
	}
	return src
}
