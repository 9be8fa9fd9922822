package core

import "math/rand"

const (
	axesRange    float32 = 2.0
	axesNumLines         = 9
)

var (
	axisRed   = [4]float32{1, 0, 0, 1}
	axisGreen = [4]float32{0, 1, 0, 1}
	axisBlue  = [4]float32{0, 0, 1, 1}
)

// AxesGrid returns the reference grid as a line list: a 9x9 grid on the XZ
// plane spanning [-2,2] (red lines along X, blue along Z) and a green segment
// from the origin to (0,-1,0).
func AxesGrid() []AxesVertex {
	vertices := make([]AxesVertex, 0, axesNumLines*4+2)
	step := (2 * axesRange) / float32(axesNumLines-1)
	for i := 0; i < axesNumLines; i++ {
		pos := -axesRange + float32(i)*step
		vertices = append(vertices,
			AxesVertex{Position: [3]float32{-axesRange, 0, pos}, Color: axisRed},
			AxesVertex{Position: [3]float32{axesRange, 0, pos}, Color: axisRed},
			AxesVertex{Position: [3]float32{pos, 0, -axesRange}, Color: axisBlue},
			AxesVertex{Position: [3]float32{pos, 0, axesRange}, Color: axisBlue},
		)
	}
	vertices = append(vertices,
		AxesVertex{Position: [3]float32{0, 0, 0}, Color: axisGreen},
		AxesVertex{Position: [3]float32{0, -1, 0}, Color: axisGreen},
	)
	return vertices
}

var palette = [5][4]float32{
	{1.0, 0.3, 0.2, 1.0}, // red
	{0.2, 0.5, 1.0, 1.0}, // blue
	{1.0, 0.8, 0.2, 1.0}, // yellow
	{0.9, 0.4, 1.0, 1.0}, // purple
	{0.6, 1.0, 0.8, 1.0}, // cyan
}

// PaletteColor cycles through the five particle colors by index.
func PaletteColor(i int) [4]float32 {
	if i < 0 {
		i = -i
	}
	return palette[i%len(palette)]
}

// ColoredParticles builds one vertex per position, colored by PaletteColor.
func ColoredParticles(positions [][3]float32) []ParticleVertex {
	verts := make([]ParticleVertex, len(positions))
	for i, p := range positions {
		verts[i] = ParticleVertex{Position: p, Color: PaletteColor(i)}
	}
	return verts
}

// RandomParticles scatters n opaque white particles uniformly in [-1,1]^3.
func RandomParticles(rng *rand.Rand, n int) []ParticleVertex {
	if n < 0 {
		n = 0
	}
	verts := make([]ParticleVertex, n)
	for i := range verts {
		verts[i] = ParticleVertex{
			Position: [3]float32{
				rng.Float32()*2 - 1,
				rng.Float32()*2 - 1,
				rng.Float32()*2 - 1,
			},
			Color: [4]float32{1, 1, 1, 1},
		}
	}
	return verts
}
