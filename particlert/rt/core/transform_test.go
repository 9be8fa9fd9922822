package core

import (
	"encoding/binary"
	"math"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAxesVertexStage_Identity(t *testing.T) {
	pc := &PushConstants{ViewProj: mgl32.Ident4(), SizeScale: 123}
	v := AxesVertex{Position: [3]float32{1.5, -2, 3.25}, Color: [4]float32{0.1, 0.2, 0.3, 0.4}}

	out := AxesVertexStage(v, pc)
	assert.Equal(t, mgl32.Vec4{1.5, -2, 3.25, 1}, out.Clip)
	assert.Equal(t, mgl32.Vec4{0.1, 0.2, 0.3, 0.4}, out.Color)
}

func TestAxesVertexStage_AppliesMatrixNotSizeScale(t *testing.T) {
	m := mgl32.Translate3D(1, 2, 3).Mul4(mgl32.Scale3D(2, 2, 2))
	v := AxesVertex{Position: [3]float32{1, 1, 1}, Color: [4]float32{1, 0, 0, 1}}

	a := AxesVertexStage(v, &PushConstants{ViewProj: m, SizeScale: 1})
	b := AxesVertexStage(v, &PushConstants{ViewProj: m, SizeScale: 1000})
	assert.Equal(t, a, b)
	assert.Equal(t, mgl32.Vec4{3, 4, 5, 1}, a.Clip)
}

func TestParticleVertexStage_PointSize(t *testing.T) {
	cam := NewDefaultOrbitCamera()
	vp := ParticleViewProj(cam, 16.0/9.0, 1)
	pc := &PushConstants{ViewProj: vp, SizeScale: SizeScale(720, 1)}

	near := ParticleVertexStage(ParticleVertex{Position: [3]float32{0.5, -0.5, 1}, Color: [4]float32{1, 1, 1, 1}}, pc)
	far := ParticleVertexStage(ParticleVertex{Position: [3]float32{-0.5, 0.5, -1}, Color: [4]float32{1, 1, 1, 1}}, pc)
	require.False(t, near.Culled)
	require.False(t, far.Culled)
	assert.InDelta(t, pc.SizeScale/near.Clip.W(), near.PointSize, 1e-5)
	assert.Greater(t, near.PointSize, far.PointSize)
}

func TestParticleVertexStage_CullsBehindEye(t *testing.T) {
	cam := NewOrbitCamera(mgl32.Vec3{0, 0, 5}, mgl32.Vec3{0, 0, 0})
	pc := &PushConstants{ViewProj: AxesViewProj(cam, 1), SizeScale: 40}

	out := ParticleVertexStage(ParticleVertex{Position: [3]float32{0, 0, 10}}, pc)
	assert.True(t, out.Culled)
	assert.Zero(t, out.PointSize)
}

func TestPushConstants_Bytes(t *testing.T) {
	m := mgl32.Mat4{}
	for i := range m {
		m[i] = float32(i) + 0.5
	}
	pc := PushConstants{ViewProj: m, SizeScale: 43.2}

	b := pc.Bytes()
	require.Len(t, b, PushConstantsSize)
	for i := 0; i < 16; i++ {
		got := math.Float32frombits(binary.LittleEndian.Uint32(b[i*4:]))
		assert.Equal(t, m[i], got, "column-major element %d", i)
	}
	assert.Equal(t, float32(43.2), math.Float32frombits(binary.LittleEndian.Uint32(b[64:])))

	axes := AxesPushConstants{ViewProj: m}
	assert.Equal(t, b[:AxesPushConstantsSize], axes.Bytes())
	assert.Equal(t, &PushConstants{ViewProj: m}, axes.Full())
}

func TestPerspective_DepthRange(t *testing.T) {
	p := Perspective(FieldOfView, 1, NearPlane, FarPlane)

	nearPt := p.Mul4x1(mgl32.Vec4{0, 0, -NearPlane, 1})
	farPt := p.Mul4x1(mgl32.Vec4{0, 0, -FarPlane, 1})
	assert.InDelta(t, 0, nearPt.Z()/nearPt.W(), 1e-5)
	assert.InDelta(t, 1, farPt.Z()/farPt.W(), 1e-5)

	// Matches mgl32 in x/y.
	gl := mgl32.Perspective(FieldOfView, 1, NearPlane, FarPlane)
	assert.InDelta(t, gl.At(0, 0), p.At(0, 0), 1e-6)
	assert.InDelta(t, gl.At(1, 1), p.At(1, 1), 1e-6)
}

func TestScaleFactorAndSizeScale(t *testing.T) {
	assert.Equal(t, float32(1), ScaleFactor(DefaultScaleGauge))
	assert.Equal(t, float32(16), ScaleFactor(2*DefaultScaleGauge))
	assert.InDelta(t, 720*0.06, SizeScale(720, 1), 1e-4)
	assert.InDelta(t, 720*0.06*16, SizeScale(720, 16), 1e-2)
}

func TestParticleViewProj_ScalesModel(t *testing.T) {
	cam := NewDefaultOrbitCamera()
	p := mgl32.Vec4{0.3, 0.2, -0.1, 1}
	scaled := ParticleViewProj(cam, 1.5, 2).Mul4x1(p)
	direct := AxesViewProj(cam, 1.5).Mul4x1(mgl32.Vec4{0.6, 0.4, -0.2, 1})
	assert.True(t, scaled.ApproxEqualThreshold(direct, 1e-4), "%v vs %v", scaled, direct)
}

func TestAxesGrid(t *testing.T) {
	grid := AxesGrid()
	require.Len(t, grid, 9*4+2)
	require.Zero(t, len(grid)%2, "line list needs vertex pairs")

	var red, blue int
	for _, v := range grid[:36] {
		assert.Zero(t, v.Position[1], "grid lies on the XZ plane")
		assert.LessOrEqual(t, math.Abs(float64(v.Position[0])), 2.0)
		assert.LessOrEqual(t, math.Abs(float64(v.Position[2])), 2.0)
		switch v.Color {
		case axisRed:
			red++
		case axisBlue:
			blue++
		}
	}
	assert.Equal(t, 18, red)
	assert.Equal(t, 18, blue)
	assert.Equal(t, [3]float32{0, -1, 0}, grid[37].Position)
	assert.Equal(t, axisGreen, grid[37].Color)
}

func TestParticles(t *testing.T) {
	assert.Equal(t, PaletteColor(0), PaletteColor(5))
	assert.NotEqual(t, PaletteColor(0), PaletteColor(1))

	verts := ColoredParticles([][3]float32{{0, 0, 0}, {1, 1, 1}, {2, 2, 2}})
	require.Len(t, verts, 3)
	assert.Equal(t, PaletteColor(2), verts[2].Color)
	assert.Equal(t, [3]float32{1, 1, 1}, verts[1].Position)

	rnd := RandomParticles(rand.New(rand.NewSource(7)), 200)
	require.Len(t, rnd, 200)
	for _, v := range rnd {
		assert.Equal(t, [4]float32{1, 1, 1, 1}, v.Color)
		for _, c := range v.Position {
			assert.GreaterOrEqual(t, c, float32(-1))
			assert.Less(t, c, float32(1))
		}
	}
	assert.Empty(t, RandomParticles(rand.New(rand.NewSource(1)), -3))
}
