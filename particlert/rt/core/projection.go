package core

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	FieldOfView float32 = math32.Pi / 4
	NearPlane   float32 = 0.1
	FarPlane    float32 = 100.0

	// DefaultScaleGauge is the gauge value at which ScaleFactor is 1.
	DefaultScaleGauge = 5000.0
	// SizeRatio is the particle size as a fraction of viewport height at scale 1.
	SizeRatio float32 = 0.06
)

// Perspective builds a right-handed projection mapping depth to 0..1, the
// convention WebGPU and Vulkan share. mgl32.Perspective targets -1..1.
func Perspective(fovY, aspect, near, far float32) mgl32.Mat4 {
	f := 1 / math32.Tan(fovY/2)
	r := far / (near - far)
	return mgl32.Mat4{
		f / aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, r, -1,
		0, 0, r * near, 0,
	}
}

func projection(aspect float32) mgl32.Mat4 {
	if aspect <= 0 || math32.IsNaN(aspect) {
		aspect = 1
	}
	return Perspective(FieldOfView, aspect, NearPlane, FarPlane)
}

// AxesViewProj is proj * view.
func AxesViewProj(cam *OrbitCamera, aspect float32) mgl32.Mat4 {
	return projection(aspect).Mul4(cam.ViewMatrix())
}

// ParticleViewProj is proj * view * scale(scaleFactor).
func ParticleViewProj(cam *OrbitCamera, aspect, scaleFactor float32) mgl32.Mat4 {
	model := mgl32.Scale3D(scaleFactor, scaleFactor, scaleFactor)
	return AxesViewProj(cam, aspect).Mul4(model)
}

// ScaleFactor maps the UI gauge to a model scale: (gauge/5000)^4.
func ScaleFactor(gauge float64) float32 {
	s := gauge / DefaultScaleGauge
	return float32(s * s * s * s)
}

// SizeScale is the push-constant size_scale for a viewport heightPx tall.
func SizeScale(heightPx int, scaleFactor float32) float32 {
	return float32(heightPx) * SizeRatio * scaleFactor
}
