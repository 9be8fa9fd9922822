package core

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func assertVec3Near(t *testing.T, want, got mgl32.Vec3, msg string) {
	t.Helper()
	if !want.ApproxEqualThreshold(got, 1e-4) {
		t.Errorf("%s: expected %v, got %v", msg, want, got)
	}
}

func TestNewOrbitCamera_UpIsPerpendicularUnit(t *testing.T) {
	tests := []struct {
		name     string
		position mgl32.Vec3
		target   mgl32.Vec3
	}{
		{"default", DefaultCameraPosition, DefaultCameraTarget},
		{"looking down Z", mgl32.Vec3{0, 0, 5}, mgl32.Vec3{0, 0, 0}},
		{"straight down Y", mgl32.Vec3{0, 5, 0}, mgl32.Vec3{0, 0, 0}},
		{"oblique", mgl32.Vec3{-3, 2, 1}, mgl32.Vec3{1, 0, -2}},
	}
	for _, tc := range tests {
		cam := NewOrbitCamera(tc.position, tc.target)
		dir := tc.target.Sub(tc.position).Normalize()
		assert.InDelta(t, 1, cam.Up.Len(), 1e-5, tc.name)
		assert.InDelta(t, 0, cam.Up.Dot(dir), 1e-5, tc.name)
	}

	same := NewOrbitCamera(mgl32.Vec3{1, 1, 1}, mgl32.Vec3{1, 1, 1})
	assert.Equal(t, mgl32.Vec3{0, 1, 0}, same.Up)
}

func TestOrbitCamera_RevolveKeepsDistance(t *testing.T) {
	cam := NewDefaultOrbitCamera()
	before := cam.Target.Sub(cam.Position).Len()

	cam.Revolve(0.3, -0.2)
	cam.Revolve(-1.1, 0.4)

	assert.InDelta(t, before, cam.Target.Sub(cam.Position).Len(), 1e-4)
	assertVec3Near(t, DefaultCameraTarget, cam.Target, "target fixed")
	dir := cam.Target.Sub(cam.Position).Normalize()
	assert.InDelta(t, 0, cam.Up.Dot(dir), 1e-4)
}

func TestOrbitCamera_LookAroundMovesTarget(t *testing.T) {
	cam := NewDefaultOrbitCamera()
	pos := cam.Position
	before := cam.Target.Sub(cam.Position).Len()

	cam.LookAround(0.2, 0.1)

	assertVec3Near(t, pos, cam.Position, "eye fixed")
	assert.InDelta(t, before, cam.Target.Sub(cam.Position).Len(), 1e-4)
	assert.False(t, cam.Target.ApproxEqualThreshold(DefaultCameraTarget, 1e-3))
}

func TestOrbitCamera_Zoom(t *testing.T) {
	cam := NewOrbitCamera(mgl32.Vec3{0, 0, 5}, mgl32.Vec3{0, 0, 0})
	cam.Zoom(1)
	assertVec3Near(t, mgl32.Vec3{0, 0, 4}, cam.Position, "zoom in")

	cam.Zoom(-2)
	assertVec3Near(t, mgl32.Vec3{0, 0, 6}, cam.Position, "zoom out")

	cam.Zoom(100)
	assertVec3Near(t, mgl32.Vec3{0, 0, 0.1}, cam.Position, "clamped")
}

func TestOrbitCamera_RotateAndYTop(t *testing.T) {
	cam := NewOrbitCamera(mgl32.Vec3{0, 0, 5}, mgl32.Vec3{0, 0, 0})
	cam.Rotate(0.5)
	assert.InDelta(t, 1, cam.Up.Len(), 1e-5)
	assert.False(t, cam.Up.ApproxEqualThreshold(mgl32.Vec3{0, 1, 0}, 1e-3))

	cam.YTop()
	assertVec3Near(t, mgl32.Vec3{0, 1, 0}, cam.Up, "y top")
}

func TestOrbitCamera_CenterTargetOnOrigin(t *testing.T) {
	cam := NewOrbitCamera(mgl32.Vec3{0, 0, 5}, mgl32.Vec3{1, 0, 0})
	cam.CenterTargetOnOrigin()

	assertVec3Near(t, mgl32.Vec3{}, cam.Target, "target")
	assertVec3Near(t, mgl32.Vec3{0, 0, 5}, cam.Position, "eye")
	dir := cam.Target.Sub(cam.Position).Normalize()
	assert.InDelta(t, 0, cam.Up.Dot(dir), 1e-4)

	// Already centered: no change.
	up := cam.Up
	cam.CenterTargetOnOrigin()
	assert.Equal(t, up, cam.Up)
}

func TestOrbitCamera_DegenerateIsNoop(t *testing.T) {
	p := mgl32.Vec3{1, 2, 3}
	cam := &OrbitCamera{Position: p, Target: p, Up: mgl32.Vec3{0, 1, 0}}
	cam.Revolve(1, 1)
	cam.LookAround(1, 1)
	cam.Zoom(1)
	cam.Rotate(1)
	assert.Equal(t, p, cam.Position)
	assert.Equal(t, p, cam.Target)
	assert.Equal(t, mgl32.Vec3{0, 1, 0}, cam.Up)
}
