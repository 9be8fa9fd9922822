package core

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

const cameraEpsilon float32 = 1e-6

var (
	DefaultCameraPosition = mgl32.Vec3{1.6, -1.6, 3.0}
	DefaultCameraTarget   = mgl32.Vec3{0, 0, 0}
)

// OrbitCamera orbits Position around Target. Up is kept perpendicular to the
// view direction by every operation.
type OrbitCamera struct {
	Position mgl32.Vec3
	Target   mgl32.Vec3
	Up       mgl32.Vec3
}

func NewOrbitCamera(position, target mgl32.Vec3) *OrbitCamera {
	return &OrbitCamera{
		Position: position,
		Target:   target,
		Up:       closestPerpUnitToY(position, target),
	}
}

func NewDefaultOrbitCamera() *OrbitCamera {
	return NewOrbitCamera(DefaultCameraPosition, DefaultCameraTarget)
}

// Revolve swings the eye around the target: pitch about the camera's right
// axis, then yaw about Up.
func (c *OrbitCamera) Revolve(deltaYaw, deltaPitch float32) {
	relative := c.Target.Sub(c.Position)
	if lenSqr(relative) <= cameraEpsilon {
		return
	}
	axis := c.Up.Cross(relative).Normalize()
	rotation := mgl32.QuatRotate(-deltaPitch, axis)
	c.Up = rotation.Rotate(c.Up)
	relative = rotation.Rotate(relative)
	c.Position = c.Target.Sub(relative)

	rotation = mgl32.QuatRotate(-deltaYaw, c.Up)
	relative = rotation.Rotate(relative)
	c.Position = c.Target.Sub(relative)
}

// LookAround turns the view direction in place, moving the target.
func (c *OrbitCamera) LookAround(dx, dy float32) {
	relative := c.Target.Sub(c.Position)
	if lenSqr(relative) <= cameraEpsilon {
		return
	}
	rotation := mgl32.QuatRotate(dx, c.Up)
	relative = rotation.Rotate(relative)
	c.Target = c.Position.Add(relative)

	axis := c.Up.Cross(relative).Normalize()
	rotation = mgl32.QuatRotate(dy, axis)
	relative = rotation.Rotate(relative)
	c.Target = c.Position.Add(relative)
	c.Up = rotation.Rotate(c.Up)
}

// Zoom moves the eye toward the target by zoomFactor, never closer than 0.1.
func (c *OrbitCamera) Zoom(zoomFactor float32) {
	relative := c.Target.Sub(c.Position)
	direction, ok := normalizeOrZero(relative)
	if !ok {
		return
	}
	distance := math32.Max(relative.Len()-zoomFactor, 0.1)
	c.Position = c.Target.Sub(direction.Mul(distance))
}

// Rotate rolls Up around the view direction.
func (c *OrbitCamera) Rotate(deltaRoll float32) {
	relative := c.Target.Sub(c.Position)
	if lenSqr(relative) <= cameraEpsilon {
		return
	}
	rotation := mgl32.QuatRotate(deltaRoll, relative.Normalize())
	c.Up = rotation.Rotate(c.Up)
}

// YTop resets the roll so that +Y points up on screen as far as possible.
func (c *OrbitCamera) YTop() {
	c.Up = closestPerpUnitToY(c.Position, c.Target)
}

// CenterTargetOnOrigin re-aims the camera at the origin without moving the
// eye, carrying Up through the same rotation.
func (c *OrbitCamera) CenterTargetOnOrigin() {
	relative := c.Target.Sub(c.Position)
	if lenSqr(relative) <= cameraEpsilon {
		return
	}
	newRelative := mgl32.Vec3{}.Sub(c.Position)
	if lenSqr(newRelative) <= cameraEpsilon {
		return
	}
	relN := relative.Normalize()
	newN := newRelative.Normalize()
	dot := mgl32.Clamp(relN.Dot(newN), -1, 1)
	if dot > 1-cameraEpsilon {
		return
	}
	axis := relN.Cross(newN)
	if lenSqr(axis) < cameraEpsilon {
		if dot >= 0 {
			return
		}
		axis = relN.Cross(mgl32.Vec3{1, 0, 0})
		if lenSqr(axis) < cameraEpsilon {
			axis = relN.Cross(mgl32.Vec3{0, 0, 1})
		}
	}
	rotation := mgl32.QuatRotate(math32.Acos(dot), axis.Normalize())
	c.Up = rotation.Rotate(c.Up)
	c.Target = mgl32.Vec3{}
}

// ViewMatrix is a right-handed look-at from Position to Target.
func (c *OrbitCamera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Target, c.Up)
}

func closestPerpUnitToY(position, target mgl32.Vec3) mgl32.Vec3 {
	y := mgl32.Vec3{0, 1, 0}
	dir, ok := normalizeOrZero(target.Sub(position))
	if !ok {
		return y
	}
	perp := y.Sub(dir.Mul(dir.Dot(y)))
	if l := perp.Len(); l > cameraEpsilon {
		return perp.Mul(1 / l)
	}
	v := mgl32.Vec3{1, 0, 0}.Cross(dir)
	if lenSqr(v) < cameraEpsilon {
		v = mgl32.Vec3{0, 0, 1}.Cross(dir)
	}
	return v.Normalize()
}

func normalizeOrZero(v mgl32.Vec3) (mgl32.Vec3, bool) {
	l := v.Len()
	if l == 0 || math32.IsInf(l, 0) || math32.IsNaN(l) {
		return mgl32.Vec3{}, false
	}
	return v.Mul(1 / l), true
}

func lenSqr(v mgl32.Vec3) float32 { return v.Dot(v) }
