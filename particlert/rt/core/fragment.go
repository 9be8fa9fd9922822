package core

import "github.com/go-gl/mathgl/mgl32"

// Fragment is the outcome of a fragment stage: either discarded, or shaded
// with a color and alpha. The zero value is a discarded fragment.
type Fragment struct {
	shaded bool
	Color  mgl32.Vec3
	Alpha  float32
}

// Discard returns a fragment that contributes nothing to the target.
func Discard() Fragment { return Fragment{} }

// Shaded returns a fragment that writes (rgb, alpha).
func Shaded(rgb mgl32.Vec3, alpha float32) Fragment {
	return Fragment{shaded: true, Color: rgb, Alpha: alpha}
}

func (f Fragment) IsDiscarded() bool { return !f.shaded }

// RGBA returns the output color, or zero for a discarded fragment.
func (f Fragment) RGBA() mgl32.Vec4 {
	if !f.shaded {
		return mgl32.Vec4{}
	}
	return f.Color.Vec4(f.Alpha)
}
