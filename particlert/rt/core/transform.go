package core

import "github.com/go-gl/mathgl/mgl32"

// AxesVertexStage transforms an object-space vertex to clip space and
// forwards its color. SizeScale is not used here.
func AxesVertexStage(v AxesVertex, pc *PushConstants) VertexOutput {
	pos := mgl32.Vec4{v.Position[0], v.Position[1], v.Position[2], 1}
	return VertexOutput{
		Clip:  pc.ViewProj.Mul4x1(pos),
		Color: mgl32.Vec4(v.Color),
	}
}

// ParticleVertexStage is the point-list counterpart of AxesVertexStage. It is
// where SizeScale is consumed: the sprite is SizeScale/w pixels wide, so
// particles shrink with distance.
func ParticleVertexStage(v ParticleVertex, pc *PushConstants) PointOutput {
	out := PointOutput{
		VertexOutput: AxesVertexStage(AxesVertex(v), pc),
	}
	w := out.Clip.W()
	if w <= 0 {
		out.Culled = true
		return out
	}
	out.PointSize = pc.SizeScale / w
	return out
}
