package core

import "github.com/go-gl/mathgl/mgl32"

// AxesVertex matches the WGSL VertexInput of axes.wgsl
// struct AxesVertex { @location(0) position: vec3<f32>, @location(1) color: vec4<f32> }
type AxesVertex struct {
	Position [3]float32 `gekko:"layout" location:"0" format:"float3"`
	Color    [4]float32 `gekko:"layout" location:"1" format:"float4"`
}

// ParticleVertex is laid out like AxesVertex but is stepped per instance on the GPU.
type ParticleVertex struct {
	Position [3]float32 `gekko:"layout" location:"0" format:"float3"`
	Color    [4]float32 `gekko:"layout" location:"1" format:"float4"`
}

// VertexOutput is what a vertex stage hands to the rasterizer: a clip-space
// position plus the color varying (location 0).
type VertexOutput struct {
	Clip  mgl32.Vec4
	Color mgl32.Vec4
}

// PointOutput extends VertexOutput with the sprite size in pixels.
// Culled is set when the point sits on or behind the eye plane.
type PointOutput struct {
	VertexOutput
	PointSize float32
	Culled    bool
}
