package gpu

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/gekko3d/particleviz/particlert/rt/core"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVertexBufferLayout(t *testing.T) {
	tests := []struct {
		name   string
		vertex any
		step   wgpu.VertexStepMode
	}{
		{"axes", core.AxesVertex{}, wgpu.VertexStepModeVertex},
		{"particles", core.ParticleVertex{}, wgpu.VertexStepModeInstance},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			layout := VertexBufferLayout(tc.vertex, tc.step)
			assert.Equal(t, uint64(28), layout.ArrayStride)
			assert.Equal(t, tc.step, layout.StepMode)
			assert.Equal(t, []wgpu.VertexAttribute{
				{ShaderLocation: 0, Offset: 0, Format: wgpu.VertexFormatFloat32x3},
				{ShaderLocation: 1, Offset: 12, Format: wgpu.VertexFormatFloat32x4},
			}, layout.Attributes)
		})
	}
}

func TestVertexBufferLayout_UntaggedFieldsAdvanceOffset(t *testing.T) {
	type vertex struct {
		Skip  float32
		Color [2]float32 `gekko:"layout" location:"3" format:"float2"`
	}
	layout := VertexBufferLayout(vertex{}, wgpu.VertexStepModeVertex)
	require.Len(t, layout.Attributes, 1)
	assert.Equal(t, uint64(4), layout.Attributes[0].Offset)
	assert.Equal(t, uint32(3), layout.Attributes[0].ShaderLocation)
	assert.Equal(t, uint64(12), layout.ArrayStride)
}

func TestVertexBufferLayout_Panics(t *testing.T) {
	assert.Panics(t, func() { VertexBufferLayout(42, wgpu.VertexStepModeVertex) })
	assert.Panics(t, func() {
		VertexBufferLayout(struct {
			P [3]float32 `gekko:"layout" location:"x" format:"float3"`
		}{}, wgpu.VertexStepModeVertex)
	})
	assert.Panics(t, func() {
		VertexBufferLayout(struct {
			P [3]float64 `gekko:"layout" location:"0" format:"double3"`
		}{}, wgpu.VertexStepModeVertex)
	})
}

func TestFrameUniformsBytes(t *testing.T) {
	pc := &core.PushConstants{ViewProj: mgl32.Translate3D(1, 2, 3), SizeScale: 43.2}
	u := NewFrameUniforms(pc, 1280, 720)

	b := u.Bytes()
	require.Len(t, b, FrameUniformsSize)
	assert.Equal(t, pc.Bytes(), b[:core.PushConstantsSize], "push constant prefix")
	assert.Equal(t, []byte{0, 0, 0, 0}, b[68:72], "padding")
	assert.Equal(t, float32(1280), math.Float32frombits(binary.LittleEndian.Uint32(b[72:])))
	assert.Equal(t, float32(720), math.Float32frombits(binary.LittleEndian.Uint32(b[76:])))
}

func TestAdditiveBlend(t *testing.T) {
	for _, c := range []wgpu.BlendComponent{AdditiveBlend.Color, AdditiveBlend.Alpha} {
		assert.Equal(t, wgpu.BlendOperationAdd, c.Operation)
		assert.Equal(t, wgpu.BlendFactorOne, c.SrcFactor)
		assert.Equal(t, wgpu.BlendFactorOne, c.DstFactor)
	}
}
