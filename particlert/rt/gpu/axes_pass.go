package gpu

import (
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/gekko3d/particleviz/particlert/rt/core"
	"github.com/gekko3d/particleviz/particlert/rt/shaders"
)

// AxesPass draws the static reference grid as a line list. Blending is off,
// so lines replace whatever is underneath.
type AxesPass struct {
	Pipeline     *wgpu.RenderPipeline
	VertexBuffer *wgpu.Buffer
	VertexCount  uint32

	frame *frameBinding
}

func NewAxesPass(device *wgpu.Device, format wgpu.TextureFormat, verts []core.AxesVertex) (*AxesPass, error) {
	frame, err := newFrameBinding(device, "Axes")
	if err != nil {
		return nil, err
	}

	layout := VertexBufferLayout(core.AxesVertex{}, wgpu.VertexStepModeVertex)
	pipeline, err := createPipeline(device, "Axes", shaders.AxesWGSL, frame, format,
		[]wgpu.VertexBufferLayout{layout}, wgpu.PrimitiveTopologyLineList, nil)
	if err != nil {
		frame.release()
		return nil, err
	}

	p := &AxesPass{Pipeline: pipeline, frame: frame}
	if len(verts) == 0 {
		return p, nil
	}

	p.VertexBuffer, err = device.CreateBufferInit(&wgpu.BufferInitDescriptor{
		Label:    "AxesVertexBuffer",
		Contents: wgpu.ToBytes(verts),
		Usage:    wgpu.BufferUsageVertex,
	})
	if err != nil {
		p.Release()
		return nil, err
	}
	p.VertexCount = uint32(len(verts))
	return p, nil
}

func (p *AxesPass) Update(queue *wgpu.Queue, u FrameUniforms) error {
	return p.frame.write(queue, u)
}

func (p *AxesPass) Draw(pass *wgpu.RenderPassEncoder) {
	if p.VertexBuffer == nil {
		return
	}
	pass.SetPipeline(p.Pipeline)
	pass.SetBindGroup(0, p.frame.BindGroup, nil)
	pass.SetVertexBuffer(0, p.VertexBuffer, 0, p.VertexBuffer.GetSize())
	pass.Draw(p.VertexCount, 1, 0, 0)
}

func (p *AxesPass) Release() {
	if p.VertexBuffer != nil {
		p.VertexBuffer.Release()
	}
	p.Pipeline.Release()
	p.frame.release()
}
