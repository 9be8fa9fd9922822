package gpu

import (
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/gekko3d/particleviz/particlert/rt/core"
	"github.com/gekko3d/particleviz/particlert/rt/shaders"
)

// spriteVertices is the number of vertices of one billboard quad.
const spriteVertices = 6

// instanceMargin is extra capacity added whenever the instance buffer grows.
const instanceMargin = 128

// AdditiveBlend sums source and destination for both color and alpha.
var AdditiveBlend = wgpu.BlendState{
	Color: wgpu.BlendComponent{
		Operation: wgpu.BlendOperationAdd,
		SrcFactor: wgpu.BlendFactorOne,
		DstFactor: wgpu.BlendFactorOne,
	},
	Alpha: wgpu.BlendComponent{
		Operation: wgpu.BlendOperationAdd,
		SrcFactor: wgpu.BlendFactorOne,
		DstFactor: wgpu.BlendFactorOne,
	},
}

// ParticlePass draws each particle as an instanced quad running one of the
// point-sprite fragment stages.
type ParticlePass struct {
	Pipeline       *wgpu.RenderPipeline
	Mode           core.ShadingMode
	InstanceBuffer *wgpu.Buffer
	InstanceCap    uint32
	InstanceCount  uint32

	device *wgpu.Device
	frame  *frameBinding
}

func NewParticlePass(device *wgpu.Device, format wgpu.TextureFormat, mode core.ShadingMode) (*ParticlePass, error) {
	frame, err := newFrameBinding(device, "Particles")
	if err != nil {
		return nil, err
	}

	blend := AdditiveBlend
	layout := VertexBufferLayout(core.ParticleVertex{}, wgpu.VertexStepModeInstance)
	pipeline, err := createPipeline(device, "Particles", shaders.ParticleWGSL(mode), frame, format,
		[]wgpu.VertexBufferLayout{layout}, wgpu.PrimitiveTopologyTriangleList, &blend)
	if err != nil {
		frame.release()
		return nil, err
	}

	return &ParticlePass{
		Pipeline: pipeline,
		Mode:     mode,
		device:   device,
		frame:    frame,
	}, nil
}

// Update uploads the frame uniforms and the particle instances, growing the
// instance buffer when needed.
func (p *ParticlePass) Update(queue *wgpu.Queue, u FrameUniforms, particles []core.ParticleVertex) error {
	if err := p.frame.write(queue, u); err != nil {
		return err
	}

	p.InstanceCount = uint32(len(particles))
	if len(particles) == 0 {
		return nil
	}

	if p.InstanceBuffer == nil || p.InstanceCap < p.InstanceCount {
		if p.InstanceBuffer != nil {
			p.InstanceBuffer.Release()
			p.InstanceBuffer = nil
		}
		p.InstanceCap = p.InstanceCount + instanceMargin
		stride := VertexBufferLayout(core.ParticleVertex{}, wgpu.VertexStepModeInstance).ArrayStride
		buf, err := p.device.CreateBuffer(&wgpu.BufferDescriptor{
			Label: "ParticleInstanceBuffer",
			Size:  uint64(p.InstanceCap) * stride,
			Usage: wgpu.BufferUsageVertex | wgpu.BufferUsageCopyDst,
		})
		if err != nil {
			p.InstanceCap = 0
			return err
		}
		p.InstanceBuffer = buf
	}

	return queue.WriteBuffer(p.InstanceBuffer, 0, wgpu.ToBytes(particles))
}

func (p *ParticlePass) Draw(pass *wgpu.RenderPassEncoder) {
	if p.InstanceBuffer == nil || p.InstanceCount == 0 {
		return
	}
	pass.SetPipeline(p.Pipeline)
	pass.SetBindGroup(0, p.frame.BindGroup, nil)
	pass.SetVertexBuffer(0, p.InstanceBuffer, 0, p.InstanceBuffer.GetSize())
	pass.Draw(spriteVertices, p.InstanceCount, 0, 0)
}

func (p *ParticlePass) Release() {
	if p.InstanceBuffer != nil {
		p.InstanceBuffer.Release()
	}
	p.Pipeline.Release()
	p.frame.release()
}
