package gpu

import (
	"github.com/cogentcore/webgpu/wgpu"
)

// frameBinding is the group 0 uniform every pass reads its FrameUniforms from.
type frameBinding struct {
	Layout    *wgpu.BindGroupLayout
	Buffer    *wgpu.Buffer
	BindGroup *wgpu.BindGroup
}

func newFrameBinding(device *wgpu.Device, label string) (*frameBinding, error) {
	layout, err := device.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
		Label: label + "FrameBGL",
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: wgpu.ShaderStageVertex,
				Buffer: wgpu.BufferBindingLayout{
					Type:           wgpu.BufferBindingTypeUniform,
					MinBindingSize: FrameUniformsSize,
				},
			},
		},
	})
	if err != nil {
		return nil, err
	}

	buffer, err := device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: label + "FrameUniforms",
		Size:  FrameUniformsSize,
		Usage: wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		layout.Release()
		return nil, err
	}

	bindGroup, err := device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  label + "FrameBG",
		Layout: layout,
		Entries: []wgpu.BindGroupEntry{
			{
				Binding: 0,
				Buffer:  buffer,
				Size:    FrameUniformsSize,
			},
		},
	})
	if err != nil {
		buffer.Release()
		layout.Release()
		return nil, err
	}

	return &frameBinding{Layout: layout, Buffer: buffer, BindGroup: bindGroup}, nil
}

func (b *frameBinding) write(queue *wgpu.Queue, u FrameUniforms) error {
	return queue.WriteBuffer(b.Buffer, 0, u.Bytes())
}

func (b *frameBinding) release() {
	b.BindGroup.Release()
	b.Buffer.Release()
	b.Layout.Release()
}

func createPipeline(device *wgpu.Device, label, code string, frame *frameBinding, format wgpu.TextureFormat,
	buffers []wgpu.VertexBufferLayout, topology wgpu.PrimitiveTopology, blend *wgpu.BlendState) (*wgpu.RenderPipeline, error) {
	shader, err := device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:          label + "Shader",
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{Code: code},
	})
	if err != nil {
		return nil, err
	}
	defer shader.Release()

	pipelineLayout, err := device.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label:            label + "Layout",
		BindGroupLayouts: []*wgpu.BindGroupLayout{frame.Layout},
	})
	if err != nil {
		return nil, err
	}
	defer pipelineLayout.Release()

	return device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label:  label + "Pipeline",
		Layout: pipelineLayout,
		Vertex: wgpu.VertexState{
			Module:     shader,
			EntryPoint: "vs_main",
			Buffers:    buffers,
		},
		Fragment: &wgpu.FragmentState{
			Module:     shader,
			EntryPoint: "fs_main",
			Targets: []wgpu.ColorTargetState{
				{
					Format:    format,
					Blend:     blend,
					WriteMask: wgpu.ColorWriteMaskAll,
				},
			},
		},
		Primitive: wgpu.PrimitiveState{
			Topology:  topology,
			FrontFace: wgpu.FrontFaceCCW,
			CullMode:  wgpu.CullModeNone,
		},
		DepthStencil: nil,
		Multisample: wgpu.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
	})
}
