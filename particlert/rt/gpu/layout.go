package gpu

import (
	"reflect"
	"strconv"

	"github.com/cogentcore/webgpu/wgpu"
)

func parseFormat(name string) wgpu.VertexFormat {
	switch name {
	case "float2":
		return wgpu.VertexFormatFloat32x2
	case "float3":
		return wgpu.VertexFormatFloat32x3
	case "float4":
		return wgpu.VertexFormatFloat32x4
	default:
		panic("unsupported vertex layout format: " + name)
	}
}

// VertexBufferLayout builds the buffer layout of a vertex struct from its
// field tags:
//
//	Position [3]float32 `gekko:"layout" location:"0" format:"float3"`
//
// Untagged fields still advance the offset. Panics if vertexType is not a
// struct or a tag is malformed.
func VertexBufferLayout(vertexType any, stepMode wgpu.VertexStepMode) wgpu.VertexBufferLayout {
	t := reflect.TypeOf(vertexType)
	if t.Kind() != reflect.Struct {
		panic("vertex must be a struct, got " + t.String())
	}

	var attributes []wgpu.VertexAttribute
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if field.Tag.Get("gekko") != "layout" {
			continue
		}
		location, err := strconv.Atoi(field.Tag.Get("location"))
		if err != nil {
			panic(err)
		}
		attributes = append(attributes, wgpu.VertexAttribute{
			ShaderLocation: uint32(location),
			Offset:         uint64(field.Offset),
			Format:         parseFormat(field.Tag.Get("format")),
		})
	}

	return wgpu.VertexBufferLayout{
		ArrayStride: uint64(t.Size()),
		StepMode:    stepMode,
		Attributes:  attributes,
	}
}
