package gpu

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"reflect"

	"github.com/gekko3d/particleviz/particlert/rt/core"
	"github.com/go-gl/mathgl/mgl32"
)

// FrameUniformsSize is the WGSL size of the Frame struct: the 68-byte push
// constant block, 4 bytes of alignment padding, and the viewport vec2.
const FrameUniformsSize = 80

// FrameUniforms carries the push constant block to the GPU as a uniform
// buffer, plus the viewport the billboard stage needs to size sprites in pixels.
type FrameUniforms struct {
	ViewProj  mgl32.Mat4
	SizeScale float32
	_         float32
	Viewport  [2]float32
}

func NewFrameUniforms(pc *core.PushConstants, width, height uint32) FrameUniforms {
	return FrameUniforms{
		ViewProj:  pc.ViewProj,
		SizeScale: pc.SizeScale,
		Viewport:  [2]float32{float32(width), float32(height)},
	}
}

func (u FrameUniforms) Bytes() []byte {
	buf := bytes.NewBuffer(make([]byte, 0, FrameUniformsSize))
	writeUniform(reflect.ValueOf(u), buf)
	return buf.Bytes()
}

// writeUniform serializes v field by field in little endian. Padding fields
// are written as zeros.
func writeUniform(v reflect.Value, buf *bytes.Buffer) {
	var err error
	switch v.Kind() {
	case reflect.Array, reflect.Slice:
		for i := 0; i < v.Len(); i++ {
			writeUniform(v.Index(i), buf)
		}
	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			writeUniform(v.Field(i), buf)
		}
	case reflect.Float32:
		err = binary.Write(buf, binary.LittleEndian, float32(v.Float()))
	case reflect.Uint32:
		err = binary.Write(buf, binary.LittleEndian, uint32(v.Uint()))
	case reflect.Int32:
		err = binary.Write(buf, binary.LittleEndian, int32(v.Int()))
	default:
		panic(fmt.Errorf("unsupported uniform type: %v", v.Type()))
	}
	if err != nil {
		panic(fmt.Errorf("failed to write uniform field: %w", err))
	}
}
