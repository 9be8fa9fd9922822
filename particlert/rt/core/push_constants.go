package core

import (
	"encoding/binary"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	// PushConstantsSize is the packed size of PushConstants: 16 floats of
	// view_proj followed by size_scale.
	PushConstantsSize = 68
	// AxesPushConstantsSize is the packed size of AxesPushConstants.
	AxesPushConstantsSize = 64
)

// PushConstants is the per-draw block bound by the particle pipeline.
// Field order is part of the binding contract: view_proj then size_scale.
type PushConstants struct {
	ViewProj  mgl32.Mat4
	SizeScale float32
}

// AxesPushConstants is the smaller block used by the axes pipeline.
type AxesPushConstants struct {
	ViewProj mgl32.Mat4
}

// Bytes packs the block little-endian, column-major, without padding.
func (pc *PushConstants) Bytes() []byte {
	buf := make([]byte, PushConstantsSize)
	putMat4(buf, pc.ViewProj)
	binary.LittleEndian.PutUint32(buf[64:], math.Float32bits(pc.SizeScale))
	return buf
}

func (pc *AxesPushConstants) Bytes() []byte {
	buf := make([]byte, AxesPushConstantsSize)
	putMat4(buf, pc.ViewProj)
	return buf
}

// Full widens the axes block to the particle layout with a zero size scale,
// so both stages can share one vertex-stage signature.
func (pc *AxesPushConstants) Full() *PushConstants {
	return &PushConstants{ViewProj: pc.ViewProj}
}

func putMat4(buf []byte, m mgl32.Mat4) {
	for i, v := range m {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(v))
	}
}
