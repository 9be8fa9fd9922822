package core

import (
	"errors"
	"fmt"
	"strings"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Sprite-space radii, measured from the sprite center in point-coordinate units.
const (
	SoftDotRadius     float32 = 0.5
	SoftDotInnerEdge  float32 = 0.4
	EnergyGlowRadius  float32 = 0.9
	glowCoreDecay     float32 = 8
	glowCoreWeight    float32 = 0.5
	glowEnvelopeDecay float32 = 4
)

var ErrUnknownShadingMode = errors.New("unknown shading mode")

// ShadingMode selects the particle fragment stage.
type ShadingMode int

const (
	ModeSoftDot ShadingMode = iota
	ModeEnergyGlow
)

func (m ShadingMode) String() string {
	switch m {
	case ModeSoftDot:
		return "soft-dot"
	case ModeEnergyGlow:
		return "energy-glow"
	default:
		return fmt.Sprintf("ShadingMode(%d)", int(m))
	}
}

// ParseShadingMode accepts the names used in config files and flags.
func ParseShadingMode(name string) (ShadingMode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "dot", "soft-dot", "softdot":
		return ModeSoftDot, nil
	case "glow", "energy-glow", "energyglow":
		return ModeEnergyGlow, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownShadingMode, name)
}

// ParticleShader is a point-sprite fragment stage. pointCoord is the
// rasterizer's coordinate inside the sprite square, in [0,1]x[0,1].
type ParticleShader interface {
	Mode() ShadingMode
	Shade(pointCoord mgl32.Vec2, color mgl32.Vec4) Fragment
}

// ShaderFor returns the fragment stage for mode. Unknown modes fall back to
// the soft dot.
func ShaderFor(mode ShadingMode) ParticleShader {
	if mode == ModeEnergyGlow {
		return EnergyGlow{}
	}
	return SoftDot{}
}

// Smoothstep follows GLSL: t = clamp((x-e0)/(e1-e0), 0, 1), result t*t*(3-2t).
// Passing e0 > e1 inverts the ramp.
func Smoothstep(e0, e1, x float32) float32 {
	t := mgl32.Clamp((x-e0)/(e1-e0), 0, 1)
	return t * t * (3 - 2*t)
}

// Recenter moves a point coordinate from [0,1]^2 to [-0.5,0.5]^2.
func Recenter(pointCoord mgl32.Vec2) mgl32.Vec2 {
	return pointCoord.Sub(mgl32.Vec2{0.5, 0.5})
}

func spriteDist(pointCoord mgl32.Vec2) float32 {
	c := Recenter(pointCoord)
	return math32.Sqrt(c[0]*c[0] + c[1]*c[1])
}

// SoftDot draws a circular dot with a 0.1-wide antialiased rim.
// Only alpha is shaped; RGB passes through.
type SoftDot struct{}

func (SoftDot) Mode() ShadingMode { return ModeSoftDot }

func (SoftDot) Shade(pointCoord mgl32.Vec2, color mgl32.Vec4) Fragment {
	dist := spriteDist(pointCoord)
	if dist > SoftDotRadius {
		return Discard()
	}
	alphaFactor := Smoothstep(SoftDotRadius, SoftDotInnerEdge, dist)
	return Shaded(color.Vec3(), color.W()*alphaFactor)
}

// EnergyGlow draws a hot core inside a wider exponential halo.
//
// intensity is a quadratic falloff plus a sharp exponential core; it goes
// negative past dist ~0.5 and is left unclamped, as is the resulting color.
// energyFalloff is a separate, gentler envelope applied to both color and alpha.
type EnergyGlow struct{}

func (EnergyGlow) Mode() ShadingMode { return ModeEnergyGlow }

func (EnergyGlow) Shade(pointCoord mgl32.Vec2, color mgl32.Vec4) Fragment {
	dist := spriteDist(pointCoord)
	if dist > EnergyGlowRadius {
		return Discard()
	}
	r := 2 * dist
	intensity := 1 - r*r
	hotCore := math32.Exp(-glowCoreDecay * dist)
	intensity += glowCoreWeight * hotCore

	energyFalloff := math32.Exp(-glowEnvelopeDecay * dist)
	rgb := color.Vec3().Mul(intensity * energyFalloff)
	return Shaded(rgb, energyFalloff*color.W())
}
