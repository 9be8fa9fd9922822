package shaders

import (
	_ "embed"

	"github.com/gekko3d/particleviz/particlert/rt/core"
)

//go:embed axes.wgsl
var AxesWGSL string

// ParticleSpriteWGSL holds the uniform block, the billboard vertex stage and
// helpers shared by both particle fragment stages.
//
//go:embed particle_sprite.wgsl
var ParticleSpriteWGSL string

//go:embed particles_dot.wgsl
var SoftDotWGSL string

//go:embed particles_glow.wgsl
var EnergyGlowWGSL string

// ParticleWGSL returns the full particle module for mode. Unknown modes get
// the soft dot, like core.ShaderFor.
func ParticleWGSL(mode core.ShadingMode) string {
	frag := SoftDotWGSL
	if mode == core.ModeEnergyGlow {
		frag = EnergyGlowWGSL
	}
	return ParticleSpriteWGSL + "\n" + frag
}
