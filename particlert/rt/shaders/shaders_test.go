package shaders

import (
	"fmt"
	"strings"
	"testing"

	"github.com/gekko3d/particleviz/particlert/rt/core"
	"github.com/stretchr/testify/assert"
)

func TestEmbeddedSources(t *testing.T) {
	for name, src := range map[string]string{
		"axes":   AxesWGSL,
		"sprite": ParticleSpriteWGSL,
		"dot":    SoftDotWGSL,
		"glow":   EnergyGlowWGSL,
	} {
		assert.NotEmpty(t, strings.TrimSpace(src), name)
	}
	assert.Contains(t, AxesWGSL, "fn vs_main")
	assert.Contains(t, AxesWGSL, "fn fs_main")
	assert.Contains(t, ParticleSpriteWGSL, "fn vs_main")
	assert.NotContains(t, ParticleSpriteWGSL, "fn fs_main")
}

func TestParticleWGSL(t *testing.T) {
	dot := ParticleWGSL(core.ModeSoftDot)
	glow := ParticleWGSL(core.ModeEnergyGlow)

	assert.True(t, strings.HasPrefix(dot, ParticleSpriteWGSL))
	assert.True(t, strings.HasSuffix(glow, EnergyGlowWGSL))
	assert.Equal(t, dot, ParticleWGSL(core.ShadingMode(42)))
	assert.Equal(t, 1, strings.Count(glow, "fn fs_main"))
}

func TestFragmentConstantsMatchCore(t *testing.T) {
	f := func(v float32) string { return fmt.Sprintf("%.1f", v) }

	assert.Contains(t, SoftDotWGSL, "dist > "+f(core.SoftDotRadius))
	assert.Contains(t, SoftDotWGSL, "ramp("+f(core.SoftDotRadius)+", "+f(core.SoftDotInnerEdge)+", dist)")
	assert.Contains(t, EnergyGlowWGSL, "dist > "+f(core.EnergyGlowRadius))
	assert.Contains(t, EnergyGlowWGSL, "exp(-8.0 * dist)")
	assert.Contains(t, EnergyGlowWGSL, "exp(-4.0 * dist)")
}
