package main

import (
	"context"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/gekko3d/particleviz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	cfg := particleviz.Default()
	cfg.Render.Width = 40
	cfg.Render.Height = 30
	cfg.Render.Supersample = 2
	cfg.Render.Shading = "glow"
	cfg.Scene.ParticleCount = 100
	cfg.Render.Output = filepath.Join(t.TempDir(), "out.png")

	require.NoError(t, run(context.Background(), cfg, particleviz.NewNopLogger()))

	f, err := os.Open(cfg.Render.Output)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 40, img.Bounds().Dx())
	assert.Equal(t, 30, img.Bounds().Dy())
}

func TestRun_Errors(t *testing.T) {
	cfg := particleviz.Default()
	cfg.Render.Width = 0
	assert.ErrorIs(t, run(context.Background(), cfg, particleviz.NewNopLogger()), particleviz.ErrInvalidConfig)

	cfg = particleviz.Default()
	cfg.Render.Width, cfg.Render.Height = 8, 8
	cfg.Render.Output = filepath.Join(t.TempDir(), "missing-dir", "out.png")
	assert.Error(t, run(context.Background(), cfg, particleviz.NewNopLogger()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	cfg.Render.Output = filepath.Join(t.TempDir(), "out.png")
	assert.ErrorIs(t, run(ctx, cfg, particleviz.NewNopLogger()), context.Canceled)
}
