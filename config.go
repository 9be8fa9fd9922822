package particleviz

import (
	"errors"
	"fmt"

	"github.com/gekko3d/particleviz/particlert/rt/core"
	"github.com/go-gl/mathgl/mgl32"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config holds all viewer and renderer settings.
type Config struct {
	Render  RenderConfig  `yaml:"render"`
	Scene   SceneConfig   `yaml:"scene"`
	Camera  CameraConfig  `yaml:"camera"`
	Logging LoggingConfig `yaml:"logging"`
}

// RenderConfig holds output and shading settings.
type RenderConfig struct {
	Width       int        `yaml:"width"`
	Height      int        `yaml:"height"`
	Supersample int        `yaml:"supersample"` // headless only
	Shading     string     `yaml:"shading"`     // "soft-dot" or "energy-glow"
	Background  [4]float32 `yaml:"background"`
	Output      string     `yaml:"output"`
}

// SceneConfig describes the particle set.
type SceneConfig struct {
	ParticleCount int     `yaml:"particle_count"`
	Seed          int64   `yaml:"seed"`
	Gauge         float64 `yaml:"gauge"`
	Palette       bool    `yaml:"palette"` // color particles by index instead of white
}

type CameraConfig struct {
	Position   [3]float32 `yaml:"position"`
	Target     [3]float32 `yaml:"target"`
	OrbitSpeed float32    `yaml:"orbit_speed"` // radians per second, viewer only
}

// LoggingConfig holds logging settings. File enables a rotated log file.
type LoggingConfig struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
	Compress   bool   `yaml:"compress"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Render: RenderConfig{
			Width:       1280,
			Height:      720,
			Supersample: 1,
			Shading:     core.ModeSoftDot.String(),
			Background:  [4]float32{0, 0, 0, 1},
			Output:      "particles.png",
		},
		Scene: SceneConfig{
			ParticleCount: 2000,
			Seed:          1,
			Gauge:         core.DefaultScaleGauge,
		},
		Camera: CameraConfig{
			Position:   core.DefaultCameraPosition,
			Target:     core.DefaultCameraTarget,
			OrbitSpeed: 0.2,
		},
		Logging: LoggingConfig{
			Level:      "info",
			MaxSizeMB:  50,
			MaxBackups: 3,
			MaxAgeDays: 7,
			Compress:   true,
		},
	}
}

// Validate reports the first invalid setting, wrapped in ErrInvalidConfig.
func (c *Config) Validate() error {
	r := c.Render
	if r.Width <= 0 || r.Height <= 0 {
		return fmt.Errorf("%w: render size %dx%d", ErrInvalidConfig, r.Width, r.Height)
	}
	if r.Supersample < 1 {
		return fmt.Errorf("%w: supersample %d < 1", ErrInvalidConfig, r.Supersample)
	}
	if _, err := core.ParseShadingMode(r.Shading); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.Scene.ParticleCount < 0 {
		return fmt.Errorf("%w: particle_count %d", ErrInvalidConfig, c.Scene.ParticleCount)
	}
	if c.Scene.Gauge <= 0 {
		return fmt.Errorf("%w: gauge %v must be positive", ErrInvalidConfig, c.Scene.Gauge)
	}
	if mgl32.Vec3(c.Camera.Position) == mgl32.Vec3(c.Camera.Target) {
		return fmt.Errorf("%w: camera position equals target", ErrInvalidConfig)
	}
	return nil
}

// ShadingMode returns the parsed shading mode, falling back to the soft dot.
func (c *Config) ShadingMode() core.ShadingMode {
	mode, err := core.ParseShadingMode(c.Render.Shading)
	if err != nil {
		return core.ModeSoftDot
	}
	return mode
}
