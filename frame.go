package particleviz

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/gekko3d/particleviz/particlert/rt/core"
	"github.com/gekko3d/particleviz/particlert/rt/raster"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
)

type BatchKind int

const (
	BatchAxes BatchKind = iota
	BatchParticles
)

func (k BatchKind) String() string {
	switch k {
	case BatchAxes:
		return "axes"
	case BatchParticles:
		return "particles"
	default:
		return fmt.Sprintf("BatchKind(%d)", int(k))
	}
}

// DrawBatch is one recorded draw: a vertex list plus the push constant block
// its pipeline consumes. Axes batches use only the view-projection.
type DrawBatch struct {
	ID            uuid.UUID
	Kind          BatchKind
	Axes          []core.AxesVertex
	Particles     []core.ParticleVertex
	Shading       core.ShadingMode
	PushConstants core.PushConstants
}

// PushConstantBytes returns the block as the pipeline sees it: 64 bytes for
// axes, 68 for particles.
func (b *DrawBatch) PushConstantBytes() []byte {
	if b.Kind == BatchAxes {
		axes := core.AxesPushConstants{ViewProj: b.PushConstants.ViewProj}
		return axes.Bytes()
	}
	return b.PushConstants.Bytes()
}

// VertexCount is the number of vertices (axes) or points (particles).
func (b *DrawBatch) VertexCount() int {
	if b.Kind == BatchAxes {
		return len(b.Axes)
	}
	return len(b.Particles)
}

// Frame is everything needed to draw one image, in submission order.
type Frame struct {
	Index      uint64
	Width      int
	Height     int
	Background mgl32.Vec4
	Batches    []DrawBatch
}

// FrameRecorder owns the scene and camera and turns them into Frames.
type FrameRecorder struct {
	Camera      *core.OrbitCamera
	Axes        []core.AxesVertex
	Particles   []core.ParticleVertex
	Shading     core.ShadingMode
	ScaleFactor float32
	OrbitSpeed  float32
	Background  mgl32.Vec4

	logger Logger
	frames uint64
}

// NewFrameRecorder validates cfg and builds the scene it describes.
func NewFrameRecorder(cfg *Config, logger Logger) (*FrameRecorder, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger = orNop(logger)

	particles := core.RandomParticles(rand.New(rand.NewSource(cfg.Scene.Seed)), cfg.Scene.ParticleCount)
	if cfg.Scene.Palette {
		for i := range particles {
			particles[i].Color = core.PaletteColor(i)
		}
	}

	r := &FrameRecorder{
		Camera:      core.NewOrbitCamera(cfg.Camera.Position, cfg.Camera.Target),
		Axes:        core.AxesGrid(),
		Particles:   particles,
		Shading:     cfg.ShadingMode(),
		ScaleFactor: core.ScaleFactor(cfg.Scene.Gauge),
		OrbitSpeed:  cfg.Camera.OrbitSpeed,
		Background:  cfg.Render.Background,
		logger:      logger,
	}
	logger.Infof("scene: %d particles, %d axis vertices, shading %s, scale factor %.3f",
		len(r.Particles), len(r.Axes), r.Shading, r.ScaleFactor)
	return r, nil
}

// Advance revolves the camera around its target by OrbitSpeed*dt radians.
func (r *FrameRecorder) Advance(dt float32) {
	if r.OrbitSpeed == 0 || dt <= 0 {
		return
	}
	r.Camera.Revolve(r.OrbitSpeed*dt, 0)
}

// Record builds the axes batch followed by the particle batch for a
// width x height target.
func (r *FrameRecorder) Record(width, height int) Frame {
	aspect := float32(1)
	if width > 0 && height > 0 {
		aspect = float32(width) / float32(height)
	}

	axes := DrawBatch{
		ID:   uuid.New(),
		Kind: BatchAxes,
		Axes: r.Axes,
		PushConstants: core.PushConstants{
			ViewProj: core.AxesViewProj(r.Camera, aspect),
		},
	}
	particles := DrawBatch{
		ID:        uuid.New(),
		Kind:      BatchParticles,
		Particles: r.Particles,
		Shading:   r.Shading,
		PushConstants: core.PushConstants{
			ViewProj:  core.ParticleViewProj(r.Camera, aspect, r.ScaleFactor),
			SizeScale: core.SizeScale(height, r.ScaleFactor),
		},
	}

	f := Frame{
		Index:      r.frames,
		Width:      width,
		Height:     height,
		Background: r.Background,
		Batches:    []DrawBatch{axes, particles},
	}
	r.frames++
	if r.logger.DebugEnabled() {
		r.logger.Debugf("frame %d %dx%d size_scale=%.2f", f.Index, width, height, particles.PushConstants.SizeScale)
	}
	return f
}

// RenderSoftware draws frame into target with the software rasterizer.
// The target must match the frame size, since size_scale is in pixels.
func RenderSoftware(ctx context.Context, frame Frame, target *raster.Target) (raster.Stats, error) {
	var total raster.Stats
	if target.Width != frame.Width || target.Height != frame.Height {
		return total, fmt.Errorf("target %dx%d does not match frame %dx%d",
			target.Width, target.Height, frame.Width, frame.Height)
	}

	target.Clear(frame.Background)
	for i := range frame.Batches {
		b := &frame.Batches[i]
		var (
			stats raster.Stats
			err   error
		)
		switch b.Kind {
		case BatchAxes:
			stats, err = raster.DrawLines(ctx, target, b.Axes, &core.AxesPushConstants{ViewProj: b.PushConstants.ViewProj})
		case BatchParticles:
			stats, err = raster.DrawPoints(ctx, target, b.Particles, &b.PushConstants, core.ShaderFor(b.Shading))
		default:
			err = fmt.Errorf("unknown batch kind %s", b.Kind)
		}
		if err != nil {
			return total, fmt.Errorf("batch %s (%s): %w", b.ID, b.Kind, err)
		}
		total.Add(stats)
	}
	return total, nil
}
