// Command render draws one frame of the particle scene with the software
// rasterizer and writes it as a PNG.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/gekko3d/particleviz"
	"github.com/gekko3d/particleviz/particlert/rt/raster"
)

func main() {
	particleviz.ParseFlags()
	cfg, err := particleviz.Load()
	if err != nil {
		particleviz.NewDefaultLogger("render", false).Errorf("%v", err)
		os.Exit(1)
	}

	logger := particleviz.NewZapLogger(cfg.Logging)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err = run(ctx, cfg, logger)
	stop()
	_ = logger.Sync()
	if err != nil {
		logger.Errorf("%v", err)
		os.Exit(1)
	}
}

// run renders at Supersample times the configured size, then resolves down
// to the output size.
func run(ctx context.Context, cfg *particleviz.Config, logger particleviz.Logger) error {
	recorder, err := particleviz.NewFrameRecorder(cfg, logger)
	if err != nil {
		return err
	}

	ss := cfg.Render.Supersample
	w, h := cfg.Render.Width*ss, cfg.Render.Height*ss
	frame := recorder.Record(w, h)
	target := raster.NewTarget(w, h)

	start := time.Now()
	stats, err := particleviz.RenderSoftware(ctx, frame, target)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	logger.Infof("rendered %dx%d in %v: %d primitives, %d culled, %d fragments, %d discarded",
		w, h, time.Since(start).Round(time.Millisecond),
		stats.Primitives, stats.Culled, stats.Fragments, stats.Discarded)

	img := raster.Resolve(target.Image(), cfg.Render.Width, cfg.Render.Height)

	f, err := os.Create(cfg.Render.Output)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := raster.EncodePNG(f, img); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}
	logger.Infof("wrote %s", cfg.Render.Output)
	return nil
}
