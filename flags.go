package particleviz

import "flag"

var (
	flagConfig      = flag.String("config", "", "Path to config file")
	flagDebug       = flag.Bool("debug", false, "Enable debug logging")
	flagShading     = flag.String("shading", "", "Particle shading: soft-dot or energy-glow")
	flagWidth       = flag.Int("width", 0, "Output width in pixels")
	flagHeight      = flag.Int("height", 0, "Output height in pixels")
	flagSupersample = flag.Int("supersample", 0, "Supersampling factor for headless renders")
	flagParticles   = flag.Int("particles", -1, "Number of random particles")
	flagSeed        = flag.Int64("seed", 0, "Random seed for particle positions")
	flagGauge       = flag.Float64("gauge", 0, "Scale gauge (5000 = unit scale)")
	flagOutput      = flag.String("output", "", "Output PNG path for headless renders")
	flagLogFile     = flag.String("log-file", "", "Write a rotated log file")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagShading != "" {
		cfg.Render.Shading = *flagShading
	}
	if *flagWidth > 0 {
		cfg.Render.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Render.Height = *flagHeight
	}
	if *flagSupersample > 0 {
		cfg.Render.Supersample = *flagSupersample
	}
	if *flagParticles >= 0 {
		cfg.Scene.ParticleCount = *flagParticles
	}
	if *flagSeed != 0 {
		cfg.Scene.Seed = *flagSeed
	}
	if *flagGauge > 0 {
		cfg.Scene.Gauge = *flagGauge
	}
	if *flagOutput != "" {
		cfg.Render.Output = *flagOutput
	}
	if *flagLogFile != "" {
		cfg.Logging.File = *flagLogFile
	}
}
