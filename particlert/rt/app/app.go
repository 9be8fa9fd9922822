package app

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cogentcore/webgpu/wgpuglfw"
	"github.com/gekko3d/particleviz"
	"github.com/gekko3d/particleviz/particlert/rt/gpu"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// App is the windowed viewer. Each frame it records the axes and particle
// batches, uploads their uniforms, and draws axes then particles into the
// swapchain. The camera orbits on its own; there is no input handling.
type App struct {
	Window   *glfw.Window
	Instance *wgpu.Instance
	Adapter  *wgpu.Adapter
	Device   *wgpu.Device
	Queue    *wgpu.Queue
	Surface  *wgpu.Surface
	Config   *wgpu.SurfaceConfiguration

	Recorder  *particleviz.FrameRecorder
	Axes      *gpu.AxesPass
	Particles *gpu.ParticlePass
	Profiler  *Profiler
	Logger    particleviz.Logger

	frame          particleviz.Frame
	LastTime       float64
	LastRenderTime float64

	FrameCount int
	FPS        float64
	FPSTime    float64
}

func NewApp(window *glfw.Window, recorder *particleviz.FrameRecorder, logger particleviz.Logger) *App {
	if logger == nil {
		logger = particleviz.NewNopLogger()
	}
	return &App{
		Window:   window,
		Recorder: recorder,
		Profiler: NewProfiler(),
		Logger:   logger,
	}
}

func (a *App) Init() error {
	a.Instance = wgpu.CreateInstance(nil)
	a.Surface = a.Instance.CreateSurface(wgpuglfw.GetSurfaceDescriptor(a.Window))

	adapter, err := a.Instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		CompatibleSurface: a.Surface,
		PowerPreference:   wgpu.PowerPreferenceHighPerformance,
	})
	if err != nil {
		return fmt.Errorf("request adapter: %w", err)
	}
	a.Adapter = adapter

	a.Device, err = adapter.RequestDevice(&wgpu.DeviceDescriptor{Label: "Particle Device"})
	if err != nil {
		return fmt.Errorf("request device: %w", err)
	}
	a.Queue = a.Device.GetQueue()

	width, height := a.Window.GetFramebufferSize()
	caps := a.Surface.GetCapabilities(adapter)
	format := caps.Formats[0]

	a.Config = &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      format,
		Width:       uint32(width),
		Height:      uint32(height),
		PresentMode: wgpu.PresentModeFifo,
		AlphaMode:   caps.AlphaModes[0],
	}
	a.Surface.Configure(adapter, a.Device, a.Config)

	a.Axes, err = gpu.NewAxesPass(a.Device, format, a.Recorder.Axes)
	if err != nil {
		return fmt.Errorf("axes pass: %w", err)
	}
	a.Particles, err = gpu.NewParticlePass(a.Device, format, a.Recorder.Shading)
	if err != nil {
		return fmt.Errorf("particle pass: %w", err)
	}

	a.Logger.Infof("surface %dx%d format %v, shading %s", width, height, format, a.Recorder.Shading)
	a.LastTime = glfw.GetTime()
	return nil
}

func (a *App) Resize(w, h int) {
	if w > 0 && h > 0 {
		a.Config.Width = uint32(w)
		a.Config.Height = uint32(h)
		a.Surface.Configure(a.Adapter, a.Device, a.Config)
		a.Logger.Debugf("resized to %dx%d", w, h)
	}
}

// Update advances the camera and uploads the recorded frame.
func (a *App) Update() error {
	a.Profiler.BeginScope("update")
	defer a.Profiler.EndScope("update")

	now := glfw.GetTime()
	dt := float32(now - a.LastTime)
	a.LastTime = now
	a.Recorder.Advance(dt)

	w, h := a.Config.Width, a.Config.Height
	a.frame = a.Recorder.Record(int(w), int(h))
	for i := range a.frame.Batches {
		b := &a.frame.Batches[i]
		u := gpu.NewFrameUniforms(&b.PushConstants, w, h)
		var err error
		switch b.Kind {
		case particleviz.BatchAxes:
			err = a.Axes.Update(a.Queue, u)
		case particleviz.BatchParticles:
			err = a.Particles.Update(a.Queue, u, b.Particles)
			a.Profiler.SetCount("particles", len(b.Particles))
		}
		if err != nil {
			return fmt.Errorf("upload %s batch: %w", b.Kind, err)
		}
	}
	return nil
}

func (a *App) Render() error {
	a.Profiler.BeginScope("render")
	defer a.Profiler.EndScope("render")

	nextTexture, err := a.Surface.GetCurrentTexture()
	if err != nil {
		return fmt.Errorf("get current texture: %w", err)
	}
	defer nextTexture.Release()

	view, err := nextTexture.CreateView(nil)
	if err != nil {
		return fmt.Errorf("create view: %w", err)
	}
	defer view.Release()

	encoder, err := a.Device.CreateCommandEncoder(nil)
	if err != nil {
		return fmt.Errorf("create command encoder: %w", err)
	}
	defer encoder.Release()

	bg := a.frame.Background
	pass := encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{{
			View:       view,
			LoadOp:     wgpu.LoadOpClear,
			StoreOp:    wgpu.StoreOpStore,
			ClearValue: wgpu.Color{R: float64(bg[0]), G: float64(bg[1]), B: float64(bg[2]), A: float64(bg[3])},
		}},
	})
	a.Axes.Draw(pass)
	a.Particles.Draw(pass)
	if err := pass.End(); err != nil {
		return fmt.Errorf("render pass end: %w", err)
	}

	cmd, err := encoder.Finish(nil)
	if err != nil {
		return fmt.Errorf("encoder finish: %w", err)
	}
	defer cmd.Release()
	a.Queue.Submit(cmd)
	a.Surface.Present()

	a.tickFPS()
	return nil
}

func (a *App) tickFPS() {
	now := glfw.GetTime()
	if a.LastRenderTime > 0 {
		a.FrameCount++
		a.FPSTime += now - a.LastRenderTime
	}
	a.LastRenderTime = now
	if a.FPSTime < 1.0 {
		return
	}
	a.FPS = float64(a.FrameCount) / a.FPSTime
	a.FrameCount = 0
	a.FPSTime = 0
	if a.Logger.DebugEnabled() {
		a.Logger.Debugf("%.1f fps\n%s", a.FPS, a.Profiler.StatsString())
	}
}

func (a *App) Release() {
	if a.Particles != nil {
		a.Particles.Release()
	}
	if a.Axes != nil {
		a.Axes.Release()
	}
	if a.Device != nil {
		a.Device.Release()
	}
	if a.Adapter != nil {
		a.Adapter.Release()
	}
	if a.Surface != nil {
		a.Surface.Release()
	}
	if a.Instance != nil {
		a.Instance.Release()
	}
}
