package main

import (
	"os"
	"runtime"

	"github.com/gekko3d/particleviz"
	"github.com/gekko3d/particleviz/particlert/rt/app"
	"github.com/go-gl/glfw/v3.3/glfw"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	particleviz.ParseFlags()
	cfg, err := particleviz.Load()
	if err != nil {
		particleviz.NewDefaultLogger("particlert", false).Errorf("%v", err)
		os.Exit(1)
	}

	logger := particleviz.NewZapLogger(cfg.Logging)
	defer func() { _ = logger.Sync() }()

	recorder, err := particleviz.NewFrameRecorder(cfg, logger)
	if err != nil {
		logger.Errorf("scene: %v", err)
		os.Exit(1)
	}

	if err := glfw.Init(); err != nil {
		panic(err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	window, err := glfw.CreateWindow(cfg.Render.Width, cfg.Render.Height, "Particle Viewer", nil, nil)
	if err != nil {
		panic(err)
	}
	defer window.Destroy()

	application := app.NewApp(window, recorder, logger)
	defer application.Release()
	if err := application.Init(); err != nil {
		logger.Errorf("init: %v", err)
		return
	}

	window.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		application.Resize(width, height)
	})

	for !window.ShouldClose() {
		glfw.PollEvents()
		if err := application.Update(); err != nil {
			logger.Errorf("update: %v", err)
			return
		}
		if err := application.Render(); err != nil {
			// Surface may be outdated mid-resize; the next frame retries.
			logger.Warnf("render: %v", err)
		}
	}
}
