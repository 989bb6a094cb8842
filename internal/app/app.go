// Package app runs the demo: window, device, scene, camera and the frame loop.
package app

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/orbitscene/internal/assets"
	"github.com/Faultbox/orbitscene/internal/config"
	"github.com/Faultbox/orbitscene/internal/engine/camera"
	"github.com/Faultbox/orbitscene/internal/engine/debug"
	"github.com/Faultbox/orbitscene/internal/engine/gpu"
	"github.com/Faultbox/orbitscene/internal/engine/gpu/opengl"
	"github.com/Faultbox/orbitscene/internal/engine/input"
	"github.com/Faultbox/orbitscene/internal/engine/renderer"
	"github.com/Faultbox/orbitscene/internal/engine/scene"
	"github.com/Faultbox/orbitscene/internal/engine/window"
	"github.com/Faultbox/orbitscene/internal/logger"
)

// Surface is the windowing side of the loop.
type Surface interface {
	PollEvents(dst []input.Event) []input.Event
	SwapBuffers()
	DrawableSize() (int32, int32)
	Close()
}

// App is the running demo.
type App struct {
	config   *config.Config
	surface  Surface
	dev      gpu.Device
	assets   *assets.Manager
	scene    *scene.Scene
	camera   *camera.Camera
	renderer *renderer.Renderer
	shots    *debug.ScreenshotCapture

	state  *input.State
	events []input.Event
	pace   time.Duration
}

// New creates the window and GL context, then builds the scene.
func New(cfg *config.Config) (*App, error) {
	logger.Info("initializing",
		zap.String("title", cfg.Window.Title),
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
	)

	win, err := window.New(window.Config{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// The device needs the context the window just made current.
	dev, err := opengl.New()
	if err != nil {
		win.Close()
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	return assemble(cfg, win, dev)
}

// assemble builds everything that sits on top of a surface and a device.
// The surface is closed on error.
func assemble(cfg *config.Config, surface Surface, dev gpu.Device) (*App, error) {
	a := &App{
		config:  cfg,
		surface: surface,
		dev:     dev,
		assets:  assets.NewManager(),
		shots:   debug.NewScreenshotCapture(cfg.Assets.ScreenshotDir, "orbitscene"),
		state:   input.NewState(cfg.Camera.Distance),
		events:  make([]input.Event, 0, 16),
	}

	for _, dir := range cfg.Assets.Paths {
		if err := a.assets.AddDir(dir); err != nil {
			logger.Warn("asset path skipped", zap.String("path", dir), zap.Error(err))
		}
	}

	var err error
	a.scene, err = scene.New(dev, a.assets, scene.DefaultConfig())
	if err != nil {
		surface.Close()
		return nil, fmt.Errorf("failed to build scene: %w", err)
	}

	w, h := surface.DrawableSize()
	a.renderer = renderer.New(dev, renderer.Config{
		Width:      w,
		Height:     h,
		ClearColor: renderer.DefaultClearColor,
	})
	a.camera = camera.New(cfg.Camera.FOV, a.renderer.Aspect(), cfg.Camera.Near, cfg.Camera.Far)

	if !cfg.Window.VSync && cfg.Window.RefreshRate > 0 {
		a.pace = time.Second / time.Duration(cfg.Window.RefreshRate)
	}

	logger.Info("initialized successfully")
	return a, nil
}

// Run loops until quit is requested.
func (a *App) Run() {
	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting render loop")

	for {
		start := time.Now()
		if !a.Frame() {
			break
		}
		a.surface.SwapBuffers()

		if a.pace > 0 {
			if rest := a.pace - time.Since(start); rest > 0 {
				time.Sleep(rest)
			}
		}

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			logger.Debug("fps", zap.Int("count", frameCount))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}
}

// Frame runs one iteration: poll, fold input, update camera, render.
// It returns false once quit was requested.
func (a *App) Frame() bool {
	a.state.BeginFrame()
	a.events = a.surface.PollEvents(a.events[:0])
	a.state.ApplyAll(a.events)

	if a.state.Quit {
		return false
	}

	if a.state.Resized {
		w, h := a.surface.DrawableSize()
		a.renderer.Resize(w, h)
		a.camera.SetAspect(a.renderer.Aspect())
	}

	a.camera.Update(*a.state)
	a.renderer.SetWireframe(a.state.Wireframe)
	a.renderer.SetCulling(a.state.Culling)

	a.renderer.Begin()
	a.renderer.Render(a.camera, a.scene)

	if a.state.Screenshot {
		pixels, w, h := a.renderer.Screenshot()
		if _, err := a.shots.CaptureFromPixels(pixels, int(w), int(h)); err != nil {
			logger.Error("screenshot failed", zap.Error(err))
		}
	}
	return true
}

// Camera returns the orbit camera.
func (a *App) Camera() *camera.Camera { return a.camera }

// Close releases GPU resources before the context goes away.
func (a *App) Close() {
	logger.Info("closing")

	if a.scene != nil {
		a.scene.Destroy()
	}
	a.assets.Close()
	if a.surface != nil {
		a.surface.Close()
	}
}
