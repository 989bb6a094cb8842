// Package renderer owns frame state and runs the per-frame draw protocol.
package renderer

import (
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/orbitscene/internal/engine/geometry"
	"github.com/Faultbox/orbitscene/internal/engine/gpu"
	"github.com/Faultbox/orbitscene/internal/engine/lighting"
	"github.com/Faultbox/orbitscene/internal/engine/shader"
	"github.com/Faultbox/orbitscene/internal/logger"
)

// Per-frame uniform names.
const (
	UniformViewProj = "viewProjMatrix"
	UniformCamera   = "cameraWorld"
)

// Config holds renderer configuration.
type Config struct {
	Width      int32
	Height     int32
	ClearColor mgl32.Vec4
}

// DefaultClearColor is a dark blue-gray.
var DefaultClearColor = mgl32.Vec4{0.1, 0.1, 0.15, 1.0}

// Camera supplies the per-frame view.
type Camera interface {
	ViewProjection() mgl32.Mat4
	Position() mgl32.Vec3
}

// Scene supplies what is drawn.
type Scene interface {
	Shaders() []*shader.Shader
	Lights() *lighting.Manager
	Geometries() []*geometry.Geometry
}

// Renderer drives one device.
type Renderer struct {
	dev    gpu.Device
	config Config

	wireframe bool
	culling   bool
}

// New sets up depth testing, back-face culling, the clear color and the viewport.
// Must be called after the graphics context exists.
func New(dev gpu.Device, cfg Config) *Renderer {
	r := &Renderer{dev: dev, config: cfg, culling: true}

	version, name := dev.Info()
	logger.Info("renderer ready",
		zap.String("version", version),
		zap.String("renderer", name),
	)

	dev.SetDepthTest(true)
	dev.SetCulling(true)
	dev.SetWireframe(false)
	dev.ClearColor(cfg.ClearColor)
	dev.Viewport(cfg.Width, cfg.Height)
	return r
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int32) {
	if width <= 0 || height <= 0 {
		return
	}
	r.config.Width = width
	r.config.Height = height
	r.dev.Viewport(width, height)
	logger.Debug("renderer resized",
		zap.Int32("width", width),
		zap.Int32("height", height),
	)
}

// Size returns the current viewport size.
func (r *Renderer) Size() (int32, int32) { return r.config.Width, r.config.Height }

// Aspect returns width / height of the viewport, or 1 while the viewport is empty.
func (r *Renderer) Aspect() float32 {
	if r.config.Width <= 0 || r.config.Height <= 0 {
		return 1
	}
	return float32(r.config.Width) / float32(r.config.Height)
}

// SetWireframe switches polygon mode, touching the device only on change.
func (r *Renderer) SetWireframe(enabled bool) {
	if enabled == r.wireframe {
		return
	}
	r.wireframe = enabled
	r.dev.SetWireframe(enabled)
	logger.Debug("wireframe toggled", zap.Bool("enabled", enabled))
}

// SetCulling switches back-face culling, touching the device only on change.
func (r *Renderer) SetCulling(enabled bool) {
	if enabled == r.culling {
		return
	}
	r.culling = enabled
	r.dev.SetCulling(enabled)
	logger.Debug("culling toggled", zap.Bool("enabled", enabled))
}

// Begin starts a new frame.
func (r *Renderer) Begin() {
	r.dev.Clear()
}

// Render uploads lights, then the view to every shader, then draws each
// geometry with an identity parent transform.
func (r *Renderer) Render(cam Camera, sc Scene) {
	shaders := sc.Shaders()
	sc.Lights().SetUniforms(shaders)

	viewProj := cam.ViewProjection()
	eye := cam.Position()
	for _, sh := range shaders {
		sh.Use()
		sh.SetMat4(UniformViewProj, viewProj)
		sh.SetVec3(UniformCamera, eye)
		sh.Unuse()
	}

	parent := mgl32.Ident4()
	for _, g := range sc.Geometries() {
		g.Draw(parent)
	}
}

// Screenshot reads back the current framebuffer as bottom-up RGBA.
func (r *Renderer) Screenshot() ([]byte, int32, int32) {
	w, h := r.config.Width, r.config.Height
	return r.dev.ReadPixels(w, h), w, h
}
