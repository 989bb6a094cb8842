// Package scene builds the demo scene: primitives, materials and lights.
package scene

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/orbitscene/internal/assets"
	"github.com/Faultbox/orbitscene/internal/engine/geometry"
	"github.com/Faultbox/orbitscene/internal/engine/gpu"
	"github.com/Faultbox/orbitscene/internal/engine/lighting"
	"github.com/Faultbox/orbitscene/internal/engine/material"
	"github.com/Faultbox/orbitscene/internal/engine/mesh"
	"github.com/Faultbox/orbitscene/internal/engine/shader"
	"github.com/Faultbox/orbitscene/internal/engine/texture"
	"github.com/Faultbox/orbitscene/internal/logger"
)

// Config contains scene configuration options.
type Config struct {
	// DiffuseTexture is the asset path of the cube's texture.
	DiffuseTexture string
	// Segments is the tessellation of the round primitives.
	Segments uint32
	// LightMarkers draws a small unlit sphere at each point light.
	LightMarkers bool
}

// DefaultConfig returns a default scene configuration.
func DefaultConfig() Config {
	return Config{
		DiffuseTexture: "textures/wood_texture.dds",
		Segments:       32,
		LightMarkers:   true,
	}
}

// Scene owns every GPU resource of the demo scene.
type Scene struct {
	dev gpu.Device

	shaders    []*shader.Shader
	textures   []*texture.Texture
	geometries []*geometry.Geometry
	lights     *lighting.Manager
}

// New builds the scene. On error everything created so far is released.
func New(dev gpu.Device, loader assets.Loader, cfg Config) (*Scene, error) {
	s := &Scene{dev: dev, lights: lighting.NewManager()}
	if err := s.build(loader, cfg); err != nil {
		s.Destroy()
		return nil, err
	}

	logger.Info("scene built",
		zap.Int("shaders", len(s.shaders)),
		zap.Int("geometries", len(s.geometries)),
		zap.Int("lights", len(s.lights.Lights())),
		zap.Bool("placeholder_texture", s.textures[0].IsPlaceholder()),
	)
	return s, nil
}

func (s *Scene) build(loader assets.Loader, cfg Config) error {
	dev := s.dev

	sources := []shader.Source{shader.Color, shader.Phong, shader.PBR, shader.Textured}
	built := make(map[string]*shader.Shader, len(sources))
	for _, src := range sources {
		sh, err := src.Build(dev)
		if err != nil {
			return fmt.Errorf("building scene: %w", err)
		}
		s.shaders = append(s.shaders, sh)
		built[src.Name] = sh
	}

	tex := texture.Load(dev, loader, cfg.DiffuseTexture)
	s.textures = append(s.textures, tex)

	// Sphere and torus use n/2 rings, which must stay >= 3.
	n := max(cfg.Segments, 6)
	objects := []struct {
		name  string
		data  mesh.Data
		mat   material.Material
		at    mgl32.Vec3
		color mgl32.Vec4
	}{
		{"cube", mesh.Cube(1.5, 1.5, 1.5), material.DefaultTextured(built["textured"], tex),
			mgl32.Vec3{-1.5, 1, 0}, mgl32.Vec4{1, 1, 1, 1}},
		{"cylinder", mesh.Cylinder(0.6, 1.5, n), material.DefaultLambert(built["phong"]),
			mgl32.Vec3{1.5, 1, 0}, mgl32.Vec4{0.9, 0.2, 0.2, 1}},
		{"sphere", mesh.Sphere(0.8, n, n/2), pbrGold(built["pbr"]),
			mgl32.Vec3{-1.5, -1, 0}, mgl32.Vec4{1, 1, 1, 1}},
		{"torus", mesh.Torus(0.6, 0.2, n, n/2), material.DefaultBasic(built["phong"]),
			mgl32.Vec3{1.5, -1, 0}, mgl32.Vec4{0.2, 0.4, 0.9, 1}},
	}
	for _, o := range objects {
		g, err := geometry.New(dev, mgl32.Translate3D(o.at[0], o.at[1], o.at[2]), o.data, o.mat)
		if err != nil {
			return fmt.Errorf("building %s: %w", o.name, err)
		}
		g.SetColor(o.color)
		s.geometries = append(s.geometries, g)
	}

	s.createLights()

	if cfg.LightMarkers {
		marker := material.DefaultBasic(built["color"])
		for _, l := range s.lights.PointLights() {
			p := l.Position
			g, err := geometry.New(dev, mgl32.Translate3D(p[0], p[1], p[2]), mesh.Sphere(0.05, 8, 4), marker)
			if err != nil {
				return fmt.Errorf("building light marker: %w", err)
			}
			g.SetColor(l.Color.Vec4(1))
			s.geometries = append(s.geometries, g)
		}
	}

	return nil
}

func pbrGold(sh *shader.Shader) *material.PBR {
	m := material.NewPBR(sh, mgl32.Vec3{1.0, 0.77, 0.34})
	m.Roughness = 0.3
	m.Metalness = 0.9
	return m
}

func (s *Scene) createLights() {
	s.lights.CreateDirectionalLight(lighting.DirectionalLight{
		Color:     mgl32.Vec3{0.8, 0.8, 0.8},
		Direction: lighting.DirectionFromAngles(30, 45),
	})

	falloff := lighting.Attenuation{Constant: 1, Linear: 0.4, Quadratic: 0.1}
	s.lights.CreatePointLight(lighting.PointLight{
		Color:       mgl32.Vec3{1, 1, 1},
		Position:    mgl32.Vec3{0, 0, 1.5},
		Attenuation: falloff,
	})
	s.lights.CreatePointLight(lighting.PointLight{
		Color:       mgl32.Vec3{1, 0.6, 0.2},
		Position:    mgl32.Vec3{0, 2.5, -1},
		Attenuation: falloff,
	})

	spotPos := mgl32.Vec3{0, 4, 4}
	s.lights.CreateSpotLight(lighting.SpotLight{
		Color:       mgl32.Vec3{0.6, 0.8, 1},
		Position:    spotPos,
		Direction:   spotPos.Mul(-1).Normalize(),
		InnerCutoff: 15,
		OuterCutoff: 25,
		Attenuation: lighting.Attenuation{Constant: 1, Linear: 0.05, Quadratic: 0.01},
	})
}

// Shaders returns every shader the scene's materials use.
func (s *Scene) Shaders() []*shader.Shader { return s.shaders }

// Geometries returns the drawables in draw order.
func (s *Scene) Geometries() []*geometry.Geometry { return s.geometries }

// Lights returns the light manager.
func (s *Scene) Lights() *lighting.Manager { return s.lights }

// Textures returns the loaded textures.
func (s *Scene) Textures() []*texture.Texture { return s.textures }

// Destroy releases geometries, then textures, then shaders.
func (s *Scene) Destroy() {
	for _, g := range s.geometries {
		g.Destroy()
	}
	for _, t := range s.textures {
		t.Destroy()
	}
	for _, sh := range s.shaders {
		sh.Destroy()
	}
	s.geometries, s.textures, s.shaders = nil, nil, nil
	s.lights.Clear()
}
