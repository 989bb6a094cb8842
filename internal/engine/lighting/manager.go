package lighting

import (
	"go.uber.org/zap"

	"github.com/Faultbox/orbitscene/internal/engine/shader"
	"github.com/Faultbox/orbitscene/internal/logger"
)

// Capacities match the uniform array sizes in the built-in shaders.
const (
	MaxDirectionalLights = 3
	MaxPointLights       = 3
	MaxSpotLights        = 3
)

// Manager owns the scene's lights, bounded per kind.
type Manager struct {
	directional []DirectionalLight
	point       []PointLight
	spot        []SpotLight
}

// NewManager creates an empty manager.
func NewManager() *Manager {
	return &Manager{
		directional: make([]DirectionalLight, 0, MaxDirectionalLights),
		point:       make([]PointLight, 0, MaxPointLights),
		spot:        make([]SpotLight, 0, MaxSpotLights),
	}
}

func rejected(kind Kind, limit int) bool {
	logger.Warn("light capacity reached, light not added",
		zap.Stringer("kind", kind),
		zap.Int("max", limit))
	return false
}

// CreateDirectionalLight adds a directional light.
// Returns false if the capacity is reached.
func (m *Manager) CreateDirectionalLight(l DirectionalLight) bool {
	if len(m.directional) >= MaxDirectionalLights {
		return rejected(KindDirectional, MaxDirectionalLights)
	}
	m.directional = append(m.directional, l)
	return true
}

// CreatePointLight adds a point light.
// Returns false if the capacity is reached.
func (m *Manager) CreatePointLight(l PointLight) bool {
	if len(m.point) >= MaxPointLights {
		return rejected(KindPoint, MaxPointLights)
	}
	m.point = append(m.point, l)
	return true
}

// CreateSpotLight adds a spot light.
// Returns false if the capacity is reached.
func (m *Manager) CreateSpotLight(l SpotLight) bool {
	if len(m.spot) >= MaxSpotLights {
		return rejected(KindSpot, MaxSpotLights)
	}
	m.spot = append(m.spot, l)
	return true
}

// DirectionalCount returns the number of directional lights.
func (m *Manager) DirectionalCount() int { return len(m.directional) }

// PointCount returns the number of point lights.
func (m *Manager) PointCount() int { return len(m.point) }

// SpotCount returns the number of spot lights.
func (m *Manager) SpotCount() int { return len(m.spot) }

// Lights returns every light, directional first, then point, then spot.
func (m *Manager) Lights() []Light {
	out := make([]Light, 0, len(m.directional)+len(m.point)+len(m.spot))
	for _, l := range m.directional {
		out = append(out, l)
	}
	for _, l := range m.point {
		out = append(out, l)
	}
	for _, l := range m.spot {
		out = append(out, l)
	}
	return out
}

// PointLights returns a copy of the point lights.
func (m *Manager) PointLights() []PointLight {
	return append([]PointLight(nil), m.point...)
}

// SetUniforms uploads the light counts and every light into each shader.
// Each shader is bound for the upload and unbound afterwards.
func (m *Manager) SetUniforms(shaders []*shader.Shader) {
	for _, sh := range shaders {
		sh.Use()
		sh.SetInt("nrDirLight", int32(len(m.directional)))
		sh.SetInt("nrPointLight", int32(len(m.point)))
		sh.SetInt("nrSpotLight", int32(len(m.spot)))
		for i, l := range m.directional {
			l.SetUniform(sh, i)
		}
		for i, l := range m.point {
			l.SetUniform(sh, i)
		}
		for i, l := range m.spot {
			l.SetUniform(sh, i)
		}
		sh.Unuse()
	}
}

// Clear removes all lights.
func (m *Manager) Clear() {
	m.directional = m.directional[:0]
	m.point = m.point[:0]
	m.spot = m.spot[:0]
}
