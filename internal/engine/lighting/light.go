// Package lighting provides the scene's lights and their uniform upload.
package lighting

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/orbitscene/internal/engine/shader"
)

// Kind identifies a light variant.
type Kind int

const (
	KindDirectional Kind = iota
	KindPoint
	KindSpot
)

// String returns the lowercase kind name.
func (k Kind) String() string {
	switch k {
	case KindDirectional:
		return "directional"
	case KindPoint:
		return "point"
	case KindSpot:
		return "spot"
	default:
		return "unknown"
	}
}

// Light writes its parameters into slot i of a uniform array. The shader
// must be in use.
type Light interface {
	Kind() Kind
	SetUniform(sh *shader.Shader, slot int)
}

// Attenuation holds distance falloff coefficients:
// 1 / (Constant + Linear*d + Quadratic*d²).
type Attenuation struct {
	Constant  float32
	Linear    float32
	Quadratic float32
}

// Vec3 packs the coefficients as (constant, linear, quadratic).
func (a Attenuation) Vec3() mgl32.Vec3 {
	return mgl32.Vec3{a.Constant, a.Linear, a.Quadratic}
}

// At returns the attenuation factor at distance d.
func (a Attenuation) At(d float32) float32 {
	return 1 / (a.Constant + a.Linear*d + a.Quadratic*d*d)
}

// DirectionalLight lights the whole scene from one direction.
type DirectionalLight struct {
	Color     mgl32.Vec3
	Direction mgl32.Vec3 // direction the light travels
}

// Kind returns the light kind.
func (l DirectionalLight) Kind() Kind { return KindDirectional }

// SetUniform writes the light into slot of the bound shader.
func (l DirectionalLight) SetUniform(sh *shader.Shader, slot int) {
	prefix := fmt.Sprintf("dirLights[%d].", slot)
	sh.SetVec3(prefix+"color", l.Color)
	sh.SetVec3(prefix+"direction", l.Direction)
}

// PointLight radiates from a position.
type PointLight struct {
	Color       mgl32.Vec3
	Position    mgl32.Vec3
	Attenuation Attenuation
}

// Kind returns the light kind.
func (l PointLight) Kind() Kind { return KindPoint }

// SetUniform writes the light into slot of the bound shader.
func (l PointLight) SetUniform(sh *shader.Shader, slot int) {
	prefix := fmt.Sprintf("pointLights[%d].", slot)
	sh.SetVec3(prefix+"color", l.Color)
	sh.SetVec3(prefix+"position", l.Position)
	sh.SetVec3(prefix+"attenuation", l.Attenuation.Vec3())
}

// SpotLight is a point light limited to a cone. Cutoffs are half-angles in
// degrees and are uploaded as cosines.
type SpotLight struct {
	Color       mgl32.Vec3
	Position    mgl32.Vec3
	Direction   mgl32.Vec3
	InnerCutoff float32
	OuterCutoff float32
	Attenuation Attenuation
}

// Kind returns the light kind.
func (l SpotLight) Kind() Kind { return KindSpot }

// SetUniform writes the light into slot of the bound shader.
func (l SpotLight) SetUniform(sh *shader.Shader, slot int) {
	prefix := fmt.Sprintf("spotLights[%d].", slot)
	sh.SetVec3(prefix+"color", l.Color)
	sh.SetVec3(prefix+"position", l.Position)
	sh.SetVec3(prefix+"direction", l.Direction)
	sh.SetFloat(prefix+"innerCutoff", math32.Cos(mgl32.DegToRad(l.InnerCutoff)))
	sh.SetFloat(prefix+"outerCutoff", math32.Cos(mgl32.DegToRad(l.OuterCutoff)))
	sh.SetVec3(prefix+"attenuation", l.Attenuation.Vec3())
}

// DirectionFromAngles converts a sun position, azimuth around +Y and
// elevation above the horizon in degrees, to the direction its light travels.
func DirectionFromAngles(azimuth, elevation float32) mgl32.Vec3 {
	az := mgl32.DegToRad(azimuth)
	el := mgl32.DegToRad(elevation)

	toSun := mgl32.Vec3{
		math32.Cos(el) * math32.Sin(az),
		math32.Sin(el),
		math32.Cos(el) * math32.Cos(az),
	}
	return toSun.Mul(-1)
}
