// Package material holds shading coefficients and pushes them to a shader.
//
// Every variant binds its shader, writes its uniforms and unbinds again, so
// callers never track which program is current.
package material

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/orbitscene/internal/engine/shader"
	"github.com/Faultbox/orbitscene/internal/engine/texture"
)

// Kind identifies a material variant.
type Kind int

const (
	KindBasic Kind = iota
	KindLambert
	KindPBR
	KindTextured
)

func (k Kind) String() string {
	switch k {
	case KindBasic:
		return "basic"
	case KindLambert:
		return "lambert"
	case KindPBR:
		return "pbr"
	case KindTextured:
		return "textured"
	default:
		return "unknown"
	}
}

// Material is implemented by *Basic, *Lambert, *PBR and *Textured.
type Material interface {
	Kind() Kind
	Shader() *shader.Shader
	SetUniforms()
}

// Uniform names shared with the built-in shaders.
const (
	uniformAmbient        = "materialCoefficients.ambient"
	uniformDiffuse        = "materialCoefficients.diffuse"
	uniformSpecular       = "materialCoefficients.specular"
	uniformSpecularCoeff  = "materialCoefficients.specularCoefficient"
	uniformAlbedo         = "materialCoefficients.albedo"
	uniformRoughness      = "materialCoefficients.roughness"
	uniformMetalness      = "materialCoefficients.metalness"
	uniformDiffuseTexture = "materialCoefficients.diffuseTexture"
)

// Coefficients are the Phong reflection terms.
type Coefficients struct {
	Ambient             mgl32.Vec3
	Diffuse             mgl32.Vec3
	Specular            mgl32.Vec3
	SpecularCoefficient float32
}

func (c Coefficients) upload(sh *shader.Shader) {
	sh.Use()
	sh.SetVec3(uniformAmbient, c.Ambient)
	sh.SetVec3(uniformDiffuse, c.Diffuse)
	sh.SetVec3(uniformSpecular, c.Specular)
	sh.SetFloat(uniformSpecularCoeff, c.SpecularCoefficient)
	sh.Unuse()
}

func gray(v float32) mgl32.Vec3 { return mgl32.Vec3{v, v, v} }

// Basic is the plain Phong material.
type Basic struct {
	Coefficients
	shader *shader.Shader
}

// NewBasic creates a Basic material with explicit coefficients.
func NewBasic(sh *shader.Shader, c Coefficients) *Basic {
	return &Basic{Coefficients: c, shader: sh}
}

// DefaultBasic creates a Basic material with ambient 0.05, diffuse 0.9,
// specular 0.1 and exponent 20.
func DefaultBasic(sh *shader.Shader) *Basic {
	return NewBasic(sh, Coefficients{
		Ambient:             gray(0.05),
		Diffuse:             gray(0.9),
		Specular:            gray(0.1),
		SpecularCoefficient: 20,
	})
}

func (m *Basic) Kind() Kind             { return KindBasic }
func (m *Basic) Shader() *shader.Shader { return m.shader }
func (m *Basic) SetUniforms()           { m.Coefficients.upload(m.shader) }

// Lambert is a mostly diffuse Phong material with a broader highlight.
type Lambert struct {
	Coefficients
	shader *shader.Shader
}

// NewLambert creates a Lambert material with explicit coefficients.
func NewLambert(sh *shader.Shader, c Coefficients) *Lambert {
	return &Lambert{Coefficients: c, shader: sh}
}

// DefaultLambert creates a Lambert material with ambient 0.05, diffuse 0.9,
// specular 0.3 and exponent 10.
func DefaultLambert(sh *shader.Shader) *Lambert {
	return NewLambert(sh, Coefficients{
		Ambient:             gray(0.05),
		Diffuse:             gray(0.9),
		Specular:            gray(0.3),
		SpecularCoefficient: 10,
	})
}

func (m *Lambert) Kind() Kind             { return KindLambert }
func (m *Lambert) Shader() *shader.Shader { return m.shader }
func (m *Lambert) SetUniforms()           { m.Coefficients.upload(m.shader) }

// PBR is a metal/roughness material.
type PBR struct {
	Albedo    mgl32.Vec3
	Roughness float32
	Metalness float32
	shader    *shader.Shader
}

// NewPBR creates a PBR material with roughness 0.5 and metalness 0.
func NewPBR(sh *shader.Shader, albedo mgl32.Vec3) *PBR {
	return &PBR{Albedo: albedo, Roughness: 0.5, shader: sh}
}

func (m *PBR) Kind() Kind             { return KindPBR }
func (m *PBR) Shader() *shader.Shader { return m.shader }

func (m *PBR) SetUniforms() {
	m.shader.Use()
	m.shader.SetVec3(uniformAlbedo, m.Albedo)
	m.shader.SetFloat(uniformRoughness, m.Roughness)
	m.shader.SetFloat(uniformMetalness, m.Metalness)
	m.shader.Unuse()
}

// Textured samples its diffuse color from a texture. Coefficients are scalars.
type Textured struct {
	Ambient             float32
	Diffuse             float32
	Specular            float32
	SpecularCoefficient float32
	// Unit is the texture unit SetUniforms binds to.
	Unit    int32
	texture *texture.Texture
	shader  *shader.Shader
}

// NewTextured creates a Textured material with explicit coefficients.
func NewTextured(sh *shader.Shader, tex *texture.Texture, ambient, diffuse, specular, specularCoefficient float32) *Textured {
	return &Textured{
		Ambient:             ambient,
		Diffuse:             diffuse,
		Specular:            specular,
		SpecularCoefficient: specularCoefficient,
		texture:             tex,
		shader:              sh,
	}
}

// DefaultTextured creates a Textured material with ambient 0.05, diffuse 0.8,
// specular 0.2 and exponent 10 on unit 0.
func DefaultTextured(sh *shader.Shader, tex *texture.Texture) *Textured {
	return NewTextured(sh, tex, 0.05, 0.8, 0.2, 10)
}

func (m *Textured) Kind() Kind                { return KindTextured }
func (m *Textured) Shader() *shader.Shader    { return m.shader }
func (m *Textured) Texture() *texture.Texture { return m.texture }
func (m *Textured) SetUniforms()              { m.SetUniformsAt(m.Unit) }

// SetUniformsAt binds the texture on unit and writes the coefficients.
func (m *Textured) SetUniformsAt(unit int32) {
	m.shader.Use()
	m.texture.Activate(unit)
	m.shader.SetInt(uniformDiffuseTexture, unit)
	m.shader.SetFloat(uniformAmbient, m.Ambient)
	m.shader.SetFloat(uniformDiffuse, m.Diffuse)
	m.shader.SetFloat(uniformSpecular, m.Specular)
	m.shader.SetFloat(uniformSpecularCoeff, m.SpecularCoefficient)
	m.shader.Unuse()
}
