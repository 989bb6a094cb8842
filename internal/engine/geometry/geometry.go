// Package geometry owns GPU mesh instances and draws them with a material.
package geometry

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/orbitscene/internal/engine/gpu"
	"github.com/Faultbox/orbitscene/internal/engine/material"
	"github.com/Faultbox/orbitscene/internal/engine/mesh"
	"github.com/Faultbox/orbitscene/internal/engine/shader"
	"github.com/Faultbox/orbitscene/internal/logger"
)

// Vertex attribute locations.
const (
	AttribPosition = 0
	AttribNormal   = 1
	AttribUV       = 2
)

// Per-draw uniform names.
const (
	UniformModel  = "modelMatrix"
	UniformNormal = "normalMatrix"
	UniformColor  = "materialColor"
)

// Geometry is one uploaded mesh with its own transform, color and material.
// Materials and shaders may be shared between geometries.
type Geometry struct {
	dev        gpu.Device
	vao        uint32
	buffers    []uint32
	indexCount int32
	model      mgl32.Mat4
	color      mgl32.Vec4
	material   material.Material
}

// New validates data and uploads it. Normals and UVs are bound only when present.
func New(dev gpu.Device, model mgl32.Mat4, data mesh.Data, mat material.Material) (*Geometry, error) {
	if err := data.Validate(); err != nil {
		return nil, fmt.Errorf("creating geometry: %w", err)
	}
	if mat == nil {
		return nil, fmt.Errorf("creating geometry: nil material")
	}

	g := &Geometry{
		dev:        dev,
		indexCount: int32(data.IndexCount()),
		model:      model,
		color:      mgl32.Vec4{1, 1, 1, 1},
		material:   mat,
	}

	g.vao = dev.GenVertexArray()
	dev.BindVertexArray(g.vao)

	g.attribute(AttribPosition, 3, mesh.FlattenVec3(data.Positions))
	if len(data.Normals) > 0 {
		g.attribute(AttribNormal, 3, mesh.FlattenVec3(data.Normals))
	}
	if len(data.UVs) > 0 {
		g.attribute(AttribUV, 2, mesh.FlattenVec2(data.UVs))
	}

	ebo := dev.GenBuffer()
	g.buffers = append(g.buffers, ebo)
	dev.BindBuffer(gpu.ElementArrayBuffer, ebo)
	dev.BufferUint32(gpu.ElementArrayBuffer, data.Indices)

	dev.BindVertexArray(0)
	dev.BindBuffer(gpu.ArrayBuffer, 0)
	dev.BindBuffer(gpu.ElementArrayBuffer, 0)

	return g, nil
}

// NewWithShader creates a geometry with a default Basic material on sh.
func NewWithShader(dev gpu.Device, model mgl32.Mat4, data mesh.Data, sh *shader.Shader) (*Geometry, error) {
	return New(dev, model, data, material.DefaultBasic(sh))
}

func (g *Geometry) attribute(index uint32, size int32, data []float32) {
	vbo := g.dev.GenBuffer()
	g.buffers = append(g.buffers, vbo)
	g.dev.BindBuffer(gpu.ArrayBuffer, vbo)
	g.dev.BufferFloat32(gpu.ArrayBuffer, data)
	g.dev.VertexAttrib(index, size)
}

// Draw pushes the material uniforms, then parent*model, its normal matrix
// and the override color, and issues the draw. The material's shader is left
// in use; the vertex array is unbound.
func (g *Geometry) Draw(parent mgl32.Mat4) {
	if g.vao == 0 {
		return
	}
	total := parent.Mul4(g.model)

	g.material.SetUniforms()

	sh := g.material.Shader()
	sh.Use()
	sh.SetMat4(UniformModel, total)
	sh.SetMat3(UniformNormal, NormalMatrix(total))
	sh.SetVec4(UniformColor, g.color)

	g.dev.BindVertexArray(g.vao)
	g.dev.DrawTriangles(g.indexCount)
	g.dev.BindVertexArray(0)
}

// NormalMatrix returns the inverse transpose of m's upper 3x3.
func NormalMatrix(m mgl32.Mat4) mgl32.Mat3 {
	return m.Mat3().Inv().Transpose()
}

// Transform returns the model matrix.
func (g *Geometry) Transform() mgl32.Mat4 { return g.model }

// SetTransform replaces the model matrix.
func (g *Geometry) SetTransform(m mgl32.Mat4) { g.model = m }

// Transformed premultiplies the model matrix by m.
func (g *Geometry) Transformed(m mgl32.Mat4) { g.model = m.Mul4(g.model) }

// Color returns the override color.
func (g *Geometry) Color() mgl32.Vec4 { return g.color }

// SetColor sets the override color uploaded as materialColor.
func (g *Geometry) SetColor(c mgl32.Vec4) { g.color = c }

// Material returns the geometry's material.
func (g *Geometry) Material() material.Material { return g.material }

// IndexCount returns the number of indices drawn.
func (g *Geometry) IndexCount() int32 { return g.indexCount }

// Destroy releases the vertex array and buffers. Safe to call more than once.
func (g *Geometry) Destroy() {
	if g.vao == 0 {
		return
	}
	for _, b := range g.buffers {
		g.dev.DeleteBuffer(b)
	}
	g.dev.DeleteVertexArray(g.vao)
	logger.Debug("geometry deleted", zap.Uint32("vao", g.vao), zap.Int("buffers", len(g.buffers)))
	g.vao = 0
	g.buffers = nil
}
