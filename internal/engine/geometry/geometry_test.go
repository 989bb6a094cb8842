package geometry

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/orbitscene/internal/engine/gpu"
	"github.com/Faultbox/orbitscene/internal/engine/gpu/gputest"
	"github.com/Faultbox/orbitscene/internal/engine/material"
	"github.com/Faultbox/orbitscene/internal/engine/mesh"
	"github.com/Faultbox/orbitscene/internal/engine/shader"
)

func setup(t *testing.T, model mgl32.Mat4) (*gputest.Recorder, *shader.Shader, *Geometry) {
	t.Helper()
	dev := gputest.NewRecorder()
	sh, err := shader.New(dev, "test", "v", "f")
	require.NoError(t, err)
	g, err := NewWithShader(dev, model, mesh.Cube(1, 1, 1), sh)
	require.NoError(t, err)
	return dev, sh, g
}

func modelMatrix(t *testing.T, dev *gputest.Recorder, sh *shader.Shader) mgl32.Mat4 {
	t.Helper()
	v, ok := dev.LastUniform(sh.Program(), UniformModel)
	require.True(t, ok)
	return v.(mgl32.Mat4)
}

func TestNewUploads(t *testing.T) {
	dev, _, g := setup(t, mgl32.Ident4())

	assert.Equal(t, int32(36), g.IndexCount())
	assert.Equal(t, mgl32.Vec4{1, 1, 1, 1}, g.Color())
	assert.Equal(t, 4, dev.Count("GenBuffer"), "positions, normals, uvs, indices")

	var attribs [][]any
	for _, c := range dev.Calls {
		if c.Op == "VertexAttrib" {
			attribs = append(attribs, c.Args)
		}
	}
	assert.Equal(t, [][]any{
		{uint32(AttribPosition), int32(3)},
		{uint32(AttribNormal), int32(3)},
		{uint32(AttribUV), int32(2)},
	}, attribs)
	assert.Zero(t, dev.BoundVAO)
}

func TestNewWithoutOptionalAttributes(t *testing.T) {
	dev := gputest.NewRecorder()
	sh, err := shader.New(dev, "test", "v", "f")
	require.NoError(t, err)

	data := mesh.Cube(1, 1, 1)
	data.Normals, data.UVs = nil, nil
	_, err = NewWithShader(dev, mgl32.Ident4(), data, sh)
	require.NoError(t, err)

	assert.Equal(t, 2, dev.Count("GenBuffer"))
	assert.Equal(t, 1, dev.Count("VertexAttrib"))
}

func TestNewRejectsInvalid(t *testing.T) {
	dev := gputest.NewRecorder()
	sh, err := shader.New(dev, "test", "v", "f")
	require.NoError(t, err)

	bad := mesh.Data{Positions: make([]mgl32.Vec3, 2), Indices: []uint32{0, 1, 2}}
	_, err = NewWithShader(dev, mgl32.Ident4(), bad, sh)
	assert.ErrorIs(t, err, mesh.ErrInvalidMesh)
	assert.Zero(t, dev.Count("GenVertexArray"))

	_, err = New(dev, mgl32.Ident4(), mesh.Cube(1, 1, 1), nil)
	assert.Error(t, err)
}

func TestDrawIdentityParent(t *testing.T) {
	own := mgl32.Translate3D(1, 2, 3).Mul4(mgl32.Scale3D(2, 2, 2))
	dev, sh, g := setup(t, own)
	dev.Reset()

	g.Draw(mgl32.Ident4())

	assert.Equal(t, own, modelMatrix(t, dev, sh))
	assert.Equal(t, []int32{36}, dev.Draws)
}

func TestDrawParentTransform(t *testing.T) {
	own := mgl32.HomogRotate3DY(0.5)
	parent := mgl32.Translate3D(4, 5, 6)
	dev, sh, g := setup(t, own)

	g.Draw(parent)

	got := modelMatrix(t, dev, sh)
	assert.True(t, parent.Mul4(own).ApproxEqual(got), "got %v", got)
}

func TestDrawUploads(t *testing.T) {
	dev, sh, g := setup(t, mgl32.Scale3D(2, 1, 1))
	g.SetColor(mgl32.Vec4{1, 0, 0, 0.5})
	dev.Reset()

	g.Draw(mgl32.Ident4())

	color, ok := dev.LastUniform(sh.Program(), UniformColor)
	require.True(t, ok)
	assert.Equal(t, mgl32.Vec4{1, 0, 0, 0.5}, color)

	normal, ok := dev.LastUniform(sh.Program(), UniformNormal)
	require.True(t, ok)
	want := mgl32.Mat3{0.5, 0, 0, 0, 1, 0, 0, 0, 1}
	assert.True(t, want.ApproxEqual(normal.(mgl32.Mat3)))

	// Material coefficients precede the per-draw uniforms.
	writes := dev.UniformsFor(sh.Program())
	require.NotEmpty(t, writes)
	assert.Equal(t, "materialCoefficients.ambient", writes[0].Name)

	assert.Zero(t, dev.BoundVAO, "vertex array left bound")
	assert.Equal(t, sh.Program(), dev.BoundProgram)
}

func TestTransform(t *testing.T) {
	_, _, g := setup(t, mgl32.Ident4())

	g.SetTransform(mgl32.Translate3D(1, 0, 0))
	g.Transformed(mgl32.Translate3D(0, 1, 0))
	assert.True(t, mgl32.Translate3D(1, 1, 0).ApproxEqual(g.Transform()))
	assert.Equal(t, material.KindBasic, g.Material().Kind())
}

func TestNormalMatrix(t *testing.T) {
	m := mgl32.Translate3D(3, 3, 3).Mul4(mgl32.HomogRotate3DZ(1))
	assert.True(t, m.Mat3().ApproxEqualThreshold(NormalMatrix(m), 1e-5), "rotation is its own normal matrix")
}

func TestDestroyOnce(t *testing.T) {
	dev, _, g := setup(t, mgl32.Ident4())

	g.Destroy()
	g.Destroy()
	assert.Len(t, dev.Deleted["vao"], 1)
	assert.Len(t, dev.Deleted["buffer"], 4)

	dev.Reset()
	g.Draw(mgl32.Ident4())
	assert.Empty(t, dev.Draws)
}

func TestBufferTargets(t *testing.T) {
	dev, _, _ := setup(t, mgl32.Ident4())
	var elements int
	for _, c := range dev.Calls {
		if c.Op == "BufferUint32" {
			assert.Equal(t, gpu.ElementArrayBuffer, c.Args[0])
			assert.Equal(t, 36, c.Args[1])
			elements++
		}
	}
	assert.Equal(t, 1, elements)
}
