package material

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/orbitscene/internal/engine/gpu/gputest"
	"github.com/Faultbox/orbitscene/internal/engine/shader"
	"github.com/Faultbox/orbitscene/internal/engine/texture"
)

func newShader(t *testing.T, dev *gputest.Recorder) *shader.Shader {
	t.Helper()
	sh, err := shader.New(dev, "test", "v", "f")
	require.NoError(t, err)
	return sh
}

func values(ws []gputest.UniformWrite) map[string]any {
	out := make(map[string]any, len(ws))
	for _, w := range ws {
		out[w.Name] = w.Value
	}
	return out
}

func TestBasicSetUniforms(t *testing.T) {
	dev := gputest.NewRecorder()
	sh := newShader(t, dev)
	m := NewBasic(sh, Coefficients{
		Ambient:             mgl32.Vec3{0.1, 0.1, 0.1},
		Diffuse:             mgl32.Vec3{0.9, 0.9, 0.9},
		Specular:            mgl32.Vec3{0.3, 0.3, 0.3},
		SpecularCoefficient: 10,
	})

	m.SetUniforms()

	writes := dev.UniformsFor(sh.Program())
	require.Len(t, writes, 4)
	assert.Equal(t, map[string]any{
		"materialCoefficients.ambient":             mgl32.Vec3{0.1, 0.1, 0.1},
		"materialCoefficients.diffuse":             mgl32.Vec3{0.9, 0.9, 0.9},
		"materialCoefficients.specular":            mgl32.Vec3{0.3, 0.3, 0.3},
		"materialCoefficients.specularCoefficient": float32(10),
	}, values(writes))
	assert.Zero(t, dev.BoundProgram, "shader left bound")
	assert.Equal(t, KindBasic, m.Kind())
	assert.Same(t, sh, m.Shader())
}

func TestDefaults(t *testing.T) {
	dev := gputest.NewRecorder()
	sh := newShader(t, dev)

	tests := []struct {
		name string
		mat  Material
		want map[string]any
	}{
		{"basic", DefaultBasic(sh), map[string]any{
			"materialCoefficients.ambient":             mgl32.Vec3{0.05, 0.05, 0.05},
			"materialCoefficients.diffuse":             mgl32.Vec3{0.9, 0.9, 0.9},
			"materialCoefficients.specular":            mgl32.Vec3{0.1, 0.1, 0.1},
			"materialCoefficients.specularCoefficient": float32(20),
		}},
		{"lambert", DefaultLambert(sh), map[string]any{
			"materialCoefficients.ambient":             mgl32.Vec3{0.05, 0.05, 0.05},
			"materialCoefficients.diffuse":             mgl32.Vec3{0.9, 0.9, 0.9},
			"materialCoefficients.specular":            mgl32.Vec3{0.3, 0.3, 0.3},
			"materialCoefficients.specularCoefficient": float32(10),
		}},
		{"pbr", NewPBR(sh, mgl32.Vec3{1, 0, 0}), map[string]any{
			"materialCoefficients.albedo":    mgl32.Vec3{1, 0, 0},
			"materialCoefficients.roughness": float32(0.5),
			"materialCoefficients.metalness": float32(0),
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dev.Reset()
			tt.mat.SetUniforms()
			writes := dev.UniformsFor(sh.Program())
			assert.Len(t, writes, len(tt.want))
			assert.Equal(t, tt.want, values(writes))
			assert.Zero(t, dev.BoundProgram)
		})
	}
}

func TestTexturedSetUniforms(t *testing.T) {
	dev := gputest.NewRecorder()
	sh := newShader(t, dev)
	tex := texture.Placeholder(dev)
	m := DefaultTextured(sh, tex)
	m.Unit = 2

	dev.Reset()
	m.SetUniforms()

	assert.Equal(t, map[string]any{
		"materialCoefficients.diffuseTexture":      int32(2),
		"materialCoefficients.ambient":             float32(0.05),
		"materialCoefficients.diffuse":             float32(0.8),
		"materialCoefficients.specular":            float32(0.2),
		"materialCoefficients.specularCoefficient": float32(10),
	}, values(dev.UniformsFor(sh.Program())))
	assert.Equal(t, tex.Handle(), dev.TextureUnits[2])
	assert.Zero(t, dev.BoundProgram)
	assert.Equal(t, KindTextured, m.Kind())
	assert.Same(t, tex, m.Texture())

	// ActiveTexture must precede BindTexture.
	ops := dev.Ops()
	assert.Less(t, indexOf(ops, "ActiveTexture"), indexOf(ops, "BindTexture"))
}

func TestTexturedSetUniformsAt(t *testing.T) {
	dev := gputest.NewRecorder()
	sh := newShader(t, dev)
	tex := texture.Placeholder(dev)
	m := DefaultTextured(sh, tex)

	m.SetUniformsAt(5)
	v, ok := dev.LastUniform(sh.Program(), "materialCoefficients.diffuseTexture")
	require.True(t, ok)
	assert.Equal(t, int32(5), v)
	assert.Equal(t, tex.Handle(), dev.TextureUnits[5])
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "basic", KindBasic.String())
	assert.Equal(t, "lambert", KindLambert.String())
	assert.Equal(t, "pbr", KindPBR.String())
	assert.Equal(t, "textured", KindTextured.String())
	assert.Equal(t, "unknown", Kind(42).String())
}

func indexOf(ops []string, op string) int {
	for i, o := range ops {
		if o == op {
			return i
		}
	}
	return -1
}
