package lighting

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/orbitscene/internal/engine/gpu/gputest"
	"github.com/Faultbox/orbitscene/internal/engine/shader"
)

func newShader(t *testing.T, dev *gputest.Recorder, name string) *shader.Shader {
	t.Helper()
	sh, err := shader.New(dev, name, "v", "f")
	require.NoError(t, err)
	return sh
}

func point(x float32) PointLight {
	return PointLight{
		Color:       mgl32.Vec3{1, 1, 1},
		Position:    mgl32.Vec3{x, 0, 0},
		Attenuation: Attenuation{Constant: 1, Linear: 0.4, Quadratic: 0.1},
	}
}

func TestCapacity(t *testing.T) {
	m := NewManager()

	for i := 0; i < MaxPointLights; i++ {
		assert.True(t, m.CreatePointLight(point(float32(i))))
	}
	assert.False(t, m.CreatePointLight(point(99)))
	assert.Equal(t, MaxPointLights, m.PointCount())
	for _, l := range m.PointLights() {
		assert.NotEqual(t, float32(99), l.Position[0], "rejected light stored")
	}

	for i := 0; i < MaxDirectionalLights+2; i++ {
		m.CreateDirectionalLight(DirectionalLight{Color: mgl32.Vec3{1, 1, 1}, Direction: mgl32.Vec3{0, -1, 0}})
	}
	assert.Equal(t, MaxDirectionalLights, m.DirectionalCount())

	for i := 0; i < MaxSpotLights+1; i++ {
		m.CreateSpotLight(SpotLight{InnerCutoff: 10, OuterCutoff: 20})
	}
	assert.Equal(t, MaxSpotLights, m.SpotCount())
	assert.Len(t, m.Lights(), MaxDirectionalLights+MaxPointLights+MaxSpotLights)
}

func TestSetUniformsCounts(t *testing.T) {
	dev := gputest.NewRecorder()
	a := newShader(t, dev, "a")
	b := newShader(t, dev, "b")

	m := NewManager()
	m.CreateDirectionalLight(DirectionalLight{Color: mgl32.Vec3{1, 1, 1}, Direction: mgl32.Vec3{0, -1, 0}})
	m.CreatePointLight(point(1))
	m.CreatePointLight(point(2))

	m.SetUniforms([]*shader.Shader{a, b})

	for _, sh := range []*shader.Shader{a, b} {
		for name, want := range map[string]int32{"nrDirLight": 1, "nrPointLight": 2, "nrSpotLight": 0} {
			v, ok := dev.LastUniform(sh.Program(), name)
			require.True(t, ok, "%s on %s", name, sh.Name())
			assert.Equal(t, want, v, "%s on %s", name, sh.Name())
		}
		v, ok := dev.LastUniform(sh.Program(), "pointLights[1].position")
		require.True(t, ok)
		assert.Equal(t, mgl32.Vec3{2, 0, 0}, v)

		_, ok = dev.LastUniform(sh.Program(), "pointLights[2].position")
		assert.False(t, ok, "unused slot written")
	}
	assert.Zero(t, dev.BoundProgram)
}

func TestSetUniformsAfterRejection(t *testing.T) {
	dev := gputest.NewRecorder()
	sh := newShader(t, dev, "a")

	m := NewManager()
	for i := 0; i < MaxPointLights+1; i++ {
		m.CreatePointLight(point(float32(i)))
	}
	m.SetUniforms([]*shader.Shader{sh})

	v, _ := dev.LastUniform(sh.Program(), "nrPointLight")
	assert.Equal(t, int32(MaxPointLights), v)
}

func TestPointLightUniform(t *testing.T) {
	dev := gputest.NewRecorder()
	sh := newShader(t, dev, "a")

	sh.Use()
	point(3).SetUniform(sh, 0)

	got := map[string]any{}
	for _, w := range dev.UniformsFor(sh.Program()) {
		got[w.Name] = w.Value
	}
	assert.Equal(t, map[string]any{
		"pointLights[0].color":       mgl32.Vec3{1, 1, 1},
		"pointLights[0].position":    mgl32.Vec3{3, 0, 0},
		"pointLights[0].attenuation": mgl32.Vec3{1, 0.4, 0.1},
	}, got)
}

func TestSpotLightUniform(t *testing.T) {
	dev := gputest.NewRecorder()
	sh := newShader(t, dev, "a")

	sh.Use()
	SpotLight{
		Color:       mgl32.Vec3{1, 0, 0},
		Position:    mgl32.Vec3{0, 5, 0},
		Direction:   mgl32.Vec3{0, -1, 0},
		InnerCutoff: 60,
		OuterCutoff: 90,
	}.SetUniform(sh, 2)

	inner, ok := dev.LastUniform(sh.Program(), "spotLights[2].innerCutoff")
	require.True(t, ok)
	assert.InDelta(t, 0.5, inner, 1e-6)

	outer, ok := dev.LastUniform(sh.Program(), "spotLights[2].outerCutoff")
	require.True(t, ok)
	assert.InDelta(t, 0, outer, 1e-6)

	dir, ok := dev.LastUniform(sh.Program(), "spotLights[2].direction")
	require.True(t, ok)
	assert.Equal(t, mgl32.Vec3{0, -1, 0}, dir)
}

func TestAttenuation(t *testing.T) {
	a := Attenuation{Constant: 1, Linear: 0.5, Quadratic: 0.25}
	assert.Equal(t, float32(1), a.At(0))
	assert.InDelta(t, 1/1.75, a.At(1), 1e-6)
	assert.InDelta(t, 1.0/3.0, a.At(2), 1e-6)
}

func TestDirectionFromAngles(t *testing.T) {
	tests := []struct {
		name   string
		az, el float32
		want   mgl32.Vec3
	}{
		{"overhead", 0, 90, mgl32.Vec3{0, -1, 0}},
		{"horizon south", 0, 0, mgl32.Vec3{0, 0, -1}},
		{"horizon east", 90, 0, mgl32.Vec3{-1, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DirectionFromAngles(tt.az, tt.el)
			assert.True(t, tt.want.ApproxEqualThreshold(got, 1e-5), "got %v", got)
			assert.InDelta(t, 1, got.Len(), 1e-5)
		})
	}

	d := DirectionFromAngles(30, 45)
	assert.InDelta(t, -math32.Sin(mgl32.DegToRad(45)), d[1], 1e-6)
}

func TestClear(t *testing.T) {
	m := NewManager()
	m.CreatePointLight(point(0))
	m.CreateSpotLight(SpotLight{})
	m.Clear()
	assert.Empty(t, m.Lights())
	assert.True(t, m.CreatePointLight(point(1)))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "directional", KindDirectional.String())
	assert.Equal(t, "point", point(0).Kind().String())
	assert.Equal(t, "spot", SpotLight{}.Kind().String())
	assert.Equal(t, "unknown", Kind(7).String())
}
