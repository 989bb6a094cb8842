package shader

import (
	_ "embed"

	"github.com/Faultbox/orbitscene/internal/engine/gpu"
)

// Source is a named vertex/fragment pair.
type Source struct {
	Name     string
	Vertex   string
	Fragment string
}

// Build compiles the source on dev.
func (src Source) Build(dev gpu.Device) (*Shader, error) {
	return New(dev, src.Name, src.Vertex, src.Fragment)
}

// MeshVertexShader transforms position/normal/uv (locations 0/1/2) by
// modelMatrix, normalMatrix and viewProjMatrix.
//
//go:embed glsl/mesh.vert
var MeshVertexShader string

//go:embed glsl/color.frag
var colorFragment string

//go:embed glsl/phong.frag
var phongFragment string

//go:embed glsl/textured.frag
var texturedFragment string

//go:embed glsl/pbr.frag
var pbrFragment string

// Built-in programs. All of them share MeshVertexShader.
var (
	// Color draws materialColor unlit.
	Color = Source{Name: "color", Vertex: MeshVertexShader, Fragment: colorFragment}
	// Phong shades vec3 ambient/diffuse/specular coefficients (Basic, Lambert).
	Phong = Source{Name: "phong", Vertex: MeshVertexShader, Fragment: phongFragment}
	// Textured shades scalar coefficients over a diffuse texture.
	Textured = Source{Name: "textured", Vertex: MeshVertexShader, Fragment: texturedFragment}
	// PBR shades albedo/roughness/metalness with a GGX BRDF.
	PBR = Source{Name: "pbr", Vertex: MeshVertexShader, Fragment: pbrFragment}
)
