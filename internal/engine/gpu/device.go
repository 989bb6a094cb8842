// Package gpu defines the graphics device the rendering core draws through.
//
// The core (shader, texture, geometry, material, lighting, renderer) never
// calls a graphics API directly; it is handed a Device. The OpenGL
// implementation lives in gpu/opengl, an in-memory recorder for tests in
// gpu/gputest. All handles are plain uint32 values where 0 means "none", and
// every method must be called from the thread that owns the context.
package gpu

import "github.com/go-gl/mathgl/mgl32"

// BufferTarget selects the binding point of a buffer object.
type BufferTarget int

const (
	ArrayBuffer BufferTarget = iota
	ElementArrayBuffer
)

func (t BufferTarget) String() string {
	switch t {
	case ArrayBuffer:
		return "array"
	case ElementArrayBuffer:
		return "element"
	default:
		return "unknown"
	}
}

// Wrap is a texture coordinate wrap mode.
type Wrap int

const (
	WrapRepeat Wrap = iota
	WrapClampToEdge
)

// Filter is a texture sampling filter.
type Filter int

const (
	FilterNearest Filter = iota
	FilterLinear
	FilterLinearMipmapLinear
)

// TextureParams configures sampling of the currently bound 2D texture.
type TextureParams struct {
	Wrap      Wrap
	MinFilter Filter
	MagFilter Filter
}

// Device is the minimal graphics API surface used by the rendering core.
type Device interface {
	// Programs and uniforms. Uniform uploads apply to the program in use.
	CompileProgram(vertexSrc, fragmentSrc string) (uint32, error)
	UseProgram(program uint32)
	DeleteProgram(program uint32)
	UniformLocation(program uint32, name string) int32
	Uniform1f(location int32, v float32)
	Uniform1i(location int32, v int32)
	Uniform3f(location int32, v mgl32.Vec3)
	Uniform4f(location int32, v mgl32.Vec4)
	UniformMatrix3(location int32, m mgl32.Mat3)
	UniformMatrix4(location int32, m mgl32.Mat4)

	// Vertex arrays and buffers.
	GenVertexArray() uint32
	BindVertexArray(vao uint32)
	DeleteVertexArray(vao uint32)
	GenBuffer() uint32
	BindBuffer(target BufferTarget, buffer uint32)
	BufferFloat32(target BufferTarget, data []float32)
	BufferUint32(target BufferTarget, data []uint32)
	DeleteBuffer(buffer uint32)
	// VertexAttrib enables attribute index and points it at the bound array
	// buffer as tightly packed float32 tuples of the given size.
	VertexAttrib(index uint32, size int32)
	// DrawTriangles issues an indexed triangle-list draw with uint32 indices.
	DrawTriangles(indexCount int32)

	// Textures (2D only).
	GenTexture() uint32
	ActiveTexture(unit int32)
	BindTexture(texture uint32)
	CompressedTexImage2D(format uint32, width, height int32, data []byte)
	TexImage2DRGBA(width, height int32, pixels []byte)
	TexParameters(p TextureParams)
	GenerateMipmap()
	DeleteTexture(texture uint32)

	// Frame state.
	ClearColor(c mgl32.Vec4)
	Clear()
	Viewport(width, height int32)
	SetDepthTest(enabled bool)
	SetCulling(enabled bool)
	SetWireframe(enabled bool)
	ReadPixels(width, height int32) []byte
	Info() (version, renderer string)
}
