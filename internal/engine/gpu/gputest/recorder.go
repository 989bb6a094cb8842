// Package gputest provides an in-memory gpu.Device that records every call.
//
// It is meant for tests of code that talks to the GPU: uniform uploads carry
// the program and the uniform name they resolved from, so assertions can be
// written in terms of names and values instead of raw locations.
package gputest

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/orbitscene/internal/engine/gpu"
)

// Call is one recorded device call.
type Call struct {
	Op   string
	Args []any
}

func (c Call) String() string {
	return fmt.Sprintf("%s%v", c.Op, c.Args)
}

// UniformWrite is one recorded uniform upload.
type UniformWrite struct {
	Program uint32
	Name    string
	Value   any
}

type uniformKey struct {
	program uint32
	name    string
}

// Recorder implements gpu.Device without a GPU.
type Recorder struct {
	// CompileErr, when set, is returned by the next CompileProgram calls.
	CompileErr error
	// Missing lists uniform names that resolve to -1 (inactive uniforms).
	Missing map[string]bool

	Calls    []Call
	Uniforms []UniformWrite
	Draws    []int32

	BoundProgram uint32
	BoundVAO     uint32
	BoundTexture uint32
	ActiveUnit   int32
	// TextureUnits maps a texture unit to the texture bound on it.
	TextureUnits map[int32]uint32

	DepthTest bool
	Culling   bool
	Wireframe bool

	// Deleted counts deletions per handle kind ("program", "vao", "buffer", "texture").
	Deleted map[string][]uint32

	nextHandle uint32
	nextLoc    int32
	locations  map[uniformKey]int32
	names      map[int32]uniformKey
}

var _ gpu.Device = (*Recorder)(nil)

// NewRecorder returns an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{
		Missing:      make(map[string]bool),
		TextureUnits: make(map[int32]uint32),
		Deleted:      make(map[string][]uint32),
		locations:    make(map[uniformKey]int32),
		names:        make(map[int32]uniformKey),
	}
}

func (r *Recorder) record(op string, args ...any) {
	r.Calls = append(r.Calls, Call{Op: op, Args: args})
}

func (r *Recorder) handle() uint32 {
	r.nextHandle++
	return r.nextHandle
}

// Reset forgets recorded calls and uniform writes but keeps handles and bind state.
func (r *Recorder) Reset() {
	r.Calls = nil
	r.Uniforms = nil
	r.Draws = nil
}

// Ops returns the recorded operation names in order.
func (r *Recorder) Ops() []string {
	ops := make([]string, len(r.Calls))
	for i, c := range r.Calls {
		ops[i] = c.Op
	}
	return ops
}

// Count returns how many times op was called.
func (r *Recorder) Count(op string) int {
	n := 0
	for _, c := range r.Calls {
		if c.Op == op {
			n++
		}
	}
	return n
}

// UniformsFor returns the uniform writes made while program was in use.
func (r *Recorder) UniformsFor(program uint32) []UniformWrite {
	var out []UniformWrite
	for _, u := range r.Uniforms {
		if u.Program == program {
			out = append(out, u)
		}
	}
	return out
}

// LastUniform returns the most recent value written to name on program.
func (r *Recorder) LastUniform(program uint32, name string) (any, bool) {
	for i := len(r.Uniforms) - 1; i >= 0; i-- {
		u := r.Uniforms[i]
		if u.Program == program && u.Name == name {
			return u.Value, true
		}
	}
	return nil, false
}

func (r *Recorder) CompileProgram(vertexSrc, fragmentSrc string) (uint32, error) {
	r.record("CompileProgram")
	if r.CompileErr != nil {
		return 0, r.CompileErr
	}
	return r.handle(), nil
}

func (r *Recorder) UseProgram(program uint32) {
	r.record("UseProgram", program)
	r.BoundProgram = program
}

func (r *Recorder) DeleteProgram(program uint32) {
	r.record("DeleteProgram", program)
	r.Deleted["program"] = append(r.Deleted["program"], program)
}

func (r *Recorder) UniformLocation(program uint32, name string) int32 {
	r.record("UniformLocation", program, name)
	if r.Missing[name] {
		return -1
	}
	key := uniformKey{program, name}
	if loc, ok := r.locations[key]; ok {
		return loc
	}
	loc := r.nextLoc
	r.nextLoc++
	r.locations[key] = loc
	r.names[loc] = key
	return loc
}

func (r *Recorder) uniform(op string, location int32, value any) {
	r.record(op, location, value)
	if location < 0 {
		return
	}
	key := r.names[location]
	r.Uniforms = append(r.Uniforms, UniformWrite{Program: r.BoundProgram, Name: key.name, Value: value})
}

func (r *Recorder) Uniform1f(location int32, v float32)         { r.uniform("Uniform1f", location, v) }
func (r *Recorder) Uniform1i(location int32, v int32)           { r.uniform("Uniform1i", location, v) }
func (r *Recorder) Uniform3f(location int32, v mgl32.Vec3)      { r.uniform("Uniform3f", location, v) }
func (r *Recorder) Uniform4f(location int32, v mgl32.Vec4)      { r.uniform("Uniform4f", location, v) }
func (r *Recorder) UniformMatrix3(location int32, m mgl32.Mat3) { r.uniform("UniformMatrix3", location, m) }
func (r *Recorder) UniformMatrix4(location int32, m mgl32.Mat4) { r.uniform("UniformMatrix4", location, m) }

func (r *Recorder) GenVertexArray() uint32 {
	h := r.handle()
	r.record("GenVertexArray", h)
	return h
}

func (r *Recorder) BindVertexArray(vao uint32) {
	r.record("BindVertexArray", vao)
	r.BoundVAO = vao
}

func (r *Recorder) DeleteVertexArray(vao uint32) {
	r.record("DeleteVertexArray", vao)
	r.Deleted["vao"] = append(r.Deleted["vao"], vao)
}

func (r *Recorder) GenBuffer() uint32 {
	h := r.handle()
	r.record("GenBuffer", h)
	return h
}

func (r *Recorder) BindBuffer(target gpu.BufferTarget, buffer uint32) {
	r.record("BindBuffer", target, buffer)
}

func (r *Recorder) BufferFloat32(target gpu.BufferTarget, data []float32) {
	r.record("BufferFloat32", target, len(data))
}

func (r *Recorder) BufferUint32(target gpu.BufferTarget, data []uint32) {
	r.record("BufferUint32", target, len(data))
}

func (r *Recorder) DeleteBuffer(buffer uint32) {
	r.record("DeleteBuffer", buffer)
	r.Deleted["buffer"] = append(r.Deleted["buffer"], buffer)
}

func (r *Recorder) VertexAttrib(index uint32, size int32) {
	r.record("VertexAttrib", index, size)
}

func (r *Recorder) DrawTriangles(indexCount int32) {
	r.record("DrawTriangles", indexCount)
	r.Draws = append(r.Draws, indexCount)
}

func (r *Recorder) GenTexture() uint32 {
	h := r.handle()
	r.record("GenTexture", h)
	return h
}

func (r *Recorder) ActiveTexture(unit int32) {
	r.record("ActiveTexture", unit)
	r.ActiveUnit = unit
}

func (r *Recorder) BindTexture(texture uint32) {
	r.record("BindTexture", texture)
	r.BoundTexture = texture
	r.TextureUnits[r.ActiveUnit] = texture
}

func (r *Recorder) CompressedTexImage2D(format uint32, width, height int32, data []byte) {
	r.record("CompressedTexImage2D", format, width, height, len(data))
}

func (r *Recorder) TexImage2DRGBA(width, height int32, pixels []byte) {
	r.record("TexImage2DRGBA", width, height, len(pixels))
}

func (r *Recorder) TexParameters(p gpu.TextureParams) { r.record("TexParameters", p) }

func (r *Recorder) GenerateMipmap() { r.record("GenerateMipmap") }

func (r *Recorder) DeleteTexture(texture uint32) {
	r.record("DeleteTexture", texture)
	r.Deleted["texture"] = append(r.Deleted["texture"], texture)
}

func (r *Recorder) ClearColor(c mgl32.Vec4) { r.record("ClearColor", c) }

func (r *Recorder) Clear() { r.record("Clear") }

func (r *Recorder) Viewport(width, height int32) { r.record("Viewport", width, height) }

func (r *Recorder) SetDepthTest(enabled bool) {
	r.record("SetDepthTest", enabled)
	r.DepthTest = enabled
}

func (r *Recorder) SetCulling(enabled bool) {
	r.record("SetCulling", enabled)
	r.Culling = enabled
}

func (r *Recorder) SetWireframe(enabled bool) {
	r.record("SetWireframe", enabled)
	r.Wireframe = enabled
}

// ReadPixels returns an opaque mid-gray frame of the requested size.
func (r *Recorder) ReadPixels(width, height int32) []byte {
	r.record("ReadPixels", width, height)
	if width <= 0 || height <= 0 {
		return nil
	}
	pixels := make([]byte, int(width)*int(height)*4)
	for i := range pixels {
		pixels[i] = 128
		if i%4 == 3 {
			pixels[i] = 255
		}
	}
	return pixels
}

func (r *Recorder) Info() (version, renderer string) { return "recorder", "gputest" }
