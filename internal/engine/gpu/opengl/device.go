// Package opengl implements gpu.Device on top of OpenGL 4.1 core.
package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/orbitscene/internal/engine/gpu"
	"github.com/Faultbox/orbitscene/internal/logger"
)

// Device is the OpenGL graphics device.
type Device struct{}

var _ gpu.Device = (*Device)(nil)

// New loads the OpenGL function pointers.
// IMPORTANT: Must be called AFTER the OpenGL context is created and made current!
func New() (*Device, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	d := &Device{}
	version, renderer := d.Info()
	logger.Info("OpenGL initialized",
		zap.String("version", version),
		zap.String("renderer", renderer),
	)
	return d, nil
}

// Info returns the driver version and renderer strings.
func (d *Device) Info() (version, renderer string) {
	return gl.GoStr(gl.GetString(gl.VERSION)), gl.GoStr(gl.GetString(gl.RENDERER))
}

// CompileProgram compiles vertex and fragment shaders and links them into a program.
func (d *Device) CompileProgram(vertexSrc, fragmentSrc string) (uint32, error) {
	vertShader, err := compileShader(vertexSrc, gl.VERTEX_SHADER, "vertex")
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(vertShader)

	fragShader, err := compileShader(fragmentSrc, gl.FRAGMENT_SHADER, "fragment")
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(fragShader)

	program := gl.CreateProgram()
	gl.AttachShader(program, vertShader)
	gl.AttachShader(program, fragShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
		log := infoLog(logLen, func(buf *uint8) { gl.GetProgramInfoLog(program, logLen, nil, buf) })
		gl.DeleteProgram(program)
		return 0, &gpu.BuildError{Stage: "link", Log: log}
	}

	return program, nil
}

// compileShader compiles a single shader of the given type.
func compileShader(source string, shaderType uint32, stage string) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		log := infoLog(logLen, func(buf *uint8) { gl.GetShaderInfoLog(shader, logLen, nil, buf) })
		gl.DeleteShader(shader)
		return 0, &gpu.BuildError{Stage: stage, Log: log}
	}

	return shader, nil
}

func infoLog(length int32, read func(*uint8)) string {
	if length <= 0 {
		return ""
	}
	buf := make([]byte, length)
	read(&buf[0])
	return gl.GoStr(&buf[0])
}

// UseProgram binds program, 0 unbinds.
func (d *Device) UseProgram(program uint32) { gl.UseProgram(program) }

// DeleteProgram deletes a linked program.
func (d *Device) DeleteProgram(program uint32) { gl.DeleteProgram(program) }

// UniformLocation returns the location of name, or -1.
func (d *Device) UniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

// Uniform1f sets a float uniform.
func (d *Device) Uniform1f(location int32, v float32) { gl.Uniform1f(location, v) }

// Uniform1i sets an int uniform.
func (d *Device) Uniform1i(location int32, v int32) { gl.Uniform1i(location, v) }

// Uniform3f sets a vec3 uniform.
func (d *Device) Uniform3f(location int32, v mgl32.Vec3) { gl.Uniform3f(location, v[0], v[1], v[2]) }

// Uniform4f sets a vec4 uniform.
func (d *Device) Uniform4f(location int32, v mgl32.Vec4) {
	gl.Uniform4f(location, v[0], v[1], v[2], v[3])
}

// UniformMatrix3 sets a mat3 uniform.
func (d *Device) UniformMatrix3(location int32, m mgl32.Mat3) {
	gl.UniformMatrix3fv(location, 1, false, &m[0])
}

// UniformMatrix4 sets a mat4 uniform.
func (d *Device) UniformMatrix4(location int32, m mgl32.Mat4) {
	gl.UniformMatrix4fv(location, 1, false, &m[0])
}
