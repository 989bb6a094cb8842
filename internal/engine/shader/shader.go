// Package shader wraps a linked GPU program with named uniform uploads.
package shader

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/orbitscene/internal/engine/gpu"
	"github.com/Faultbox/orbitscene/internal/logger"
)

var (
	// ErrCompile is returned when a shader stage fails to compile.
	ErrCompile = errors.New("shader compile failed")
	// ErrLink is returned when the program fails to link.
	ErrLink = errors.New("shader link failed")
)

// Shader is one compiled and linked program.
//
// Uniform locations are looked up once per name and cached, including
// names the program does not expose (location -1). Writes to such names
// are dropped.
type Shader struct {
	dev       gpu.Device
	name      string
	program   uint32
	locations map[string]int32
}

// New compiles and links vertexSrc and fragmentSrc.
func New(dev gpu.Device, name, vertexSrc, fragmentSrc string) (*Shader, error) {
	program, err := dev.CompileProgram(vertexSrc, fragmentSrc)
	if err != nil {
		return nil, fmt.Errorf("shader %q: %w", name, classify(err))
	}

	logger.Debug("shader program linked", zap.String("shader", name), zap.Uint32("program", program))

	return &Shader{
		dev:       dev,
		name:      name,
		program:   program,
		locations: make(map[string]int32),
	}, nil
}

func classify(err error) error {
	var build *gpu.BuildError
	if errors.As(err, &build) {
		if build.Stage == "link" {
			return fmt.Errorf("%w: %w", ErrLink, err)
		}
		return fmt.Errorf("%w: %w", ErrCompile, err)
	}
	return err
}

// Name returns the name the shader was created with.
func (s *Shader) Name() string { return s.name }

// Program returns the program handle, 0 after Destroy.
func (s *Shader) Program() uint32 { return s.program }

// Use binds the program as current.
func (s *Shader) Use() {
	s.dev.UseProgram(s.program)
}

// Unuse binds no program.
func (s *Shader) Unuse() {
	s.dev.UseProgram(0)
}

func (s *Shader) location(name string) int32 {
	if loc, ok := s.locations[name]; ok {
		return loc
	}
	loc := s.dev.UniformLocation(s.program, name)
	s.locations[name] = loc
	if loc < 0 {
		logger.Debug("uniform not found", zap.String("shader", s.name), zap.String("uniform", name))
	}
	return loc
}

// Has reports whether the program exposes an active uniform called name.
func (s *Shader) Has(name string) bool {
	return s.location(name) >= 0
}

// The setters write to the program currently in use; callers bind with Use first.

// SetFloat writes a float uniform.
func (s *Shader) SetFloat(name string, v float32) {
	if loc := s.location(name); loc >= 0 {
		s.dev.Uniform1f(loc, v)
	}
}

// SetInt writes an int or sampler uniform.
func (s *Shader) SetInt(name string, v int32) {
	if loc := s.location(name); loc >= 0 {
		s.dev.Uniform1i(loc, v)
	}
}

// SetVec3 writes a vec3 uniform.
func (s *Shader) SetVec3(name string, v mgl32.Vec3) {
	if loc := s.location(name); loc >= 0 {
		s.dev.Uniform3f(loc, v)
	}
}

// SetVec4 writes a vec4 uniform.
func (s *Shader) SetVec4(name string, v mgl32.Vec4) {
	if loc := s.location(name); loc >= 0 {
		s.dev.Uniform4f(loc, v)
	}
}

// SetMat3 writes a mat3 uniform.
func (s *Shader) SetMat3(name string, m mgl32.Mat3) {
	if loc := s.location(name); loc >= 0 {
		s.dev.UniformMatrix3(loc, m)
	}
}

// SetMat4 writes a mat4 uniform.
func (s *Shader) SetMat4(name string, m mgl32.Mat4) {
	if loc := s.location(name); loc >= 0 {
		s.dev.UniformMatrix4(loc, m)
	}
}

// Destroy deletes the program. Safe to call more than once.
func (s *Shader) Destroy() {
	if s.program == 0 {
		return
	}
	s.dev.DeleteProgram(s.program)
	logger.Debug("shader program deleted", zap.String("shader", s.name), zap.Uint32("program", s.program))
	s.program = 0
	s.locations = make(map[string]int32)
}
