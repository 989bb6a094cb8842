package opengl

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/orbitscene/internal/engine/gpu"
)

func glTarget(t gpu.BufferTarget) uint32 {
	if t == gpu.ElementArrayBuffer {
		return gl.ELEMENT_ARRAY_BUFFER
	}
	return gl.ARRAY_BUFFER
}

// GenVertexArray creates a vertex array object.
func (d *Device) GenVertexArray() uint32 {
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	return vao
}

// BindVertexArray binds vao, 0 unbinds.
func (d *Device) BindVertexArray(vao uint32) { gl.BindVertexArray(vao) }

// DeleteVertexArray deletes a vertex array object.
func (d *Device) DeleteVertexArray(vao uint32) { gl.DeleteVertexArrays(1, &vao) }

// GenBuffer creates a buffer object.
func (d *Device) GenBuffer() uint32 {
	var buf uint32
	gl.GenBuffers(1, &buf)
	return buf
}

// BindBuffer binds buffer to target.
func (d *Device) BindBuffer(target gpu.BufferTarget, buffer uint32) {
	gl.BindBuffer(glTarget(target), buffer)
}

// BufferFloat32 uploads static float data to the buffer bound at target.
func (d *Device) BufferFloat32(target gpu.BufferTarget, data []float32) {
	var ptr unsafe.Pointer
	if len(data) > 0 {
		ptr = gl.Ptr(data)
	}
	gl.BufferData(glTarget(target), len(data)*4, ptr, gl.STATIC_DRAW)
}

// BufferUint32 uploads static index data to the buffer bound at target.
func (d *Device) BufferUint32(target gpu.BufferTarget, data []uint32) {
	var ptr unsafe.Pointer
	if len(data) > 0 {
		ptr = gl.Ptr(data)
	}
	gl.BufferData(glTarget(target), len(data)*4, ptr, gl.STATIC_DRAW)
}

// DeleteBuffer deletes a buffer object.
func (d *Device) DeleteBuffer(buffer uint32) { gl.DeleteBuffers(1, &buffer) }

// VertexAttrib enables a tightly packed float attribute from the bound array buffer.
func (d *Device) VertexAttrib(index uint32, size int32) {
	gl.EnableVertexAttribArray(index)
	gl.VertexAttribPointer(index, size, gl.FLOAT, false, 0, nil)
}

// DrawTriangles draws indexed triangles from the bound vertex array.
func (d *Device) DrawTriangles(indexCount int32) {
	gl.DrawElements(gl.TRIANGLES, indexCount, gl.UNSIGNED_INT, nil)
}
