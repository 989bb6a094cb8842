package opengl

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// ClearColor sets the color used by Clear.
func (d *Device) ClearColor(c mgl32.Vec4) { gl.ClearColor(c[0], c[1], c[2], c[3]) }

// Clear clears the color and depth buffers.
func (d *Device) Clear() { gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT) }

// Viewport sets the viewport from the origin.
func (d *Device) Viewport(width, height int32) { gl.Viewport(0, 0, width, height) }

// SetDepthTest toggles depth testing with a less-than compare.
func (d *Device) SetDepthTest(enabled bool) {
	if enabled {
		gl.Enable(gl.DEPTH_TEST)
		gl.DepthFunc(gl.LESS)
		return
	}
	gl.Disable(gl.DEPTH_TEST)
}

// SetCulling toggles back-face culling; counter-clockwise triangles face front.
func (d *Device) SetCulling(enabled bool) {
	if enabled {
		gl.Enable(gl.CULL_FACE)
		gl.CullFace(gl.BACK)
		gl.FrontFace(gl.CCW)
		return
	}
	gl.Disable(gl.CULL_FACE)
}

// SetWireframe switches between line and fill polygon modes.
func (d *Device) SetWireframe(enabled bool) {
	if enabled {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
		return
	}
	gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
}

// ReadPixels reads the back buffer as tightly packed RGBA rows, bottom row first.
func (d *Device) ReadPixels(width, height int32) []byte {
	if width <= 0 || height <= 0 {
		return nil
	}
	pixels := make([]byte, int(width)*int(height)*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, width, height, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels
}
