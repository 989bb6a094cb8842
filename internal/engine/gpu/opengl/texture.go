package opengl

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/orbitscene/internal/engine/gpu"
)

// GenTexture creates a texture object.
func (d *Device) GenTexture() uint32 {
	var tex uint32
	gl.GenTextures(1, &tex)
	return tex
}

// ActiveTexture selects the texture unit.
func (d *Device) ActiveTexture(unit int32) { gl.ActiveTexture(gl.TEXTURE0 + uint32(unit)) }

// BindTexture binds a 2D texture on the active unit.
func (d *Device) BindTexture(texture uint32) { gl.BindTexture(gl.TEXTURE_2D, texture) }

// CompressedTexImage2D uploads a pre-compressed base level verbatim.
func (d *Device) CompressedTexImage2D(format uint32, width, height int32, data []byte) {
	if len(data) == 0 {
		return
	}
	gl.CompressedTexImage2D(gl.TEXTURE_2D, 0, format, width, height, 0, int32(len(data)), gl.Ptr(data))
}

// TexImage2DRGBA uploads an uncompressed RGBA base level.
func (d *Device) TexImage2DRGBA(width, height int32, pixels []byte) {
	if len(pixels) == 0 {
		return
	}
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, width, height, 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
}

// TexParameters sets wrapping and filtering on the bound texture.
func (d *Device) TexParameters(p gpu.TextureParams) {
	wrap := int32(gl.REPEAT)
	if p.Wrap == gpu.WrapClampToEdge {
		wrap = gl.CLAMP_TO_EDGE
	}
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, wrap)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, wrap)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, glFilter(p.MinFilter))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, glFilter(p.MagFilter))
}

func glFilter(f gpu.Filter) int32 {
	switch f {
	case gpu.FilterNearest:
		return gl.NEAREST
	case gpu.FilterLinearMipmapLinear:
		return gl.LINEAR_MIPMAP_LINEAR
	default:
		return gl.LINEAR
	}
}

// GenerateMipmap builds the mip chain of the bound texture.
func (d *Device) GenerateMipmap() { gl.GenerateMipmap(gl.TEXTURE_2D) }

// DeleteTexture deletes a texture object.
func (d *Device) DeleteTexture(texture uint32) { gl.DeleteTextures(1, &texture) }
