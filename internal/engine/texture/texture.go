package texture

import (
	"go.uber.org/zap"

	"github.com/Faultbox/orbitscene/internal/assets"
	"github.com/Faultbox/orbitscene/internal/engine/gpu"
	"github.com/Faultbox/orbitscene/internal/logger"
)

// Texture owns one 2D GPU texture.
type Texture struct {
	dev         gpu.Device
	handle      uint32
	width       int32
	height      int32
	placeholder bool
}

// New uploads img verbatim with repeat wrapping, trilinear filtering and
// generated mipmaps.
func New(dev gpu.Device, img *Image) *Texture {
	t := &Texture{dev: dev, width: img.Width, height: img.Height}
	t.handle = dev.GenTexture()
	dev.BindTexture(t.handle)
	dev.CompressedTexImage2D(img.Format, img.Width, img.Height, img.Data)
	dev.TexParameters(gpu.TextureParams{
		Wrap:      gpu.WrapRepeat,
		MinFilter: gpu.FilterLinearMipmapLinear,
		MagFilter: gpu.FilterLinear,
	})
	dev.GenerateMipmap()
	dev.BindTexture(0)
	return t
}

// checker is a 2x2 magenta/black RGBA pattern.
var checker = []byte{
	255, 0, 255, 255, 0, 0, 0, 255,
	0, 0, 0, 255, 255, 0, 255, 255,
}

// Placeholder returns a 2x2 checkerboard texture used when loading fails.
func Placeholder(dev gpu.Device) *Texture {
	t := &Texture{dev: dev, width: 2, height: 2, placeholder: true}
	t.handle = dev.GenTexture()
	dev.BindTexture(t.handle)
	dev.TexImage2DRGBA(2, 2, checker)
	dev.TexParameters(gpu.TextureParams{
		Wrap:      gpu.WrapRepeat,
		MinFilter: gpu.FilterNearest,
		MagFilter: gpu.FilterNearest,
	})
	dev.BindTexture(0)
	return t
}

// Load reads and decodes path through loader. It never fails: on any error
// it logs and returns a placeholder.
func Load(dev gpu.Device, loader assets.Loader, path string) *Texture {
	data, err := loader.Load(path)
	if err != nil {
		logger.Error("couldn't load texture, using placeholder", zap.String("path", path), zap.Error(err))
		return Placeholder(dev)
	}
	img, err := DecodeFile(path, data)
	if err != nil {
		logger.Error("couldn't decode texture, using placeholder", zap.String("path", path), zap.Error(err))
		return Placeholder(dev)
	}

	logger.Debug("texture loaded",
		zap.String("path", path),
		zap.Int32("width", img.Width),
		zap.Int32("height", img.Height),
		zap.Int("bytes", img.Size()))
	return New(dev, img)
}

// Activate binds the texture on the given texture unit.
func (t *Texture) Activate(unit int32) {
	t.dev.ActiveTexture(unit)
	t.dev.BindTexture(t.handle)
}

// Handle returns the GPU handle, 0 after Destroy.
func (t *Texture) Handle() uint32 { return t.handle }

// Width returns the base level width in pixels.
func (t *Texture) Width() int32 { return t.width }

// Height returns the base level height in pixels.
func (t *Texture) Height() int32 { return t.height }

// IsPlaceholder reports whether the texture is the load-failure fallback.
func (t *Texture) IsPlaceholder() bool { return t.placeholder }

// Destroy releases the GPU texture. Safe to call more than once.
func (t *Texture) Destroy() {
	if t.handle == 0 {
		return
	}
	t.dev.DeleteTexture(t.handle)
	logger.Debug("texture deleted", zap.Uint32("handle", t.handle))
	t.handle = 0
}
