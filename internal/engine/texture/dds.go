// Package texture decodes compressed image containers and owns 2D GPU textures.
package texture

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/pierrec/lz4/v4"
)

// Compressed internal formats (EXT_texture_compression_s3tc).
const (
	FormatDXT1 uint32 = 0x83F1
	FormatDXT3 uint32 = 0x83F2
	FormatDXT5 uint32 = 0x83F3
)

var (
	// ErrNotDDS is returned when the data does not start with a DDS header.
	ErrNotDDS = errors.New("not a DDS file")
	// ErrUnsupportedFormat is returned for pixel formats other than DXT1/3/5.
	ErrUnsupportedFormat = errors.New("unsupported DDS pixel format")
	// ErrTruncated is returned when the pixel data is shorter than the header claims.
	ErrTruncated = errors.New("DDS data truncated")
)

const (
	ddsMagic      = "DDS "
	ddsHeaderSize = 124
	ddsDataOffset = 4 + ddsHeaderSize

	// MaxDimension is the largest width or height Decode accepts.
	MaxDimension = 16384
)

// Image is the base level of a block-compressed texture.
type Image struct {
	Format   uint32
	Width    int32
	Height   int32
	MipCount uint32 // as declared by the container; only the base level is kept
	Data     []byte
}

// Size returns the byte size of the base level.
func (img *Image) Size() int { return len(img.Data) }

// Decode parses a DDS container.
func Decode(data []byte) (*Image, error) {
	if len(data) < ddsDataOffset || string(data[:4]) != ddsMagic {
		return nil, ErrNotDDS
	}
	le := binary.LittleEndian
	if le.Uint32(data[4:]) != ddsHeaderSize {
		return nil, fmt.Errorf("%w: header size %d", ErrNotDDS, le.Uint32(data[4:]))
	}

	height := le.Uint32(data[12:])
	width := le.Uint32(data[16:])
	mips := le.Uint32(data[28:])
	fourCC := string(data[84:88])

	var format uint32
	blockSize := 16
	switch fourCC {
	case "DXT1":
		format, blockSize = FormatDXT1, 8
	case "DXT3":
		format = FormatDXT3
	case "DXT5":
		format = FormatDXT5
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, fourCC)
	}
	if width == 0 || height == 0 || width > MaxDimension || height > MaxDimension {
		return nil, fmt.Errorf("%w: %dx%d", ErrNotDDS, width, height)
	}

	size := blocks(width) * blocks(height) * blockSize
	payload := data[ddsDataOffset:]
	if len(payload) < size {
		return nil, fmt.Errorf("%w: need %d bytes, have %d", ErrTruncated, size, len(payload))
	}

	return &Image{
		Format:   format,
		Width:    int32(width),
		Height:   int32(height),
		MipCount: mips,
		Data:     payload[:size:size],
	}, nil
}

// blocks returns the number of 4x4 blocks covering n pixels.
func blocks(n uint32) int {
	return max(1, (int(n)+3)/4)
}

// DecodeFile decodes name's contents, inflating lz4 frames for ".lz4" names.
func DecodeFile(name string, data []byte) (*Image, error) {
	if strings.HasSuffix(strings.ToLower(name), ".lz4") {
		raw, err := io.ReadAll(lz4.NewReader(bytes.NewReader(data)))
		if err != nil {
			return nil, fmt.Errorf("inflating %s: %w", name, err)
		}
		data = raw
	}
	img, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", name, err)
	}
	return img, nil
}
