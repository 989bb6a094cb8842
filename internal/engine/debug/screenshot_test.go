package debug

import (
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedCapture(dir string) *ScreenshotCapture {
	sc := NewScreenshotCapture(dir, "shot")
	sc.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 6e6, time.UTC) }
	return sc
}

func TestGenerateFilename(t *testing.T) {
	sc := fixedCapture("out")
	assert.Equal(t, filepath.Join("out", "shot_2026-01-02_03-04-05.006.png"), sc.GenerateFilename())

	sc.SetOutputDir("")
	assert.Equal(t, "shot_2026-01-02_03-04-05.006.png", sc.GenerateFilename())
}

func TestCaptureFromPixelsFlips(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "screens")
	sc := fixedCapture(dir)

	// 1x2: bottom row red, top row blue (framebuffer order).
	pixels := []byte{
		255, 0, 0, 255,
		0, 0, 255, 255,
	}
	name, err := sc.CaptureFromPixels(pixels, 1, 2)
	require.NoError(t, err)

	f, err := os.Open(name)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)

	assert.Equal(t, color.RGBA{0, 0, 255, 255}, color.RGBAModel.Convert(img.At(0, 0)))
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, color.RGBAModel.Convert(img.At(0, 1)))
}

func TestCaptureFromPixelsSizeMismatch(t *testing.T) {
	sc := fixedCapture(t.TempDir())

	_, err := sc.CaptureFromPixels(make([]byte, 7), 1, 2)
	assert.Error(t, err)
	_, err = sc.CaptureFromPixels(nil, 0, 0)
	assert.Error(t, err)
}
