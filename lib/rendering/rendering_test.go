package rendering

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToNRGBA(t *testing.T) {
	t.Run("packed nrgba passes through", func(t *testing.T) {
		img := image.NewNRGBA(image.Rect(0, 0, 4, 2))
		assert.Same(t, img, ToNRGBA(img))
	})

	t.Run("sub image is repacked", func(t *testing.T) {
		img := Checkerboard(8, 2, color.White, color.Black)
		sub := img.SubImage(image.Rect(4, 0, 8, 4))

		rgba := ToNRGBA(sub)
		assert.Equal(t, image.Rect(0, 0, 4, 4), rgba.Rect)
		assert.Equal(t, 16, rgba.Stride)
		assert.Equal(t, color.NRGBA{0, 0, 0, 255}, rgba.NRGBAAt(0, 0))
	})

	t.Run("gray is expanded", func(t *testing.T) {
		img := image.NewGray(image.Rect(0, 0, 2, 2))
		img.SetGray(1, 1, color.Gray{Y: 200})

		rgba := ToNRGBA(img)
		assert.Len(t, rgba.Pix, 2*2*4)
		assert.Equal(t, color.NRGBA{200, 200, 200, 255}, rgba.NRGBAAt(1, 1))
	})
}

func TestCheckerboard(t *testing.T) {
	a := color.NRGBA{255, 0, 0, 255}
	b := color.NRGBA{0, 0, 255, 255}
	img := Checkerboard(64, 8, a, b)

	assert.Equal(t, a, img.NRGBAAt(0, 0))
	assert.Equal(t, b, img.NRGBAAt(8, 0))
	assert.Equal(t, b, img.NRGBAAt(0, 8))
	assert.Equal(t, a, img.NRGBAAt(8, 8))
	assert.Equal(t, a, img.NRGBAAt(63, 63))
}

func TestDecodeImageFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tex.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, Checkerboard(4, 2, color.White, color.Black)))
	require.NoError(t, f.Close())

	img, err := DecodeImageFile(path)
	require.NoError(t, err)
	assert.Equal(t, 4, img.Bounds().Dx())

	_, err = DecodeImageFile(filepath.Join(t.TempDir(), "missing.png"))
	assert.Error(t, err)

	garbage := filepath.Join(t.TempDir(), "garbage.png")
	require.NoError(t, os.WriteFile(garbage, []byte("not an image"), 0o644))
	_, err = DecodeImageFile(garbage)
	assert.ErrorContains(t, err, "could not decode")
}

func TestFramebufferStatusError(t *testing.T) {
	assert.NoError(t, FramebufferStatusError(gl.FRAMEBUFFER_COMPLETE))
	assert.ErrorContains(t, FramebufferStatusError(gl.FRAMEBUFFER_UNSUPPORTED), "unsupported")
	assert.ErrorContains(t, FramebufferStatusError(gl.FRAMEBUFFER_INCOMPLETE_MISSING_ATTACHMENT), "missing attachment")
	assert.ErrorContains(t, FramebufferStatusError(0x1234), "0x1234")
}
