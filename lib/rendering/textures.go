package rendering

import (
	"fmt"
	"image"
	"image/color"

	"github.com/go-gl/gl/v3.3-core/gl"
)

// LoadTexture decodes an image file into a mipmapped, repeating 2D
// texture.
func LoadTexture(path string) (uint32, error) {
	img, err := DecodeImageFile(path)
	if err != nil {
		return 0, err
	}
	return NewTextureFromImage(img), nil
}

func NewTextureFromImage(img image.Image) uint32 {
	rgba := ToNRGBA(img)
	width := int32(rgba.Rect.Dx())
	height := int32(rgba.Rect.Dy())

	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)
	gl.TexImage2D(
		gl.TEXTURE_2D,
		0,
		gl.RGBA8,
		width,
		height,
		0,
		gl.RGBA,
		gl.UNSIGNED_BYTE,
		gl.Ptr(rgba.Pix),
	)
	gl.GenerateMipmap(gl.TEXTURE_2D)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	TextureUploadCounter += uint64(len(rgba.Pix))
	return id
}

// LoadCubemap loads six face images in GL target order
// (+X, -X, +Y, -Y, +Z, -Z) into a cubemap texture.
func LoadCubemap(faces [6]string) (uint32, error) {
	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, id)

	for i, face := range faces {
		img, err := DecodeImageFile(face)
		if err != nil {
			gl.DeleteTextures(1, &id)
			return 0, fmt.Errorf("cubemap face %d: %w", i, err)
		}
		rgba := ToNRGBA(img)
		gl.TexImage2D(
			gl.TEXTURE_CUBE_MAP_POSITIVE_X+uint32(i),
			0,
			gl.RGBA8,
			int32(rgba.Rect.Dx()),
			int32(rgba.Rect.Dy()),
			0,
			gl.RGBA,
			gl.UNSIGNED_BYTE,
			gl.Ptr(rgba.Pix),
		)
		TextureUploadCounter += uint64(len(rgba.Pix))
	}

	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_R, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	return id, nil
}

func DeleteTexture(id uint32) {
	gl.DeleteTextures(1, &id)
}

// LoadTextureOrCheckerboard loads path, or a generated checkerboard when
// path is empty.
func LoadTextureOrCheckerboard(path string) (uint32, error) {
	if path == "" {
		img := Checkerboard(256, 8, color.NRGBA{0xe0, 0xe0, 0xe0, 0xff}, color.NRGBA{0x40, 0x40, 0x60, 0xff})
		return NewTextureFromImage(img), nil
	}
	return LoadTexture(path)
}
