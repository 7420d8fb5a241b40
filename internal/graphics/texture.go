package graphics

import (
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"os"

	"github.com/go-gl/gl/v4.1-core/gl"
	"golang.org/x/image/draw"
)

// TextureSize is the edge length every block texture is resampled to.
const TextureSize = 16

// LoadBlockImage decodes the image at path and resamples it to a
// TextureSize x TextureSize RGBA image.
func LoadBlockImage(path string) (*image.RGBA, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open texture file: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode texture %s: %w", path, err)
	}
	return resampleBlockImage(img), nil
}

// resampleBlockImage scales src to the block texture size with nearest-neighbor
// filtering so pixel art stays crisp.
func resampleBlockImage(src image.Image) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, TextureSize, TextureSize))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// FallbackBlockImage is a two-tone dirt-like checker used when no texture file is available.
func FallbackBlockImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, TextureSize, TextureSize))
	light := color.RGBA{134, 96, 67, 255}
	dark := color.RGBA{108, 76, 52, 255}
	for y := 0; y < TextureSize; y++ {
		for x := 0; x < TextureSize; x++ {
			c := light
			if (x/4+y/4)%2 == 1 {
				c = dark
			}
			img.SetRGBA(x, y, c)
		}
	}
	// darker rim so adjacent faces stay distinguishable without lighting
	rim := color.RGBA{70, 50, 34, 255}
	for i := 0; i < TextureSize; i++ {
		img.SetRGBA(i, 0, rim)
		img.SetRGBA(i, TextureSize-1, rim)
		img.SetRGBA(0, i, rim)
		img.SetRGBA(TextureSize-1, i, rim)
	}
	return img
}

// UploadTexture creates a GL 2D texture from rgba.
func UploadTexture(rgba *image.RGBA) uint32 {
	var texture uint32
	gl.GenTextures(1, &texture)
	gl.BindTexture(gl.TEXTURE_2D, texture)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)

	gl.TexImage2D(
		gl.TEXTURE_2D,
		0,
		gl.RGBA,
		int32(rgba.Rect.Size().X),
		int32(rgba.Rect.Size().Y),
		0,
		gl.RGBA,
		gl.UNSIGNED_BYTE,
		gl.Ptr(rgba.Pix),
	)

	gl.BindTexture(gl.TEXTURE_2D, 0)
	return texture
}
