// Package asset decodes the images the game draws and scales them to the
// size of one grid cell.
package asset

import (
	"fmt"
	"image"
	_ "image/png"
	"io"
	"os"

	_ "golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// LoadSprite reads an image file and returns it scaled to size x size.
func LoadSprite(path string, size int) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open sprite: %w", err)
	}
	defer f.Close()

	sprite, err := DecodeSprite(f, size)
	if err != nil {
		return nil, fmt.Errorf("sprite %s: %w", path, err)
	}
	return sprite, nil
}

// DecodeSprite decodes a PNG, BMP or WebP image and scales it to
// size x size with Catmull-Rom resampling.
func DecodeSprite(r io.Reader, size int) (*image.RGBA, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid sprite size %d", size)
	}
	src, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if src.Bounds().Empty() {
		return nil, fmt.Errorf("empty image")
	}

	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst, nil
}
