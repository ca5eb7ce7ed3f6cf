// Package export renders the graphics of a decoded memory image as PNG images.
package export

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	"github.com/retroenv/p8cart/internal/memory"
	"golang.org/x/image/draw"
)

// ErrInvalidScale is returned for scale factors below 1.
var ErrInvalidScale = errors.New("scale factor must be at least 1")

// Palette contains the 16 colors of the console.
var Palette = color.Palette{
	color.RGBA{0, 0, 0, 255},
	color.RGBA{29, 43, 83, 255},
	color.RGBA{126, 37, 83, 255},
	color.RGBA{0, 135, 81, 255},
	color.RGBA{171, 82, 54, 255},
	color.RGBA{95, 87, 79, 255},
	color.RGBA{194, 195, 199, 255},
	color.RGBA{255, 241, 232, 255},
	color.RGBA{255, 0, 77, 255},
	color.RGBA{255, 163, 0, 255},
	color.RGBA{255, 236, 39, 255},
	color.RGBA{0, 228, 54, 255},
	color.RGBA{41, 173, 255, 255},
	color.RGBA{131, 118, 156, 255},
	color.RGBA{255, 119, 168, 255},
	color.RGBA{255, 204, 170, 255},
}

// SpriteSheetImage returns the sprite sheet as paletted image.
func SpriteSheetImage(img *memory.Image) *image.Paletted {
	dst := image.NewPaletted(image.Rect(0, 0, memory.SpriteSheetWidth, memory.SpriteSheetHeight), Palette)
	for y := range memory.SpriteSheetHeight {
		for x := range memory.SpriteSheetWidth {
			dst.SetColorIndex(x, y, img.Pixel(x, y))
		}
	}
	return dst
}

// MapImage returns the tile map rendered with the sprites of the sprite sheet.
func MapImage(img *memory.Image) *image.Paletted {
	const spritesPerRow = memory.SpriteSheetWidth / memory.SpriteSize

	dst := image.NewPaletted(image.Rect(0, 0,
		memory.MapWidth*memory.SpriteSize, memory.MapHeight*memory.SpriteSize), Palette)

	for cy := range memory.MapHeight {
		for cx := range memory.MapWidth {
			sprite := int(img.MapCell(cx, cy))
			sx := sprite % spritesPerRow * memory.SpriteSize
			sy := sprite / spritesPerRow * memory.SpriteSize

			for y := range memory.SpriteSize {
				for x := range memory.SpriteSize {
					dst.SetColorIndex(cx*memory.SpriteSize+x, cy*memory.SpriteSize+y, img.Pixel(sx+x, sy+y))
				}
			}
		}
	}
	return dst
}

// WritePNG encodes the image as PNG, scaled up by the given integer factor.
func WritePNG(w io.Writer, src *image.Paletted, scale int) error {
	if scale < 1 {
		return ErrInvalidScale
	}

	out := src
	if scale > 1 {
		b := src.Bounds()
		out = image.NewPaletted(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale), src.Palette)
		draw.NearestNeighbor.Scale(out, out.Bounds(), src, b, draw.Src, nil)
	}

	if err := png.Encode(w, out); err != nil {
		return fmt.Errorf("encoding png: %w", err)
	}
	return nil
}

// WriteFile writes the image as scaled PNG file.
func WriteFile(path string, src *image.Paletted, scale int) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file %s: %w", path, err)
	}

	if err := WritePNG(file, src, scale); err != nil {
		_ = file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("closing output file %s: %w", path, err)
	}
	return nil
}
