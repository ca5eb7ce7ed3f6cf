package export

import (
	"bytes"
	"errors"
	"image/png"
	"path/filepath"
	"testing"

	"github.com/retroenv/p8cart/internal/memory"
	"github.com/retroenv/retrogolib/assert"
)

func testImage() *memory.Image {
	img := memory.New()
	img.SetPixelPair(0, 0x87) // pixel 0 = 7, pixel 1 = 8
	img.SetPixelPair(4, 0x0c) // sprite 1, pixel 8 = 12
	img.SetMapCell(1, 0, 1)
	return img
}

func TestSpriteSheetImage(t *testing.T) {
	dst := SpriteSheetImage(testImage())

	assert.Equal(t, 128, dst.Bounds().Dx())
	assert.Equal(t, 128, dst.Bounds().Dy())
	assert.Equal(t, uint8(7), dst.ColorIndexAt(0, 0))
	assert.Equal(t, uint8(8), dst.ColorIndexAt(1, 0))
	assert.Equal(t, uint8(12), dst.ColorIndexAt(8, 0))
	assert.Equal(t, 16, len(dst.Palette))
}

func TestMapImage(t *testing.T) {
	dst := MapImage(testImage())

	assert.Equal(t, 1024, dst.Bounds().Dx())
	assert.Equal(t, 512, dst.Bounds().Dy())
	// cell 0,0 uses sprite 0, cell 1,0 uses sprite 1
	assert.Equal(t, uint8(7), dst.ColorIndexAt(0, 0))
	assert.Equal(t, uint8(12), dst.ColorIndexAt(8, 0))
	assert.Equal(t, uint8(0), dst.ColorIndexAt(9, 0))
}

func TestWritePNG(t *testing.T) {
	src := SpriteSheetImage(testImage())

	var buf bytes.Buffer
	assert.NoError(t, WritePNG(&buf, src, 3))

	decoded, err := png.Decode(&buf)
	assert.NoError(t, err)
	assert.Equal(t, 384, decoded.Bounds().Dx())

	// nearest neighbour keeps the exact palette colors
	r, g, b, _ := decoded.At(2, 2).RGBA()
	er, eg, eb, _ := Palette[7].RGBA()
	assert.Equal(t, er, r)
	assert.Equal(t, eg, g)
	assert.Equal(t, eb, b)
	r, g, b, _ = decoded.At(3, 0).RGBA()
	er, eg, eb, _ = Palette[8].RGBA()
	assert.Equal(t, er, r)
	assert.Equal(t, eg, g)
	assert.Equal(t, eb, b)

	err = WritePNG(&buf, src, 0)
	assert.True(t, errors.Is(err, ErrInvalidScale))
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sheet.png")
	assert.NoError(t, WriteFile(path, SpriteSheetImage(testImage()), 1))

	err := WriteFile(filepath.Join(t.TempDir(), "missing", "sheet.png"), SpriteSheetImage(testImage()), 1)
	assert.Error(t, err)
}
