// Package memory contains the memory image of a fantasy console cartridge that the
// decoder populates: sprite sheet, tile map, sprite flags, sounds and music patterns.
package memory

import "github.com/retroenv/p8cart/internal/section"

// Physical dimensions of the memory image.
const (
	SpriteSheetWidth  = 128
	SpriteSheetHeight = 128
	SpriteSheetSize   = SpriteSheetWidth * SpriteSheetHeight / 2 // 2 pixels per byte
	SpriteSize        = 8
	SpriteCount       = 256

	MapWidth  = 128
	MapHeight = 64

	// rows from mapSharedRow on are stored in the lower half of the sprite sheet
	mapSharedRow    = 32
	mapSharedOffset = SpriteSheetSize / 2

	FlagsPerRow = 128
	SoundCount  = 64
	NoteCount   = 32

	PatternCount = 64
	ChannelCount = 4
)

// Image is the in-memory representation of the console memory regions that a
// cartridge source populates. The zero value is not ready for use, use New.
type Image struct {
	spriteSheet [SpriteSheetSize]byte
	tileMap     [MapWidth * mapSharedRow]byte
	spriteFlags [SpriteCount]byte
	sounds      [SoundCount]Sound
	patterns    [PatternCount]Pattern
}

// New returns an empty memory image with all music channels marked as unused.
func New() *Image {
	img := &Image{}
	for i := range img.patterns {
		img.patterns[i] = NewPattern()
	}
	return img
}

// Capacity returns the number of rows that a data section can hold.
func (img *Image) Capacity(s section.Section) int {
	switch s {
	case section.Gfx:
		return SpriteSheetHeight
	case section.Map:
		return MapHeight
	case section.Gff:
		return SpriteCount / FlagsPerRow
	case section.Sfx:
		return SoundCount
	case section.Music:
		return PatternCount
	default:
		return 0
	}
}

// SetPixelPair sets a sprite sheet byte that holds 2 pixels, the left pixel
// is stored in the low nibble.
func (img *Image) SetPixelPair(offset int, value byte) {
	img.spriteSheet[offset] = value
}

// Pixel returns the color index of the sprite sheet pixel at x, y.
func (img *Image) Pixel(x, y int) byte {
	b := img.spriteSheet[y*SpriteSheetWidth/2+x/2]
	if x&1 == 0 {
		return b & 0x0f
	}
	return b >> 4
}

// SpriteSheet returns the packed sprite sheet bytes.
func (img *Image) SpriteSheet() []byte {
	return img.spriteSheet[:]
}

// SetMapCell sets the sprite index of a tile map cell.
func (img *Image) SetMapCell(x, y int, sprite byte) {
	if y >= mapSharedRow {
		img.spriteSheet[mapSharedOffset+(y-mapSharedRow)*MapWidth+x] = sprite
		return
	}
	img.tileMap[y*MapWidth+x] = sprite
}

// MapCell returns the sprite index of a tile map cell.
func (img *Image) MapCell(x, y int) byte {
	if y >= mapSharedRow {
		return img.spriteSheet[mapSharedOffset+(y-mapSharedRow)*MapWidth+x]
	}
	return img.tileMap[y*MapWidth+x]
}

// SetSpriteFlags sets the flag byte of a sprite.
func (img *Image) SetSpriteFlags(sprite int, flags byte) {
	img.spriteFlags[sprite] = flags
}

// SpriteFlags returns the flag byte of a sprite.
func (img *Image) SpriteFlags(sprite int) byte {
	return img.spriteFlags[sprite]
}

// Sound returns the mutable sound record at the given index.
func (img *Image) Sound(index int) *Sound {
	return &img.sounds[index]
}

// Pattern returns the mutable music pattern at the given index.
func (img *Image) Pattern(index int) *Pattern {
	return &img.patterns[index]
}
