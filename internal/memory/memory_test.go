package memory

import (
	"testing"

	"github.com/retroenv/p8cart/internal/section"
	"github.com/retroenv/retrogolib/assert"
)

func TestPixel(t *testing.T) {
	img := New()
	img.SetPixelPair(0, 0x21)
	img.SetPixelPair(64, 0xf0)

	assert.Equal(t, byte(1), img.Pixel(0, 0))
	assert.Equal(t, byte(2), img.Pixel(1, 0))
	assert.Equal(t, byte(0), img.Pixel(0, 1))
	assert.Equal(t, byte(0xf), img.Pixel(1, 1))
}

func TestMapCellSharedRows(t *testing.T) {
	img := New()
	img.SetMapCell(3, 0, 0x11)
	img.SetMapCell(5, 31, 0x22)
	img.SetMapCell(0, 32, 0x33)

	assert.Equal(t, byte(0x11), img.MapCell(3, 0))
	assert.Equal(t, byte(0x22), img.MapCell(5, 31))
	assert.Equal(t, byte(0x33), img.MapCell(0, 32))

	// lower map half shares memory with sprite sheet rows 64-127
	assert.Equal(t, byte(0x33), img.SpriteSheet()[SpriteSheetSize/2])
	assert.Equal(t, byte(3), img.Pixel(0, 64))
}

func TestCapacity(t *testing.T) {
	img := New()
	assert.Equal(t, 128, img.Capacity(section.Gfx))
	assert.Equal(t, 64, img.Capacity(section.Map))
	assert.Equal(t, 2, img.Capacity(section.Gff))
	assert.Equal(t, 64, img.Capacity(section.Sfx))
	assert.Equal(t, 64, img.Capacity(section.Music))
	assert.Equal(t, 0, img.Capacity(section.Code))
}

func TestPattern(t *testing.T) {
	img := New()
	p := img.Pattern(0)
	assert.True(t, p.Empty())
	assert.False(t, p.LoopBegin())

	p.MarkLoopBegin()
	p.SetSound(2, 0x3f)
	assert.True(t, p.LoopBegin())
	assert.False(t, p.LoopEnd())
	assert.False(t, p.Stop())
	assert.False(t, p.Empty())

	idx, ok := p.Sound(2)
	assert.True(t, ok)
	assert.Equal(t, byte(0x3f), idx)

	_, ok = p.Sound(1)
	assert.False(t, ok)
	assert.Equal(t, byte(0x41), p.Channels[1])

	// the record is owned by the image
	assert.True(t, img.Pattern(0).LoopBegin())
}

func TestWaveformEffectNames(t *testing.T) {
	assert.Equal(t, "triangle", Triangle.String())
	assert.Equal(t, "phaser", Phaser.String())
	assert.Equal(t, "custom 3", Waveform(11).String())
	assert.True(t, Waveform(8).Custom())
	assert.Equal(t, "arpeggio slow", ArpeggioSlow.String())
	assert.Equal(t, "effect 9", Effect(9).String())
}

func TestStats(t *testing.T) {
	img := New()
	img.SetPixelPair(0, 0x01)                    // sprite 0
	img.SetPixelPair(SpriteSheetWidth/2*8, 0x10) // sprite 16
	img.SetMapCell(1, 1, 5)
	img.SetSpriteFlags(3, 0x80)
	img.Sound(7).Notes[4].Volume = 5
	img.Pattern(2).SetSound(0, 7)

	st := img.Stats()
	assert.Equal(t, 2, st.Sprites)
	assert.Equal(t, 1, st.MapCells)
	assert.Equal(t, 1, st.SpriteFlags)
	assert.Equal(t, 1, st.Sounds)
	assert.Equal(t, 1, st.Patterns)
}
