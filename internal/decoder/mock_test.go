package decoder

import (
	"github.com/retroenv/p8cart/internal/memory"
	"github.com/retroenv/p8cart/internal/section"
)

type mapCell struct {
	x, y int
}

// mockMemory records all writes of the decoder.
type mockMemory struct {
	capacity map[section.Section]int

	pixels   map[int]byte
	cells    map[mapCell]byte
	flags    map[int]byte
	sounds   map[int]*memory.Sound
	patterns map[int]*memory.Pattern
}

func newMockMemory() *mockMemory {
	return &mockMemory{
		capacity: map[section.Section]int{
			section.Gfx:   128,
			section.Map:   64,
			section.Gff:   2,
			section.Sfx:   64,
			section.Music: 64,
		},
		pixels:   map[int]byte{},
		cells:    map[mapCell]byte{},
		flags:    map[int]byte{},
		sounds:   map[int]*memory.Sound{},
		patterns: map[int]*memory.Pattern{},
	}
}

func (m *mockMemory) Capacity(s section.Section) int {
	return m.capacity[s]
}

func (m *mockMemory) SetPixelPair(offset int, value byte) {
	m.pixels[offset] = value
}

func (m *mockMemory) SetMapCell(x, y int, sprite byte) {
	m.cells[mapCell{x, y}] = sprite
}

func (m *mockMemory) SetSpriteFlags(sprite int, flags byte) {
	m.flags[sprite] = flags
}

func (m *mockMemory) Sound(index int) *memory.Sound {
	snd, ok := m.sounds[index]
	if !ok {
		snd = &memory.Sound{}
		m.sounds[index] = snd
	}
	return snd
}

func (m *mockMemory) Pattern(index int) *memory.Pattern {
	p, ok := m.patterns[index]
	if !ok {
		pattern := memory.NewPattern()
		p = &pattern
		m.patterns[index] = p
	}
	return p
}

type mockCodeLoader struct {
	calls int
	text  string
	err   error
}

func (m *mockCodeLoader) LoadSource(text string) error {
	m.calls++
	m.text = text
	return m.err
}
