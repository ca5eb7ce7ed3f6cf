// Package decoder converts the lines of a cartridge source into the memory image of the console.
//
// The decoder is a state machine over the sections of the source. Marker lines such as
// __gfx__ switch the active section, every other line is passed to the decoder of the
// active section which writes its data through the Memory interface. The program text
// of the code section is collected and handed to a CodeLoader once all lines are consumed.
//
// Memory writes happen while decoding, a failed decode leaves the memory image in an
// undefined state and it should be discarded.
package decoder

import (
	"errors"
	"fmt"
	"strings"

	"github.com/retroenv/p8cart/internal/memory"
	"github.com/retroenv/p8cart/internal/section"
	"github.com/retroenv/retrogolib/log"
)

// Memory is the memory image that the decoder writes to. It is owned by the caller.
type Memory interface {
	// Capacity returns the number of rows that the memory region of a data section holds.
	Capacity(s section.Section) int

	SetPixelPair(offset int, value byte)
	SetMapCell(x, y int, sprite byte)
	SetSpriteFlags(sprite int, flags byte)
	Sound(index int) *memory.Sound
	Pattern(index int) *memory.Pattern
}

// CodeLoader receives the program text of the code section.
type CodeLoader interface {
	LoadSource(text string) error
}

// Cursors contains the next row of each data section.
type Cursors struct {
	Gfx   int
	Map   int
	Gff   int
	Sfx   int
	Music int
}

// Decoder decodes a cartridge source line by line.
type Decoder struct {
	logger *log.Logger
	mem    Memory
	code   CodeLoader

	current  section.Section
	cursors  Cursors
	line     int
	source   strings.Builder
	finished bool
}

type lineDecoder func(d *Decoder, line string) error

// New returns a decoder that writes to the given memory image and delivers the
// program text to the code loader.
func New(logger *log.Logger, mem Memory, code CodeLoader) *Decoder {
	return &Decoder{
		logger: logger,
		mem:    mem,
		code:   code,
	}
}

// Decode decodes all lines and delivers the program text.
func (d *Decoder) Decode(lines []string) error {
	for _, line := range lines {
		if err := d.DecodeLine(line); err != nil {
			return err
		}
	}
	return d.Finish()
}

// DecodeLine processes the next line of the source.
func (d *Decoder) DecodeLine(line string) error {
	if d.finished {
		return ErrFinished
	}
	d.line++

	if s, ok := section.FromMarker(line); ok {
		d.logger.Debug("Entering section",
			log.String("section", s.String()),
			log.Int("line", d.line))
		d.current = s
		return nil
	}

	decode := decoderFor(d.current)
	if err := decode(d, line); err != nil {
		return d.wrapError(err)
	}
	return nil
}

// Finish hands the collected program text to the code loader. It must be called
// exactly once after the last line.
func (d *Decoder) Finish() error {
	if d.finished {
		return ErrFinished
	}
	d.finished = true

	text := d.source.String()
	d.source.Reset()
	if err := d.code.LoadSource(text); err != nil {
		return fmt.Errorf("loading program text: %w", err)
	}
	return nil
}

// Section returns the active section.
func (d *Decoder) Section() section.Section {
	return d.current
}

// Cursors returns the current row cursors of all data sections.
func (d *Decoder) Cursors() Cursors {
	return d.cursors
}

func decoderFor(s section.Section) lineDecoder {
	switch s {
	case section.Code:
		return (*Decoder).decodeCode
	case section.Gfx:
		return (*Decoder).decodeGfx
	case section.Gff:
		return (*Decoder).decodeGff
	case section.Map:
		return (*Decoder).decodeMap
	case section.Sfx:
		return (*Decoder).decodeSfx
	case section.Music:
		return (*Decoder).decodeMusic
	default: // Header and Label
		return (*Decoder).ignore
	}
}

func (d *Decoder) ignore(string) error {
	return nil
}

func (d *Decoder) wrapError(err error) error {
	lineErr := &LineError{
		Section: d.current,
		Line:    d.line,
		Err:     err,
	}
	var posErr *positionError
	if errors.As(err, &posErr) {
		lineErr.Column = posErr.pos + 1
		lineErr.Err = posErr.err
	}
	return lineErr
}

// checkRow verifies the line length and that the row fits into the memory region of the section.
func (d *Decoder) checkRow(line string, length, row int) error {
	if len(line) != length {
		return &LengthError{Expected: length, Actual: len(line)}
	}
	limit := d.mem.Capacity(d.current)
	if row >= limit {
		return &RowCountError{Limit: limit}
	}
	return nil
}
