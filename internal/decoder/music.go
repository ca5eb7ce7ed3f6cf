package decoder

import (
	"strings"

	"github.com/retroenv/p8cart/internal/memory"
)

const (
	musicChannelOffset = 3 // flag byte and separator
	musicLineLength    = musicChannelOffset + memory.ChannelCount*2
)

// decodeMusic decodes a music pattern. Blank lines are skipped and do not use up a pattern.
func (d *Decoder) decodeMusic(line string) error {
	if strings.TrimSpace(line) == "" {
		return nil
	}

	index := d.cursors.Music
	if len(line) < musicLineLength {
		return &LengthError{Expected: musicLineLength, Actual: len(line)}
	}
	if limit := d.mem.Capacity(d.current); index >= limit {
		return &RowCountError{Limit: limit}
	}

	flags, err := byteAt(line, 0)
	if err != nil {
		return err
	}

	var channels [memory.ChannelCount]byte
	for ch := range channels {
		pos := musicChannelOffset + 2*ch
		v, err := byteAt(line, pos)
		if err != nil {
			return err
		}
		if v >= memory.ChannelUnused && v != channelSentinel(ch) {
			return &positionError{pos: pos, err: &SentinelError{Value: v, Channel: ch}}
		}
		channels[ch] = v
	}

	pattern := d.mem.Pattern(index)
	// only the first matching marker in the order loop begin, loop end, stop is applied
	switch {
	case flags&1 != 0:
		pattern.MarkLoopBegin()
	case flags&2 != 0:
		pattern.MarkLoopEnd()
	case flags&4 != 0:
		pattern.MarkStop()
	}
	for ch, v := range channels {
		if v >= memory.ChannelUnused {
			pattern.SetUnused(ch)
		} else {
			pattern.SetSound(ch, v)
		}
	}

	d.cursors.Music++
	return nil
}

// channelSentinel returns the value that marks a channel as unused.
func channelSentinel(channel int) byte {
	return memory.ChannelUnused + byte(channel)
}
