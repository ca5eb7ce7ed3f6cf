package decoder

import "github.com/retroenv/p8cart/internal/memory"

const (
	sfxHeaderLength = 8
	sfxNoteLength   = 5
	sfxLineLength   = sfxHeaderLength + memory.NoteCount*sfxNoteLength
)

// decodeSfx decodes a sound: editor mode, speed, loop start and loop end bytes
// followed by 32 notes of pitch byte, waveform, volume and effect digits.
func (d *Decoder) decodeSfx(line string) error {
	index := d.cursors.Sfx
	if err := d.checkRow(line, sfxLineLength, index); err != nil {
		return err
	}

	var snd memory.Sound
	header := [...]*byte{&snd.EditorMode, &snd.Speed, &snd.LoopStart, &snd.LoopEnd}
	for i, field := range header {
		b, err := byteAt(line, 2*i)
		if err != nil {
			return err
		}
		*field = b
	}

	for i := range snd.Notes {
		if err := decodeNote(line, sfxHeaderLength+i*sfxNoteLength, &snd.Notes[i]); err != nil {
			return err
		}
	}

	*d.mem.Sound(index) = snd
	d.cursors.Sfx++
	return nil
}

func decodeNote(line string, pos int, note *memory.Note) error {
	pitch, err := byteAt(line, pos)
	if err != nil {
		return err
	}
	waveform, err := digitAt(line, pos+2)
	if err != nil {
		return err
	}
	volume, err := digitAt(line, pos+3)
	if err != nil {
		return err
	}
	effect, err := digitAt(line, pos+4)
	if err != nil {
		return err
	}

	note.Pitch = pitch
	note.Waveform = memory.Waveform(waveform)
	note.Volume = volume
	note.Effect = memory.Effect(effect)
	return nil
}
