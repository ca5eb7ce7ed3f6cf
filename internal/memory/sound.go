package memory

import "fmt"

// Waveform is the instrument of a note. Values from 8 on select one of the
// first 8 sounds as custom instrument.
type Waveform byte

// Built-in waveforms.
const (
	Triangle Waveform = iota
	TiltedSaw
	Saw
	Square
	Pulse
	Organ
	Noise
	Phaser
)

var waveformNames = [...]string{"triangle", "tilted saw", "saw", "square", "pulse", "organ", "noise", "phaser"}

// Custom returns whether the waveform refers to a custom instrument.
func (w Waveform) Custom() bool {
	return w >= 8
}

func (w Waveform) String() string {
	if w.Custom() {
		return fmt.Sprintf("custom %d", w-8)
	}
	return waveformNames[w]
}

// Effect is the effect applied while playing a note.
type Effect byte

// Note effects.
const (
	NoEffect Effect = iota
	Slide
	Vibrato
	Drop
	FadeIn
	FadeOut
	ArpeggioFast
	ArpeggioSlow
)

var effectNames = [...]string{"none", "slide", "vibrato", "drop", "fade in", "fade out", "arpeggio fast", "arpeggio slow"}

func (e Effect) String() string {
	if int(e) < len(effectNames) {
		return effectNames[e]
	}
	return fmt.Sprintf("effect %d", byte(e))
}

// Note is a single sample slot of a sound.
type Note struct {
	Pitch    byte
	Waveform Waveform
	Volume   byte // 0-7
	Effect   Effect
}

// Sound is a sound effect, it is also used as pattern channel source for music.
type Sound struct {
	EditorMode byte
	Speed      byte
	LoopStart  byte
	LoopEnd    byte
	Notes      [NoteCount]Note
}

// Empty returns whether no note of the sound is audible.
func (s *Sound) Empty() bool {
	for _, n := range s.Notes {
		if n.Volume != 0 {
			return false
		}
	}
	return true
}
