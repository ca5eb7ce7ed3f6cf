package memory

// PatternFlag is a loop or stop marker of a music pattern.
type PatternFlag byte

// Pattern flags.
const (
	LoopBegin PatternFlag = 1 << iota
	LoopEnd
	Stop
)

// ChannelUnused is set in a channel value when the channel plays no sound.
const ChannelUnused = 0x40

// Pattern is one row of a song, assigning a sound to each channel.
type Pattern struct {
	Flags    PatternFlag
	Channels [ChannelCount]byte
}

// NewPattern returns a pattern without markers and all channels unused.
func NewPattern() Pattern {
	var p Pattern
	for ch := range p.Channels {
		p.SetUnused(ch)
	}
	return p
}

// MarkLoopBegin marks the pattern as start of a loop.
func (p *Pattern) MarkLoopBegin() { p.Flags |= LoopBegin }

// MarkLoopEnd marks the pattern as end of a loop.
func (p *Pattern) MarkLoopEnd() { p.Flags |= LoopEnd }

// MarkStop marks the pattern as end of the song.
func (p *Pattern) MarkStop() { p.Flags |= Stop }

// LoopBegin returns whether the pattern starts a loop.
func (p *Pattern) LoopBegin() bool { return p.Flags&LoopBegin != 0 }

// LoopEnd returns whether the pattern ends a loop.
func (p *Pattern) LoopEnd() bool { return p.Flags&LoopEnd != 0 }

// Stop returns whether the song stops after the pattern.
func (p *Pattern) Stop() bool { return p.Flags&Stop != 0 }

// SetSound assigns a sound index to a channel.
func (p *Pattern) SetSound(channel int, index byte) {
	p.Channels[channel] = index
}

// SetUnused marks a channel as playing no sound.
func (p *Pattern) SetUnused(channel int) {
	p.Channels[channel] = ChannelUnused | byte(channel)
}

// Sound returns the sound index of a channel and false if the channel is unused.
func (p *Pattern) Sound(channel int) (byte, bool) {
	v := p.Channels[channel]
	if v&ChannelUnused != 0 {
		return 0, false
	}
	return v, true
}

// Empty returns whether all channels of the pattern are unused.
func (p *Pattern) Empty() bool {
	for ch := range p.Channels {
		if _, ok := p.Sound(ch); ok {
			return false
		}
	}
	return true
}
