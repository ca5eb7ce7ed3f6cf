// Package section defines the sections of a cartridge source file and their marker lines.
package section

// Section is the active part of a cartridge source that decides how a line is decoded.
type Section int

// Sections of a cartridge source. Header is the initial state before the first marker.
const (
	Header Section = iota
	Code
	Gfx
	Gff
	Label
	Map
	Sfx
	Music
)

var markers = map[string]Section{
	"__lua__":   Code,
	"__gfx__":   Gfx,
	"__gff__":   Gff,
	"__label__": Label,
	"__map__":   Map,
	"__sfx__":   Sfx,
	"__music__": Music,
}

var names = [...]string{
	Header: "header",
	Code:   "code",
	Gfx:    "gfx",
	Gff:    "gff",
	Label:  "label",
	Map:    "map",
	Sfx:    "sfx",
	Music:  "music",
}

// FromMarker returns the section introduced by the line if it exactly matches a marker.
func FromMarker(line string) (Section, bool) {
	s, ok := markers[line]
	return s, ok
}

// Marker returns the marker line of the section, Header has none.
func (s Section) Marker() string {
	for marker, sec := range markers {
		if sec == s {
			return marker
		}
	}
	return ""
}

// Ignored returns whether lines of the section are dropped without decoding.
func (s Section) Ignored() bool {
	return s == Header || s == Label
}

func (s Section) String() string {
	if s < 0 || int(s) >= len(names) {
		return "unknown"
	}
	return names[s]
}
