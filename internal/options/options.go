// Package options contains the program options.
package options

// Positional contains positional arguments.
type Positional struct {
	File string `arg:"positional" usage:"cartridge source file to decode"`
}

// Parameters contains file path options.
type Parameters struct {
	Input     string `flag:"i" usage:"input cartridge source file (.p8)"`
	Output    string `flag:"o" usage:"output .png file of the sprite sheet"`
	MapOutput string `flag:"map" usage:"output .png file of the tile map"`
	Batch     string `flag:"batch" usage:"batch process files matching pattern (e.g. *.p8)"`
}

// Flags contains behavior options.
type Flags struct {
	Scale   int  `flag:"scale" usage:"scale factor of exported images" default:"1"`
	Compile bool `flag:"compile" usage:"compile the program text as Lua 5.1"`
	Debug   bool `flag:"debug" usage:"enable debug logging"`
	Quiet   bool `flag:"q" usage:"quiet mode"`
}

// Program options of the decoder.
type Program struct {
	Parameters
	Flags
}
