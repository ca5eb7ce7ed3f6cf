// Package detector handles cartridge format detection.
package detector

import (
	"errors"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/retroenv/p8cart/internal/section"
	"github.com/retroenv/retrogolib/log"
)

const (
	signature     = "pico-8 cartridge"
	versionPrefix = "version "
)

// ErrBinaryCartridge is returned for cartridges that are stored as PNG image.
var ErrBinaryCartridge = errors.New("binary .png cartridges are not supported, convert it to a .p8 text cartridge")

// Info contains the details found in the header of a cartridge source.
type Info struct {
	Signature bool // header starts with the cartridge signature
	Version   int  // format version, 0 if not specified
}

// Detector handles cartridge format detection from file extensions and the source header.
type Detector struct {
	logger *log.Logger
}

// New creates a new cartridge detector.
func New(logger *log.Logger) *Detector {
	return &Detector{
		logger: logger,
	}
}

// Detect checks that the file is a text cartridge and parses the header lines
// that precede the first section marker.
func (d *Detector) Detect(filename string, lines []string) (Info, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == ".png" {
		return Info{}, ErrBinaryCartridge
	}

	var info Info
	for _, line := range lines {
		if _, ok := section.FromMarker(line); ok {
			break
		}

		switch {
		case strings.HasPrefix(line, signature):
			info.Signature = true
		case strings.HasPrefix(line, versionPrefix):
			version, err := strconv.Atoi(strings.TrimSpace(line[len(versionPrefix):]))
			if err != nil {
				d.logger.Warn("Invalid cartridge version", log.String("line", line))
				continue
			}
			info.Version = version
		}
	}

	if !info.Signature {
		d.logger.Warn("Cartridge signature not found", log.String("file", filename))
	}
	d.logger.Debug("Detected cartridge",
		log.String("file", filename),
		log.Int("version", info.Version))
	return info, nil
}
