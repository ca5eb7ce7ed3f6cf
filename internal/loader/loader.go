// Package loader handles cartridge source file loading operations.
package loader

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
)

// maxLineLength limits the length of a single source line, program text lines
// can be longer than the fixed width data lines.
const maxLineLength = 1 << 20

// Loader handles loading cartridge source files from disk.
type Loader struct{}

// New creates a new cartridge source loader.
func New() *Loader {
	return &Loader{}
}

// Load reads a cartridge source file and returns its lines without line endings.
func (l *Loader) Load(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	lines, err := l.LoadReader(file)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return lines, nil
}

// LoadFromBytes returns the lines of an in-memory cartridge source.
func (l *Loader) LoadFromBytes(data []byte) ([]string, error) {
	return l.LoadReader(bytes.NewReader(data))
}

// LoadReader reads all lines from the reader. Trailing carriage returns are
// stripped so that sources with Windows line endings decode the same.
func (l *Loader) LoadReader(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, strings.TrimRight(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning lines: %w", err)
	}
	return lines, nil
}
