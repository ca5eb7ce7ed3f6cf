// Package codemodule contains the receivers of the program text of a cartridge.
package codemodule

import (
	"errors"
	"strings"
)

// ErrAlreadyLoaded is returned when program text is delivered more than once.
var ErrAlreadyLoaded = errors.New("program text already loaded")

var _ Module = &Source{}

// Module receives the program text of a cartridge and keeps it available for reporting.
type Module interface {
	LoadSource(text string) error
	Text() string
	Lines() int
	Close()
}

// Source keeps the program text as delivered without inspecting it.
type Source struct {
	text   string
	loaded bool
}

// NewSource returns an empty program text receiver.
func NewSource() *Source {
	return &Source{}
}

// LoadSource stores the program text.
func (s *Source) LoadSource(text string) error {
	if s.loaded {
		return ErrAlreadyLoaded
	}
	s.text = text
	s.loaded = true
	return nil
}

// Text returns the loaded program text.
func (s *Source) Text() string {
	return s.text
}

// Loaded returns whether program text was delivered.
func (s *Source) Loaded() bool {
	return s.loaded
}

// Lines returns the number of program text lines.
func (s *Source) Lines() int {
	return strings.Count(s.text, "\n")
}

// Close is a no-op, Source holds no resources.
func (s *Source) Close() {}
