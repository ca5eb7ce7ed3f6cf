package decoder

import (
	"errors"
	"fmt"

	"github.com/retroenv/p8cart/internal/section"
)

var (
	// ErrUnexpectedLineLength is returned for data lines that do not have the digit count of their section.
	ErrUnexpectedLineLength = errors.New("unexpected line length")
	// ErrInvalidChannelSentinel is returned for music channel values that are neither a sound index
	// nor the unused marker of the channel.
	ErrInvalidChannelSentinel = errors.New("invalid channel sentinel")
	// ErrRowCountExceeded is returned for data lines beyond the capacity of their memory region.
	ErrRowCountExceeded = errors.New("row count exceeded")
	// ErrFinished is returned when the decoder is used after the program text was delivered.
	ErrFinished = errors.New("decoder already finished")
)

// LineError wraps a decoding failure with the section and position it occurred at.
type LineError struct {
	Section section.Section
	Line    int // 1-based line number in the source
	Column  int // 1-based column, 0 if the error is not caused by a single character
	Err     error
}

func (e *LineError) Error() string {
	if e.Column > 0 {
		return fmt.Sprintf("%s line %d, column %d: %s", e.Section, e.Line, e.Column, e.Err)
	}
	return fmt.Sprintf("%s line %d: %s", e.Section, e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// LengthError describes a line length mismatch.
type LengthError struct {
	Expected int
	Actual   int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("%s: expected %d, got %d", ErrUnexpectedLineLength, e.Expected, e.Actual)
}

func (e *LengthError) Unwrap() error {
	return ErrUnexpectedLineLength
}

// SentinelError describes a music channel value that is not a valid sound index.
type SentinelError struct {
	Value   byte
	Channel int
}

func (e *SentinelError) Error() string {
	return fmt.Sprintf("%s 0x%02x for channel %d, expected 0x%02x",
		ErrInvalidChannelSentinel, e.Value, e.Channel, channelSentinel(e.Channel))
}

func (e *SentinelError) Unwrap() error {
	return ErrInvalidChannelSentinel
}

// RowCountError describes a data row that does not fit into its memory region.
type RowCountError struct {
	Limit int
}

func (e *RowCountError) Error() string {
	return fmt.Sprintf("%s: section holds %d rows", ErrRowCountExceeded, e.Limit)
}

func (e *RowCountError) Unwrap() error {
	return ErrRowCountExceeded
}

// positionError attaches the 0-based character position to an error of a line decoder.
type positionError struct {
	pos int
	err error
}

func (e *positionError) Error() string {
	return e.err.Error()
}

func (e *positionError) Unwrap() error {
	return e.err
}
