// Package hex decodes the hexadecimal digits used by cartridge source data lines.
package hex

import (
	"errors"
	"fmt"
)

// ErrInvalidHexDigit is returned for characters outside of 0-9, a-f and A-F.
var ErrInvalidHexDigit = errors.New("invalid hex digit")

// DigitError describes the offending character of a failed digit decode.
type DigitError struct {
	Char byte
}

func (e *DigitError) Error() string {
	return fmt.Sprintf("%s %q", ErrInvalidHexDigit, e.Char)
}

func (e *DigitError) Unwrap() error {
	return ErrInvalidHexDigit
}

// Digit returns the nibble value of a single hex character.
func Digit(c byte) (byte, error) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', nil
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, nil
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, nil
	default:
		return 0, &DigitError{Char: c}
	}
}

// Byte combines two hex characters to a byte, the first character being the high nibble.
func Byte(c0, c1 byte) (byte, error) {
	hi, err := Digit(c0)
	if err != nil {
		return 0, err
	}
	lo, err := Digit(c1)
	if err != nil {
		return 0, err
	}
	return hi<<4 | lo, nil
}
