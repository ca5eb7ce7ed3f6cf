package decoder

import "github.com/retroenv/p8cart/internal/hex"

func digitAt(line string, pos int) (byte, error) {
	v, err := hex.Digit(line[pos])
	if err != nil {
		return 0, &positionError{pos: pos, err: err}
	}
	return v, nil
}

func byteAt(line string, pos int) (byte, error) {
	hi, err := digitAt(line, pos)
	if err != nil {
		return 0, err
	}
	lo, err := digitAt(line, pos+1)
	if err != nil {
		return 0, err
	}
	return hi<<4 | lo, nil
}
