package decoder

import "github.com/retroenv/p8cart/internal/memory"

const gffLineLength = memory.FlagsPerRow * 2

func (d *Decoder) decodeGff(line string) error {
	row := d.cursors.Gff
	if err := d.checkRow(line, gffLineLength, row); err != nil {
		return err
	}

	var flags [memory.FlagsPerRow]byte
	for i := range flags {
		b, err := byteAt(line, 2*i)
		if err != nil {
			return err
		}
		flags[i] = b
	}

	for i, b := range flags {
		d.mem.SetSpriteFlags(row*memory.FlagsPerRow+i, b)
	}
	d.cursors.Gff++
	return nil
}
