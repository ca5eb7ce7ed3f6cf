package decoder

import "github.com/retroenv/p8cart/internal/memory"

const mapLineLength = memory.MapWidth * 2

func (d *Decoder) decodeMap(line string) error {
	row := d.cursors.Map
	if err := d.checkRow(line, mapLineLength, row); err != nil {
		return err
	}

	var cells [memory.MapWidth]byte
	for x := range cells {
		sprite, err := byteAt(line, 2*x)
		if err != nil {
			return err
		}
		cells[x] = sprite
	}

	for x, sprite := range cells {
		d.mem.SetMapCell(x, row, sprite)
	}
	d.cursors.Map++
	return nil
}
