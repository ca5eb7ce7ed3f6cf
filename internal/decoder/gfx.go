package decoder

import "github.com/retroenv/p8cart/internal/memory"

const (
	gfxLineLength = memory.SpriteSheetWidth // one digit per pixel
	gfxRowBytes   = gfxLineLength / 2
)

// decodeGfx decodes a sprite sheet row of 128 pixels. Each pixel pair is packed
// into a byte with the left pixel in the low nibble.
func (d *Decoder) decodeGfx(line string) error {
	row := d.cursors.Gfx
	if err := d.checkRow(line, gfxLineLength, row); err != nil {
		return err
	}

	var packed [gfxRowBytes]byte
	for col := range packed {
		left, err := digitAt(line, 2*col)
		if err != nil {
			return err
		}
		right, err := digitAt(line, 2*col+1)
		if err != nil {
			return err
		}
		packed[col] = right<<4 | left
	}

	for col, b := range packed {
		d.mem.SetPixelPair(row*gfxRowBytes+col, b)
	}
	d.cursors.Gfx++
	return nil
}
