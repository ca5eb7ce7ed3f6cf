package decoder

func (d *Decoder) decodeCode(line string) error {
	d.source.WriteString(line)
	d.source.WriteByte('\n')
	return nil
}
