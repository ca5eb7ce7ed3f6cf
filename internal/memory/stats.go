package memory

// Stats counts the populated entries of a memory image.
type Stats struct {
	Sprites     int // sprites with at least one non-zero pixel
	MapCells    int // map cells referencing a sprite other than 0
	SpriteFlags int // sprites with flags set
	Sounds      int // sounds with an audible note
	Patterns    int // patterns with at least one used channel
}

// Stats returns the statistics of the memory image.
func (img *Image) Stats() Stats {
	var st Stats
	for n := range SpriteCount {
		if !img.spriteEmpty(n) {
			st.Sprites++
		}
		if img.spriteFlags[n] != 0 {
			st.SpriteFlags++
		}
	}
	for y := range MapHeight {
		for x := range MapWidth {
			if img.MapCell(x, y) != 0 {
				st.MapCells++
			}
		}
	}
	for i := range img.sounds {
		if !img.sounds[i].Empty() {
			st.Sounds++
		}
	}
	for i := range img.patterns {
		if !img.patterns[i].Empty() {
			st.Patterns++
		}
	}
	return st
}

func (img *Image) spriteEmpty(n int) bool {
	const spritesPerRow = SpriteSheetWidth / SpriteSize
	x0 := n % spritesPerRow * SpriteSize
	y0 := n / spritesPerRow * SpriteSize
	for y := y0; y < y0+SpriteSize; y++ {
		for x := x0; x < x0+SpriteSize; x++ {
			if img.Pixel(x, y) != 0 {
				return false
			}
		}
	}
	return true
}
