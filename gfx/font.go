package gfx

// FontWidth and FontHeight are the cell size of the builtin font. Glyphs are
// 3x5 pixels inside the cell, leaving one pixel of spacing.
const (
	FontWidth  = 4
	FontHeight = 6
)

// fontData holds one glyph per character from ' ' (32) to '_' (95), five
// rows of three bits each, most significant bit leftmost. Lowercase letters
// are folded to uppercase, anything else renders as a filled block.
var fontData = [64][5]uint8{
	{0b000, 0b000, 0b000, 0b000, 0b000}, // space
	{0b010, 0b010, 0b010, 0b000, 0b010}, // !
	{0b101, 0b101, 0b000, 0b000, 0b000}, // "
	{0b101, 0b111, 0b101, 0b111, 0b101}, // #
	{0b011, 0b110, 0b010, 0b011, 0b110}, // $
	{0b101, 0b001, 0b010, 0b100, 0b101}, // %
	{0b010, 0b101, 0b010, 0b101, 0b011}, // &
	{0b010, 0b010, 0b000, 0b000, 0b000}, // '
	{0b001, 0b010, 0b010, 0b010, 0b001}, // (
	{0b100, 0b010, 0b010, 0b010, 0b100}, // )
	{0b101, 0b010, 0b101, 0b000, 0b000}, // *
	{0b000, 0b010, 0b111, 0b010, 0b000}, // +
	{0b000, 0b000, 0b000, 0b010, 0b100}, // ,
	{0b000, 0b000, 0b111, 0b000, 0b000}, // -
	{0b000, 0b000, 0b000, 0b000, 0b010}, // .
	{0b001, 0b001, 0b010, 0b100, 0b100}, // /
	{0b111, 0b101, 0b101, 0b101, 0b111}, // 0
	{0b010, 0b110, 0b010, 0b010, 0b111}, // 1
	{0b111, 0b001, 0b111, 0b100, 0b111}, // 2
	{0b111, 0b001, 0b111, 0b001, 0b111}, // 3
	{0b101, 0b101, 0b111, 0b001, 0b001}, // 4
	{0b111, 0b100, 0b111, 0b001, 0b111}, // 5
	{0b111, 0b100, 0b111, 0b101, 0b111}, // 6
	{0b111, 0b001, 0b001, 0b010, 0b010}, // 7
	{0b111, 0b101, 0b111, 0b101, 0b111}, // 8
	{0b111, 0b101, 0b111, 0b001, 0b111}, // 9
	{0b000, 0b010, 0b000, 0b010, 0b000}, // :
	{0b000, 0b010, 0b000, 0b010, 0b100}, // ;
	{0b001, 0b010, 0b100, 0b010, 0b001}, // <
	{0b000, 0b111, 0b000, 0b111, 0b000}, // =
	{0b100, 0b010, 0b001, 0b010, 0b100}, // >
	{0b111, 0b001, 0b010, 0b000, 0b010}, // ?
	{0b010, 0b101, 0b111, 0b100, 0b011}, // @
	{0b010, 0b101, 0b111, 0b101, 0b101}, // A
	{0b110, 0b101, 0b110, 0b101, 0b110}, // B
	{0b011, 0b100, 0b100, 0b100, 0b011}, // C
	{0b110, 0b101, 0b101, 0b101, 0b110}, // D
	{0b111, 0b100, 0b110, 0b100, 0b111}, // E
	{0b111, 0b100, 0b110, 0b100, 0b100}, // F
	{0b011, 0b100, 0b101, 0b101, 0b011}, // G
	{0b101, 0b101, 0b111, 0b101, 0b101}, // H
	{0b111, 0b010, 0b010, 0b010, 0b111}, // I
	{0b001, 0b001, 0b001, 0b101, 0b010}, // J
	{0b101, 0b110, 0b100, 0b110, 0b101}, // K
	{0b100, 0b100, 0b100, 0b100, 0b111}, // L
	{0b101, 0b111, 0b111, 0b101, 0b101}, // M
	{0b110, 0b101, 0b101, 0b101, 0b101}, // N
	{0b010, 0b101, 0b101, 0b101, 0b010}, // O
	{0b110, 0b101, 0b110, 0b100, 0b100}, // P
	{0b010, 0b101, 0b101, 0b110, 0b011}, // Q
	{0b110, 0b101, 0b110, 0b101, 0b101}, // R
	{0b011, 0b100, 0b010, 0b001, 0b110}, // S
	{0b111, 0b010, 0b010, 0b010, 0b010}, // T
	{0b101, 0b101, 0b101, 0b101, 0b111}, // U
	{0b101, 0b101, 0b101, 0b101, 0b010}, // V
	{0b101, 0b101, 0b111, 0b111, 0b101}, // W
	{0b101, 0b101, 0b010, 0b101, 0b101}, // X
	{0b101, 0b101, 0b010, 0b010, 0b010}, // Y
	{0b111, 0b001, 0b010, 0b100, 0b111}, // Z
	{0b011, 0b010, 0b010, 0b010, 0b011}, // [
	{0b100, 0b100, 0b010, 0b001, 0b001}, // backslash
	{0b110, 0b010, 0b010, 0b010, 0b110}, // ]
	{0b010, 0b101, 0b000, 0b000, 0b000}, // ^
	{0b000, 0b000, 0b000, 0b000, 0b111}, // _
}

var fallbackGlyph = [5]uint8{0b111, 0b111, 0b111, 0b111, 0b111}

func glyph(r rune) [5]uint8 {
	if r >= 'a' && r <= 'z' {
		r -= 'a' - 'A'
	}
	if r < ' ' || r > '_' {
		return fallbackGlyph
	}
	return fontData[r-' ']
}

// Text draws a string with the builtin font, transparent background.
// Newlines advance to the next line below (x, y).
func (i *Image) Text(x, y int, text string, color int) {
	cx, cy := x, y
	for _, r := range text {
		if r == '\n' {
			cx, cy = x, cy+FontHeight
			continue
		}
		g := glyph(r)
		for gy := 0; gy < len(g); gy++ {
			for gx := 0; gx < 3; gx++ {
				if g[gy]&(1<<(2-gx)) != 0 {
					i.Pset(cx+gx, cy+gy, color)
				}
			}
		}
		cx += FontWidth
	}
}
