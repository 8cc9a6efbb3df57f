package gfx

import "image/color"

// NumColors is the number of entries in a palette. All color values used by
// drawing operations are masked to this range.
const NumColors = 16

// DefaultColors is the stock 16-color display palette.
var DefaultColors = [NumColors]color.RGBA{
	{0x00, 0x00, 0x00, 0xff},
	{0x2b, 0x33, 0x5f, 0xff},
	{0x7e, 0x20, 0x72, 0xff},
	{0x19, 0x95, 0x9c, 0xff},
	{0x8b, 0x48, 0x52, 0xff},
	{0x39, 0x5c, 0x98, 0xff},
	{0xa9, 0xc1, 0xff, 0xff},
	{0xee, 0xee, 0xee, 0xff},
	{0xd4, 0x18, 0x6c, 0xff},
	{0xd3, 0x84, 0x41, 0xff},
	{0xe9, 0xc3, 0x5b, 0xff},
	{0x70, 0xc6, 0xa9, 0xff},
	{0x76, 0x96, 0xde, 0xff},
	{0xa3, 0xa3, 0xa3, 0xff},
	{0xff, 0x97, 0x98, 0xff},
	{0xed, 0xc7, 0xb0, 0xff},
}

// Palette maps logical color indices to display colors. It also carries a
// remap table consulted by every drawing operation on the owning image:
// drawing with color c actually writes remap[c]. The remap table starts as
// the identity mapping and is restored to it by Reset.
type Palette struct {
	colors [NumColors]color.RGBA
	remap  [NumColors]uint8
}

func NewPalette() *Palette {
	p := &Palette{colors: DefaultColors}
	p.Reset()
	return p
}

func (p *Palette) Color(i int) color.RGBA {
	return p.colors[i&(NumColors-1)]
}

func (p *Palette) SetColor(i int, c color.RGBA) {
	p.colors[i&(NumColors-1)] = c
}

func (p *Palette) SetColors(colors [NumColors]color.RGBA) {
	p.colors = colors
}

func (p *Palette) Colors() [NumColors]color.RGBA {
	return p.colors
}

// Remap makes drawing operations write dst wherever they would write src.
// The mapping stays in effect until Reset or a further Remap of src.
func (p *Palette) Remap(src, dst int) {
	p.remap[src&(NumColors-1)] = uint8(dst & (NumColors - 1))
}

// Reset restores the identity mapping for all color indices.
func (p *Palette) Reset() {
	for i := range p.remap {
		p.remap[i] = uint8(i)
	}
}

// Override remaps src to dst and returns a function restoring the previous
// mapping of src. Callers defer the restore so the substitution stays scoped
// to a single drawing sequence no matter how it exits.
func (p *Palette) Override(src, dst int) func() {
	src &= NumColors - 1
	prev := p.remap[src]
	p.remap[src] = uint8(dst & (NumColors - 1))
	return func() { p.remap[src] = prev }
}

func (p *Palette) mapColor(c int) uint8 {
	return p.remap[c&(NumColors-1)]
}
