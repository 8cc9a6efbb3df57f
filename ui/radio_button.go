package ui

import (
	"github.com/pixelplane/pixo/gfx"
)

const radioCellStride = ImageButtonSize + 1

// RadioButton is a horizontal row of 7x7 image cells of which exactly one is
// selected. Cell i samples the source region at (sx + i*8, sy). The selected
// cell renders in the pressed color, the rest follow the enabled/disabled
// state of the whole row.
type RadioButton struct {
	Button
	img      *gfx.Image
	sx, sy   int
	count    int
	Value    int
	OnChange func(value int)
}

func NewRadioButton(root *Root, x, y int, img *gfx.Image, sx, sy, count, value int) *RadioButton {
	b := &RadioButton{
		Button: NewButton(x, y, count*radioCellStride-1, ImageButtonSize),
		img:    img,
		sx:     sx,
		sy:     sy,
		count:  count,
		Value:  value,
	}
	root.Add(b)
	return b
}

func (b *RadioButton) Update(input *Input) {
	wasPressed := b.Pressed
	b.Button.Update(input)
	if b.Pressed && !wasPressed {
		value := gfx.Clamp((input.CursorX-b.rect.Min.X)/radioCellStride, 0, b.count-1)
		if value != b.Value {
			b.Value = value
			if b.OnChange != nil {
				b.OnChange(value)
			}
		}
	}
}

func (b *RadioButton) Draw(screen *gfx.Image) {
	for i := 0; i < b.count; i++ {
		color := ButtonDisabledColor
		if i == b.Value {
			color = ButtonPressedColor
		} else if b.Enabled {
			color = ButtonEnabledColor
		}
		restore := screen.Palette().Override(ButtonEnabledColor, color)
		screen.Blt(b.rect.Min.X+i*radioCellStride, b.rect.Min.Y, b.img,
			b.sx+i*radioCellStride, b.sy, ImageButtonSize, ImageButtonSize, 0)
		restore()
	}
}
