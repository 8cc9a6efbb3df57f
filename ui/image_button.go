package ui

import (
	"github.com/pixelplane/pixo/gfx"
)

// ImageButtonSize is the fixed width and height of an ImageButton.
const ImageButtonSize = 7

// ImageButton is a 7x7 clickable sprite. The sprite is authored in the
// enabled color; every frame the button substitutes that palette slot with
// the color of its current state (pressed wins over enabled wins over
// disabled) for the duration of a single blit, color 0 transparent.
type ImageButton struct {
	Button
	img    *gfx.Image
	sx, sy int
}

// NewImageButton attaches a button of fixed 7x7 size at (x, y) drawing the
// source region of img starting at (sx, sy). The image and source offsets
// are fixed for the button's lifetime.
func NewImageButton(root *Root, x, y int, img *gfx.Image, sx, sy int) *ImageButton {
	b := &ImageButton{
		Button: NewButton(x, y, ImageButtonSize, ImageButtonSize),
		img:    img,
		sx:     sx,
		sy:     sy,
	}
	root.Add(b)
	return b
}

func (b *ImageButton) Draw(screen *gfx.Image) {
	color := ButtonDisabledColor
	if b.Pressed {
		color = ButtonPressedColor
	} else if b.Enabled {
		color = ButtonEnabledColor
	}
	restore := screen.Palette().Override(ButtonEnabledColor, color)
	defer restore()
	screen.Blt(b.rect.Min.X, b.rect.Min.Y, b.img, b.sx, b.sy, ImageButtonSize, ImageButtonSize, 0)
}
