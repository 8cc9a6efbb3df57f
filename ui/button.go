package ui

import "image"

// Button carries the interaction state shared by all clickable widgets:
// bounds, enabled/pressed/hovered flags and press/release callbacks. Widgets
// embed it and read its state when drawing; they never decide press/release
// semantics themselves.
type Button struct {
	rect      image.Rectangle
	Enabled   bool
	Pressed   bool
	Hovered   bool
	OnPress   func()
	OnRelease func()
}

func NewButton(x, y, width, height int) Button {
	return Button{
		rect:    image.Rect(x, y, x+width, y+height),
		Enabled: true,
	}
}

func (b *Button) Bounds() image.Rectangle {
	return b.rect
}

// Update runs the input pass. A press fires on a down-edge inside the bounds
// while the button is enabled; the matching release fires on the next
// up-edge wherever the cursor is by then.
func (b *Button) Update(input *Input) {
	b.Hovered = image.Pt(input.CursorX, input.CursorY).In(b.rect)
	if input.JustPressed && b.Hovered && b.Enabled {
		b.Pressed = true
		input.Clicked = true
		if b.OnPress != nil {
			b.OnPress()
		}
	}
	if b.Pressed && input.JustReleased {
		b.Pressed = false
		if b.OnRelease != nil {
			b.OnRelease()
		}
	}
}
