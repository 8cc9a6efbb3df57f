package ui

import (
	"github.com/pixelplane/pixo/gfx"
)

// Widget is a retained control living in a Root. The framework calls Update
// with the frame's input snapshot before calling Draw.
type Widget interface {
	Update(input *Input)
	Draw(screen *gfx.Image)
}

// Root owns the widget tree. Widgets are updated and drawn in the order they
// were added; they attach themselves at construction and live until the Root
// is discarded.
type Root struct {
	widgets []Widget
}

func NewRoot() *Root {
	return &Root{}
}

func (r *Root) Add(widget Widget) {
	r.widgets = append(r.widgets, widget)
}

func (r *Root) Update(input *Input) {
	for _, widget := range r.widgets {
		widget.Update(input)
	}
}

func (r *Root) Draw(screen *gfx.Image) {
	for _, widget := range r.widgets {
		widget.Draw(screen)
	}
}
