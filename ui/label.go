package ui

import (
	"unicode/utf8"

	"github.com/pixelplane/pixo/gfx"
)

// Label is a non-interactive text widget drawn with the builtin font.
// A negative background color leaves the background transparent.
type Label struct {
	x, y            int
	text            string
	textColor       int
	backgroundColor int
	width           int
}

func NewLabel(root *Root, x, y int, text string, textColor, backgroundColor int) *Label {
	l := &Label{
		x:               x,
		y:               y,
		textColor:       textColor,
		backgroundColor: backgroundColor,
	}
	l.SetText(text)
	root.Add(l)
	return l
}

// SetText replaces the label's text. The background keeps covering the
// widest text seen so far, so shrinking text does not leave stale glyphs.
func (l *Label) SetText(text string) {
	l.text = text
	l.width = gfx.Max(l.width, utf8.RuneCountInString(text)*gfx.FontWidth)
}

func (l *Label) Text() string {
	return l.text
}

func (l *Label) SetTextColor(color int) {
	l.textColor = color
}

func (l *Label) Update(input *Input) {}

func (l *Label) Draw(screen *gfx.Image) {
	if l.backgroundColor >= 0 {
		screen.Rect(l.x, l.y, l.width, gfx.FontHeight, l.backgroundColor)
	}
	screen.Text(l.x, l.y, l.text, l.textColor)
}
