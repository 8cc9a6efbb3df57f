package ui

import (
	"testing"

	"github.com/pixelplane/pixo/gfx"
)

func TestLabelDrawsText(t *testing.T) {
	root := NewRoot()
	screen := gfx.NewImage(40, 8)
	NewLabel(root, 0, 0, "HI", LabelTextColor, -1)

	root.Draw(screen)
	found := false
	for y := 0; y < gfx.FontHeight; y++ {
		for x := 0; x < 2*gfx.FontWidth; x++ {
			if screen.Pget(x, y) == LabelTextColor {
				found = true
			}
		}
	}
	if !found {
		t.Error("Expected label to draw some text pixels")
	}
}

func TestLabelBackgroundCoversPreviousText(t *testing.T) {
	root := NewRoot()
	screen := gfx.NewImage(40, 8)
	l := NewLabel(root, 0, 0, "LONG TEXT", LabelTextColor, 2)

	l.Draw(screen)
	l.SetText("A")
	l.Draw(screen)
	if got := screen.Pget(5*gfx.FontWidth, 2); got != 2 {
		t.Errorf("Expected background to cover stale glyphs, got %d", got)
	}
}

func TestLabelWidthCountsRunes(t *testing.T) {
	root := NewRoot()
	screen := gfx.NewImage(40, 8)
	l := NewLabel(root, 0, 0, "Ä", LabelTextColor, 2)

	l.Draw(screen)
	if got := screen.Pget(gfx.FontWidth-1, 0); got != 2 {
		t.Errorf("Expected background under the glyph cell, got %d", got)
	}
	if got := screen.Pget(gfx.FontWidth, 0); got != 0 {
		t.Errorf("Expected background to end after one glyph, got %d", got)
	}
}
