// Package demo builds the example scene used by "pixo demo" and the mobile
// entry point: a toolbar of image buttons, a radio row and a status label.
package demo

import (
	"github.com/pixelplane/pixo/gfx"
	"github.com/pixelplane/pixo/resource"
	"github.com/pixelplane/pixo/ui"
)

const (
	screenWidth  = 96
	screenHeight = 64
)

// 7x7 sprites for the toolbar, drawn in the enabled color with color 0
// transparent. The widget state recolors them at draw time.
var playIcon = []string{
	"0700000",
	"0770000",
	"0777000",
	"0777700",
	"0777000",
	"0770000",
	"0700000",
}

var stopIcon = []string{
	"0000000",
	"0777770",
	"0777770",
	"0777770",
	"0777770",
	"0777770",
	"0000000",
}

var dotIcon = []string{
	"0000000",
	"0077700",
	"0777770",
	"0777770",
	"0777770",
	"0077700",
	"0000000",
}

// NewResource builds the demo sprite bank.
func NewResource() (*resource.Resource, error) {
	res := resource.New()
	bank := res.NewBank(48, 8)
	if err := bank.SetRows(0, 0, playIcon); err != nil {
		return nil, err
	}
	if err := bank.SetRows(8, 0, stopIcon); err != nil {
		return nil, err
	}
	// One dot per radio cell, 8 pixels apart.
	for x := 16; x < 48; x += 8 {
		if err := bank.SetRows(x, 0, dotIcon); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// NewGame assembles the demo widget tree inside a ui.Game.
func NewGame() (*ui.Game, error) {
	res, err := NewResource()
	if err != nil {
		return nil, err
	}
	bank := res.Banks[0]

	root := ui.NewRoot()
	label := ui.NewLabel(root, 8, 44, "READY", ui.LabelTextColor, -1)

	play := ui.NewImageButton(root, 8, 8, bank, 0, 0)
	play.OnPress = func() { label.SetText("PLAY") }
	play.OnRelease = func() { label.SetText("READY") }

	stop := ui.NewImageButton(root, 18, 8, bank, 8, 0)
	stop.OnPress = func() { label.SetText("STOP") }
	stop.OnRelease = func() { label.SetText("READY") }

	off := ui.NewImageButton(root, 28, 8, bank, 16, 0)
	off.Enabled = false

	radio := ui.NewRadioButton(root, 8, 24, bank, 16, 0, 4, 0)
	radio.OnChange = func(value int) { label.SetText("CHANNEL " + string(rune('1'+value))) }

	screen := gfx.NewImage(screenWidth, screenHeight)
	screen.Palette().SetColors(res.Colors)
	return ui.NewGame(screen, root), nil
}
