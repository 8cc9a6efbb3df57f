package ui

import (
	"fmt"

	"github.com/ebitengine/oto/v3"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/pixelplane/pixo/gfx"
)

// Game hosts an indexed canvas and a widget tree in an ebiten window. Each
// Update it builds the frame's input snapshot and runs the widget input
// pass; each Draw it clears the canvas, runs the draw traversal and resolves
// the canvas through its palette onto the ebiten screen.
type Game struct {
	screen           *gfx.Image
	root             *Root
	background       int
	buffer           []byte
	soundEnabled     bool
	otoContext       *oto.Context
	audioPlayer      *AudioPlayer
	touches          touchTracker
	pressedTouchIDs  []ebiten.TouchID // store them here to avoid reallocating them for each Update
	releasedTouchIDs []ebiten.TouchID
}

// touchTracker folds multi-touch events into the single-pointer Input model.
// The first touch becomes the pointer; its up-edge produces the release so a
// touch press cannot stay pressed forever.
type touchTracker struct {
	activeID ebiten.TouchID
	active   bool
}

func (t *touchTracker) press(input *Input, touchID ebiten.TouchID, x, y int) {
	input.CursorX, input.CursorY = x, y
	input.Pressed = true
	input.JustPressed = true
	t.activeID = touchID
	t.active = true
}

func (t *touchTracker) hold(input *Input, x, y int) {
	if !t.active {
		return
	}
	input.CursorX, input.CursorY = x, y
	input.Pressed = true
}

func (t *touchTracker) release(input *Input, touchID ebiten.TouchID) {
	if !t.active || touchID != t.activeID {
		return
	}
	input.JustReleased = true
	t.active = false
}

var _ ebiten.Game = (*Game)(nil)

func NewGame(screen *gfx.Image, root *Root) *Game {
	return &Game{
		screen:       screen,
		root:         root,
		background:   WidgetBackgroundColor,
		soundEnabled: true,
	}
}

func (g *Game) Screen() *gfx.Image {
	return g.screen
}

func (g *Game) Root() *Root {
	return g.root
}

func (g *Game) SetBackgroundColor(color int) {
	g.background = color
}

func (g *Game) SetSoundEnabled(enabled bool) {
	g.soundEnabled = enabled
}

func (g *Game) Update() error {
	if g.soundEnabled && g.otoContext == nil {
		opts := &oto.NewContextOptions{}
		opts.SampleRate = clickSampleRate
		opts.ChannelCount = 1
		opts.Format = oto.FormatUnsignedInt8
		otoContext, ready, err := oto.NewContext(opts)
		if err != nil {
			return fmt.Errorf("cannot create Oto context (%v)", err)
		}
		<-ready
		g.otoContext = otoContext
		g.audioPlayer = NewAudioPlayer(otoContext)
	}

	var input Input
	input.CursorX, input.CursorY = ebiten.CursorPosition()
	input.Pressed = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	input.JustPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	input.JustReleased = inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
	for _, touchID := range inpututil.AppendJustPressedTouchIDs(g.pressedTouchIDs[:0]) {
		x, y := ebiten.TouchPosition(touchID)
		g.touches.press(&input, touchID, x, y)
	}
	if g.touches.active && inpututil.TouchPressDuration(g.touches.activeID) > 0 {
		x, y := ebiten.TouchPosition(g.touches.activeID)
		g.touches.hold(&input, x, y)
	}
	for _, touchID := range inpututil.AppendJustReleasedTouchIDs(g.releasedTouchIDs[:0]) {
		g.touches.release(&input, touchID)
	}

	g.root.Update(&input)
	if input.Clicked && g.soundEnabled && g.audioPlayer != nil {
		g.audioPlayer.Click()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.screen.Cls(g.background)
	g.root.Draw(g.screen)
	size := g.screen.Size()
	if g.buffer == nil {
		g.buffer = make([]byte, 4*size.X*size.Y)
	}
	g.screen.WriteRGBA(g.buffer)
	screen.WritePixels(g.buffer)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	size := g.screen.Size()
	return size.X, size.Y
}
