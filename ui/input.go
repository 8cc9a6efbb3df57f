package ui

// Input is the snapshot of pointer state for one frame, with the cursor
// position already translated to canvas coordinates. The host fills it from
// ebiten once per Update; widget code only reads it, which keeps widget
// logic testable without a window.
type Input struct {
	CursorX, CursorY int
	Pressed          bool
	JustPressed      bool
	JustReleased     bool

	// Clicked is set by widgets that fired a press this frame. The host
	// uses it for click feedback.
	Clicked bool
}
