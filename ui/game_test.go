package ui

import (
	"testing"
)

func TestTouchTrackerPressAndRelease(t *testing.T) {
	var tracker touchTracker

	var input Input
	tracker.press(&input, 3, 10, 20)
	if !input.Pressed || !input.JustPressed {
		t.Error("Expected press edge after touch down")
	}
	if input.CursorX != 10 || input.CursorY != 20 {
		t.Errorf("Expected cursor at 10,20, got %d,%d", input.CursorX, input.CursorY)
	}

	input = Input{}
	tracker.hold(&input, 11, 21)
	if !input.Pressed || input.JustPressed {
		t.Error("Expected held state without a press edge")
	}

	input = Input{}
	tracker.release(&input, 3)
	if !input.JustReleased {
		t.Error("Expected release edge after touch up")
	}
	if tracker.active {
		t.Error("Expected tracker to be idle after release")
	}
}

func TestTouchTrackerIgnoresOtherTouches(t *testing.T) {
	var tracker touchTracker

	var input Input
	tracker.press(&input, 1, 5, 5)

	input = Input{}
	tracker.release(&input, 2)
	if input.JustReleased {
		t.Error("Expected no release edge for an unrelated touch")
	}
	if !tracker.active {
		t.Error("Expected tracker to keep following the first touch")
	}

	input = Input{}
	tracker.release(&input, 1)
	if !input.JustReleased {
		t.Error("Expected release edge for the tracked touch")
	}
}

func TestTouchPressReleasesButton(t *testing.T) {
	root := NewRoot()
	b := NewImageButton(root, 10, 20, sourceImage(), 16, 0)
	released := false
	b.OnRelease = func() { released = true }
	var tracker touchTracker

	var input Input
	tracker.press(&input, 7, 12, 22)
	root.Update(&input)
	if !b.Pressed {
		t.Error("Expected button pressed after touch down")
	}

	input = Input{}
	tracker.hold(&input, 12, 22)
	root.Update(&input)
	if !b.Pressed {
		t.Error("Expected button to stay pressed while the touch is held")
	}

	input = Input{}
	tracker.release(&input, 7)
	root.Update(&input)
	if b.Pressed {
		t.Error("Expected button released after touch up")
	}
	if !released {
		t.Error("Expected OnRelease to be called")
	}
}
