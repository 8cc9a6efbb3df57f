package gfx

import (
	"image"
	"testing"
)

func TestPsetPget(t *testing.T) {
	img := NewImage(8, 8)
	img.Pset(3, 4, 7)
	if img.Pget(3, 4) != 7 {
		t.Errorf("Expected color 7 at (3,4), got %d", img.Pget(3, 4))
	}
	img.Pset(-1, 0, 7)
	img.Pset(8, 0, 7)
	if img.Pget(-1, 0) != 0 || img.Pget(8, 0) != 0 {
		t.Error("Out of bounds Pget should return 0")
	}
}

func TestClsFillsWholeImage(t *testing.T) {
	img := NewImage(4, 4)
	img.SetClipRect(image.Rect(1, 1, 3, 3))
	img.Cls(5)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if img.Pget(x, y) != 5 {
				t.Fatalf("Expected color 5 at (%d,%d) after Cls, got %d", x, y, img.Pget(x, y))
			}
		}
	}
}

func TestRectClipping(t *testing.T) {
	img := NewImage(8, 8)
	img.SetClipRect(image.Rect(2, 2, 6, 6))
	img.Rect(0, 0, 8, 8, 9)
	if img.Pget(1, 1) != 0 {
		t.Error("Rect should not draw outside the clip rect")
	}
	if img.Pget(2, 2) != 9 || img.Pget(5, 5) != 9 {
		t.Error("Rect should fill the clip rect interior")
	}
	if img.Pget(6, 6) != 0 {
		t.Error("Rect should not draw at the exclusive clip bound")
	}
}

func TestBltTransparency(t *testing.T) {
	src := NewImage(4, 4)
	src.Cls(7)
	src.Pset(1, 1, 0)
	dst := NewImage(8, 8)
	dst.Cls(3)
	dst.Blt(2, 2, src, 0, 0, 4, 4, 0)
	if dst.Pget(2, 2) != 7 {
		t.Errorf("Expected copied pixel 7 at (2,2), got %d", dst.Pget(2, 2))
	}
	if dst.Pget(3, 3) != 3 {
		t.Errorf("Expected transparent pixel to keep background 3 at (3,3), got %d", dst.Pget(3, 3))
	}
}

func TestBltNoTransparency(t *testing.T) {
	src := NewImage(2, 2)
	dst := NewImage(4, 4)
	dst.Cls(3)
	dst.Blt(0, 0, src, 0, 0, 2, 2, -1)
	if dst.Pget(0, 0) != 0 {
		t.Errorf("Expected color 0 copied with transparency disabled, got %d", dst.Pget(0, 0))
	}
}

func TestBltClipsToDestination(t *testing.T) {
	src := NewImage(4, 4)
	src.Cls(7)
	dst := NewImage(4, 4)
	dst.Blt(-2, -2, src, 0, 0, 4, 4, -1)
	dst.Blt(3, 3, src, 0, 0, 4, 4, -1)
	if dst.Pget(0, 0) != 7 || dst.Pget(1, 1) != 7 {
		t.Error("Blt should draw the visible part of a partially off-screen source")
	}
	if dst.Pget(3, 3) != 7 {
		t.Error("Blt should draw the visible corner of a source hanging off bottom-right")
	}
	if dst.Pget(2, 3) != 0 {
		t.Errorf("Expected untouched pixel at (2,3), got %d", dst.Pget(2, 3))
	}
}

func TestBltFlips(t *testing.T) {
	src := NewImage(2, 2)
	src.Pset(0, 0, 1)
	src.Pset(1, 0, 2)
	src.Pset(0, 1, 3)
	src.Pset(1, 1, 4)

	dst := NewImage(2, 2)
	dst.Blt(0, 0, src, 0, 0, -2, 2, -1)
	if dst.Pget(0, 0) != 2 || dst.Pget(1, 0) != 1 {
		t.Errorf("Expected horizontal flip, got %d,%d", dst.Pget(0, 0), dst.Pget(1, 0))
	}
	dst.Blt(0, 0, src, 0, 0, 2, -2, -1)
	if dst.Pget(0, 0) != 3 || dst.Pget(0, 1) != 1 {
		t.Errorf("Expected vertical flip, got %d,%d", dst.Pget(0, 0), dst.Pget(0, 1))
	}
}

func TestBltAppliesPaletteRemap(t *testing.T) {
	src := NewImage(1, 1)
	src.Pset(0, 0, 7)
	dst := NewImage(1, 1)
	dst.Palette().Remap(7, 6)
	dst.Blt(0, 0, src, 0, 0, 1, 1, 0)
	if dst.Pget(0, 0) != 6 {
		t.Errorf("Expected remapped color 6, got %d", dst.Pget(0, 0))
	}
	dst.Palette().Reset()
}

func TestBltComparesTransparencyBeforeRemap(t *testing.T) {
	src := NewImage(1, 1)
	src.Pset(0, 0, 7)
	dst := NewImage(1, 1)
	dst.Cls(3)
	dst.Palette().Remap(7, 0)
	dst.Blt(0, 0, src, 0, 0, 1, 1, 0)
	if dst.Pget(0, 0) != 0 {
		t.Errorf("Source pixel 7 remapped to 0 should still be drawn, got %d", dst.Pget(0, 0))
	}
}

func TestSetRows(t *testing.T) {
	img := NewImage(4, 2)
	if err := img.SetRows(0, 0, []string{"0123", "89ab"}); err != nil {
		t.Fatal("Error setting image rows,", err)
	}
	expected := [][]int{{0, 1, 2, 3}, {8, 9, 10, 11}}
	for y, row := range expected {
		for x, c := range row {
			if img.Pget(x, y) != c {
				t.Errorf("Expected color %d at (%d,%d), got %d", c, x, y, img.Pget(x, y))
			}
		}
	}
	if err := img.SetRows(0, 0, []string{"0g"}); err == nil {
		t.Error("Expected error for invalid hex digit")
	}
}

func TestLine(t *testing.T) {
	img := NewImage(4, 4)
	img.Line(0, 0, 3, 3, 8)
	for i := 0; i < 4; i++ {
		if img.Pget(i, i) != 8 {
			t.Errorf("Expected diagonal pixel at (%d,%d)", i, i)
		}
	}
}

func TestToNRGBA(t *testing.T) {
	img := NewImage(2, 1)
	img.Pset(1, 0, 7)
	rgba := img.ToNRGBA()
	if got := rgba.NRGBAAt(0, 0); got.R != 0 || got.G != 0 || got.B != 0 || got.A != 0xff {
		t.Errorf("Expected opaque black at (0,0), got %v", got)
	}
	want := DefaultColors[7]
	if got := rgba.NRGBAAt(1, 0); got.R != want.R || got.G != want.G || got.B != want.B {
		t.Errorf("Expected palette color 7 at (1,0), got %v", got)
	}
}
