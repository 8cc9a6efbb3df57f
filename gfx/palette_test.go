package gfx

import "testing"

func TestRemapAndReset(t *testing.T) {
	p := NewPalette()
	p.Remap(7, 6)
	if p.mapColor(7) != 6 {
		t.Errorf("Expected color 7 remapped to 6, got %d", p.mapColor(7))
	}
	if p.mapColor(6) != 6 {
		t.Errorf("Remapping 7 should not touch 6, got %d", p.mapColor(6))
	}
	p.Reset()
	for i := 0; i < NumColors; i++ {
		if p.mapColor(i) != uint8(i) {
			t.Fatalf("Expected identity mapping for %d after reset, got %d", i, p.mapColor(i))
		}
	}
}

func TestOverrideRestoresPreviousMapping(t *testing.T) {
	p := NewPalette()
	restore := p.Override(7, 5)
	if p.mapColor(7) != 5 {
		t.Errorf("Expected override of 7 to 5, got %d", p.mapColor(7))
	}
	restore()
	if p.mapColor(7) != 7 {
		t.Errorf("Expected identity mapping of 7 after restore, got %d", p.mapColor(7))
	}
}

func TestOverrideRestoresNonIdentityMapping(t *testing.T) {
	p := NewPalette()
	p.Remap(7, 3)
	restore := p.Override(7, 5)
	restore()
	if p.mapColor(7) != 3 {
		t.Errorf("Expected mapping of 7 to 3 restored, got %d", p.mapColor(7))
	}
}

func TestNestedOverrides(t *testing.T) {
	p := NewPalette()
	restore0 := p.Override(7, 6)
	restore1 := p.Override(7, 5)
	if p.mapColor(7) != 5 {
		t.Errorf("Expected innermost override to win, got %d", p.mapColor(7))
	}
	restore1()
	if p.mapColor(7) != 6 {
		t.Errorf("Expected outer override after inner restore, got %d", p.mapColor(7))
	}
	restore0()
	if p.mapColor(7) != 7 {
		t.Errorf("Expected identity after both restores, got %d", p.mapColor(7))
	}
}
