package main

import "testing"

func TestParseViewArgs(t *testing.T) {
	filename, bank, err := parseViewArgs([]string{"-bank", "2", "sprites.pixres"})
	if err != nil {
		t.Fatal("Error parsing view arguments,", err)
	}
	if filename != "sprites.pixres" {
		t.Errorf("Expected filename sprites.pixres, got %s", filename)
	}
	if bank != 2 {
		t.Errorf("Expected bank 2, got %d", bank)
	}
}

func TestParseViewArgsDefaultBank(t *testing.T) {
	filename, bank, err := parseViewArgs([]string{"sprites.pixres"})
	if err != nil {
		t.Fatal("Error parsing view arguments,", err)
	}
	if filename != "sprites.pixres" {
		t.Errorf("Expected filename sprites.pixres, got %s", filename)
	}
	if bank != 0 {
		t.Errorf("Expected bank 0, got %d", bank)
	}
}

func TestParseViewArgsRejectsWrongArgCount(t *testing.T) {
	if _, _, err := parseViewArgs(nil); err == nil {
		t.Error("Expected error for missing resource file")
	}
	if _, _, err := parseViewArgs([]string{"a.pixres", "b.pixres"}); err == nil {
		t.Error("Expected error for extra arguments")
	}
}
