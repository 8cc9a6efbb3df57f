package demo

import "testing"

func TestNewResource(t *testing.T) {
	res, err := NewResource()
	if err != nil {
		t.Fatal("Error building demo resource,", err)
	}
	if len(res.Banks) != 1 {
		t.Fatalf("Expected 1 bank, got %d", len(res.Banks))
	}
	bank := res.Banks[0]
	if bank.Pget(1, 3) != 7 {
		t.Error("Expected play icon pixel in enabled color")
	}
	for x := 19; x < 48; x += 8 {
		if bank.Pget(x, 3) != 7 {
			t.Errorf("Expected radio dot pixel at x=%d", x)
		}
	}
}
