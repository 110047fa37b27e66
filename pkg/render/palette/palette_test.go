package palette

import (
	"image/color"
	"testing"
)

func rgba(c color.Color) [4]uint32 {
	r, g, b, a := c.RGBA()
	return [4]uint32{r, g, b, a}
}

func TestDefaultSize(t *testing.T) {
	if Default.Len() < 16 {
		t.Fatalf("Default.Len() = %d, want at least 16", Default.Len())
	}
	seen := map[string]bool{}
	for i := 0; i < Default.Len(); i++ {
		h := Default.Hex(i)
		if seen[h] {
			t.Errorf("duplicate palette color %s at %d", h, i)
		}
		seen[h] = true
	}
}

func TestHexOrder(t *testing.T) {
	for i, want := range DefaultHex {
		if got := Default.Hex(i); got != want {
			t.Errorf("Hex(%d) = %s, want %s", i, got, want)
		}
	}
}

func TestColorWraps(t *testing.T) {
	n := Default.Len()
	for k := 0; k < 3*n; k++ {
		if rgba(Default.Color(k)) != rgba(Default.Color(k+n)) {
			t.Errorf("Color(%d) != Color(%d)", k, k+n)
		}
	}
}

func TestBranchTwentyWrapsToFirst(t *testing.T) {
	if Default.Len() != 20 {
		t.Fatalf("Default.Len() = %d, want 20", Default.Len())
	}
	if got := Default.Hex(20); got != DefaultHex[0] {
		t.Errorf("Hex(20) = %s, want %s", got, DefaultHex[0])
	}
}

func TestNegativeIndex(t *testing.T) {
	if got := Default.Hex(-1); got != DefaultHex[len(DefaultHex)-1] {
		t.Errorf("Hex(-1) = %s, want last entry", got)
	}
}

func TestParse(t *testing.T) {
	p, err := Parse("#000000", "#ffffff")
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if p.Len() != 2 {
		t.Errorf("Len() = %d, want 2", p.Len())
	}
	if got := p.Hex(3); got != "#ffffff" {
		t.Errorf("Hex(3) = %s, want #ffffff", got)
	}

	if _, err := Parse(); err == nil {
		t.Error("Parse() with no colors should fail")
	}
	if _, err := Parse("#000000", "teal"); err == nil {
		t.Error("Parse() with a non-hex color should fail")
	}
}
