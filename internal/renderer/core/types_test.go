package core

import (
	"testing"
)

func TestColorDefault(t *testing.T) {
	c := ColorDefault
	if !c.IsDefault() {
		t.Error("ColorDefault should be default")
	}
}

func TestColorFromRGB(t *testing.T) {
	c := ColorFromRGB(255, 128, 64)

	if c.R != 255 || c.G != 128 || c.B != 64 {
		t.Errorf("ColorFromRGB = (%d,%d,%d), want (255,128,64)", c.R, c.G, c.B)
	}
	if c.Indexed {
		t.Error("RGB color should not be indexed")
	}
	if c.IsDefault() {
		t.Error("RGB color should not be default")
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{"#FF8040", ColorFromRGB(255, 128, 64), false},
		{"#ff8040", ColorFromRGB(255, 128, 64), false},
		{"FF8040", ColorFromRGB(255, 128, 64), false},
		{"#fff", ColorWhite, false},
		{"  white ", ColorWhite, false},
		{"default", ColorDefault, false},
		{"invalid", Color{}, true},
		{"#GGG", Color{}, true},
	}

	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseColor(%q) expected error, got nil", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseColor(%q) unexpected error: %v", tt.in, err)
			continue
		}
		if !got.Equals(tt.want) {
			t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestColorEquals(t *testing.T) {
	if !ColorDefault.Equals(Color{Default: true, R: 9}) {
		t.Error("default colors should be equal regardless of components")
	}
	if ColorDefault.Equals(ColorBlack) {
		t.Error("default should not equal black")
	}
	if !ColorFromIndex(3).Equals(Color{R: 3, G: 200, Indexed: true}) {
		t.Error("indexed colors compare by index only")
	}
}

func TestColorBlend(t *testing.T) {
	black := ColorBlack
	white := ColorWhite

	if got := black.Blend(white, 0); !got.Equals(black) {
		t.Errorf("Blend(0) = %v, want %v", got, black)
	}
	if got := black.Blend(white, 1); !got.Equals(white) {
		t.Errorf("Blend(1) = %v, want %v", got, white)
	}
	mid := black.Blend(white, 0.5)
	if mid.R == 0 || mid.R == 255 {
		t.Errorf("Blend(0.5) = %v, want a gray", mid)
	}

	if got := ColorDefault.Blend(white, 0.2); !got.IsDefault() {
		t.Errorf("default.Blend(0.2) = %v, want default", got)
	}
	if got := ColorDefault.Blend(white, 0.8); !got.Equals(white) {
		t.Errorf("default.Blend(0.8) = %v, want white", got)
	}
}

func TestStyleBuilders(t *testing.T) {
	s := NewStyle(ColorWhite).WithBackground(ColorBlack).Bold().Reverse()

	if !s.Foreground.Equals(ColorWhite) || !s.Background.Equals(ColorBlack) {
		t.Errorf("colors = %v/%v, want white/black", s.Foreground, s.Background)
	}
	if !s.Attributes.Has(AttrBold) || !s.Attributes.Has(AttrReverse) {
		t.Errorf("Attributes = %v, want bold|reverse", s.Attributes)
	}
	if s.Attributes.Has(AttrDim) {
		t.Error("unexpected dim attribute")
	}
	if !DefaultStyle().Equals(Style{Foreground: ColorDefault, Background: ColorDefault}) {
		t.Error("DefaultStyle should use default colors")
	}
}

func TestRuneWidth(t *testing.T) {
	tests := []struct {
		r    rune
		want int
	}{
		{'a', 1},
		{'世', 2},
		{'→', 1},
	}
	for _, tt := range tests {
		if got := RuneWidth(tt.r); got != tt.want {
			t.Errorf("RuneWidth(%q) = %d, want %d", tt.r, got, tt.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"Moana", 10, "Moana"},
		{"Moana", 5, "Moana"},
		{"The Mandalorian", 8, "The Man…"},
		{"Pokémon", 4, "Pok…"},
		{"漢字テスト", 5, "漢字…"},
		{"anything", 0, ""},
		{"ab", 1, "…"},
	}

	for _, tt := range tests {
		got := Truncate(tt.in, tt.width)
		if got != tt.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
		if StringWidth(got) > tt.width {
			t.Errorf("Truncate(%q, %d) width %d exceeds limit", tt.in, tt.width, StringWidth(got))
		}
	}
}

func TestScreenRect(t *testing.T) {
	r := RectFromSize(2, 3, 4, 10)
	if r.Width() != 10 || r.Height() != 4 {
		t.Errorf("size = %dx%d, want 10x4", r.Width(), r.Height())
	}
	if r.IsEmpty() {
		t.Error("non-empty rect reported empty")
	}

	other := RectFromSize(4, 0, 10, 5)
	got := r.Intersection(other)
	want := ScreenRect{Top: 4, Left: 3, Bottom: 6, Right: 5}
	if got != want {
		t.Errorf("Intersection = %+v, want %+v", got, want)
	}

	if !r.Intersection(RectFromSize(50, 50, 1, 1)).IsEmpty() {
		t.Error("disjoint intersection should be empty")
	}
}
