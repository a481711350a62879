package key

import (
	"errors"
	"testing"
)

func TestParseSingleCharacter(t *testing.T) {
	tests := []struct {
		spec     string
		wantRune rune
		wantMod  Modifier
	}{
		{"a", 'a', ModNone},
		{"W", 'W', ModShift},
		{"1", '1', ModNone},
		{"+", '+', ModNone},
		{"<", '<', ModNone},
	}

	for _, tt := range tests {
		event, err := Parse(tt.spec)
		if err != nil {
			t.Errorf("Parse(%q) error = %v", tt.spec, err)
			continue
		}
		if event.Key != KeyRune {
			t.Errorf("Parse(%q) key = %v, want KeyRune", tt.spec, event.Key)
		}
		if event.Rune != tt.wantRune {
			t.Errorf("Parse(%q) rune = %q, want %q", tt.spec, event.Rune, tt.wantRune)
		}
		if event.Modifiers != tt.wantMod {
			t.Errorf("Parse(%q) modifiers = %v, want %v", tt.spec, event.Modifiers, tt.wantMod)
		}
	}
}

func TestParseSpecialKeys(t *testing.T) {
	tests := []struct {
		spec    string
		wantKey Key
	}{
		{"Enter", KeyEnter},
		{"enter", KeyEnter},
		{"Escape", KeyEscape},
		{"Esc", KeyEscape},
		{"Tab", KeyTab},
		{"Backspace", KeyBackspace},
		{"Up", KeyUp},
		{"Down", KeyDown},
		{"Left", KeyLeft},
		{"Right", KeyRight},
		{"Home", KeyHome},
		{"PgDn", KeyPageDown},
	}

	for _, tt := range tests {
		event, err := Parse(tt.spec)
		if err != nil {
			t.Errorf("Parse(%q) error = %v", tt.spec, err)
			continue
		}
		if event.Key != tt.wantKey {
			t.Errorf("Parse(%q) key = %v, want %v", tt.spec, event.Key, tt.wantKey)
		}
	}
}

func TestParseSpace(t *testing.T) {
	for _, spec := range []string{"Space", "space", "<Space>"} {
		event, err := Parse(spec)
		if err != nil {
			t.Errorf("Parse(%q) error = %v", spec, err)
			continue
		}
		if event.Key != KeyRune || event.Rune != ' ' {
			t.Errorf("Parse(%q) = %#v, want space rune", spec, event)
		}
	}
}

func TestParseModifiers(t *testing.T) {
	tests := []struct {
		spec     string
		wantKey  Key
		wantRune rune
		wantMod  Modifier
	}{
		{"Ctrl+c", KeyRune, 'c', ModCtrl},
		{"Ctrl+C", KeyRune, 'c', ModCtrl}, // Ctrl makes lowercase
		{"Alt+Left", KeyLeft, 0, ModAlt},
		{"Ctrl+Shift+p", KeyRune, 'p', ModCtrl | ModShift},
		{"<C-c>", KeyRune, 'c', ModCtrl},
		{"<A-f>", KeyRune, 'f', ModAlt},
		{"<D-s>", KeyRune, 's', ModMeta},
		{"<CR>", KeyEnter, 0, ModNone},
		{"<Esc>", KeyEscape, 0, ModNone},
		{"<C-CR>", KeyEnter, 0, ModCtrl},
		{"<lt>", KeyRune, '<', ModNone},
	}

	for _, tt := range tests {
		event, err := Parse(tt.spec)
		if err != nil {
			t.Errorf("Parse(%q) error = %v", tt.spec, err)
			continue
		}
		if event.Key != tt.wantKey {
			t.Errorf("Parse(%q) key = %v, want %v", tt.spec, event.Key, tt.wantKey)
		}
		if tt.wantKey == KeyRune && event.Rune != tt.wantRune {
			t.Errorf("Parse(%q) rune = %q, want %q", tt.spec, event.Rune, tt.wantRune)
		}
		if event.Modifiers != tt.wantMod {
			t.Errorf("Parse(%q) modifiers = %v, want %v", tt.spec, event.Modifiers, tt.wantMod)
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		spec    string
		wantErr error
	}{
		{"", ErrEmptySpec},
		{"  ", ErrEmptySpec},
		{"<>", ErrInvalidSpec},
		{"<C->", ErrInvalidSpec},
		{"<X-a>", ErrInvalidSpec},
		{"Ctrl+", ErrInvalidSpec},
		{"Unknown+a", ErrInvalidSpec},
		{"unknownkey", ErrInvalidSpec},
		{"F13", ErrInvalidSpec},
	}

	for _, tt := range tests {
		_, err := Parse(tt.spec)
		if err == nil {
			t.Errorf("Parse(%q) expected error", tt.spec)
			continue
		}
		if !errors.Is(err, tt.wantErr) {
			t.Errorf("Parse(%q) error = %v, want %v", tt.spec, err, tt.wantErr)
		}
	}
}

func TestMustParse(t *testing.T) {
	event := MustParse("Ctrl+c")
	if event.Key != KeyRune || event.Rune != 'c' {
		t.Error("MustParse valid spec failed")
	}

	defer func() {
		if r := recover(); r == nil {
			t.Error("MustParse should panic on invalid spec")
		}
	}()
	MustParse("")
}

func TestEventNormalize(t *testing.T) {
	tests := []struct {
		in   Event
		want Event
	}{
		{NewRuneEvent('W', ModShift), NewRuneEvent('w', ModNone)},
		{NewRuneEvent('W', ModNone), NewRuneEvent('w', ModNone)},
		{NewRuneEvent('c', ModCtrl), NewRuneEvent('c', ModCtrl)},
		{NewSpecialEvent(KeyUp, ModShift), NewSpecialEvent(KeyUp, ModShift)},
	}

	for _, tt := range tests {
		if got := tt.in.Normalize(); !got.Equals(tt.want) {
			t.Errorf("%v.Normalize() = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestEventMatches(t *testing.T) {
	tests := []struct {
		event Event
		spec  string
		want  bool
	}{
		{NewRuneEvent('w', ModNone), "w", true},
		{NewRuneEvent('W', ModNone), "w", true},
		{NewRuneEvent('w', ModNone), "W", true},
		{NewRuneEvent('c', ModCtrl), "Ctrl+C", true},
		{NewRuneEvent('c', ModNone), "Ctrl+C", false},
		{NewSpecialEvent(KeyUp, ModNone), "<Up>", true},
		{NewSpecialEvent(KeyUp, ModNone), "not a key", false},
	}

	for _, tt := range tests {
		if got := tt.event.Matches(tt.spec); got != tt.want {
			t.Errorf("%v.Matches(%q) = %v, want %v", tt.event, tt.spec, got, tt.want)
		}
	}
}

func TestEventString(t *testing.T) {
	tests := []struct {
		event Event
		want  string
	}{
		{NewRuneEvent('w', ModNone), "w"},
		{NewRuneEvent(' ', ModNone), "<Space>"},
		{NewRuneEvent('c', ModCtrl), "<C-c>"},
		{NewSpecialEvent(KeyEscape, ModNone), "<Esc>"},
		{NewSpecialEvent(KeyEnter, ModNone), "<CR>"},
		{NewSpecialEvent(KeyLeft, ModShift), "<S-Left>"},
	}

	for _, tt := range tests {
		if got := tt.event.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestModifierString(t *testing.T) {
	if got := (ModCtrl | ModShift).String(); got != "Ctrl+Shift" {
		t.Errorf("String() = %q, want %q", got, "Ctrl+Shift")
	}
	if got := ModNone.String(); got != "" {
		t.Errorf("ModNone.String() = %q, want empty", got)
	}
	if ModifierFromName("Control") != ModCtrl {
		t.Error("ModifierFromName(Control) should be ModCtrl")
	}
}
