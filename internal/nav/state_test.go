package nav

import "testing"

func TestState_StepDoesNotMutate(t *testing.T) {
	s := NewState(5)
	s.Reset(Shape{12, 3})

	tr, ok := s.Step(DirRight)
	if !ok {
		t.Fatal("Step(right) rejected")
	}
	if tr.To != (Cursor{0, 1}) {
		t.Errorf("To = %v, want (0,1)", tr.To)
	}
	if c, _ := s.Cursor(); c != (Cursor{0, 0}) {
		t.Errorf("Cursor() = %v after Step, want (0,0)", c)
	}

	s.Apply(tr)
	if c, _ := s.Cursor(); c != (Cursor{0, 1}) {
		t.Errorf("Cursor() = %v after Apply, want (0,1)", c)
	}
}

func TestState_StepRowScrolled(t *testing.T) {
	s := NewState(5)
	s.Reset(Shape{12})
	for i := 0; i < 4; i++ {
		tr, _ := s.Step(DirRight)
		if tr.RowScrolled {
			t.Errorf("step %d: RowScrolled = true", i+1)
		}
		s.Apply(tr)
	}

	tr, ok := s.Step(DirRight)
	if !ok {
		t.Fatal("Step(right) rejected")
	}
	if !tr.RowScrolled || tr.Offset != 1 {
		t.Errorf("RowScrolled, Offset = %v, %d, want true, 1", tr.RowScrolled, tr.Offset)
	}
}

func TestState_StepRejects(t *testing.T) {
	tests := []struct {
		name  string
		shape Shape
		dir   Direction
	}{
		{"empty", nil, DirRight},
		{"first row empty", Shape{0, 4}, DirDown},
		{"none direction", Shape{4}, DirNone},
		{"left edge", Shape{4}, DirLeft},
		{"top edge", Shape{4, 4}, DirUp},
		{"bottom edge", Shape{4}, DirDown},
		{"right edge", Shape{1}, DirRight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewState(5)
			s.Reset(tt.shape)
			if _, ok := s.Step(tt.dir); ok {
				t.Errorf("Step(%s) accepted", tt.dir)
			}
		})
	}
}

func TestState_ResetCopiesShape(t *testing.T) {
	shape := Shape{3, 3}
	s := NewState(5)
	s.Reset(shape)
	shape[1] = 0

	if _, ok := s.Step(DirDown); !ok {
		t.Error("Step(down) rejected after caller mutated its shape")
	}
}

func TestNewState_DefaultWindow(t *testing.T) {
	if got := NewState(0).WindowSize(); got != DefaultWindowSize {
		t.Errorf("WindowSize() = %d, want %d", got, DefaultWindowSize)
	}
	if got := NewState(-3).WindowSize(); got != DefaultWindowSize {
		t.Errorf("WindowSize() = %d, want %d", got, DefaultWindowSize)
	}
}

func TestDirection_String(t *testing.T) {
	tests := []struct {
		d    Direction
		want string
	}{
		{DirNone, "none"},
		{DirUp, "up"},
		{DirDown, "down"},
		{DirLeft, "left"},
		{DirRight, "right"},
		{Direction(9), "Direction(9)"},
	}
	for _, tt := range tests {
		if got := tt.d.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
