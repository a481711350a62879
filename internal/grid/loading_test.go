package grid

import (
	"errors"
	"strings"
	"testing"

	"github.com/dshills/deeplus/internal/renderer/backend"
)

func TestLoading_States(t *testing.T) {
	l := NewLoading()
	if l.State() != StateLoading || !l.Visible() {
		t.Fatalf("new loading screen state = %v", l.State())
	}

	if !l.Tick() {
		t.Error("Tick() while loading should request a redraw")
	}

	l.SetError("boom")
	if l.State() != StateError || l.Message() != "boom" || !l.Visible() {
		t.Errorf("after SetError: state=%v message=%q", l.State(), l.Message())
	}
	if l.Tick() {
		t.Error("Tick() in error state should not request a redraw")
	}

	l.SetComplete()
	if l.State() != StateLoaded || l.Visible() || l.Message() != "" {
		t.Errorf("after SetComplete: state=%v visible=%v", l.State(), l.Visible())
	}

	l.Reset()
	if l.State() != StateLoading {
		t.Errorf("after Reset: state=%v", l.State())
	}
}

func TestLoading_StateString(t *testing.T) {
	tests := []struct {
		state LoadingState
		want  string
	}{
		{StateLoading, "loading"},
		{StateLoaded, "loaded"},
		{StateError, "error"},
		{LoadingState(42), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.state, got, tt.want)
		}
	}
}

func TestLoading_Draw(t *testing.T) {
	b := backend.NewNullBackend(40, 9)
	l := NewLoading()

	l.Draw(b, DefaultTheme())
	if got := b.Line(4); !strings.Contains(got, "Loading…") {
		t.Errorf("Line(4) = %q, want spinner label", got)
	}

	l.SetError(ErrorMessage(errors.New("missing collection data")))
	l.Draw(b, DefaultTheme())
	if got := b.Line(4); !strings.Contains(got, "Something bad happened: missing") {
		t.Errorf("Line(4) = %q, want error message", got)
	}
	if got := b.Line(6); !strings.Contains(got, "retry") {
		t.Errorf("Line(6) = %q, want retry hint", got)
	}

	shows := b.ShowCount()
	l.SetComplete()
	l.Draw(b, DefaultTheme())
	if b.ShowCount() != shows {
		t.Error("Draw after SetComplete should not touch the screen")
	}
}

func TestErrorMessage(t *testing.T) {
	if got := ErrorMessage(errors.New("invalid API request")); got != "Something bad happened: invalid API request" {
		t.Errorf("ErrorMessage = %q", got)
	}
}
