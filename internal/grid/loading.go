package grid

import (
	"github.com/dshills/deeplus/internal/renderer/backend"
	"github.com/dshills/deeplus/internal/renderer/core"
)

// LoadingState is the state of the loading screen.
type LoadingState int

const (
	// StateLoading shows the spinner.
	StateLoading LoadingState = iota
	// StateLoaded hides the loading screen.
	StateLoaded
	// StateError shows an error message in place of the spinner.
	StateError
)

func (s LoadingState) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

const loadingLabel = "Loading…"

// ErrorMessage formats a load failure for the loading screen.
func ErrorMessage(err error) string {
	return "Something bad happened: " + err.Error()
}

// Loading is the full-screen placeholder shown while the catalog loads.
type Loading struct {
	state   LoadingState
	message string
	frame   int
}

// NewLoading returns a loading screen in the loading state.
func NewLoading() *Loading {
	return &Loading{}
}

// Reset returns to the loading state, e.g. for a refresh.
func (l *Loading) Reset() {
	l.state = StateLoading
	l.message = ""
	l.frame = 0
}

// SetComplete hides the loading screen.
func (l *Loading) SetComplete() {
	l.state = StateLoaded
	l.message = ""
}

// SetError replaces the spinner with message.
func (l *Loading) SetError(message string) {
	l.state = StateError
	l.message = message
}

// State returns the current state.
func (l *Loading) State() LoadingState {
	return l.state
}

// Message returns the error message, if any.
func (l *Loading) Message() string {
	return l.message
}

// Visible reports whether the loading screen covers the grid.
func (l *Loading) Visible() bool {
	return l.state != StateLoaded
}

// Tick advances the spinner. It reports whether a redraw is needed.
func (l *Loading) Tick() bool {
	if l.state != StateLoading {
		return false
	}
	l.frame = (l.frame + 1) % len(spinnerFrames)
	return true
}

// Draw paints the loading screen centred on b and flushes it. Nothing is
// drawn once loading is complete.
func (l *Loading) Draw(b backend.Backend, theme Theme) {
	if !l.Visible() {
		return
	}

	width, height := b.Size()
	b.Fill(core.RectFromSize(0, 0, height, width), core.NewStyledCell(' ', theme.base()))

	y := height / 2
	switch l.state {
	case StateError:
		msg := core.Truncate(l.message, width)
		drawText(b, (width-core.StringWidth(msg))/2, y, width, msg, theme.errorText())
		hint := core.Truncate("r to retry · q to quit", width)
		if y+2 < height {
			drawText(b, (width-core.StringWidth(hint))/2, y+2, width, hint, theme.muted())
		}
	default:
		text := spinnerFrames[l.frame] + " " + loadingLabel
		drawText(b, (width-core.StringWidth(text))/2, y, width, text, theme.base())
	}
	b.Show()
}
