package input

import (
	"fmt"
	"strings"

	"github.com/dshills/deeplus/internal/nav"
)

// Action is a user command produced by a key binding.
type Action uint8

const (
	// ActionNone means the key is not bound.
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	// ActionSelect activates the focused tile.
	ActionSelect
	// ActionBack dismisses whatever is in front of the grid.
	ActionBack
	// ActionRefresh re-fetches the catalog and rebuilds the grid.
	ActionRefresh
	// ActionQuit exits the application.
	ActionQuit
)

var actionNames = [...]string{
	ActionNone:    "none",
	ActionUp:      "up",
	ActionDown:    "down",
	ActionLeft:    "left",
	ActionRight:   "right",
	ActionSelect:  "select",
	ActionBack:    "back",
	ActionRefresh: "refresh",
	ActionQuit:    "quit",
}

// String returns the configuration name of the action.
func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return fmt.Sprintf("Action(%d)", a)
}

// Actions returns every bindable action in declaration order.
func Actions() []Action {
	return []Action{
		ActionUp, ActionDown, ActionLeft, ActionRight,
		ActionSelect, ActionBack, ActionRefresh, ActionQuit,
	}
}

// ParseAction returns the action with the given configuration name.
func ParseAction(name string) (Action, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, a := range Actions() {
		if a.String() == name {
			return a, nil
		}
	}
	return ActionNone, fmt.Errorf("%w: %q", ErrUnknownAction, name)
}

// Direction returns the cursor direction for a movement action, or
// nav.DirNone for every other action.
func (a Action) Direction() nav.Direction {
	switch a {
	case ActionUp:
		return nav.DirUp
	case ActionDown:
		return nav.DirDown
	case ActionLeft:
		return nav.DirLeft
	case ActionRight:
		return nav.DirRight
	default:
		return nav.DirNone
	}
}

// IsMove returns true for the four directional actions.
func (a Action) IsMove() bool {
	return a.Direction() != nav.DirNone
}
