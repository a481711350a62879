package input

import (
	"errors"
	"fmt"
	"sort"

	"github.com/dshills/deeplus/internal/input/key"
	"github.com/dshills/deeplus/internal/renderer/backend"
)

// Keymap errors
var (
	ErrUnknownAction    = errors.New("unknown action")
	ErrDuplicateBinding = errors.New("key bound to more than one action")
)

// BindingError reports a key specification that could not be bound.
type BindingError struct {
	Action string
	Spec   string
	Err    error
}

func (e *BindingError) Error() string {
	return fmt.Sprintf("binding %q for %s: %v", e.Spec, e.Action, e.Err)
}

func (e *BindingError) Unwrap() error {
	return e.Err
}

// DefaultBindings returns the built-in bindings, keyed by action name.
// Arrow keys and WASD move; letters match in either case.
func DefaultBindings() map[string][]string {
	return map[string][]string{
		"up":      {"Up", "w"},
		"down":    {"Down", "s"},
		"left":    {"Left", "a"},
		"right":   {"Right", "d"},
		"select":  {"Space", "Enter"},
		"back":    {"Escape"},
		"refresh": {"r"},
		"quit":    {"q", "Ctrl+C"},
	}
}

// Keymap resolves key events to actions.
type Keymap struct {
	bindings map[key.Event]Action
	specs    map[Action][]string
}

// NewKeymap builds a keymap from bindings keyed by action name.
// Every spec is parsed; unknown actions, invalid specs and keys bound to
// two different actions are reported as errors.
func NewKeymap(bindings map[string][]string) (*Keymap, error) {
	km := &Keymap{
		bindings: make(map[key.Event]Action),
		specs:    make(map[Action][]string),
	}

	// Iterate in a stable order so duplicate errors are deterministic.
	names := make([]string, 0, len(bindings))
	for name := range bindings {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		action, err := ParseAction(name)
		if err != nil {
			return nil, err
		}
		for _, spec := range bindings[name] {
			ev, err := key.Parse(spec)
			if err != nil {
				return nil, &BindingError{Action: name, Spec: spec, Err: err}
			}
			ev = ev.Normalize()
			if prev, ok := km.bindings[ev]; ok && prev != action {
				return nil, &BindingError{
					Action: name,
					Spec:   spec,
					Err:    fmt.Errorf("%w: already bound to %s", ErrDuplicateBinding, prev),
				}
			}
			km.bindings[ev] = action
			km.specs[action] = append(km.specs[action], spec)
		}
	}

	return km, nil
}

// DefaultKeymap returns a keymap with the built-in bindings.
func DefaultKeymap() *Keymap {
	km, err := NewKeymap(DefaultBindings())
	if err != nil {
		panic("input: invalid default bindings: " + err.Error())
	}
	return km
}

// Lookup returns the action bound to a terminal event, or ActionNone.
func (k *Keymap) Lookup(ev backend.Event) Action {
	kev, ok := FromBackend(ev)
	if !ok {
		return ActionNone
	}
	return k.LookupKey(kev)
}

// LookupKey returns the action bound to a key event, or ActionNone.
func (k *Keymap) LookupKey(ev key.Event) Action {
	return k.bindings[ev.Normalize()]
}

// Specs returns the key specifications bound to an action.
func (k *Keymap) Specs(a Action) []string {
	specs := k.specs[a]
	out := make([]string, len(specs))
	copy(out, specs)
	return out
}

// FromBackend converts a terminal key event into a key.Event.
// Non-key events and unknown keys report false.
func FromBackend(ev backend.Event) (key.Event, bool) {
	if ev.Type != backend.EventKey {
		return key.Event{}, false
	}

	mods := convertMod(ev.Mod)
	switch ev.Key {
	case backend.KeyRune:
		if ev.Rune == 0 {
			return key.Event{}, false
		}
		return key.NewRuneEvent(ev.Rune, mods), true
	case backend.KeyCtrlC:
		return key.NewRuneEvent('c', mods.With(key.ModCtrl)), true
	}

	k, ok := specialKeys[ev.Key]
	if !ok {
		return key.Event{}, false
	}
	return key.NewSpecialEvent(k, mods), true
}

var specialKeys = map[backend.Key]key.Key{
	backend.KeyEscape:    key.KeyEscape,
	backend.KeyEnter:     key.KeyEnter,
	backend.KeyTab:       key.KeyTab,
	backend.KeyBackspace: key.KeyBackspace,
	backend.KeyHome:      key.KeyHome,
	backend.KeyEnd:       key.KeyEnd,
	backend.KeyPageUp:    key.KeyPageUp,
	backend.KeyPageDown:  key.KeyPageDown,
	backend.KeyUp:        key.KeyUp,
	backend.KeyDown:      key.KeyDown,
	backend.KeyLeft:      key.KeyLeft,
	backend.KeyRight:     key.KeyRight,
}

func convertMod(m backend.ModMask) key.Modifier {
	var out key.Modifier
	if m.Has(backend.ModShift) {
		out = out.With(key.ModShift)
	}
	if m.Has(backend.ModCtrl) {
		out = out.With(key.ModCtrl)
	}
	if m.Has(backend.ModAlt) {
		out = out.With(key.ModAlt)
	}
	if m.Has(backend.ModMeta) {
		out = out.With(key.ModMeta)
	}
	return out
}
