// Package input translates terminal key events into grid actions.
//
// Bindings map key specifications (see package key) to an Action. Each
// action may have several keys; a key may belong to only one action.
//
//	km, err := input.NewKeymap(input.DefaultBindings())
//	switch act := km.Lookup(ev); act {
//	case input.ActionUp, input.ActionDown, input.ActionLeft, input.ActionRight:
//		navigator.OnKey(act.Direction())
//	}
package input
