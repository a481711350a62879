package nav

import "fmt"

// Direction is the direction of a cursor move.
type Direction uint8

const (
	// DirNone tags the initial highlight after a grid rebuild.
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// String returns the lower-case name of the direction.
func (d Direction) String() string {
	switch d {
	case DirNone:
		return "none"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return fmt.Sprintf("Direction(%d)", d)
	}
}

// delta returns the row and column step for d.
func (d Direction) delta() (dRow, dCol int) {
	switch d {
	case DirUp:
		return -1, 0
	case DirDown:
		return 1, 0
	case DirLeft:
		return 0, -1
	case DirRight:
		return 0, 1
	}
	return 0, 0
}

// Vertical reports whether d moves between rows.
func (d Direction) Vertical() bool {
	return d == DirUp || d == DirDown
}
