package grid

import (
	"github.com/dshills/deeplus/internal/catalog"
	"github.com/dshills/deeplus/internal/nav"
)

// Tile is one focusable cell of the board.
type Tile struct {
	Row  int
	Col  int
	Item catalog.Item

	highlighted bool
	arrival     nav.Direction
}

// Highlighted reports whether the tile currently has focus.
func (t *Tile) Highlighted() bool {
	return t.highlighted
}

// Arrival returns the direction the focus came from while highlighted.
func (t *Tile) Arrival() nav.Direction {
	return t.arrival
}

// Board is the built grid plus the title of every row.
type Board struct {
	Titles []string
	Grid   nav.Grid[*Tile]
}

// Rows returns the number of rows.
func (b *Board) Rows() int {
	if b == nil {
		return 0
	}
	return b.Grid.Rows()
}

// Tiles returns the total number of tiles.
func (b *Board) Tiles() int {
	if b == nil {
		return 0
	}
	n := 0
	for _, row := range b.Grid {
		n += len(row)
	}
	return n
}

// Title returns the title of row, or "" when out of range.
func (b *Board) Title(row int) string {
	if b == nil || row < 0 || row >= len(b.Titles) {
		return ""
	}
	return b.Titles[row]
}
