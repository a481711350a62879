package nav

import "fmt"

// DefaultWindowSize is the number of tiles visible per page in one row.
const DefaultWindowSize = 5

// Grid is a jagged grid of tile handles. The navigator only reads row
// counts, row lengths and the handles it passes to the Sink.
type Grid[T any] [][]T

// Rows returns the number of rows.
func (g Grid[T]) Rows() int {
	return len(g)
}

// RowLen returns the length of row, or 0 for a row outside the grid.
func (g Grid[T]) RowLen(row int) int {
	if row < 0 || row >= len(g) {
		return 0
	}
	return len(g[row])
}

// At returns the tile at c.
func (g Grid[T]) At(c Cursor) (T, bool) {
	var zero T
	if !g.Contains(c) {
		return zero, false
	}
	return g[c.Row][c.Col], true
}

// Contains reports whether c addresses a tile of the grid.
func (g Grid[T]) Contains(c Cursor) bool {
	return c.Row >= 0 && c.Row < len(g) && c.Col >= 0 && c.Col < len(g[c.Row])
}

// Shape returns the row lengths of g.
func (g Grid[T]) Shape() Shape {
	shape := make(Shape, len(g))
	for i, row := range g {
		shape[i] = len(row)
	}
	return shape
}

// Shape describes a grid by the length of each row.
type Shape []int

// Contains reports whether c is within the shape.
func (s Shape) Contains(c Cursor) bool {
	return c.Row >= 0 && c.Row < len(s) && c.Col >= 0 && c.Col < s[c.Row]
}

// Cursor is a (row, column) position in the grid.
type Cursor struct {
	Row int
	Col int
}

// String returns the cursor as "(row,col)".
func (c Cursor) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// pageOf returns the page a column falls on for the given window size.
func pageOf(col, window int) int {
	return col / window
}
