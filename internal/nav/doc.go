// Package nav implements the cursor state machine that drives focus across
// the tile grid.
//
// A grid is a jagged sequence of rows. The navigator tracks a (row, col)
// cursor, keeps one horizontal page offset per row and tells a Sink which
// tile to unhighlight, which to highlight and how far to scroll a row or the
// whole container after every accepted move.
//
// The package is split in two layers:
//
//   - State holds the cursor and the row offsets and computes transitions
//     without side effects (State.Step / State.Apply).
//   - Navigator owns a Grid and a Sink and dispatches the sink calls for a
//     transition in a fixed order: unhighlight, row scroll (only when the
//     row offset changed), container scroll, highlight.
//
// Moves that would leave the grid are silently ignored. Pressing an arrow
// key at an edge is ordinary input, not an error.
//
// Navigator is not safe for concurrent use. All calls are expected to come
// from the goroutine that owns the user interface.
package nav
