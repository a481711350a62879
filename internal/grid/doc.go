// Package grid turns catalog collections into a navigable board of tiles and
// draws it on a terminal backend.
//
// Builder produces a Board: one row per non-empty collection, one Tile per
// item. View implements nav.Sink[*Tile]; the navigator tells it which tile
// is highlighted and how far each row and the container are scrolled, and
// Draw paints the result:
//
//	┌ New to Disney+ ─────────────────────────────────┐
//	│ [→ Moana        ] [ Encanto       ] [ Bluey    … │
//	└──────────────────────────────────────────────────┘
//
// A row scrolled to page p shows the tiles starting at column
// p*WINDOW_SIZE. The container is scrolled so the focused row is the first
// visible row. Loading is the full-screen placeholder shown until the first
// board is ready.
package grid
