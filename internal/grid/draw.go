package grid

import (
	"github.com/rivo/uniseg"

	"github.com/dshills/deeplus/internal/renderer/backend"
	"github.com/dshills/deeplus/internal/renderer/core"
)

// drawText writes s starting at (x, y) and stops before column limit. Each
// grapheme cluster is drawn as its first rune. It returns the column after
// the last cell written.
func drawText(b backend.Backend, x, y, limit int, s string, style core.Style) int {
	state := -1
	rest := s
	for len(rest) > 0 {
		var cluster string
		var w int
		cluster, rest, w, state = uniseg.FirstGraphemeClusterInString(rest, state)
		if w == 0 {
			continue
		}
		if x+w > limit {
			break
		}
		r := []rune(cluster)[0]
		b.SetCell(x, y, core.Cell{Rune: r, Width: w, Style: style})
		x += w
	}
	return x
}

// fillRow paints columns [x, limit) of line y.
func fillRow(b backend.Backend, x, y, limit int, style core.Style) {
	if limit <= x {
		return
	}
	b.Fill(core.ScreenRect{Top: y, Left: x, Bottom: y + 1, Right: limit}, core.NewStyledCell(' ', style))
}

// drawRight writes s so that it ends just before column limit.
func drawRight(b backend.Backend, limit, y int, s string, style core.Style) {
	drawText(b, limit-core.StringWidth(s), y, limit, s, style)
}
