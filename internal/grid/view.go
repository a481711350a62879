package grid

import (
	"fmt"

	"github.com/dshills/deeplus/internal/nav"
	"github.com/dshills/deeplus/internal/renderer/backend"
	"github.com/dshills/deeplus/internal/renderer/core"
)

// Default layout values.
const (
	DefaultTileWidth = 22
	DefaultRowHeight = 6

	minTileWidth = 4
	minRowHeight = 3
)

// arrivalMarkers are drawn in front of the focused tile's title.
var arrivalMarkers = map[nav.Direction]string{
	nav.DirUp:    "↑",
	nav.DirDown:  "↓",
	nav.DirLeft:  "←",
	nav.DirRight: "→",
}

// ViewOption configures a View.
type ViewOption func(*View)

// WithTheme sets the colours.
func WithTheme(t Theme) ViewOption {
	return func(v *View) { v.theme = t }
}

// WithTileWidth sets the width of a tile in cells, including the gap.
func WithTileWidth(w int) ViewOption {
	return func(v *View) {
		if w >= minTileWidth {
			v.tileWidth = w
		}
	}
}

// WithRowHeight sets the height of a row in lines, including its title.
func WithRowHeight(h int) ViewOption {
	return func(v *View) {
		if h >= minRowHeight {
			v.rowHeight = h
		}
	}
}

// WithWindowSize sets the number of tiles per page.
func WithWindowSize(n int) ViewOption {
	return func(v *View) {
		if n > 0 {
			v.window = n
		}
	}
}

// WithViewLogger sets the logger.
func WithViewLogger(l Logger) ViewOption {
	return func(v *View) {
		if l != nil {
			v.logger = l
		}
	}
}

// View draws a Board and implements nav.Sink[*Tile]. Sink calls only update
// the view state; Draw paints it. View is not safe for concurrent use.
type View struct {
	backend backend.Backend
	theme   Theme
	logger  Logger

	tileWidth int
	rowHeight int
	window    int

	board   *Board
	offsets []int
	top     int
	focused *Tile
}

var _ nav.Sink[*Tile] = (*View)(nil)

// NewView creates a view drawing on b.
func NewView(b backend.Backend, opts ...ViewOption) *View {
	v := &View{
		backend:   b,
		theme:     DefaultTheme(),
		logger:    nopLogger{},
		tileWidth: DefaultTileWidth,
		rowHeight: DefaultRowHeight,
		window:    nav.DefaultWindowSize,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// SetBoard replaces the board and resets every scroll position.
func (v *View) SetBoard(board *Board) {
	v.board = board
	v.offsets = make([]int, board.Rows())
	v.top = 0
	v.focused = nil
}

// Board returns the current board.
func (v *View) Board() *Board {
	return v.board
}

// SetTheme replaces the colours.
func (v *View) SetTheme(t Theme) {
	v.theme = t
}

// WindowSize returns the number of tiles per page.
func (v *View) WindowSize() int {
	return v.window
}

// Unhighlight implements nav.Sink.
func (v *View) Unhighlight(tile *Tile) {
	if tile == nil {
		return
	}
	tile.highlighted = false
	tile.arrival = nav.DirNone
	if v.focused == tile {
		v.focused = nil
	}
}

// Highlight implements nav.Sink.
func (v *View) Highlight(tile *Tile, dir nav.Direction) {
	if tile == nil {
		return
	}
	if v.focused != nil && v.focused != tile {
		v.Unhighlight(v.focused)
	}
	tile.highlighted = true
	tile.arrival = dir
	v.focused = tile
}

// ScrollRow implements nav.Sink.
func (v *View) ScrollRow(row, offsetPages int) {
	if row < 0 || row >= len(v.offsets) {
		v.logger.Debug("grid: scroll of unknown row %d", row)
		return
	}
	v.offsets[row] = offsetPages
}

// ScrollContainer implements nav.Sink.
func (v *View) ScrollContainer(row int) {
	v.top = row
}

// Focused returns the highlighted tile, or nil.
func (v *View) Focused() *Tile {
	return v.focused
}

// Offset returns the page offset of row.
func (v *View) Offset(row int) int {
	if row < 0 || row >= len(v.offsets) {
		return 0
	}
	return v.offsets[row]
}

// Top returns the first visible row.
func (v *View) Top() int {
	return v.top
}

// TileWidth returns the width a tile is drawn with on a screen width cells
// wide. Tiles shrink below the configured width so a full page always fits.
func (v *View) TileWidth(width int) int {
	return max(1, min(v.tileWidth, width/v.window))
}

// VisibleTiles returns how many whole tiles fit across the screen. It is
// never less than the page size while the screen is at least one cell per
// tile wide.
func (v *View) VisibleTiles() int {
	w, _ := v.backend.Size()
	return w / v.TileWidth(w)
}

// Draw paints the board and the status line and flushes the backend.
func (v *View) Draw() {
	width, height := v.backend.Size()
	base := v.theme.base()
	v.backend.Fill(core.RectFromSize(0, 0, height, width), core.NewStyledCell(' ', base))

	gridHeight := height - 1
	for row := v.top; row < v.board.Rows(); row++ {
		y := (row - v.top) * v.rowHeight
		if y >= gridHeight {
			break
		}
		v.drawRow(row, y, width, gridHeight)
	}

	if height > 0 {
		v.drawStatus(height-1, width)
	}
	v.backend.Show()
}

func (v *View) drawRow(row, y, width, limitY int) {
	drawText(v.backend, 1, y, width, v.board.Title(row), v.theme.rowTitle())

	first := v.Offset(row) * v.window
	tiles := v.board.Grid[row]
	if first > 0 {
		drawRight(v.backend, width, y, fmt.Sprintf("‹ %d more ", first), v.theme.muted())
	}

	tw := v.TileWidth(width)
	last := min(len(tiles), first+v.VisibleTiles())
	for col := first; col < last; col++ {
		x := (col - first) * tw
		v.drawTile(tiles[col], x, y+1, min(x+tw-1, width), min(y+v.rowHeight-1, limitY))
	}
}

// drawTile paints a tile into columns [x, right) of lines [y, bottom).
func (v *View) drawTile(t *Tile, x, y, right, bottom int) {
	body, muted := v.theme.tile(), v.theme.tileMuted()
	if t.highlighted {
		body, muted = v.theme.highlight(), v.theme.highlightMuted()
	}
	for line := y; line < bottom; line++ {
		fillRow(v.backend, x, line, right, body)
	}
	if y >= bottom {
		return
	}

	inner := right - x - 2
	title := t.Item.Title
	if marker, ok := arrivalMarkers[t.arrival]; ok && t.highlighted {
		title = marker + " " + title
	}
	drawText(v.backend, x+1, y, right-1, core.Truncate(title, inner), body)

	if y+1 < bottom && t.Item.Type != "" {
		drawText(v.backend, x+1, y+1, right-1, core.Truncate(t.Item.Type, inner), muted)
	}
}

func (v *View) drawStatus(y, width int) {
	style := v.theme.status()
	fillRow(v.backend, 0, y, width, style)
	if v.focused == nil {
		if v.board != nil && v.board.Rows() == 0 {
			drawText(v.backend, 0, y, width, " No collections", style)
		}
		return
	}

	t := v.focused
	pos := fmt.Sprintf(" row %d/%d  tile %d/%d ", t.Row+1, v.board.Rows(), t.Col+1, len(v.board.Grid[t.Row]))
	left := " " + v.board.Title(t.Row) + " › " + t.Item.Title
	avail := width - core.StringWidth(pos)
	drawText(v.backend, 0, y, avail, core.Truncate(left, avail), style)
	drawRight(v.backend, width, y, pos, style)
}
