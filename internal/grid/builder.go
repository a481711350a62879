package grid

import (
	"context"

	"github.com/dshills/deeplus/internal/catalog"
	"github.com/dshills/deeplus/internal/event"
	"github.com/dshills/deeplus/internal/nav"
)

// Logger is the logging interface used by the grid.
type Logger interface {
	Debug(msg string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}

// Builder creates boards from collections.
type Builder struct {
	bus    *event.Bus
	logger Logger
}

// NewBuilder creates a builder. bus may be nil, in which case no grid.ready
// event is published.
func NewBuilder(bus *event.Bus, logger Logger) *Builder {
	if logger == nil {
		logger = nopLogger{}
	}
	return &Builder{bus: bus, logger: logger}
}

// Build lays out one row per collection with items. Collections without
// items produce no row.
func (b *Builder) Build(ctx context.Context, cols []catalog.Collection) *Board {
	board := &Board{}
	for _, col := range cols {
		if len(col.Items) == 0 {
			b.logger.Debug("grid: skipping empty collection %q", col.Title)
			continue
		}
		row := len(board.Grid)
		tiles := make([]*Tile, len(col.Items))
		for i, item := range col.Items {
			tiles[i] = &Tile{Row: row, Col: i, Item: item}
		}
		board.Grid = append(board.Grid, tiles)
		board.Titles = append(board.Titles, col.Title)
	}

	b.logger.Debug("grid: built %d rows, %d tiles", board.Rows(), board.Tiles())
	if b.bus != nil {
		ev := event.NewEvent(event.TopicGridReady, event.GridReady{Rows: board.Rows(), Tiles: board.Tiles()}, "grid")
		if err := b.bus.Publish(ctx, ev); err != nil {
			b.logger.Debug("grid: grid.ready handlers: %v", err)
		}
	}
	return board
}

// Ready is a convenience for handing a built board to a navigator.
func Ready(n *nav.Navigator[*Tile], board *Board) {
	if board == nil {
		n.OnGridReady(nil)
		return
	}
	n.OnGridReady(board.Grid)
}
