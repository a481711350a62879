package nav

// Sink receives the rendering side effects of the navigator.
type Sink[T any] interface {
	// Unhighlight removes the highlight marker from a tile.
	Unhighlight(tile T)

	// Highlight marks a tile as focused. dir is the direction the cursor
	// arrived from, DirNone for the initial highlight.
	Highlight(tile T, dir Direction)

	// ScrollRow translates a row by offsetPages windows of tiles.
	ScrollRow(row, offsetPages int)

	// ScrollContainer brings row into view.
	ScrollContainer(row int)
}

// Logger is the subset of the application logger used by the navigator.
type Logger interface {
	Debug(msg string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}

// Option configures a Navigator.
type Option func(*options)

type options struct {
	window int
	logger Logger
}

// WithWindowSize sets the number of tiles per page.
func WithWindowSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.window = n
		}
	}
}

// WithLogger sets the logger for rejected moves and rebuilds.
func WithLogger(l Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// Navigator owns the grid and the cursor state and dispatches Sink calls.
type Navigator[T any] struct {
	grid   Grid[T]
	state  State
	sink   Sink[T]
	logger Logger
}

// New creates a navigator in the empty state.
func New[T any](sink Sink[T], opts ...Option) *Navigator[T] {
	o := options{window: DefaultWindowSize, logger: nopLogger{}}
	for _, opt := range opts {
		opt(&o)
	}
	return &Navigator[T]{
		state:  NewState(o.window),
		sink:   sink,
		logger: o.logger,
	}
}

// OnGridReady replaces the grid and resets the cursor to the origin. A
// non-empty grid gets one highlight pass at (0,0); an empty grid leaves the
// navigator empty and produces no Sink calls.
func (n *Navigator[T]) OnGridReady(grid Grid[T]) {
	n.grid = grid
	n.state.Reset(grid.Shape())
	if !n.state.Active() {
		n.logger.Debug("nav: empty grid")
		return
	}
	n.logger.Debug("nav: grid ready rows=%d", grid.Rows())

	origin := Cursor{}
	n.apply(Transition{
		From:      origin,
		To:        origin,
		Direction: DirNone,
		Offset:    pageOf(origin.Col, n.state.WindowSize()),
	})
}

// OnKey moves the cursor in dir. It reports whether the move was accepted;
// rejected moves leave the state untouched and produce no Sink calls.
func (n *Navigator[T]) OnKey(dir Direction) bool {
	t, ok := n.state.Step(dir)
	if !ok {
		if c, active := n.state.Cursor(); active {
			n.logger.Debug("nav: %s ignored at %s", dir, c)
		}
		return false
	}

	if old, ok := n.grid.At(t.From); ok {
		n.sink.Unhighlight(old)
	}
	n.apply(t)
	return true
}

// apply commits t and emits row scroll, container scroll and highlight.
func (n *Navigator[T]) apply(t Transition) {
	n.state.Apply(t)
	if t.RowScrolled {
		n.sink.ScrollRow(t.To.Row, t.Offset)
	}
	n.sink.ScrollContainer(t.To.Row)
	if tile, ok := n.grid.At(t.To); ok {
		n.sink.Highlight(tile, t.Direction)
	}
}

// Active reports whether a non-empty grid is loaded.
func (n *Navigator[T]) Active() bool {
	return n.state.Active()
}

// Cursor returns the cursor; false when the navigator is empty.
func (n *Navigator[T]) Cursor() (Cursor, bool) {
	return n.state.Cursor()
}

// Current returns the focused tile.
func (n *Navigator[T]) Current() (T, bool) {
	c, ok := n.state.Cursor()
	if !ok {
		var zero T
		return zero, false
	}
	return n.grid.At(c)
}

// Offset returns the page offset of row.
func (n *Navigator[T]) Offset(row int) int {
	return n.state.Offset(row)
}

// State returns a copy of the navigator state.
func (n *Navigator[T]) State() State {
	s := n.state
	s.offsets = s.Offsets()
	return s
}

// Grid returns the current grid.
func (n *Navigator[T]) Grid() Grid[T] {
	return n.grid
}

// WindowSize returns the number of tiles per page.
func (n *Navigator[T]) WindowSize() int {
	return n.state.WindowSize()
}
