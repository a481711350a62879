package nav

// State is the cursor and per-row page offsets of a grid, without the grid
// itself. Its methods compute transitions but never touch a Sink.
type State struct {
	window  int
	shape   Shape
	cursor  Cursor
	offsets []int
	active  bool
}

// NewState returns an empty state using the given window size.
// Non-positive sizes fall back to DefaultWindowSize.
func NewState(window int) State {
	if window <= 0 {
		window = DefaultWindowSize
	}
	return State{window: window}
}

// Transition is the outcome of an accepted move.
type Transition struct {
	From      Cursor
	To        Cursor
	Direction Direction

	// Offset is the page offset of To.Row after the move.
	Offset int
	// RowScrolled is set when Offset differs from the row's previous offset.
	RowScrolled bool
}

// Reset replaces the shape, zeroes every row offset and moves the cursor to
// the origin. The state is active when the first row has at least one tile.
func (s *State) Reset(shape Shape) {
	s.shape = append(Shape(nil), shape...)
	s.offsets = make([]int, len(shape))
	s.cursor = Cursor{}
	s.active = len(shape) > 0 && shape[0] > 0
}

// Active reports whether the state has a cursor.
func (s State) Active() bool {
	return s.active
}

// Cursor returns the current cursor. The second result is false when the
// state is empty.
func (s State) Cursor() (Cursor, bool) {
	if !s.active {
		return Cursor{}, false
	}
	return s.cursor, true
}

// Offset returns the page offset of row, or 0 for a row outside the grid.
func (s State) Offset(row int) int {
	if row < 0 || row >= len(s.offsets) {
		return 0
	}
	return s.offsets[row]
}

// Offsets returns a copy of all row offsets.
func (s State) Offsets() []int {
	return append([]int(nil), s.offsets...)
}

// WindowSize returns the number of tiles per page.
func (s State) WindowSize() int {
	return s.window
}

// Step computes the transition for a move in dir. It returns false when the
// state is empty, dir is DirNone or the candidate lies outside the grid.
func (s State) Step(dir Direction) (Transition, bool) {
	if !s.active || dir == DirNone {
		return Transition{}, false
	}

	dRow, dCol := dir.delta()
	to := Cursor{Row: s.cursor.Row + dRow, Col: s.cursor.Col + dCol}
	if dir.Vertical() {
		if to.Row < 0 || to.Row >= len(s.shape) {
			return Transition{}, false
		}
		to.Col = s.adjustColumn(to.Row)
	}
	if !s.shape.Contains(to) {
		return Transition{}, false
	}

	offset := pageOf(to.Col, s.window)
	return Transition{
		From:        s.cursor,
		To:          to,
		Direction:   dir,
		Offset:      offset,
		RowScrolled: offset != s.offsets[to.Row],
	}, true
}

// Apply commits a transition returned by Step.
func (s *State) Apply(t Transition) {
	s.cursor = t.To
	s.offsets[t.To.Row] = t.Offset
}

// adjustColumn shifts the current column by whole pages so that it keeps
// its on-screen position when entering a row scrolled to a different page.
// The result is not clamped.
func (s State) adjustColumn(dest int) int {
	cur := s.offsets[s.cursor.Row]
	dst := s.offsets[dest]
	col := s.cursor.Col
	switch {
	case dst > cur:
		col += (dst - cur) * s.window
	case dst < cur:
		col -= (cur - dst) * s.window
	}
	return col
}
