package nav

import (
	"fmt"
	"math/rand"
	"reflect"
	"testing"
)

// recordingSink records every call as a string.
type recordingSink struct {
	calls []string
}

func (s *recordingSink) Unhighlight(tile string) {
	s.calls = append(s.calls, "unhighlight "+tile)
}

func (s *recordingSink) Highlight(tile string, dir Direction) {
	s.calls = append(s.calls, fmt.Sprintf("highlight %s %s", tile, dir))
}

func (s *recordingSink) ScrollRow(row, offset int) {
	s.calls = append(s.calls, fmt.Sprintf("scrollRow %d %d", row, offset))
}

func (s *recordingSink) ScrollContainer(row int) {
	s.calls = append(s.calls, fmt.Sprintf("scrollContainer %d", row))
}

func (s *recordingSink) reset() {
	s.calls = nil
}

// makeGrid builds a grid whose tiles are named "r<row>c<col>".
func makeGrid(lengths ...int) Grid[string] {
	g := make(Grid[string], len(lengths))
	for r, n := range lengths {
		g[r] = make([]string, n)
		for c := range g[r] {
			g[r][c] = fmt.Sprintf("r%dc%d", r, c)
		}
	}
	return g
}

func newTestNavigator(lengths ...int) (*Navigator[string], *recordingSink) {
	sink := &recordingSink{}
	n := New[string](sink, WithWindowSize(5))
	n.OnGridReady(makeGrid(lengths...))
	return n, sink
}

func mustCursor(t *testing.T, n *Navigator[string]) Cursor {
	t.Helper()
	c, ok := n.Cursor()
	if !ok {
		t.Fatal("Cursor() reported empty navigator")
	}
	return c
}

func TestNavigator_GridReady(t *testing.T) {
	sink := &recordingSink{}
	n := New[string](sink)

	n.OnGridReady(makeGrid(12, 3))

	if got := mustCursor(t, n); got != (Cursor{0, 0}) {
		t.Errorf("Cursor() = %v, want (0,0)", got)
	}
	want := []string{"scrollContainer 0", "highlight r0c0 none"}
	if !reflect.DeepEqual(sink.calls, want) {
		t.Errorf("calls = %v, want %v", sink.calls, want)
	}
}

func TestNavigator_EmptyGrid(t *testing.T) {
	sink := &recordingSink{}
	n := New[string](sink)

	n.OnGridReady(nil)

	if n.Active() {
		t.Error("Active() = true, want false")
	}
	if _, ok := n.Cursor(); ok {
		t.Error("Cursor() ok = true, want false")
	}
	for _, dir := range []Direction{DirUp, DirDown, DirLeft, DirRight} {
		if n.OnKey(dir) {
			t.Errorf("OnKey(%s) accepted on empty grid", dir)
		}
	}
	if len(sink.calls) != 0 {
		t.Errorf("calls = %v, want none", sink.calls)
	}
}

func TestNavigator_RebuildToEmpty(t *testing.T) {
	n, sink := newTestNavigator(4, 4)
	n.OnKey(DirRight)
	sink.reset()

	n.OnGridReady(Grid[string]{})

	if n.Active() {
		t.Error("Active() = true after empty rebuild")
	}
	if len(sink.calls) != 0 {
		t.Errorf("calls = %v, want none", sink.calls)
	}
}

func TestNavigator_RebuildResetsCursorAndOffsets(t *testing.T) {
	n, sink := newTestNavigator(12, 12)
	for i := 0; i < 7; i++ {
		n.OnKey(DirRight)
	}
	n.OnKey(DirDown)
	sink.reset()

	n.OnGridReady(makeGrid(2, 2))

	if got := mustCursor(t, n); got != (Cursor{0, 0}) {
		t.Errorf("Cursor() = %v, want (0,0)", got)
	}
	for row := 0; row < 2; row++ {
		if got := n.Offset(row); got != 0 {
			t.Errorf("Offset(%d) = %d, want 0", row, got)
		}
	}
	want := []string{"scrollContainer 0", "highlight r0c0 none"}
	if !reflect.DeepEqual(sink.calls, want) {
		t.Errorf("calls = %v, want %v", sink.calls, want)
	}
}

func TestNavigator_ScenarioA(t *testing.T) {
	n, sink := newTestNavigator(12, 3)

	for i := 1; i <= 5; i++ {
		sink.reset()
		if !n.OnKey(DirRight) {
			t.Fatalf("move %d rejected", i)
		}
		scrolled := false
		for _, call := range sink.calls {
			if call == "scrollRow 0 1" {
				scrolled = true
			}
		}
		if scrolled != (i == 5) {
			t.Errorf("move %d: scrollRow emitted = %v, want %v", i, scrolled, i == 5)
		}
	}

	if got := mustCursor(t, n); got != (Cursor{0, 5}) {
		t.Errorf("Cursor() = %v, want (0,5)", got)
	}
	if got := n.Offset(0); got != 1 {
		t.Errorf("Offset(0) = %d, want 1", got)
	}
	want := []string{
		"unhighlight r0c4",
		"scrollRow 0 1",
		"scrollContainer 0",
		"highlight r0c5 right",
	}
	if !reflect.DeepEqual(sink.calls, want) {
		t.Errorf("fifth move calls = %v, want %v", sink.calls, want)
	}
}

func TestNavigator_ScenarioB(t *testing.T) {
	n, sink := newTestNavigator(12, 3)
	for i := 0; i < 5; i++ {
		n.OnKey(DirRight)
	}
	sink.reset()

	if !n.OnKey(DirDown) {
		t.Fatal("down rejected")
	}

	if got := mustCursor(t, n); got != (Cursor{1, 0}) {
		t.Errorf("Cursor() = %v, want (1,0)", got)
	}
	want := []string{
		"unhighlight r0c5",
		"scrollContainer 1",
		"highlight r1c0 down",
	}
	if !reflect.DeepEqual(sink.calls, want) {
		t.Errorf("calls = %v, want %v", sink.calls, want)
	}
	// Row 0 keeps the page it scrolled to.
	if got := n.Offset(0); got != 1 {
		t.Errorf("Offset(0) = %d, want 1", got)
	}
}

func TestNavigator_ScenarioC(t *testing.T) {
	n, _ := newTestNavigator(12, 3)

	if !n.OnKey(DirDown) {
		t.Fatal("down rejected")
	}
	if got := mustCursor(t, n); got != (Cursor{1, 0}) {
		t.Errorf("Cursor() = %v, want (1,0)", got)
	}
}

func TestNavigator_ScenarioD(t *testing.T) {
	n, sink := newTestNavigator(12, 3)
	for i := 0; i < 11; i++ {
		n.OnKey(DirRight)
	}
	if got := mustCursor(t, n); got != (Cursor{0, 11}) {
		t.Fatalf("Cursor() = %v, want (0,11)", got)
	}
	sink.reset()

	if n.OnKey(DirRight) {
		t.Error("right at last column accepted")
	}
	if got := mustCursor(t, n); got != (Cursor{0, 11}) {
		t.Errorf("Cursor() = %v, want (0,11)", got)
	}
	if len(sink.calls) != 0 {
		t.Errorf("calls = %v, want none", sink.calls)
	}
}

func TestNavigator_LeftAtOriginIdempotent(t *testing.T) {
	n, sink := newTestNavigator(6, 6)
	sink.reset()
	before := n.State()

	for i := 0; i < 10; i++ {
		if n.OnKey(DirLeft) {
			t.Fatalf("left at column 0 accepted on attempt %d", i)
		}
	}

	after := n.State()
	if c1, _ := before.Cursor(); c1 != mustCursor(t, n) {
		t.Errorf("cursor changed: %v -> %v", c1, mustCursor(t, n))
	}
	if !reflect.DeepEqual(before.Offsets(), after.Offsets()) {
		t.Errorf("offsets changed: %v -> %v", before.Offsets(), after.Offsets())
	}
	if len(sink.calls) != 0 {
		t.Errorf("calls = %v, want none", sink.calls)
	}
}

func TestNavigator_UpAtTopAndDownAtBottom(t *testing.T) {
	n, sink := newTestNavigator(3, 3)
	sink.reset()

	if n.OnKey(DirUp) {
		t.Error("up on first row accepted")
	}
	n.OnKey(DirDown)
	sink.reset()
	if n.OnKey(DirDown) {
		t.Error("down on last row accepted")
	}
	if len(sink.calls) != 0 {
		t.Errorf("calls = %v, want none", sink.calls)
	}
}

func TestNavigator_RoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		start int
	}{
		{"inside first page", 2},
		{"page boundary", 4},
		{"second page", 6},
		{"start of second page", 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, sink := newTestNavigator(12)
			for i := 0; i < tt.start; i++ {
				n.OnKey(DirRight)
			}
			before := n.State()
			sink.reset()

			if !n.OnKey(DirRight) || !n.OnKey(DirLeft) {
				t.Fatal("round trip rejected")
			}

			if got := mustCursor(t, n); got != (Cursor{0, tt.start}) {
				t.Errorf("Cursor() = %v, want (0,%d)", got, tt.start)
			}
			if !reflect.DeepEqual(n.State().Offsets(), before.Offsets()) {
				t.Errorf("Offsets() = %v, want %v", n.State().Offsets(), before.Offsets())
			}
			tile := fmt.Sprintf("r0c%d", tt.start)
			if sink.calls[0] != "unhighlight "+tile {
				t.Errorf("first call = %q, want unhighlight %s", sink.calls[0], tile)
			}
			if last := sink.calls[len(sink.calls)-1]; last != "highlight "+tile+" left" {
				t.Errorf("last call = %q, want highlight %s left", last, tile)
			}
		})
	}
}

func TestNavigator_LeftAcrossPageBoundary(t *testing.T) {
	n, sink := newTestNavigator(12)
	for i := 0; i < 5; i++ {
		n.OnKey(DirRight)
	}
	sink.reset()

	n.OnKey(DirLeft)

	want := []string{
		"unhighlight r0c5",
		"scrollRow 0 0",
		"scrollContainer 0",
		"highlight r0c4 left",
	}
	if !reflect.DeepEqual(sink.calls, want) {
		t.Errorf("calls = %v, want %v", sink.calls, want)
	}
}

func TestNavigator_ColumnShiftForward(t *testing.T) {
	// Row 1 scrolled to page 1, row 0 stays on page 0.
	n, _ := newTestNavigator(12, 12)
	n.OnKey(DirDown)
	for i := 0; i < 6; i++ {
		n.OnKey(DirRight)
	}
	n.OnKey(DirUp)
	if got := mustCursor(t, n); got != (Cursor{0, 1}) {
		t.Fatalf("Cursor() = %v, want (0,1)", got)
	}

	if !n.OnKey(DirDown) {
		t.Fatal("down rejected")
	}
	if got := mustCursor(t, n); got != (Cursor{1, 6}) {
		t.Errorf("Cursor() = %v, want (1,6)", got)
	}
}

func TestNavigator_ColumnShiftAcrossPages(t *testing.T) {
	n, _ := newTestNavigator(3, 12)
	n.OnKey(DirDown)
	for i := 0; i < 10; i++ {
		n.OnKey(DirRight)
	}
	// Row 1 stays on page 2; row 0 is entered two pages back.
	n.OnKey(DirUp)
	if got := mustCursor(t, n); got != (Cursor{0, 0}) {
		t.Fatalf("Cursor() = %v, want (0,0)", got)
	}

	if !n.OnKey(DirDown) {
		t.Fatal("down rejected")
	}
	if got := mustCursor(t, n); got != (Cursor{1, 10}) {
		t.Errorf("Cursor() = %v, want (1,10)", got)
	}
}

func TestNavigator_ColumnShiftBothWays(t *testing.T) {
	n, _ := newTestNavigator(12, 7)
	for i := 0; i < 10; i++ {
		n.OnKey(DirRight)
	}
	n.OnKey(DirDown) // page 2 -> page 0: 10 - 10 = 0
	for i := 0; i < 6; i++ {
		n.OnKey(DirRight)
	}
	n.OnKey(DirUp) // page 1 -> page 2: 6 + 5 = 11
	if got := mustCursor(t, n); got != (Cursor{0, 11}) {
		t.Fatalf("Cursor() = %v, want (0,11)", got)
	}
	for i := 0; i < 11; i++ {
		n.OnKey(DirLeft)
	}

	// Row 0 back on page 0, row 1 still on page 1: 0 + 5 = 5.
	if !n.OnKey(DirDown) {
		t.Fatal("down rejected")
	}
	if got := mustCursor(t, n); got != (Cursor{1, 5}) {
		t.Errorf("Cursor() = %v, want (1,5)", got)
	}
}

func TestNavigator_StrandedByShortRow(t *testing.T) {
	// Row 1 scrolls to page 2, then row 0 (length 12) on page 0 tries to
	// enter it from column 4: 4 + 10 = 14, past row 1's 12 tiles.
	n, sink := newTestNavigator(12, 12)
	n.OnKey(DirDown)
	for i := 0; i < 11; i++ {
		n.OnKey(DirRight)
	}
	n.OnKey(DirUp) // 11 - 10 = 1
	for i := 0; i < 3; i++ {
		n.OnKey(DirRight)
	}
	if got := mustCursor(t, n); got != (Cursor{0, 4}) {
		t.Fatalf("Cursor() = %v, want (0,4)", got)
	}
	sink.reset()

	if n.OnKey(DirDown) {
		t.Error("down with overshooting column accepted")
	}
	if got := mustCursor(t, n); got != (Cursor{0, 4}) {
		t.Errorf("Cursor() = %v, want (0,4)", got)
	}
	if len(sink.calls) != 0 {
		t.Errorf("calls = %v, want none", sink.calls)
	}
}

func TestNavigator_InvariantUnderRandomMoves(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	dirs := []Direction{DirUp, DirDown, DirLeft, DirRight}
	shapes := [][]int{
		{12, 3},
		{1},
		{7, 1, 20, 5, 9},
		{5, 5, 5, 5},
		{3, 30, 2, 16},
	}

	for _, lengths := range shapes {
		n, _ := newTestNavigator(lengths...)
		g := n.Grid()
		for step := 0; step < 2000; step++ {
			n.OnKey(dirs[rng.Intn(len(dirs))])
			c := mustCursor(t, n)
			if !g.Contains(c) {
				t.Fatalf("shape %v step %d: cursor %v outside grid", lengths, step, c)
			}
			if got, want := n.Offset(c.Row), c.Col/n.WindowSize(); got != want {
				t.Fatalf("shape %v step %d: Offset(%d) = %d, want %d", lengths, step, c.Row, got, want)
			}
		}
	}
}

func TestNavigator_Current(t *testing.T) {
	n, _ := newTestNavigator(4, 4)
	n.OnKey(DirRight)
	n.OnKey(DirDown)

	tile, ok := n.Current()
	if !ok || tile != "r1c1" {
		t.Errorf("Current() = %q, %v, want r1c1, true", tile, ok)
	}
}

func TestNavigator_CustomWindowSize(t *testing.T) {
	sink := &recordingSink{}
	n := New[string](sink, WithWindowSize(3))
	n.OnGridReady(makeGrid(10))

	for i := 0; i < 3; i++ {
		n.OnKey(DirRight)
	}
	if got := n.Offset(0); got != 1 {
		t.Errorf("Offset(0) = %d, want 1", got)
	}
	if got := n.WindowSize(); got != 3 {
		t.Errorf("WindowSize() = %d, want 3", got)
	}
}
