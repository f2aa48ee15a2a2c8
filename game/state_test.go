package game

import (
	"testing"
)

// withStone returns a copy of s with a stone of the given color and
// health written at (row, col).
func withStone(s GameState, row, col int, color Player, health int, petrified bool) GameState {
	p := Point{row, col}
	s.Board.Place(p, color)
	st := s.Board.At(p)
	st.Health = health
	st.Petrified = petrified
	s.Board.Set(p, st)
	return s
}

func TestOpeningMove(t *testing.T) {
	s := NewGameState()
	next, ok := PlaceStone(s, 4, 4)
	if !ok {
		t.Fatal("opening move should be legal")
	}

	stones := 0
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if !next.Board[r][c].Empty() {
				stones++
			}
		}
	}
	if stones != 1 {
		t.Fatalf("expected exactly one stone, got %d", stones)
	}

	st := next.Board.At(Point{4, 4})
	if st.Color != Black || st.Health != MaxHealth || st.Petrified {
		t.Fatalf("unexpected stone %+v", st)
	}
	if next.Turn != White {
		t.Fatalf("turn should be White, got %s", next.Turn)
	}
	if next.TurnCount != 1 {
		t.Fatalf("turn count should be 1, got %d", next.TurnCount)
	}
	if next.Prisoners != (Prisoners{}) {
		t.Fatalf("prisoners should be zero, got %+v", next.Prisoners)
	}
	if next.LastMove != (Point{4, 4}) {
		t.Fatalf("last move should be (4,4), got %v", next.LastMove)
	}
}

func TestRejectOutOfBounds(t *testing.T) {
	s := NewGameState()
	for _, p := range []Point{{-1, 0}, {0, -1}, {Size, 0}, {0, Size}} {
		if next, ok := PlaceStone(s, p.Row, p.Col); ok || next != s {
			t.Fatalf("move at %v should be rejected unchanged", p)
		}
	}
}

func TestRejectOccupied(t *testing.T) {
	s := NewGameState()
	s, _ = PlaceStone(s, 4, 4)
	if next, ok := PlaceStone(s, 4, 4); ok || next != s {
		t.Fatal("occupied target should be rejected unchanged")
	}
}

func TestRejectWhenNotPlaying(t *testing.T) {
	s := NewGameState()
	s.Status = BlackWon
	if next, ok := PlaceStone(s, 4, 4); ok || next != s {
		t.Fatal("move outside Playing should be rejected unchanged")
	}
}

func TestCaptureCornerStone(t *testing.T) {
	// White at (0,0) with liberties (0,1) and (1,0); Black takes
	// both, White passing in between.
	s := NewGameState()
	s = withStone(s, 0, 0, White, MaxHealth, false)

	s, ok := PlaceStone(s, 0, 1)
	if !ok {
		t.Fatal("black (0,1) should be legal")
	}
	s = PassTurn(s) // white passes
	s, ok = PlaceStone(s, 1, 0)
	if !ok {
		t.Fatal("black (1,0) should be legal")
	}

	if !s.Board.Empty(Point{0, 0}) {
		t.Fatal("white stone should be captured")
	}
	if s.Prisoners.Black != 1 {
		t.Fatalf("black should hold 1 prisoner, got %d", s.Prisoners.Black)
	}
	if s.Prisoners.White != 0 {
		t.Fatalf("white should hold 0 prisoners, got %d", s.Prisoners.White)
	}
}

func TestCaptureWholeGroup(t *testing.T) {
	// Three-stone white group with a single liberty at (2,2).
	s := NewGameState()
	for _, p := range []Point{{2, 3}, {2, 4}, {2, 5}} {
		s = withStone(s, p.Row, p.Col, White, MaxHealth, false)
	}
	for _, p := range []Point{{1, 3}, {1, 4}, {1, 5}, {3, 3}, {3, 4}, {3, 5}, {2, 6}} {
		s = withStone(s, p.Row, p.Col, Black, MaxHealth, false)
	}

	next, ok := PlaceStone(s, 2, 2)
	if !ok {
		t.Fatal("capturing move should be legal")
	}
	for _, p := range []Point{{2, 3}, {2, 4}, {2, 5}} {
		if !next.Board.Empty(p) {
			t.Fatalf("white stone at %v should be captured", p)
		}
	}
	if next.Prisoners.Black != 3 {
		t.Fatalf("black should hold 3 prisoners, got %d", next.Prisoners.Black)
	}
}

func TestSuicideRolledBackAsUnit(t *testing.T) {
	// (0,0) has no liberties once filled; the white neighbors stay
	// alive, so this is suicide. The decayed health of the black
	// stone at (5,5) must also be restored.
	s := NewGameState()
	s = withStone(s, 0, 1, White, MaxHealth, false)
	s = withStone(s, 1, 0, White, MaxHealth, false)
	s = withStone(s, 5, 5, Black, 1, false)

	next, ok := PlaceStone(s, 0, 0)
	if ok {
		t.Fatal("suicide should be rejected")
	}
	if next != s {
		t.Fatal("rejected move must leave state deep-equal to the original")
	}
	if st := next.Board.At(Point{5, 5}); st.Health != 1 {
		t.Fatalf("decay must be rolled back, health is %d", st.Health)
	}
}

func TestNotSuicideWhenCapturing(t *testing.T) {
	// (0,0) would be suicide except the placement captures white
	// first, opening a liberty.
	s := NewGameState()
	s = withStone(s, 0, 1, White, MaxHealth, false)
	s = withStone(s, 0, 2, Black, MaxHealth, false)
	s = withStone(s, 1, 1, Black, MaxHealth, false)
	s = withStone(s, 1, 0, White, MaxHealth, false)
	s = withStone(s, 2, 0, Black, MaxHealth, false)

	next, ok := PlaceStone(s, 0, 0)
	if !ok {
		t.Fatal("capturing placement should be legal")
	}
	if !next.Board.Empty(Point{0, 1}) || !next.Board.Empty(Point{1, 0}) {
		t.Fatal("both white stones should be captured")
	}
	if next.Prisoners.Black != 2 {
		t.Fatalf("black should hold 2 prisoners, got %d", next.Prisoners.Black)
	}
	if next.Board.At(Point{0, 0}).Color != Black {
		t.Fatal("the played stone should remain on the board")
	}
}

func TestDecayRemovesCrumbledStone(t *testing.T) {
	s := NewGameState()
	s = withStone(s, 0, 0, Black, 1, false)

	next, ok := PlaceStone(s, 4, 4)
	if !ok {
		t.Fatal("move should be legal")
	}
	if !next.Board.Empty(Point{0, 0}) {
		t.Fatal("health-1 stone should crumble before placement")
	}
	if next.Prisoners != (Prisoners{}) {
		t.Fatalf("crumbled stones are not prisoners, got %+v", next.Prisoners)
	}
}

func TestDecayOnlyHitsTheMover(t *testing.T) {
	s := NewGameState()
	s = withStone(s, 0, 0, White, 5, false)
	s = withStone(s, 8, 8, Black, 5, false)

	next, _ := PlaceStone(s, 4, 4) // black moves
	if h := next.Board.At(Point{0, 0}).Health; h != 5 {
		t.Fatalf("white stone must not decay on black's move, health %d", h)
	}
	if h := next.Board.At(Point{8, 8}).Health; h != 4 {
		t.Fatalf("black stone should decay to 4, got %d", h)
	}
}

func TestPetrifiedStoneNeverDecays(t *testing.T) {
	s := NewGameState()
	s = withStone(s, 0, 0, Black, 5, true)

	next, _ := PlaceStone(s, 4, 4)
	if h := next.Board.At(Point{0, 0}).Health; h != 5 {
		t.Fatalf("petrified stone must not decay, health %d", h)
	}
}

func TestPetrifiedStoneStillCapturable(t *testing.T) {
	s := NewGameState()
	s = withStone(s, 0, 0, White, MaxHealth, true)
	s = withStone(s, 0, 1, Black, MaxHealth, false)

	next, ok := PlaceStone(s, 1, 0)
	if !ok {
		t.Fatal("capturing move should be legal")
	}
	if !next.Board.Empty(Point{0, 0}) {
		t.Fatal("petrification does not protect against capture")
	}
	if next.Prisoners.Black != 1 {
		t.Fatalf("black should hold 1 prisoner, got %d", next.Prisoners.Black)
	}
}

func TestEnclosingTerritoryPetrifiesWalls(t *testing.T) {
	// Black's second placement seals the corner point (0,0); both
	// wall stones petrify as part of the move.
	s := NewGameState()
	s, _ = PlaceStone(s, 0, 1)
	s = PassTurn(s)
	s, ok := PlaceStone(s, 1, 0)
	if !ok {
		t.Fatal("move should be legal")
	}

	for _, p := range []Point{{0, 1}, {1, 0}} {
		if !s.Board.At(p).Petrified {
			t.Fatalf("wall stone %v should be petrified", p)
		}
	}
}

func TestPetrificationIsMonotonic(t *testing.T) {
	s := NewGameState()
	s, _ = PlaceStone(s, 0, 1)
	s = PassTurn(s)
	s, _ = PlaceStone(s, 1, 0)

	// Keep playing; the petrified set must never shrink.
	moves := []Point{{8, 8}, {4, 4}, {8, 7}, {4, 5}}
	for _, m := range moves {
		var ok bool
		s, ok = PlaceStone(s, m.Row, m.Col)
		if !ok {
			t.Fatalf("move %v should be legal", m)
		}
		for _, p := range []Point{{0, 1}, {1, 0}} {
			if !s.Board.At(p).Petrified {
				t.Fatalf("stone %v lost petrification after %v", p, m)
			}
		}
	}
}

func TestPassTurn(t *testing.T) {
	s := NewGameState()
	s, _ = PlaceStone(s, 4, 4)

	passed := PassTurn(s)
	if passed.Turn != Black {
		t.Fatalf("pass should flip turn to Black, got %s", passed.Turn)
	}
	if passed.TurnCount != s.TurnCount+1 {
		t.Fatalf("pass should increment turn count, got %d", passed.TurnCount)
	}
	if passed.HasLastMove() {
		t.Fatal("pass should clear the last move")
	}
	if passed.Board != s.Board {
		t.Fatal("pass must not touch the board")
	}
}

func TestPassOutsidePlayingIsNoOp(t *testing.T) {
	s := NewGameState()
	s.Status = WhiteWon
	if next := PassTurn(s); next != s {
		t.Fatal("pass outside Playing should be a no-op")
	}
}
