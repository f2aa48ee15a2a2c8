package ai

import (
	"testing"

	"petrigo/game"
)

// firstPick always draws index 0, making tie-breaks deterministic.
type firstPick struct{}

func (firstPick) Intn(n int) int { return 0 }

func stone(b *game.Board, row, col int, color game.Player) {
	b.Place(game.Point{Row: row, Col: col}, color)
}

func TestScoreMoveExpansionOnly(t *testing.T) {
	var b game.Board
	if got := ScoreMove(&b, game.Point{Row: 4, Col: 4}, game.Black); got != 40 {
		t.Fatalf("center opening should score 4 open neighbors, got %d", got)
	}
	if got := ScoreMove(&b, game.Point{Row: 0, Col: 0}, game.Black); got != 20 {
		t.Fatalf("corner opening should score 2 open neighbors, got %d", got)
	}
}

func TestScoreMoveCompoundedKillBonus(t *testing.T) {
	// Playing (2,2) captures the three-stone white group: flat kill
	// bonus plus the per-stone bonus, both awarded. The vacated
	// pocket petrifies its black walls, and three of the move's
	// neighbors were open.
	var b game.Board
	for _, p := range []game.Point{{Row: 2, Col: 3}, {Row: 2, Col: 4}, {Row: 2, Col: 5}} {
		b.Place(p, game.White)
	}
	for _, p := range []game.Point{
		{Row: 1, Col: 3}, {Row: 1, Col: 4}, {Row: 1, Col: 5},
		{Row: 3, Col: 3}, {Row: 3, Col: 4}, {Row: 3, Col: 5},
		{Row: 2, Col: 6},
	} {
		b.Place(p, game.Black)
	}

	want := killScore + 3*perCaptureScore + petrifyScore + 3*expandScore
	if got := ScoreMove(&b, game.Point{Row: 2, Col: 2}, game.Black); got != want {
		t.Fatalf("capturing move should score %d, got %d", want, got)
	}
}

func TestBestMoveSelectsTheKill(t *testing.T) {
	state := game.NewGameState()
	for _, p := range []game.Point{{Row: 2, Col: 3}, {Row: 2, Col: 4}, {Row: 2, Col: 5}} {
		state.Board.Place(p, game.White)
	}
	for _, p := range []game.Point{
		{Row: 1, Col: 3}, {Row: 1, Col: 4}, {Row: 1, Col: 5},
		{Row: 3, Col: 3}, {Row: 3, Col: 4}, {Row: 3, Col: 5},
		{Row: 2, Col: 6},
	} {
		state.Board.Place(p, game.Black)
	}

	e := NewWithRandomness(firstPick{})
	move, ok := e.BestMove(state, game.Black)
	if !ok {
		t.Fatal("a move should be found")
	}
	if move != (game.Point{Row: 2, Col: 2}) {
		t.Fatalf("evaluator should take the capture at (2,2), got %v", move)
	}
}

func TestScoreMoveSuicidePenalty(t *testing.T) {
	// (0,0) is self-capture with nothing killed.
	var b game.Board
	stone(&b, 0, 1, game.White)
	stone(&b, 1, 0, game.White)

	got := ScoreMove(&b, game.Point{Row: 0, Col: 0}, game.Black)
	if got != suicideScore {
		t.Fatalf("suicide with no open neighbors should score %d, got %d", suicideScore, got)
	}
}

func TestScoreMoveSaveBonusPerEndangeredNeighbor(t *testing.T) {
	// Two separate black stones next to (4,4), each down to its last
	// liberty; connecting at (4,4) rescues both, and the bonus is
	// additive per neighbor.
	var b game.Board
	stone(&b, 3, 4, game.Black)
	stone(&b, 2, 4, game.White)
	stone(&b, 3, 3, game.White)
	stone(&b, 3, 5, game.White)
	stone(&b, 5, 4, game.Black)
	stone(&b, 6, 4, game.White)
	stone(&b, 5, 3, game.White)
	stone(&b, 5, 5, game.White)

	got := ScoreMove(&b, game.Point{Row: 4, Col: 4}, game.Black)
	want := 2*saveScore + 2*expandScore // (4,3) and (4,5) are open
	if got != want {
		t.Fatalf("double rescue should score %d, got %d", want, got)
	}
}

func TestScoreMoveDoesNotMutateBoard(t *testing.T) {
	var b game.Board
	stone(&b, 0, 1, game.White)
	stone(&b, 1, 0, game.White)
	before := b

	ScoreMove(&b, game.Point{Row: 0, Col: 0}, game.Black)
	ScoreMove(&b, game.Point{Row: 4, Col: 4}, game.Black)

	if b != before {
		t.Fatal("scoring must never write to the caller's board")
	}
}

func TestBestMoveNoneOnFullBoard(t *testing.T) {
	state := game.NewGameState()
	for r := 0; r < game.Size; r++ {
		for c := 0; c < game.Size; c++ {
			color := game.Black
			if (r/3+c)%2 == 0 {
				color = game.White
			}
			state.Board.Place(game.Point{Row: r, Col: c}, color)
		}
	}

	e := NewWithRandomness(firstPick{})
	if _, ok := e.BestMove(state, game.White); ok {
		t.Fatal("full board should yield no move")
	}
}

func TestBestMoveUniformTiePool(t *testing.T) {
	// On an empty board the four center-adjacent scores tie at 40 for
	// every non-edge point; with a fixed draw the first maximal point
	// in row-major order is returned.
	e := NewWithRandomness(firstPick{})
	move, ok := e.BestMove(game.NewGameState(), game.Black)
	if !ok {
		t.Fatal("a move should be found")
	}
	if move != (game.Point{Row: 1, Col: 1}) {
		t.Fatalf("expected the first interior point (1,1), got %v", move)
	}
}
