package game

// Status is the lifecycle phase of a game. The turn engine itself never
// moves a game out of Playing; ending a session is the caller's call.
type Status int

const (
	Playing Status = iota
	BlackWon
	WhiteWon
)

// Prisoners tracks captured stones per capturing side.
type Prisoners struct {
	Black int
	White int
}

// GameState is one immutable position of a game. The turn engine is the
// only producer of new states; callers keep the current state between
// calls and replace it wholesale on every accepted action.
type GameState struct {
	Board     Board
	Turn      Player
	TurnCount int
	Prisoners Prisoners
	Status    Status
	LastMove  Point
}

// NewGameState returns the initial position: empty board, Black to
// move, nothing captured.
func NewGameState() GameState {
	return GameState{
		Turn:     Black,
		LastMove: NoPoint,
	}
}

// HasLastMove reports whether the previous action was a stone placement
// (a pass or a fresh game clears the last move).
func (s *GameState) HasLastMove() bool {
	return s.LastMove != NoPoint
}

// PlaceStone applies the current player's move at (row, col) and returns
// the resulting state. Illegal moves are not errors: the prior state is
// returned unchanged together with false, and no partial effect (decay
// included) is ever observable.
func PlaceStone(s GameState, row, col int) (GameState, bool) {
	target := Point{Row: row, Col: col}
	if s.Status != Playing || !target.OnBoard() || !s.Board.Empty(target) {
		return s, false
	}

	mover := s.Turn
	next := s // value copy, the working state

	// Decay: every live stone of the moving player loses one health
	// before the new stone lands. Crumbled stones are not prisoners.
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			st := next.Board[r][c]
			if st.Color != mover || st.Petrified {
				continue
			}
			st.Health--
			if st.Health <= 0 {
				next.Board[r][c] = Stone{}
			} else {
				next.Board[r][c] = st
			}
		}
	}

	next.Board.Place(target, mover)

	// Capture: any adjacent opponent group left without liberties dies.
	var marked [Size][Size]bool
	var doomed []Point
	var buf [4]Point
	for _, n := range target.Neighbors(buf[:0]) {
		st := next.Board.At(n)
		if st.Color != mover.Opponent() || marked[n.Row][n.Col] {
			continue
		}
		group := GroupAt(&next.Board, n)
		if Liberties(&next.Board, group) > 0 {
			// Mark anyway so shared groups are not re-walked.
			for _, g := range group {
				marked[g.Row][g.Col] = true
			}
			continue
		}
		for _, g := range group {
			marked[g.Row][g.Col] = true
		}
		doomed = append(doomed, group...)
	}

	// Suicide: with nothing captured, a zero-liberty placement is
	// illegal and the whole turn (decay included) rolls back.
	if len(doomed) == 0 {
		own := GroupAt(&next.Board, target)
		if Liberties(&next.Board, own) == 0 {
			return s, false
		}
	}

	next.Board.Remove(doomed)
	switch mover {
	case Black:
		next.Prisoners.Black += len(doomed)
	case White:
		next.Prisoners.White += len(doomed)
	}

	// Petrify the walls of any fully owned territory. Setting the flag
	// is idempotent and never reversed.
	for _, p := range PetrifyCandidates(&next.Board) {
		st := next.Board.At(p)
		st.Petrified = true
		next.Board.Set(p, st)
	}

	next.Turn = mover.Opponent()
	next.TurnCount++
	next.LastMove = target
	return next, true
}

// PassTurn hands the move to the opponent without touching the board.
// Outside of Playing it is a no-op.
func PassTurn(s GameState) GameState {
	if s.Status != Playing {
		return s
	}
	next := s
	next.Turn = s.Turn.Opponent()
	next.TurnCount++
	next.LastMove = NoPoint
	return next
}
