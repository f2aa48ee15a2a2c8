package local

import (
	"petrigo/game"
	"petrigo/types"
)

// ToBoardState projects a GameState into the read-only form the UI
// renders. Phase and Outcome are left at their "playing" defaults; the
// engine overrides them when the session is over.
func ToBoardState(s game.GameState) *types.BoardState {
	bs := types.NewBoardState(game.Size)
	for r := 0; r < game.Size; r++ {
		for c := 0; c < game.Size; c++ {
			st := s.Board[r][c]
			if st.Empty() {
				continue
			}
			bs.Cells[r][c] = types.Cell{
				Color:     int(st.Color),
				Health:    st.Health,
				Petrified: st.Petrified,
			}
		}
	}
	bs.MoveNumber = s.TurnCount
	bs.PlayerToMove = int(s.Turn)
	bs.Prisoners.Black = s.Prisoners.Black
	bs.Prisoners.White = s.Prisoners.White
	if s.HasLastMove() {
		bs.LastMove.X = s.LastMove.Col
		bs.LastMove.Y = s.LastMove.Row
	}
	return bs
}

// FromBoardState rebuilds a GameState from a rendered board state. The
// planning mode uses this to branch off the live position without
// reaching into the engine.
func FromBoardState(bs *types.BoardState) game.GameState {
	s := game.NewGameState()
	for r := 0; r < game.Size; r++ {
		for c := 0; c < game.Size; c++ {
			cell := bs.Cells[r][c]
			if cell.Color == types.CellEmpty {
				continue
			}
			p := game.Point{Row: r, Col: c}
			s.Board.Place(p, game.Player(cell.Color))
			st := s.Board.At(p)
			st.Health = cell.Health
			st.Petrified = cell.Petrified
			s.Board.Set(p, st)
		}
	}
	s.Turn = game.Player(bs.PlayerToMove)
	s.TurnCount = bs.MoveNumber
	s.Prisoners.Black = bs.Prisoners.Black
	s.Prisoners.White = bs.Prisoners.White
	if bs.LastMove.X >= 0 && bs.LastMove.Y >= 0 {
		s.LastMove = game.Point{Row: bs.LastMove.Y, Col: bs.LastMove.X}
	}
	return s
}
