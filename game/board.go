// Package game implements the rules of petrigo: Go on a fixed 9x9 board
// with per-turn stone decay and petrification of territory walls.
package game

import "sync/atomic"

// Size is the board edge length. The rules are defined for 9x9 only.
const Size = 9

// MaxHealth is the health of a freshly placed stone. A stone loses one
// health each time its owner moves and crumbles at zero.
const MaxHealth = 15

// Player identifies one of the two sides.
type Player int

const (
	NoPlayer Player = iota
	Black
	White
)

// Opponent returns the other player.
func (p Player) Opponent() Player {
	if p == Black {
		return White
	}
	return Black
}

func (p Player) String() string {
	switch p {
	case Black:
		return "Black"
	case White:
		return "White"
	}
	return "None"
}

// Point is a board coordinate. Row and Col are in [0, Size).
type Point struct {
	Row int
	Col int
}

// NoPoint is the "no last move" sentinel.
var NoPoint = Point{Row: -1, Col: -1}

// OnBoard reports whether the point is a valid board coordinate.
func (p Point) OnBoard() bool {
	return p.Row >= 0 && p.Row < Size && p.Col >= 0 && p.Col < Size
}

// Neighbors appends the orthogonal on-board neighbors of p to dst and
// returns it. Diagonals are never adjacent.
func (p Point) Neighbors(dst []Point) []Point {
	for _, n := range [4]Point{
		{p.Row - 1, p.Col},
		{p.Row + 1, p.Col},
		{p.Row, p.Col - 1},
		{p.Row, p.Col + 1},
	} {
		if n.OnBoard() {
			dst = append(dst, n)
		}
	}
	return dst
}

// Stone is a single stone on the board. The zero value means "empty".
// ID is an opaque identifier used only by presentation code to track
// stones across states; it never influences the rules.
type Stone struct {
	Color     Player
	Health    int
	Petrified bool
	ID        uint64
}

// Empty reports whether this cell holds no stone.
func (s Stone) Empty() bool {
	return s.Color == NoPlayer
}

var stoneIDs uint64

// newStone mints a live stone for the given player.
func newStone(p Player) Stone {
	return Stone{
		Color:  p,
		Health: MaxHealth,
		ID:     atomic.AddUint64(&stoneIDs, 1),
	}
}

// Board is a fixed 9x9 grid of cells. It is a value type: plain
// assignment yields an independent deep copy, which is how the turn
// engine and the move evaluator obtain working copies for simulation.
type Board [Size][Size]Stone

// At returns the stone at p. The point must be on the board.
func (b *Board) At(p Point) Stone {
	return b[p.Row][p.Col]
}

// Set writes a stone at p. Callers other than the turn engine must
// only do this to a working copy they own.
func (b *Board) Set(p Point, s Stone) {
	b[p.Row][p.Col] = s
}

// Place puts a fresh full-health stone of the given color at p.
func (b *Board) Place(p Point, player Player) {
	b[p.Row][p.Col] = newStone(player)
}

// Remove empties every cell in the group.
func (b *Board) Remove(group []Point) {
	for _, p := range group {
		b[p.Row][p.Col] = Stone{}
	}
}

// Empty reports whether the cell at p holds no stone.
func (b *Board) Empty(p Point) bool {
	return b[p.Row][p.Col].Empty()
}

// CountStones returns the number of stones of the given color, and of
// those, how many are petrified.
func (b *Board) CountStones(p Player) (stones, petrified int) {
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if b[r][c].Color == p {
				stones++
				if b[r][c].Petrified {
					petrified++
				}
			}
		}
	}
	return stones, petrified
}
