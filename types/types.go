// Package types contains shared data structures for petrigo.
package types

import (
	"encoding/json"
	"fmt"
)

// Cell colors as rendered by the UI.
const (
	CellEmpty = 0
	CellBlack = 1
	CellWhite = 2
)

// Cell is the read-only projection of one board intersection.
type Cell struct {
	Color     int  `json:"color"` // 0=empty, 1=black, 2=white
	Health    int  `json:"health"`
	Petrified bool `json:"petrified"`
}

// PrisonerCounts holds captured-stone totals per capturing side.
type PrisonerCounts struct {
	Black int `json:"black"`
	White int `json:"white"`
}

// BoardState represents the complete state of a board as the UI sees
// it. Cells is indexed as Cells[y][x].
type BoardState struct {
	MoveNumber   int            `json:"move_number"`
	PlayerToMove int            `json:"player_to_move"` // 1=black, 2=white
	Phase        string         `json:"phase"`          // "playing", "finished"
	Cells        [][]Cell       `json:"cells"`
	Prisoners    PrisonerCounts `json:"prisoners"`
	Outcome      string         `json:"outcome"`
	LastMove     struct {
		X int `json:"x"`
		Y int `json:"y"`
	} `json:"last_move"`
}

// Finished returns true if the game is over.
func (b *BoardState) Finished() bool {
	return b.Phase == "finished"
}

// Height returns the board height.
func (b *BoardState) Height() int {
	return len(b.Cells)
}

// Width returns the board width.
func (b *BoardState) Width() int {
	if b.Height() == 0 {
		return 0
	}
	return len(b.Cells[0])
}

// Petrified counts the petrified stones of the given color.
func (b *BoardState) Petrified(color int) int {
	n := 0
	for _, row := range b.Cells {
		for _, c := range row {
			if c.Color == color && c.Petrified {
				n++
			}
		}
	}
	return n
}

// NewBoardState creates a new empty board of the given size.
func NewBoardState(size int) *BoardState {
	cells := make([][]Cell, size)
	for i := range cells {
		cells[i] = make([]Cell, size)
	}
	b := &BoardState{
		PlayerToMove: CellBlack, // Black plays first
		Phase:        "playing",
		Cells:        cells,
	}
	b.LastMove.X = -1
	b.LastMove.Y = -1
	return b
}

// BoardPos represents a position on the board.
type BoardPos struct {
	X int
	Y int
}

// UnmarshalJSON allows BoardPos to be unmarshaled from a JSON array [x, y].
func (p *BoardPos) UnmarshalJSON(data []byte) error {
	var v []float64
	err := json.Unmarshal(data, &v)
	if err != nil {
		return err
	}
	p.X = int(v[0])
	p.Y = int(v[1])
	return nil
}

// PosLabel formats a board position in the usual display notation:
// columns A.. (skipping I), rows numbered from the bottom. For a 9x9
// board, (0, 8) -> A1 and (4, 4) -> E5.
func PosLabel(x, y, size int) string {
	col := 'A' + rune(x)
	if x >= 8 {
		col++ // skip 'I'
	}
	return fmt.Sprintf("%c%d", col, size-y)
}
