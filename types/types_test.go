package types

import (
	"encoding/json"
	"testing"
)

func TestPosLabel(t *testing.T) {
	cases := []struct {
		x, y int
		want string
	}{
		{0, 8, "A1"},
		{0, 0, "A9"},
		{4, 4, "E5"},
		{7, 0, "H9"},
		{8, 0, "J9"}, // column I is skipped
	}
	for _, c := range cases {
		if got := PosLabel(c.x, c.y, 9); got != c.want {
			t.Errorf("PosLabel(%d, %d) = %q, want %q", c.x, c.y, got, c.want)
		}
	}
}

func TestNewBoardState(t *testing.T) {
	b := NewBoardState(9)
	if b.Width() != 9 || b.Height() != 9 {
		t.Fatalf("expected 9x9, got %dx%d", b.Width(), b.Height())
	}
	if b.PlayerToMove != CellBlack {
		t.Fatal("black should move first")
	}
	if b.Finished() {
		t.Fatal("new board should be in the playing phase")
	}
	if b.LastMove.X != -1 || b.LastMove.Y != -1 {
		t.Fatalf("new board should have no last move, got %+v", b.LastMove)
	}
}

func TestPetrifiedCount(t *testing.T) {
	b := NewBoardState(9)
	b.Cells[0][1] = Cell{Color: CellBlack, Petrified: true}
	b.Cells[1][0] = Cell{Color: CellBlack, Petrified: true}
	b.Cells[4][4] = Cell{Color: CellBlack, Health: 15}
	b.Cells[8][8] = Cell{Color: CellWhite, Petrified: true}

	if n := b.Petrified(CellBlack); n != 2 {
		t.Fatalf("expected 2 petrified black stones, got %d", n)
	}
	if n := b.Petrified(CellWhite); n != 1 {
		t.Fatalf("expected 1 petrified white stone, got %d", n)
	}
}

func TestBoardPosUnmarshal(t *testing.T) {
	var p BoardPos
	if err := json.Unmarshal([]byte("[3, 7]"), &p); err != nil {
		t.Fatal(err)
	}
	if p.X != 3 || p.Y != 7 {
		t.Fatalf("expected (3,7), got (%d,%d)", p.X, p.Y)
	}
}
