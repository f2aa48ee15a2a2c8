package game

import (
	"testing"
)

// boardFrom builds a board from 9 rows of "B", "W" and "." runes.
// Stones start at full health, not petrified.
func boardFrom(t *testing.T, rows [Size]string) Board {
	t.Helper()
	var b Board
	for r, row := range rows {
		if len(row) != Size {
			t.Fatalf("row %d has length %d, want %d", r, len(row), Size)
		}
		for c, ch := range row {
			switch ch {
			case 'B':
				b.Place(Point{r, c}, Black)
			case 'W':
				b.Place(Point{r, c}, White)
			case '.':
			default:
				t.Fatalf("unknown board rune %q", ch)
			}
		}
	}
	return b
}

func pointSet(points []Point) map[Point]bool {
	set := make(map[Point]bool, len(points))
	for _, p := range points {
		set[p] = true
	}
	return set
}

func TestGroupAtEmptyPoint(t *testing.T) {
	var b Board
	if group := GroupAt(&b, Point{4, 4}); group != nil {
		t.Fatalf("group of an empty point should be nil, got %v", group)
	}
}

func TestGroupAtSingleStone(t *testing.T) {
	var b Board
	b.Place(Point{4, 4}, Black)
	group := GroupAt(&b, Point{4, 4})
	if len(group) != 1 || group[0] != (Point{4, 4}) {
		t.Fatalf("expected single-point group, got %v", group)
	}
}

func TestGroupAtConnected(t *testing.T) {
	b := boardFrom(t, [Size]string{
		".........",
		"..BB.....",
		"..B......",
		"...B.....", // diagonal only, not part of the group
		".........",
		".........",
		".........",
		".........",
		".........",
	})
	group := GroupAt(&b, Point{1, 2})
	want := pointSet([]Point{{1, 2}, {1, 3}, {2, 2}})
	if len(group) != len(want) {
		t.Fatalf("expected %d stones, got %v", len(want), group)
	}
	for _, p := range group {
		if !want[p] {
			t.Fatalf("unexpected point %v in group", p)
		}
	}
}

func TestGroupAtStopsAtColor(t *testing.T) {
	b := boardFrom(t, [Size]string{
		"BW.......",
		"B........",
		".........",
		".........",
		".........",
		".........",
		".........",
		".........",
		".........",
	})
	group := GroupAt(&b, Point{0, 0})
	if len(group) != 2 {
		t.Fatalf("expected 2 black stones, got %v", group)
	}
	for _, p := range group {
		if b.At(p).Color != Black {
			t.Fatalf("group leaked across colors at %v", p)
		}
	}
}

func TestGroupAtIdempotent(t *testing.T) {
	b := boardFrom(t, [Size]string{
		".........",
		"..BBB....",
		"..B.B....",
		"..BBB....",
		".........",
		".........",
		".........",
		".........",
		".........",
	})
	base := pointSet(GroupAt(&b, Point{1, 2}))
	for p := range base {
		other := pointSet(GroupAt(&b, p))
		if len(other) != len(base) {
			t.Fatalf("group from %v has %d points, want %d", p, len(other), len(base))
		}
		for q := range other {
			if !base[q] {
				t.Fatalf("group from %v contains %v, not in base group", p, q)
			}
		}
	}
}

func TestLibertiesCornerStone(t *testing.T) {
	var b Board
	b.Place(Point{0, 0}, White)
	if n := Liberties(&b, GroupAt(&b, Point{0, 0})); n != 2 {
		t.Fatalf("corner stone should have 2 liberties, got %d", n)
	}
}

func TestLibertiesSharedPointCountsOnce(t *testing.T) {
	// (1,4) touches both (1,3) and (2,4); it must count once.
	b := boardFrom(t, [Size]string{
		".........",
		"...B.....",
		"...BB....",
		".........",
		".........",
		".........",
		".........",
		".........",
		".........",
	})
	group := GroupAt(&b, Point{1, 3})
	if len(group) != 3 {
		t.Fatalf("expected 3-stone group, got %v", group)
	}
	if n := Liberties(&b, group); n != 7 {
		t.Fatalf("expected 7 distinct liberties, got %d", n)
	}
}

func TestLibertiesZeroWhenSurrounded(t *testing.T) {
	b := boardFrom(t, [Size]string{
		"WB.......",
		"B........",
		".........",
		".........",
		".........",
		".........",
		".........",
		".........",
		".........",
	})
	if n := Liberties(&b, GroupAt(&b, Point{0, 0})); n != 0 {
		t.Fatalf("surrounded corner stone should have 0 liberties, got %d", n)
	}
}

func TestLibertiesNeverCountOccupied(t *testing.T) {
	b := boardFrom(t, [Size]string{
		".W.......",
		"WBW......",
		".W.......",
		".........",
		".........",
		".........",
		".........",
		".........",
		".........",
	})
	if n := Liberties(&b, GroupAt(&b, Point{1, 1})); n != 0 {
		t.Fatalf("fully enclosed stone should have 0 liberties, got %d", n)
	}
}
