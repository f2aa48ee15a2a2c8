package game

// maxTerritorySize is the largest empty region that can still count as
// territory. Anything bigger is open board, no matter how uniform its
// boundary.
const maxTerritorySize = 30

// PetrifyCandidates returns the stones that should become petrified
// given the board's current empty-region structure: for every maximal
// connected region of empty points whose adjacent stones are all one
// color, those boundary stones are candidates. Board edges act as
// walls, so a region touching the edge is judged purely on its stone
// boundary, exactly like an interior region.
//
// The analyzer only ever proposes additions; un-petrifying never
// happens anywhere in the engine, which makes petrification monotonic.
func PetrifyCandidates(b *Board) []Point {
	var visited [Size][Size]bool
	var candidates []Point

	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			p := Point{r, c}
			if visited[r][c] || !b.Empty(p) {
				continue
			}
			region, boundary := fillRegion(b, p, &visited)
			if len(region) > maxTerritorySize {
				continue
			}
			if owner := uniformOwner(b, boundary); owner != NoPlayer {
				candidates = append(candidates, boundary...)
			}
		}
	}
	return candidates
}

// fillRegion flood-fills the maximal empty region containing start and
// collects its stone boundary. The visited array is shared across the
// whole scan so each empty point is expanded at most once per call.
func fillRegion(b *Board, start Point, visited *[Size][Size]bool) (region, boundary []Point) {
	var onBoundary [Size][Size]bool
	stack := []Point{start}
	visited[start.Row][start.Col] = true

	var buf [4]Point
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		region = append(region, cur)

		for _, n := range cur.Neighbors(buf[:0]) {
			if b.Empty(n) {
				if !visited[n.Row][n.Col] {
					visited[n.Row][n.Col] = true
					stack = append(stack, n)
				}
			} else if !onBoundary[n.Row][n.Col] {
				onBoundary[n.Row][n.Col] = true
				boundary = append(boundary, n)
			}
		}
	}
	return region, boundary
}

// uniformOwner returns the single color of all boundary stones, or
// NoPlayer if the boundary is empty or mixed.
func uniformOwner(b *Board, boundary []Point) Player {
	owner := NoPlayer
	for _, p := range boundary {
		color := b.At(p).Color
		if owner == NoPlayer {
			owner = color
		} else if owner != color {
			return NoPlayer
		}
	}
	return owner
}
