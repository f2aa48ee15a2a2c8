package game

// GroupAt returns the maximal set of same-colored stones connected to p
// by orthogonal steps, including p itself. An empty point yields nil.
// The traversal is iterative (explicit stack) so deep groups cannot
// overflow the call stack; result order is not significant.
func GroupAt(b *Board, p Point) []Point {
	if !p.OnBoard() || b.Empty(p) {
		return nil
	}
	color := b.At(p).Color

	var visited [Size][Size]bool
	stack := make([]Point, 0, 8)
	group := make([]Point, 0, 8)

	stack = append(stack, p)
	visited[p.Row][p.Col] = true

	var buf [4]Point
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		group = append(group, cur)

		for _, n := range cur.Neighbors(buf[:0]) {
			if visited[n.Row][n.Col] {
				continue
			}
			if b.At(n).Color == color {
				visited[n.Row][n.Col] = true
				stack = append(stack, n)
			}
		}
	}
	return group
}

// Liberties counts the distinct empty points orthogonally adjacent to
// the group. A liberty shared by several group members counts once.
func Liberties(b *Board, group []Point) int {
	var seen [Size][Size]bool
	count := 0

	var buf [4]Point
	for _, p := range group {
		for _, n := range p.Neighbors(buf[:0]) {
			if seen[n.Row][n.Col] {
				continue
			}
			seen[n.Row][n.Col] = true
			if b.Empty(n) {
				count++
			}
		}
	}
	return count
}
