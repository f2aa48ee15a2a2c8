// Package ai implements the single-ply move evaluator used by the
// built-in opponent. It scores every empty point on a simulated board
// and picks the best one; there is no deeper search.
package ai

import (
	"math/rand"
	"time"

	"petrigo/game"
)

// Scoring weights. The capture award is deliberately compounded: a
// killing move earns the flat bonus once AND the per-stone bonus for
// every stone removed.
const (
	killScore       = 1000
	perCaptureScore = 1000
	suicideScore    = -500
	saveScore       = 500
	petrifyScore    = 300
	expandScore     = 10
)

// Randomness supplies the tie-break draw. Satisfied by *rand.Rand.
type Randomness interface {
	Intn(n int) int
}

// Evaluator picks moves for one side.
type Evaluator struct {
	rng Randomness
}

// New returns an evaluator with time-seeded tie-breaking.
func New() *Evaluator {
	return &Evaluator{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// NewWithRandomness returns an evaluator using the given source for
// tie-breaking, so tests can make the draw deterministic.
func NewWithRandomness(rng Randomness) *Evaluator {
	return &Evaluator{rng: rng}
}

// BestMove scores every empty point for the given player and returns
// one of the highest-scoring points, chosen uniformly at random among
// ties. It returns false when the board has no empty point (the caller
// should pass). The state is never modified.
func (e *Evaluator) BestMove(state game.GameState, player game.Player) (game.Point, bool) {
	best := 0
	var candidates []game.Point

	for r := 0; r < game.Size; r++ {
		for c := 0; c < game.Size; c++ {
			p := game.Point{Row: r, Col: c}
			if !state.Board.Empty(p) {
				continue
			}
			score := ScoreMove(&state.Board, p, player)
			if len(candidates) == 0 || score > best {
				best = score
				candidates = append(candidates[:0], p)
			} else if score == best {
				candidates = append(candidates, p)
			}
		}
	}

	if len(candidates) == 0 {
		return game.NoPoint, false
	}
	return candidates[e.rng.Intn(len(candidates))], true
}

// ScoreMove rates placing player's stone at p on a private copy of the
// board. The board passed in is read, never written.
func ScoreMove(board *game.Board, p game.Point, player game.Player) int {
	score := 0
	sim := *board // working copy for the simulation

	// Pre-move facts needed by the save and petrify terms.
	var buf [4]game.Point
	var endangered []game.Point // friendly neighbors down to one liberty
	for _, n := range p.Neighbors(buf[:0]) {
		if board.At(n).Color != player {
			continue
		}
		pre := game.GroupAt(board, n)
		if game.Liberties(board, pre) == 1 {
			endangered = append(endangered, n)
		}
	}
	_, prePetrified := board.CountStones(player)

	sim.Place(p, player)

	// Capture term: remove adjacent opponent groups that end up with no
	// liberties. Flat kill bonus plus a per-stone bonus; both apply.
	captured := 0
	var marked [game.Size][game.Size]bool
	for _, n := range p.Neighbors(buf[:0]) {
		if sim.At(n).Color != player.Opponent() || marked[n.Row][n.Col] {
			continue
		}
		group := game.GroupAt(&sim, n)
		for _, g := range group {
			marked[g.Row][g.Col] = true
		}
		if game.Liberties(&sim, group) == 0 {
			captured += len(group)
			sim.Remove(group)
		}
	}
	if captured > 0 {
		score += killScore + perCaptureScore*captured
	}

	// Suicide penalty, only when the move kills nothing.
	if captured == 0 {
		own := game.GroupAt(&sim, p)
		if game.Liberties(&sim, own) == 0 {
			score += suicideScore
		}
	}

	// Save term: each adjacent friendly group down to its last liberty
	// that breathes again after the move earns the bonus, once per
	// neighbor checked.
	for _, n := range endangered {
		post := game.GroupAt(&sim, n)
		if game.Liberties(&sim, post) > 1 {
			score += saveScore
		}
	}

	// Petrify term: reward moves that wall off new territory.
	for _, c := range game.PetrifyCandidates(&sim) {
		st := sim.At(c)
		st.Petrified = true
		sim.Set(c, st)
	}
	_, postPetrified := sim.CountStones(player)
	if postPetrified > prePetrified {
		score += petrifyScore
	}

	// Expansion term: open neighbors on the pre-move board.
	for _, n := range p.Neighbors(buf[:0]) {
		if board.Empty(n) {
			score += expandScore
		}
	}

	return score
}
