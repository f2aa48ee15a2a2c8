// Package engine defines the interface for game engines.
package engine

import (
	"time"

	"petrigo/types"
)

// GameEngine defines the interface for playing petrigo against an
// opponent engine. All methods are safe to call from the UI goroutine.
type GameEngine interface {
	// Connect initializes the game.
	Connect() error

	// GetBoardState returns the current board state.
	GetBoardState() *types.BoardState

	// PlayMove plays a move at the given coordinates.
	// Returns an error if the move is illegal.
	PlayMove(x, y int) error

	// Pass passes the current turn.
	Pass() error

	// IsMyTurn returns true if it's the human player's turn.
	IsMyTurn() bool

	// GetPlayerColor returns the human player's color (1=black, 2=white).
	GetPlayerColor() int

	// OnMove registers a callback for when a move is played (by either
	// player). x, y are -1, -1 for a pass. boardState is passed
	// directly to avoid lock contention.
	OnMove(func(x, y, color int, boardState *types.BoardState))

	// Undo undoes the last move (one ply). Call twice to undo a
	// player+engine move pair. A pending engine reply is discarded.
	Undo() error

	// Reset starts the game over from the initial position.
	Reset()

	// OnGameEnd registers a callback for when the game ends.
	OnGameEnd(func(outcome string))

	// Close shuts down the engine.
	Close()
}

// GameConfig holds configuration for starting a new game. The board is
// always 9x9; the variant's rules are not defined for other sizes.
type GameConfig struct {
	PlayerColor int           // 1=black, 2=white
	ThinkDelay  time.Duration // artificial delay before the AI replies
	Seed        int64         // tie-break seed; 0 means time-seeded
}

// DefaultConfig returns a reasonable default configuration.
func DefaultConfig() GameConfig {
	return GameConfig{
		PlayerColor: 1, // Human plays black
		ThinkDelay:  600 * time.Millisecond,
	}
}
