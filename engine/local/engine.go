// Package local implements the GameEngine interface on top of the
// built-in rules engine and move evaluator. Unlike an external engine
// there is no subprocess: the opponent's reply is computed in-process
// after an artificial, cancellable think delay.
package local

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"sync"
	"time"

	"petrigo/ai"
	"petrigo/engine"
	"petrigo/game"
	"petrigo/types"
)

var debugLog *log.Logger

func init() {
	f, _ := os.Create("/tmp/petrigo-debug.log")
	debugLog = log.New(f, "", log.Ltime|log.Lmicroseconds)
}

// snapshot is one undo step: the position plus the pass streak that led
// to it.
type snapshot struct {
	state     game.GameState
	passCount int
}

// LocalEngine implements engine.GameEngine with the petrigo rules
// engine and the single-ply evaluator. It is the sole owner of the
// current GameState; everything the UI sees is a value copy.
type LocalEngine struct {
	config      engine.GameConfig
	playerColor game.Player
	aiColor     game.Player
	evaluator   *ai.Evaluator

	mu         sync.Mutex
	state      game.GameState
	history    []snapshot
	passCount  int
	gameOver   bool
	outcome    string
	generation uint64      // bumped on every action; stale timers abort
	pending    *time.Timer // scheduled AI reply, if any

	moveCallback func(x, y, color int, boardState *types.BoardState)
	endCallback  func(outcome string)
}

// NewEngine creates a local engine with the given configuration.
func NewEngine(cfg engine.GameConfig) *LocalEngine {
	player := game.Black
	if cfg.PlayerColor == types.CellWhite {
		player = game.White
	}

	var eval *ai.Evaluator
	if cfg.Seed != 0 {
		eval = ai.NewWithRandomness(rand.New(rand.NewSource(cfg.Seed)))
	} else {
		eval = ai.New()
	}

	return &LocalEngine{
		config:      cfg,
		playerColor: player,
		aiColor:     player.Opponent(),
		evaluator:   eval,
		state:       game.NewGameState(),
	}
}

// Connect initializes the game. If the human plays White, the AI
// (Black) is scheduled for the opening move.
func (e *LocalEngine) Connect() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.state = game.NewGameState()
	e.history = nil
	e.passCount = 0
	e.gameOver = false

	if e.state.Turn == e.aiColor {
		e.scheduleAIMoveLocked()
	}
	return nil
}

// GetBoardState returns a copy of the current board state.
func (e *LocalEngine) GetBoardState() *types.BoardState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.boardStateLocked()
}

// PlayMove plays the human's move at (x, y). Illegal moves leave the
// game untouched and are reported as errors for the UI to surface.
func (e *LocalEngine) PlayMove(x, y int) error {
	e.mu.Lock()

	if e.gameOver {
		e.mu.Unlock()
		return fmt.Errorf("game is over")
	}
	if e.state.Turn != e.playerColor {
		e.mu.Unlock()
		return fmt.Errorf("not your turn")
	}

	next, ok := game.PlaceStone(e.state, y, x)
	if !ok {
		e.mu.Unlock()
		return fmt.Errorf("illegal move at %d,%d", x, y)
	}
	debugLog.Printf("PlayMove: human %s at x=%d y=%d", e.playerColor, x, y)

	e.pushHistoryLocked()
	e.state = next
	e.passCount = 0
	e.scheduleAIMoveLocked()

	color := int(e.playerColor)
	boardState := e.boardStateLocked()
	e.mu.Unlock()

	// Notify callback (outside lock to prevent deadlock)
	if e.moveCallback != nil {
		e.moveCallback(x, y, color, boardState)
	}
	return nil
}

// Pass passes the human's turn.
func (e *LocalEngine) Pass() error {
	e.mu.Lock()

	if e.gameOver {
		e.mu.Unlock()
		return fmt.Errorf("game is over")
	}
	if e.state.Turn != e.playerColor {
		e.mu.Unlock()
		return fmt.Errorf("not your turn")
	}

	e.pushHistoryLocked()
	e.state = game.PassTurn(e.state)
	e.passCount++
	finished := e.passCount >= 2
	if finished {
		e.finishLocked()
	} else {
		e.scheduleAIMoveLocked()
	}

	color := int(e.playerColor)
	boardState := e.boardStateLocked()
	outcome := e.outcome
	e.mu.Unlock()

	if e.moveCallback != nil {
		e.moveCallback(-1, -1, color, boardState)
	}
	if finished && e.endCallback != nil {
		e.endCallback(outcome)
	}
	return nil
}

// Undo takes back one ply and discards any pending AI reply.
func (e *LocalEngine) Undo() error {
	e.mu.Lock()

	if len(e.history) == 0 {
		e.mu.Unlock()
		return fmt.Errorf("nothing to undo")
	}

	e.cancelPendingLocked()
	last := e.history[len(e.history)-1]
	e.history = e.history[:len(e.history)-1]
	e.state = last.state
	e.passCount = last.passCount
	e.gameOver = false
	e.outcome = ""

	e.mu.Unlock()
	return nil
}

// Reset starts the game over from the initial position.
func (e *LocalEngine) Reset() {
	e.mu.Lock()

	e.cancelPendingLocked()
	e.state = game.NewGameState()
	e.history = nil
	e.passCount = 0
	e.gameOver = false
	e.outcome = ""

	if e.state.Turn == e.aiColor {
		e.scheduleAIMoveLocked()
	}
	e.mu.Unlock()
}

// IsMyTurn returns true if it's the human player's turn.
func (e *LocalEngine) IsMyTurn() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.Turn == e.playerColor && !e.gameOver
}

// GetPlayerColor returns the human player's color (1=black, 2=white).
func (e *LocalEngine) GetPlayerColor() int {
	return int(e.playerColor)
}

// OnMove registers a callback for when a move is played.
func (e *LocalEngine) OnMove(callback func(x, y, color int, boardState *types.BoardState)) {
	e.moveCallback = callback
}

// OnGameEnd registers a callback for when the game ends.
func (e *LocalEngine) OnGameEnd(callback func(outcome string)) {
	e.endCallback = callback
}

// Close shuts down the engine and discards any pending AI reply.
func (e *LocalEngine) Close() {
	e.mu.Lock()
	e.cancelPendingLocked()
	e.gameOver = true
	e.mu.Unlock()
}

// scheduleAIMoveLocked arms the think-delay timer for the AI reply. The
// generation recorded here is checked again when the timer fires, so a
// reply scheduled before an Undo, Reset or Close never lands.
func (e *LocalEngine) scheduleAIMoveLocked() {
	e.cancelPendingLocked()
	if e.state.Turn != e.aiColor || e.gameOver {
		return
	}

	gen := e.generation
	delay := e.config.ThinkDelay
	e.pending = time.AfterFunc(delay, func() {
		e.aiMove(gen)
	})
}

// cancelPendingLocked stops the armed timer, if any, and invalidates
// whatever is already in flight.
func (e *LocalEngine) cancelPendingLocked() {
	e.generation++
	if e.pending != nil {
		e.pending.Stop()
		e.pending = nil
	}
}

// aiMove computes and applies the AI's reply. It runs on the timer
// goroutine after the think delay.
func (e *LocalEngine) aiMove(gen uint64) {
	e.mu.Lock()

	if gen != e.generation || e.gameOverOrNotAITurnLocked() {
		e.mu.Unlock()
		return
	}
	e.pending = nil

	move, found := e.evaluator.BestMove(e.state, e.aiColor)
	applied := false
	if found {
		if next, ok := game.PlaceStone(e.state, move.Row, move.Col); ok {
			e.pushHistoryLocked()
			e.state = next
			e.passCount = 0
			applied = true
			debugLog.Printf("aiMove: %s at row=%d col=%d", e.aiColor, move.Row, move.Col)
		}
	}

	finished := false
	if !applied {
		// Full board or only losing suicide moves left: the AI passes.
		e.pushHistoryLocked()
		e.state = game.PassTurn(e.state)
		e.passCount++
		debugLog.Printf("aiMove: %s passes", e.aiColor)
		if e.passCount >= 2 {
			e.finishLocked()
			finished = true
		}
	}

	color := int(e.aiColor)
	x, y := -1, -1
	if applied {
		x, y = move.Col, move.Row
	}
	boardState := e.boardStateLocked()
	outcome := e.outcome
	e.mu.Unlock()

	// Notify callback (outside lock)
	if e.moveCallback != nil {
		e.moveCallback(x, y, color, boardState)
	}
	if finished && e.endCallback != nil {
		e.endCallback(outcome)
	}
}

func (e *LocalEngine) gameOverOrNotAITurnLocked() bool {
	return e.gameOver || e.state.Turn != e.aiColor
}

// finishLocked ends the session after two consecutive passes. The core
// state's status stays Playing; the game has no win rule, so the
// outcome just reports the prisoner tallies.
func (e *LocalEngine) finishLocked() {
	e.gameOver = true
	e.outcome = fmt.Sprintf("Both passed — prisoners B:%d W:%d",
		e.state.Prisoners.Black, e.state.Prisoners.White)
}

func (e *LocalEngine) pushHistoryLocked() {
	e.history = append(e.history, snapshot{state: e.state, passCount: e.passCount})
}

// boardStateLocked projects the current GameState into the read-only
// form the UI renders. Must be called while holding the lock.
func (e *LocalEngine) boardStateLocked() *types.BoardState {
	bs := ToBoardState(e.state)
	if e.gameOver {
		bs.Phase = "finished"
		bs.Outcome = e.outcome
	}
	return bs
}
