// Package ui specifies custom controls for tview to assist in playing the
// crumbling-stones Go variant in the terminal.
package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"petrigo/config"
	"petrigo/engine"
	"petrigo/engine/local"
	"petrigo/game"
	"petrigo/record"
	"petrigo/types"
)

// MoveEntry is one line of the move list.
type MoveEntry struct {
	X, Y  int // -1,-1 for a pass
	Color int
}

type GoBoardUI struct {
	Box          *tview.Box
	BoardState   *types.BoardState
	hint         *tview.TextView
	cfg          *config.Config
	finished     bool
	selX         int
	selY         int
	lastTurnPass bool
	app          *tview.Application
	eng          engine.GameEngine
	styles       []tcell.Color
	infoPanel    *GameInfoPanel
	focusMode    bool
	moveHistory  []MoveEntry

	// planning mode: explore hypothetical continuations off the live
	// position without touching the engine
	planning  bool
	planState game.GameState
	planTree  *record.GameTree
}

// ToggleFocusMode toggles focus mode and returns the new state.
func (g *GoBoardUI) ToggleFocusMode() bool {
	g.focusMode = !g.focusMode
	g.refreshHint()
	return g.focusMode
}

// SetFocusMode sets focus mode to the given state.
func (g *GoBoardUI) SetFocusMode(enabled bool) {
	g.focusMode = enabled
	g.refreshHint()
}

// IsFocusMode returns true if focus mode is enabled.
func (g *GoBoardUI) IsFocusMode() bool {
	return g.focusMode
}

func (g *GoBoardUI) SelectedTile() *types.BoardPos {
	if g.selX == -1 && g.selY == -1 {
		return nil
	}
	return &types.BoardPos{X: g.selX, Y: g.selY}
}

func (g *GoBoardUI) MoveSelection(h, v int) {
	if g.BoardState.Finished() {
		g.ResetSelection()
		return
	}
	prevTile := g.SelectedTile()
	if prevTile == nil {
		g.selX = g.BoardState.LastMove.X
		g.selY = g.BoardState.LastMove.Y
		if g.SelectedTile() == nil {
			// No previous move made, use board center
			g.selX = int(g.BoardState.Width() / 2)
			g.selY = int(g.BoardState.Height() / 2)
		}
		return
	}
	if g.selX+h < 0 || g.selX+h >= g.BoardState.Width() {
		return
	}
	if g.selY+v < 0 || g.selY+v >= g.BoardState.Height() {
		return
	}
	g.selX += h
	g.selY += v
}

func (g *GoBoardUI) ResetSelection() {
	g.selX = -1
	g.selY = -1
}

func NewGoBoard(app *tview.Application, c *config.Config, hint *tview.TextView) *GoBoardUI {
	goBoard := &GoBoardUI{
		Box:        tview.NewBox(),
		BoardState: types.NewBoardState(game.Size),
		hint:       hint,
		app:        app,
		selX:       -1,
		selY:       -1,
	}
	goBoard.SetConfig(c)
	goBoard.Box.SetDrawFunc(func(screen tcell.Screen, x int, y int, width int, height int) (int, int, int, int) {
		if goBoard.BoardState == nil || goBoard.BoardState.Width() == 0 {
			return x, y, 1, 1
		}
		// 2 characters per cell for square appearance
		boardW, boardH := goBoard.BoardState.Width()*2, goBoard.BoardState.Height()

		for boardY := 0; boardY < goBoard.BoardState.Height(); boardY++ {
			for boardX := 0; boardX < goBoard.BoardState.Width(); boardX++ {
				cell := goBoard.BoardState.Cells[boardY][boardX]
				stone := cell.Color
				i := stone
				if !goBoard.cfg.Theme.DrawStoneBackground {
					i = 0
				}
				var fgColor tcell.Color
				// Get color and inverted color
				iInv := 0
				if i == types.CellBlack {
					iInv = types.CellWhite
				} else if i == types.CellWhite {
					iInv = types.CellBlack
				}
				if (boardX%2 + boardY%2) == 1 {
					i += 3
					iInv += 3
				}
				var drawRune rune
				if goBoard.cfg.Theme.UseGridLines && stone == types.CellEmpty {
					// Use grid lines for empty intersections
					boardSize := goBoard.BoardState.Width()
					hoshi := isHoshiPoint(boardX, boardY, boardSize)
					drawRune = getGridRune(boardX, boardY, goBoard.BoardState.Width(), goBoard.BoardState.Height(), hoshi)
				} else {
					drawRune = goBoard.cfg.Theme.Symbols.BoardSquare
				}

				crumbling := stone != types.CellEmpty && !cell.Petrified && cell.Health <= 3
				if stone != types.CellEmpty {
					switch stone {
					case types.CellBlack:
						drawRune = goBoard.cfg.Theme.Symbols.BlackStone
					case types.CellWhite:
						drawRune = goBoard.cfg.Theme.Symbols.WhiteStone
					}
					if cell.Petrified {
						drawRune = goBoard.cfg.Theme.Symbols.PetrifiedStone
						fgColor = goBoard.styles[10]
					} else if crumbling {
						// Low health, draw in the warning shade
						fgColor = goBoard.styles[stone+3]
					} else if goBoard.cfg.Theme.DrawStoneBackground {
						// Cursor color is inverted stone color, or cursor color when not on a stone.
						fgColor = goBoard.styles[iInv]
					} else {
						// There's a stone but no background drawing, adjust the fg color instead to selected stone
						fgColor = goBoard.styles[stone]
					}
				} else {
					// No stone, use line color for grid
					fgColor = goBoard.styles[9]
				}
				if boardX == goBoard.selX && boardY == goBoard.selY {
					if goBoard.cfg.Theme.DrawCursorBackground {
						i = 8
					} else if !goBoard.cfg.Theme.UseGridLines {
						drawRune = goBoard.cfg.Theme.Symbols.Cursor
					}
					// For grid lines theme, keep the grid character but cursor background will highlight
				} else if boardX == goBoard.BoardState.LastMove.X && boardY == goBoard.BoardState.LastMove.Y {
					if goBoard.cfg.Theme.DrawLastPlayedBackground {
						i = 7
					} else if !goBoard.cfg.Theme.UseGridLines {
						drawRune = goBoard.cfg.Theme.Symbols.LastPlayed
					}
				}

				style := tcell.StyleDefault.Background(goBoard.styles[i]).Foreground(fgColor)
				if goBoard.cfg.Theme.UseGridLines && stone == types.CellEmpty {
					// Check if there's a stone to the right (no line should connect to it)
					hasStoneRight := false
					if boardX < goBoard.BoardState.Width()-1 {
						hasStoneRight = goBoard.BoardState.Cells[boardY][boardX+1].Color != types.CellEmpty
					}
					// Empty intersection with grid lines - draw grid character + connectors
					drawGridCell(screen, style, drawRune, boardX, boardY, x+4, y, goBoard.BoardState.Width(), hasStoneRight)
				} else {
					// Stone or non-grid theme - use stone cell drawing
					healthRune := ' '
					if crumbling && goBoard.cfg.Theme.ShowHealth {
						healthRune = rune('0' + cell.Health)
					}
					drawStoneCell(screen, style, drawRune, healthRune, boardX, boardY, x+4, y)
				}
			}
		}
		drawCoordinates(screen, x, y, goBoard)
		// Add offset for coordinate display
		return x, y, boardW + 4, boardH + 2
	})
	return goBoard
}

// ConnectEngine connects the board to a game engine.
func (g *GoBoardUI) ConnectEngine(e engine.GameEngine) error {
	g.finished = false
	g.eng = e
	g.moveHistory = nil

	if err := e.Connect(); err != nil {
		return err
	}

	e.OnMove(func(x, y, color int, boardState *types.BoardState) {
		g.lastTurnPass = (x == -1 && y == -1)
		g.moveHistory = append(g.moveHistory, MoveEntry{X: x, Y: y, Color: color})
		if !g.planning {
			g.BoardState = boardState
		}
		g.refreshHint()
		// Spawn goroutine to avoid deadlock when called from main thread
		go func() {
			g.app.QueueUpdateDraw(func() {})
		}()
	})

	e.OnGameEnd(func(outcome string) {
		g.finished = true
		if g.planning {
			g.exitPlanMode()
		}
		g.BoardState = e.GetBoardState()
		g.ResetSelection()
		g.refreshHint()
		go func() {
			g.app.QueueUpdateDraw(func() {})
		}()
	})

	g.BoardState = e.GetBoardState()
	g.refreshHint()
	return nil
}

// PlayMove plays a move at the given coordinates. In planning mode the
// move goes into the exploration tree instead of the live game.
func (g *GoBoardUI) PlayMove(x, y int) {
	if g.planning {
		g.planMove(x, y)
		return
	}
	if g.finished {
		return
	}
	if g.eng == nil {
		return
	}
	if !g.eng.IsMyTurn() {
		return
	}
	if err := g.eng.PlayMove(x, y); err != nil {
		// Could show error for illegal move
		return
	}
}

// Pass passes the current turn.
func (g *GoBoardUI) Pass() {
	if g.planning || g.finished {
		return
	}
	if g.eng == nil {
		return
	}
	if !g.eng.IsMyTurn() {
		return
	}
	g.eng.Pass()
}

// Undo takes back the last two plies so it is the player's turn again.
func (g *GoBoardUI) Undo() {
	if g.planning || g.finished {
		return
	}
	if g.eng == nil {
		return
	}
	for i := 0; i < 2; i++ {
		if err := g.eng.Undo(); err != nil {
			break
		}
		if n := len(g.moveHistory); n > 0 {
			g.moveHistory = g.moveHistory[:n-1]
		}
		if g.eng.IsMyTurn() {
			break
		}
	}
	g.BoardState = g.eng.GetBoardState()
	g.refreshHint()
}

// TogglePlanMode enters or leaves planning mode. Returns the new state.
func (g *GoBoardUI) TogglePlanMode() bool {
	if g.planning {
		g.exitPlanMode()
	} else {
		if g.finished || g.eng == nil {
			return false
		}
		g.planState = local.FromBoardState(g.BoardState)
		g.planTree = record.NewGameTree(g.planState)
		g.planning = true
		if g.infoPanel != nil {
			g.infoPanel.SetPlanningMode(g.planTree)
		}
	}
	g.refreshHint()
	return g.planning
}

// IsPlanning returns true while exploring hypothetical moves.
func (g *GoBoardUI) IsPlanning() bool {
	return g.planning
}

func (g *GoBoardUI) exitPlanMode() {
	g.planning = false
	g.planTree = nil
	if g.infoPanel != nil {
		g.infoPanel.ClearPlanningMode()
	}
	if g.eng != nil {
		g.BoardState = g.eng.GetBoardState()
	}
}

// planMove plays an exploratory move for whichever side is to move.
func (g *GoBoardUI) planMove(x, y int) {
	mover := g.planState.Turn
	next, ok := game.PlaceStone(g.planState, y, x)
	if !ok {
		return
	}
	g.planState = next
	g.planTree.AddMove(record.Move{X: x, Y: y, Color: int(mover)}, next)
	g.BoardState = local.ToBoardState(next)
	g.refreshHint()
}

// PlanBack steps one move back within the exploration tree.
func (g *GoBoardUI) PlanBack() {
	if !g.planning || !g.planTree.Back() {
		return
	}
	g.planState = g.planTree.Current.State
	g.BoardState = local.ToBoardState(g.planState)
	g.refreshHint()
}

// PlanNextVariation cycles to the next sibling branch.
func (g *GoBoardUI) PlanNextVariation() {
	if !g.planning || !g.planTree.NextVariation() {
		return
	}
	g.planState = g.planTree.Current.State
	g.BoardState = local.ToBoardState(g.planState)
	g.refreshHint()
}

// PlanPrevVariation cycles to the previous sibling branch.
func (g *GoBoardUI) PlanPrevVariation() {
	if !g.planning || !g.planTree.PrevVariation() {
		return
	}
	g.planState = g.planTree.Current.State
	g.BoardState = local.ToBoardState(g.planState)
	g.refreshHint()
}

// Close disconnects the engine.
func (g *GoBoardUI) Close() {
	if g.eng == nil {
		return
	}
	g.eng.Close()
}

func (g *GoBoardUI) SetConfig(c *config.Config) {
	g.styles = []tcell.Color{
		tcell.PaletteColor(c.Theme.Colors.BoardColor),        // 0
		tcell.PaletteColor(c.Theme.Colors.BlackColor),        // 1
		tcell.PaletteColor(c.Theme.Colors.WhiteColor),        // 2
		tcell.PaletteColor(c.Theme.Colors.BoardColorAlt),     // 3
		tcell.PaletteColor(c.Theme.Colors.BlackColorAlt),     // 4
		tcell.PaletteColor(c.Theme.Colors.WhiteColorAlt),     // 5
		tcell.PaletteColor(c.Theme.Colors.CursorColorFG),     // 6
		tcell.PaletteColor(c.Theme.Colors.LastPlayedColorBG), // 7
		tcell.PaletteColor(c.Theme.Colors.CursorColorBG),     // 8
		tcell.PaletteColor(c.Theme.Colors.LineColor),         // 9
		tcell.PaletteColor(c.Theme.Colors.PetrifiedColor),    // 10
	}
	g.cfg = c
}

func (g *GoBoardUI) refreshHint() {
	// Update info panel if available
	if g.infoPanel != nil {
		g.infoPanel.SetBoardState(g.BoardState)
	}

	// Focus mode shows minimal hint
	if g.focusMode {
		g.hint.SetText("  f to toggle")
		return
	}

	var statusLine, turnLine, controlsLine string

	if g.finished {
		// Game over state
		statusLine = "───────── Game Complete ─────────\n\n"
		turnLine = fmt.Sprintf("  Result: %s\n", g.BoardState.Outcome)
		controlsLine = "\n  q · return to menu"
	} else if g.planning {
		statusLine = "  ▷ Planning — live game untouched\n\n"
		stone := "●"
		if g.planState.Turn == game.White {
			stone = "○"
		}
		turnLine = fmt.Sprintf("  %s %s to move\n", stone, g.planState.Turn)
		controlsLine = `
  ⏎ try move   u back   [/] variation
         w live   q quit`
	} else {
		// Active game state
		if g.lastTurnPass {
			statusLine = "  ○ Opponent passed\n\n"
		}

		if g.eng != nil && g.eng.IsMyTurn() {
			stone := "●"
			color := "Black"
			if g.eng.GetPlayerColor() == types.CellWhite {
				stone = "○"
				color = "White"
			}
			turnLine = fmt.Sprintf("  %s Your move (%s)\n", stone, color)
		} else {
			turnLine = "  ◌ Thinking...\n"
		}

		controlsLine = `
  hjkl/↑↓←→ move   ⏎ play
  p pass   u undo   w plan   f focus   q quit`
	}

	g.hint.SetText(fmt.Sprintf("%s%s%s", statusLine, turnLine, controlsLine))
}

// IsFinished returns true if the game is over.
func (g *GoBoardUI) IsFinished() bool {
	return g.finished
}

// drawStoneCell draws a stone cell (2 characters wide). The second
// column carries the health digit for crumbling stones.
func drawStoneCell(s tcell.Screen, c tcell.Style, r, health rune, x, y, l, t int) {
	s.SetContent(l+x*2, t+y, r, nil, c)
	s.SetContent(l+x*2+1, t+y, health, nil, c)
}

// drawGridCell draws a cell using box-drawing characters for grid lines
func drawGridCell(s tcell.Screen, c tcell.Style, r rune, x, y, l, t, boardWidth int, hasStoneRight bool) {
	// 2-char cell: [intersection][right-line]
	s.SetContent(l+x*2, t+y, r, nil, c)

	// Right connector: space if at right edge or if there's a stone to the right
	rightConn := '─'
	if x == boardWidth-1 || hasStoneRight {
		rightConn = ' '
	}
	s.SetContent(l+x*2+1, t+y, rightConn, nil, c)
}

// getGridRune returns the appropriate box-drawing character for a grid position
func getGridRune(x, y, width, height int, isHoshi bool) rune {
	if isHoshi {
		return '◦' // Subtle star point marker
	}

	isTop := y == 0
	isBottom := y == height-1
	isLeft := x == 0
	isRight := x == width-1

	switch {
	case isTop && isLeft:
		return '┌'
	case isTop && isRight:
		return '┐'
	case isBottom && isLeft:
		return '└'
	case isBottom && isRight:
		return '┘'
	case isTop:
		return '┬'
	case isBottom:
		return '┴'
	case isLeft:
		return '├'
	case isRight:
		return '┤'
	default:
		return '┼'
	}
}

// isHoshiPoint checks if a position is a hoshi (star point) on the board
func isHoshiPoint(x, y, boardSize int) bool {
	if boardSize != 9 {
		return false
	}
	hoshiPositions := [][2]int{
		{2, 2}, {2, 6},
		{4, 4},
		{6, 2}, {6, 6},
	}
	for _, pos := range hoshiPositions {
		if x == pos[0] && y == pos[1] {
			return true
		}
	}
	return false
}

func drawCoordinates(s tcell.Screen, x, y int, ui *GoBoardUI) {
	hCoord := int('A')
	w, h := ui.BoardState.Width(), ui.BoardState.Height()
	if ui.cfg.Theme.FullWidthLetters {
		hCoord = int('Ａ')
	}

	style := tcell.StyleDefault
	highlight := tcell.StyleDefault.Background(ui.styles[8])
	lpHighlight := tcell.StyleDefault.Background(ui.styles[7])

	for ix := 0; ix < w; ix++ {
		_style := style
		if ix == ui.selX {
			_style = highlight
		} else if ix == ui.BoardState.LastMove.X {
			_style = lpHighlight
		}
		// 2-char cells
		s.SetContent(x+4+(ix*2), y+h+1, rune(hCoord+ix), nil, _style)
		s.SetContent(x+4+(ix*2)+1, y+h+1, ' ', nil, _style)
	}

	for iy := 0; iy < h; iy++ {
		iyInv := h - iy - 1 // Board coordinates starts top left, Go board starts bottom left
		_style := style
		if iyInv == ui.selY {
			_style = highlight
		} else if iyInv == ui.BoardState.LastMove.Y {
			_style = lpHighlight
		}
		displayNum := iy + 1
		tensRune := ' '
		if displayNum >= 10 {
			tensRune = rune('0' + int((displayNum-(displayNum%10))/10))
		}
		s.SetContent(1, y+h-iy-1, tensRune, nil, _style)
		s.SetContent(2, y+h-iy-1, rune('0'+(displayNum%10)), nil, _style)
	}
	s.Show()
}
