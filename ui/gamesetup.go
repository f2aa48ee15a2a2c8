// Package ui provides terminal UI components for petrigo.
package ui

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"petrigo/engine"
)

// GameSetupUI is the new-game card: color choice, opponent think delay
// and the start/colors/quit buttons, drawn with the menu widgets.
type GameSetupUI struct {
	*MenuCard

	colorSelect *RadioSelect
	delaySlider *LevelSlider
	buttons     []*MenuButton
	focusIdx    int

	onStart  func(engine.GameConfig)
	onCancel func()
}

// NewGameSetup creates a new game setup card.
func NewGameSetup(defaults engine.GameConfig, onStart func(engine.GameConfig), onCancel func(), onColors func()) *GameSetupUI {
	setup := &GameSetupUI{
		MenuCard: NewMenuCard("P E T R I G O"),
		onStart:  onStart,
		onCancel: onCancel,
	}

	colorIdx := 0
	if defaults.PlayerColor == 2 {
		colorIdx = 1
	}
	setup.colorSelect = NewRadioSelect("Your Color", []RadioOption{
		{Label: "Black", Description: "play first"},
		{Label: "White", Description: "play second"},
	}, colorIdx, nil)

	// Slider in tenths of a second, 0 means the opponent replies instantly.
	delayIdx := int(defaults.ThinkDelay / (100 * time.Millisecond))
	if delayIdx < 0 || delayIdx > 20 {
		delayIdx = 6
	}
	setup.delaySlider = NewLevelSlider("Think Delay (×100ms)", 0, 20, delayIdx, nil)

	setup.buttons = []*MenuButton{
		NewMenuButton("Start Game", true, func() { setup.start() }),
		NewMenuButton("Board Color", false, func() {
			if onColors != nil {
				onColors()
			}
		}),
		NewMenuButton("Quit", false, func() { onCancel() }),
	}

	setup.applyFocus()
	setup.SetInputCapture(setup.handleKey)
	return setup
}

func (s *GameSetupUI) start() {
	s.onStart(engine.GameConfig{
		PlayerColor: s.colorSelect.Selected() + 1,
		ThinkDelay:  time.Duration(s.delaySlider.Value()) * 100 * time.Millisecond,
	})
}

// focusables: 0 = color radio, 1 = delay slider, 2.. = buttons
func (s *GameSetupUI) focusableCount() int {
	return 2 + len(s.buttons)
}

func (s *GameSetupUI) applyFocus() {
	s.MenuCard.SetFocused(true)
	s.colorSelect.SetFocused(s.focusIdx == 0)
	s.delaySlider.SetFocused(s.focusIdx == 1)
	for i, b := range s.buttons {
		b.SetFocused(s.focusIdx == 2+i)
	}
}

func (s *GameSetupUI) handleKey(event *tcell.EventKey) *tcell.EventKey {
	// The focused widget gets first crack at the key.
	handled := false
	switch s.focusIdx {
	case 0:
		handled = s.colorSelect.HandleKey(event)
	case 1:
		handled = s.delaySlider.HandleKey(event)
	default:
		handled = s.buttons[s.focusIdx-2].HandleKey(event)
	}
	if handled {
		return nil
	}

	switch event.Key() {
	case tcell.KeyTab, tcell.KeyDown:
		s.focusIdx = (s.focusIdx + 1) % s.focusableCount()
		s.applyFocus()
		return nil
	case tcell.KeyBacktab, tcell.KeyUp:
		s.focusIdx = (s.focusIdx - 1 + s.focusableCount()) % s.focusableCount()
		s.applyFocus()
		return nil
	case tcell.KeyLeft:
		if s.focusIdx > 2 {
			s.focusIdx--
			s.applyFocus()
			return nil
		}
	case tcell.KeyRight:
		if s.focusIdx >= 2 && s.focusIdx < s.focusableCount()-1 {
			s.focusIdx++
			s.applyFocus()
			return nil
		}
	case tcell.KeyEsc:
		s.onCancel()
		return nil
	case tcell.KeyEnter:
		s.start()
		return nil
	}
	return event
}

// Draw renders the card and its widgets.
func (s *GameSetupUI) Draw(screen tcell.Screen) {
	s.MenuCard.Draw(screen)

	x, y, width, height := s.GetInnerRect()
	if width < 10 || height < 5 {
		return
	}

	// Content starts below the title divider drawn by the card.
	row := y + 6
	row += s.colorSelect.Draw(screen, x+3, row, width-6) + 1
	row += s.delaySlider.Draw(screen, x+3, row, width-6) + 1

	s.DrawDivider(screen, row)
	row += 2

	col := x + 3
	for _, b := range s.buttons {
		col += b.Draw(screen, col, row) + 2
	}
}

// Form returns the setup card centered in a flex container.
func (s *GameSetupUI) Form() *tview.Flex {
	const cardWidth, cardHeight = 48, 17

	centerRow := CreateCenteredForm(s, cardWidth)

	flex := tview.NewFlex().SetDirection(tview.FlexRow)
	flex.AddItem(nil, 0, 1, false)
	flex.AddItem(centerRow, cardHeight, 0, true)
	flex.AddItem(nil, 0, 1, false)

	return flex
}
