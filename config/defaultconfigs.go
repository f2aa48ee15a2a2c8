package config

var DefaultConfig Config
var DefaultTheme Theme

func init() {
	DefaultTheme = Theme{
		DrawStoneBackground:      false,
		DrawCursorBackground:     true,
		DrawLastPlayedBackground: true,
		FullWidthLetters:         false,
		UseGridLines:             true,
		ShowHealth:               true,
		Colors: ConfigColors{
			BoardColor:        180,
			BoardColorAlt:     180,
			BlackColor:        232,
			BlackColorAlt:     130,
			WhiteColor:        255,
			WhiteColorAlt:     222,
			PetrifiedColor:    245,
			LineColor:         94,
			CursorColorFG:     2,
			CursorColorBG:     4,
			LastPlayedColorBG: 2,
		},
		Symbols: ConfigSymbols{
			BlackStone:     '●',
			WhiteStone:     '●',
			PetrifiedStone: '◆',
			BoardSquare:    '┼',
			Cursor:         '┼',
			LastPlayed:     '┼',
		},
	}

	DefaultConfig = Config{
		Theme: DefaultTheme,
		Game: GameConfig{
			DefaultPlayerColor: 1,
			ThinkDelayMs:       600,
			Seed:               0,
		},
	}
}
