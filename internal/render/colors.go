package render

import "github.com/gdamore/tcell/v2"

// Theme holds the glyphs used to draw the cave system.
// Emoji are rendered by the terminal with their own colors, so each
// feature gets a distinct glyph rather than a tinted one.
type Theme struct {
	Wall    string
	Floor   string
	Players [2]string
	Lost    string // a player who is out of the game
	Bats    string
	Draft   string
	Stench  string
	Wumpus  string
	Pit     string
}

// EmojiTheme is the default theme.
var EmojiTheme = Theme{
	Wall:    "🪨",
	Floor:   "🟫",
	Players: [2]string{"🧝", "🧙"},
	Lost:    "💀",
	Bats:    "🦇",
	Draft:   "💨",
	Stench:  "🤢",
	Wumpus:  "👹",
	Pit:     "🌀",
}

// ASCIITheme is for terminals without emoji fonts. Every glyph is padded to
// two columns so the grid lines up with EmojiTheme.
var ASCIITheme = Theme{
	Wall:    "##",
	Floor:   "  ",
	Players: [2]string{"@1", "@2"},
	Lost:    "x ",
	Bats:    "b ",
	Draft:   "d ",
	Stench:  "s ",
	Wumpus:  "W!",
	Pit:     "O ",
}

// Styles used by the board and the HUD.
var (
	boardStyle   = tcell.StyleDefault.Background(tcell.ColorBlack)
	currentStyle = tcell.StyleDefault.Background(tcell.ColorDarkSlateGray)
	statusStyle  = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	senseStyle   = tcell.StyleDefault.Foreground(tcell.ColorOrange)
	messageStyle = tcell.StyleDefault.Foreground(tcell.ColorLightYellow)
	helpStyle    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	winStyle     = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	loseStyle    = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)
