package render

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"hunt-the-wumpus/internal/session"
)

// HUD is the information shown below the board.
type HUD struct {
	Status     session.Status
	TwoPlayers bool
	Aiming     bool
	Distance   int // caves an aimed arrow will fly
	Over       bool
	Winner     int
	Messages   []string
}

// DrawHUD renders the status bar and message log at the bottom of the screen.
func (r *Renderer) DrawHUD(h HUD) {
	_, screenH := r.screen.Size()
	hudY := screenH - hudHeight

	r.drawHLine(hudY, tcell.ColorGray)

	st := h.Status
	moves := make([]string, len(st.Moves))
	for i, d := range st.Moves {
		moves[i] = d.Short()
	}
	status := fmt.Sprintf("[Player %d]  Arrows: %d  Cave: %d  Tunnels: %s",
		st.Player+1, st.Arrows, st.Location, strings.Join(moves, " "))
	r.drawText(0, hudY+1, status, statusStyle)

	var senses []string
	if st.Smell {
		senses = append(senses, "You smell a wumpus!")
	}
	if st.Draft {
		senses = append(senses, "You feel a draft.")
	}
	if len(senses) > 0 {
		r.drawText(len(status)+2, hudY+1, strings.Join(senses, " "), senseStyle)
	}

	// Message log (last 3 messages).
	msgs := h.Messages
	if len(msgs) > 3 {
		msgs = msgs[len(msgs)-3:]
	}
	for i, msg := range msgs {
		r.drawText(0, hudY+2+i, msg, messageStyle)
	}

	r.drawText(0, hudY+5, helpLine(h), helpStyle)
	if h.Over {
		r.drawOutcome(h)
	}
	r.screen.Show()
}

func helpLine(h HUD) string {
	switch {
	case h.Over:
		return "[R] Play again  [Q] Quit"
	case h.Aiming:
		return fmt.Sprintf("Aiming %d cave(s): 1-9 distance, direction to shoot, Esc to cancel", h.Distance)
	}
	return "hjkl/arrows move  click a neighbouring cave  s shoot  r restart  q quit"
}

func (r *Renderer) drawOutcome(h HUD) {
	w, _ := r.screen.Size()
	var text string
	style := winStyle
	switch {
	case h.Winner >= 0 && h.TwoPlayers:
		text = fmt.Sprintf(" Player %d has killed the wumpus and won the game! ", h.Winner+1)
	case h.Winner >= 0:
		text = " You have killed the wumpus and won the game! "
	case h.TwoPlayers:
		text, style = " All players have lost the game! ", loseStyle
	default:
		text, style = " You have lost the game! ", loseStyle
	}
	r.drawText(centerX(w, text), 0, text, style)
}

// centerX returns the column at which text is centred on a line w cells wide.
func centerX(w int, text string) int {
	x := (w - runewidth.StringWidth(text)) / 2
	if x < 0 {
		return 0
	}
	return x
}

func (r *Renderer) drawHLine(y int, color tcell.Color) {
	w, _ := r.screen.Size()
	style := tcell.StyleDefault.Foreground(color)
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, '─', nil, style)
	}
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	col := x
	for _, ch := range text {
		r.screen.SetContent(col, y, ch, nil, style)
		col += max(runewidth.RuneWidth(ch), 1)
	}
}
