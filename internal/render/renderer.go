package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// hudHeight is the number of screen rows reserved for the HUD.
const hudHeight = 6

// PlayerMark places a player on the board.
type PlayerMark struct {
	Index    int
	Location int
	Current  bool
	Lost     bool
}

// Renderer draws the board onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
	camera *Camera
	theme  Theme
}

// NewRenderer creates a Renderer for the given screen.
func NewRenderer(screen tcell.Screen, theme Theme) *Renderer {
	w, h := screen.Size()
	return &Renderer{
		screen: screen,
		camera: NewCamera(0, 0, w, h-hudHeight),
		theme:  theme,
	}
}

// Resize adapts the viewport to the current screen size.
func (r *Renderer) Resize() {
	w, h := r.screen.Size()
	r.camera.ViewWidth = w
	r.camera.ViewHeight = h - hudHeight
}

// Follow scrolls the board so that location id of b stays in view.
func (r *Renderer) Follow(b *Board, id int) {
	row, col := id/b.cols, id%b.cols
	r.camera.Follow(col*blockSize+1, row*blockSize+1, b.cols*blockSize, b.rows*blockSize)
}

// LocationAt returns the location drawn at screen position (sx, sy).
func (r *Renderer) LocationAt(b *Board, sx, sy int) (int, bool) {
	if sy >= r.camera.ViewHeight {
		return 0, false
	}
	wx, wy := r.camera.ScreenToWorld(sx, sy)
	if wx < 0 || wy < 0 {
		return 0, false
	}
	col, row := wx/blockSize, wy/blockSize
	if row >= b.rows || col >= b.cols {
		return 0, false
	}
	return row*b.cols + col, true
}

// DrawBoard renders every known location and the players.
func (r *Renderer) DrawBoard(b *Board, players []PlayerMark) {
	r.screen.Clear()
	for id, t := range b.tiles {
		row, col := id/b.cols, id%b.cols
		for j := 0; j < blockSize; j++ {
			for i := 0; i < blockSize; i++ {
				r.putWorld(col*blockSize+i, row*blockSize+j, t.glyphAt(i, j, r.theme), boardStyle)
			}
		}
	}

	// Draw the current player last so it wins a shared cave.
	for _, pass := range []bool{false, true} {
		for _, p := range players {
			if p.Current != pass {
				continue
			}
			glyph := r.theme.Players[p.Index%len(r.theme.Players)]
			if p.Lost {
				glyph = r.theme.Lost
			}
			style := boardStyle
			if p.Current {
				style = currentStyle
			}
			row, col := p.Location/b.cols, p.Location%b.cols
			r.putWorld(col*blockSize+1, row*blockSize+1, glyph, style)
		}
	}
}

func (r *Renderer) putWorld(wx, wy int, glyph string, style tcell.Style) {
	sx, sy, onScreen := r.camera.WorldToScreen(wx, wy)
	if !onScreen {
		return
	}
	r.putGlyph(sx, sy, glyph, style)
}

// putGlyph draws a glyph two columns wide at screen position (x, y). A wide
// glyph (emoji) fills both columns; narrow text is drawn rune by rune.
func (r *Renderer) putGlyph(x, y int, glyph string, style tcell.Style) {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return
	}
	if runewidth.RuneWidth(runes[0]) == 2 {
		r.screen.SetContent(x, y, runes[0], runes[1:], style)
		if runewidth.StringWidth(glyph) == 2 {
			// Fill the second column to avoid rendering artifacts.
			r.screen.SetContent(x+1, y, ' ', nil, style)
		}
		return
	}
	for i := 0; i < 2 && i < len(runes); i++ {
		r.screen.SetContent(x+i, y, runes[i], nil, style)
	}
}
