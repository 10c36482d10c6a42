package render

import (
	"github.com/zyedidia/generic/mapset"

	"hunt-the-wumpus/internal/maze"
)

// Tile is what the players have learned about one location.
type Tile struct {
	Exits  mapset.Set[maze.Direction]
	Bats   bool
	Draft  bool
	Stench bool
	Wumpus bool
	Pit    bool
}

// Board is the players' shared memory of the cave system. Locations are
// unknown until a player stands in them or walks through them.
type Board struct {
	rows, cols int
	tiles      map[int]*Tile
	revealed   bool
}

// NewBoard returns an empty board for a rows x cols maze.
func NewBoard(rows, cols int) *Board {
	return &Board{rows: rows, cols: cols, tiles: make(map[int]*Tile)}
}

// Rows returns the number of rows.
func (b *Board) Rows() int { return b.rows }

// Cols returns the number of columns.
func (b *Board) Cols() int { return b.cols }

// Known returns the number of locations the players have seen.
func (b *Board) Known() int { return len(b.tiles) }

// Revealed reports whether the whole board has been uncovered.
func (b *Board) Revealed() bool { return b.revealed }

// Tile returns the tile for location id, if known.
func (b *Board) Tile(id int) (*Tile, bool) {
	t, ok := b.tiles[id]
	return t, ok
}

// Learn records the open exits of location id.
func (b *Board) Learn(id int, exits []maze.Direction) *Tile {
	t, ok := b.tiles[id]
	if !ok {
		t = &Tile{Exits: mapset.New[maze.Direction]()}
		b.tiles[id] = t
	}
	for _, d := range exits {
		t.Exits.Put(d)
	}
	return t
}

// LearnTrail records the hallways walked through on a move.
func (b *Board) LearnTrail(trail []maze.HallwayStep) {
	for _, step := range trail {
		b.Learn(step.Location, step.Exits[:])
	}
}

// Sense marks what a player standing at id can sense.
func (b *Board) Sense(id int, exits []maze.Direction, bats, draft, stench bool) {
	t := b.Learn(id, exits)
	t.Bats = t.Bats || bats
	t.Draft = t.Draft || draft
	t.Stench = t.Stench || stench
}

// Reveal uncovers every location, hazards included.
func (b *Board) Reveal(cells []maze.Cell) {
	for _, c := range cells {
		t := b.Learn(c.ID, c.Exits)
		t.Bats = t.Bats || c.Bat
		t.Wumpus = c.Wumpus
		t.Pit = c.Pit
	}
	b.revealed = true
}

// blockSize is the width and height, in glyphs, of one location on screen.
const blockSize = 3

// glyphAt returns the glyph drawn at position (i, j) of the block for tile t.
// (1, 1) is the centre; the middle of each edge is a door slot and the
// corners show what the players sensed there.
func (t *Tile) glyphAt(i, j int, th Theme) string {
	switch {
	case i == 1 && j == 1:
		switch {
		case t.Wumpus:
			return th.Wumpus
		case t.Pit:
			return th.Pit
		}
		return th.Floor
	case i == 1 && j == 0:
		return t.door(maze.North, th)
	case i == 1 && j == 2:
		return t.door(maze.South, th)
	case i == 2 && j == 1:
		return t.door(maze.East, th)
	case i == 0 && j == 1:
		return t.door(maze.West, th)
	case i == 0 && j == 0 && t.Bats:
		return th.Bats
	case i == 2 && j == 0 && t.Draft:
		return th.Draft
	case i == 0 && j == 2 && t.Stench:
		return th.Stench
	}
	return th.Wall
}

func (t *Tile) door(d maze.Direction, th Theme) string {
	if t.Exits.Has(d) {
		return th.Floor
	}
	return th.Wall
}
