package render

import (
	"testing"

	"hunt-the-wumpus/internal/maze"
)

func TestBoardLearn(t *testing.T) {
	b := NewBoard(3, 4)
	if b.Known() != 0 {
		t.Fatalf("new board knows %d tiles", b.Known())
	}

	b.Learn(5, []maze.Direction{maze.North})
	b.Learn(5, []maze.Direction{maze.East})
	tile, ok := b.Tile(5)
	if !ok {
		t.Fatal("tile 5 not learned")
	}
	if tile.Exits.Size() != 2 || !tile.Exits.Has(maze.North) || !tile.Exits.Has(maze.East) {
		t.Errorf("tile 5 exits size=%d, want North and East", tile.Exits.Size())
	}
	if _, ok := b.Tile(6); ok {
		t.Error("tile 6 should be unknown")
	}
}

func TestBoardLearnTrail(t *testing.T) {
	b := NewBoard(3, 3)
	b.LearnTrail([]maze.HallwayStep{
		{Location: 3, Exits: [2]maze.Direction{maze.North, maze.South}},
		{Location: 4, Exits: [2]maze.Direction{maze.South, maze.East}},
	})
	if b.Known() != 2 {
		t.Fatalf("Known() = %d, want 2", b.Known())
	}
	tile, _ := b.Tile(4)
	if !tile.Exits.Has(maze.East) || tile.Exits.Has(maze.North) {
		t.Error("tile 4 exits wrong")
	}
}

func TestBoardSenseIsSticky(t *testing.T) {
	b := NewBoard(2, 2)
	b.Sense(0, nil, true, false, true)
	b.Sense(0, nil, false, true, false)
	tile, _ := b.Tile(0)
	if !tile.Bats || !tile.Draft || !tile.Stench {
		t.Errorf("marks = %+v, want all set", *tile)
	}
}

func TestBoardReveal(t *testing.T) {
	b := NewBoard(1, 2)
	b.Reveal([]maze.Cell{
		{ID: 0, Exits: []maze.Direction{maze.East}, Pit: true},
		{ID: 1, Exits: []maze.Direction{maze.West}, Wumpus: true, Bat: true},
	})
	if !b.Revealed() || b.Known() != 2 {
		t.Fatalf("Revealed=%v Known=%d", b.Revealed(), b.Known())
	}
	t0, _ := b.Tile(0)
	t1, _ := b.Tile(1)
	if !t0.Pit || !t1.Wumpus || !t1.Bats {
		t.Error("hazards not revealed")
	}
}

func TestTileGlyphs(t *testing.T) {
	b := NewBoard(1, 1)
	tile := b.Learn(0, []maze.Direction{maze.North, maze.East})
	tile.Draft = true
	th := ASCIITheme

	cases := []struct {
		i, j int
		want string
	}{
		{1, 1, th.Floor},
		{1, 0, th.Floor},
		{2, 1, th.Floor},
		{1, 2, th.Wall},
		{0, 1, th.Wall},
		{2, 0, th.Draft},
		{0, 0, th.Wall},
		{2, 2, th.Wall},
	}
	for _, tc := range cases {
		if got := tile.glyphAt(tc.i, tc.j, th); got != tc.want {
			t.Errorf("glyphAt(%d,%d) = %q, want %q", tc.i, tc.j, got, tc.want)
		}
	}

	tile.Wumpus = true
	if got := tile.glyphAt(1, 1, th); got != th.Wumpus {
		t.Errorf("centre = %q, want wumpus", got)
	}
}
