package maze

// Cell is a read-only snapshot of one location.
type Cell struct {
	ID      int
	Row     int
	Col     int
	Exits   []Direction
	Hallway bool
	Wumpus  bool
	Pit     bool
	Bat     bool
}

// Reveal returns a snapshot of every location in row-major order, hazards
// included. Adapters use it to uncover the board once a game is over.
func (m *Maze) Reveal() []Cell {
	cells := make([]Cell, len(m.g.locations))
	for i, l := range m.g.locations {
		r, c := m.g.rowCol(l.ID())
		cells[i] = Cell{
			ID:      l.ID(),
			Row:     r,
			Col:     c,
			Exits:   l.OpenDirections(),
			Hallway: l.IsHallway(),
			Wumpus:  l.wumpus,
			Pit:     l.pit,
			Bat:     l.bat,
		}
	}
	return cells
}

// Caves returns the ids of every cave in row-major order.
func (m *Maze) Caves() []int {
	out := make([]int, len(m.caves))
	copy(out, m.caves)
	return out
}
