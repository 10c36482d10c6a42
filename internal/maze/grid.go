package maze

// Door joins two locations. A door starts closed and, once opened, stays open.
type Door struct {
	a, b int
	open bool
}

// Open opens the door.
func (d *Door) Open() { d.open = true }

// IsOpen reports whether the door has been opened.
func (d *Door) IsOpen() bool { return d.open }

// ends returns the ids of the two locations joined by the door.
func (d *Door) ends() (int, int) { return d.a, d.b }

// OtherSide returns the location on the far side of the door from id.
func (d *Door) OtherSide(id int) int {
	if id == d.a {
		return d.b
	}
	return d.a
}

// Location is one cell of the grid.
type Location struct {
	id     int
	doors  [4]*Door
	wumpus bool
	pit    bool
	bat    bool
}

// ID returns row*cols+col.
func (l *Location) ID() int { return l.id }

// Door returns the door registered in slot d, or nil.
func (l *Location) Door(d Direction) *Door {
	if !d.Valid() {
		return nil
	}
	return l.doors[d]
}

// OpenDirections lists the slots holding an open door, in slot order.
func (l *Location) OpenDirections() []Direction {
	var dirs []Direction
	for _, d := range Directions {
		if l.isOpen(d) {
			dirs = append(dirs, d)
		}
	}
	return dirs
}

// IsHallway reports whether exactly two of the location's doors are open.
func (l *Location) IsHallway() bool { return l.openCount() == 2 }

func (l *Location) isOpen(d Direction) bool {
	door := l.doors[d]
	return door != nil && door.open
}

func (l *Location) openCount() int {
	n := 0
	for _, d := range Directions {
		if l.isOpen(d) {
			n++
		}
	}
	return n
}

// grid owns every location and door of a maze. Locations and doors are never
// added or removed after buildGrid returns.
type grid struct {
	rows, cols int
	wrapping   bool
	locations  []*Location
	doors      []*Door
}

// doorCount returns how many doors buildGrid creates for the given shape.
func doorCount(rows, cols int, wrapping bool) int {
	n := rows*(cols-1) + cols*(rows-1)
	if wrapping {
		n += rows + cols
	}
	return n
}

// buildGrid lays out rows*cols locations in row-major order and creates every
// door closed: east-west doors row by row, north-south doors column by
// column, then the wrap-around doors for each row and each column.
func buildGrid(rows, cols int, wrapping bool) *grid {
	g := &grid{
		rows:      rows,
		cols:      cols,
		wrapping:  wrapping,
		locations: make([]*Location, rows*cols),
		doors:     make([]*Door, 0, doorCount(rows, cols, wrapping)),
	}
	for i := range g.locations {
		g.locations[i] = &Location{id: i}
	}

	for r := 0; r < rows; r++ {
		for c := 0; c < cols-1; c++ {
			g.connect(g.id(r, c), East, g.id(r, c+1), West)
		}
	}
	for c := 0; c < cols; c++ {
		for r := 0; r < rows-1; r++ {
			g.connect(g.id(r, c), South, g.id(r+1, c), North)
		}
	}
	if wrapping {
		for r := 0; r < rows; r++ {
			g.connect(g.id(r, 0), West, g.id(r, cols-1), East)
		}
		for c := 0; c < cols; c++ {
			g.connect(g.id(0, c), North, g.id(rows-1, c), South)
		}
	}
	return g
}

// connect registers a new door in slot da of location a and slot db of b.
func (g *grid) connect(a int, da Direction, b int, db Direction) *Door {
	d := &Door{a: a, b: b}
	g.locations[a].doors[da] = d
	g.locations[b].doors[db] = d
	g.doors = append(g.doors, d)
	return d
}

func (g *grid) id(row, col int) int { return row*g.cols + col }

func (g *grid) rowCol(id int) (int, int) { return id / g.cols, id % g.cols }

// caves returns the ids of every location that is not a hallway, in
// row-major order.
func (g *grid) caves() []int {
	var ids []int
	for _, l := range g.locations {
		if !l.IsHallway() {
			ids = append(ids, l.id)
		}
	}
	return ids
}

// neighbor returns the location reached through the open door in slot d.
func (g *grid) neighbor(id int, d Direction) (int, bool) {
	l := g.locations[id]
	if !d.Valid() || !l.isOpen(d) {
		return 0, false
	}
	return l.doors[d].OtherSide(id), true
}
