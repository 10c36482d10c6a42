package maze

// HallwayStep records one hallway passed through during a move: the
// hallway's location and its two open directions in slot order.
type HallwayStep struct {
	Location int
	Exits    [2]Direction
}

// walker is the loop state of a traversal.
type walker struct {
	at        int
	dir       Direction
	remaining int
}

// step advances w through a single door. When the door in w.dir is closed and
// w stands in a hallway, the walk bends through the hallway's other exit.
func (g *grid) step(w walker) (walker, bool) {
	if next, ok := g.neighbor(w.at, w.dir); ok {
		w.at = next
		return w, true
	}

	loc := g.locations[w.at]
	if !loc.IsHallway() {
		return w, false
	}
	back := w.dir.Opposite()
	turned := false
	for _, d := range loc.OpenDirections() {
		if d != back {
			w.dir = d
			turned = true
		}
	}
	if !turned {
		return w, false
	}
	next, _ := g.neighbor(w.at, w.dir)
	w.at = next
	return w, true
}

// traverse walks from location from in direction dir until caves caves have
// been entered. Hallways do not count towards caves and are recorded in the
// returned trail. Nothing is mutated; ok is false when the walk hits a wall
// or circles through hallways without ever reaching a cave.
func (g *grid) traverse(from int, dir Direction, caves int) (end int, trail []HallwayStep, ok bool) {
	w := walker{at: from, dir: dir, remaining: caves}
	inHallways := 0
	for w.remaining > 0 {
		if w, ok = g.step(w); !ok {
			return from, nil, false
		}

		loc := g.locations[w.at]
		if !loc.IsHallway() {
			w.remaining--
			inHallways = 0
			continue
		}
		inHallways++
		if inHallways > len(g.locations) {
			return from, nil, false
		}
		exits := loc.OpenDirections()
		trail = append(trail, HallwayStep{Location: w.at, Exits: [2]Direction{exits[0], exits[1]}})
	}
	return w.at, trail, true
}
