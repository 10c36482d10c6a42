package maze

import "hunt-the-wumpus/internal/unionfind"

// removeWalls carves a spanning tree out of a fully walled grid using
// randomized Kruskal, then opens redundant doors until only remaining of them
// are still closed. Doors are drawn uniformly from the shrinking candidate
// list. The redundant doors left closed are returned in the order they were
// drawn.
func removeWalls(doors []*Door, locations, remaining int, src Source) []*Door {
	candidates := make([]*Door, len(doors))
	copy(candidates, doors)

	sets := unionfind.New(locations)
	var redundant []*Door
	for len(candidates) > 0 {
		i := src.Intn(len(candidates))
		d := candidates[i]
		candidates = append(candidates[:i], candidates[i+1:]...)

		if sets.Union(d.a, d.b) {
			d.Open()
		} else {
			redundant = append(redundant, d)
		}
	}

	extra := len(redundant) - remaining
	for _, d := range redundant[:extra] {
		d.Open()
	}
	return redundant[extra:]
}

// maxRemainingWalls is the number of doors that stay closed in a perfect maze
// of the given shape: everything outside a spanning tree.
func maxRemainingWalls(rows, cols int, wrapping bool) int {
	return doorCount(rows, cols, wrapping) - (rows*cols - 1)
}
