package maze

// placeHazards drops the wumpus, the pits and the bats onto caves. The wumpus
// takes one draw; pits and then bats take one percentile roll per cave each.
func placeHazards(g *grid, src Source, pitPercent, batPercent int) ([]int, error) {
	caves := g.caves()
	if len(caves) == 0 {
		return nil, configurationError("maze has no caves")
	}

	g.locations[caves[src.Intn(len(caves))]].wumpus = true
	for _, id := range caves {
		if src.Intn(100) < pitPercent {
			g.locations[id].pit = true
		}
	}
	for _, id := range caves {
		if src.Intn(100) < batPercent {
			g.locations[id].bat = true
		}
	}
	return caves, nil
}

// closestCave returns the cave nearest to (row, col) by straight-line
// distance. Ties go to the first cave in row-major order.
func closestCave(g *grid, caves []int, row, col int) int {
	best, bestDist := -1, 0
	for _, id := range caves {
		r, c := g.rowCol(id)
		dist := (r-row)*(r-row) + (c-col)*(c-col)
		if best < 0 || dist < bestDist {
			best, bestDist = id, dist
		}
	}
	return best
}
