package maze

// player is the engine-side record of one hunter.
type player struct {
	location     int
	arrows       int
	movedByBats  bool
	wumpusKilled bool
}

func (p *player) removeArrow() error {
	if p.arrows < 1 {
		return illegalState("you cannot remove more arrows than you have")
	}
	p.arrows--
	return nil
}
