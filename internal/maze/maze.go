// Package maze implements the Hunt the Wumpus cave system: a rectangular,
// optionally wrapping grid whose walls are knocked down with randomized
// Kruskal, populated with a wumpus, pits and bats, and explored by up to two
// players who move between caves and shoot arrows through crooked hallways.
//
// A Maze is not safe for concurrent use.
package maze

import (
	"math/rand"
	"time"
)

// MaxPlayers is the number of players a maze accepts.
const MaxPlayers = 2

// batCarryPercent is the chance that bats carry a player away on each roll.
const batCarryPercent = 50

// Source supplies the random draws used while building and playing a maze.
// *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// Config describes a maze to build.
type Config struct {
	Rows     int
	Cols     int
	Wrapping bool
	// Seed fixes the generator. A negative seed draws one from the clock.
	Seed int64
	// RemainingWalls is the number of redundant doors left closed. It is
	// ignored when Perfect is set.
	RemainingWalls int
	// Perfect leaves exactly one path between every pair of locations.
	Perfect    bool
	PitPercent int
	BatPercent int
	// Rand overrides Seed when set.
	Rand Source
}

// Maze is a generated cave system and the players exploring it.
type Maze struct {
	g        *grid
	src      Source
	seed     int64
	caves    []int
	players  []*player
	hallways []HallwayStep
}

// New validates cfg and generates a maze.
func New(cfg Config) (*Maze, error) {
	if cfg.Rows <= 0 {
		return nil, configurationError("number of rows must be positive")
	}
	if cfg.Cols <= 0 {
		return nil, configurationError("number of columns must be positive")
	}
	if cfg.PitPercent < 0 || cfg.PitPercent > 100 {
		return nil, configurationError("percentage of pits is not valid")
	}
	if cfg.BatPercent < 0 || cfg.BatPercent > 100 {
		return nil, configurationError("percentage of bats is not valid")
	}

	maxWalls := maxRemainingWalls(cfg.Rows, cfg.Cols, cfg.Wrapping)
	walls := cfg.RemainingWalls
	if cfg.Perfect {
		walls = maxWalls
	}
	if walls < 0 || walls > maxWalls {
		return nil, configurationError("numRemainingWalls is not valid")
	}

	seed := cfg.Seed
	src := cfg.Rand
	if src == nil {
		if seed < 0 {
			seed = time.Now().UnixNano()
		}
		src = rand.New(rand.NewSource(seed))
	}

	g := buildGrid(cfg.Rows, cfg.Cols, cfg.Wrapping)
	removeWalls(g.doors, len(g.locations), walls, src)
	caves, err := placeHazards(g, src, cfg.PitPercent, cfg.BatPercent)
	if err != nil {
		return nil, err
	}
	return &Maze{g: g, src: src, seed: seed, caves: caves}, nil
}

// NewPerfect builds a maze with exactly one path between any two locations.
func NewPerfect(rows, cols int, wrapping bool, seed int64, pitPercent, batPercent int) (*Maze, error) {
	return New(Config{
		Rows:       rows,
		Cols:       cols,
		Wrapping:   wrapping,
		Seed:       seed,
		Perfect:    true,
		PitPercent: pitPercent,
		BatPercent: batPercent,
	})
}

// NewNonPerfect builds a maze in which remainingWalls redundant doors stay
// closed and every other door is open.
func NewNonPerfect(rows, cols int, wrapping bool, seed int64, remainingWalls, pitPercent, batPercent int) (*Maze, error) {
	return New(Config{
		Rows:           rows,
		Cols:           cols,
		Wrapping:       wrapping,
		Seed:           seed,
		RemainingWalls: remainingWalls,
		PitPercent:     pitPercent,
		BatPercent:     batPercent,
	})
}

// Rows returns the number of grid rows.
func (m *Maze) Rows() int { return m.g.rows }

// Cols returns the number of grid columns.
func (m *Maze) Cols() int { return m.g.cols }

// Wrapping reports whether the edges of the grid join up.
func (m *Maze) Wrapping() bool { return m.g.wrapping }

// Seed returns the seed the generator was built from. It is meaningless when
// a Source was injected through Config.Rand.
func (m *Maze) Seed() int64 { return m.seed }

// PlayerCount returns the number of players added so far.
func (m *Maze) PlayerCount() int { return len(m.players) }

// AddPlayer places a new player at (row, col) carrying arrows arrows. A
// player asked to start in a hallway starts in the nearest cave instead.
// Bats in the starting cave may carry the player off straight away.
func (m *Maze) AddPlayer(row, col, arrows int) error {
	if row < 0 || row >= m.g.rows {
		return invalidArgument("not a valid row")
	}
	if col < 0 || col >= m.g.cols {
		return invalidArgument("not a valid column")
	}
	if arrows < 0 {
		return invalidArgument("number of arrows cannot be negative")
	}
	if len(m.players) >= MaxPlayers {
		return illegalState("maze already has two players")
	}

	id := m.g.id(row, col)
	if m.g.locations[id].IsHallway() {
		id = closestCave(m.g, m.caves, row, col)
	}
	p := &player{location: id, arrows: arrows}
	m.players = append(m.players, p)
	m.batCheck(p)
	return nil
}

func (m *Maze) player(n int) (*player, error) {
	if n < 0 || n >= len(m.players) {
		return nil, illegalState("this player does not exist")
	}
	return m.players[n], nil
}

// validMove returns the player and checks that dir is open from the
// player's location.
func (m *Maze) validMove(dir Direction, n int) (*player, error) {
	p, err := m.player(n)
	if err != nil {
		return nil, err
	}
	if _, ok := m.g.neighbor(p.location, dir); !ok {
		return nil, invalidArgument("this is not a valid direction")
	}
	return p, nil
}

// batCheck lets the bats in the player's cave carry the player to a random
// cave. Bats keep rolling until they miss or the player lands on a cave
// without bats. Bats never lift a player off the wumpus or a pit.
func (m *Maze) batCheck(p *player) {
	p.movedByBats = false
	for {
		loc := m.g.locations[p.location]
		if !loc.bat || loc.wumpus || loc.pit {
			return
		}
		if m.src.Intn(100) >= batCarryPercent {
			return
		}
		p.movedByBats = true
		p.location = m.caves[m.src.Intn(len(m.caves))]
	}
}

// PlayerLocation returns the location id of player n.
func (m *Maze) PlayerLocation(n int) (int, error) {
	p, err := m.player(n)
	if err != nil {
		return 0, err
	}
	return p.location, nil
}

// ValidPlayerMoves lists the open directions from player n's location.
func (m *Maze) ValidPlayerMoves(n int) ([]Direction, error) {
	p, err := m.player(n)
	if err != nil {
		return nil, err
	}
	return m.g.locations[p.location].OpenDirections(), nil
}

// MovePlayerInDirection moves player n one cave in direction dir, passing
// through and recording any hallways on the way.
func (m *Maze) MovePlayerInDirection(dir Direction, n int) error {
	p, err := m.validMove(dir, n)
	if err != nil {
		return err
	}
	end, trail, ok := m.g.traverse(p.location, dir, 1)
	if !ok {
		return invalidArgument("the player cannot move in this direction")
	}
	p.location = end
	m.hallways = trail
	m.batCheck(p)
	return nil
}

// MovePlayerToLocation moves player n to loc, which must be the cave one
// move away in some open direction.
func (m *Maze) MovePlayerToLocation(loc, n int) error {
	p, err := m.player(n)
	if err != nil {
		return err
	}
	for _, dir := range m.g.locations[p.location].OpenDirections() {
		if end, _, ok := m.g.traverse(p.location, dir, 1); ok && end == loc {
			return m.MovePlayerInDirection(dir, n)
		}
	}
	return invalidArgument("the player cannot move to this location")
}

// HallwaysTraveled returns the hallways passed through on the most recent
// move. It is empty before any move has been made.
func (m *Maze) HallwaysTraveled() []HallwayStep {
	out := make([]HallwayStep, len(m.hallways))
	copy(out, m.hallways)
	return out
}

// ShootArrow spends one of player n's arrows on a shot that flies caves caves
// in direction dir. The wumpus dies if the arrow completes its flight in the
// wumpus's cave.
func (m *Maze) ShootArrow(dir Direction, caves, n int) error {
	p, err := m.validMove(dir, n)
	if err != nil {
		return err
	}
	if caves < 0 {
		return invalidArgument("number of caves cannot be negative")
	}
	if err := p.removeArrow(); err != nil {
		return err
	}

	end, _, ok := m.g.traverse(p.location, dir, caves)
	if !ok {
		return nil
	}
	if m.g.locations[end].wumpus {
		p.wumpusKilled = true
	}
	return nil
}

// adjacentCaves returns the cave reached by one move in each open direction.
func (m *Maze) adjacentCaves(p *player) []int {
	var ids []int
	for _, dir := range m.g.locations[p.location].OpenDirections() {
		if end, _, ok := m.g.traverse(p.location, dir, 1); ok {
			ids = append(ids, end)
		}
	}
	return ids
}

// SmellWumpus reports whether the wumpus is one move away from player n.
func (m *Maze) SmellWumpus(n int) (bool, error) {
	p, err := m.player(n)
	if err != nil {
		return false, err
	}
	for _, id := range m.adjacentCaves(p) {
		if m.g.locations[id].wumpus {
			return true, nil
		}
	}
	return false, nil
}

// FeelDraft reports whether a pit is one move away from player n.
func (m *Maze) FeelDraft(n int) (bool, error) {
	p, err := m.player(n)
	if err != nil {
		return false, err
	}
	for _, id := range m.adjacentCaves(p) {
		if m.g.locations[id].pit {
			return true, nil
		}
	}
	return false, nil
}

// PlayerOnBat reports whether player n shares a cave with bats.
func (m *Maze) PlayerOnBat(n int) (bool, error) {
	p, err := m.player(n)
	if err != nil {
		return false, err
	}
	return m.g.locations[p.location].bat, nil
}

// MovedByBats reports whether bats carried player n off after the player's
// most recent placement or move.
func (m *Maze) MovedByBats(n int) (bool, error) {
	p, err := m.player(n)
	if err != nil {
		return false, err
	}
	return p.movedByBats, nil
}

// PlayerEaten reports whether player n stands in the wumpus's cave.
func (m *Maze) PlayerEaten(n int) (bool, error) {
	p, err := m.player(n)
	if err != nil {
		return false, err
	}
	return m.g.locations[p.location].wumpus, nil
}

// PlayerFallen reports whether player n stands in a pit.
func (m *Maze) PlayerFallen(n int) (bool, error) {
	p, err := m.player(n)
	if err != nil {
		return false, err
	}
	return m.g.locations[p.location].pit, nil
}

// PlayerArrows returns the number of arrows player n still carries.
func (m *Maze) PlayerArrows(n int) (int, error) {
	p, err := m.player(n)
	if err != nil {
		return 0, err
	}
	return p.arrows, nil
}

// GameLost reports whether player n is out of the game. Running out of
// arrows counts as a loss.
func (m *Maze) GameLost(n int) (bool, error) {
	p, err := m.player(n)
	if err != nil {
		return false, err
	}
	loc := m.g.locations[p.location]
	return loc.wumpus || loc.pit || p.arrows == 0, nil
}

// WumpusKilled reports whether one of player n's arrows killed the wumpus.
func (m *Maze) WumpusKilled(n int) (bool, error) {
	p, err := m.player(n)
	if err != nil {
		return false, err
	}
	return p.wumpusKilled, nil
}
