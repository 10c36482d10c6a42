package maze

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zyedidia/generic/mapset"
)

// scripted is a Source that replays a fixed list of draws and fails the test
// on any draw it was not told about.
type scripted struct {
	t     *testing.T
	draws []int
}

func script(t *testing.T, draws ...int) *scripted {
	return &scripted{t: t, draws: draws}
}

func (s *scripted) Intn(n int) int {
	s.t.Helper()
	if len(s.draws) == 0 {
		s.t.Fatalf("unexpected draw Intn(%d)", n)
	}
	v := s.draws[0]
	s.draws = s.draws[1:]
	if v < 0 || v >= n {
		s.t.Fatalf("scripted draw %d out of range for Intn(%d)", v, n)
	}
	return v
}

func (s *scripted) exhausted() bool { return len(s.draws) == 0 }

// fixtureDoors are the open doors of a 3x3 wrapping maze with five walls
// left standing. Locations 1, 3 and 4 are hallways.
var fixtureDoors = [][2]int{
	{4, 7}, {3, 6}, {6, 7}, {0, 1}, {1, 2}, {2, 5}, {4, 5},
	{7, 8}, {0, 2}, {0, 3}, {5, 8}, {2, 8}, {6, 8},
}

// newFixture builds the 3x3 wrapping maze with the wumpus at 2, pits at 5
// and 7 and bats at 6.
func newFixture(t *testing.T, src Source) *Maze {
	t.Helper()
	g := buildGrid(3, 3, true)
	for _, pair := range fixtureDoors {
		d := findDoor(g, pair[0], pair[1])
		require.NotNil(t, d, "door %v", pair)
		d.Open()
	}
	g.locations[2].wumpus = true
	g.locations[5].pit = true
	g.locations[7].pit = true
	g.locations[6].bat = true
	return &Maze{g: g, src: src, caves: g.caves()}
}

func findDoor(g *grid, a, b int) *Door {
	for _, d := range g.doors {
		if (d.a == a && d.b == b) || (d.a == b && d.b == a) {
			return d
		}
	}
	return nil
}

// reachable counts the locations reachable from location 0 through open
// doors.
func reachable(g *grid) int {
	seen := mapset.New[int]()
	seen.Put(0)
	queue := []int{0}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		for _, d := range Directions {
			next, ok := g.neighbor(id, d)
			if !ok || seen.Has(next) {
				continue
			}
			seen.Put(next)
			queue = append(queue, next)
		}
	}
	return seen.Size()
}

func openDoors(g *grid) int {
	n := 0
	for _, d := range g.doors {
		if d.IsOpen() {
			n++
		}
	}
	return n
}
