package session

import (
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hunt-the-wumpus/internal/maze"
)

// queue is a maze.Source replaying fixed draws.
type queue []int

func (q *queue) Intn(n int) int {
	v := (*q)[0]
	*q = (*q)[1:]
	return v
}

// newTestMaze builds this 2x3 maze with the wumpus at 2 and a pit at 3:
//
//	0 - 1 - 2
//	    |
//	3 - 4 - 5
func newTestMaze(t *testing.T) *maze.Maze {
	t.Helper()
	draws := queue{
		0, 0, 3, 0, 0, 0, 0, // walls
		2,                     // wumpus
		99, 99, 99, 0, 99, 99, // pits
		99, 99, 99, 99, 99, 99, // bats
	}
	m, err := maze.New(maze.Config{Rows: 2, Cols: 3, Perfect: true, PitPercent: 50, BatPercent: 50, Rand: &draws})
	require.NoError(t, err)
	require.Empty(t, draws)
	return m
}

func newTestSession(t *testing.T, arrows int, two bool) (*Session, *logtest.Hook) {
	t.Helper()
	logger, hook := logtest.NewNullLogger()
	s, err := New(newTestMaze(t), Options{Arrows: arrows, TwoPlayers: two, Logger: logger})
	require.NoError(t, err)
	return s, hook
}

func TestSinglePlayerWins(t *testing.T) {
	s, hook := newTestSession(t, 3, false)
	_, err := s.Move(maze.East)
	assert.ErrorIs(t, err, ErrNotStarted)

	placed, err := s.Start()
	require.NoError(t, err)
	require.Len(t, placed, 1)
	assert.Equal(t, "will start the game!", placed[0].Message())
	assert.Equal(t, 0, s.Current())
	assert.False(t, s.Over())

	st := s.Status(0)
	assert.Equal(t, 0, st.Location)
	assert.Equal(t, []maze.Direction{maze.East}, st.Moves)
	assert.False(t, st.Smell)
	assert.False(t, st.Draft)

	o, err := s.Move(maze.East)
	require.NoError(t, err)
	assert.Equal(t, 1, o.Location)
	assert.Empty(t, o.Trail)
	assert.Equal(t, "has moved successfully!", o.Message())

	st = s.Status(0)
	assert.Equal(t, []maze.Direction{maze.South, maze.East, maze.West}, st.Moves)
	assert.True(t, st.Smell)
	assert.False(t, st.Draft)

	o, err = s.Shoot(maze.East, 1)
	require.NoError(t, err)
	assert.True(t, o.Killed)
	assert.Equal(t, "has killed the wumpus!", o.Message())
	assert.True(t, s.Over())
	assert.Equal(t, 0, s.Winner())

	_, err = s.Move(maze.South)
	assert.ErrorIs(t, err, ErrGameOver)
	assert.Equal(t, Stats{Turns: 2, ArrowsShot: 1}, s.Stats())
	assert.Empty(t, hook.AllEntries())
}

func TestSinglePlayerFallsIntoPit(t *testing.T) {
	s, _ := newTestSession(t, 3, false)
	_, err := s.Start()
	require.NoError(t, err)

	for _, d := range []maze.Direction{maze.East, maze.South} {
		_, err := s.Move(d)
		require.NoError(t, err)
	}
	assert.True(t, s.Status(0).Draft)

	o, err := s.Move(maze.West)
	require.NoError(t, err)
	assert.True(t, o.Fallen)
	assert.True(t, o.Lost)
	assert.Equal(t, "has fallen into a pit and lost!", o.Message())
	assert.True(t, s.Over())
	assert.Equal(t, -1, s.Winner())
	assert.Equal(t, "pit", s.Stats().Cause)
}

func TestSinglePlayerRunsOutOfArrows(t *testing.T) {
	s, _ := newTestSession(t, 1, false)
	_, err := s.Start()
	require.NoError(t, err)

	o, err := s.Shoot(maze.East, 1)
	require.NoError(t, err)
	assert.False(t, o.Killed)
	assert.True(t, o.Lost)
	assert.Equal(t, "has ran out of arrows and lost!", o.Message())
	assert.True(t, s.Over())
	assert.Equal(t, "arrows", s.Stats().Cause)
}

func TestMissedShot(t *testing.T) {
	s, _ := newTestSession(t, 2, false)
	_, err := s.Start()
	require.NoError(t, err)

	o, err := s.Shoot(maze.East, 1)
	require.NoError(t, err)
	assert.Equal(t, "has missed the wumpus and lost an arrow!", o.Message())
	assert.Nil(t, o.Trail)
	assert.False(t, s.Over())
	assert.Equal(t, 1, s.Status(0).Arrows)
}

func TestInvalidCommandKeepsTurn(t *testing.T) {
	s, hook := newTestSession(t, 3, true)
	_, err := s.Start()
	require.NoError(t, err)

	_, err = s.Move(maze.North)
	require.Error(t, err)
	assert.True(t, errors.Is(err, maze.ErrInvalidArgument))
	_, err = s.Shoot(maze.East, -2)
	assert.True(t, errors.Is(err, maze.ErrInvalidArgument))
	_, err = s.MoveTo(5)
	assert.True(t, errors.Is(err, maze.ErrInvalidArgument))

	assert.Equal(t, 0, s.Current())
	assert.Equal(t, Stats{}, s.Stats())
	assert.Empty(t, hook.AllEntries())
}

func TestTwoPlayerTurns(t *testing.T) {
	s, _ := newTestSession(t, 3, true)
	placed, err := s.Start()
	require.NoError(t, err)
	require.Len(t, placed, 2)
	assert.Equal(t, 5, placed[1].Location)
	assert.Equal(t, 2, s.Players())

	steps := []struct {
		dir      maze.Direction
		player   int
		location int
		next     int
	}{
		{maze.East, 0, 1, 1},
		{maze.West, 1, 4, 0},
		{maze.South, 0, 4, 1},
		{maze.West, 1, 3, 0}, // player two falls into the pit
		{maze.North, 0, 1, 0},
	}
	for i, st := range steps {
		require.Equal(t, st.player, s.Current(), "step %d", i)
		o, err := s.Move(st.dir)
		require.NoError(t, err, "step %d", i)
		assert.Equal(t, st.location, o.Location, "step %d", i)
		assert.Equal(t, st.next, s.Current(), "step %d", i)
	}
	assert.False(t, s.Over())

	o, err := s.Shoot(maze.East, 1)
	require.NoError(t, err)
	assert.True(t, o.Killed)
	assert.True(t, s.Over())
	assert.Equal(t, 0, s.Winner())
	assert.Equal(t, "pit", s.Stats().Cause)
}

func TestTwoPlayersBothLose(t *testing.T) {
	s, _ := newTestSession(t, 1, true)
	_, err := s.Start()
	require.NoError(t, err)

	_, err = s.Shoot(maze.East, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, s.Current())
	assert.False(t, s.Over())

	_, err = s.Shoot(maze.West, 1)
	require.NoError(t, err)
	assert.True(t, s.Over())
	assert.Equal(t, -1, s.Winner())
}

func TestMoveToNeighbour(t *testing.T) {
	s, _ := newTestSession(t, 1, false)
	_, err := s.Start()
	require.NoError(t, err)
	o, err := s.MoveTo(1)
	require.NoError(t, err)
	assert.Equal(t, 1, o.Location)
}

func TestNewRejectsBadInput(t *testing.T) {
	_, err := New(nil, Options{})
	assert.Error(t, err)

	_, err = New(newTestMaze(t), Options{Arrows: -1})
	assert.Error(t, err)

	m := newTestMaze(t)
	require.NoError(t, m.AddPlayer(0, 0, 1))
	_, err = New(m, Options{Arrows: 1})
	assert.Error(t, err)
}

func TestStartTwice(t *testing.T) {
	s, _ := newTestSession(t, 1, false)
	_, err := s.Start()
	require.NoError(t, err)
	_, err = s.Start()
	assert.Error(t, err)
}

func TestDefaultLogger(t *testing.T) {
	s, err := New(newTestMaze(t), Options{Arrows: 1})
	require.NoError(t, err)
	assert.Equal(t, logrus.StandardLogger(), s.log)
}
