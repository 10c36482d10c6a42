// Package session runs the turn-taking rules of a Hunt the Wumpus game on top
// of a maze: it places the players, tracks whose turn it is, decides when the
// game is over and who won.
package session

import (
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"

	"hunt-the-wumpus/internal/maze"
)

// ErrGameOver is returned by every command once the game has ended.
var ErrGameOver = errors.New("game is over")

// ErrNotStarted is returned by commands issued before Start.
var ErrNotStarted = errors.New("game has not started")

// Action identifies what a player did on a turn.
type Action uint8

const (
	ActionPlace Action = iota
	ActionMove
	ActionShoot
)

// Options configures a session.
type Options struct {
	Arrows     int
	TwoPlayers bool
	// Logger receives reports of engine misuse. Defaults to the standard
	// logrus logger.
	Logger log.FieldLogger
}

// Outcome describes the result of one placement, move or shot.
type Outcome struct {
	Player      int
	Action      Action
	Location    int
	Trail       []maze.HallwayStep
	MovedByBats bool
	OnBat       bool
	Eaten       bool
	Fallen      bool
	Killed      bool
	Lost        bool
}

// Message is the short status line shown after an action, meant to follow
// the player's name.
func (o Outcome) Message() string {
	if o.Action == ActionShoot {
		switch {
		case o.Killed:
			return "has killed the wumpus!"
		case o.Lost:
			return "has ran out of arrows and lost!"
		default:
			return "has missed the wumpus and lost an arrow!"
		}
	}
	switch {
	case o.Eaten:
		return "has been eaten by the wumpus and lost!"
	case o.Fallen:
		return "has fallen into a pit and lost!"
	case o.MovedByBats:
		return "has been moved by bats!"
	case o.OnBat:
		return "has successfully avoided bats!"
	case o.Action == ActionPlace:
		return "will start the game!"
	}
	return "has moved successfully!"
}

// Status is a snapshot of everything a player can sense.
type Status struct {
	Player      int
	Location    int
	Arrows      int
	Moves       []maze.Direction
	Smell       bool
	Draft       bool
	OnBat       bool
	MovedByBats bool
	Eaten       bool
	Fallen      bool
	Lost        bool
	Killed      bool
}

// Stats are the per-game counters kept for the run log.
type Stats struct {
	Turns      int
	ArrowsShot int
	Cause      string
}

// Session is one game played on one maze.
type Session struct {
	m       *maze.Maze
	opts    Options
	log     log.FieldLogger
	started bool
	current int
	stats   Stats
}

// New wraps m. The players are placed by Start.
func New(m *maze.Maze, opts Options) (*Session, error) {
	if m == nil {
		return nil, errors.New("maze cannot be nil")
	}
	if opts.Arrows < 0 {
		return nil, fmt.Errorf("number of arrows cannot be negative: %d", opts.Arrows)
	}
	if m.PlayerCount() != 0 {
		return nil, errors.New("maze already has players")
	}
	l := opts.Logger
	if l == nil {
		l = log.StandardLogger()
	}
	return &Session{m: m, opts: opts, log: l}, nil
}

// Maze returns the underlying maze.
func (s *Session) Maze() *maze.Maze { return s.m }

// TwoPlayers reports whether this is a two-player game.
func (s *Session) TwoPlayers() bool { return s.opts.TwoPlayers }

// Players returns the number of players in the game.
func (s *Session) Players() int {
	if s.opts.TwoPlayers {
		return 2
	}
	return 1
}

// Current returns the index of the player whose turn it is.
func (s *Session) Current() int { return s.current }

// Stats returns the counters gathered so far.
func (s *Session) Stats() Stats { return s.stats }

// Start places player one in the top-left corner and, in a two-player game,
// player two in the bottom-right corner. It returns one outcome per player.
func (s *Session) Start() ([]Outcome, error) {
	if s.started {
		return nil, errors.New("game already started")
	}
	corners := [][2]int{{0, 0}, {s.m.Rows() - 1, s.m.Cols() - 1}}
	var out []Outcome
	for p := 0; p < s.Players(); p++ {
		if err := s.m.AddPlayer(corners[p][0], corners[p][1], s.opts.Arrows); err != nil {
			return nil, fmt.Errorf("place player %d: %w", p+1, err)
		}
		out = append(out, s.outcome(p, ActionPlace))
	}
	s.started = true

	s.current = 0
	if s.opts.TwoPlayers && s.lost(0) && !s.lost(1) {
		s.current = 1
	}
	for _, o := range out {
		s.recordLoss(o)
	}
	return out, nil
}

// Over reports whether the game has ended: somebody killed the wumpus or
// every player has lost.
func (s *Session) Over() bool {
	if !s.started {
		return false
	}
	if s.killed(0) || (s.opts.TwoPlayers && s.killed(1)) {
		return true
	}
	return s.lost(0) && (!s.opts.TwoPlayers || s.lost(1))
}

// Winner returns the index of the player who killed the wumpus, or -1.
func (s *Session) Winner() int {
	if !s.started {
		return -1
	}
	if s.killed(0) {
		return 0
	}
	if s.opts.TwoPlayers && s.killed(1) {
		return 1
	}
	return -1
}

// Move moves the current player one cave in direction dir.
func (s *Session) Move(dir maze.Direction) (Outcome, error) {
	return s.act(ActionMove, func(p int) error {
		return s.m.MovePlayerInDirection(dir, p)
	})
}

// MoveTo moves the current player to the neighbouring cave loc.
func (s *Session) MoveTo(loc int) (Outcome, error) {
	return s.act(ActionMove, func(p int) error {
		return s.m.MovePlayerToLocation(loc, p)
	})
}

// Shoot fires one of the current player's arrows caves caves in direction
// dir.
func (s *Session) Shoot(dir maze.Direction, caves int) (Outcome, error) {
	return s.act(ActionShoot, func(p int) error {
		return s.m.ShootArrow(dir, caves, p)
	})
}

func (s *Session) act(a Action, do func(p int) error) (Outcome, error) {
	if !s.started {
		return Outcome{}, ErrNotStarted
	}
	if s.Over() {
		return Outcome{}, ErrGameOver
	}
	p := s.current
	if err := do(p); err != nil {
		if errors.Is(err, maze.ErrIllegalState) {
			s.log.WithError(err).WithField("player", p+1).Error("maze rejected a command")
		}
		return Outcome{}, err
	}

	s.stats.Turns++
	if a == ActionShoot {
		s.stats.ArrowsShot++
	}
	o := s.outcome(p, a)
	s.recordLoss(o)
	s.switchPlayers()
	return o, nil
}

// switchPlayers passes the turn to the other player unless that player has
// already lost.
func (s *Session) switchPlayers() {
	if !s.opts.TwoPlayers {
		return
	}
	next := 1 - s.current
	if !s.lost(next) {
		s.current = next
	}
}

func (s *Session) recordLoss(o Outcome) {
	if !o.Lost || s.stats.Cause != "" {
		return
	}
	switch {
	case o.Eaten:
		s.stats.Cause = "wumpus"
	case o.Fallen:
		s.stats.Cause = "pit"
	default:
		s.stats.Cause = "arrows"
	}
}

func (s *Session) outcome(p int, a Action) Outcome {
	st := s.Status(p)
	o := Outcome{
		Player:      p,
		Action:      a,
		Location:    st.Location,
		MovedByBats: st.MovedByBats,
		OnBat:       st.OnBat,
		Eaten:       st.Eaten,
		Fallen:      st.Fallen,
		Killed:      st.Killed,
		Lost:        st.Lost,
	}
	if a == ActionMove {
		o.Trail = s.m.HallwaysTraveled()
	}
	return o
}

// Status collects everything player p can currently sense.
func (s *Session) Status(p int) Status {
	st := Status{
		Player:      p,
		Smell:       s.flag(s.m.SmellWumpus, p),
		Draft:       s.flag(s.m.FeelDraft, p),
		OnBat:       s.flag(s.m.PlayerOnBat, p),
		MovedByBats: s.flag(s.m.MovedByBats, p),
		Eaten:       s.flag(s.m.PlayerEaten, p),
		Fallen:      s.flag(s.m.PlayerFallen, p),
		Lost:        s.flag(s.m.GameLost, p),
		Killed:      s.flag(s.m.WumpusKilled, p),
	}
	var err error
	if st.Location, err = s.m.PlayerLocation(p); err != nil {
		s.report(err, p)
	}
	if st.Arrows, err = s.m.PlayerArrows(p); err != nil {
		s.report(err, p)
	}
	if st.Moves, err = s.m.ValidPlayerMoves(p); err != nil {
		s.report(err, p)
	}
	return st
}

func (s *Session) lost(p int) bool { return s.flag(s.m.GameLost, p) }

func (s *Session) killed(p int) bool { return s.flag(s.m.WumpusKilled, p) }

func (s *Session) flag(query func(int) (bool, error), p int) bool {
	v, err := query(p)
	if err != nil {
		s.report(err, p)
		return false
	}
	return v
}

func (s *Session) report(err error, p int) {
	s.log.WithError(err).WithField("player", p+1).Error("maze query failed")
}
