package game

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"hunt-the-wumpus/internal/config"
	"hunt-the-wumpus/internal/maze"
	"hunt-the-wumpus/internal/render"
	"hunt-the-wumpus/internal/session"
)

// GameState tracks the main state machine.
type GameState uint8

const (
	StatePlaying GameState = iota
	StateAiming
	StateOver
)

// maxMessages bounds the message log.
const maxMessages = 50

// Options configure a Game.
type Options struct {
	Settings config.Settings
	ASCII    bool   // draw with the two-character ASCII theme
	Player   string // recorded in the run log
	Logger   log.FieldLogger
	// Source replaces the seeded generator for every round when set.
	Source maze.Source
}

// Game is the top-level orchestrator of the terminal front end.
type Game struct {
	screen   tcell.Screen
	renderer *render.Renderer
	opts     Options
	log      log.FieldLogger
	sess     *session.Session
	board    *render.Board
	state    GameState
	distance int
	messages []string
	runLog   RunLog
	logged   bool
}

// New creates and returns a Game with screen initialized.
func New(opts Options) (*Game, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	screen.EnableMouse()

	g, err := NewWithScreen(screen, opts)
	if err != nil {
		screen.Fini()
		return nil, err
	}
	return g, nil
}

// NewWithScreen creates a Game that draws on an already initialized screen.
// The first round is set up immediately so bad settings fail here.
func NewWithScreen(screen tcell.Screen, opts Options) (*Game, error) {
	if err := opts.Settings.Validate(); err != nil {
		return nil, err
	}
	theme := render.EmojiTheme
	if opts.ASCII {
		theme = render.ASCIITheme
	}
	l := opts.Logger
	if l == nil {
		l = log.StandardLogger()
	}
	g := &Game{
		screen:   screen,
		renderer: render.NewRenderer(screen, theme),
		opts:     opts,
		log:      l,
	}
	if err := g.newRound(); err != nil {
		return nil, err
	}
	return g, nil
}

// State returns the current state.
func (g *Game) State() GameState { return g.state }

// Session returns the game being played.
func (g *Game) Session() *session.Session { return g.sess }

// Board returns what the players have discovered so far.
func (g *Game) Board() *render.Board { return g.board }

// Messages returns the message log, oldest first.
func (g *Game) Messages() []string { return g.messages }

// newRound builds a fresh maze and places the players.
func (g *Game) newRound() error {
	s := g.opts.Settings
	cfg := s.MazeConfig()
	if g.opts.Source != nil {
		cfg.Rand = g.opts.Source
	}
	m, err := maze.New(cfg)
	if err != nil {
		return fmt.Errorf("build maze: %w", err)
	}
	sess, err := session.New(m, session.Options{
		Arrows:     s.Arrows,
		TwoPlayers: s.TwoPlayers(),
		Logger:     g.log,
	})
	if err != nil {
		return err
	}
	placed, err := sess.Start()
	if err != nil {
		return err
	}

	g.sess = sess
	g.board = render.NewBoard(m.Rows(), m.Cols())
	g.state = StatePlaying
	g.distance = 1
	g.messages = nil
	g.logged = false
	g.runLog = RunLog{
		ID:         uuid.New(),
		Player:     g.opts.Player,
		Started:    time.Now(),
		Rows:       s.Rows,
		Cols:       s.Cols,
		Wrapping:   s.Wrapping,
		Seed:       m.Seed(),
		Walls:      s.Walls,
		PitPercent: s.PitPercent,
		BatPercent: s.BatPercent,
		Arrows:     s.Arrows,
		Players:    s.Players,
	}
	g.log.WithFields(log.Fields{
		"run":  g.runLog.ID,
		"seed": m.Seed(),
		"rows": s.Rows,
		"cols": s.Cols,
	}).Info("new game")

	for _, o := range placed {
		g.report(o)
	}
	if sess.Over() {
		g.finish()
	}
	return nil
}

// Run is the main loop. Supports consecutive games via restart.
func (g *Game) Run() {
	defer g.screen.Fini()

	for {
		g.draw()
		ev := g.screen.PollEvent()
		switch ev := ev.(type) {
		case nil:
			g.abandon()
			return
		case *tcell.EventResize:
			g.screen.Sync()
			g.renderer.Resize()
		case *tcell.EventKey:
			if !g.handleKey(ev) {
				g.abandon()
				return
			}
		case *tcell.EventMouse:
			g.handleMouse(ev)
		}
	}
}

// handleKey processes one key press. It returns false when the player quits.
func (g *Game) handleKey(ev *tcell.EventKey) bool {
	action := keyToAction(ev)
	switch g.state {
	case StateOver:
		switch action {
		case ActionQuit, ActionCancel:
			return false
		case ActionRestart:
			g.restart()
		}

	case StateAiming:
		if n, ok := keyToDistance(ev); ok {
			g.distance = n
			return true
		}
		if dir, ok := actionToDirection(action); ok {
			g.state = StatePlaying
			g.afterAction(g.sess.Shoot(dir, g.distance))
			return true
		}
		switch action {
		case ActionCancel:
			g.state = StatePlaying
		case ActionQuit:
			return false
		}

	default:
		if dir, ok := actionToDirection(action); ok {
			g.afterAction(g.sess.Move(dir))
			return true
		}
		switch action {
		case ActionShoot:
			g.state = StateAiming
			g.distance = 1
		case ActionRestart:
			g.restart()
		case ActionQuit, ActionCancel:
			return false
		}
	}
	return true
}

// handleMouse moves the current player to a neighbouring cave on click.
func (g *Game) handleMouse(ev *tcell.EventMouse) {
	if g.state != StatePlaying || ev.Buttons()&tcell.Button1 == 0 {
		return
	}
	x, y := ev.Position()
	id, ok := g.renderer.LocationAt(g.board, x, y)
	if !ok {
		return
	}
	g.afterAction(g.sess.MoveTo(id))
}

// afterAction updates the board and the message log from an action result.
func (g *Game) afterAction(o session.Outcome, err error) {
	if err != nil {
		if errors.Is(err, maze.ErrInvalidArgument) || errors.Is(err, session.ErrGameOver) {
			g.addMessage(sentence(err.Error()))
			return
		}
		g.log.WithError(err).Warn("action failed")
		g.addMessage(sentence(err.Error()))
		return
	}
	if o.Action == session.ActionMove && !o.MovedByBats {
		g.board.LearnTrail(o.Trail)
	}
	g.report(o)
	if g.sess.Over() {
		g.finish()
		return
	}
	if g.sess.Current() != o.Player {
		g.sense(g.sess.Current())
	}
}

// report records what a player learned from an outcome.
func (g *Game) report(o session.Outcome) {
	g.sense(o.Player)
	g.addMessage(fmt.Sprintf("Player %d %s", o.Player+1, o.Message()))
}

// sense marks what player p can perceive on the board.
func (g *Game) sense(p int) {
	st := g.sess.Status(p)
	g.board.Sense(st.Location, st.Moves, st.OnBat, st.Draft, st.Smell)
	if t, ok := g.board.Tile(st.Location); ok {
		t.Wumpus = t.Wumpus || st.Eaten
		t.Pit = t.Pit || st.Fallen
	}
}

// finish ends the game, uncovers the maze and writes the run log.
func (g *Game) finish() {
	g.state = StateOver
	g.board.Reveal(g.sess.Maze().Reveal())
	outcome := OutcomeLost
	if g.sess.Winner() >= 0 {
		outcome = OutcomeWon
	}
	g.saveRun(outcome)
}

// abandon logs a game that was left before it ended.
func (g *Game) abandon() {
	g.saveRun(OutcomeAbandoned)
}

func (g *Game) restart() {
	g.abandon()
	if err := g.newRound(); err != nil {
		g.log.WithError(err).Error("cannot start a new game")
		g.addMessage(sentence(err.Error()))
	}
}

func (g *Game) saveRun(outcome string) {
	if g.logged {
		return
	}
	g.logged = true
	stats := g.sess.Stats()
	g.runLog.Ended = time.Now()
	g.runLog.Outcome = outcome
	g.runLog.Winner = g.sess.Winner() + 1
	g.runLog.Turns = stats.Turns
	g.runLog.ArrowsShot = stats.ArrowsShot
	g.runLog.Cause = stats.Cause
	saveRunLog(g.runLog, g.log)
}

func (g *Game) draw() {
	marks := make([]render.PlayerMark, 0, g.sess.Players())
	for p := 0; p < g.sess.Players(); p++ {
		st := g.sess.Status(p)
		marks = append(marks, render.PlayerMark{
			Index:    p,
			Location: st.Location,
			Current:  p == g.sess.Current() && g.state != StateOver,
			Lost:     st.Lost,
		})
	}
	current := g.sess.Status(g.sess.Current())
	g.renderer.Follow(g.board, current.Location)
	g.renderer.DrawBoard(g.board, marks)
	g.renderer.DrawHUD(render.HUD{
		Status:     current,
		TwoPlayers: g.sess.TwoPlayers(),
		Aiming:     g.state == StateAiming,
		Distance:   g.distance,
		Over:       g.state == StateOver,
		Winner:     g.sess.Winner(),
		Messages:   g.messages,
	})
}

func (g *Game) addMessage(msg string) {
	g.messages = append(g.messages, msg)
	if len(g.messages) > maxMessages {
		g.messages = g.messages[len(g.messages)-maxMessages:]
	}
}

// sentence capitalises an error message for the message log.
func sentence(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:] + "."
}
