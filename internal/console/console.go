// Package console plays Hunt the Wumpus over a plain text stream, one
// whitespace-separated token of input at a time.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"hunt-the-wumpus/internal/maze"
	"hunt-the-wumpus/internal/session"
)

// ErrInputClosed is returned when the input ends before the game does.
var ErrInputClosed = errors.New("input closed before the game ended")

// token is one word read from the input, or the error that ended it.
type token struct {
	text string
	err  error
}

// Controller runs one game between an input and an output stream.
type Controller struct {
	in     *bufio.Scanner
	out    io.Writer
	s      *session.Session
	ctx    context.Context
	tokens chan token
	err    error
}

// New returns a controller reading commands from in and writing to out.
func New(in io.Reader, out io.Writer) *Controller {
	sc := bufio.NewScanner(in)
	sc.Split(bufio.ScanWords)
	return &Controller{in: sc, out: out}
}

// Run places the players and plays s to the end, or until the player quits,
// the input runs out or ctx is cancelled.
func Run(ctx context.Context, in io.Reader, out io.Writer, s *session.Session) error {
	return New(in, out).Play(ctx, s)
}

// Play runs the game loop for s.
func (c *Controller) Play(ctx context.Context, s *session.Session) error {
	c.s = s
	c.ctx = ctx
	c.tokens = make(chan token)
	readCtx, stop := context.WithCancel(ctx)
	defer stop()
	go c.scan(readCtx)

	placed, err := s.Start()
	if err != nil {
		return err
	}
	for _, o := range placed {
		c.placementMessage(o)
	}

	for !s.Over() {
		if err := ctx.Err(); err != nil {
			return err
		}
		quit, err := c.turn()
		if err != nil {
			return err
		}
		if quit {
			c.print("Goodbye!")
			return c.err
		}
	}
	c.finalMessage()
	return c.err
}

// turn prompts the current player for one action. It returns true when the
// player asks to quit.
func (c *Controller) turn() (bool, error) {
	p := c.s.Current()
	st := c.s.Status(p)

	if c.s.TwoPlayers() {
		c.printf("It is Player %d's turn\n", p+1)
	}
	if st.Smell {
		c.print("You can smell a wumpus nearby...\n")
	}
	if st.Draft {
		c.print("You can feel a draft nearby...\n")
	}
	c.printf("You are at location %d\n", st.Location)
	c.printf("You have %d arrows left\n", st.Arrows)
	c.print(tunnels(st.Moves))
	c.print("\n")

	c.print("Shoot or Move (S-M)? Or q to quit: ")
	choice, err := c.next()
	if err != nil {
		return false, err
	}
	var move bool
	switch choice {
	case "S", "s":
		move = false
	case "M", "m":
		move = true
	case "q", "Q":
		return true, nil
	default:
		c.print("Not a valid choice!\n\n")
		return false, nil
	}

	c.print("Which direction? ")
	tok, err := c.next()
	if err != nil {
		return false, err
	}
	dir, err := maze.ParseDirection(tok)
	if err != nil || len(tok) != 1 {
		c.print("Not a valid choice!\n\n")
		return false, nil
	}

	var o session.Outcome
	if move {
		o, err = c.s.Move(dir)
	} else {
		c.print("How many caves do you want to shoot through? ")
		num, readErr := c.next()
		if readErr != nil {
			return false, readErr
		}
		caves, convErr := strconv.Atoi(num)
		if convErr != nil {
			c.print("Input must be a number!\n\n")
			return false, nil
		}
		o, err = c.s.Shoot(dir, caves)
	}
	if err != nil {
		if errors.Is(err, maze.ErrInvalidArgument) {
			c.printf("%s\n\n", err)
			return false, nil
		}
		return false, err
	}

	switch {
	case move && o.MovedByBats:
		c.print("You have been picked up and carried away by bats...\n")
	case move && o.OnBat:
		c.print("You have avoided swooping bats!\n")
	case !move && !o.Killed:
		c.print("You missed the wumpus and lost an arrow!\n")
	}
	c.loseMessage(o)
	c.print("\n")
	return false, nil
}

// scan feeds input words to next until the input ends or ctx is done. A
// read that is already blocked when ctx ends is left to finish on its own.
func (c *Controller) scan(ctx context.Context) {
	defer close(c.tokens)
	for c.in.Scan() {
		select {
		case c.tokens <- token{text: c.in.Text()}:
		case <-ctx.Done():
			return
		}
	}
	if err := c.in.Err(); err != nil {
		select {
		case c.tokens <- token{err: fmt.Errorf("read input: %w", err)}:
		case <-ctx.Done():
		}
	}
}

// next waits for the next input word. Cancelling the context wins over any
// word typed afterwards.
func (c *Controller) next() (string, error) {
	select {
	case <-c.ctx.Done():
		return "", c.ctx.Err()
	case tok, ok := <-c.tokens:
		if !ok {
			return "", ErrInputClosed
		}
		if err := c.ctx.Err(); err != nil {
			return "", err
		}
		return tok.text, tok.err
	}
}

// tunnels lists the open directions, e.g. "Tunnels lead to the N, E".
func tunnels(moves []maze.Direction) string {
	names := make([]string, len(moves))
	for i, d := range moves {
		names[i] = d.Short()
	}
	return "Tunnels lead to the " + strings.Join(names, ", ") + "\n"
}

func (c *Controller) subject(p int) string {
	if c.s.TwoPlayers() {
		return fmt.Sprintf("Player %d has", p+1)
	}
	return "You have"
}

func (c *Controller) placementMessage(o session.Outcome) {
	switch {
	case o.MovedByBats:
		c.printf("%s been picked up and carried away by bats...\n", c.subject(o.Player))
	case o.OnBat:
		c.printf("%s avoided swooping bats!\n", c.subject(o.Player))
	}
}

func (c *Controller) loseMessage(o session.Outcome) {
	if !o.Lost {
		return
	}
	who := c.subject(o.Player)
	switch {
	case o.Eaten:
		c.printf("%s been eaten by the wumpus and lost!\n", who)
	case o.Fallen:
		c.printf("%s fallen into a pit and lost!\n", who)
	default:
		c.printf("%s run out of arrows and lost!\n", who)
	}
}

func (c *Controller) finalMessage() {
	switch w := c.s.Winner(); {
	case w == 0 && !c.s.TwoPlayers():
		c.print("You have killed the wumpus and won the game!")
	case w >= 0:
		c.printf("Player %d has killed the wumpus and won the game!", w+1)
	case c.s.TwoPlayers():
		c.print("All players have lost the game!")
	}
}

// print and printf remember the first write error and stop writing after it.
func (c *Controller) print(s string) {
	if c.err != nil {
		return
	}
	_, c.err = io.WriteString(c.out, s)
}

func (c *Controller) printf(format string, args ...any) {
	if c.err != nil {
		return
	}
	_, c.err = fmt.Fprintf(c.out, format, args...)
}
