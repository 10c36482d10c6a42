package game

import (
	"github.com/gdamore/tcell/v2"

	"hunt-the-wumpus/internal/maze"
)

// Action represents a player-requested game action.
type Action uint8

const (
	ActionNone Action = iota
	ActionMoveN
	ActionMoveS
	ActionMoveE
	ActionMoveW
	ActionShoot
	ActionCancel
	ActionRestart
	ActionQuit
)

// keyToAction maps a tcell key event to a game action.
func keyToAction(ev *tcell.EventKey) Action {
	// Named keys.
	switch ev.Key() {
	case tcell.KeyUp:
		return ActionMoveN
	case tcell.KeyDown:
		return ActionMoveS
	case tcell.KeyRight:
		return ActionMoveE
	case tcell.KeyLeft:
		return ActionMoveW
	case tcell.KeyEscape:
		return ActionCancel
	}

	// Rune keys.
	switch ev.Rune() {
	case 'k', 'K':
		return ActionMoveN
	case 'j', 'J':
		return ActionMoveS
	case 'l', 'L':
		return ActionMoveE
	case 'h', 'H':
		return ActionMoveW
	case 's', 'S':
		return ActionShoot
	case 'r', 'R':
		return ActionRestart
	case 'q', 'Q':
		return ActionQuit
	}
	return ActionNone
}

// keyToDistance maps the digit keys 1-9 to an arrow distance.
func keyToDistance(ev *tcell.EventKey) (int, bool) {
	if ev.Key() != tcell.KeyRune {
		return 0, false
	}
	r := ev.Rune()
	if r < '1' || r > '9' {
		return 0, false
	}
	return int(r - '0'), true
}

// actionToDirection converts a movement action to a maze direction.
func actionToDirection(a Action) (maze.Direction, bool) {
	switch a {
	case ActionMoveN:
		return maze.North, true
	case ActionMoveS:
		return maze.South, true
	case ActionMoveE:
		return maze.East, true
	case ActionMoveW:
		return maze.West, true
	}
	return 0, false
}
