package maze

import "errors"

// Error categories. Every error returned by this package wraps exactly one of
// them, so callers can branch with errors.Is.
var (
	// ErrConfiguration reports bad construction parameters. No maze is built.
	ErrConfiguration = errors.New("configuration error")
	// ErrInvalidArgument reports a rejected command. State is unchanged and
	// the caller may retry with corrected input.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrIllegalState reports misuse by the calling code, such as addressing a
	// player that was never added.
	ErrIllegalState = errors.New("illegal state")
)

// Error is the concrete error type returned by the maze.
type Error struct {
	Kind error
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

func (e *Error) Unwrap() error { return e.Kind }

func configurationError(msg string) error { return &Error{Kind: ErrConfiguration, Msg: msg} }

func invalidArgument(msg string) error { return &Error{Kind: ErrInvalidArgument, Msg: msg} }

func illegalState(msg string) error { return &Error{Kind: ErrIllegalState, Msg: msg} }
