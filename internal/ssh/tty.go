package ssh

import (
	"sync"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
)

// channel is the part of an SSH session a terminal needs.
type channel interface {
	Read(b []byte) (int, error)
	Write(b []byte) (int, error)
	Close() error
}

// sessionTTY implements tcell.Tty on top of one SSH session, so every
// connected player gets a tcell.Screen of their own.
type sessionTTY struct {
	ch     channel
	mu     sync.Mutex
	window gossh.Window
	winCh  <-chan gossh.Window
	resize func()
	once   sync.Once
}

// newSessionTTY wraps ch. pty holds the initial window size; winCh delivers
// later window changes and is closed when the session ends.
func newSessionTTY(ch channel, pty gossh.Pty, winCh <-chan gossh.Window) *sessionTTY {
	return &sessionTTY{ch: ch, window: pty.Window, winCh: winCh}
}

func (t *sessionTTY) Read(b []byte) (int, error)  { return t.ch.Read(b) }
func (t *sessionTTY) Write(b []byte) (int, error) { return t.ch.Write(b) }

// Close is a no-op: the session is closed by the server once the game
// returns, after tcell has restored the terminal.
func (t *sessionTTY) Close() error { return nil }

// Start and Stop are no-ops since the channel is already in raw mode on the
// client side.
func (t *sessionTTY) Start() error { return nil }
func (t *sessionTTY) Stop() error  { return nil }

// Drain is a no-op; SSH writes are not buffered here.
func (t *sessionTTY) Drain() error { return nil }

// WindowSize returns the current terminal dimensions.
func (t *sessionTTY) WindowSize() (tcell.WindowSize, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return tcell.WindowSize{Width: t.window.Width, Height: t.window.Height}, nil
}

// NotifyResize registers the callback tcell wants on window changes. The
// window-change channel is drained by a single goroutine for the life of
// the session, however often tcell re-registers.
func (t *sessionTTY) NotifyResize(cb func()) {
	t.mu.Lock()
	t.resize = cb
	t.mu.Unlock()

	t.once.Do(func() {
		go func() {
			for win := range t.winCh {
				t.mu.Lock()
				t.window = win
				cb := t.resize
				t.mu.Unlock()
				if cb != nil {
					cb()
				}
			}
		}()
	})
}
