// Package ssh serves the terminal game over SSH. Every connection gets its
// own game on its own screen; two players share a keyboard in hotseat mode.
package ssh

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"errors"
	"fmt"
	"io/fs"
	"net"
	"os"
	"strings"
	"sync"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	xssh "golang.org/x/crypto/ssh"

	"hunt-the-wumpus/internal/config"
	"hunt-the-wumpus/internal/game"
)

// maxNameBytes bounds the player name recorded in run logs.
const maxNameBytes = 16

// defaultTerm is used when the client sends no terminal type or one that is
// not allowed.
const defaultTerm = "xterm-256color"

// allowedTerms lists the terminal types a client may ask for. TERM is put in
// the process environment for terminfo lookup, so it is never taken verbatim.
var allowedTerms = map[string]bool{
	"xterm":                 true,
	"xterm-256color":        true,
	"xterm-color":           true,
	"screen":                true,
	"screen-256color":       true,
	"tmux":                  true,
	"tmux-256color":         true,
	"rxvt-unicode":          true,
	"rxvt-unicode-256color": true,
	"linux":                 true,
	"vt100":                 true,
}

// asciiTerms cannot draw emoji.
var asciiTerms = map[string]bool{
	"linux": true,
	"vt100": true,
}

// Config configures a Server.
type Config struct {
	Addr        string
	HostKeyPath string
	Settings    config.Settings
	ASCII       bool
	IdleTimeout time.Duration
	Logger      log.FieldLogger
}

// Server hosts one game per SSH session.
type Server struct {
	cfg    Config
	log    log.FieldLogger
	srv    *gossh.Server
	termMu sync.Mutex // guards TERM in the process environment
}

// NewServer validates the game settings and loads or creates the host key.
func NewServer(cfg Config) (*Server, error) {
	if err := cfg.Settings.Validate(); err != nil {
		return nil, fmt.Errorf("game settings: %w", err)
	}
	l := cfg.Logger
	if l == nil {
		l = log.StandardLogger()
	}
	signer, err := loadOrCreateHostKey(cfg.HostKeyPath, l)
	if err != nil {
		return nil, err
	}

	s := &Server{cfg: cfg, log: l}
	s.srv = &gossh.Server{
		Addr:    cfg.Addr,
		Handler: s.handle,
		// Accept PTY requests from any client.
		PtyCallback: func(_ gossh.Context, _ gossh.Pty) bool { return true },
		// No auth handlers are set, so any client may connect.
		HostSigners: []gossh.Signer{signer},
		IdleTimeout: cfg.IdleTimeout,
	}
	return s, nil
}

// ListenAndServe listens on the configured address.
func (s *Server) ListenAndServe() error {
	s.log.WithField("addr", s.cfg.Addr).Info("ssh server listening")
	return s.srv.ListenAndServe()
}

// Serve accepts connections on l.
func (s *Server) Serve(l net.Listener) error {
	s.log.WithField("addr", l.Addr().String()).Info("ssh server listening")
	return s.srv.Serve(l)
}

// Shutdown stops accepting connections and waits for open ones to finish
// or for ctx to expire.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

// handle runs one game for the duration of the connection.
func (s *Server) handle(sess gossh.Session) {
	name := sanitizeName(sess.User())
	logger := s.log.WithFields(log.Fields{
		"session": uuid.New(),
		"user":    name,
		"remote":  sess.RemoteAddr().String(),
	})

	pty, winCh, hasPTY := sess.Pty()
	if !hasPTY {
		fmt.Fprintln(sess, "Hunt the Wumpus needs a terminal. Connect with: ssh -t <host>")
		logger.Info("rejected session without a pty")
		return
	}

	term := pty.Term
	if !allowedTerms[term] {
		logger.WithField("term", term).Debug("unsupported terminal, using default")
		term = defaultTerm
	}

	screen, err := s.newScreen(newSessionTTY(sess, pty, winCh), term)
	if err != nil {
		fmt.Fprintf(sess, "Terminal setup failed: %v\n", err)
		logger.WithError(err).Warn("terminal setup failed")
		return
	}

	g, err := game.NewWithScreen(screen, game.Options{
		Settings: s.cfg.Settings,
		ASCII:    s.cfg.ASCII || asciiTerms[term],
		Player:   name,
		Logger:   logger,
	})
	if err != nil {
		screen.Fini()
		fmt.Fprintf(sess, "Cannot start game: %v\n", err)
		logger.WithError(err).Error("cannot start game")
		return
	}

	logger.WithField("term", term).Info("session started")
	start := time.Now()
	g.Run()
	logger.WithField("duration", time.Since(start).Round(time.Second)).Info("session ended")
}

// newScreen creates a tcell screen backed by the session. TERM must be set
// in the process environment while terminfo is looked up.
func (s *Server) newScreen(tty tcell.Tty, term string) (tcell.Screen, error) {
	s.termMu.Lock()
	prev, had := os.LookupEnv("TERM")
	_ = os.Setenv("TERM", term)
	screen, err := tcell.NewTerminfoScreenFromTty(tty)
	if had {
		_ = os.Setenv("TERM", prev)
	} else {
		_ = os.Unsetenv("TERM")
	}
	s.termMu.Unlock()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse()
	return screen, nil
}

// sanitizeName strips control characters from an SSH user name and cuts it
// to at most maxNameBytes bytes without splitting a rune.
func sanitizeName(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsControl(r) || r == utf8.RuneError {
			continue
		}
		if b.Len()+utf8.RuneLen(r) > maxNameBytes {
			break
		}
		b.WriteRune(r)
	}
	return b.String()
}

// loadOrCreateHostKey loads a PEM private key from path, or generates and
// persists a new ed25519 key if the file does not exist.
func loadOrCreateHostKey(path string, logger log.FieldLogger) (gossh.Signer, error) {
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		signer, err := xssh.ParsePrivateKey(data)
		if err != nil {
			return nil, fmt.Errorf("parse host key %s: %w", path, err)
		}
		logger.WithField("path", path).Info("loaded host key")
		return signer, nil
	case !errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("read host key: %w", err)
	}

	logger.WithField("path", path).Info("generating new ed25519 host key")
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate host key: %w", err)
	}
	signer, err := xssh.NewSignerFromKey(key)
	if err != nil {
		return nil, fmt.Errorf("create signer: %w", err)
	}
	pemBlock, err := xssh.MarshalPrivateKey(key, "hunt-the-wumpus server")
	if err != nil {
		return nil, fmt.Errorf("marshal host key: %w", err)
	}
	if err := os.WriteFile(path, pem.EncodeToMemory(pemBlock), 0o600); err != nil {
		// The key still works for this run.
		logger.WithError(err).Warn("cannot save host key")
	}
	return signer, nil
}
