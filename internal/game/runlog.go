package game

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// Run outcomes recorded in the log.
const (
	OutcomeWon       = "won"
	OutcomeLost      = "lost"
	OutcomeAbandoned = "abandoned"
)

// RunLog records one game, from placement to the end or until it is
// abandoned.
type RunLog struct {
	ID         uuid.UUID `json:"id"`
	Player     string    `json:"player,omitempty"`
	Started    time.Time `json:"started"`
	Ended      time.Time `json:"ended"`
	Rows       int       `json:"rows"`
	Cols       int       `json:"cols"`
	Wrapping   bool      `json:"wrapping"`
	Seed       int64     `json:"seed"`
	Walls      int       `json:"walls"`
	PitPercent int       `json:"pit_percent"`
	BatPercent int       `json:"bat_percent"`
	Arrows     int       `json:"arrows"`
	Players    int       `json:"players"`
	Outcome    string    `json:"outcome"`
	Winner     int       `json:"winner"` // 1-based, 0 when nobody won
	Turns      int       `json:"turns"`
	ArrowsShot int       `json:"arrows_shot"`
	Cause      string    `json:"cause,omitempty"`
}

// saveRunLog appends the run as a single JSON line to runs.jsonl.
// Errors are logged so a disk problem never ends the game.
func saveRunLog(rl RunLog, logger log.FieldLogger) {
	l := logger.WithField("run", rl.ID)
	dir, err := runLogDir()
	if err != nil {
		l.WithError(err).Warn("run log: cannot determine data dir")
		return
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		l.WithError(err).Warn("run log: cannot create data dir")
		return
	}
	f, err := os.OpenFile(filepath.Join(dir, "runs.jsonl"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		l.WithError(err).Warn("run log: cannot open file")
		return
	}
	defer f.Close()

	data, err := json.Marshal(rl)
	if err != nil {
		l.WithError(err).Warn("run log: cannot marshal JSON")
		return
	}
	if _, err := f.Write(append(data, '\n')); err != nil {
		l.WithError(err).Warn("run log: cannot write entry")
		return
	}
	l.WithField("outcome", rl.Outcome).Debug("run log saved")
}

// runLogDir returns the directory where run logs are stored.
// Follows the XDG base directory layout: $XDG_DATA_HOME/hunt-the-wumpus,
// defaulting to ~/.local/share/hunt-the-wumpus.
func runLogDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "hunt-the-wumpus"), nil
}
