// Package config loads game settings from a .env file, the environment and
// command-line flags, in increasing order of precedence.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"hunt-the-wumpus/internal/maze"
)

// Environment variable names.
const (
	EnvRows     = "WUMPUS_ROWS"
	EnvCols     = "WUMPUS_COLS"
	EnvWrapping = "WUMPUS_WRAPPING"
	EnvSeed     = "WUMPUS_SEED"
	EnvWalls    = "WUMPUS_WALLS"
	EnvPits     = "WUMPUS_PITS"
	EnvBats     = "WUMPUS_BATS"
	EnvArrows   = "WUMPUS_ARROWS"
	EnvPlayers  = "WUMPUS_PLAYERS"
)

// Settings holds everything needed to start a game.
type Settings struct {
	Rows       int   // grid rows
	Cols       int   // grid columns
	Wrapping   bool  // edges join up
	Seed       int64 // negative for a random maze
	Walls      int   // redundant walls left standing, negative for a perfect maze
	PitPercent int   // chance a cave holds a pit
	BatPercent int   // chance a cave holds bats
	Arrows     int   // arrows per player
	Players    int   // 1 or 2
}

// Default returns the settings used when nothing else is configured.
func Default() Settings {
	return Settings{
		Rows:       6,
		Cols:       8,
		Seed:       -1,
		Walls:      10,
		PitPercent: 10,
		BatPercent: 15,
		Arrows:     3,
		Players:    1,
	}
}

// FromEnv starts from Default and applies the environment. The given .env
// files are loaded first (".env" when none are named); a missing file is not
// an error.
func FromEnv(files ...string) (Settings, error) {
	if err := godotenv.Load(files...); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return Settings{}, fmt.Errorf("load env file: %w", err)
		}
		log.WithError(err).Debug("no .env file loaded")
	}

	s := Default()
	for _, f := range []func() error{
		func() error { return intEnv(EnvRows, &s.Rows) },
		func() error { return intEnv(EnvCols, &s.Cols) },
		func() error { return boolEnv(EnvWrapping, &s.Wrapping) },
		func() error { return int64Env(EnvSeed, &s.Seed) },
		func() error { return intEnv(EnvWalls, &s.Walls) },
		func() error { return intEnv(EnvPits, &s.PitPercent) },
		func() error { return intEnv(EnvBats, &s.BatPercent) },
		func() error { return intEnv(EnvArrows, &s.Arrows) },
		func() error { return intEnv(EnvPlayers, &s.Players) },
	} {
		if err := f(); err != nil {
			return Settings{}, err
		}
	}
	return s, nil
}

// RegisterFlags binds every setting to a flag on flags, using the current values
// as defaults.
func (s *Settings) RegisterFlags(flags *flag.FlagSet) {
	flags.IntVar(&s.Rows, "rows", s.Rows, "number of rows in the maze")
	flags.IntVar(&s.Cols, "cols", s.Cols, "number of columns in the maze")
	flags.BoolVar(&s.Wrapping, "wrapping", s.Wrapping, "join opposite edges of the maze")
	flags.Int64Var(&s.Seed, "seed", s.Seed, "maze seed (negative for a random maze)")
	flags.IntVar(&s.Walls, "walls", s.Walls, "redundant walls left standing (negative for a perfect maze)")
	flags.IntVar(&s.PitPercent, "pits", s.PitPercent, "percentage of caves with a pit")
	flags.IntVar(&s.BatPercent, "bats", s.BatPercent, "percentage of caves with bats")
	flags.IntVar(&s.Arrows, "arrows", s.Arrows, "arrows per player")
	flags.IntVar(&s.Players, "players", s.Players, "number of players (1 or 2)")
}

// Validate checks the settings the maze itself does not.
func (s Settings) Validate() error {
	if s.Arrows < 0 {
		return errors.New("number of arrows cannot be negative")
	}
	if s.Players < 1 || s.Players > maze.MaxPlayers {
		return fmt.Errorf("number of players must be 1 or %d", maze.MaxPlayers)
	}
	return nil
}

// TwoPlayers reports whether the settings describe a two-player game.
func (s Settings) TwoPlayers() bool { return s.Players == 2 }

// Perfect reports whether the maze should have exactly one path between any
// two locations.
func (s Settings) Perfect() bool { return s.Walls < 0 }

// MazeConfig converts the settings to a maze configuration.
func (s Settings) MazeConfig() maze.Config {
	cfg := maze.Config{
		Rows:       s.Rows,
		Cols:       s.Cols,
		Wrapping:   s.Wrapping,
		Seed:       s.Seed,
		Perfect:    s.Perfect(),
		PitPercent: s.PitPercent,
		BatPercent: s.BatPercent,
	}
	if !cfg.Perfect {
		cfg.RemainingWalls = s.Walls
	}
	return cfg
}

func intEnv(key string, dst *int) error {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("environment variable %s must be an integer: %w", key, err)
	}
	*dst = n
	return nil
}

func int64Env(key string, dst *int64) error {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return fmt.Errorf("environment variable %s must be an integer: %w", key, err)
	}
	*dst = n
	return nil
}

func boolEnv(key string, dst *bool) error {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fmt.Errorf("environment variable %s must be a boolean: %w", key, err)
	}
	*dst = b
	return nil
}
