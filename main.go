package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	log "github.com/sirupsen/logrus"

	"hunt-the-wumpus/internal/config"
	"hunt-the-wumpus/internal/console"
	"hunt-the-wumpus/internal/game"
	"hunt-the-wumpus/internal/maze"
	"hunt-the-wumpus/internal/session"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	settings, err := config.FromEnv()
	if err != nil {
		return err
	}

	flags := flag.NewFlagSet("hunt-the-wumpus", flag.ContinueOnError)
	flags.SetOutput(stderr)
	text := flags.Bool("text", false, "play in plain text on stdin and stdout")
	ascii := flags.Bool("ascii", false, "draw with ASCII instead of emoji")
	logFile := flags.String("log", "", "append debug logs to this file")
	settings.RegisterFlags(flags)
	if err := flags.Parse(args); err != nil {
		return err
	}
	if err := settings.Validate(); err != nil {
		return err
	}

	logger := log.New()
	logger.SetOutput(io.Discard)
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logger.SetOutput(f)
		logger.SetLevel(log.DebugLevel)
	} else if *text {
		// The board owns the terminal otherwise.
		logger.SetOutput(stderr)
		logger.SetLevel(log.WarnLevel)
	}

	if *text {
		return playText(settings, logger, stdin, stdout)
	}

	g, err := game.New(game.Options{Settings: settings, ASCII: *ascii, Logger: logger})
	if err != nil {
		return err
	}
	g.Run()
	return nil
}

func playText(settings config.Settings, logger log.FieldLogger, stdin io.Reader, stdout io.Writer) error {
	m, err := maze.New(settings.MazeConfig())
	if err != nil {
		return err
	}
	logger.WithField("seed", m.Seed()).Debug("maze built")
	s, err := session.New(m, session.Options{
		Arrows:     settings.Arrows,
		TwoPlayers: settings.TwoPlayers(),
		Logger:     logger,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	err = console.Run(ctx, stdin, stdout, s)
	if errors.Is(err, console.ErrInputClosed) || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
