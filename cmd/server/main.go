// hunt-the-wumpus-server hosts Hunt the Wumpus over SSH. Every connection
// plays its own game. Build:
//
//	go build -o hunt-the-wumpus-server ./cmd/server
//
// Usage:
//
//	./hunt-the-wumpus-server [--port 2222] [--key server_host_key] [--players 2]
//
// Connect with:
//
//	ssh -t -p 2222 localhost
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	gossh "github.com/gliderlabs/ssh"
	log "github.com/sirupsen/logrus"

	"hunt-the-wumpus/internal/config"
	internalssh "hunt-the-wumpus/internal/ssh"
)

// options are the parsed command-line arguments.
type options struct {
	port     int
	keyFile  string
	idle     time.Duration
	ascii    bool
	verbose  bool
	settings config.Settings
}

// parseArgs reads flags on top of the environment-derived settings.
func parseArgs(args []string, settings config.Settings, stderr io.Writer) (options, error) {
	o := options{settings: settings}
	flags := flag.NewFlagSet("hunt-the-wumpus-server", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.IntVar(&o.port, "port", 2222, "SSH server port")
	flags.StringVar(&o.keyFile, "key", "server_host_key", "path to the PEM-encoded host key (generated if absent)")
	flags.DurationVar(&o.idle, "idle", 15*time.Minute, "disconnect idle sessions after this long (0 to disable)")
	flags.BoolVar(&o.ascii, "ascii", false, "draw with ASCII instead of emoji")
	flags.BoolVar(&o.verbose, "v", false, "debug logging")
	o.settings.RegisterFlags(flags)
	if err := flags.Parse(args); err != nil {
		return options{}, err
	}
	if o.port <= 0 || o.port > 65535 {
		return options{}, fmt.Errorf("invalid port %d", o.port)
	}
	if err := o.settings.Validate(); err != nil {
		return options{}, err
	}
	return o, nil
}

func main() {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	settings, err := config.FromEnv()
	if err != nil {
		log.WithError(err).Fatal("load configuration")
	}
	opts, err := parseArgs(os.Args[1:], settings, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.WithError(err).Fatal("bad arguments")
	}
	if opts.verbose {
		log.SetLevel(log.DebugLevel)
	}

	srv, err := internalssh.NewServer(internalssh.Config{
		Addr:        fmt.Sprintf(":%d", opts.port),
		HostKeyPath: opts.keyFile,
		Settings:    opts.settings,
		ASCII:       opts.ascii,
		IdleTimeout: opts.idle,
		Logger:      log.StandardLogger(),
	})
	if err != nil {
		log.WithError(err).Fatal("create server")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.WithError(err).Warn("shutdown")
		}
	}()

	log.Infof("connect with:  ssh -t -p %d -o StrictHostKeyChecking=no localhost", opts.port)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, gossh.ErrServerClosed) {
		log.WithError(err).Fatal("serve")
	}
}
