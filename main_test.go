package main

import (
	"bytes"
	"errors"
	"flag"
	"io"
	"strings"
	"testing"

	"hunt-the-wumpus/internal/maze"
)

func TestRunTextQuits(t *testing.T) {
	var out bytes.Buffer
	err := run([]string{"-text", "-seed", "7", "-pits", "0", "-bats", "0"}, strings.NewReader("q\n"), &out, io.Discard)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	// The wumpus may sit in the start cave, ending the game before any prompt.
	if strings.Contains(out.String(), "Shoot or Move") && !strings.HasSuffix(out.String(), "Goodbye!") {
		t.Errorf("unexpected output: %q", out.String())
	}
}

func TestRunTextInputEnds(t *testing.T) {
	var out bytes.Buffer
	if err := run([]string{"-text", "-seed", "3"}, strings.NewReader(""), &out, io.Discard); err != nil {
		t.Fatalf("run: %v", err)
	}
}

func TestRunErrors(t *testing.T) {
	cases := []struct {
		name string
		args []string
		is   error
	}{
		{"three players", []string{"-text", "-players", "3"}, nil},
		{"no rows", []string{"-text", "-rows", "0"}, maze.ErrConfiguration},
		{"bad pits", []string{"-text", "-pits", "101"}, maze.ErrConfiguration},
		{"help", []string{"-h"}, flag.ErrHelp},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := run(tc.args, strings.NewReader(""), io.Discard, io.Discard)
			if err == nil {
				t.Fatalf("run(%q) succeeded, want error", tc.args)
			}
			if tc.is != nil && !errors.Is(err, tc.is) {
				t.Errorf("run(%q) = %v, want %v", tc.args, err, tc.is)
			}
		})
	}
}
