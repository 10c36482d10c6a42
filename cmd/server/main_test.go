package main

import (
	"io"
	"testing"
	"time"

	"hunt-the-wumpus/internal/config"
)

func TestParseArgsDefaults(t *testing.T) {
	o, err := parseArgs(nil, config.Default(), io.Discard)
	if err != nil {
		t.Fatalf("parseArgs: %v", err)
	}
	if o.port != 2222 {
		t.Errorf("port = %d, want 2222", o.port)
	}
	if o.keyFile != "server_host_key" {
		t.Errorf("keyFile = %q", o.keyFile)
	}
	if o.idle != 15*time.Minute {
		t.Errorf("idle = %v", o.idle)
	}
	if o.settings != config.Default() {
		t.Errorf("settings = %+v, want defaults", o.settings)
	}
}

func TestParseArgsOverrides(t *testing.T) {
	env := config.Default()
	env.Rows = 4

	o, err := parseArgs([]string{"-port", "2022", "-players", "2", "-cols", "9", "-ascii"}, env, io.Discard)
	if err != nil {
		t.Fatalf("parseArgs: %v", err)
	}
	if o.port != 2022 || !o.ascii {
		t.Errorf("port = %d, ascii = %v", o.port, o.ascii)
	}
	if o.settings.Players != 2 || o.settings.Cols != 9 {
		t.Errorf("settings = %+v", o.settings)
	}
	if o.settings.Rows != 4 {
		t.Errorf("rows = %d, want the environment value 4", o.settings.Rows)
	}
}

func TestParseArgsErrors(t *testing.T) {
	cases := []struct {
		name string
		args []string
	}{
		{"bad port", []string{"-port", "0"}},
		{"port too large", []string{"-port", "70000"}},
		{"three players", []string{"-players", "3"}},
		{"negative arrows", []string{"-arrows", "-1"}},
		{"unknown flag", []string{"-nope"}},
		{"not a number", []string{"-rows", "many"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := parseArgs(tc.args, config.Default(), io.Discard); err == nil {
				t.Errorf("parseArgs(%q) succeeded, want error", tc.args)
			}
		})
	}
}
