package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSkipsTokenCheck(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want bool
	}{
		{"bare invocation prints help", []string{"tally"}, true},
		{"config subcommand", []string{"tally", "config"}, true},
		{"help subcommand", []string{"tally", "help"}, true},
		{"top-level help flag", []string{"tally", "--help"}, true},
		{"short help flag", []string{"tally", "-h"}, true},
		{"subcommand help flag", []string{"tally", "timer", "start", "--help"}, true},
		{"regular command", []string{"tally", "pull"}, false},
		{"regular command with flags", []string{"tally", "entry", "list", "--from", "2026-08-01"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, skipsTokenCheck(tt.args))
		})
	}
}
