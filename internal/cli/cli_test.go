package cli

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"

	"github.com/halfhorst/yac8/internal/options"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected options.Program
	}{
		{
			"defaults",
			[]string{"game.ch8"},
			options.Program{Input: "game.ch8", ClockHz: options.DefaultClockHz},
		},
		{
			"scan mode with output file",
			[]string{"-s", "-o", "game.asm", "game.ch8"},
			options.Program{Input: "game.ch8", Output: "game.asm", ClockHz: options.DefaultClockHz, Scan: true},
		},
		{
			"custom clock and verbose",
			[]string{"-c", "500", "-v", "game.ch8"},
			options.Program{Input: "game.ch8", ClockHz: 500, Verbose: true},
		},
		{
			"legacy shift quirk",
			[]string{"-legacy-shift", "game.ch8"},
			options.Program{Input: "game.ch8", ClockHz: options.DefaultClockHz, ShiftQuirk: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := parseFlags("yac8", tt.args)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, opts)
		})
	}
}

func TestParseFlagsErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no arguments", nil},
		{"flag after ROM file", []string{"game.ch8", "-v"}},
		{"zero clock rate", []string{"-c", "0", "game.ch8"}},
		{"negative clock rate", []string{"-c", "-100", "game.ch8"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseFlags("yac8", tt.args)
			var usageErr *UsageError
			assert.True(t, errors.As(err, &usageErr))
		})
	}
}
