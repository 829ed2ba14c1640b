// Package config handles application configuration and setup
package config

import (
	"github.com/retroenv/retrogolib/log"
)

// CreateLogger creates a logger with appropriate settings. Verbose mode
// lowers the level so instruction traces become visible, quiet mode only
// reports errors.
func CreateLogger(verbose, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if verbose {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}
