// Package main implements the main entry point for yac8, a CHIP-8 virtual
// machine and disassembler.
package main

import (
	"context"
	"errors"
	"os"

	"github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/log"

	"github.com/halfhorst/yac8/internal/cli"
	"github.com/halfhorst/yac8/internal/config"
	"github.com/halfhorst/yac8/internal/runner"
)

func main() {
	ctx := app.Context()

	opts, err := cli.ParseFlags()
	if err != nil {
		logger := config.CreateLogger(opts.Verbose, opts.Quiet)
		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) {
			if msg := usageErr.Error(); msg != "" {
				logger.Error(msg)
			}
			usageErr.ShowUsage()
		} else {
			logger.Error(err.Error())
		}
		os.Exit(1)
	}

	logger := config.CreateLogger(opts.Verbose, opts.Quiet)

	if err := runner.Run(ctx, logger, opts); err != nil {
		if errors.Is(err, context.Canceled) {
			logger.Info("Operation cancelled")
			return
		}
		logger.Error("Run failed", log.Err(err))
		os.Exit(1)
	}
}
