// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/halfhorst/yac8/internal/options"
)

// ParseFlags parses command line flags and returns the program options.
// The ROM file is passed as the last positional argument.
func ParseFlags() (options.Program, error) {
	return parseFlags(os.Args[0], os.Args[1:])
}

func parseFlags(name string, args []string) (options.Program, error) {
	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	var opts options.Program
	readOptionFlags(flags, &opts)

	err := flags.Parse(args)
	rest := flags.Args()
	if err != nil || len(rest) == 0 {
		return opts, &UsageError{flags: flags}
	}

	if err := validateArgs(rest); err != nil {
		return opts, err
	}
	if opts.ClockHz <= 0 {
		return opts, &UsageError{
			flags: flags,
			msg:   fmt.Sprintf("clock rate must be positive, got %g", opts.ClockHz),
		}
	}

	opts.Input = rest[0]
	return opts, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

func (e *UsageError) ShowUsage() {
	fmt.Printf("usage: yac8 [options] <CHIP-8 ROM file>\n\n")
	e.flags.PrintDefaults()
	fmt.Println()
}

// validateArgs checks if arguments are in correct order
func validateArgs(args []string) error {
	for i, arg := range args {
		if i > 0 && arg[0] == '-' {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after ROM file, please pass the ROM file as last argument", arg),
			}
		}
	}
	return nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.Float64Var(&opts.ClockHz, "c", options.DefaultClockHz, "CPU clock rate in Hz")
	flags.StringVar(&opts.Output, "o", "", "name of the scan output file, printed on console if no name given")
	flags.BoolVar(&opts.Scan, "s", false, "scan the program only, printing addresses and instructions without running it")
	flags.BoolVar(&opts.Verbose, "v", false, "trace every executed instruction")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
	flags.BoolVar(&opts.ShiftQuirk, "legacy-shift", false, "use the legacy COSMAC shift behavior (8XY6/8XYE shift VY into VX)")
}
