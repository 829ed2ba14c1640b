// Package runner wires the loader, machine, scanner and frontend into the
// two program modes: running a ROM in a window or statically disassembling
// it.
package runner

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/retroenv/retrogolib/log"

	"github.com/halfhorst/yac8/internal/chip8"
	"github.com/halfhorst/yac8/internal/frontend"
	"github.com/halfhorst/yac8/internal/loader"
	"github.com/halfhorst/yac8/internal/options"
	"github.com/halfhorst/yac8/internal/scanner"
)

// Run executes the selected program mode for the given options.
func Run(ctx context.Context, logger *log.Logger, opts options.Program) error {
	rom, err := loader.Load(opts.Input)
	if err != nil {
		return err
	}

	if opts.Scan {
		return scan(opts, rom)
	}
	return run(ctx, logger, opts, rom)
}

// run boots a machine with the ROM and hands it to the graphical frontend.
func run(ctx context.Context, logger *log.Logger, opts options.Program, rom []byte) error {
	logger.Info("booting ROM",
		log.String("file", opts.Input),
		log.String("clock", fmt.Sprintf("%gHz", opts.ClockHz)),
	)

	machine := chip8.New(chip8.Config{
		Logger: logger,
		Quirks: chip8.Quirks{ShiftUsesVY: opts.ShiftQuirk},
	})
	if err := machine.LoadProgram(rom); err != nil {
		return fmt.Errorf("loading program: %w", err)
	}

	front := frontend.New(ctx, machine, opts.ClockHz)
	title := fmt.Sprintf("yac8 - %s", filepath.Base(opts.Input))
	if err := front.Run(title); err != nil {
		return err
	}
	return nil
}

// scan disassembles the ROM linearly and writes one line per instruction
// word to the output file, or stdout if none is given.
func scan(opts options.Program, rom []byte) error {
	memory := chip8.NewMemory()
	if err := memory.LoadProgram(rom); err != nil {
		return fmt.Errorf("loading program: %w", err)
	}

	out := io.Writer(os.Stdout)
	if opts.Output != "" {
		file, err := os.Create(opts.Output)
		if err != nil {
			return fmt.Errorf("creating output file %s: %w", opts.Output, err)
		}
		defer func() { _ = file.Close() }()
		out = file
	}

	return writeScan(out, memory)
}

func writeScan(out io.Writer, memory *chip8.Memory) error {
	scan := scanner.New(memory, chip8.ProgramStart, memory.ProgramEnd())
	for scan.Scan() {
		entry := scan.Entry()
		if _, err := fmt.Fprintf(out, "0x%04X  %04X  %s\n",
			entry.Addr, entry.Word, entry.Text); err != nil {
			return fmt.Errorf("writing scan line: %w", err)
		}
	}
	return nil
}
