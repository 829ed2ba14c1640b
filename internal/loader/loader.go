// Package loader handles ROM file loading operations.
package loader

import (
	"fmt"
	"os"

	"github.com/halfhorst/yac8/internal/chip8"
)

// Load reads a CHIP-8 ROM file: raw big-endian instruction words with no
// header. It rejects empty files and programs that cannot fit into the
// user program space.
func Load(path string) ([]byte, error) {
	rom, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading ROM file %s: %w", path, err)
	}
	if len(rom) == 0 {
		return nil, fmt.Errorf("ROM file %s is empty", path)
	}
	if len(rom) > chip8.MemorySize-chip8.ProgramStart {
		return nil, fmt.Errorf("ROM file %s: %w", path, chip8.ErrProgramTooLarge)
	}
	return rom, nil
}
