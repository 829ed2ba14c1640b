package loader

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/retroenv/retrogolib/assert"

	"github.com/halfhorst/yac8/internal/chip8"
)

func writeROM(t *testing.T, data []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.ch8")
	assert.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestLoad(t *testing.T) {
	rom := []byte{0x00, 0xE0, 0x60, 0x05}
	path := writeROM(t, rom)

	data, err := Load(path)
	assert.NoError(t, err)
	assert.True(t, bytes.Equal(rom, data))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.ch8"))
	assert.Error(t, err)
}

func TestLoadEmptyFile(t *testing.T) {
	path := writeROM(t, nil)
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadTooLarge(t *testing.T) {
	path := writeROM(t, make([]byte, chip8.MemorySize-chip8.ProgramStart+1))
	_, err := Load(path)
	assert.True(t, errors.Is(err, chip8.ErrProgramTooLarge))
}
