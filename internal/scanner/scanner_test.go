package scanner

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"

	"github.com/halfhorst/yac8/internal/chip8"
)

func loadMemory(t *testing.T, words ...uint16) *chip8.Memory {
	t.Helper()

	program := make([]byte, 0, len(words)*2)
	for _, word := range words {
		program = append(program, byte(word>>8), byte(word))
	}
	memory := chip8.NewMemory()
	assert.NoError(t, memory.LoadProgram(program))
	return memory
}

func TestScannerWalk(t *testing.T) {
	memory := loadMemory(t, 0x00E0, 0xA2F0, 0x6005, 0xD125)
	s := New(memory, chip8.ProgramStart, 0)

	expected := []struct {
		addr uint16
		text string
	}{
		{0x200, "CLS"},
		{0x202, "LD I, $2F0"},
		{0x204, "LD V0, $05"},
		{0x206, "DRW V1, V2, $5"},
	}

	for _, e := range expected {
		assert.True(t, s.Scan())
		entry := s.Entry()
		assert.NoError(t, entry.Err)
		assert.Equal(t, e.addr, entry.Addr)
		assert.Equal(t, e.text, entry.Text)
	}
	assert.False(t, s.Scan())
}

// undecodable words are rendered as raw data and do not halt the walk
func TestScannerUnknownWords(t *testing.T) {
	memory := loadMemory(t, 0x0FFF, 0x00E0)
	s := New(memory, chip8.ProgramStart, 0)

	assert.True(t, s.Scan())
	entry := s.Entry()
	assert.Error(t, entry.Err)
	assert.Equal(t, ".word $0FFF", entry.Text)

	assert.True(t, s.Scan())
	entry = s.Entry()
	assert.NoError(t, entry.Err)
	assert.Equal(t, "CLS", entry.Text)

	assert.False(t, s.Scan())
}

// a fresh scanner restarts the walk from the beginning
func TestScannerRestartable(t *testing.T) {
	memory := loadMemory(t, 0x00E0, 0x00EE)

	for i := 0; i < 2; i++ {
		s := New(memory, chip8.ProgramStart, 0)
		assert.True(t, s.Scan())
		assert.Equal(t, uint16(0x200), s.Entry().Addr)
		assert.True(t, s.Scan())
		assert.Equal(t, "RET", s.Entry().Text)
		assert.False(t, s.Scan())
	}
}

// scanning decodes the same opcodes at the same addresses the executor
// would fetch
func TestScannerRoundTrip(t *testing.T) {
	words := []uint16{0x6005, 0x7101, 0xA200, 0x00E0}
	memory := loadMemory(t, words...)

	s := New(memory, chip8.ProgramStart, 0)
	for i, word := range words {
		assert.True(t, s.Scan())
		entry := s.Entry()
		assert.Equal(t, uint16(chip8.ProgramStart+2*i), entry.Addr)
		assert.Equal(t, word, entry.Word)

		direct, err := chip8.Decode(word)
		assert.NoError(t, err)
		assert.Equal(t, direct, entry.Op)
	}
}

func TestScannerBeyondMemory(t *testing.T) {
	memory := chip8.NewMemory()
	s := New(memory, chip8.MemorySize-2, chip8.MemorySize)

	assert.True(t, s.Scan())
	assert.False(t, s.Scan())
}

// a start address at the top of the 16-bit space ends the walk cleanly
// instead of wrapping around
func TestScannerStartBeyondMemory(t *testing.T) {
	memory := chip8.NewMemory()
	s := New(memory, 0xFFFF, chip8.MemorySize)

	assert.False(t, s.Scan())
}
