package runner

import (
	"strings"
	"testing"

	"github.com/retroenv/retrogolib/assert"

	"github.com/halfhorst/yac8/internal/chip8"
)

func TestWriteScan(t *testing.T) {
	memory := chip8.NewMemory()
	assert.NoError(t, memory.LoadProgram([]byte{
		0x00, 0xE0, // CLS
		0xA2, 0xF0, // LD I, $2F0
		0x0F, 0xFF, // not a valid instruction
	}))

	var buf strings.Builder
	assert.NoError(t, writeScan(&buf, memory))

	expected := "0x0200  00E0  CLS\n" +
		"0x0202  A2F0  LD I, $2F0\n" +
		"0x0204  0FFF  .word $0FFF\n"
	assert.Equal(t, expected, buf.String())
}
