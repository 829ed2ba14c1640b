// Package scanner implements static linear disassembly of CHIP-8 program
// memory. It shares the machine's instruction decoder but never executes
// anything: the walk steps over memory two bytes at a time without
// following jumps or tracking reachability, so it is safe to run against a
// partially invalid memory image.
package scanner

import (
	"fmt"

	"github.com/halfhorst/yac8/internal/chip8"
)

// Entry is one disassembled position: the address, the raw instruction
// word, the decoded opcode or the decode error, and the rendered text line.
type Entry struct {
	Addr uint16
	Word uint16
	Op   chip8.Opcode
	Err  error // decode error, nil for valid instructions
	Text string
}

// Scanner walks a memory image from a start to an end address, yielding one
// entry per 2-byte step. Decode failures are cosmetic: the entry carries
// the error and a raw data line, and the walk continues. A fresh Scanner
// restarts the walk.
type Scanner struct {
	memory *chip8.Memory
	pc     uint16
	end    uint16

	entry Entry
}

// New returns a scanner over [start, end). An end of 0 scans to the end of
// the loaded program.
func New(memory *chip8.Memory, start, end uint16) *Scanner {
	if end == 0 {
		end = memory.ProgramEnd()
	}
	if end > chip8.MemorySize {
		end = chip8.MemorySize
	}
	return &Scanner{
		memory: memory,
		pc:     start,
		end:    end,
	}
}

// Scan advances to the next entry. It returns false once the walk reaches
// the end address or the edge of memory.
func (s *Scanner) Scan() bool {
	if s.pc+1 >= s.end {
		return false
	}

	word, err := s.memory.ReadWord(s.pc)
	if err != nil {
		return false
	}

	s.entry = Entry{
		Addr: s.pc,
		Word: word,
	}
	op, err := chip8.Decode(word)
	if err != nil {
		// raw data, rendered the way assemblers emit non-code bytes
		s.entry.Err = err
		s.entry.Text = fmt.Sprintf(".word $%04X", word)
	} else {
		s.entry.Op = op
		s.entry.Text = op.String()
	}

	s.pc += 2
	return true
}

// Entry returns the entry produced by the last successful Scan call.
func (s *Scanner) Entry() Entry {
	return s.entry
}
