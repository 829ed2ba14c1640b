package chip8

import "fmt"

// CHIP-8 memory layout constants.
//
// CHIP-8 memory map (4KB total):
//
//	0x000-0x1FF: interpreter and font data (512 bytes)
//	0x200-0xFFF: user program space (3584 bytes)
const (
	// MemorySize is the size of the CHIP-8 address space in bytes.
	MemorySize = 4096

	// ProgramStart is the memory address where CHIP-8 programs begin execution.
	ProgramStart = 0x200

	// MaxAddress is the highest valid address in CHIP-8 memory space.
	MaxAddress = 0xFFF

	// fontBase is the address the built-in font sprites are stored at.
	fontBase = 0x000

	// FontGlyphSize is the size of a single font sprite in bytes.
	FontGlyphSize = 5
)

// fontSprites are the built-in 8x5 pixel sprites for the hex digits 0-F,
// written into the interpreter area once at memory creation.
var fontSprites = [80]byte{
	0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
	0xF0, 0x10, 0xF0, 0x10, 0xF0, // 3
	0x90, 0x90, 0xF0, 0x10, 0x10, // 4
	0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
	0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
	0xF0, 0x10, 0x20, 0x40, 0x40, // 7
	0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
	0xF0, 0x90, 0xF0, 0x10, 0xF0, // 9
	0xF0, 0x90, 0xF0, 0x90, 0x90, // A
	0xE0, 0x90, 0xE0, 0x90, 0xE0, // B
	0xF0, 0x80, 0x80, 0x80, 0xF0, // C
	0xE0, 0x90, 0x90, 0x90, 0xE0, // D
	0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
	0xF0, 0x80, 0xF0, 0x80, 0x80, // F
}

// Memory is the flat 4KB CHIP-8 address space holding the font sprites and
// the loaded program. Addresses below ProgramStart are reserved for
// interpreter data and are read-only after creation.
type Memory struct {
	data        [MemorySize]byte
	programSize int
}

// NewMemory returns an initialized memory image with the font sprites
// written into the interpreter area.
func NewMemory() *Memory {
	m := &Memory{}
	copy(m.data[fontBase:], fontSprites[:])
	return m
}

// LoadProgram writes the program bytes starting at ProgramStart. It returns
// ErrProgramTooLarge if the program does not fit into user program space.
func (m *Memory) LoadProgram(program []byte) error {
	if len(program) > MemorySize-ProgramStart {
		return fmt.Errorf("%w: %d bytes, %d available",
			ErrProgramTooLarge, len(program), MemorySize-ProgramStart)
	}
	copy(m.data[ProgramStart:], program)
	m.programSize = len(program)
	return nil
}

// ProgramEnd returns the address one past the last loaded program byte.
func (m *Memory) ProgramEnd() uint16 {
	return uint16(ProgramStart + m.programSize)
}

// Read returns the byte at the given address.
func (m *Memory) Read(address uint16) (byte, error) {
	if address >= MemorySize {
		return 0, fmt.Errorf("%w: read at %04X", ErrOutOfBoundsMemory, address)
	}
	return m.data[address], nil
}

// Write stores a byte at the given address. Writes into the reserved
// interpreter area below ProgramStart are rejected, the font data is
// immutable after creation.
func (m *Memory) Write(address uint16, value byte) error {
	if address >= MemorySize || address < ProgramStart {
		return fmt.Errorf("%w: write at %04X", ErrOutOfBoundsMemory, address)
	}
	m.data[address] = value
	return nil
}

// ReadWord returns the big-endian 16-bit instruction word at the given
// address, used by instruction fetch and the scanner.
func (m *Memory) ReadWord(address uint16) (uint16, error) {
	// widen before adding so 0xFFFF does not wrap past the check
	if uint32(address)+1 >= MemorySize {
		return 0, fmt.Errorf("%w: word read at %04X", ErrOutOfBoundsMemory, address)
	}
	return uint16(m.data[address])<<8 | uint16(m.data[address+1]), nil
}

// Sprite returns n bytes of sprite data starting at the given address.
// The returned slice aliases the memory image and must not be retained.
func (m *Memory) Sprite(address uint16, n uint8) ([]byte, error) {
	end := uint32(address) + uint32(n)
	if end > MemorySize {
		return nil, fmt.Errorf("%w: sprite read %04X-%04X", ErrOutOfBoundsMemory, address, end)
	}
	return m.data[address:end], nil
}

// FontAddress returns the address of the font sprite for a hex digit.
func FontAddress(digit uint8) uint16 {
	return fontBase + FontGlyphSize*uint16(digit&0x0F)
}
