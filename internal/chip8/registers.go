package chip8

// NumRegisters is the number of general purpose data registers.
const NumRegisters = 16

// flagRegister is VF, overwritten as the carry/borrow/collision output by
// every opcode that defines such an output.
const flagRegister = 0xF

// Registers is the CHIP-8 register file: 16 8-bit data registers V0-VF,
// the 16-bit index register I and the program counter.
type Registers struct {
	V  [NumRegisters]uint8
	I  uint16
	PC uint16
}

// NewRegisters returns a register file with the program counter pointing at
// the program start address.
func NewRegisters() Registers {
	return Registers{PC: ProgramStart}
}

// setFlag writes the VF carry/borrow/collision output.
func (r *Registers) setFlag(set bool) {
	if set {
		r.V[flagRegister] = 1
	} else {
		r.V[flagRegister] = 0
	}
}
