package chip8

import (
	"fmt"
	"strings"

	"github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// Kind identifies a decoded CHIP-8 instruction.
type Kind uint8

// Instruction kinds, one per operand shape of the CHIP-8 instruction set.
const (
	OpClearScreen   Kind = iota // 00E0
	OpReturn                    // 00EE
	OpJump                      // 1NNN
	OpCall                      // 2NNN
	OpSkipEqByte                // 3XNN
	OpSkipNeByte                // 4XNN
	OpSkipEqReg                 // 5XY0
	OpLoadByte                  // 6XNN
	OpAddByte                   // 7XNN
	OpLoadReg                   // 8XY0
	OpOr                        // 8XY1
	OpAnd                       // 8XY2
	OpXor                       // 8XY3
	OpAddReg                    // 8XY4
	OpSubReg                    // 8XY5
	OpShiftRight                // 8XY6
	OpSubN                      // 8XY7
	OpShiftLeft                 // 8XYE
	OpSkipNeReg                 // 9XY0
	OpLoadIndex                 // ANNN
	OpJumpV0                    // BNNN
	OpRandom                    // CXNN
	OpDraw                      // DXYN
	OpSkipPressed               // EX9E
	OpSkipNotPressed            // EXA1
	OpLoadDelay                 // FX07
	OpWaitKey                   // FX0A
	OpSetDelay                  // FX15
	OpSetSound                  // FX18
	OpAddIndex                  // FX1E
	OpLoadFont                  // FX29
	OpStoreBCD                  // FX33
	OpStoreRegs                 // FX55
	OpLoadRegs                  // FX65
)

// Opcode is a decoded CHIP-8 instruction: the kind plus the operand fields
// extracted from the 16-bit word. Operand fields not used by a kind are zero.
// Opcodes are produced fresh per Decode call and not retained.
type Opcode struct {
	Kind Kind

	X   uint8  // first register index
	Y   uint8  // second register index
	N   uint8  // low nibble, sprite height for DRW
	NN  uint8  // low byte immediate
	NNN uint16 // 12-bit address

	Word uint16 // the raw instruction word
}

// Decode maps a big-endian 16-bit instruction word to its decoded opcode.
// It is pure and deterministic. Words matching no defined instruction
// pattern return ErrUnknownOpcode wrapping the offending word; this
// includes the 0NNN machine code routine family, which no current program
// should reach.
func Decode(word uint16) (Opcode, error) {
	op := Opcode{
		X:    uint8(word & 0x0F00 >> 8),
		Y:    uint8(word & 0x00F0 >> 4),
		N:    uint8(word & 0x000F),
		NN:   uint8(word & 0x00FF),
		NNN:  word & 0x0FFF,
		Word: word,
	}

	switch word & 0xF000 {
	case 0x0000:
		switch word {
		case 0x00E0:
			op.Kind = OpClearScreen
		case 0x00EE:
			op.Kind = OpReturn
		default:
			return Opcode{}, unknownOpcode(word)
		}

	case 0x1000:
		op.Kind = OpJump
	case 0x2000:
		op.Kind = OpCall
	case 0x3000:
		op.Kind = OpSkipEqByte
	case 0x4000:
		op.Kind = OpSkipNeByte

	case 0x5000:
		if word&0x000F != 0 {
			return Opcode{}, unknownOpcode(word)
		}
		op.Kind = OpSkipEqReg

	case 0x6000:
		op.Kind = OpLoadByte
	case 0x7000:
		op.Kind = OpAddByte

	case 0x8000:
		kind, ok := aluKinds[word&0x000F]
		if !ok {
			return Opcode{}, unknownOpcode(word)
		}
		op.Kind = kind

	case 0x9000:
		if word&0x000F != 0 {
			return Opcode{}, unknownOpcode(word)
		}
		op.Kind = OpSkipNeReg

	case 0xA000:
		op.Kind = OpLoadIndex
	case 0xB000:
		op.Kind = OpJumpV0
	case 0xC000:
		op.Kind = OpRandom
	case 0xD000:
		op.Kind = OpDraw

	case 0xE000:
		switch word & 0x00FF {
		case 0x9E:
			op.Kind = OpSkipPressed
		case 0xA1:
			op.Kind = OpSkipNotPressed
		default:
			return Opcode{}, unknownOpcode(word)
		}

	case 0xF000:
		kind, ok := miscKinds[word&0x00FF]
		if !ok {
			return Opcode{}, unknownOpcode(word)
		}
		op.Kind = kind
	}

	return op, nil
}

func unknownOpcode(word uint16) error {
	return fmt.Errorf("%w: %04X", ErrUnknownOpcode, word)
}

// aluKinds maps the low nibble of the 8XYN family to instruction kinds.
var aluKinds = map[uint16]Kind{
	0x0: OpLoadReg,
	0x1: OpOr,
	0x2: OpAnd,
	0x3: OpXor,
	0x4: OpAddReg,
	0x5: OpSubReg,
	0x6: OpShiftRight,
	0x7: OpSubN,
	0xE: OpShiftLeft,
}

// miscKinds maps the low byte of the FXNN family to instruction kinds.
var miscKinds = map[uint16]Kind{
	0x07: OpLoadDelay,
	0x0A: OpWaitKey,
	0x15: OpSetDelay,
	0x18: OpSetSound,
	0x1E: OpAddIndex,
	0x29: OpLoadFont,
	0x33: OpStoreBCD,
	0x55: OpStoreRegs,
	0x65: OpLoadRegs,
}

// name returns the mnemonic of an instruction in uppercase.
func name(id chip8.OpcodeID) string {
	return strings.ToUpper(chip8.OpcodeIDToName[id])
}

// String renders the opcode as assembly text in the conventional CHIP-8
// mnemonic notation, e.g. "LD V2, $0A" or "DRW V0, V1, $5".
func (o Opcode) String() string {
	switch o.Kind {
	case OpClearScreen:
		return name(chip8.Cls)
	case OpReturn:
		return name(chip8.Ret)
	case OpJump:
		return fmt.Sprintf("%s $%03X", name(chip8.Jp), o.NNN)
	case OpCall:
		return fmt.Sprintf("%s $%03X", name(chip8.Call), o.NNN)
	case OpSkipEqByte:
		return fmt.Sprintf("%s V%X, $%02X", name(chip8.Se), o.X, o.NN)
	case OpSkipNeByte:
		return fmt.Sprintf("%s V%X, $%02X", name(chip8.Sne), o.X, o.NN)
	case OpSkipEqReg:
		return fmt.Sprintf("%s V%X, V%X", name(chip8.Se), o.X, o.Y)
	case OpLoadByte:
		return fmt.Sprintf("%s V%X, $%02X", name(chip8.Ld), o.X, o.NN)
	case OpAddByte:
		return fmt.Sprintf("%s V%X, $%02X", name(chip8.Add), o.X, o.NN)
	case OpLoadReg:
		return fmt.Sprintf("%s V%X, V%X", name(chip8.Ld), o.X, o.Y)
	case OpOr:
		return fmt.Sprintf("%s V%X, V%X", name(chip8.Or), o.X, o.Y)
	case OpAnd:
		return fmt.Sprintf("%s V%X, V%X", name(chip8.And), o.X, o.Y)
	case OpXor:
		return fmt.Sprintf("%s V%X, V%X", name(chip8.Xor), o.X, o.Y)
	case OpAddReg:
		return fmt.Sprintf("%s V%X, V%X", name(chip8.Add), o.X, o.Y)
	case OpSubReg:
		return fmt.Sprintf("%s V%X, V%X", name(chip8.Sub), o.X, o.Y)
	case OpShiftRight:
		return fmt.Sprintf("%s V%X", name(chip8.Shr), o.X)
	case OpSubN:
		return fmt.Sprintf("%s V%X, V%X", name(chip8.Subn), o.X, o.Y)
	case OpShiftLeft:
		return fmt.Sprintf("%s V%X", name(chip8.Shl), o.X)
	case OpSkipNeReg:
		return fmt.Sprintf("%s V%X, V%X", name(chip8.Sne), o.X, o.Y)
	case OpLoadIndex:
		return fmt.Sprintf("%s I, $%03X", name(chip8.Ld), o.NNN)
	case OpJumpV0:
		return fmt.Sprintf("%s V0, $%03X", name(chip8.Jp), o.NNN)
	case OpRandom:
		return fmt.Sprintf("%s V%X, $%02X", name(chip8.Rnd), o.X, o.NN)
	case OpDraw:
		return fmt.Sprintf("%s V%X, V%X, $%X", name(chip8.Drw), o.X, o.Y, o.N)
	case OpSkipPressed:
		return fmt.Sprintf("%s V%X", name(chip8.Skp), o.X)
	case OpSkipNotPressed:
		return fmt.Sprintf("%s V%X", name(chip8.Sknp), o.X)
	case OpLoadDelay:
		return fmt.Sprintf("%s V%X, DT", name(chip8.Ld), o.X)
	case OpWaitKey:
		return fmt.Sprintf("%s V%X, K", name(chip8.Ld), o.X)
	case OpSetDelay:
		return fmt.Sprintf("%s DT, V%X", name(chip8.Ld), o.X)
	case OpSetSound:
		return fmt.Sprintf("%s ST, V%X", name(chip8.Ld), o.X)
	case OpAddIndex:
		return fmt.Sprintf("%s I, V%X", name(chip8.Add), o.X)
	case OpLoadFont:
		return fmt.Sprintf("%s F, V%X", name(chip8.Ld), o.X)
	case OpStoreBCD:
		return fmt.Sprintf("%s B, V%X", name(chip8.Ld), o.X)
	case OpStoreRegs:
		return fmt.Sprintf("%s [I], V%X", name(chip8.Ld), o.X)
	case OpLoadRegs:
		return fmt.Sprintf("%s V%X, [I]", name(chip8.Ld), o.X)
	}
	return fmt.Sprintf(".word $%04X", o.Word)
}
