package chip8

import "github.com/retroenv/retrogolib/log"

// execute applies a decoded opcode against the machine state. The program
// counter has already been advanced past the instruction; jumps and calls
// overwrite it, conditional skips advance it by another 2 bytes.
func (m *Machine) execute(op Opcode) error {
	switch op.Kind {
	case OpClearScreen:
		m.display.Clear()

	case OpReturn:
		address, err := m.stack.Pop()
		if err != nil {
			return err
		}
		m.regs.PC = address

	case OpJump:
		m.regs.PC = op.NNN

	case OpCall:
		if err := m.stack.Push(m.regs.PC); err != nil {
			return err
		}
		m.regs.PC = op.NNN

	case OpSkipEqByte:
		m.skipIf(m.regs.V[op.X] == op.NN)
	case OpSkipNeByte:
		m.skipIf(m.regs.V[op.X] != op.NN)
	case OpSkipEqReg:
		m.skipIf(m.regs.V[op.X] == m.regs.V[op.Y])
	case OpSkipNeReg:
		m.skipIf(m.regs.V[op.X] != m.regs.V[op.Y])

	case OpLoadByte:
		m.regs.V[op.X] = op.NN

	case OpAddByte: // no carry flag on the immediate form
		m.regs.V[op.X] += op.NN

	case OpLoadReg:
		m.regs.V[op.X] = m.regs.V[op.Y]
	case OpOr:
		m.regs.V[op.X] |= m.regs.V[op.Y]
	case OpAnd:
		m.regs.V[op.X] &= m.regs.V[op.Y]
	case OpXor:
		m.regs.V[op.X] ^= m.regs.V[op.Y]

	case OpAddReg:
		sum := uint16(m.regs.V[op.X]) + uint16(m.regs.V[op.Y])
		m.regs.V[op.X] = uint8(sum)
		m.regs.setFlag(sum > 0xFF)

	case OpSubReg:
		x, y := m.regs.V[op.X], m.regs.V[op.Y]
		m.regs.V[op.X] = x - y
		m.regs.setFlag(x >= y) // VF=1 when no borrow

	case OpSubN:
		x, y := m.regs.V[op.X], m.regs.V[op.Y]
		m.regs.V[op.X] = y - x
		m.regs.setFlag(y >= x)

	case OpShiftRight:
		v := m.shiftOperand(op)
		m.regs.V[op.X] = v >> 1
		m.regs.V[flagRegister] = v & 1

	case OpShiftLeft:
		v := m.shiftOperand(op)
		m.regs.V[op.X] = v << 1
		m.regs.V[flagRegister] = v >> 7

	case OpLoadIndex:
		m.regs.I = op.NNN

	case OpJumpV0:
		m.regs.PC = op.NNN + uint16(m.regs.V[0])

	case OpRandom:
		m.regs.V[op.X] = uint8(m.rng.Intn(256)) & op.NN

	case OpDraw:
		sprite, err := m.memory.Sprite(m.regs.I, op.N)
		if err != nil {
			return err
		}
		collision := m.display.Draw(m.regs.V[op.X], m.regs.V[op.Y], sprite)
		m.regs.setFlag(collision)

	case OpSkipPressed:
		m.skipIf(m.keypad.Pressed(m.regs.V[op.X]))
	case OpSkipNotPressed:
		m.skipIf(!m.keypad.Pressed(m.regs.V[op.X]))

	case OpLoadDelay:
		m.regs.V[op.X] = m.timers.Delay

	case OpWaitKey:
		m.awaitingKey = int(op.X)

	case OpSetDelay:
		m.timers.Delay = m.regs.V[op.X]

	case OpSetSound:
		m.timers.Sound = m.regs.V[op.X]
		if !m.soundWarned && m.logger != nil {
			m.logger.Warn("sound output is not implemented",
				log.String("op", op.String()))
			m.soundWarned = true
		}

	case OpAddIndex: // VF untouched, matching the original interpreter
		m.regs.I += uint16(m.regs.V[op.X])

	case OpLoadFont:
		m.regs.I = FontAddress(m.regs.V[op.X])

	case OpStoreBCD:
		v := m.regs.V[op.X]
		digits := [3]uint8{v / 100 % 10, v / 10 % 10, v % 10}
		for i, digit := range digits {
			if err := m.memory.Write(m.regs.I+uint16(i), digit); err != nil {
				return err
			}
		}

	case OpStoreRegs:
		for i := uint8(0); i <= op.X; i++ {
			if err := m.memory.Write(m.regs.I+uint16(i), m.regs.V[i]); err != nil {
				return err
			}
		}

	case OpLoadRegs:
		for i := uint8(0); i <= op.X; i++ {
			v, err := m.memory.Read(m.regs.I + uint16(i))
			if err != nil {
				return err
			}
			m.regs.V[i] = v
		}
	}

	return nil
}

// skipIf advances the program counter over the next instruction when the
// condition holds.
func (m *Machine) skipIf(condition bool) {
	if condition {
		m.regs.PC += 2
	}
}

// shiftOperand returns the source value for the shift instructions
// according to the configured quirk policy.
func (m *Machine) shiftOperand(op Opcode) uint8 {
	if m.quirks.ShiftUsesVY {
		return m.regs.V[op.Y]
	}
	return m.regs.V[op.X]
}
