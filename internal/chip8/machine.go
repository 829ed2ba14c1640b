package chip8

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/retroenv/retrogolib/log"
)

// noKeyWait marks that no LD Vx, K instruction is pending.
const noKeyWait = -1

// Quirks selects between incompatible historical CHIP-8 behaviors that real
// programs depend on.
type Quirks struct {
	// ShiftUsesVY selects the legacy COSMAC VIP shift behavior: 8XY6 and
	// 8XYE shift VY and store the result in VX. When false, the shifts
	// operate on VX in place, the behavior most later interpreters use.
	ShiftUsesVY bool
}

// Config configures a new machine.
type Config struct {
	Logger *log.Logger // optional, enables instruction tracing at debug level
	Quirks Quirks
	Rand   *rand.Rand // optional, defaults to a time seeded source
}

// Machine is the CHIP-8 virtual machine: memory, register file, call stack,
// timer pair, display buffer and keypad, driven by the host through Step
// and TickTimers. It is single threaded and never blocks; a pending
// LD Vx, K wait is machine state checked at the start of each step, not a
// suspension.
type Machine struct {
	memory  *Memory
	regs    Registers
	stack   Stack
	timers  Timers
	display Display
	keypad  Keypad

	// awaitingKey holds the register a pending LD Vx, K stores into,
	// or noKeyWait.
	awaitingKey int

	quirks Quirks
	rng    *rand.Rand
	logger *log.Logger

	soundWarned bool
}

// New returns a machine with the font sprites loaded and the program
// counter at the program start address.
func New(cfg Config) *Machine {
	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Machine{
		memory:      NewMemory(),
		regs:        NewRegisters(),
		awaitingKey: noKeyWait,
		quirks:      cfg.Quirks,
		rng:         rng,
		logger:      cfg.Logger,
	}
}

// LoadProgram writes the raw ROM bytes into memory starting at the program
// start address.
func (m *Machine) LoadProgram(program []byte) error {
	return m.memory.LoadProgram(program)
}

// Memory returns the machine's memory image, read by the scanner.
func (m *Machine) Memory() *Memory {
	return m.memory
}

// Display returns the display buffer for the rendering collaborator.
// It must not be read concurrently with a Step call.
func (m *Machine) Display() *Display {
	return &m.display
}

// SetKey records the press state of a hexpad key. The input collaborator
// calls this between steps.
func (m *Machine) SetKey(key uint8, down bool) {
	m.keypad.Set(key, down)
}

// SoundActive reports whether the sound timer is running.
func (m *Machine) SoundActive() bool {
	return m.timers.Sound > 0
}

// TickTimers decrements the delay and sound timers. The host calls this at
// a fixed 60Hz, decoupled from the CPU clock.
func (m *Machine) TickTimers() {
	m.timers.Tick()
}

// Step executes one instruction: fetch the word at PC, decode it and apply
// its effects. While a LD Vx, K wait is pending, Step instead polls the
// keypad and completes the wait on the first key observed down, leaving the
// rest of the machine untouched. All returned errors are fatal to the run.
func (m *Machine) Step() error {
	if m.awaitingKey != noKeyWait {
		if key, ok := m.keypad.FirstPressed(); ok {
			m.regs.V[m.awaitingKey] = key
			m.awaitingKey = noKeyWait
		}
		return nil
	}

	// the fetched instruction must leave room to advance the PC past it
	if m.regs.PC >= MemorySize-2 {
		return fmt.Errorf("%w: PC at %04X", ErrOutOfBoundsFetch, m.regs.PC)
	}
	word, err := m.memory.ReadWord(m.regs.PC)
	if err != nil {
		return fmt.Errorf("%w: PC at %04X", ErrOutOfBoundsFetch, m.regs.PC)
	}

	op, err := Decode(word)
	if err != nil {
		return fmt.Errorf("at %04X: %w", m.regs.PC, err)
	}

	if m.logger != nil {
		m.logger.Debug("executing",
			log.String("addr", fmt.Sprintf("%04X", m.regs.PC)),
			log.String("word", fmt.Sprintf("%04X", word)),
			log.String("op", op.String()),
		)
	}

	m.regs.PC += 2
	if err := m.execute(op); err != nil {
		return fmt.Errorf("at %04X: %w", m.regs.PC-2, err)
	}
	return nil
}
