package chip8

import "errors"

// Errors returned by the virtual machine. Every execution error is fatal to
// the running machine; CHIP-8 defines no recovery semantics, so the host is
// expected to report the error and discard the machine.
var (
	// ErrUnknownOpcode indicates an instruction word that matches no defined
	// CHIP-8 instruction pattern.
	ErrUnknownOpcode = errors.New("unknown opcode")

	// ErrStackOverflow indicates a subroutine call beyond the 16 frame limit.
	ErrStackOverflow = errors.New("call stack overflow")

	// ErrStackUnderflow indicates a subroutine return with an empty call stack.
	ErrStackUnderflow = errors.New("call stack underflow")

	// ErrOutOfBoundsFetch indicates an instruction fetch past the end of memory.
	ErrOutOfBoundsFetch = errors.New("instruction fetch out of bounds")

	// ErrOutOfBoundsMemory indicates a data access outside the 4KB address space
	// or a write into the reserved interpreter area.
	ErrOutOfBoundsMemory = errors.New("memory access out of bounds")

	// ErrProgramTooLarge indicates a program that does not fit into the
	// 3584 bytes of user program space.
	ErrProgramTooLarge = errors.New("program exceeds available memory")
)
