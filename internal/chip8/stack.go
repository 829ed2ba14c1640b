package chip8

import "fmt"

// StackDepth is the maximum number of nested subroutine calls.
const StackDepth = 16

// Stack is the bounded LIFO stack of subroutine return addresses.
// Exceeding its depth in either direction is fatal, real CHIP-8 hardware
// defines no behavior beyond 16 nested calls.
type Stack struct {
	frames [StackDepth]uint16
	sp     int
}

// Push stores a return address on top of the stack.
func (s *Stack) Push(address uint16) error {
	if s.sp >= StackDepth {
		return fmt.Errorf("%w: depth %d", ErrStackOverflow, StackDepth)
	}
	s.frames[s.sp] = address
	s.sp++
	return nil
}

// Pop removes and returns the top return address.
func (s *Stack) Pop() (uint16, error) {
	if s.sp == 0 {
		return 0, ErrStackUnderflow
	}
	s.sp--
	return s.frames[s.sp], nil
}

// Depth returns the number of return addresses on the stack.
func (s *Stack) Depth() int {
	return s.sp
}
