package chip8

import (
	"errors"
	"fmt"
)

var (
	// ErrAddressOutOfRange is returned for memory accesses at or above MemorySize.
	ErrAddressOutOfRange = errors.New("memory address out of range")
	// ErrStackOverflow is returned when a call is made with a full call stack.
	ErrStackOverflow = errors.New("call stack overflow")
	// ErrStackUnderflow is returned when returning from a subroutine with an empty call stack.
	ErrStackUnderflow = errors.New("call stack underflow")
	// ErrEndOfMemory is returned when the program counter ran past the last
	// complete instruction in memory.
	ErrEndOfMemory = errors.New("program counter past end of memory")
)

// Fault is a fatal machine error. It records the address and the word of the
// instruction that caused it.
type Fault struct {
	PC   uint16 // address of the faulting instruction
	Word uint16 // instruction word, zero if the fetch itself failed
	Err  error
}

func (f *Fault) Error() string {
	return fmt.Sprintf("fault at $%03X (instruction $%04X): %v", f.PC, f.Word, f.Err)
}

func (f *Fault) Unwrap() error {
	return f.Err
}

// addressError wraps ErrAddressOutOfRange with the offending address.
func addressError(address int) error {
	return fmt.Errorf("%w: $%X", ErrAddressOutOfRange, address)
}
