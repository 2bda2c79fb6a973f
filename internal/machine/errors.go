package machine

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange is returned for accesses past the end of memory.
	ErrOutOfRange = errors.New("address out of range")
	// ErrReservedRegion is returned for writes into the interpreter area below ProgramStart.
	ErrReservedRegion = errors.New("write to reserved interpreter region")
	// ErrStackOverflow is returned when a call is made with a full call stack.
	ErrStackOverflow = errors.New("call stack overflow")
	// ErrStackUnderflow is returned when a return is executed with an empty call stack.
	ErrStackUnderflow = errors.New("call stack underflow")
	// ErrInvalidKey is returned for key indices outside of the 16 key keypad.
	ErrInvalidKey = errors.New("invalid key index")
)

// MemoryError describes a memory access that was rejected by the memory bus.
type MemoryError struct {
	Op      string // read, write or load
	Address int
	Length  int
	Err     error
}

func (e *MemoryError) Error() string {
	return fmt.Sprintf("memory %s of %d byte(s) at $%03X: %v", e.Op, e.Length, e.Address, e.Err)
}

func (e *MemoryError) Unwrap() error {
	return e.Err
}

// StackError reports a broken call stack discipline of the loaded program.
type StackError struct {
	Op    string // call or return
	Depth int
	Err   error
}

func (e *StackError) Error() string {
	return fmt.Sprintf("%s at stack depth %d: %v", e.Op, e.Depth, e.Err)
}

func (e *StackError) Unwrap() error {
	return e.Err
}

// DecodeError reports an instruction word that does not match any known instruction.
// It is not fatal, the program counter still advances past the word.
type DecodeError struct {
	Address uint16
	Opcode  uint16
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("unknown opcode $%04X at $%03X", e.Opcode, e.Address)
}
