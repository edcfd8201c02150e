package emulator

import (
	"errors"
	"fmt"
)

var (
	ErrProgramTooLarge = errors.New("program does not fit in memory")
	ErrUnknownOpcode   = errors.New("unknown opcode")
	ErrMemoryBounds    = errors.New("memory access out of bounds")
	ErrStackOverflow   = errors.New("stack overflow")
	ErrStackUnderflow  = errors.New("stack underflow")
	ErrKeyIndex        = errors.New("key index out of range")
)

// Fault is returned by Tick when an instruction cannot be executed. Once a
// fault is returned the machine is halted and keeps returning it.
type Fault struct {
	PC     uint16 // address of the faulting instruction
	Opcode uint16
	Addr   int // offending memory address, stack slot or key index
	Err    error
}

func (f *Fault) Error() string {
	switch f.Err {
	case ErrMemoryBounds, ErrStackOverflow, ErrStackUnderflow, ErrKeyIndex:
		return fmt.Sprintf("%03X-%04X: %v (%#x)", f.PC, f.Opcode, f.Err, f.Addr)
	}
	return fmt.Sprintf("%03X-%04X: %v", f.PC, f.Opcode, f.Err)
}

func (f *Fault) Unwrap() error {
	return f.Err
}
