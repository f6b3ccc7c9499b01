package cpu

import (
	"errors"

	"github.com/fbzr/Computer-Architecture/translate"
)

var f = translate.From

var (
	// Cpu errors
	ErrOutOfBounds             = errors.New(f("out of bounds"))
	ErrInvalidRegister         = errors.New(f("invalid register"))
	ErrUnsupportedInstruction  = errors.New(f("unsupported instruction"))
	ErrUnsupportedAluOperation = errors.New(f("unsupported alu operation"))
	ErrDivisionByZero          = errors.New(f("division by zero"))
	ErrStackEmpty              = errors.New(f("stack empty"))
	ErrHalted                  = errors.New(f("halted"))
)

// ErrAddress is a memory access outside of 0..255.
type ErrAddress int

func (ea ErrAddress) Error() string {
	return f("address %d out of bounds", int(ea))
}

func (ea ErrAddress) Unwrap() error {
	return ErrOutOfBounds
}

// ErrRegister is a register index outside of r0..r7.
type ErrRegister int

func (er ErrRegister) Error() string {
	return f("register %d invalid", int(er))
}

func (er ErrRegister) Unwrap() error {
	return ErrInvalidRegister
}

// ErrOpcode identifies the instruction that faulted.
type ErrOpcode struct {
	Pc     int
	Opcode Opcode
}

func (eo ErrOpcode) Error() string {
	return f("bad opcode 0x%02x %v at 0x%02x", byte(eo.Opcode), eo.Opcode.String(), eo.Pc)
}

func (eo ErrOpcode) Is(err error) (ok bool) {
	_, ok = err.(ErrOpcode)
	return
}
