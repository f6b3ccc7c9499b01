package emulator

import (
	"github.com/fbzr/Computer-Architecture/translate"
)

var f = translate.From

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	LineNo  int // Source line, or 0 if unknown.
	Address int // Program counter at the fault.
	Err     error
}

func (err *ErrRuntime) Error() string {
	if err.LineNo == 0 {
		return f("address 0x%02x %v", err.Address, err.Err)
	}
	return f("line %d address 0x%02x %v", err.LineNo, err.Address, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
