// Package io provides the output devices for the LS-8 emulator.
//
// The CPU core never writes to an os.File directly. It prints through a
// Printer, which the emulator binds to a Tape wrapping any io.Writer.
package io

// Printer is the sink for the PRN instruction.
type Printer interface {
	// Print emits a single byte value.
	Print(value byte) error
}
