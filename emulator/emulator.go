package emulator

import (
	"errors"
	"iter"
	"log"
	"maps"

	"github.com/fbzr/Computer-Architecture/cpu"
	"github.com/fbzr/Computer-Architecture/internal"
	"github.com/fbzr/Computer-Architecture/io"
	"github.com/fbzr/Computer-Architecture/program"
)

var _emulator_defines = map[string]string{
	"REG_IM": "5",
	"REG_IS": "6",
	"REG_SP": "7",
}

// Emulator state. CPU + program listing + output tape.
type Emulator struct {
	Verbose  bool             // If set, enables verbose logging.
	*cpu.Cpu                  // Reference to the CPU simulation.
	Program  *program.Program // Reference to the currently running program listing.

	Tape io.Tape // Output for PRN.
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Program: &program.Program{},
	}

	emu.Cpu = cpu.NewCpu(&emu.Tape)

	return
}

// Defines returns an iterator over all of the defines, ordered by name.
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Sorted(internal.IterSeq2Concat(maps.All(_emulator_defines),
		emu.Cpu.Defines(),
	))
}

// Assembler returns an assembler predefined with the emulator defines.
func (emu *Emulator) Assembler() (asm *program.Assembler) {
	asm = &program.Assembler{Verbose: emu.Verbose}
	for key, value := range emu.Defines() {
		if emu.Verbose {
			log.Printf("emulator: define %v = %v", key, value)
		}
		asm.Predefine(key, value)
	}

	return
}

// Reset reloads the program and resets the CPU.
func (emu *Emulator) Reset() (err error) {
	emu.Cpu.Verbose = emu.Verbose
	emu.Tape.Rewind()

	err = emu.Cpu.Load(emu.Program.Binary())
	if err != nil {
		return
	}

	if emu.Verbose {
		log.Printf("emulator: %d lines, %d bytes", len(emu.Program.Lines), emu.Program.Len())
	}

	return
}

// Ticks returns the total ticks since a reset.
func (emu *Emulator) Ticks() int {
	return emu.Cpu.Ticks
}

// Pc returns the current program counter.
func (emu *Emulator) Pc() int {
	return emu.Cpu.Pc
}

// LineNo returns the source line number for the next instruction.
func (emu *Emulator) LineNo() int {
	dbg, ok := emu.Program.Debug(emu.Cpu.Pc)
	if !ok {
		return 0
	}

	return dbg.LineNo
}

// Tick performs a single tick of the emulator. done is set once the
// CPU has halted.
func (emu *Emulator) Tick() (done bool, err error) {
	emu.Cpu.Verbose = emu.Verbose

	if emu.Cpu.Halted {
		done = true
		return
	}

	lineno := emu.LineNo()
	pc := emu.Cpu.Pc
	defer func() {
		if err != nil {
			err = &ErrRuntime{LineNo: lineno, Address: pc, Err: err}
		}
	}()

	err = emu.Cpu.Tick()
	if err != nil {
		return
	}

	done = emu.Cpu.Halted

	return
}

// Run ticks until the CPU halts or faults.
func (emu *Emulator) Run() (err error) {
	for done := false; !done; {
		done, err = emu.Tick()
		if err != nil {
			return
		}
	}

	return
}

// Fault returns true if err is a fault raised by the CPU itself, rather
// than by the output device.
func Fault(err error) bool {
	for _, kind := range []error{
		cpu.ErrOutOfBounds,
		cpu.ErrInvalidRegister,
		cpu.ErrUnsupportedInstruction,
		cpu.ErrUnsupportedAluOperation,
		cpu.ErrDivisionByZero,
		cpu.ErrStackEmpty,
	} {
		if errors.Is(err, kind) {
			return true
		}
	}

	return false
}
