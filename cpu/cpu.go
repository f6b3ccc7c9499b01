package cpu

import (
	"errors"
	"fmt"
	"iter"
	"log"
	"maps"
	"strings"

	"github.com/fbzr/Computer-Architecture/io"
)

// Printer is the output device for PRN.
type Printer io.Printer

var _cpu_defines = map[string]string{
	"MEMORY_SIZE": fmt.Sprintf("%d", MEMORY_SIZE),
	"STACK_TOP":   fmt.Sprintf("%#x", STACK_TOP),
	"FL_EQUAL":    fmt.Sprintf("%#b", byte(FLAG_EQUAL)),
	"FL_GREATER":  fmt.Sprintf("%#b", byte(FLAG_GREATER)),
	"FL_LESS":     fmt.Sprintf("%#b", byte(FLAG_LESS)),
}

// Cpu is the simulation context for the LS-8 processor.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Output Printer // Sink for PRN. Output is dropped if nil.

	Memory   Memory               // Program and stack memory.
	Register [REGISTER_COUNT]byte // Register bank. r7 is the stack pointer.
	Pc       int                  // Address of the next instruction.
	Ir       Opcode               // Most recently fetched opcode.
	Flags    Flags                // Last comparison result.
	Halted   bool                 // Set by HLT.

	Ticks int // Instructions executed since reset.
}

// NewCpu creates a reset CPU printing to output.
func NewCpu(output Printer) (cpu *Cpu) {
	cpu = &Cpu{
		Output: output,
	}

	cpu.Reset()

	return
}

// Defines for the cpu
func (cpu *Cpu) Defines() iter.Seq2[string, string] {
	return maps.All(_cpu_defines)
}

// Reset the CPU state.
// - Clears the registers, flags and counters.
// - Sets the stack pointer to STACK_TOP.
// - Sets the PC to 0.
//
// Memory is not cleared; see Load.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	clear(cpu.Register[:])
	cpu.Register[REG_SP] = STACK_TOP
	cpu.Pc = 0
	cpu.Ir = 0
	cpu.Flags = 0
	cpu.Halted = false
	cpu.Ticks = 0
}

// Load resets the CPU and places program at address 0.
func (cpu *Cpu) Load(program []byte) (err error) {
	cpu.Reset()

	err = cpu.Memory.Load(program)
	if err != nil {
		return
	}

	if cpu.Verbose {
		log.Printf("cpu: loaded %d bytes", len(program))
	}

	return
}

// Tick fetches and executes a single instruction.
func (cpu *Cpu) Tick() (err error) {
	if cpu.Halted {
		err = ErrHalted
		return
	}

	ir, err := cpu.Memory.Read(cpu.Pc)
	if err != nil {
		return
	}
	cpu.Ir = Opcode(ir)

	err = cpu.Execute(cpu.Ir)
	if err != nil {
		return
	}

	cpu.Ticks++

	return
}

// Run ticks until HLT, or the first error.
func (cpu *Cpu) Run() (err error) {
	for !cpu.Halted {
		err = cpu.Tick()
		if err != nil {
			return
		}
	}

	return
}

// Execute executes op, with its operands read from the bytes following
// the PC. On error the PC is left pointing at the faulting instruction.
func (cpu *Cpu) Execute(op Opcode) (err error) {
	defer func() {
		if err != nil {
			err = errors.Join(ErrOpcode{Pc: cpu.Pc, Opcode: op}, err)
		}
	}()

	if cpu.Verbose {
		log.Print(cpu.Trace())
	}

	// Unknown opcodes fault before their operands are fetched.
	if !op.Valid() {
		if op.IsAlu() {
			err = ErrUnsupportedAluOperation
		} else {
			err = ErrUnsupportedInstruction
		}
		return
	}

	var args [2]byte
	for n := range op.Operands() {
		args[n], err = cpu.Memory.Read(cpu.Pc + 1 + n)
		if err != nil {
			return
		}
	}

	if op.IsAlu() {
		err = cpu.alu(op, args[0], args[1])
	} else {
		err = cpu.dispatch(op, args[0], args[1])
	}
	if err != nil {
		return
	}

	if !op.SetsPc() {
		cpu.Pc += op.Size()
	}

	return
}

// Trace returns a single line snapshot of the PC, the next three bytes
// of memory, and the register bank.
func (cpu *Cpu) Trace() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "TRACE: %02X |", cpu.Pc)
	for n := range 3 {
		value, err := cpu.Memory.Read(cpu.Pc + n)
		if err != nil {
			sb.WriteString(" --")
		} else {
			fmt.Fprintf(&sb, " %02X", value)
		}
	}
	sb.WriteString(" |")
	for _, value := range cpu.Register {
		fmt.Fprintf(&sb, " %02X", value)
	}

	return sb.String()
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	regs := []string{
		"pc", "ir", "fl",
		"r0", "r1", "r2", "r3", "r4", "r5", "r6", "r7",
		"stack",
	}
	for _, reg := range regs {
		var strval string
		switch reg {
		case "pc":
			strval = fmt.Sprintf("%02X", cpu.Pc)
			if cpu.Halted {
				strval += " (halted)"
			}
		case "ir":
			strval = fmt.Sprintf("%02X %v", byte(cpu.Ir), cpu.Ir)
		case "fl":
			strval = cpu.Flags.String()
		case "r0", "r1", "r2", "r3", "r4", "r5", "r6", "r7":
			val := cpu.Register[reg[1]-'0']
			strval = fmt.Sprintf("%02X %d", val, val)
		case "stack":
			val, ok := cpu.Peek()
			if ok {
				strval = fmt.Sprintf("%02X depth %d", val, cpu.StackDepth())
			} else {
				strval = "--"
			}
		}
		text += fmt.Sprintf("% 5s: %v\n", reg, strval)
	}

	return
}
