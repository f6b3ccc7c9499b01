package cpu

import (
	"strings"
)

const (
	REGISTER_COUNT = 8

	REG_IM = 5 // Interrupt mask. Reserved.
	REG_IS = 6 // Interrupt status. Reserved.
	REG_SP = 7 // Stack pointer.
)

// Flags is the comparison result register, laid out as 00000LGE.
type Flags byte

const (
	FLAG_EQUAL   = Flags(0b001)
	FLAG_GREATER = Flags(0b010)
	FLAG_LESS    = Flags(0b100)
)

// compare returns exactly one of FLAG_EQUAL, FLAG_LESS or FLAG_GREATER.
func compare(a, b byte) Flags {
	switch {
	case a == b:
		return FLAG_EQUAL
	case a < b:
		return FLAG_LESS
	default:
		return FLAG_GREATER
	}
}

// Equal is true if the last comparison was equal.
func (fl Flags) Equal() bool {
	return (fl & FLAG_EQUAL) != 0
}

// Less is true if the last comparison was less than.
func (fl Flags) Less() bool {
	return (fl & FLAG_LESS) != 0
}

// Greater is true if the last comparison was greater than.
func (fl Flags) Greater() bool {
	return (fl & FLAG_GREATER) != 0
}

func (fl Flags) String() string {
	var sb strings.Builder
	for _, bit := range []struct {
		flag Flags
		name byte
	}{{FLAG_LESS, 'L'}, {FLAG_GREATER, 'G'}, {FLAG_EQUAL, 'E'}} {
		if (fl & bit.flag) != 0 {
			sb.WriteByte(bit.name)
		} else {
			sb.WriteByte('-')
		}
	}
	return sb.String()
}

// validRegister checks a register index.
func validRegister(index int) (err error) {
	if index < 0 || index >= REGISTER_COUNT {
		err = ErrRegister(index)
	}
	return
}

// GetRegister returns the value of a register.
func (cpu *Cpu) GetRegister(index int) (value byte, err error) {
	err = validRegister(index)
	if err != nil {
		return
	}

	value = cpu.Register[index]
	return
}

// SetRegister stores the low 8 bits of value in a register.
func (cpu *Cpu) SetRegister(index int, value int) (err error) {
	err = validRegister(index)
	if err != nil {
		return
	}

	cpu.Register[index] = byte(value & 0xff)
	return
}

// GetFlags returns the comparison flags.
func (cpu *Cpu) GetFlags() Flags {
	return cpu.Flags
}

// SetFlags replaces the comparison flags.
func (cpu *Cpu) SetFlags(flags Flags) {
	cpu.Flags = flags
}
