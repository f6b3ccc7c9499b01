package cpu

import (
	"slices"
)

// Opcode is an LS-8 instruction byte.
type Opcode byte

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_HLT  = Opcode(0b00000001) // HLT
	OP_RET  = Opcode(0b00010001) // RET
	OP_PUSH = Opcode(0b01000101) // PUSH
	OP_POP  = Opcode(0b01000110) // POP
	OP_PRN  = Opcode(0b01000111) // PRN
	OP_CALL = Opcode(0b01010000) // CALL
	OP_JMP  = Opcode(0b01010100) // JMP
	OP_JEQ  = Opcode(0b01010101) // JEQ
	OP_JNE  = Opcode(0b01010110) // JNE
	OP_NOT  = Opcode(0b01101001) // NOT
	OP_LDI  = Opcode(0b10000010) // LDI
	OP_ADD  = Opcode(0b10100000) // ADD
	OP_SUB  = Opcode(0b10100001) // SUB
	OP_MUL  = Opcode(0b10100010) // MUL
	OP_DIV  = Opcode(0b10100011) // DIV
	OP_MOD  = Opcode(0b10100100) // MOD
	OP_CMP  = Opcode(0b10100111) // CMP
	OP_AND  = Opcode(0b10101000) // AND
	OP_OR   = Opcode(0b10101010) // OR
	OP_XOR  = Opcode(0b10101011) // XOR
	OP_SHL  = Opcode(0b10101100) // SHL
	OP_SHR  = Opcode(0b10101101) // SHR
)

// Opcode bit layout.
const (
	OPCODE_OPERANDS_SHIFT = 6          // AA: operand count.
	OPCODE_ALU            = 0b00100000 // B: routed to the ALU.
	OPCODE_SETS_PC        = 0b00010000 // C: instruction sets PC itself.
	OPCODE_ID_MASK        = 0b00001111 // DDDD: instruction identifier.
)

// Opcodes is every instruction the LS-8 implements, in opcode order.
var Opcodes = []Opcode{
	OP_HLT, OP_RET,
	OP_PUSH, OP_POP, OP_PRN,
	OP_CALL, OP_JMP, OP_JEQ, OP_JNE,
	OP_NOT, OP_LDI,
	OP_ADD, OP_SUB, OP_MUL, OP_DIV, OP_MOD,
	OP_CMP, OP_AND, OP_OR, OP_XOR, OP_SHL, OP_SHR,
}

// Operands returns the number of operand bytes following the opcode.
func (op Opcode) Operands() int {
	return int(op >> OPCODE_OPERANDS_SHIFT)
}

// Size returns the total instruction length in bytes.
func (op Opcode) Size() int {
	return op.Operands() + 1
}

// IsAlu returns true if the opcode is an ALU operation.
func (op Opcode) IsAlu() bool {
	return (op & OPCODE_ALU) != 0
}

// SetsPc returns true if the instruction writes the program counter
// itself, and must not be auto-advanced.
func (op Opcode) SetsPc() bool {
	return (op & OPCODE_SETS_PC) != 0
}

// Id returns the low four identifier bits.
func (op Opcode) Id() int {
	return int(op & OPCODE_ID_MASK)
}

// Valid returns true if the opcode is implemented.
func (op Opcode) Valid() bool {
	_, found := slices.BinarySearch(Opcodes, op)
	return found
}
