package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpcodeDecode(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		op       Opcode
		operands int
		alu      bool
		setsPc   bool
	}{
		{OP_HLT, 0, false, false},
		{OP_RET, 0, false, true},
		{OP_PUSH, 1, false, false},
		{OP_POP, 1, false, false},
		{OP_PRN, 1, false, false},
		{OP_CALL, 1, false, true},
		{OP_JMP, 1, false, true},
		{OP_JEQ, 1, false, true},
		{OP_JNE, 1, false, true},
		{OP_NOT, 1, true, false},
		{OP_LDI, 2, false, false},
		{OP_ADD, 2, true, false},
		{OP_CMP, 2, true, false},
		{OP_SHR, 2, true, false},
	}

	for _, entry := range table {
		name := entry.op.String()
		assert.Equal(entry.operands, entry.op.Operands(), name)
		assert.Equal(entry.operands+1, entry.op.Size(), name)
		assert.Equal(entry.alu, entry.op.IsAlu(), name)
		assert.Equal(entry.setsPc, entry.op.SetsPc(), name)
		assert.True(entry.op.Valid(), name)
	}

	assert.Equal(0x2, OP_LDI.Id())
	assert.Equal(0x7, OP_PRN.Id())
}

func TestOpcodeString(t *testing.T) {
	assert := assert.New(t)

	names := []string{
		"HLT", "RET", "PUSH", "POP", "PRN", "CALL", "JMP", "JEQ", "JNE",
		"NOT", "LDI", "ADD", "SUB", "MUL", "DIV", "MOD",
		"CMP", "AND", "OR", "XOR", "SHL", "SHR",
	}
	assert.Equal(len(names), len(Opcodes))
	for n, op := range Opcodes {
		assert.Equal(names[n], op.String())
	}

	assert.Equal("Opcode(0)", Opcode(0).String())
	assert.False(Opcode(0).Valid())
	assert.False(Opcode(0xff).Valid())
}
