package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAlu(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		name   string
		op     Opcode
		a, b   byte
		result byte
	}{
		{"add", OP_ADD, 2, 3, 5},
		{"add_wrap", OP_ADD, 200, 100, 44},
		{"sub", OP_SUB, 20, 10, 10},
		{"sub_wrap", OP_SUB, 10, 20, 246},
		{"mul", OP_MUL, 12, 10, 120},
		{"mul_wrap", OP_MUL, 16, 17, 16},
		{"div", OP_DIV, 100, 7, 14},
		{"mod", OP_MOD, 100, 7, 2},
		{"and", OP_AND, 0b1100, 0b1010, 0b1000},
		{"or", OP_OR, 0b1100, 0b1010, 0b1110},
		{"xor", OP_XOR, 0b1100, 0b1010, 0b0110},
		{"not", OP_NOT, 0b1111_0000, 0xaa, 0b0000_1111},
		{"shl", OP_SHL, 0b0110_0001, 2, 0b1000_0100},
		{"shl_all", OP_SHL, 0xff, 8, 0},
		{"shl_huge", OP_SHL, 0xff, 200, 0},
		{"shr", OP_SHR, 0b1000_0110, 2, 0b0010_0001},
		{"shr_all", OP_SHR, 0xff, 9, 0},
	}

	for _, entry := range table {
		cpu := NewCpu(nil)
		cpu.Register[1] = entry.a
		cpu.Register[2] = entry.b

		err := cpu.alu(entry.op, 1, 2)
		assert.NoError(err, entry.name)
		assert.Equal(entry.result, cpu.Register[1], entry.name)
		assert.Equal(entry.b, cpu.Register[2], entry.name)
		assert.Equal(Flags(0), cpu.Flags, entry.name)
	}
}

func TestAluSameRegister(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu(nil)
	cpu.Register[0] = 0x81

	assert.NoError(cpu.alu(OP_ADD, 0, 0))
	assert.Equal(byte(0x02), cpu.Register[0])

	assert.NoError(cpu.alu(OP_XOR, 0, 0))
	assert.Equal(byte(0), cpu.Register[0])
}

func TestAluStackPointer(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu(nil)
	cpu.Register[0] = 4

	assert.NoError(cpu.alu(OP_SUB, REG_SP, 0))
	assert.Equal(byte(STACK_TOP-4), cpu.Register[REG_SP])
	assert.Equal(4, cpu.StackDepth())
}

func TestAluDivisionByZero(t *testing.T) {
	assert := assert.New(t)

	for _, op := range []Opcode{OP_DIV, OP_MOD} {
		cpu, _ := newTestCpu(t,
			byte(OP_LDI), 1, 99,
			byte(op), 1, 2,
			byte(OP_HLT),
		)

		err := cpu.Run()
		assert.ErrorIs(err, ErrDivisionByZero, op.String())
		assert.Equal(byte(99), cpu.Register[1], op.String())
		assert.Equal(byte(0), cpu.Register[2], op.String())
		assert.Equal(3, cpu.Pc, op.String())
	}
}

func TestAluCompare(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		a, b  byte
		flags Flags
	}{
		{1, 1, FLAG_EQUAL},
		{0, 1, FLAG_LESS},
		{1, 0, FLAG_GREATER},
		{0x7f, 0x80, FLAG_LESS},
		{0xff, 0xff, FLAG_EQUAL},
	}

	cpu := NewCpu(nil)
	for _, entry := range table {
		cpu.Register[0] = entry.a
		cpu.Register[1] = entry.b

		// Repeated compares must not accumulate.
		for range 3 {
			assert.NoError(cpu.alu(OP_CMP, 0, 1))
			assert.Equal(entry.flags, cpu.Flags)
		}
		assert.Equal(entry.a, cpu.Register[0])
		assert.Equal(entry.a == entry.b, cpu.Flags.Equal())
		assert.Equal(entry.a < entry.b, cpu.Flags.Less())
		assert.Equal(entry.a > entry.b, cpu.Flags.Greater())
	}
}

func TestAluUnsupported(t *testing.T) {
	assert := assert.New(t)

	for _, op := range []Opcode{0b10100101, 0b10100110, 0b10101001, 0b10101111, 0b00100000, 0b11100000} {
		cpu, _ := newTestCpu(t, byte(op), 0, 1, 0)
		cpu.Register[0] = 5

		err := cpu.Run()
		assert.ErrorIs(err, ErrUnsupportedAluOperation, op.String())
		assert.Equal(byte(5), cpu.Register[0])
		assert.Equal(0, cpu.Pc)
	}
}
