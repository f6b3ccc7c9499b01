package cpu

// alu performs an ALU operation on two registers. The result replaces
// reg_a, except for CMP, which only updates the flags.
func (cpu *Cpu) alu(op Opcode, reg_a, reg_b byte) (err error) {
	if !op.Valid() {
		err = ErrUnsupportedAluOperation
		return
	}

	a, err := cpu.GetRegister(int(reg_a))
	if err != nil {
		return
	}

	var b byte
	if op.Operands() > 1 {
		b, err = cpu.GetRegister(int(reg_b))
		if err != nil {
			return
		}
	}

	var result int
	switch op {
	case OP_ADD:
		result = int(a) + int(b)
	case OP_SUB:
		result = int(a) - int(b)
	case OP_MUL:
		result = int(a) * int(b)
	case OP_DIV:
		if b == 0 {
			err = ErrDivisionByZero
			return
		}
		result = int(a) / int(b)
	case OP_MOD:
		if b == 0 {
			err = ErrDivisionByZero
			return
		}
		result = int(a) % int(b)
	case OP_AND:
		result = int(a & b)
	case OP_OR:
		result = int(a | b)
	case OP_XOR:
		result = int(a ^ b)
	case OP_NOT:
		result = int(^a)
	case OP_SHL:
		result = int(a) << b
	case OP_SHR:
		result = int(a) >> b
	case OP_CMP:
		cpu.Flags = compare(a, b)
		return
	default:
		err = ErrUnsupportedAluOperation
		return
	}

	err = cpu.SetRegister(int(reg_a), result)

	return
}
