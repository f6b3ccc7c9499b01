package cpu

// dispatch executes a non-ALU instruction with its (up to two) operand
// bytes. Instructions that set the PC update cpu.Pc themselves.
func (cpu *Cpu) dispatch(op Opcode, arg1, arg2 byte) (err error) {
	switch op {
	case OP_HLT:
		cpu.Halted = true
	case OP_LDI:
		err = cpu.SetRegister(int(arg1), int(arg2))
	case OP_PRN:
		var value byte
		value, err = cpu.GetRegister(int(arg1))
		if err != nil {
			return
		}
		if cpu.Output != nil {
			err = cpu.Output.Print(value)
		}
	case OP_PUSH:
		var value byte
		value, err = cpu.GetRegister(int(arg1))
		if err != nil {
			return
		}
		err = cpu.Push(value)
	case OP_POP:
		err = validRegister(int(arg1))
		if err != nil {
			return
		}
		var value byte
		value, err = cpu.Pop()
		if err != nil {
			return
		}
		cpu.Register[arg1] = value
	case OP_CALL:
		var target byte
		target, err = cpu.GetRegister(int(arg1))
		if err != nil {
			return
		}
		ret := cpu.Pc + op.Size()
		if ret >= MEMORY_SIZE {
			err = ErrAddress(ret)
			return
		}
		err = cpu.Push(byte(ret))
		if err != nil {
			return
		}
		cpu.Pc = int(target)
	case OP_RET:
		var target byte
		target, err = cpu.Pop()
		if err != nil {
			return
		}
		cpu.Pc = int(target)
	case OP_JMP:
		err = cpu.jump(op, arg1, true)
	case OP_JEQ:
		err = cpu.jump(op, arg1, cpu.Flags.Equal())
	case OP_JNE:
		err = cpu.jump(op, arg1, !cpu.Flags.Equal())
	default:
		err = ErrUnsupportedInstruction
	}

	return
}

// jump sets the PC to the value of register reg if taken, otherwise
// steps over the instruction.
func (cpu *Cpu) jump(op Opcode, reg byte, taken bool) (err error) {
	target, err := cpu.GetRegister(int(reg))
	if err != nil {
		return
	}

	if taken {
		cpu.Pc = int(target)
	} else {
		cpu.Pc += op.Size()
	}

	return
}
