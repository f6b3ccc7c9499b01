package cpu

const (
	STACK_TOP = 0xf4 // Boot value of the stack pointer.
)

// Push decrements the stack pointer and stores value at the new top.
// The stack pointer is unchanged if the push would leave memory.
func (cpu *Cpu) Push(value byte) (err error) {
	sp := int(cpu.Register[REG_SP]) - 1

	err = cpu.Memory.Write(sp, int(value))
	if err != nil {
		return
	}

	cpu.Register[REG_SP] = byte(sp)
	return
}

// Pop returns the value at the top of the stack and increments the
// stack pointer.
func (cpu *Cpu) Pop() (value byte, err error) {
	value, ok := cpu.Peek()
	if !ok {
		err = ErrStackEmpty
		return
	}

	cpu.Register[REG_SP]++
	return
}

// Peek returns the value at the top of the stack, if any.
func (cpu *Cpu) Peek() (value byte, ok bool) {
	if cpu.StackEmpty() {
		return
	}

	return cpu.Memory[cpu.Register[REG_SP]], true
}

// StackEmpty is true when the stack pointer is at or above its boot value.
func (cpu *Cpu) StackEmpty() bool {
	return cpu.Register[REG_SP] >= STACK_TOP
}

// StackDepth returns the number of bytes pushed.
func (cpu *Cpu) StackDepth() int {
	if cpu.StackEmpty() {
		return 0
	}

	return STACK_TOP - int(cpu.Register[REG_SP])
}
