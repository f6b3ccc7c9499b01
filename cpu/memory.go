package cpu

const (
	MEMORY_SIZE = 256 // Addressable bytes.
)

// Memory is the flat LS-8 address space, shared by program and stack.
type Memory [MEMORY_SIZE]byte

// Read returns the byte at address.
func (mem *Memory) Read(address int) (value byte, err error) {
	if address < 0 || address >= len(mem) {
		err = ErrAddress(address)
		return
	}

	value = mem[address]
	return
}

// Write stores the low 8 bits of value at address.
func (mem *Memory) Write(address int, value int) (err error) {
	if address < 0 || address >= len(mem) {
		err = ErrAddress(address)
		return
	}

	mem[address] = byte(value & 0xff)
	return
}

// Load clears memory and copies program to address 0.
func (mem *Memory) Load(program []byte) (err error) {
	if len(program) > len(mem) {
		err = ErrAddress(len(mem))
		return
	}

	clear(mem[:])
	copy(mem[:], program)

	return
}
