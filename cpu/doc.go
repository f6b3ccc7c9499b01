// Package cpu implements the execution engine of the LS-8 system.
//
// The LS-8 is an 8-bit machine with 256 bytes of memory, eight byte-wide
// registers (r0-r7, where r7 is the stack pointer), a program counter,
// an instruction register, and a three-way comparison flag register.
// The stack descends from 0xf4 and shares memory with the program.
//
// Each opcode byte is laid out as AABCDDDD: AA is the operand count,
// B routes the instruction to the ALU, C marks instructions that set
// the program counter themselves, and DDDD identifies the instruction.
package cpu
