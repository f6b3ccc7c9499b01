package program

import (
	"iter"
)

// Line is a line of source text with the bytes it generated.
type Line struct {
	LineNo    int      // Source line number, from 1.
	Address   int      // Address of the first byte.
	Words     []string // Source words.
	Bytes     []byte   // Generated bytes.
	LinkLabel string   // Label to resolve into the last byte.
}

// Program is a loadable memory image.
type Program struct {
	Lines []Line
}

// Debug is the source line containing an address.
type Debug struct {
	*Line
	Index int // Offset of the address within Line.Bytes.
}

// Debug finds the source line for address.
func (prog *Program) Debug(address int) (dbg Debug, ok bool) {
	for n, line := range prog.Lines {
		if address >= line.Address && address < line.Address+len(line.Bytes) {
			dbg = Debug{
				Line:  &prog.Lines[n],
				Index: address - line.Address,
			}
			ok = true
			break
		}
	}

	return
}

// Len returns the image size in bytes.
func (prog *Program) Len() (size int) {
	for _, line := range prog.Lines {
		size = max(size, line.Address+len(line.Bytes))
	}

	return
}

// Binary returns the memory image.
func (prog *Program) Binary() (bins []byte) {
	bins = make([]byte, prog.Len())
	for address, value := range prog.Bytes() {
		bins[address] = value
	}

	return
}

// Bytes iterates over every generated byte and its address.
func (prog *Program) Bytes() iter.Seq2[int, byte] {
	return func(yield func(address int, value byte) bool) {
		for _, line := range prog.Lines {
			for n, value := range line.Bytes {
				if !yield(line.Address+n, value) {
					return
				}
			}
		}
	}
}
