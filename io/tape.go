package io

import (
	"io"
	"strconv"
)

// Tape is a line-oriented output device. Every printed value is written
// to Output in decimal, followed by a newline.
type Tape struct {
	Output io.Writer

	buffer []byte
	Lines  int // Count of lines written since the last Rewind.
}

var _ Printer = (*Tape)(nil)

// Rewind zeros the line counter. The Output itself cannot be rewound.
func (tc *Tape) Rewind() {
	tc.Lines = 0
}

// Print writes value as a decimal line. A nil Output discards the value.
func (tc *Tape) Print(value byte) (err error) {
	if tc.Output == nil {
		tc.Lines++
		return
	}

	tc.buffer = strconv.AppendUint(tc.buffer[:0], uint64(value), 10)
	tc.buffer = append(tc.buffer, '\n')

	n, err := tc.Output.Write(tc.buffer)
	if err != nil {
		return
	}
	if n != len(tc.buffer) {
		err = ErrShortWrite
		return
	}

	tc.Lines++

	return
}
