package program

import (
	"bufio"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/fbzr/Computer-Architecture/cpu"
)

// Loader reads the LS-8 binary text format: one byte per line, written
// as eight binary digits. Text after '#' is a comment, and blank lines
// are skipped. Words after the byte are ignored.
type Loader struct {
	Verbose bool // If set, logs every parsed byte.
}

// Parse reads a program image in binary text format.
func (ld *Loader) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = ErrSyntax{LineNo: lineno, Line: line, Err: err}
			prog = nil
		}
	}()

	prog = &Program{}
	address := 0

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		text, _, _ = strings.Cut(text, "#")
		line = strings.TrimSpace(text)
		words := strings.Fields(line)
		if len(words) == 0 {
			continue
		}

		word := words[0]
		if len(word) != 8 {
			err = ErrParseBinary
			return
		}
		var value uint64
		value, err = strconv.ParseUint(word, 2, 8)
		if err != nil {
			err = ErrParseBinary
			return
		}

		if address >= cpu.MEMORY_SIZE {
			err = ErrProgramTooLarge
			return
		}

		if ld.Verbose {
			log.Printf("%v: %02x: %08b", lineno, address, value)
		}

		prog.Lines = append(prog.Lines, Line{
			LineNo:  lineno,
			Address: address,
			Words:   words,
			Bytes:   []byte{byte(value)},
		})
		address++
	}

	line = ""
	err = scanner.Err()

	return
}
