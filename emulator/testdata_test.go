package emulator

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fbzr/Computer-Architecture/program"
)

func TestEmulatorTestdata(t *testing.T) {
	table := []struct {
		file   string
		output string
	}{
		{"print8.ls8", "8\n"},
		{"mult.ls8", "72\n"},
		{"stack.ls8", "3\n2\n1\n"},
		{"sctest.asm", "1\n2\n3\n4\n"},
	}

	for _, entry := range table {
		t.Run(entry.file, func(t *testing.T) {
			assert := assert.New(t)

			inf, err := os.Open(filepath.Join("testdata", entry.file))
			if err != nil {
				t.Fatal(err)
			}
			defer inf.Close()

			emu := NewEmulator()

			var prog *program.Program
			if filepath.Ext(entry.file) == ".asm" {
				prog, err = emu.Assembler().Parse(inf)
			} else {
				ld := &program.Loader{}
				prog, err = ld.Parse(inf)
			}
			assert.NoError(err)
			if err != nil {
				t.Fatal(err)
			}

			output := &bytes.Buffer{}
			emu.Tape.Output = output
			emu.Program = prog

			assert.NoError(emu.Reset())
			assert.NoError(emu.Run())
			assert.Equal(entry.output, output.String())
			assert.True(emu.Cpu.Halted)
		})
	}
}
