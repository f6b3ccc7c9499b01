package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/term"

	"github.com/fbzr/Computer-Architecture/emulator"
	"github.com/fbzr/Computer-Architecture/program"
	"github.com/fbzr/Computer-Architecture/translate"
)

var f = translate.From

func main() {
	var assemble bool
	var step bool
	var verbose bool
	var lang string

	flag.BoolVar(&assemble, "a", false, "Assemble mnemonics instead of loading binary text (default for .asm files)")
	flag.BoolVar(&step, "s", false, "Single step, printing a trace before each instruction")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.StringVar(&lang, "locale", "", "Message language as a BCP 47 tag (default from the system)")

	flag.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), f("usage: %v [-a] [-s] [-v] [-locale tag] program\n", os.Args[0]))
		flag.PrintDefaults()
	}

	flag.Parse()

	if lang != "" {
		err := translate.SetLocale(lang)
		if err != nil {
			log.Fatalf("-locale %v: %v", lang, err)
		}
	}

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	path := flag.Arg(0)
	if strings.EqualFold(filepath.Ext(path), ".asm") {
		assemble = true
	}

	inf, err := os.Open(path)
	if err != nil {
		log.Fatalf("%v: %v", path, err)
	}
	defer inf.Close()

	emu := emulator.NewEmulator()
	emu.Verbose = verbose
	emu.Tape.Output = os.Stdout

	var prog *program.Program
	if assemble {
		prog, err = emu.Assembler().Parse(inf)
	} else {
		ld := &program.Loader{Verbose: verbose}
		prog, err = ld.Parse(inf)
	}
	if err != nil {
		log.Fatalf("%v: %v", path, err)
	}

	emu.Program = prog
	err = emu.Reset()
	if err != nil {
		log.Fatalf("%v: %v", path, err)
	}

	if step {
		err = runStep(emu)
	} else {
		err = emu.Run()
	}
	if err != nil {
		log.Fatalf("%v: %v", path, err)
	}
}

// runStep traces every instruction. When stdin is a terminal, it waits
// for a line of input before each one; 'q' stops and 'c' runs to the end.
func runStep(emu *emulator.Emulator) (err error) {
	interactive := term.IsTerminal(int(os.Stdin.Fd()))
	input := bufio.NewReader(os.Stdin)

	for done := false; !done; {
		fmt.Fprintln(os.Stderr, emu.Cpu.Trace())
		if interactive {
			fmt.Fprint(os.Stderr, f("step> "))
			var cmd string
			cmd, err = input.ReadString('\n')
			if err != nil {
				return
			}
			switch strings.TrimSpace(cmd) {
			case "q":
				return
			case "c":
				return emu.Run()
			case "r":
				fmt.Fprint(os.Stderr, emu.Cpu.String())
				continue
			}
		}
		done, err = emu.Tick()
		if err != nil {
			return
		}
	}

	return
}
