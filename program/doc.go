// Package program builds LS-8 memory images.
//
// A Program is produced either by a Loader, from the text format where
// each line holds one byte as eight binary digits, or by an Assembler,
// from LS-8 mnemonics. Both keep the source line of every byte so the
// emulator can report where a fault happened.
package program
