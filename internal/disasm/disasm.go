// Package disasm formats CHIP-8 instruction words as assembly mnemonics.
// It is used for instruction tracing of the interpreter and for ROM listings.
package disasm

import (
	"fmt"
	"io"
	"slices"

	"github.com/CalvoM/chip-8/internal/machine"
	"github.com/retroenv/retrogolib/arch/cpu/chip8"
)

const labelNaming = "_label_%04x"

// Line is a single disassembled instruction word.
type Line struct {
	Address uint16
	Data    []byte
	Code    string

	Target    uint16 // referenced program address of jp, call and ld I
	HasTarget bool
}

// Lookup returns the instruction definition matching the word, or nil if the
// word is not a known instruction.
func Lookup(word uint16) *chip8.Instruction {
	firstNibble := (word & 0xF000) >> 12
	for _, op := range chip8.Opcodes[int(firstNibble)] {
		if op.Info.Mask&word == op.Info.Value {
			return op.Instruction
		}
	}
	return nil
}

// Format returns the assembly representation of an instruction word.
// Unknown words are formatted as data.
func Format(word uint16) string {
	ins := Lookup(word)
	if ins == nil {
		return fmt.Sprintf(".word $%04X", word)
	}

	if params := formatInstruction(ins.Name, word); params != "" {
		return fmt.Sprintf("%s %s", ins.Name, params)
	}
	return ins.Name
}

// List disassembles a program that is loaded at machine.ProgramStart.
// A trailing odd byte is output as a data byte.
func List(program []byte) []Line {
	lines := make([]Line, 0, len(program)/2+1)

	for i := 0; i < len(program); i += 2 {
		address := uint16(machine.ProgramStart + i)

		if i+1 >= len(program) {
			lines = append(lines, Line{
				Address: address,
				Data:    program[i : i+1],
				Code:    fmt.Sprintf(".byte $%02X", program[i]),
			})
			break
		}

		data := program[i : i+2]
		line := Line{
			Address: address,
			Data:    data,
			Code:    Format(uint16(data[0])<<8 | uint16(data[1])),
		}
		line.Target, line.HasTarget = extractTargetAddress(data)
		lines = append(lines, line)
	}

	return lines
}

// WriteListing writes the lines with labels for all referenced addresses.
func WriteListing(w io.Writer, lines []Line) error {
	labels := Targets(lines)

	for _, line := range lines {
		if _, ok := slices.BinarySearch(labels, line.Address); ok {
			if _, err := fmt.Fprintf(w, "%s:\n", labelName(line.Address)); err != nil {
				return fmt.Errorf("writing label: %w", err)
			}
		}

		if _, err := fmt.Fprintf(w, "  %-24s ; $%03X %s\n", line.Code, line.Address, hexBytes(line.Data)); err != nil {
			return fmt.Errorf("writing line: %w", err)
		}
	}

	return nil
}

// Targets returns the sorted list of program addresses referenced by the lines.
func Targets(lines []Line) []uint16 {
	seen := make(map[uint16]struct{})
	var targets []uint16
	for _, line := range lines {
		if !line.HasTarget {
			continue
		}
		if _, ok := seen[line.Target]; ok {
			continue
		}
		seen[line.Target] = struct{}{}
		targets = append(targets, line.Target)
	}

	slices.Sort(targets)
	return targets
}

func labelName(address uint16) string {
	if address == machine.ProgramStart {
		return "Start"
	}
	return fmt.Sprintf(labelNaming, address)
}

func hexBytes(data []byte) string {
	switch len(data) {
	case 1:
		return fmt.Sprintf("%02X", data[0])
	case 2:
		return fmt.Sprintf("%02X %02X", data[0], data[1])
	default:
		return ""
	}
}
