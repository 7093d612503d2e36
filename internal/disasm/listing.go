package disasm

import (
	"fmt"
	"io"
	"strings"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrogolib/set"
)

// StartLabel is the label of the program entry point.
const StartLabel = "Start"

// Options of the listing writer.
type Options struct {
	OffsetComments bool // append address and instruction word to every line
}

// Listing writes a linear disassembly of a program image that is loaded at
// chip8.ProgramStart. Targets of jumps, calls and index register loads that
// fall inside the image are labeled.
func Listing(w io.Writer, image []byte, options Options) error {
	labels := collectLabels(image)

	end := chip8.ProgramStart + len(image)
	for address := chip8.ProgramStart; address < end; address += chip8.InstructionSize {
		if err := writeLabel(w, labels, address); err != nil {
			return err
		}

		offset := address - chip8.ProgramStart
		if offset+1 >= len(image) {
			line := fmt.Sprintf(".byte $%02x", image[offset])
			return writeCodeLine(w, line, fmt.Sprintf("$%03X", address), options)
		}

		word := uint16(image[offset])<<8 | uint16(image[offset+1])
		code := formatWithLabels(word, labels)
		if err := writeCodeLine(w, code, fmt.Sprintf("$%03X %04X", address, word), options); err != nil {
			return err
		}
	}
	return nil
}

// collectLabels returns all addresses inside the image that are referenced
// by a jump, call or data reference. Lines are written at instruction
// boundaries only, so targets between two lines stay numeric.
func collectLabels(image []byte) set.Set[uint16] {
	labels := set.New[uint16]()
	end := uint16(chip8.ProgramStart + len(image))

	for offset := 0; offset+1 < len(image); offset += chip8.InstructionSize {
		word := uint16(image[offset])<<8 | uint16(image[offset+1])
		op, ok := Lookup(word)
		if !ok {
			continue
		}
		target, ok := op.Target()
		if !ok || target < chip8.ProgramStart || target >= end ||
			(target-chip8.ProgramStart)%chip8.InstructionSize != 0 {
			continue
		}
		labels.Add(target)
	}
	return labels
}

func labelName(address int) string {
	if address == chip8.ProgramStart {
		return StartLabel
	}
	return fmt.Sprintf("label_%03X", address)
}

// formatWithLabels formats an instruction word and replaces its target
// address operand by the label of the target.
func formatWithLabels(word uint16, labels set.Set[uint16]) string {
	op, ok := Lookup(word)
	if !ok {
		return op.String()
	}

	code := op.String()
	target, ok := op.Target()
	if !ok || !labels.Contains(target) {
		return code
	}
	return strings.Replace(code, fmt.Sprintf("$%03X", target), labelName(int(target)), 1)
}

func writeLabel(w io.Writer, labels set.Set[uint16], address int) error {
	if address != chip8.ProgramStart && !labels.Contains(uint16(address)) {
		return nil
	}

	if address > chip8.ProgramStart {
		if _, err := fmt.Fprintln(w); err != nil {
			return fmt.Errorf("writing line: %w", err)
		}
	}
	if _, err := fmt.Fprintf(w, "%s:\n", labelName(address)); err != nil {
		return fmt.Errorf("writing label: %w", err)
	}
	return nil
}

func writeCodeLine(w io.Writer, code, comment string, options Options) error {
	if options.OffsetComments {
		code = fmt.Sprintf("%-30s ; %s", code, comment)
	}
	if _, err := fmt.Fprintf(w, "  %s\n", code); err != nil {
		return fmt.Errorf("writing line: %w", err)
	}
	return nil
}
