package disasm

import (
	chip8cpu "github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// Opcode is an instruction word matched against the CHIP-8 opcode table.
type Opcode struct {
	Word uint16
	ins  *chip8cpu.Instruction
}

// Lookup finds the opcode table entry matching the given instruction word.
func Lookup(word uint16) (Opcode, bool) {
	firstNibble := (word & 0xF000) >> 12
	for _, op := range chip8cpu.Opcodes[int(firstNibble)] {
		if op.Info.Mask&word == op.Info.Value {
			if op.Instruction == nil {
				break
			}
			return Opcode{Word: word, ins: op.Instruction}, true
		}
	}
	return Opcode{Word: word}, false
}

// Name returns the instruction mnemonic, or an empty string for unknown words.
func (o Opcode) Name() string {
	if o.ins == nil {
		return ""
	}
	return o.ins.Name
}

// IsJump returns true if the instruction is a jump instruction.
func (o Opcode) IsJump() bool {
	return o.ins == chip8cpu.JpInst
}

// IsCall returns true if the instruction is a subroutine call.
func (o Opcode) IsCall() bool {
	return o.ins == chip8cpu.CallInst
}

// IsReturn returns true if the instruction returns from a subroutine.
func (o Opcode) IsReturn() bool {
	return o.ins == chip8cpu.RetInst
}

// IsSkip returns true if the instruction conditionally skips the next one.
func (o Opcode) IsSkip() bool {
	if o.ins == nil {
		return false
	}
	return chip8cpu.SkipInstructions.Contains(o.ins.Name)
}

// IsDataReference returns true for ld I, addr which points the index
// register at data.
func (o Opcode) IsDataReference() bool {
	return o.ins == chip8cpu.LdInst && o.Word&0xF000 == 0xA000
}

// ReadsMemory returns true if the instruction reads memory at I.
func (o Opcode) ReadsMemory() bool {
	if o.ins == nil {
		return false
	}
	return chip8cpu.MemoryReadInstructions.Contains(o.ins.Name)
}

// WritesMemory returns true if the instruction writes memory at I.
func (o Opcode) WritesMemory() bool {
	if o.ins == nil {
		return false
	}
	return chip8cpu.MemoryWriteInstructions.Contains(o.ins.Name)
}

// Target returns the absolute address referenced by a jump, call or
// ld I, addr instruction. The offset form of jp has no static target.
func (o Opcode) Target() (uint16, bool) {
	switch o.Word & 0xF000 {
	case 0x1000, 0x2000:
		return o.Word & 0x0FFF, o.IsJump() || o.IsCall()
	case 0xA000:
		return o.Word & 0x0FFF, o.IsDataReference()
	}
	return 0, false
}
