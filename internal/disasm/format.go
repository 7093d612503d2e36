package disasm

import (
	"fmt"

	chip8cpu "github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// Format returns the assembler notation of an instruction word.
func Format(word uint16) string {
	op, ok := Lookup(word)
	if !ok {
		return fmt.Sprintf(".word $%04X", word)
	}
	return op.String()
}

// String returns the assembler notation of the opcode.
func (o Opcode) String() string {
	if o.ins == nil {
		return fmt.Sprintf(".word $%04X", o.Word)
	}
	if params := formatParams(o.ins.Name, o.Word); params != "" {
		return fmt.Sprintf("%s %s", o.ins.Name, params)
	}
	return o.ins.Name
}

// formatParams formats the operands of an instruction.
func formatParams(name string, opcode uint16) string {
	switch name {
	case chip8cpu.ClsName, chip8cpu.RetName:
		return ""
	case chip8cpu.JpName:
		return formatJump(opcode)
	case chip8cpu.CallName:
		return fmt.Sprintf("$%03X", opcode&0x0FFF)
	case chip8cpu.SeName, chip8cpu.SneName:
		return formatCompare(opcode)
	case chip8cpu.LdName:
		return formatLoad(opcode)
	case chip8cpu.AddName:
		return formatAdd(opcode)
	case chip8cpu.OrName, chip8cpu.AndName, chip8cpu.XorName, chip8cpu.SubName, chip8cpu.SubnName:
		return fmt.Sprintf("V%X, V%X", registerX(opcode), registerY(opcode))
	case chip8cpu.ShrName, chip8cpu.ShlName, chip8cpu.SkpName, chip8cpu.SknpName:
		return fmt.Sprintf("V%X", registerX(opcode))
	case chip8cpu.RndName:
		return fmt.Sprintf("V%X, $%02X", registerX(opcode), opcode&0x00FF)
	case chip8cpu.DrwName:
		return fmt.Sprintf("V%X, V%X, $%X", registerX(opcode), registerY(opcode), opcode&0x000F)
	}
	return ""
}

// formatJump formats jp addr and jp V0, addr.
func formatJump(opcode uint16) string {
	switch opcode & 0xF000 {
	case 0x1000:
		return fmt.Sprintf("$%03X", opcode&0x0FFF)
	case 0xB000:
		return fmt.Sprintf("V0, $%03X", opcode&0x0FFF)
	}
	return ""
}

// formatCompare formats se and sne in their immediate and register forms.
func formatCompare(opcode uint16) string {
	x := registerX(opcode)
	switch opcode & 0xF000 {
	case 0x3000, 0x4000:
		return fmt.Sprintf("V%X, $%02X", x, opcode&0x00FF)
	case 0x5000, 0x9000:
		return fmt.Sprintf("V%X, V%X", x, registerY(opcode))
	}
	return ""
}

// formatLoad formats all forms of ld.
func formatLoad(opcode uint16) string {
	x := registerX(opcode)
	switch opcode & 0xF000 {
	case 0x6000:
		return fmt.Sprintf("V%X, $%02X", x, opcode&0x00FF)
	case 0x8000:
		return fmt.Sprintf("V%X, V%X", x, registerY(opcode))
	case 0xA000:
		return fmt.Sprintf("I, $%03X", opcode&0x0FFF)
	case 0xF000:
		return formatLoadMisc(x, opcode&0x00FF)
	}
	return ""
}

func formatLoadMisc(x, low uint16) string {
	switch low {
	case 0x07:
		return fmt.Sprintf("V%X, DT", x)
	case 0x0A:
		return fmt.Sprintf("V%X, K", x)
	case 0x15:
		return fmt.Sprintf("DT, V%X", x)
	case 0x18:
		return fmt.Sprintf("ST, V%X", x)
	case 0x29:
		return fmt.Sprintf("F, V%X", x)
	case 0x33:
		return fmt.Sprintf("B, V%X", x)
	case 0x55:
		return fmt.Sprintf("[I], V%X", x)
	case 0x65:
		return fmt.Sprintf("V%X, [I]", x)
	}
	return ""
}

// formatAdd formats add Vx, byte, add Vx, Vy and add I, Vx.
func formatAdd(opcode uint16) string {
	x := registerX(opcode)
	switch opcode & 0xF000 {
	case 0x7000:
		return fmt.Sprintf("V%X, $%02X", x, opcode&0x00FF)
	case 0x8000:
		return fmt.Sprintf("V%X, V%X", x, registerY(opcode))
	case 0xF000:
		return fmt.Sprintf("I, V%X", x)
	}
	return ""
}

func registerX(opcode uint16) uint16 {
	return (opcode & 0x0F00) >> 8
}

func registerY(opcode uint16) uint16 {
	return (opcode & 0x00F0) >> 4
}
