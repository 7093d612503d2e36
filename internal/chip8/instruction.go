package chip8

import "fmt"

// Kind identifies the operation of a decoded instruction.
type Kind uint8

// Instruction kinds, one per opcode of the base instruction set.
const (
	KindUnknown Kind = iota // unrecognized bit pattern within a known family
	KindSys                 // 0NNN legacy machine code call, not implemented
	KindCls                 // 00E0
	KindRet                 // 00EE
	KindJump                // 1NNN
	KindCall                // 2NNN
	KindSkipEqImm           // 3XNN
	KindSkipNeImm           // 4XNN
	KindSkipEqReg           // 5XY0
	KindLoadImm             // 6XNN
	KindAddImm              // 7XNN
	KindMove                // 8XY0
	KindOr                  // 8XY1
	KindAnd                 // 8XY2
	KindXor                 // 8XY3
	KindAdd                 // 8XY4
	KindSub                 // 8XY5
	KindShr                 // 8XY6
	KindSubn                // 8XY7
	KindShl                 // 8XYE
	KindSkipNeReg           // 9XY0
	KindLoadIndex           // ANNN
	KindJumpOffset          // BNNN
	KindRandom              // CXNN
	KindDraw                // DXYN
	KindSkipKey             // EX9E
	KindSkipNotKey          // EXA1
	KindLoadDelay           // FX07
	KindWaitKey             // FX0A
	KindSetDelay            // FX15
	KindSetSound            // FX18
	KindAddIndex            // FX1E
	KindFont                // FX29
	KindBCD                 // FX33
	KindStore               // FX55
	KindLoad                // FX65

	kindCount
)

// operand layouts of the instruction word.
type layout uint8

const (
	layoutNone layout = iota // all bits fixed
	layoutNNN                // ?NNN
	layoutXNN                // ?XNN
	layoutXY                 // ?XY?
	layoutXYN                // ?XYN
	layoutX                  // ?X??
)

type kindInfo struct {
	name   string
	base   uint16 // fixed bits of the opcode
	layout layout
}

var kinds = [kindCount]kindInfo{
	KindUnknown:    {"unknown", 0x0000, layoutNone},
	KindSys:        {"sys", 0x0000, layoutNNN},
	KindCls:        {"cls", 0x00E0, layoutNone},
	KindRet:        {"ret", 0x00EE, layoutNone},
	KindJump:       {"jump", 0x1000, layoutNNN},
	KindCall:       {"call", 0x2000, layoutNNN},
	KindSkipEqImm:  {"skip-eq-imm", 0x3000, layoutXNN},
	KindSkipNeImm:  {"skip-ne-imm", 0x4000, layoutXNN},
	KindSkipEqReg:  {"skip-eq-reg", 0x5000, layoutXY},
	KindLoadImm:    {"load-imm", 0x6000, layoutXNN},
	KindAddImm:     {"add-imm", 0x7000, layoutXNN},
	KindMove:       {"move", 0x8000, layoutXY},
	KindOr:         {"or", 0x8001, layoutXY},
	KindAnd:        {"and", 0x8002, layoutXY},
	KindXor:        {"xor", 0x8003, layoutXY},
	KindAdd:        {"add", 0x8004, layoutXY},
	KindSub:        {"sub", 0x8005, layoutXY},
	KindShr:        {"shr", 0x8006, layoutXY},
	KindSubn:       {"subn", 0x8007, layoutXY},
	KindShl:        {"shl", 0x800E, layoutXY},
	KindSkipNeReg:  {"skip-ne-reg", 0x9000, layoutXY},
	KindLoadIndex:  {"load-index", 0xA000, layoutNNN},
	KindJumpOffset: {"jump-offset", 0xB000, layoutNNN},
	KindRandom:     {"random", 0xC000, layoutXNN},
	KindDraw:       {"draw", 0xD000, layoutXYN},
	KindSkipKey:    {"skip-key", 0xE09E, layoutX},
	KindSkipNotKey: {"skip-not-key", 0xE0A1, layoutX},
	KindLoadDelay:  {"load-delay", 0xF007, layoutX},
	KindWaitKey:    {"wait-key", 0xF00A, layoutX},
	KindSetDelay:   {"set-delay", 0xF015, layoutX},
	KindSetSound:   {"set-sound", 0xF018, layoutX},
	KindAddIndex:   {"add-index", 0xF01E, layoutX},
	KindFont:       {"font", 0xF029, layoutX},
	KindBCD:        {"bcd", 0xF033, layoutX},
	KindStore:      {"store", 0xF055, layoutX},
	KindLoad:       {"load", 0xF065, layoutX},
}

// Kinds returns all kinds of the base instruction set that have a defined
// behavior, excluding KindUnknown.
func Kinds() []Kind {
	result := make([]Kind, 0, kindCount-1)
	for k := KindSys; k < kindCount; k++ {
		result = append(result, k)
	}
	return result
}

func (k Kind) String() string {
	if k >= kindCount {
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
	return kinds[k].name
}

// Instruction is a decoded instruction word.
type Instruction struct {
	Kind Kind
	Word uint16

	X   uint8  // bits 8-11, register index
	Y   uint8  // bits 4-7, register index
	N   uint8  // bits 0-3, literal
	NN  uint8  // bits 0-7, literal byte
	NNN uint16 // bits 0-11, literal address
}

func (i Instruction) String() string {
	return fmt.Sprintf("%04X %s", i.Word, i.Kind)
}

// Encode returns the instruction word for a kind and its operands. Operands
// that are not part of the kind's layout are ignored.
func Encode(kind Kind, x, y, n uint8, nnn uint16) uint16 {
	if kind >= kindCount {
		return 0
	}
	info := kinds[kind]
	word := info.base
	xBits := uint16(x&0xF) << 8
	yBits := uint16(y&0xF) << 4

	switch info.layout {
	case layoutNNN:
		word |= nnn & 0x0FFF
	case layoutXNN:
		word |= xBits | nnn&0x00FF
	case layoutXY:
		word |= xBits | yBits
	case layoutXYN:
		word |= xBits | yBits | uint16(n&0xF)
	case layoutX:
		word |= xBits
	case layoutNone:
	}
	return word
}

// Decode splits an instruction word into its fields and identifies its kind.
func Decode(word uint16) Instruction {
	ins := Instruction{
		Word: word,
		X:    uint8(word>>8) & 0xF,
		Y:    uint8(word>>4) & 0xF,
		N:    uint8(word) & 0xF,
		NN:   uint8(word),
		NNN:  word & 0x0FFF,
	}
	ins.Kind = decodeKind(word, ins.N, ins.NN)
	return ins
}

func decodeKind(word uint16, n, nn uint8) Kind {
	switch word >> 12 {
	case 0x0:
		switch word {
		case 0x00E0:
			return KindCls
		case 0x00EE:
			return KindRet
		}
		return KindSys

	case 0x1:
		return KindJump
	case 0x2:
		return KindCall
	case 0x3:
		return KindSkipEqImm
	case 0x4:
		return KindSkipNeImm

	case 0x5:
		if n == 0 {
			return KindSkipEqReg
		}

	case 0x6:
		return KindLoadImm
	case 0x7:
		return KindAddImm

	case 0x8:
		return decodeArithmetic(n)

	case 0x9:
		if n == 0 {
			return KindSkipNeReg
		}

	case 0xA:
		return KindLoadIndex
	case 0xB:
		return KindJumpOffset
	case 0xC:
		return KindRandom
	case 0xD:
		return KindDraw

	case 0xE:
		switch nn {
		case 0x9E:
			return KindSkipKey
		case 0xA1:
			return KindSkipNotKey
		}

	case 0xF:
		return decodeMisc(nn)
	}
	return KindUnknown
}

func decodeArithmetic(n uint8) Kind {
	switch n {
	case 0x0:
		return KindMove
	case 0x1:
		return KindOr
	case 0x2:
		return KindAnd
	case 0x3:
		return KindXor
	case 0x4:
		return KindAdd
	case 0x5:
		return KindSub
	case 0x6:
		return KindShr
	case 0x7:
		return KindSubn
	case 0xE:
		return KindShl
	default:
		return KindUnknown
	}
}

func decodeMisc(nn uint8) Kind {
	switch nn {
	case 0x07:
		return KindLoadDelay
	case 0x0A:
		return KindWaitKey
	case 0x15:
		return KindSetDelay
	case 0x18:
		return KindSetSound
	case 0x1E:
		return KindAddIndex
	case 0x29:
		return KindFont
	case 0x33:
		return KindBCD
	case 0x55:
		return KindStore
	case 0x65:
		return KindLoad
	default:
		return KindUnknown
	}
}
