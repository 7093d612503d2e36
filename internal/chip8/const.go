package chip8

// Memory layout and machine dimensions.
const (
	// MemorySize is the number of addressable bytes.
	MemorySize = 4096

	// MaxAddress is the highest valid memory address.
	MaxAddress = MemorySize - 1

	// ProgramStart is the address that program images are loaded to and
	// where execution begins.
	ProgramStart = 0x200

	// MaxProgramSize is the largest program image that fits into memory.
	MaxProgramSize = MemorySize - ProgramStart

	// FontStart is the address of the built-in hexadecimal font.
	FontStart = 0x050

	// GlyphHeight is the number of bytes (rows) of a single font glyph.
	GlyphHeight = 5

	RegisterCount = 16
	StackSize     = 16
	KeyCount      = 16

	DisplayWidth  = 64
	DisplayHeight = 32

	// InstructionSize is the width of every instruction in bytes.
	InstructionSize = 2

	// FlagRegister is the register overwritten by carry, borrow, shift and
	// collision results.
	FlagRegister = 0xF

	// indexMask keeps the index register within 12 bits.
	indexMask = 0x0FFF
)
