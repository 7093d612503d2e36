// Package chip8 implements the CHIP-8 virtual machine.
//
// # Machine
//
// The machine owns 4KB of memory, 16 general purpose 8-bit registers (V0-VF),
// a 12-bit index register, the program counter, a 16 entry call stack, the
// delay and sound timers, the 16 key input latch and the 64x32 monochrome
// display buffer. Register VF doubles as carry, borrow and collision flag.
//
// # Memory Layout
//
//	0x000-0x04F: unused
//	0x050-0x09F: built-in hexadecimal font (16 glyphs, 5 bytes each)
//	0x0A0-0x1FF: unused
//	0x200-0xFFF: program image
//
// # Execution
//
// Step runs one fetch-decode-execute cycle. Instructions are decoded into an
// Instruction value carrying its Kind and operand fields, then executed.
// Fatal conditions such as out of range memory accesses or call stack
// misuse are returned as *Fault values; unrecognized bit patterns inside a
// known opcode family are executed as no-ops.
//
// The timers are decremented independently of instruction execution by
// calling Timers().Tick at a fixed rate, usually 60 times per second, from
// any goroutine.
//
// # Quirks
//
// Quirks toggles the behavior of opcodes that historical interpreters
// disagree on: the shift instructions, jump with offset and the register
// store instruction.
package chip8
