// Package disasm formats and classifies CHIP-8 instruction words.
//
// Opcodes are resolved through the CHIP-8 opcode table of retrogolib, the
// mnemonics and operand notation follow the usual CHIP-8 assembler syntax,
// for example "ld V1, $2A", "drw V0, V1, $5" or "ld [I], V3". Words that do
// not match any table entry are rendered as ".word $XXXX".
package disasm
