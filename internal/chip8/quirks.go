package chip8

import "strings"

// Quirks selects between divergent historical behaviors of some opcodes.
// The zero value is the behavior of modern interpreters.
type Quirks struct {
	// LegacyShift copies VY into VX before 8XY6 and 8XYE shift VX.
	LegacyShift bool
	// JumpWithVX makes BNNN jump to NNN+VX instead of NNN+V0.
	JumpWithVX bool
	// LegacyIndexing advances I by X after FX55 stores registers.
	LegacyIndexing bool
	// SingleStep runs the program one instruction at a time under control
	// of the host. It does not change opcode semantics.
	SingleStep bool
}

// String returns the names of all enabled quirks.
func (q Quirks) String() string {
	var enabled []string
	if q.LegacyShift {
		enabled = append(enabled, "legacy-shift")
	}
	if q.JumpWithVX {
		enabled = append(enabled, "jump-vx")
	}
	if q.LegacyIndexing {
		enabled = append(enabled, "legacy-indexing")
	}
	if q.SingleStep {
		enabled = append(enabled, "single-step")
	}
	if len(enabled) == 0 {
		return "none"
	}
	return strings.Join(enabled, ",")
}
