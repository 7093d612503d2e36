package chip8

import (
	"math/rand/v2"
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

// newTestMachine returns a machine with a deterministic random source and
// the given instruction words loaded at ProgramStart.
func newTestMachine(t *testing.T, quirks Quirks, words ...uint16) *Machine {
	t.Helper()
	m := New(quirks,
		WithLogger(log.NewTestLogger(t)),
		WithRandomSource(rand.NewPCG(1, 2)),
	)
	m.LoadProgram(program(words...))
	return m
}

func program(words ...uint16) []byte {
	image := make([]byte, 0, len(words)*InstructionSize)
	for _, word := range words {
		image = append(image, byte(word>>8), byte(word))
	}
	return image
}

// run steps the machine count times without any key pressed.
func run(t *testing.T, m *Machine, count int) {
	t.Helper()
	for range count {
		_, err := m.Step(Keys{})
		assert.NoError(t, err)
	}
}
