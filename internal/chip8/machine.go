package chip8

import (
	"fmt"
	"math/rand/v2"

	"github.com/retroenv/retrogolib/log"
)

// Machine is the complete state of a CHIP-8 virtual machine. A machine is
// not safe for concurrent use, with the exception of its Timers.
type Machine struct {
	memory [MemorySize]byte
	v      [RegisterCount]uint8
	index  uint16
	pc     uint16
	stack  [StackSize]uint16
	sp     uint8

	timers  Timers
	keys    Keys
	display Frame

	displayDirty bool

	quirks Quirks
	random func() uint8
	logger *log.Logger
}

// Option configures a Machine.
type Option func(*Machine)

// WithLogger sets a logger that receives diagnostics about tolerated
// anomalies such as unrecognized instructions.
func WithLogger(logger *log.Logger) Option {
	return func(m *Machine) {
		m.logger = logger
	}
}

// WithRandomSource sets the source of the random numbers returned by the
// CXNN instruction. Use a seeded source for reproducible runs.
func WithRandomSource(src rand.Source) Option {
	return func(m *Machine) {
		rng := rand.New(src)
		m.random = func() uint8 {
			return uint8(rng.UintN(256))
		}
	}
}

// New returns a machine in its initial state with the font table loaded and
// the program counter at ProgramStart.
func New(quirks Quirks, options ...Option) *Machine {
	m := &Machine{
		quirks: quirks,
		random: func() uint8 {
			return uint8(rand.UintN(256))
		},
	}
	for _, option := range options {
		option(m)
	}
	m.Reset()
	return m
}

// Reset returns the machine to its initial state. Memory is cleared, so a
// program has to be loaded again.
func (m *Machine) Reset() {
	m.memory = [MemorySize]byte{}
	copy(m.memory[FontStart:], Font[:])
	m.v = [RegisterCount]uint8{}
	m.index = 0
	m.pc = ProgramStart
	m.stack = [StackSize]uint16{}
	m.sp = 0
	m.timers.reset()
	m.keys = Keys{}
	m.display.Clear()
	m.displayDirty = false
}

// LoadProgram copies a program image into memory starting at ProgramStart.
// Images larger than MaxProgramSize are truncated. It returns the number of
// bytes copied.
func (m *Machine) LoadProgram(image []byte) int {
	return copy(m.memory[ProgramStart:], image)
}

// Quirks returns the quirk configuration the machine was created with.
func (m *Machine) Quirks() Quirks {
	return m.quirks
}

// Timers returns the delay and sound timers. They can be ticked from a
// different goroutine than the one stepping the machine.
func (m *Machine) Timers() *Timers {
	return &m.timers
}

// Frame returns a copy of the display buffer.
func (m *Machine) Frame() Frame {
	return m.display
}

// DisplayDirty returns whether the last step changed the display buffer.
func (m *Machine) DisplayDirty() bool {
	return m.displayDirty
}

// SoundActive returns whether the tone should be audible.
func (m *Machine) SoundActive() bool {
	return m.timers.SoundActive()
}

// PC returns the program counter.
func (m *Machine) PC() uint16 {
	return m.pc
}

// Peek returns the byte stored at the given address.
func (m *Machine) Peek(address uint16) (byte, error) {
	return m.read(int(address))
}

// State is a snapshot of the registers of a machine.
type State struct {
	PC    uint16
	Index uint16
	SP    uint8
	V     [RegisterCount]uint8
	Stack [StackSize]uint16
	Delay uint8
	Sound uint8
}

// State returns a snapshot of the machine registers.
func (m *Machine) State() State {
	return State{
		PC:    m.pc,
		Index: m.index,
		SP:    m.sp,
		V:     m.v,
		Stack: m.stack,
		Delay: m.timers.Delay(),
		Sound: m.timers.Sound(),
	}
}

func (s State) String() string {
	return fmt.Sprintf("PC=$%03X I=$%03X SP=%d DT=%d ST=%d V=% X", s.PC, s.Index, s.SP, s.Delay, s.Sound, s.V[:])
}

func (m *Machine) read(address int) (byte, error) {
	if address < 0 || address > MaxAddress {
		return 0, addressError(address)
	}
	return m.memory[address], nil
}

// checkRange verifies that count bytes starting at address are addressable.
func checkRange(address, count int) error {
	if address < 0 || address+count-1 > MaxAddress {
		return addressError(address + count - 1)
	}
	return nil
}
