// Package host defines the collaborators the run loop uses to present the
// machine to the user.
package host

import "github.com/retroenv/retrochip8/internal/chip8"

// Renderer presents the display buffer.
type Renderer interface {
	Render(frame chip8.Frame) error
}

// Audio turns the beeper on or off. It is called every cycle, implementations
// only act on a change.
type Audio interface {
	SetTone(on bool)
}

// Input reports the current state of the keypad and the control keys.
type Input interface {
	Poll() Snapshot
}

// Snapshot is the input state sampled at the start of a cycle.
type Snapshot struct {
	Keys chip8.Keys

	Quit       bool // terminate the run, not an error
	Step       bool // execute a single instruction while paused
	ToggleStep bool // switch between paused and free running
}

// Devices bundles the collaborators of a run.
type Devices struct {
	Renderer Renderer
	Audio    Audio
	Input    Input
}

// Silent is an Audio that discards all tone changes.
type Silent struct{}

// SetTone implements Audio.
func (Silent) SetTone(bool) {}

// Tones fans out tone changes to multiple Audio devices.
type Tones []Audio

// SetTone implements Audio.
func (t Tones) SetTone(on bool) {
	for _, audio := range t {
		audio.SetTone(on)
	}
}
