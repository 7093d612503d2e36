// Package options contains the program options.
package options

// Parameters contains file path and device options.
type Parameters struct {
	Input        string `flag:"i" usage:"input program file"`
	Keymap       string `flag:"keymap" usage:"16 characters bound to the keys 0-F" default:"x123qweasdzc4rfv"`
	WavOutput    string `flag:"wav" usage:"record the beeper to a .wav file"`
	StatsAddress string `flag:"stats" usage:"serve runtime statistics on this address"`
}

// Flags contains behavior options.
type Flags struct {
	Debug      bool `flag:"debug" usage:"enable debug logging"`
	Quiet      bool `flag:"q" usage:"quiet mode"`
	Trace      bool `flag:"trace" usage:"log every executed instruction"`
	SingleStep bool `flag:"step" usage:"start paused in single step mode"`
	Terminal   bool `flag:"terminal" usage:"run in the terminal instead of a window"`
	Mute       bool `flag:"mute" usage:"disable the beeper"`
	Stats      bool `flag:"statsview" usage:"serve runtime statistics on the default address"`
}

// QuirkFlags contains the compatibility options.
type QuirkFlags struct {
	LegacyShift    bool `flag:"legacy-shift" usage:"8XY6/8XYE shift VY into VX"`
	JumpWithVX     bool `flag:"jump-vx" usage:"BNNN jumps to NNN+VX"`
	LegacyIndexing bool `flag:"legacy-indexing" usage:"FX55 advances I"`
}

// Timing contains rates and sizes.
type Timing struct {
	InstructionRate int `flag:"rate" usage:"instructions per second" default:"700"`
	TimerRate       int `flag:"timer-rate" usage:"timer ticks per second" default:"60"`
	Scale           int `flag:"scale" usage:"window pixel scale" default:"15"`
}

// Program options of the interpreter.
type Program struct {
	Parameters
	Flags
	QuirkFlags
	Timing
}

