// Package cli handles command line interface logic
package cli

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/retroenv/retrochip8/internal/keymap"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/runner"
	"github.com/retroenv/retrochip8/internal/statsview"
)

// defaultScale is the default window pixel scale.
const defaultScale = 15

var errMissingInput = errors.New("no program file given")

// ParseFlags parses command line flags and returns the program options
func ParseFlags() (options.Program, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	var opts options.Program
	readOptionFlags(flags, &opts)

	err := flags.Parse(os.Args[1:])
	args := flags.Args()
	if err != nil || (len(args) == 0 && opts.Input == "") {
		return opts, &UsageError{flags: flags, msg: errMissingInput.Error()}
	}

	if err := validateArgs(flags, args); err != nil {
		return opts, err
	}

	if err := validateOptions(opts); err != nil {
		return opts, err
	}

	if opts.Input == "" {
		opts.Input = args[0]
	}
	if opts.Stats && opts.StatsAddress == "" {
		opts.StatsAddress = statsview.DefaultAddress
	}
	return opts, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

// ShowUsage prints the usage and all flag defaults.
func (e *UsageError) ShowUsage() {
	fmt.Printf("usage: retrochip8 [options] <program file>\n\n")
	if e.flags != nil {
		e.flags.PrintDefaults()
	}
	fmt.Println()
	fmt.Println("-old-shift, -jump-quirk and -old-index are aliases of the quirk flags,")
	fmt.Println("-step is the single step debug mode.")
}

// validateArgs checks if arguments are in correct order
func validateArgs(flags *flag.FlagSet, args []string) error {
	for i, arg := range args {
		if i > 0 && arg[0] == '-' {
			return &UsageError{
				flags: flags,
				msg:   fmt.Sprintf("Potential argument %s found after program file, please pass the program file as last argument", arg),
			}
		}
	}
	return nil
}

// validateOptions validates option values
func validateOptions(opts options.Program) error {
	if opts.InstructionRate <= 0 {
		return fmt.Errorf("invalid instruction rate %d, must be positive", opts.InstructionRate)
	}
	if opts.TimerRate <= 0 {
		return fmt.Errorf("invalid timer rate %d, must be positive", opts.TimerRate)
	}
	if opts.Scale <= 0 {
		return fmt.Errorf("invalid scale %d, must be positive", opts.Scale)
	}
	if _, err := keymap.Parse(opts.Keymap); err != nil {
		return fmt.Errorf("invalid keymap: %w", err)
	}
	return nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.Input, "i", "", "name of the input program file")
	flags.StringVar(&opts.Keymap, "keymap", keymap.Default, "16 characters bound to the keypad keys 0 to F")
	flags.StringVar(&opts.WavOutput, "wav", "", "record the beeper output to the given .wav file")
	flags.StringVar(&opts.StatsAddress, "stats", "", "serve runtime statistics on the given address")

	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
	flags.BoolVar(&opts.Trace, "trace", false, "log every executed instruction")
	flags.BoolVar(&opts.SingleStep, "step", false, "start paused, N executes one instruction and Enter toggles free running")
	flags.BoolVar(&opts.Terminal, "terminal", false, "run in the terminal instead of a window")
	flags.BoolVar(&opts.Mute, "mute", false, "disable the beeper")
	flags.BoolVar(&opts.Stats, "statsview", false, "serve runtime statistics on "+statsview.DefaultAddress)

	flags.BoolVar(&opts.LegacyShift, "legacy-shift", false, "quirk: 8XY6 and 8XYE shift VY into VX")
	flags.BoolVar(&opts.JumpWithVX, "jump-vx", false, "quirk: BNNN jumps to NNN plus VX instead of V0")
	flags.BoolVar(&opts.LegacyIndexing, "legacy-indexing", false, "quirk: FX55 advances I by X")
	flags.BoolVar(&opts.LegacyShift, "old-shift", false, "alias of -legacy-shift")
	flags.BoolVar(&opts.JumpWithVX, "jump-quirk", false, "alias of -jump-vx")
	flags.BoolVar(&opts.LegacyIndexing, "old-index", false, "alias of -legacy-indexing")

	flags.IntVar(&opts.InstructionRate, "rate", runner.DefaultInstructionRate, "instructions executed per second")
	flags.IntVar(&opts.TimerRate, "timer-rate", runner.DefaultTimerRate, "delay and sound timer ticks per second")
	flags.IntVar(&opts.Scale, "scale", defaultScale, "window pixel scale")
}
