// Package config handles application configuration and setup
package config

import (
	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/runner"
	"github.com/retroenv/retrogolib/log"
)

// CreateLogger creates a logger with appropriate settings
func CreateLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

// Quirks returns the machine quirks selected by the options.
func Quirks(opts options.Program) chip8.Quirks {
	return chip8.Quirks{
		LegacyShift:    opts.LegacyShift,
		JumpWithVX:     opts.JumpWithVX,
		LegacyIndexing: opts.LegacyIndexing,
		SingleStep:     opts.SingleStep,
	}
}

// Runner returns the run loop configuration selected by the options.
func Runner(opts options.Program) runner.Config {
	return runner.Config{
		InstructionRate: opts.InstructionRate,
		TimerRate:       opts.TimerRate,
		Trace:           opts.Trace,
	}
}
