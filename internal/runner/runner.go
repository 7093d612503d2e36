// Package runner drives a machine at a fixed instruction rate and ticks its
// timers on a separate schedule.
package runner

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/disasm"
	"github.com/retroenv/retrochip8/internal/host"
	"github.com/retroenv/retrogolib/log"
	"golang.org/x/sync/errgroup"
)

// Default rates in events per second.
const (
	DefaultInstructionRate = 700
	DefaultTimerRate       = 60
)

// Config of a run.
type Config struct {
	InstructionRate int  // instructions per second
	TimerRate       int  // timer ticks per second
	Trace           bool // log every executed instruction
}

// Runner executes a machine against a set of host devices.
type Runner struct {
	machine *chip8.Machine
	devices host.Devices
	config  Config
	logger  *log.Logger

	paused       bool
	instructions uint64
}

// New returns a runner for the machine. Zero rates in the config are
// replaced by the defaults. A machine with the single step quirk starts
// paused.
func New(machine *chip8.Machine, devices host.Devices, config Config, logger *log.Logger) *Runner {
	if config.InstructionRate <= 0 {
		config.InstructionRate = DefaultInstructionRate
	}
	if config.TimerRate <= 0 {
		config.TimerRate = DefaultTimerRate
	}
	if devices.Audio == nil {
		devices.Audio = host.Silent{}
	}

	return &Runner{
		machine: machine,
		devices: devices,
		config:  config,
		logger:  logger,
		paused:  machine.Quirks().SingleStep,
	}
}

// Run executes instructions until the input requests to quit, the context
// is canceled or the machine faults. Only a fault is returned as error.
func (r *Runner) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		return r.runTimers(ctx)
	})
	group.Go(func() error {
		defer cancel()
		return r.runCycles(ctx)
	})

	err := group.Wait()
	r.devices.Audio.SetTone(false)
	r.logger.Debug("Run finished", log.String("instructions", strconv.FormatUint(r.instructions, 10)))
	return err
}

// Instructions returns the number of executed instructions.
func (r *Runner) Instructions() uint64 {
	return r.instructions
}

func (r *Runner) runTimers(ctx context.Context) error {
	ticker := time.NewTicker(interval(r.config.TimerRate))
	defer ticker.Stop()

	timers := r.machine.Timers()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			timers.Tick()
		}
	}
}

func (r *Runner) runCycles(ctx context.Context) error {
	ticker := time.NewTicker(interval(r.config.InstructionRate))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}

		quit, err := r.cycle()
		if err != nil {
			return err
		}
		if quit {
			r.logger.Info("Quit requested")
			return nil
		}
	}
}

// cycle polls the input and executes a single instruction unless the run
// is paused.
func (r *Runner) cycle() (bool, error) {
	input := r.devices.Input.Poll()
	if input.Quit {
		return true, nil
	}

	if input.ToggleStep {
		r.paused = !r.paused
		r.logger.Info("Single stepping", log.String("mode", r.mode()))
	}
	if r.paused && !input.Step {
		r.devices.Audio.SetTone(false)
		return false, nil
	}

	result, err := r.machine.Step(input.Keys)
	if err != nil {
		r.logFault(err)
		return false, fmt.Errorf("executing instruction: %w", err)
	}
	r.instructions++
	r.trace(result)

	if result.DisplayDirty {
		if err := r.devices.Renderer.Render(r.machine.Frame()); err != nil {
			return false, fmt.Errorf("rendering frame: %w", err)
		}
	}
	r.devices.Audio.SetTone(result.SoundActive && !r.paused)
	return false, nil
}

func (r *Runner) trace(result chip8.StepResult) {
	switch {
	case r.paused:
		r.logger.Info("Step",
			log.Hex("pc", result.PC),
			log.String("instruction", disasm.Format(result.Instruction.Word)),
			log.Stringer("state", r.machine.State()),
		)
	case r.config.Trace:
		r.logger.Debug("Step",
			log.Hex("pc", result.PC),
			log.String("instruction", disasm.Format(result.Instruction.Word)),
		)
	}
}

func (r *Runner) logFault(err error) {
	state := r.machine.State()

	var fault *chip8.Fault
	if !errors.As(err, &fault) {
		r.logger.Error("Machine fault", log.Err(err), log.Stringer("state", state))
		return
	}

	r.logger.Error("Machine fault",
		log.Err(fault.Err),
		log.Hex("pc", fault.PC),
		log.Hex("opcode", fault.Word),
		log.Hex("index", state.Index),
		log.Uint8("sp", state.SP),
		log.Stringer("state", state),
	)
}

func (r *Runner) mode() string {
	if r.paused {
		return "paused"
	}
	return "running"
}

func interval(rate int) time.Duration {
	return time.Second / time.Duration(rate)
}
