// Package pipeline orchestrates loading a program, wiring the host devices
// and running the machine.
package pipeline

import (
	"context"
	"errors"
	"fmt"

	"github.com/retroenv/retrochip8/internal/audio"
	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/config"
	"github.com/retroenv/retrochip8/internal/host"
	"github.com/retroenv/retrochip8/internal/loader"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/runner"
	"github.com/retroenv/retrochip8/internal/wavrecorder"
	"github.com/retroenv/retrogolib/log"
)

// Pipeline orchestrates the complete run workflow.
type Pipeline struct {
	logger *log.Logger
	loader *loader.Loader

	closers []func() error
}

// New creates a new run pipeline.
func New(logger *log.Logger) *Pipeline {
	return &Pipeline{
		logger: logger,
		loader: loader.New(),
	}
}

// Prepare loads the program image and returns a machine ready to run it.
func (p *Pipeline) Prepare(opts options.Program) (*chip8.Machine, error) {
	image, err := p.loader.Load(opts.Input)
	if err != nil {
		return nil, fmt.Errorf("loading program: %w", err)
	}

	quirks := config.Quirks(opts)
	machine := chip8.New(quirks, chip8.WithLogger(p.logger))
	loaded := machine.LoadProgram(image)
	if loaded < len(image) {
		p.logger.Warn("Program image truncated",
			log.Int("size", len(image)),
			log.Int("loaded", loaded),
		)
	}

	if !opts.Quiet {
		p.logger.Info("Loaded program",
			log.String("file", opts.Input),
			log.Int("size", loaded),
			log.Stringer("quirks", quirks),
		)
	}
	return machine, nil
}

// Audio returns the audio devices selected by the options. The beeper is
// skipped with a warning if no audio device is available.
func (p *Pipeline) Audio(opts options.Program) host.Audio {
	var tones host.Tones

	if !opts.Mute {
		beeper, err := audio.NewBeeper(audio.DefaultSampleRate, audio.DefaultFrequency)
		if err != nil {
			p.logger.Warn("Beeper disabled", log.Err(err))
		} else {
			tones = append(tones, beeper)
			p.closers = append(p.closers, beeper.Close)
		}
	}

	if opts.WavOutput != "" {
		recorder := wavrecorder.New(opts.WavOutput, audio.DefaultSampleRate, audio.DefaultFrequency)
		tones = append(tones, recorder)
		p.closers = append(p.closers, recorder.Close)
	}

	switch len(tones) {
	case 0:
		return host.Silent{}
	case 1:
		return tones[0]
	default:
		return tones
	}
}

// Execute runs the machine until the input requests to quit, the context
// is canceled or the machine faults.
func (p *Pipeline) Execute(ctx context.Context, machine *chip8.Machine, devices host.Devices, opts options.Program) error {
	r := runner.New(machine, devices, config.Runner(opts), p.logger)
	if err := r.Run(ctx); err != nil {
		return fmt.Errorf("running program: %w", err)
	}

	if errors.Is(ctx.Err(), context.Canceled) {
		p.logger.Info("Operation cancelled")
	}
	return nil
}

// Close releases all devices opened by the pipeline.
func (p *Pipeline) Close() error {
	var errs []error
	for _, closer := range p.closers {
		if err := closer(); err != nil {
			errs = append(errs, err)
		}
	}
	p.closers = nil
	return errors.Join(errs...)
}
