// Package main implements the main entry point for a CHIP-8 interpreter
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/cli"
	"github.com/retroenv/retrochip8/internal/config"
	"github.com/retroenv/retrochip8/internal/host"
	"github.com/retroenv/retrochip8/internal/keymap"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/pipeline"
	"github.com/retroenv/retrochip8/internal/statsview"
	"github.com/retroenv/retrochip8/internal/terminal"
	"github.com/retroenv/retrochip8/internal/video"
	"github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	ctx := app.Context()

	opts, err := cli.ParseFlags()
	if err != nil {
		logger := config.CreateLogger(opts.Debug, opts.Quiet)
		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) {
			printBanner(logger, opts)
			usageErr.ShowUsage()
		} else {
			logger.Error(err.Error())
		}
		os.Exit(1)
	}

	logger := config.CreateLogger(opts.Debug || opts.Trace, opts.Quiet)
	printBanner(logger, opts)

	var server *statsview.Server
	if opts.StatsAddress != "" {
		server = statsview.Start(opts.StatsAddress, logger)
	}

	err = run(ctx, logger, opts)
	if server != nil {
		server.Stop()
	}
	if err != nil {
		logger.Error("Running failed", log.Err(err))
		os.Exit(1)
	}
}

func printBanner(logger *log.Logger, opts options.Program) {
	if opts.Quiet {
		return
	}
	logger.Info("retrochip8", log.String("version", buildinfo.Version(version, commit, date)))
}

func run(ctx context.Context, logger *log.Logger, opts options.Program) (err error) {
	p := pipeline.New(logger)
	machine, err := p.Prepare(opts)
	if err != nil {
		return err
	}

	devices := host.Devices{
		Audio: p.Audio(opts),
	}
	defer func() {
		if closeErr := p.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("closing devices: %w", closeErr)
		}
	}()

	km, err := keymap.Parse(opts.Keymap)
	if err != nil {
		return fmt.Errorf("parsing keymap: %w", err)
	}

	if !opts.Terminal {
		window, err := video.New(km, opts.Scale, logger)
		if err == nil {
			return runWindow(ctx, p, machine, window, devices, opts)
		}
		logger.Warn("Window not available, running in terminal", log.Err(err))
	}
	return runTerminal(ctx, p, machine, km, devices, opts)
}

// runWindow runs the machine in a separate goroutine, the window has to
// own the main goroutine.
func runWindow(ctx context.Context, p *pipeline.Pipeline, machine *chip8.Machine, window *video.Window,
	devices host.Devices, opts options.Program) error {

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	window.SetStatus(fmt.Sprintf("quirks: %s  |  Enter: step mode  N: step  F12: status", machine.Quirks()))
	devices.Renderer = window
	devices.Input = window

	done := make(chan error, 1)
	go func() {
		done <- p.Execute(ctx, machine, devices, opts)
		window.Close()
	}()

	if err := window.Run(); err != nil {
		cancel()
		<-done
		return err
	}
	return <-done
}

func runTerminal(ctx context.Context, p *pipeline.Pipeline, machine *chip8.Machine, km keymap.Keymap,
	devices host.Devices, opts options.Program) error {

	term := terminal.New(os.Stdout, km, terminal.DefaultHoldDuration)
	if err := term.Start(os.Stdin); err != nil {
		return fmt.Errorf("starting terminal: %w", err)
	}
	defer func() { _ = term.Close() }()

	devices.Renderer = term
	devices.Input = term
	return p.Execute(ctx, machine, devices, opts)
}
