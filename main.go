// Package main implements the main entry point for a CHIP-8 interpreter
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/CalvoM/chip-8/internal/app"
	"github.com/CalvoM/chip-8/internal/cli"
	"github.com/CalvoM/chip-8/internal/config"
	"github.com/CalvoM/chip-8/internal/loader"
	"github.com/CalvoM/chip-8/internal/machine"
	"github.com/CalvoM/chip-8/internal/options"
	"github.com/CalvoM/chip-8/internal/runner"
	"github.com/CalvoM/chip-8/internal/terminal"
	retroapp "github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/log"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	ctx := retroapp.Context()

	opts, err := cli.ParseFlags()
	if err != nil {
		logger := config.CreateLogger(opts.Debug, opts.Quiet)
		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) {
			app.PrintBanner(logger, opts, version, commit, date)
			usageErr.ShowUsage()
		} else {
			logger.Fatal(err.Error())
		}
		os.Exit(1)
	}

	logger := config.CreateLogger(opts.Debug, opts.Quiet)
	app.PrintBanner(logger, opts, version, commit, date)

	if err := run(ctx, logger, opts); err != nil {
		if errors.Is(err, context.Canceled) {
			logger.Info("Operation cancelled")
			return
		}
		logger.Error("Running ROM failed", log.Err(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *log.Logger, opts options.Program) error {
	program, err := loader.New().Load(opts)
	if err != nil {
		return fmt.Errorf("loading ROM: %w", err)
	}

	m := machine.New(config.MachineOptions(opts)...)
	if err := m.LoadProgram(program); err != nil {
		return err
	}
	app.PrintInfo(logger, opts, len(program))

	r := runner.New(logger, m, opts)

	if opts.Headless() {
		stats, err := r.RunSteps(ctx, opts.Steps)
		if err != nil {
			return err
		}
		app.PrintStats(logger, stats)
		return nil
	}

	stats, err := runInteractive(ctx, r)
	if err != nil {
		return err
	}
	app.PrintStats(logger, stats)
	return nil
}

// runInteractive runs the session in the terminal and restores the terminal
// state before returning.
func runInteractive(ctx context.Context, r *runner.Runner) (runner.Stats, error) {
	host, err := terminal.NewHost(os.Stdin, terminal.DefaultHoldFrames)
	if err != nil {
		return runner.Stats{}, fmt.Errorf("opening terminal: %w", err)
	}
	defer func() { _ = host.Restore() }()

	renderer := terminal.NewRenderer(os.Stdout)
	if err := renderer.Start(); err != nil {
		return runner.Stats{}, err
	}

	stats, runErr := r.Run(ctx, host, renderer)
	if err := renderer.Stop(); err != nil && runErr == nil {
		runErr = err
	}
	if err := host.Restore(); err != nil && runErr == nil {
		runErr = err
	}
	return stats, runErr
}
