// Package main implements the main entry point for a terminal based Chip-8 virtual machine
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/retroenv/chip8vm/internal/app"
	"github.com/retroenv/chip8vm/internal/cli"
	"github.com/retroenv/chip8vm/internal/config"
	"github.com/retroenv/chip8vm/internal/keymap"
	"github.com/retroenv/chip8vm/internal/loader"
	"github.com/retroenv/chip8vm/internal/options"
	"github.com/retroenv/chip8vm/internal/runner"
	"github.com/retroenv/chip8vm/internal/terminal"
	"github.com/retroenv/chip8vm/internal/vm"
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
		logger := config.CreateLogger(opts)
		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) {
			app.PrintBanner(logger, opts, version, commit, date)
			if usageErr.HelpRequested() {
				usageErr.ShowUsage()
				return
			}
			logger.Error(usageErr.Error())
			usageErr.ShowUsage()
		} else {
			logger.Fatal(err.Error())
		}
		os.Exit(1)
	}

	logger := config.CreateLogger(opts)
	app.PrintBanner(logger, opts, version, commit, date)

	stats, err := run(ctx, logger, opts)
	app.PrintStats(logger, opts, stats)
	if err != nil {
		// Handle context cancellation (Ctrl+C) gracefully
		if errors.Is(err, context.Canceled) {
			logger.Info("Operation cancelled")
			return
		}
		logger.Fatal("Running program failed", log.Err(err))
	}
}

// run loads the program and executes it until it halts or the user quits.
func run(ctx context.Context, logger *log.Logger, opts options.Program) (runner.Stats, error) {
	program, err := loader.New(logger).Load(opts)
	if err != nil {
		return runner.Stats{}, fmt.Errorf("loading program: %w", err)
	}

	name := opts.Input
	if name == "" {
		name = loader.DemoName
	}
	app.PrintInfo(logger, opts, name, len(program))

	km, err := keymap.Lookup(opts.Keymap)
	if err != nil {
		return runner.Stats{}, fmt.Errorf("selecting keymap: %w", err)
	}

	machineOpts := options.NewMachine(opts)
	engine := vm.New(program,
		vm.WithLogger(logger),
		vm.WithSpeed(machineOpts.Speed),
		vm.WithTrace(machineOpts.Trace),
	)
	defer engine.Close()

	runnerOpts := options.NewRunner(opts)
	var presenter runner.Presenter
	if !runnerOpts.Headless {
		term, err := terminal.Open(km)
		if err != nil {
			return runner.Stats{}, fmt.Errorf("opening terminal: %w", err)
		}
		defer term.Close()
		presenter = term
	}

	stats, err := runner.New(logger, engine, presenter, runnerOpts).Run(ctx)
	if err != nil {
		return stats, err
	}

	logger.Debug("Machine stopped",
		log.Stringer("state", engine.State()),
		log.Hex("pc", engine.PC()),
	)
	return stats, nil
}
