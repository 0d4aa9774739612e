// Package app provides the main application helpers for the virtual machine.
package app

import (
	"github.com/retroenv/chip8vm/internal/options"
	"github.com/retroenv/chip8vm/internal/runner"
	"github.com/retroenv/retrogolib/arch"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

// Name is the application name shown in the banner.
const Name = "chip8vm"

// PrintBanner prints application version information.
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}

	logger.Info(Name, log.String("version", buildinfo.Version(version, commit, date)))
}

// PrintInfo prints the information about the loaded program.
func PrintInfo(logger *log.Logger, opts options.Program, name string, size int) {
	if opts.Quiet {
		return
	}

	logger.Info("Running Chip-8 program",
		log.String("program", name),
		log.Int("size", size),
		log.Stringer("system", arch.CHIP8System),
		log.String("keymap", opts.Keymap),
		log.Int("speed", opts.Speed),
	)
	if opts.Speed == 0 {
		logger.Warn("Instruction budget is unbounded, frames are limited by time only")
	}
}

// PrintStats prints the counters of a finished run.
func PrintStats(logger *log.Logger, opts options.Program, stats runner.Stats) {
	if opts.Quiet {
		return
	}

	logger.Info("Execution finished",
		log.Int("frames", stats.Frames),
		log.Int("instructions", stats.Instructions),
	)
}
