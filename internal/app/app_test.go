package app

import (
	"testing"

	"github.com/retroenv/chip8vm/internal/options"
	"github.com/retroenv/chip8vm/internal/runner"
	"github.com/retroenv/retrogolib/log"
)

func TestPrintHelpers(t *testing.T) {
	logger := log.NewTestLogger(t)
	opts := options.Program{
		Flags: options.Flags{
			Keymap: "qwerty",
			Speed:  0,
		},
	}

	PrintBanner(logger, opts, "dev", "0123456789", "2024-01-01")
	PrintInfo(logger, opts, "test.ch8", 2)
	PrintStats(logger, opts, runner.Stats{Frames: 1, Instructions: 10})

	opts.Quiet = true
	PrintBanner(logger, opts, "dev", "", "")
	PrintInfo(logger, opts, "test.ch8", 2)
	PrintStats(logger, opts, runner.Stats{})
}
