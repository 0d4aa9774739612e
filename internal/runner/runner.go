// Package runner drives a virtual machine frame by frame.
package runner

import (
	"context"
	"fmt"
	"time"

	"github.com/retroenv/chip8vm/internal/options"
	"github.com/retroenv/chip8vm/internal/vm"
	"github.com/retroenv/retrogolib/log"
)

// Machine is the virtual machine driven by the runner.
type Machine interface {
	DoFrame() int
	Display() vm.Display
	SoundActive() bool
	ClearKeyState()
	SetKeyState(code byte, pressed bool)
	IsLive() bool
}

// Presenter shows frames and collects key presses.
type Presenter interface {
	Present(display vm.Display, soundActive bool)
	PollInput(setKey func(code byte, pressed bool)) (quit bool)
}

// Stats contains counters of a finished run.
type Stats struct {
	Frames       int
	Instructions int
}

// Runner executes the frame loop.
type Runner struct {
	logger    *log.Logger
	machine   Machine
	presenter Presenter
	opts      options.Runner
	interval  time.Duration
}

// New creates a new runner. A nil presenter or the headless option run the
// machine without presentation and input.
func New(logger *log.Logger, machine Machine, presenter Presenter, opts options.Runner) *Runner {
	if presenter == nil || opts.Headless {
		presenter = Headless{}
	}
	return &Runner{
		logger:    logger,
		machine:   machine,
		presenter: presenter,
		opts:      opts,
		interval:  vm.TickInterval,
	}
}

// Run executes frames until the machine halts, the frame limit is reached,
// the presenter reports a quit request or the context is cancelled. Every
// frame executes a burst of instructions, presents the display, and replaces
// the key state with the keys pressed since the previous frame.
func (r *Runner) Run(ctx context.Context) (Stats, error) {
	var stats Stats

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for r.machine.IsLive() {
		if r.opts.Frames > 0 && stats.Frames >= r.opts.Frames {
			r.logger.Debug("Frame limit reached", log.Int("frames", stats.Frames))
			break
		}

		stats.Instructions += r.machine.DoFrame()
		stats.Frames++

		r.presenter.Present(r.machine.Display(), r.machine.SoundActive())

		r.machine.ClearKeyState()
		if r.presenter.PollInput(r.machine.SetKeyState) {
			r.logger.Debug("Quit requested", log.Int("frames", stats.Frames))
			break
		}

		select {
		case <-ctx.Done():
			return stats, fmt.Errorf("running frame loop: %w", ctx.Err())
		case <-ticker.C:
		}
	}

	return stats, nil
}

// Headless is a presenter that discards frames and never reports input.
type Headless struct{}

// Present discards the frame.
func (Headless) Present(vm.Display, bool) {}

// PollInput reports no input.
func (Headless) PollInput(func(byte, bool)) bool { return false }
