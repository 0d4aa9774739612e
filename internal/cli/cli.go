// Package cli handles command line interface logic
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/retroenv/chip8vm/internal/keymap"
	"github.com/retroenv/chip8vm/internal/options"
)

// ParseFlags parses command line flags and returns the program options
func ParseFlags() (options.Program, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	flags.SetOutput(io.Discard)
	var opts options.Program
	readOptionFlags(flags, &opts)

	if err := flags.Parse(os.Args[1:]); err != nil {
		return opts, &UsageError{
			flags: flags,
			msg:   err.Error(),
			help:  errors.Is(err, flag.ErrHelp),
		}
	}
	args := flags.Args()

	if err := validateArgs(args); err != nil {
		return opts, err
	}

	if err := normalizeOptions(&opts); err != nil {
		return opts, err
	}

	if len(args) > 0 {
		opts.Input = args[0]
	}

	return opts, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
	help  bool
}

func (e *UsageError) Error() string {
	return e.msg
}

// HelpRequested reports whether the usage was requested by -h or -help.
func (e *UsageError) HelpRequested() bool {
	return e.help
}

func (e *UsageError) ShowUsage() {
	fmt.Printf("usage: chip8vm [options] [program file]\n\n")
	if e.flags != nil {
		e.flags.SetOutput(os.Stdout)
		e.flags.PrintDefaults()
	}
	fmt.Println()
}

// validateArgs checks that at most one program file is passed and that it
// is passed after all options
func validateArgs(args []string) error {
	for i, arg := range args {
		if i > 0 && arg != "" && arg[0] == '-' {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after program file, please pass the program file as last argument", arg),
			}
		}
	}
	if len(args) > 1 {
		return &UsageError{
			msg: fmt.Sprintf("Only one program file can be run, got %d", len(args)),
		}
	}
	return nil
}

// normalizeOptions normalizes and validates option values
func normalizeOptions(opts *options.Program) error {
	opts.Keymap = strings.ToLower(opts.Keymap)
	if _, err := keymap.Lookup(opts.Keymap); err != nil {
		return fmt.Errorf("%w. Valid options: %s", err, strings.Join(keymap.Names(), ", "))
	}

	if opts.Speed < 0 {
		return fmt.Errorf("invalid speed %d, expected a non-negative number of instructions", opts.Speed)
	}
	if opts.Frames < 0 {
		return fmt.Errorf("invalid frame count %d, expected a non-negative number", opts.Frames)
	}
	return nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.Input, "i", "", "name of the program file to run, the built-in demo is used if no name given")
	flags.StringVar(&opts.Keymap, "keymap", keymap.QWERTY, "keyboard layout used to map keys to the hexadecimal keypad ("+strings.Join(keymap.Names(), "/")+")")
	flags.IntVar(&opts.Speed, "speed", 500, "maximum instructions executed per frame, 0 for unlimited")
	flags.IntVar(&opts.Frames, "frames", 0, "stop after the given number of frames, 0 runs until the program halts")
	flags.BoolVar(&opts.Headless, "headless", false, "run without terminal output and keyboard input")
	flags.BoolVar(&opts.Trace, "trace", false, "log every executed instruction, implies -debug")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
}
