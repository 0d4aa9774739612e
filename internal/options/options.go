// Package options contains the program options.
package options

// Parameters contains file path options.
type Parameters struct {
	Input string `flag:"i" usage:"program file to run (default: built-in demo)"`
}

// Flags contains behavior options.
type Flags struct {
	Keymap   string `flag:"keymap" usage:"keyboard layout: qwerty, hex" default:"qwerty"`
	Speed    int    `flag:"speed" usage:"instructions per frame, 0 for unlimited" default:"500"`
	Frames   int    `flag:"frames" usage:"stop after the given number of frames, 0 for unlimited"`
	Headless bool   `flag:"headless" usage:"run without terminal output and input"`
	Trace    bool   `flag:"trace" usage:"log every executed instruction (implies -debug)"`
	Debug    bool   `flag:"debug" usage:"enable debug logging"`
	Quiet    bool   `flag:"q" usage:"quiet mode"`
}

// Program options of the emulator.
type Program struct {
	Parameters
	Flags
}

// Machine defines options to control the virtual machine.
type Machine struct {
	Speed int  // maximum instructions per frame, 0 is unbounded
	Trace bool // log every executed instruction
}

// Runner defines options to control the frame loop.
type Runner struct {
	Frames   int  // stop after this many frames, 0 runs until the program halts
	Headless bool // skip presentation and input
}

// NewMachine returns the machine options for the given program options.
func NewMachine(opts Program) Machine {
	return Machine{
		Speed: opts.Speed,
		Trace: opts.Trace,
	}
}

// NewRunner returns the frame loop options for the given program options.
func NewRunner(opts Program) Runner {
	return Runner{
		Frames:   opts.Frames,
		Headless: opts.Headless,
	}
}
