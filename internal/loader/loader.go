// Package loader handles program image loading operations.
package loader

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/retroenv/chip8vm/internal/detector"
	"github.com/retroenv/chip8vm/internal/options"
	"github.com/retroenv/chip8vm/internal/vm"
	"github.com/retroenv/retrogolib/log"
)

var (
	// ErrEmptyProgram is returned for program files without content.
	ErrEmptyProgram = errors.New("program image is empty")

	// ErrProgramTooLarge is returned for program images that do not fit
	// into memory above the program load offset.
	ErrProgramTooLarge = errors.New("program image does not fit into memory")

	// ErrUnsupportedSystem is returned for files that belong to a different system.
	ErrUnsupportedSystem = errors.New("unsupported system")
)

// Loader handles loading program files from disk.
type Loader struct {
	logger   *log.Logger
	detector *detector.Detector
}

// New creates a new program loader.
func New(logger *log.Logger) *Loader {
	return &Loader{
		logger:   logger,
		detector: detector.New(logger),
	}
}

// Load returns the program image selected by the options. CHIP-8 programs
// are raw binary images without a header. If no input file is set, the
// built-in demo program is returned.
func (l *Loader) Load(opts options.Program) ([]byte, error) {
	if opts.Input == "" {
		l.logger.Debug("No program file given, using built-in demo",
			log.String("program", DemoName))
		return Demo(), nil
	}

	if system := l.detector.Detect(opts.Input); !l.detector.IsSupported(system) {
		return nil, fmt.Errorf("%w '%s' of file %s", ErrUnsupportedSystem, system, opts.Input)
	}

	file, err := os.Open(opts.Input)
	if err != nil {
		return nil, fmt.Errorf("opening file %s: %w", opts.Input, err)
	}
	defer func() { _ = file.Close() }()

	return Read(file)
}

// Read reads a program image from the reader.
func Read(r io.Reader) ([]byte, error) {
	// one extra byte detects oversized images without reading them fully
	program, err := io.ReadAll(io.LimitReader(r, vm.MaxProgramSize+1))
	if err != nil {
		return nil, fmt.Errorf("reading program: %w", err)
	}

	switch {
	case len(program) == 0:
		return nil, ErrEmptyProgram
	case len(program) > vm.MaxProgramSize:
		return nil, fmt.Errorf("%w: maximum size is %d bytes", ErrProgramTooLarge, vm.MaxProgramSize)
	}
	return program, nil
}
