// Package detector handles system architecture detection.
package detector

import (
	"path/filepath"
	"strings"

	"github.com/retroenv/retrogolib/arch"
	"github.com/retroenv/retrogolib/log"
)

// Detector handles system architecture detection from file extensions.
type Detector struct {
	logger *log.Logger
}

// New creates a new system detector.
func New(logger *log.Logger) *Detector {
	return &Detector{
		logger: logger,
	}
}

// Detect determines the system architecture of a program file from its
// extension. Files without a known extension are assumed to be CHIP-8
// programs, as raw CHIP-8 images have no header to inspect.
func (d *Detector) Detect(filename string) arch.System {
	system := d.detectFromFile(filename)
	d.logger.Debug("Auto-detected system",
		log.Stringer("system", system),
		log.String("file", filename))
	return system
}

// IsSupported reports whether programs of the given system can be run.
func (d *Detector) IsSupported(system arch.System) bool {
	return system == arch.CHIP8System
}

// detectFromFile determines the system type based on file extension.
func (d *Detector) detectFromFile(filename string) arch.System {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".nes":
		return arch.NES
	default:
		// .ch8, .c8, .rom and raw binary files
		return arch.CHIP8System
	}
}
