package detector

import (
	"testing"

	"github.com/retroenv/retrogolib/arch"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestDetect(t *testing.T) {
	logger := log.NewTestLogger(t)
	d := New(logger)

	tests := []struct {
		name       string
		inputFile  string
		wantSystem arch.System
	}{
		{
			name:       "detect from .ch8 extension",
			inputFile:  "game.ch8",
			wantSystem: arch.CHIP8System,
		},
		{
			name:       "detect from .c8 extension",
			inputFile:  "game.c8",
			wantSystem: arch.CHIP8System,
		},
		{
			name:       "detect from .rom extension",
			inputFile:  "game.rom",
			wantSystem: arch.CHIP8System,
		},
		{
			name:       "extension is case insensitive",
			inputFile:  "GAME.CH8",
			wantSystem: arch.CHIP8System,
		},
		{
			name:       "detect from .nes extension",
			inputFile:  "game.nes",
			wantSystem: arch.NES,
		},
		{
			name:       "unknown extension defaults to CHIP-8",
			inputFile:  "game.bin",
			wantSystem: arch.CHIP8System,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			system := d.Detect(tt.inputFile)
			assert.Equal(t, tt.wantSystem, system)
		})
	}
}

func TestIsSupported(t *testing.T) {
	d := New(log.NewTestLogger(t))

	assert.True(t, d.IsSupported(arch.CHIP8System))
	assert.False(t, d.IsSupported(arch.NES))
}
