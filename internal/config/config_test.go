package config

import (
	"testing"

	"github.com/retroenv/chip8vm/internal/options"
	"github.com/retroenv/retrogolib/assert"
)

func TestCreateLogger(t *testing.T) {
	tests := []struct {
		name  string
		flags options.Flags
	}{
		{"default", options.Flags{}},
		{"debug", options.Flags{Debug: true}},
		{"trace", options.Flags{Trace: true}},
		{"quiet", options.Flags{Quiet: true}},
		{"debug wins over quiet", options.Flags{Debug: true, Quiet: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := CreateLogger(options.Program{Flags: tt.flags})
			assert.NotNil(t, logger)
		})
	}
}
