package loader

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/retroenv/chip8vm/internal/options"
	"github.com/retroenv/chip8vm/internal/vm"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestLoad(t *testing.T) {
	t.Run("load CHIP-8 file", func(t *testing.T) {
		data := []byte{0x12, 0x34, 0x56, 0x78}
		tmpFile := createTempFile(t, "game.ch8", data)

		loader := New(log.NewTestLogger(t))
		opts := options.Program{
			Parameters: options.Parameters{Input: tmpFile},
		}

		program, err := loader.Load(opts)
		assert.NoError(t, err)
		assert.Equal(t, data, program)
	})

	t.Run("load built-in demo", func(t *testing.T) {
		loader := New(log.NewTestLogger(t))

		program, err := loader.Load(options.Program{})
		assert.NoError(t, err)
		assert.Equal(t, screenwipe[:], program)
	})

	t.Run("missing file", func(t *testing.T) {
		loader := New(log.NewTestLogger(t))
		opts := options.Program{
			Parameters: options.Parameters{Input: filepath.Join(t.TempDir(), "missing.ch8")},
		}

		_, err := loader.Load(opts)
		assert.ErrorContains(t, err, "opening file")
	})

	t.Run("empty file", func(t *testing.T) {
		tmpFile := createTempFile(t, "empty.ch8", nil)
		loader := New(log.NewTestLogger(t))

		_, err := loader.Load(options.Program{Parameters: options.Parameters{Input: tmpFile}})
		assert.True(t, errors.Is(err, ErrEmptyProgram))
	})

	t.Run("NES file is rejected", func(t *testing.T) {
		tmpFile := createTempFile(t, "game.nes", []byte{'N', 'E', 'S', 0x1A})
		loader := New(log.NewTestLogger(t))

		_, err := loader.Load(options.Program{Parameters: options.Parameters{Input: tmpFile}})
		assert.True(t, errors.Is(err, ErrUnsupportedSystem))
	})
}

func TestRead(t *testing.T) {
	tests := []struct {
		name    string
		size    int
		wantErr error
	}{
		{"single byte", 1, nil},
		{"maximum size", vm.MaxProgramSize, nil},
		{"too large", vm.MaxProgramSize + 1, ErrProgramTooLarge},
		{"empty", 0, ErrEmptyProgram},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			program, err := Read(bytes.NewReader(make([]byte, tt.size)))
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr))
				return
			}
			assert.NoError(t, err)
			assert.Len(t, program, tt.size)
		})
	}
}

func TestDemo(t *testing.T) {
	program := Demo()
	assert.Len(t, program, len(screenwipe))

	program[0] = 0x00
	assert.Equal(t, byte(0xA2), screenwipe[0])
}

func createTempFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	assert.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}
