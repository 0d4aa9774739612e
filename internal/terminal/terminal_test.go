package terminal

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/retroenv/chip8vm/internal/keymap"
	"github.com/retroenv/chip8vm/internal/vm"
	"github.com/retroenv/retrogolib/assert"
)

func newTestTerminal(t *testing.T) (*Terminal, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	assert.NoError(t, screen.Init())
	screen.SetSize(Width, Height)

	km, err := keymap.Lookup(keymap.QWERTY)
	assert.NoError(t, err)

	term := New(screen, km)
	t.Cleanup(term.Close)
	return term, screen
}

func TestPresent(t *testing.T) {
	term, screen := newTestTerminal(t)

	var display vm.Display
	display[0] = 0x80                       // pixel 0,0
	display[vm.DisplayWidthUnits*2+7] = 0x01 // pixel 63,2
	term.Present(display, false)

	cells, width, height := screen.GetContents()
	assert.Equal(t, Width, width)
	assert.Equal(t, Height, height)

	lit := func(x, y int) bool {
		runes := cells[y*width+x].Runes
		return len(runes) > 0 && runes[0] == onPixel
	}
	assert.True(t, lit(0, 0))
	assert.True(t, lit(1, 0))
	assert.False(t, lit(2, 0))
	assert.True(t, lit(126, 2))
	assert.True(t, lit(127, 2))
	assert.False(t, lit(0, 2))
}

func TestPresent_Sound(t *testing.T) {
	term, _ := newTestTerminal(t)

	term.Present(vm.Display{}, true)
}

func TestPollInput(t *testing.T) {
	term, screen := newTestTerminal(t)

	screen.InjectKey(tcell.KeyRune, 'w', tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'p', tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'V', tcell.ModNone)

	var pressed []byte
	quit := term.PollInput(func(code byte, isPressed bool) {
		assert.True(t, isPressed)
		pressed = append(pressed, code)
	})
	assert.False(t, quit)
	assert.Equal(t, []byte{0x5, 0xF}, pressed)

	quit = term.PollInput(func(byte, bool) {
		t.Fatal("unexpected key")
	})
	assert.False(t, quit)
}

func TestPollInput_Quit(t *testing.T) {
	tests := []struct {
		name string
		key  tcell.Key
	}{
		{"escape", tcell.KeyEscape},
		{"ctrl c", tcell.KeyCtrlC},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			term, screen := newTestTerminal(t)
			screen.InjectKey(tt.key, 0, tcell.ModNone)

			quit := term.PollInput(func(byte, bool) {})
			assert.True(t, quit)
		})
	}
}
