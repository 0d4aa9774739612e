// Package terminal implements a presentation layer that renders the display
// of the virtual machine into a terminal and reads keypad input from it.
package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/retroenv/chip8vm/internal/keymap"
	"github.com/retroenv/chip8vm/internal/vm"
)

// pixelWidth is the number of terminal cells per pixel. Terminal cells are
// roughly twice as high as wide, two cells make a square pixel.
const pixelWidth = 2

// Size of the rendered display in terminal cells.
const (
	Width  = vm.DisplayWidth * pixelWidth
	Height = vm.DisplayHeight
)

const (
	onPixel  = '█'
	offPixel = ' '
)

// Terminal renders the display to a tcell screen.
type Terminal struct {
	screen tcell.Screen
	keymap keymap.Keymap
	style  tcell.Style
}

// Open initializes the terminal screen. Close must be called to restore the
// terminal state.
func Open(km keymap.Keymap) (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("initializing screen: %w", err)
	}
	return New(screen, km), nil
}

// New returns a terminal that uses an already initialized screen.
func New(screen tcell.Screen, km keymap.Keymap) *Terminal {
	screen.HideCursor()
	screen.Clear()
	return &Terminal{
		screen: screen,
		keymap: km,
		style:  tcell.StyleDefault,
	}
}

// Close restores the terminal.
func (t *Terminal) Close() {
	t.screen.Fini()
}

// Present draws the display and rings the terminal bell while the sound
// timer is active.
func (t *Terminal) Present(display vm.Display, soundActive bool) {
	for y := range vm.DisplayHeight {
		for x := range vm.DisplayWidth {
			r := offPixel
			if display.Pixel(x, y) {
				r = onPixel
			}
			for i := range pixelWidth {
				t.screen.SetContent(x*pixelWidth+i, y, r, nil, t.style)
			}
		}
	}
	t.screen.Show()

	if soundActive {
		_ = t.screen.Beep()
	}
}

// PollInput processes all pending terminal events without blocking. Mapped
// key presses are passed to setKey. It reports whether the user asked to quit
// by pressing Escape or Ctrl+C.
func (t *Terminal) PollInput(setKey func(code byte, pressed bool)) bool {
	quit := false
	for t.screen.HasPendingEvent() {
		switch ev := t.screen.PollEvent().(type) {
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEscape, tcell.KeyCtrlC:
				quit = true
			case tcell.KeyRune:
				if code, ok := t.keymap.Code(ev.Rune()); ok {
					setKey(code, true)
				}
			}
		case *tcell.EventResize:
			t.screen.Sync()
		}
	}
	return quit
}
