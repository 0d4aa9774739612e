// Package vm provides a CHIP-8 virtual machine core.
//
// # Machine Overview
//
// The machine has 4KB of byte addressable memory, 16 general purpose 8-bit
// registers V0-VF, a 12-bit address register I, a call stack of return
// addresses, a 64x32 monochrome display, two 60Hz countdown timers and a
// 16-key hexadecimal keypad.
//
// # Memory Layout
//
//   - 0x000-0x04F: unused, writable
//   - FontStart (0x050): built-in hexadecimal font glyphs, 5 bytes each
//   - ProgramStart (0x200): program image load offset and entry point
//
// No region is protected, programs may overwrite the font.
//
// # Execution Model
//
// An external driver calls DoFrame once per frame. DoFrame executes a burst of
// instructions that is bounded by the configured speed and by one timer tick
// of wall clock time. The timers are decremented by an independent goroutine
// that is started by New and stopped by Close.
//
// The wait for key instruction does not block the calling goroutine. It moves
// the engine into the Blocked state in which Step and DoFrame return without
// executing anything until SetKeyState reports a key press.
//
// # Usage Example
//
//	engine := vm.New(program, vm.WithSpeed(500), vm.WithLogger(logger))
//	defer engine.Close()
//
//	for engine.IsLive() {
//		engine.DoFrame()
//		present(engine.Display(), engine.SoundActive())
//		engine.ClearKeyState()
//		for _, key := range pressedKeys() {
//			engine.SetKeyState(key, true)
//		}
//	}
package vm
