package vm

// KeyCount is the number of keys on the hexadecimal keypad.
const KeyCount = 16

// keyLatch holds one pressed bit per key.
type keyLatch uint16

func (k *keyLatch) set(code byte, pressed bool) {
	bit := keyLatch(1) << (code & 0xF)
	if pressed {
		*k |= bit
	} else {
		*k &^= bit
	}
}

func (k keyLatch) pressed(code byte) bool {
	return k&(1<<(code&0xF)) != 0
}

// noKeyTarget marks that no wait for key instruction is outstanding.
const noKeyTarget = -1

// SetKeyState updates the pressed state of the key with the given code.
// A press resolves an outstanding wait for key instruction: the code is
// written to the waiting register and the engine resumes running.
func (e *Engine) SetKeyState(code byte, pressed bool) {
	code &= 0xF
	if pressed && e.keyTarget != noKeyTarget {
		e.v[e.keyTarget] = code
		e.keyTarget = noKeyTarget
		if e.state == Blocked {
			e.state = Running
			e.debug("Key wait resolved", keyField(code))
		}
	}
	e.keys.set(code, pressed)
}

// ClearKeyState releases all keys. Drivers call it once per frame before
// collecting the input events of the next frame.
func (e *Engine) ClearKeyState() {
	e.keys = 0
}

// KeyPressed reports whether the key with the given code is currently pressed.
func (e *Engine) KeyPressed(code byte) bool {
	return e.keys.pressed(code)
}
