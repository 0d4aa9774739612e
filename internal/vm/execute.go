package vm

import "github.com/retroenv/retrogolib/log"

// Step executes the instruction at the program counter. It does nothing
// unless the engine is running. Fetching past the end of memory halts the
// engine.
func (e *Engine) Step() {
	if e.state != Running {
		return
	}

	address := e.pc
	opcode, ok := e.fetch()
	if !ok {
		return
	}
	if e.trace && e.logger != nil {
		e.debug("Executing",
			log.Hex("address", address),
			log.Hex("opcode", opcode),
			log.String("instruction", Disassemble(opcode)))
	}
	e.execute(opcode)
}

// fetch reads the 2 byte instruction at the program counter and advances it.
func (e *Engine) fetch() (uint16, bool) {
	if e.pc >= MemorySize {
		e.haltOutOfBounds()
		return 0, false
	}
	hi := e.mem[e.pc]
	e.pc++

	if e.pc >= MemorySize {
		e.haltOutOfBounds()
		return 0, false
	}
	lo := e.mem[e.pc]
	e.pc++

	return uint16(hi)<<8 | uint16(lo), true
}

func (e *Engine) haltOutOfBounds() {
	e.debug("Fetch past end of memory", log.Hex("pc", e.pc))
	e.Halt()
}

// skip discards the next instruction by fetching it.
func (e *Engine) skip() {
	e.fetch()
}

func (e *Engine) skipIf(condition bool) {
	if condition {
		e.skip()
	}
}

// execute runs a single decoded instruction. Unknown encodings are ignored.
func (e *Engine) execute(opcode uint16) {
	var (
		x   = byte(opcode>>8) & 0xF
		y   = byte(opcode>>4) & 0xF
		n   = byte(opcode) & 0xF
		nn  = byte(opcode)
		nnn = opcode & addressMask
	)

	switch opcode >> 12 {
	case 0x0:
		switch nnn {
		case 0x0E0: // CLS
			e.display.clear()
		case 0x0EE: // RET
			e.ret()
		}

	case 0x1: // JP nnn
		e.pc = nnn

	case 0x2: // CALL nnn
		e.stack.push(e.pc)
		e.pc = nnn

	case 0x3: // SE Vx, nn
		e.skipIf(e.v[x] == nn)

	case 0x4: // SNE Vx, nn
		e.skipIf(e.v[x] != nn)

	case 0x5: // SE Vx, Vy
		if n == 0 {
			e.skipIf(e.v[x] == e.v[y])
		}

	case 0x6: // LD Vx, nn
		e.v[x] = nn

	case 0x7: // ADD Vx, nn, VF is not affected
		e.v[x] += nn

	case 0x8:
		e.executeALU(x, y, n)

	case 0x9: // SNE Vx, Vy
		if n == 0 {
			e.skipIf(e.v[x] != e.v[y])
		}

	case 0xA: // LD I, nnn
		e.i = nnn

	case 0xB: // JP V0, nnn
		e.pc = nnn + uint16(e.v[0])

	case 0xC: // RND Vx, nn
		e.v[x] = e.random.Byte() & nn

	case 0xD: // DRW Vx, Vy, n
		e.draw(e.v[x], e.v[y], n)

	case 0xE:
		key := e.v[x]
		switch nn {
		case 0x9E: // SKP Vx
			e.skipIf(e.keys.pressed(key))
		case 0xA1: // SKNP Vx
			e.skipIf(!e.keys.pressed(key))
		}

	case 0xF:
		e.executeMisc(x, nn)
	}
}

// executeALU runs the register to register instructions of the 8XYN family.
func (e *Engine) executeALU(x, y, n byte) {
	switch n {
	case 0x0: // LD Vx, Vy
		e.v[x] = e.v[y]

	case 0x1: // OR Vx, Vy
		e.v[x] |= e.v[y]

	case 0x2: // AND Vx, Vy
		e.v[x] &= e.v[y]

	case 0x3: // XOR Vx, Vy
		e.v[x] ^= e.v[y]

	case 0x4: // ADD Vx, Vy, VF = carry
		sum := uint16(e.v[x]) + uint16(e.v[y])
		e.v[x] = byte(sum)
		e.v[flagRegister] = byte(sum >> 8)

	case 0x5: // SUB Vx, Vy, VF = not borrow
		e.v[x], e.v[flagRegister] = subtract(e.v[x], e.v[y])

	case 0x6: // SHR Vx, Vy, VF = shifted out bit
		value := e.v[y]
		e.v[x] = value >> 1
		e.v[flagRegister] = value & 0x1

	case 0x7: // SUBN Vx, Vy, VF = not borrow
		e.v[x], e.v[flagRegister] = subtract(e.v[y], e.v[x])

	case 0xE: // SHL Vx, Vy, VF = shifted out bit
		wide := uint16(e.v[y]) << 1
		e.v[x] = byte(wide)
		e.v[flagRegister] = byte(wide >> 8)
	}
}

// subtract returns a-b and the inverted borrow. Bit 8 of the minuend is set
// before subtracting so that it survives exactly when no borrow occurs.
func subtract(a, b byte) (result, flag byte) {
	wide := (0x100 | uint16(a)) - uint16(b)
	return byte(wide), byte(wide >> 8)
}

// executeMisc runs the instructions of the FXNN family.
func (e *Engine) executeMisc(x, nn byte) {
	switch nn {
	case 0x07: // LD Vx, DT
		e.v[x] = e.DelayTimer()

	case 0x0A: // LD Vx, K
		e.keyTarget = int(x)
		e.state = Blocked
		e.debug("Waiting for key", log.Int("register", int(x)))

	case 0x15: // LD DT, Vx
		e.timers.delay.Store(uint32(e.v[x]))

	case 0x18: // LD ST, Vx
		e.timers.sound.Store(uint32(e.v[x]))

	case 0x1E: // ADD I, Vx
		e.i = (e.i + uint16(e.v[x])) & addressMask

	case 0x29: // LD F, Vx
		e.i = glyphAddress(e.v[x])

	case 0x33: // LD B, Vx
		value := e.v[x]
		e.mem.write(e.i, value/100%10)
		e.mem.write(e.i+1, value/10%10)
		e.mem.write(e.i+2, value%10)

	case 0x55: // LD [I], Vx
		for r := uint16(0); r <= uint16(x); r++ {
			e.mem.write(e.i+r, e.v[r])
		}
		e.i = (e.i + uint16(x) + 1) & addressMask

	case 0x65: // LD Vx, [I]
		for r := uint16(0); r <= uint16(x); r++ {
			e.v[r] = e.mem.read(e.i + r)
		}
		e.i = (e.i + uint16(x) + 1) & addressMask
	}
}

// ret returns from a subroutine. Returning with an empty call stack is ignored.
func (e *Engine) ret() {
	address, ok := e.stack.pop()
	if !ok {
		e.debug("Return with empty call stack ignored", log.Hex("pc", e.pc))
		return
	}
	e.pc = address
}

// draw reads n sprite lines starting at the address register and composites
// them onto the display. VF is set to 1 if any lit pixel was turned off.
func (e *Engine) draw(column, row, n byte) {
	var sprite [15]byte
	for line := range sprite[:n] {
		sprite[line] = e.mem.read(e.i + uint16(line))
	}

	var flag byte
	if e.display.drawSprite(column, row, sprite[:n]) {
		flag = 1
	}
	e.v[flagRegister] = flag
}
