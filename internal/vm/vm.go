package vm

import (
	"sync"
	"time"

	"github.com/retroenv/retrogolib/log"
)

// Engine is a CHIP-8 virtual machine instance. It exclusively owns its memory,
// registers, call stack and display. All methods except the timer accessors
// must be called from a single goroutine.
type Engine struct {
	mem     Memory
	v       Registers
	i       uint16 // address register, 12 bits
	pc      uint16
	stack   callStack
	display Display
	keys    keyLatch
	timers  timers

	state     State
	keyTarget int // register waiting for a key press or noKeyTarget

	speed  int // instructions per frame, 0 is unbounded
	random RandomSource
	logger *log.Logger
	trace  bool

	tickInterval time.Duration
	closeOnce    sync.Once
}

// Option configures an engine.
type Option func(*Engine)

// WithSpeed sets the maximum number of instructions that DoFrame executes.
// 0 disables the limit, a burst is then only bounded by one timer tick.
func WithSpeed(instructions int) Option {
	return func(e *Engine) { e.SetSpeed(instructions) }
}

// WithLogger sets the logger used for state transition and trace output.
func WithLogger(logger *log.Logger) Option {
	return func(e *Engine) { e.logger = logger }
}

// WithTrace enables debug logging of every executed instruction.
func WithTrace(enabled bool) Option {
	return func(e *Engine) { e.trace = enabled }
}

// WithRandom replaces the random byte source.
func WithRandom(source RandomSource) Option {
	return func(e *Engine) { e.random = source }
}

// New returns a running engine with the font and the given program image
// loaded into memory. Bytes of the program that do not fit into memory are
// dropped. The timer goroutine is started and keeps running until Close
// is called.
func New(program []byte, opts ...Option) *Engine {
	e := &Engine{
		pc:           ProgramStart,
		keyTarget:    noKeyTarget,
		state:        Loading,
		tickInterval: TickInterval,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.random == nil {
		e.random = newRandomSource()
	}

	copy(e.mem[FontStart:], font[:])
	loaded := copy(e.mem[ProgramStart:], program)
	if loaded < len(program) {
		e.warn("Program image truncated",
			log.Int("size", len(program)),
			log.Int("loaded", loaded))
	}

	e.timers.start(e.tickInterval)
	e.state = Running
	e.debug("Engine started", log.Int("program_size", loaded), log.Int("speed", e.speed))
	return e
}

// Close halts the engine and stops the timer goroutine. It is safe to call
// Close multiple times.
func (e *Engine) Close() {
	e.closeOnce.Do(func() {
		e.Halt()
		e.timers.stop()
	})
}

// Halt moves the engine into the terminal Halted state.
func (e *Engine) Halt() {
	if e.state == Halted {
		return
	}
	e.state = Halted
	e.debug("Engine halted", log.Hex("pc", e.pc))
}

// SetSpeed sets the maximum number of instructions per DoFrame call,
// 0 disables the limit. Negative values are treated as 0.
func (e *Engine) SetSpeed(instructions int) {
	if instructions < 0 {
		instructions = 0
	}
	e.speed = instructions
}

// State returns the current execution state.
func (e *Engine) State() State { return e.state }

// IsRunning reports whether the engine executes instructions.
func (e *Engine) IsRunning() bool { return e.state == Running }

// IsLive reports whether the engine has not halted. A blocked engine is live.
func (e *Engine) IsLive() bool { return e.state != Halted }

// PC returns the program counter.
func (e *Engine) PC() uint16 { return e.pc }

// Index returns the address register.
func (e *Engine) Index() uint16 { return e.i }

// Registers returns a copy of the general purpose registers.
func (e *Engine) Registers() Registers { return e.v }

// Display returns a copy of the display buffer.
func (e *Engine) Display() Display { return e.display }

// DelayTimer returns the current value of the delay timer.
func (e *Engine) DelayTimer() byte { return byte(e.timers.delay.Load()) }

// SoundTimer returns the current value of the sound timer.
func (e *Engine) SoundTimer() byte { return byte(e.timers.sound.Load()) }

// SoundActive reports whether the sound timer is nonzero.
func (e *Engine) SoundActive() bool { return e.timers.sound.Load() != 0 }

// DoFrame executes instructions while the engine is running until either the
// speed limit is reached or one timer tick of wall clock time has passed.
// It returns the number of executed instructions.
func (e *Engine) DoFrame() int {
	executed := 0
	start := time.Now()

	for e.state == Running && (e.speed == 0 || executed < e.speed) {
		e.Step()
		executed++

		if time.Since(start) >= e.tickInterval {
			break
		}
	}
	return executed
}

func (e *Engine) debug(msg string, fields ...log.Field) {
	if e.logger != nil {
		e.logger.Debug(msg, fields...)
	}
}

func (e *Engine) warn(msg string, fields ...log.Field) {
	if e.logger != nil {
		e.logger.Warn(msg, fields...)
	}
}

func keyField(code byte) log.Field {
	return log.Hex("key", code)
}
