package vm

import (
	"context"
	"sync/atomic"
	"time"
)

// TickInterval is the period of the 60Hz timers. It also bounds the wall
// clock duration of a single DoFrame burst.
const TickInterval = time.Second / 60

// timers holds the delay and sound countdown counters. They are shared with
// the goroutine that decrements them.
type timers struct {
	delay atomic.Uint32
	sound atomic.Uint32

	cancel context.CancelFunc
	done   chan struct{}
}

// start launches the goroutine that decrements the counters every interval.
func (t *timers) start(interval time.Duration) {
	ctx, cancel := context.WithCancel(context.Background())
	t.cancel = cancel
	t.done = make(chan struct{})
	go t.run(ctx, interval)
}

// stop signals the goroutine to exit and waits for it.
func (t *timers) stop() {
	if t.cancel == nil {
		return
	}
	t.cancel()
	<-t.done
}

// run decrements the counters until the context is cancelled.
func (t *timers) run(ctx context.Context, interval time.Duration) {
	defer close(t.done)

	sched := newSchedule(time.Now(), interval)
	timer := time.NewTimer(interval)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
		}
		if ctx.Err() != nil {
			return
		}

		t.tick()
		timer.Reset(sched.advance(time.Now()))
	}
}

// schedule computes wake times from a fixed origin so that late wakeups do
// not accumulate into drift.
type schedule struct {
	origin   time.Time
	interval time.Duration
	ticks    time.Duration
}

func newSchedule(origin time.Time, interval time.Duration) schedule {
	return schedule{origin: origin, interval: interval}
}

// advance records one elapsed tick and returns the wait from now until the
// next tick is due. The wait is negative when the next tick is already late.
func (s *schedule) advance(now time.Time) time.Duration {
	s.ticks++
	return s.origin.Add((s.ticks + 1) * s.interval).Sub(now)
}

// tick decrements every nonzero counter by one.
func (t *timers) tick() {
	decrement(&t.delay)
	decrement(&t.sound)
}

func decrement(counter *atomic.Uint32) {
	for {
		v := counter.Load()
		if v == 0 || counter.CompareAndSwap(v, v-1) {
			return
		}
	}
}
