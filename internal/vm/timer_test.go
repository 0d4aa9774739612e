package vm

import (
	"testing"
	"time"

	"github.com/retroenv/retrogolib/assert"
)

func TestTimers_Tick(t *testing.T) {
	var tm timers
	tm.delay.Store(2)
	tm.sound.Store(1)

	tm.tick()
	assert.Equal(t, uint32(1), tm.delay.Load())
	assert.Equal(t, uint32(0), tm.sound.Load())

	tm.tick()
	tm.tick()
	assert.Equal(t, uint32(0), tm.delay.Load())
	assert.Equal(t, uint32(0), tm.sound.Load())
}

func TestTimers_RunCountsDown(t *testing.T) {
	var tm timers
	tm.delay.Store(5)
	tm.sound.Store(3)

	tm.start(time.Millisecond)
	defer tm.stop()

	deadline := time.Now().Add(2 * time.Second)
	for tm.delay.Load() != 0 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	assert.Equal(t, uint32(0), tm.delay.Load())
	assert.Equal(t, uint32(0), tm.sound.Load())
}

func TestSchedule_Advance(t *testing.T) {
	origin := time.Unix(1000, 0)
	interval := 10 * time.Millisecond
	sched := newSchedule(origin, interval)

	// first tick woke 3ms late, the next wait is shortened
	assert.Equal(t, 7*time.Millisecond, sched.advance(origin.Add(13*time.Millisecond)))
	// on time again, no lateness carried over
	assert.Equal(t, 10*time.Millisecond, sched.advance(origin.Add(20*time.Millisecond)))
	// third tick overslept past the fourth deadline, catch up immediately
	assert.Equal(t, -5*time.Millisecond, sched.advance(origin.Add(45*time.Millisecond)))
	assert.Equal(t, 5*time.Millisecond, sched.advance(origin.Add(45*time.Millisecond)))
}

func TestSchedule_NoDrift(t *testing.T) {
	origin := time.Unix(1000, 0)
	interval := TickInterval
	sched := newSchedule(origin, interval)

	// every wakeup is 2ms late, the deadlines stay on the origin grid
	now := origin.Add(interval)
	for range 600 {
		now = now.Add(2 * time.Millisecond)
		wait := sched.advance(now)
		now = now.Add(wait)
	}
	assert.Equal(t, origin.Add(601*interval), now)
}

func TestTimers_StopIsPrompt(t *testing.T) {
	var tm timers
	tm.start(time.Hour)

	stopped := make(chan struct{})
	go func() {
		tm.stop()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-time.After(2 * time.Second):
		t.Fatal("timer goroutine did not stop")
	}
}

func TestTimers_NoDecrementAfterStop(t *testing.T) {
	var tm timers
	tm.start(time.Millisecond)
	tm.stop()

	tm.delay.Store(10)
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, uint32(10), tm.delay.Load())
}

func TestTimers_StopWithoutStart(t *testing.T) {
	var tm timers
	tm.stop()
}

func TestEngine_SoundActive(t *testing.T) {
	e := newTestEngine(t, []byte{0x60, 0x02, 0xF0, 0x18})

	e.Step()
	e.Step()
	assert.True(t, e.SoundActive())

	deadline := time.Now().Add(2 * time.Second)
	for e.SoundActive() && time.Now().Before(deadline) {
		time.Sleep(TickInterval)
	}
	assert.False(t, e.SoundActive())
	assert.Equal(t, byte(0), e.SoundTimer())
}
