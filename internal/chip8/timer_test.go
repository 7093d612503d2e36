package chip8

import (
	"sync"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestTimersCountDown(t *testing.T) {
	var timers Timers
	timers.SetDelay(5)
	timers.SetSound(2)
	assert.True(t, timers.SoundActive())

	assert.True(t, timers.Tick())
	assert.False(t, timers.Tick())
	assert.False(t, timers.SoundActive())

	for range 3 {
		timers.Tick()
	}
	assert.Equal(t, uint8(0), timers.Delay())

	timers.Tick()
	assert.Equal(t, uint8(0), timers.Delay())
	assert.Equal(t, uint8(0), timers.Sound())
}

func TestTimersConcurrentAccess(t *testing.T) {
	var timers Timers
	timers.SetDelay(255)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for range 100 {
			timers.Tick()
		}
	}()
	go func() {
		defer wg.Done()
		for range 100 {
			_ = timers.Delay()
		}
	}()
	wg.Wait()

	assert.Equal(t, uint8(155), timers.Delay())
}
