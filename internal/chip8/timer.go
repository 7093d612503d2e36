package chip8

import "sync"

// Timers holds the delay and sound countdown registers. They are shared
// between the goroutine executing instructions and the goroutine ticking the
// timers, every access is guarded by a single lock.
type Timers struct {
	mu    sync.Mutex
	delay uint8
	sound uint8
}

// Tick decrements both timers by one if they are above zero. It returns
// whether the sound timer is still running afterwards.
func (t *Timers) Tick() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.delay > 0 {
		t.delay--
	}
	if t.sound > 0 {
		t.sound--
	}
	return t.sound > 0
}

// Delay returns the current delay timer value.
func (t *Timers) Delay() uint8 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.delay
}

// SetDelay sets the delay timer.
func (t *Timers) SetDelay(value uint8) {
	t.mu.Lock()
	t.delay = value
	t.mu.Unlock()
}

// Sound returns the current sound timer value.
func (t *Timers) Sound() uint8 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.sound
}

// SetSound sets the sound timer.
func (t *Timers) SetSound(value uint8) {
	t.mu.Lock()
	t.sound = value
	t.mu.Unlock()
}

// SoundActive returns whether the tone should currently be audible.
func (t *Timers) SoundActive() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.sound > 0
}

func (t *Timers) reset() {
	t.mu.Lock()
	t.delay = 0
	t.sound = 0
	t.mu.Unlock()
}
