// Package audio produces the beeper tone.
package audio

import (
	"encoding/binary"
	"math"
	"sync"
)

// Beeper defaults.
const (
	DefaultSampleRate = 44100
	DefaultFrequency  = 440
	DefaultVolume     = 0.25
)

// Square is a square wave generator that can be switched on and off. Read
// renders mono 32 bit float little endian samples and is safe to call from
// the audio device goroutine while the tone is switched.
type Square struct {
	mu        sync.Mutex
	on        bool
	phase     float64
	step      float64
	amplitude float32
}

// NewSquare returns a generator for the given sample rate and frequency.
func NewSquare(sampleRate, frequency int, volume float32) *Square {
	return &Square{
		step:      float64(frequency) / float64(sampleRate),
		amplitude: volume,
	}
}

// SetTone switches the tone on or off. The phase restarts when the tone is
// switched on.
func (s *Square) SetTone(on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if on && !s.on {
		s.phase = 0
	}
	s.on = on
}

// On returns whether the tone is switched on.
func (s *Square) On() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.on
}

// Next returns the next sample, silence if the tone is off.
func (s *Square) Next() float32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.next()
}

func (s *Square) next() float32 {
	if !s.on {
		return 0
	}

	sample := s.amplitude
	if s.phase >= 0.5 {
		sample = -sample
	}
	s.phase += s.step
	if s.phase >= 1 {
		s.phase -= 1
	}
	return sample
}

// Read fills p with float32 samples. It always fills complete samples and
// never returns an error.
func (s *Square) Read(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(p) / 4
	for i := range n {
		binary.LittleEndian.PutUint32(p[i*4:], math.Float32bits(s.next()))
	}
	return n * 4, nil
}
