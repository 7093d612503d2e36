package audio

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestSquareSilentWhenOff(t *testing.T) {
	s := NewSquare(8, 2, 0.5)

	buf := make([]byte, 16)
	n, err := s.Read(buf)
	assert.NoError(t, err)
	assert.Equal(t, 16, n)
	for i := range 4 {
		assert.Equal(t, float32(0), sampleAt(buf, i))
	}
}

func TestSquareWaveform(t *testing.T) {
	s := NewSquare(8, 2, 0.5) // four samples per period
	s.SetTone(true)
	assert.True(t, s.On())

	buf := make([]byte, 8*4)
	_, err := s.Read(buf)
	assert.NoError(t, err)

	expected := []float32{0.5, 0.5, -0.5, -0.5, 0.5, 0.5, -0.5, -0.5}
	for i, want := range expected {
		assert.Equal(t, want, sampleAt(buf, i), "sample %d", i)
	}
}

func TestSquarePhaseRestarts(t *testing.T) {
	s := NewSquare(8, 2, 0.5)
	s.SetTone(true)
	s.Next()
	s.Next()
	assert.Equal(t, float32(-0.5), s.Next())

	s.SetTone(false)
	assert.Equal(t, float32(0), s.Next())

	s.SetTone(true)
	assert.Equal(t, float32(0.5), s.Next())
}

func TestSquarePartialSample(t *testing.T) {
	s := NewSquare(8, 2, 0.5)
	n, err := s.Read(make([]byte, 6))
	assert.NoError(t, err)
	assert.Equal(t, 4, n)
}

func sampleAt(buf []byte, i int) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(buf[i*4:]))
}
