package wavrecorder

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-audio/wav"
	"github.com/retroenv/retrogolib/assert"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

func TestRecorder(t *testing.T) {
	clock := &fakeClock{now: time.Unix(0, 0)}
	path := filepath.Join(t.TempDir(), "beep.wav")
	r := New(path, 1000, 250, WithClock(clock.Now))

	clock.Advance(10 * time.Millisecond)
	r.SetTone(true)
	assert.Equal(t, 10, r.Samples())

	clock.Advance(20 * time.Millisecond)
	r.SetTone(true) // no change
	assert.Equal(t, 10, r.Samples())

	r.SetTone(false)
	assert.Equal(t, 30, r.Samples())

	clock.Advance(5 * time.Millisecond)
	assert.NoError(t, r.Close())

	file, err := os.Open(path)
	assert.NoError(t, err)
	defer func() { _ = file.Close() }()

	dec := wav.NewDecoder(file)
	assert.True(t, dec.IsValidFile())

	buf, err := dec.FullPCMBuffer()
	assert.NoError(t, err)
	assert.Equal(t, uint32(1000), dec.SampleRate)
	assert.Equal(t, uint16(1), dec.NumChans)
	assert.Equal(t, 35, len(buf.Data))

	for i := range 10 {
		assert.Equal(t, 0, buf.Data[i], "sample %d", i)
	}
	assert.True(t, buf.Data[10] > 0)
	assert.True(t, buf.Data[12] < 0)
	assert.Equal(t, 0, buf.Data[34])
}

func TestRecorderMultipleChunks(t *testing.T) {
	clock := &fakeClock{now: time.Unix(0, 0)}
	path := filepath.Join(t.TempDir(), "long.wav")
	r := New(path, 1000, 250, WithClock(clock.Now))

	r.SetTone(true)
	clock.Advance(5 * time.Second)
	assert.NoError(t, r.Close())

	info, err := os.Stat(path)
	assert.NoError(t, err)
	assert.Equal(t, int64(44+2*5000), info.Size())

	file, err := os.Open(path)
	assert.NoError(t, err)
	defer func() { _ = file.Close() }()

	buf, err := wav.NewDecoder(file).FullPCMBuffer()
	assert.NoError(t, err)
	assert.Equal(t, 5000, len(buf.Data))

	for i := encodeChunk - 4; i < encodeChunk+4; i++ {
		if i%4 < 2 {
			assert.True(t, buf.Data[i] > 0, "sample %d", i)
		} else {
			assert.True(t, buf.Data[i] < 0, "sample %d", i)
		}
	}
}

func TestRecorderCreateError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "beep.wav")
	r := New(path, 1000, 250)
	assert.ErrorContains(t, r.Close(), "creating wav file")
}
