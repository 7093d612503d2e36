// Package wavrecorder records the beeper output of a run to a WAV file.
//
// Tone changes are timestamped with a clock and rendered into a 16 bit mono
// PCM buffer, which is written to disk in chunks when the recorder is closed.
package wavrecorder

import (
	"fmt"
	"os"
	"slices"
	"sync"
	"time"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/retroenv/retrochip8/internal/audio"
)

const (
	bitDepth = 16

	// encodeChunk is the number of samples converted per encoder write.
	encodeChunk = 4096
)

// Clock returns the current time.
type Clock func() time.Time

// Recorder implements host.Audio by rendering the tone into a sample buffer.
type Recorder struct {
	path       string
	sampleRate int
	clock      Clock

	mu      sync.Mutex
	tone    *audio.Square
	on      bool
	start   time.Time
	samples []int16
}

// Option configures a recorder.
type Option func(*Recorder)

// WithClock sets the clock used to timestamp tone changes.
func WithClock(clock Clock) Option {
	return func(r *Recorder) {
		r.clock = clock
	}
}

// New returns a recorder that writes to path on Close.
func New(path string, sampleRate, frequency int, options ...Option) *Recorder {
	r := &Recorder{
		path:       path,
		sampleRate: sampleRate,
		clock:      time.Now,
		tone:       audio.NewSquare(sampleRate, frequency, audio.DefaultVolume),
	}
	for _, option := range options {
		option(r)
	}
	r.start = r.clock()
	return r
}

// SetTone renders the samples since the last change and switches the tone.
func (r *Recorder) SetTone(on bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if on == r.on {
		return
	}
	r.render()
	r.on = on
	r.tone.SetTone(on)
}

// Samples returns the number of samples rendered so far.
func (r *Recorder) Samples() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.samples)
}

// Close renders the remaining samples and writes the WAV file.
func (r *Recorder) Close() (err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.render()

	file, err := os.Create(r.path)
	if err != nil {
		return fmt.Errorf("creating wav file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("closing wav file: %w", closeErr)
		}
	}()

	enc := wav.NewEncoder(file, r.sampleRate, bitDepth, 1, 1)
	buf := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: 1,
			SampleRate:  r.sampleRate,
		},
		Data:           make([]int, 0, min(encodeChunk, len(r.samples))),
		SourceBitDepth: bitDepth,
	}
	for chunk := range slices.Chunk(r.samples, encodeChunk) {
		buf.Data = buf.Data[:0]
		for _, sample := range chunk {
			buf.Data = append(buf.Data, int(sample))
		}
		if err := enc.Write(buf); err != nil {
			return fmt.Errorf("writing wav samples: %w", err)
		}
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("closing wav encoder: %w", err)
	}
	return nil
}

// render appends the samples up to the current time.
func (r *Recorder) render() {
	elapsed := r.clock().Sub(r.start)
	total := int(elapsed.Nanoseconds() * int64(r.sampleRate) / int64(time.Second))
	for len(r.samples) < total {
		r.samples = append(r.samples, int16(r.tone.Next()*0x7FFF))
	}
}
