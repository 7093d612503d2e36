//go:build !headless

package audio

import (
	"fmt"

	"github.com/ebitengine/oto/v3"
)

// Beeper plays a square tone on the default audio device.
type Beeper struct {
	ctx    *oto.Context
	player *oto.Player
	tone   *Square
}

// NewBeeper opens the audio device and starts streaming the tone, which is
// initially off.
func NewBeeper(sampleRate, frequency int) (*Beeper, error) {
	options := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
	}

	ctx, ready, err := oto.NewContext(options)
	if err != nil {
		return nil, fmt.Errorf("creating audio context: %w", err)
	}
	<-ready

	tone := NewSquare(sampleRate, frequency, DefaultVolume)
	player := ctx.NewPlayer(tone)
	player.Play()

	return &Beeper{
		ctx:    ctx,
		player: player,
		tone:   tone,
	}, nil
}

// SetTone switches the tone on or off.
func (b *Beeper) SetTone(on bool) {
	b.tone.SetTone(on)
}

// Close stops the playback.
func (b *Beeper) Close() error {
	b.tone.SetTone(false)
	if err := b.player.Close(); err != nil {
		return fmt.Errorf("closing audio player: %w", err)
	}
	return nil
}
