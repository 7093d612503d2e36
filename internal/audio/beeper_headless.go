//go:build headless

package audio

import "errors"

// ErrUnavailable is returned when the binary was built without audio support.
var ErrUnavailable = errors.New("audio output is not available in headless builds")

// Beeper is unavailable in headless builds.
type Beeper struct{}

// NewBeeper always fails in headless builds.
func NewBeeper(int, int) (*Beeper, error) {
	return nil, ErrUnavailable
}

// SetTone does nothing.
func (b *Beeper) SetTone(bool) {}

// Close does nothing.
func (b *Beeper) Close() error {
	return nil
}
