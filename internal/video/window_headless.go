//go:build headless

package video

import (
	"errors"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/host"
	"github.com/retroenv/retrochip8/internal/keymap"
	"github.com/retroenv/retrogolib/log"
)

// Window defaults.
const (
	Title        = "CHIP-8 Interpreter"
	DefaultScale = 15
)

// ErrUnavailable is returned when the binary was built without window support.
var ErrUnavailable = errors.New("window output is not available in headless builds")

// Window is unavailable in headless builds.
type Window struct{}

// New always fails in headless builds.
func New(keymap.Keymap, int, *log.Logger) (*Window, error) {
	return nil, ErrUnavailable
}

// Run does nothing.
func (w *Window) Run() error { return nil }

// Close does nothing.
func (w *Window) Close() {}

// SetStatus does nothing.
func (w *Window) SetStatus(string) {}

// Render does nothing.
func (w *Window) Render(chip8.Frame) error { return nil }

// Poll reports a quit request.
func (w *Window) Poll() host.Snapshot { return host.Snapshot{Quit: true} }
