// Package terminal runs the machine in a raw mode text terminal.
//
// Terminals report key presses but no releases, a pressed key is therefore
// held for a fixed duration after its last press. Key repeat of the
// terminal keeps a key held down continuously.
package terminal

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/host"
	"github.com/retroenv/retrochip8/internal/keymap"
	"golang.org/x/term"
)

// DefaultHoldDuration is the time a key stays pressed after a key press.
const DefaultHoldDuration = 150 * time.Millisecond

const (
	keyCtrlC  = 0x03
	keyEscape = 0x1b
	keyEnter  = '\r'
	keyStep   = 'n'

	cursorHome  = "\x1b[H"
	clearScreen = "\x1b[2J"
	hideCursor  = "\x1b[?25l"
	showCursor  = "\x1b[?25h"
)

// Terminal implements host.Renderer and host.Input on a terminal.
type Terminal struct {
	out    io.Writer
	keymap keymap.Keymap
	hold   time.Duration
	clock  func() time.Time

	fd       int
	oldState *term.State

	mu      sync.Mutex
	pressed [chip8.KeyCount]time.Time
	quit    bool
	step    bool
	toggle  bool
}

// New returns a terminal that renders to out.
func New(out io.Writer, km keymap.Keymap, hold time.Duration) *Terminal {
	if hold <= 0 {
		hold = DefaultHoldDuration
	}
	return &Terminal{
		out:    out,
		keymap: km,
		hold:   hold,
		clock:  time.Now,
		fd:     -1,
	}
}

// Start switches the input file into raw mode and starts reading keys from
// it in a new goroutine.
func (t *Terminal) Start(in *os.File) error {
	fd := int(in.Fd())
	if !term.IsTerminal(fd) {
		return errors.New("input is not a terminal")
	}

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("setting terminal raw mode: %w", err)
	}
	t.fd = fd
	t.oldState = oldState

	if _, err := io.WriteString(t.out, clearScreen+hideCursor); err != nil {
		return fmt.Errorf("writing to terminal: %w", err)
	}

	go t.readLoop(in)
	return nil
}

// Close restores the previous terminal state.
func (t *Terminal) Close() error {
	if t.oldState == nil {
		return nil
	}
	_, _ = io.WriteString(t.out, showCursor+"\r\n")
	if err := term.Restore(t.fd, t.oldState); err != nil {
		return fmt.Errorf("restoring terminal state: %w", err)
	}
	t.oldState = nil
	return nil
}

func (t *Terminal) readLoop(in io.Reader) {
	buf := make([]byte, 16)
	for {
		n, err := in.Read(buf)
		t.handleInput(buf[:n])
		if err != nil {
			t.mu.Lock()
			t.quit = true
			t.mu.Unlock()
			return
		}
	}
}

// handleInput processes the bytes of a single read. A lone escape quits,
// an escape followed by more bytes starts a cursor or function key sequence
// that is dropped together with the rest of the read.
func (t *Terminal) handleInput(data []byte) {
	if len(data) == 1 && data[0] == keyEscape {
		t.mu.Lock()
		t.quit = true
		t.mu.Unlock()
		return
	}

	for _, b := range data {
		if b == keyEscape {
			return
		}
		t.handleByte(b)
	}
}

func (t *Terminal) handleByte(b byte) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if key, ok := t.keymap.Key(rune(b)); ok {
		t.pressed[key] = t.clock()
		return
	}

	switch b {
	case keyCtrlC:
		t.quit = true
	case keyEnter:
		t.toggle = true
	case keyStep:
		t.step = true
	}
}

// Poll implements host.Input. Step and toggle requests are reported once.
func (t *Terminal) Poll() host.Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()

	snapshot := host.Snapshot{
		Quit:       t.quit,
		Step:       t.step,
		ToggleStep: t.toggle,
	}
	t.step = false
	t.toggle = false

	now := t.clock()
	for key, at := range t.pressed {
		snapshot.Keys[key] = !at.IsZero() && now.Sub(at) < t.hold
	}
	return snapshot
}

// Render implements host.Renderer. Every pixel is drawn as two characters
// to keep the aspect ratio close to square.
func (t *Terminal) Render(frame chip8.Frame) error {
	var sb strings.Builder
	sb.Grow(len(cursorHome) + chip8.DisplayHeight*(chip8.DisplayWidth*2*3+2))
	sb.WriteString(cursorHome)

	for y := range chip8.DisplayHeight {
		for x := range chip8.DisplayWidth {
			if frame.Pixel(x, y) {
				sb.WriteString("██")
			} else {
				sb.WriteString("  ")
			}
		}
		sb.WriteString("\r\n")
	}

	if _, err := io.WriteString(t.out, sb.String()); err != nil {
		return fmt.Errorf("writing frame: %w", err)
	}
	return nil
}
