//go:build !headless

package video

import (
	"fmt"
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/host"
	"github.com/retroenv/retrochip8/internal/keymap"
	"github.com/retroenv/retrogolib/log"
	"golang.design/x/clipboard"
	"golang.org/x/image/font/basicfont"
)

// Window defaults.
const (
	Title        = "CHIP-8 Interpreter"
	DefaultScale = 15
)

const statusBarHeight = 18

var (
	backgroundColor = color.RGBA{0x10, 0x10, 0x10, 0xff}
	litColor        = color.RGBA{0xe0, 0xe0, 0xe0, 0xff}
	dotColor        = color.RGBA{0x30, 0x30, 0x30, 0xff}
	statusColor     = color.RGBA{0xbe, 0xbe, 0xbe, 0xff}
)

// Window implements host.Renderer and host.Input with an ebiten window.
type Window struct {
	logger *log.Logger
	scale  int
	keys   [chip8.KeyCount]ebiten.Key
	stepOK bool // N is not bound to a keypad key

	lit *ebiten.Image
	dot *ebiten.Image

	mu         sync.Mutex
	frame      chip8.Frame
	input      host.Snapshot
	status     string
	showStatus bool
	closed     bool

	clipboardOnce sync.Once
	clipboardOK   bool
}

// New returns a window using the keymap. The window is shown by Run.
func New(km keymap.Keymap, scale int, logger *log.Logger) (*Window, error) {
	if scale <= 0 {
		scale = DefaultScale
	}
	keys, err := resolveKeys(km)
	if err != nil {
		return nil, err
	}
	_, nBound := km.Key('n')

	return &Window{
		logger:     logger,
		scale:      scale,
		keys:       keys,
		stepOK:     !nBound,
		showStatus: true,
	}, nil
}

// Run shows the window and blocks until it is closed by Close. It has to be
// called from the main goroutine.
func (w *Window) Run() error {
	width, height := w.Layout(0, 0)
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle(Title)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetRunnableOnUnfocused(true)

	if err := ebiten.RunGame(w); err != nil {
		return fmt.Errorf("running window: %w", err)
	}
	return nil
}

// Close ends Run on the next window update.
func (w *Window) Close() {
	w.mu.Lock()
	w.closed = true
	w.mu.Unlock()
}

// SetStatus sets the text of the status bar.
func (w *Window) SetStatus(status string) {
	w.mu.Lock()
	w.status = status
	w.mu.Unlock()
}

// Render implements host.Renderer.
func (w *Window) Render(frame chip8.Frame) error {
	w.mu.Lock()
	w.frame = frame
	w.mu.Unlock()
	return nil
}

// Poll implements host.Input. Step and toggle requests are reported once.
func (w *Window) Poll() host.Snapshot {
	w.mu.Lock()
	defer w.mu.Unlock()

	snapshot := w.input
	w.input.Step = false
	w.input.ToggleStep = false
	return snapshot
}

// Update implements ebiten.Game.
func (w *Window) Update() error {
	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl)
	shift := ebiten.IsKeyPressed(ebiten.KeyShift)
	copyFrame := ctrl && shift && inpututil.IsKeyJustPressed(ebiten.KeyC)

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return ebiten.Termination
	}

	switch {
	case ebiten.IsWindowBeingClosed(),
		inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		ctrl && !shift && inpututil.IsKeyJustPressed(ebiten.KeyC):
		w.input.Quit = true
	case copyFrame:
		w.copyFrame()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		w.input.ToggleStep = true
	}
	if w.stepOK && inpututil.IsKeyJustPressed(ebiten.KeyN) {
		w.input.Step = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		w.showStatus = !w.showStatus
	}

	for key, physical := range w.keys {
		w.input.Keys[key] = ebiten.IsKeyPressed(physical)
	}
	return nil
}

// Draw implements ebiten.Game.
func (w *Window) Draw(screen *ebiten.Image) {
	if w.lit == nil {
		w.lit = ebiten.NewImage(w.scale, w.scale)
		w.lit.Fill(litColor)
		w.dot = ebiten.NewImage(max(1, w.scale/5), max(1, w.scale/5))
		w.dot.Fill(dotColor)
	}

	w.mu.Lock()
	frame := w.frame
	status := w.status
	showStatus := w.showStatus
	w.mu.Unlock()

	screen.Fill(backgroundColor)

	dotOffset := float64(w.scale-w.dot.Bounds().Dx()) / 2
	for y := range chip8.DisplayHeight {
		for x := range chip8.DisplayWidth {
			op := &ebiten.DrawImageOptions{}
			px := float64(x * w.scale)
			py := float64(y * w.scale)
			if frame.Pixel(x, y) {
				op.GeoM.Translate(px, py)
				screen.DrawImage(w.lit, op)
			} else {
				op.GeoM.Translate(px+dotOffset, py+dotOffset)
				screen.DrawImage(w.dot, op)
			}
		}
	}

	if showStatus && status != "" {
		baseline := chip8.DisplayHeight*w.scale + statusBarHeight - 5
		text.Draw(screen, status, basicfont.Face7x13, 4, baseline, statusColor)
	}
}

// Layout implements ebiten.Game.
func (w *Window) Layout(_, _ int) (int, int) {
	return chip8.DisplayWidth * w.scale, chip8.DisplayHeight*w.scale + statusBarHeight
}

// copyFrame copies the display as text to the clipboard.
func (w *Window) copyFrame() {
	w.clipboardOnce.Do(func() {
		if err := clipboard.Init(); err != nil {
			w.logger.Warn("Clipboard not available", log.Err(err))
			return
		}
		w.clipboardOK = true
	})
	if !w.clipboardOK {
		return
	}

	clipboard.Write(clipboard.FmtText, []byte(w.frame.String()))
	w.logger.Info("Display copied to clipboard")
}
