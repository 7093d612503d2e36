package terminal

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/keymap"
	"github.com/retroenv/retrogolib/assert"
)

func newTestTerminal(out *bytes.Buffer) (*Terminal, *time.Time) {
	now := time.Unix(100, 0)
	term := New(out, keymap.MustParse(keymap.Default), 100*time.Millisecond)
	term.clock = func() time.Time { return now }
	return term, &now
}

func TestKeysAreHeld(t *testing.T) {
	term, now := newTestTerminal(&bytes.Buffer{})

	term.handleByte('w')
	snapshot := term.Poll()
	assert.True(t, snapshot.Keys[0x5])
	assert.False(t, snapshot.Keys[0x4])

	*now = now.Add(99 * time.Millisecond)
	assert.True(t, term.Poll().Keys[0x5])

	*now = now.Add(time.Millisecond)
	assert.False(t, term.Poll().Keys[0x5])
}

func TestControlKeys(t *testing.T) {
	term, _ := newTestTerminal(&bytes.Buffer{})

	term.handleByte('\r')
	term.handleByte('n')
	snapshot := term.Poll()
	assert.True(t, snapshot.ToggleStep)
	assert.True(t, snapshot.Step)
	assert.False(t, snapshot.Quit)

	snapshot = term.Poll()
	assert.False(t, snapshot.ToggleStep)
	assert.False(t, snapshot.Step)

	term.handleByte(0x03)
	assert.True(t, term.Poll().Quit)
	assert.True(t, term.Poll().Quit)
}

func TestEscapeQuits(t *testing.T) {
	term, _ := newTestTerminal(&bytes.Buffer{})
	term.handleInput([]byte{0x1b})
	assert.True(t, term.Poll().Quit)
}

func TestEscapeSequencesAreIgnored(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"cursor up", "\x1b[A"},
		{"cursor left", "\x1b[D"},
		{"function key", "\x1bOP"},
		{"function key 5", "\x1b[15~"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			term, _ := newTestTerminal(&bytes.Buffer{})
			term.handleInput([]byte(tt.input))

			snapshot := term.Poll()
			assert.False(t, snapshot.Quit)
			assert.Equal(t, chip8.Keys{}, snapshot.Keys)
		})
	}
}

func TestKeysBeforeEscapeSequence(t *testing.T) {
	term, _ := newTestTerminal(&bytes.Buffer{})
	term.handleInput([]byte("w\x1b[B"))

	snapshot := term.Poll()
	assert.True(t, snapshot.Keys[0x5])
	assert.False(t, snapshot.Quit)
}

func TestReadLoopQuitsOnEOF(t *testing.T) {
	term, _ := newTestTerminal(&bytes.Buffer{})
	term.readLoop(strings.NewReader("1"))

	snapshot := term.Poll()
	assert.True(t, snapshot.Keys[0x1])
	assert.True(t, snapshot.Quit)
}

func TestRender(t *testing.T) {
	var out bytes.Buffer
	term, _ := newTestTerminal(&out)

	var frame chip8.Frame
	frame.Set(1, 0, true)
	assert.NoError(t, term.Render(frame))

	text := strings.TrimPrefix(out.String(), cursorHome)
	lines := strings.Split(strings.TrimSuffix(text, "\r\n"), "\r\n")
	assert.Len(t, lines, chip8.DisplayHeight)
	assert.True(t, strings.HasPrefix(lines[0], "  ██  "))
	assert.Equal(t, strings.Repeat(" ", 2*chip8.DisplayWidth), lines[1])
}

func TestCloseWithoutStart(t *testing.T) {
	term, _ := newTestTerminal(&bytes.Buffer{})
	assert.NoError(t, term.Close())
}
