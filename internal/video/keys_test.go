//go:build !headless

package video

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/retroenv/retrochip8/internal/keymap"
	"github.com/retroenv/retrogolib/assert"
)

func TestResolveKeysDefault(t *testing.T) {
	keys, err := resolveKeys(keymap.MustParse(keymap.Default))
	assert.NoError(t, err)
	assert.Equal(t, ebiten.KeyX, keys[0x0])
	assert.Equal(t, ebiten.KeyDigit1, keys[0x1])
	assert.Equal(t, ebiten.KeyQ, keys[0x4])
	assert.Equal(t, ebiten.KeyDigit4, keys[0xC])
	assert.Equal(t, ebiten.KeyV, keys[0xF])
}

func TestResolveKeysUnsupported(t *testing.T) {
	_, err := resolveKeys(keymap.MustParse("0123456789abcde!"))
	assert.ErrorContains(t, err, "key F has no keyboard key")
}

func TestNewStepKey(t *testing.T) {
	w, err := New(keymap.MustParse(keymap.Default), 0, nil)
	assert.NoError(t, err)
	assert.True(t, w.stepOK)
	assert.Equal(t, DefaultScale, w.scale)

	w, err = New(keymap.MustParse("0123456789abcden"), 10, nil)
	assert.NoError(t, err)
	assert.False(t, w.stepOK)
}

func TestWindowPollEdges(t *testing.T) {
	w, err := New(keymap.MustParse(keymap.Default), 1, nil)
	assert.NoError(t, err)

	w.input.Step = true
	w.input.ToggleStep = true
	w.input.Keys[3] = true

	snapshot := w.Poll()
	assert.True(t, snapshot.Step)
	assert.True(t, snapshot.ToggleStep)
	assert.True(t, snapshot.Keys[3])

	snapshot = w.Poll()
	assert.False(t, snapshot.Step)
	assert.False(t, snapshot.ToggleStep)
	assert.True(t, snapshot.Keys[3])

	width, height := w.Layout(0, 0)
	assert.Equal(t, 64, width)
	assert.Equal(t, 32+statusBarHeight, height)
}
