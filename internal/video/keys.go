//go:build !headless

package video

import (
	"fmt"
	"unicode"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/keymap"
)

var physicalKeys = map[rune]ebiten.Key{
	'0': ebiten.KeyDigit0, '1': ebiten.KeyDigit1, '2': ebiten.KeyDigit2, '3': ebiten.KeyDigit3,
	'4': ebiten.KeyDigit4, '5': ebiten.KeyDigit5, '6': ebiten.KeyDigit6, '7': ebiten.KeyDigit7,
	'8': ebiten.KeyDigit8, '9': ebiten.KeyDigit9,
	'a': ebiten.KeyA, 'b': ebiten.KeyB, 'c': ebiten.KeyC, 'd': ebiten.KeyD, 'e': ebiten.KeyE,
	'f': ebiten.KeyF, 'g': ebiten.KeyG, 'h': ebiten.KeyH, 'i': ebiten.KeyI, 'j': ebiten.KeyJ,
	'k': ebiten.KeyK, 'l': ebiten.KeyL, 'm': ebiten.KeyM, 'n': ebiten.KeyN, 'o': ebiten.KeyO,
	'p': ebiten.KeyP, 'q': ebiten.KeyQ, 'r': ebiten.KeyR, 's': ebiten.KeyS, 't': ebiten.KeyT,
	'u': ebiten.KeyU, 'v': ebiten.KeyV, 'w': ebiten.KeyW, 'x': ebiten.KeyX, 'y': ebiten.KeyY,
	'z': ebiten.KeyZ,
	',': ebiten.KeyComma, '.': ebiten.KeyPeriod, '/': ebiten.KeySlash, ';': ebiten.KeySemicolon,
	'-': ebiten.KeyMinus, '=': ebiten.KeyEqual, '[': ebiten.KeyBracketLeft, ']': ebiten.KeyBracketRight,
}

// resolveKeys returns the physical key bound to every logical key.
func resolveKeys(km keymap.Keymap) ([chip8.KeyCount]ebiten.Key, error) {
	var keys [chip8.KeyCount]ebiten.Key
	for i := range chip8.KeyCount {
		r := unicode.ToLower(km.Char(uint8(i)))
		key, ok := physicalKeys[r]
		if !ok {
			return keys, fmt.Errorf("character %q of key %X has no keyboard key", r, i)
		}
		keys[i] = key
	}
	return keys, nil
}
