// Package keymap maps characters of a physical keyboard to the 16 logical
// keys of the keypad.
package keymap

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/retroenv/retrochip8/internal/chip8"
)

// Default maps the 4x4 keypad
//
//	1 2 3 C
//	4 5 6 D
//	7 8 9 E
//	A 0 B F
//
// onto the left side of a QWERTY keyboard. Character i is bound to key i.
const Default = "x123qweasdzc4rfv"

var errInvalidLength = errors.New("keymap must contain exactly 16 characters")

// Keymap resolves characters to logical keys.
type Keymap struct {
	layout string
	keys   map[rune]uint8
}

// Parse creates a keymap from a string of 16 unique characters, the character
// at position i is bound to key i. Letters are matched case insensitive.
func Parse(layout string) (Keymap, error) {
	layout = strings.ToLower(layout)
	if utf8.RuneCountInString(layout) != chip8.KeyCount {
		return Keymap{}, fmt.Errorf("%w: %q", errInvalidLength, layout)
	}

	keys := make(map[rune]uint8, chip8.KeyCount)
	var key uint8
	for _, r := range layout {
		if previous, ok := keys[r]; ok {
			return Keymap{}, fmt.Errorf("character %q bound to key %X and %X", r, previous, key)
		}
		keys[r] = key
		key++
	}

	return Keymap{layout: layout, keys: keys}, nil
}

// MustParse is like Parse but panics on an invalid layout.
func MustParse(layout string) Keymap {
	m, err := Parse(layout)
	if err != nil {
		panic(err)
	}
	return m
}

// Key returns the logical key bound to the character.
func (m Keymap) Key(r rune) (uint8, bool) {
	key, ok := m.keys[unicode.ToLower(r)]
	return key, ok
}

// Char returns the character bound to the logical key.
func (m Keymap) Char(key uint8) rune {
	for r, k := range m.keys {
		if k == key {
			return r
		}
	}
	return 0
}

func (m Keymap) String() string {
	return m.layout
}

