// Package keymap maps keyboard characters to CHIP-8 key codes.
package keymap

import (
	"fmt"
	"sort"
	"strings"
	"unicode"
)

// Layout names.
const (
	QWERTY = "qwerty"
	Hex    = "hex"
)

// Keymap maps a keyboard character to a key code of the hexadecimal keypad.
type Keymap map[rune]byte

// The QWERTY layout places the 4x4 keypad on the left side of the keyboard:
//
//	1 2 3 4      1 2 3 C
//	q w e r      4 5 6 D
//	a s d f  ->  7 8 9 E
//	z x c v      A 0 B F
var qwerty = Keymap{
	'1': 0x1, '2': 0x2, '3': 0x3, '4': 0xC,
	'q': 0x4, 'w': 0x5, 'e': 0x6, 'r': 0xD,
	'a': 0x7, 's': 0x8, 'd': 0x9, 'f': 0xE,
	'z': 0xA, 'x': 0x0, 'c': 0xB, 'v': 0xF,
}

// The hex layout maps every hexadecimal digit to its own key.
var hex = Keymap{
	'1': 0x1, '2': 0x2, '3': 0x3, 'c': 0xC,
	'4': 0x4, '5': 0x5, '6': 0x6, 'd': 0xD,
	'7': 0x7, '8': 0x8, '9': 0x9, 'e': 0xE,
	'a': 0xA, '0': 0x0, 'b': 0xB, 'f': 0xF,
}

var layouts = map[string]Keymap{
	QWERTY: qwerty,
	Hex:    hex,
}

// Lookup returns the layout with the given name.
func Lookup(name string) (Keymap, error) {
	km, ok := layouts[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unsupported keymap '%s'", name)
	}
	return km, nil
}

// Names returns the sorted names of all layouts.
func Names() []string {
	names := make([]string, 0, len(layouts))
	for name := range layouts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Code returns the key code for the given character. Letters match
// case insensitively.
func (k Keymap) Code(r rune) (byte, bool) {
	code, ok := k[unicode.ToLower(r)]
	return code, ok
}
