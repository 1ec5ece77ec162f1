// This file is part of Resdl.
//
// Resdl is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Resdl is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Resdl.  If not, see <https://www.gnu.org/licenses/>.

package input

import (
	"fmt"
	"strings"
)

// Key identifies a physical key on the keyboard. The numbering follows the USB
// HID usage table, which is the same numbering used by SDL scancodes.
type Key uint16

// List of common keys. Any other HID usage value is also a valid Key.
const (
	KeyUnknown Key = 0

	KeyA Key = 4 + iota - 1
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	Key0
	KeyReturn
	KeyEscape
	KeyBackspace
	KeyTab
	KeySpace
)

// Function and cursor keys.
const (
	KeyF1 Key = 58 + iota
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	KeyRight Key = 79
	KeyLeft  Key = 80
	KeyDown  Key = 81
	KeyUp    Key = 82
)

// Modifier keys.
const (
	KeyLCtrl Key = 224 + iota
	KeyLShift
	KeyLAlt
	KeyLGUI
	KeyRCtrl
	KeyRShift
	KeyRAlt
	KeyRGUI
)

// NumKeys is one more than the largest Key value that a Keyboard is expected
// to report.
const NumKeys = 512

var keyNames map[Key]string
var namedKeys map[string]Key

func init() {
	keyNames = map[Key]string{
		KeyReturn:    "Return",
		KeyEscape:    "Escape",
		KeyBackspace: "Backspace",
		KeyTab:       "Tab",
		KeySpace:     "Space",
		KeyRight:     "Right",
		KeyLeft:      "Left",
		KeyDown:      "Down",
		KeyUp:        "Up",
		KeyLCtrl:     "LCtrl",
		KeyLShift:    "LShift",
		KeyLAlt:      "LAlt",
		KeyLGUI:      "LGUI",
		KeyRCtrl:     "RCtrl",
		KeyRShift:    "RShift",
		KeyRAlt:      "RAlt",
		KeyRGUI:      "RGUI",
	}
	for k := KeyA; k <= KeyZ; k++ {
		keyNames[k] = string(rune('A' + k - KeyA))
	}
	for k := Key1; k <= Key9; k++ {
		keyNames[k] = string(rune('1' + k - Key1))
	}
	keyNames[Key0] = "0"
	for k := KeyF1; k <= KeyF12; k++ {
		keyNames[k] = fmt.Sprintf("F%d", k-KeyF1+1)
	}

	namedKeys = make(map[string]Key, len(keyNames))
	for k, n := range keyNames {
		namedKeys[strings.ToLower(n)] = k
	}
}

func (k Key) String() string {
	if n, ok := keyNames[k]; ok {
		return n
	}
	return fmt.Sprintf("Key(%d)", uint16(k))
}

// KeyByName returns the Key for the name. Names are the ones returned by the
// String() function and are not case sensitive.
func KeyByName(name string) (Key, bool) {
	k, ok := namedKeys[strings.ToLower(strings.TrimSpace(name))]
	return k, ok
}

// Keyboard is implemented by any type that can report the held state of a
// key.
type Keyboard interface {
	KeyDown(k Key) bool
}

// Poller is an optional interface for a Keyboard implementation that must be
// updated once per tick before being queried.
type Poller interface {
	Poll()
}
