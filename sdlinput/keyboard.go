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

package sdlinput

import (
	"github.com/resdl/resdl/input"
	"github.com/veandco/go-sdl2/sdl"
)

// Keyboard implements the input.Keyboard and input.Poller interfaces. The
// state of the keyboard is refreshed by SDL when events are pumped.
type Keyboard struct {
	state []uint8
}

// NewKeyboard is the preferred method of initialisation for the Keyboard type.
func NewKeyboard() *Keyboard {
	return &Keyboard{
		state: sdl.GetKeyboardState(),
	}
}

// Poll implements the input.Poller interface.
func (kb *Keyboard) Poll() {
	kb.state = sdl.GetKeyboardState()
}

// KeyDown implements the input.Keyboard interface. The Key value is used as an
// SDL scancode.
func (kb *Keyboard) KeyDown(k input.Key) bool {
	if int(k) >= len(kb.state) {
		return false
	}
	return kb.state[k] != 0
}

// KeyName returns the SDL name for the key.
func KeyName(k input.Key) string {
	return sdl.GetScancodeName(sdl.Scancode(k))
}

// KeyFromName returns the key for an SDL scancode name. Returns false if SDL
// doesn't recognise the name.
func KeyFromName(name string) (input.Key, bool) {
	sc := sdl.GetScancodeFromName(name)
	if sc == sdl.SCANCODE_UNKNOWN {
		return input.KeyUnknown, false
	}
	return input.Key(sc), true
}
