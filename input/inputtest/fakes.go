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

// Package inputtest provides fake keyboard and device implementations for
// testing code that uses the input package.
package inputtest

import "github.com/resdl/resdl/input"

// Keyboard is a fake input.Keyboard. The zero value has no keys held.
type Keyboard struct {
	held  map[input.Key]bool
	Polls int
}

// Press marks the keys as held.
func (kb *Keyboard) Press(keys ...input.Key) {
	if kb.held == nil {
		kb.held = make(map[input.Key]bool)
	}
	for _, k := range keys {
		kb.held[k] = true
	}
}

// Release marks the keys as not held.
func (kb *Keyboard) Release(keys ...input.Key) {
	for _, k := range keys {
		delete(kb.held, k)
	}
}

// ReleaseAll marks every key as not held.
func (kb *Keyboard) ReleaseAll() {
	clear(kb.held)
}

// KeyDown implements the input.Keyboard interface.
func (kb *Keyboard) KeyDown(k input.Key) bool {
	return kb.held[k]
}

// Poll implements the input.Poller interface.
func (kb *Keyboard) Poll() {
	kb.Polls++
}

// Device is a fake input.Device.
type Device struct {
	ID      string
	Axes    map[int]int16
	Buttons map[int]bool

	Detached bool
	Closed   bool
}

// NewDevice is the preferred method of initialisation for the Device type.
func NewDevice(name string) *Device {
	return &Device{
		ID:      name,
		Axes:    make(map[int]int16),
		Buttons: make(map[int]bool),
	}
}

// Name implements the input.Device interface.
func (dev *Device) Name() string {
	return dev.ID
}

// Axis implements the input.Device interface.
func (dev *Device) Axis(axis int) int16 {
	return dev.Axes[axis]
}

// Button implements the input.Device interface.
func (dev *Device) Button(button int) bool {
	return dev.Buttons[button]
}

// Attached implements the input.Device interface.
func (dev *Device) Attached() bool {
	return !dev.Detached
}

// Close implements the input.Device interface.
func (dev *Device) Close() {
	dev.Closed = true
}
