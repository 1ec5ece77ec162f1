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

import "golang.org/x/image/math/f64"

// Snapshot is the resolved state of every logical input for a single tick.
// A logical input with no live binding, or whose bindings produced no value,
// is not set in the snapshot.
type Snapshot struct {
	axes      [NumAxes]float64
	axesSet   [NumAxes]bool
	radials   [NumRadials]f64.Vec2
	radialSet [NumRadials]bool
	buttons   [NumButtons]bool
}

// Axis returns the resolved value of the axis. The boolean return value is
// false if the axis has no value for the tick.
func (s *Snapshot) Axis(axis Axis) (float64, bool) {
	if !axis.valid() {
		return 0, false
	}
	return s.axes[axis], s.axesSet[axis]
}

// Radial returns the resolved value of the radial. The boolean return value
// is false if the radial has no value for the tick.
func (s *Snapshot) Radial(radial Radial) (f64.Vec2, bool) {
	if !radial.valid() {
		return f64.Vec2{}, false
	}
	return s.radials[radial], s.radialSet[radial]
}

// Button returns true if the button is down.
func (s *Snapshot) Button(button Button) bool {
	if !button.valid() {
		return false
	}
	return s.buttons[button]
}

// SetAxis sets the value of the axis in the snapshot. Useful for synthesising
// input.
func (s *Snapshot) SetAxis(axis Axis, v float64) {
	if !axis.valid() {
		return
	}
	s.axes[axis] = v
	s.axesSet[axis] = true
}

// SetRadial sets the value of the radial in the snapshot.
func (s *Snapshot) SetRadial(radial Radial, v f64.Vec2) {
	if !radial.valid() {
		return
	}
	s.radials[radial] = v
	s.radialSet[radial] = true
}

// SetButton sets the level state of the button in the snapshot.
func (s *Snapshot) SetButton(button Button, down bool) {
	if !button.valid() {
		return
	}
	s.buttons[button] = down
}
