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

// Package profile reads and writes binding profiles. A binding profile is a
// YAML document that describes keyboard and device bindings by name. For
// example:
//
//	deadzone: 1000
//	keyboard:
//	  pairs:
//	    - {min: Left, max: Right, axis: MainX, values: [-1, 0, 1]}
//	  crosses:
//	    - {up: W, down: S, left: A, right: D, radial: Main}
//	  keys:
//	    - {key: LCtrl, axis: Aux0, value: 1}
//	controller:
//	  axes:
//	    - {axis: 2, to: MainX}
//	    - {axis: 5, to: Aux0, shape: trigger}
//	  sticks:
//	    - {x: 0, y: 1, radial: Main}
//
// Device bindings in the controller section are applied to every device of
// the input.Controller kind. Bindings in the joystick section are applied to
// every device of the input.Joystick kind.
package profile
