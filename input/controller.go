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

// Axis numbering for devices of the Controller kind. The numbering is the
// same as the SDL game controller layout.
const (
	ControllerLeftX = iota
	ControllerLeftY
	ControllerRightX
	ControllerRightY
	ControllerTriggerLeft
	ControllerTriggerRight
)

// Button numbering for devices of the Controller kind. The numbering is the
// same as the SDL game controller layout.
const (
	ControllerA = iota
	ControllerB
	ControllerX
	ControllerY
	ControllerBack
	ControllerGuide
	ControllerStart
	ControllerLeftStick
	ControllerRightStick
	ControllerLeftShoulder
	ControllerRightShoulder
	ControllerDPadUp
	ControllerDPadDown
	ControllerDPadLeft
	ControllerDPadRight
)
