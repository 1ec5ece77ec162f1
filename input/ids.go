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

// Axis identifies a logical scalar input.
type Axis int

// List of valid Axis values.
const (
	MainX Axis = iota
	MainY
	MainZ
	SecondaryX
	SecondaryY
	SecondaryZ
	TertiaryX
	TertiaryY
	TertiaryZ
	Aux0
	Aux1
	Aux2
	Aux3
	Aux4
	Aux5
	Aux6
	Aux7
	Aux8
	Aux9

	NumAxes
)

var axisNames = [NumAxes]string{
	"MainX", "MainY", "MainZ",
	"SecondaryX", "SecondaryY", "SecondaryZ",
	"TertiaryX", "TertiaryY", "TertiaryZ",
	"Aux0", "Aux1", "Aux2", "Aux3", "Aux4",
	"Aux5", "Aux6", "Aux7", "Aux8", "Aux9",
}

func (a Axis) String() string {
	if a < 0 || a >= NumAxes {
		return fmt.Sprintf("Axis(%d)", int(a))
	}
	return axisNames[a]
}

// AxisByName returns the Axis with the name. Names are not case sensitive.
func AxisByName(name string) (Axis, bool) {
	for i, n := range axisNames {
		if strings.EqualFold(n, name) {
			return Axis(i), true
		}
	}
	return 0, false
}

func (a Axis) valid() bool {
	return a >= 0 && a < NumAxes
}

// Radial identifies a logical two dimensional input.
type Radial int

// List of valid Radial values.
const (
	RadialMain Radial = iota
	RadialSecondary
	RadialTertiary
	RadialAux

	NumRadials
)

var radialNames = [NumRadials]string{
	"Main", "Secondary", "Tertiary", "Aux",
}

func (r Radial) String() string {
	if r < 0 || r >= NumRadials {
		return fmt.Sprintf("Radial(%d)", int(r))
	}
	return radialNames[r]
}

// RadialByName returns the Radial with the name. Names are not case
// sensitive and may be given with or without the "Radial" prefix.
func RadialByName(name string) (Radial, bool) {
	if len(name) > 6 && strings.EqualFold(name[:6], "radial") {
		name = name[6:]
	}
	for i, n := range radialNames {
		if strings.EqualFold(n, name) {
			return Radial(i), true
		}
	}
	return 0, false
}

func (r Radial) valid() bool {
	return r >= 0 && r < NumRadials
}

// Button identifies a logical binary input.
type Button int

// List of valid Button values.
const (
	ButtonA Button = iota
	ButtonB
	ButtonX
	ButtonY
	ButtonStart
	ButtonBack
	ButtonShoulderLeft
	ButtonShoulderRight
	ButtonAux0
	ButtonAux1
	ButtonAux2
	ButtonAux3

	NumButtons
)

var buttonNames = [NumButtons]string{
	"A", "B", "X", "Y", "Start", "Back",
	"ShoulderLeft", "ShoulderRight",
	"Aux0", "Aux1", "Aux2", "Aux3",
}

func (b Button) String() string {
	if b < 0 || b >= NumButtons {
		return fmt.Sprintf("Button(%d)", int(b))
	}
	return buttonNames[b]
}

// ButtonByName returns the Button with the name. Names are not case
// sensitive and may be given with or without the "Button" prefix.
func ButtonByName(name string) (Button, bool) {
	if len(name) > 6 && strings.EqualFold(name[:6], "button") {
		name = name[6:]
	}
	for i, n := range buttonNames {
		if strings.EqualFold(n, name) {
			return Button(i), true
		}
	}
	return 0, false
}

func (b Button) valid() bool {
	return b >= 0 && b < NumButtons
}

// ButtonState is the transition state of a button as reported to a button
// handler.
type ButtonState int

// List of valid ButtonState values.
const (
	Off ButtonState = iota
	Push
	Hold
	Release
)

func (s ButtonState) String() string {
	switch s {
	case Off:
		return "Off"
	case Push:
		return "Push"
	case Hold:
		return "Hold"
	case Release:
		return "Release"
	}
	return fmt.Sprintf("ButtonState(%d)", int(s))
}

// transition returns the new state of a button given the previous state and
// whether the button is currently down.
//
// A button that was up and is now down is reported as Push for one tick
// before becoming Hold. Likewise, a button that was down and is now up is
// reported as Release for one tick before becoming Off.
func transition(prev ButtonState, down bool) ButtonState {
	if down {
		switch prev {
		case Off, Release:
			return Push
		}
		return Hold
	}

	switch prev {
	case Push, Hold:
		return Release
	}
	return Off
}

// StateFilter selects which button states are delivered to a button handler.
type StateFilter uint8

// List of StateFilter values. Filters can be combined with the bitwise OR
// operator.
const (
	FilterOff     StateFilter = 1 << Off
	FilterPush    StateFilter = 1 << Push
	FilterHold    StateFilter = 1 << Hold
	FilterRelease StateFilter = 1 << Release

	// FilterEdges selects only the transitions
	FilterEdges = FilterPush | FilterRelease

	// FilterDefault is used when a filter value of zero is specified
	FilterDefault = FilterPush | FilterHold | FilterRelease

	// FilterAll includes the Off state, which is delivered every tick that
	// the button is not down
	FilterAll = FilterDefault | FilterOff
)

func (f StateFilter) allows(s ButtonState) bool {
	return f&(1<<s) != 0
}
