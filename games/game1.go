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


package games

import (
	"github.com/resdl/resdl/curated"
	"github.com/resdl/resdl/engine"
	"github.com/resdl/resdl/input"
	"github.com/resdl/resdl/profile"
	"github.com/resdl/resdl/render"
	"golang.org/x/image/math/f64"
)

// the speed of the player in pixels per millisecond is the axis value
// divided by this amount
const game1SpeedDivider = 10

// Game1 is a square moved around a magenta screen.
type Game1 struct {
	Background *ClearScreen
	Player     *Sprite
}

// NewGame1 is the preferred method of initialisation for the Game1 type.
func NewGame1(eng *engine.Engine) (*Game1, error) {
	if eng.Input == nil {
		return nil, curated.Errorf(NoInput)
	}

	g := &Game1{
		Background: &ClearScreen{Color: render.Magenta},
		Player:     NewSprite(10, 10),
	}

	dsp := eng.Input.Dispatcher
	dsp.SetAxisOffValue(input.MainX, 0)
	dsp.OnAxis(input.MainX, func(v float64) {
		g.Player.Speed[0] = v / game1SpeedDivider
	})
	dsp.SetAxisOffValue(input.MainY, 0)
	dsp.OnAxis(input.MainY, func(v float64) {
		g.Player.Speed[1] = v / game1SpeedDivider
	})

	// return the player to the starting position
	dsp.OnButton(input.ButtonA, func(_ input.ButtonState) {
		g.Player.Position = f64.Vec2{}
	}, input.FilterPush)

	if _, err := eng.Add(g.Background); err != nil {
		return nil, err
	}
	if _, err := eng.Add(g.Player); err != nil {
		return nil, err
	}

	return g, nil
}

// Profile implements the Game interface.
func (g *Game1) Profile() *profile.Profile {
	return &profile.Profile{
		Keyboard: profile.Keyboard{
			Keys: []profile.Key{
				{Key: "LCtrl", Axis: "Aux0", Value: 1, Off: off(0)},
			},
			Pairs: []profile.Pair{
				{Min: "Left", Max: "Right", Axis: "MainX", Values: []float64{-1, 0, 1}},
				{Min: "Up", Max: "Down", Axis: "MainY", Values: []float64{-1, 0, 1}},
			},
			Crosses: []profile.Cross{
				{Up: "W", Down: "S", Left: "A", Right: "D", Radial: "Main"},
			},
			Buttons: []profile.KeyButton{
				{Key: "Space", Button: "A"},
				{Key: "Return", Button: "Start"},
				{Key: "Escape", Button: "Back"},
			},
		},
		Controller: profile.Device{
			Axes: []profile.Axis{
				{Axis: input.ControllerRightX, To: "MainX"},
				{Axis: input.ControllerRightY, To: "MainY"},
				{Axis: input.ControllerTriggerRight, To: "Aux0", Shape: "trigger"},
			},
			Sticks: []profile.Stick{
				{X: input.ControllerLeftX, Y: input.ControllerLeftY, Radial: "Main"},
			},
			Buttons: []profile.Button{
				{Button: input.ControllerA, To: "A"},
				{Button: input.ControllerB, To: "B"},
				{Button: input.ControllerStart, To: "Start"},
				{Button: input.ControllerBack, To: "Back"},
			},
			Crosses: []profile.ButtonCross{
				{
					Up: input.ControllerDPadUp, Down: input.ControllerDPadDown,
					Left: input.ControllerDPadLeft, Right: input.ControllerDPadRight,
					Radial: "Secondary",
				},
			},
		},
		Joystick: profile.Device{
			Axes: []profile.Axis{
				{Axis: 0, To: "MainX"},
				{Axis: 1, To: "MainY"},
			},
			Buttons: []profile.Button{
				{Button: 0, To: "A"},
			},
		},
	}
}
