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
	"github.com/resdl/resdl/logger"
	"github.com/veandco/go-sdl2/sdl"
)

// Controller implements the input.Device interface for an SDL game
// controller. Axis and button numbers follow the SDL game controller layout.
type Controller struct {
	pad *sdl.GameController
}

// Name implements the input.Device interface.
func (c *Controller) Name() string {
	return c.pad.Name()
}

// Axis implements the input.Device interface.
func (c *Controller) Axis(axis int) int16 {
	return c.pad.Axis(sdl.GameControllerAxis(axis))
}

// Button implements the input.Device interface.
func (c *Controller) Button(button int) bool {
	return c.pad.Button(sdl.GameControllerButton(button)) != 0
}

// Attached implements the input.Device interface.
func (c *Controller) Attached() bool {
	return c.pad.Attached()
}

// Close implements the input.Device interface.
func (c *Controller) Close() {
	c.pad.Close()
}

// Joystick implements the input.Device interface for an SDL joystick that is
// not recognised as a game controller. Axis and button numbers are the raw
// SDL joystick numbers.
type Joystick struct {
	joy *sdl.Joystick
}

// Name implements the input.Device interface.
func (j *Joystick) Name() string {
	return j.joy.Name()
}

// Axis implements the input.Device interface.
func (j *Joystick) Axis(axis int) int16 {
	return j.joy.Axis(axis)
}

// Button implements the input.Device interface.
func (j *Joystick) Button(button int) bool {
	return j.joy.Button(button) != 0
}

// Attached implements the input.Device interface.
func (j *Joystick) Attached() bool {
	return j.joy.Attached()
}

// Close implements the input.Device interface.
func (j *Joystick) Close() {
	j.joy.Close()
}

// OpenFunc is called by Devices.Scan() for every device opened.
type OpenFunc func(id input.DeviceID, kind input.DeviceKind)

// Devices opens SDL joysticks and game controllers and adds them to a
// registry. Each physical device is opened once for as long as it stays
// connected.
type Devices struct {
	registry *input.Registry
	opened   map[sdl.JoystickID]input.DeviceID
	onOpen   OpenFunc
}

// NewDevices is the preferred method of initialisation for the Devices type.
// The onOpen function can be nil.
func NewDevices(registry *input.Registry, onOpen OpenFunc) *Devices {
	return &Devices{
		registry: registry,
		opened:   make(map[sdl.JoystickID]input.DeviceID),
		onOpen:   onOpen,
	}
}

// Scan opens any connected device that isn't already open. Devices that the
// SDL recognises as game controllers are opened as such. Other devices are
// opened as plain joysticks.
//
// Scan should be called once at startup and again whenever SDL reports that
// a device has been added.
func (d *Devices) Scan() {
	found := 0

	for i := 0; i < sdl.NumJoysticks(); i++ {
		instance := sdl.JoystickGetDeviceInstanceID(i)
		if _, ok := d.opened[instance]; ok {
			continue
		}

		var id input.DeviceID
		var kind input.DeviceKind

		if sdl.IsGameController(i) {
			pad := sdl.GameControllerOpen(i)
			if pad == nil || !pad.Attached() {
				logger.Logf(logger.Allow, "sdl", "cannot open gamecontroller %d: %v", i, sdl.GetError())
				continue
			}
			kind = input.Controller
			id = d.registry.Add(kind, &Controller{pad: pad})
		} else {
			joy := sdl.JoystickOpen(i)
			if joy == nil || !joy.Attached() {
				logger.Logf(logger.Allow, "sdl", "cannot open joystick %d: %v", i, sdl.GetError())
				continue
			}
			kind = input.Joystick
			id = d.registry.Add(kind, &Joystick{joy: joy})
		}

		d.opened[instance] = id
		found++

		if d.onOpen != nil {
			d.onOpen(id, kind)
		}
	}

	if found == 0 && len(d.opened) == 0 {
		logger.Log(logger.Allow, "sdl", "no joysticks/gamecontrollers found")
	}
}
