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

import "fmt"

// Layer is a resolution layer. Layers are resolved in order, with values
// from later layers taking precedence over values from earlier layers.
type Layer int

// List of valid Layer values in the order they are resolved.
const (
	LayerKeyboard Layer = iota
	LayerJoystick
	LayerController

	numLayers
)

func (l Layer) String() string {
	switch l {
	case LayerKeyboard:
		return "keyboard"
	case LayerJoystick:
		return "joystick"
	case LayerController:
		return "controller"
	}
	return fmt.Sprintf("Layer(%d)", int(l))
}

// Source identifies a raw input source. Source values are comparable and two
// equal Source values refer to the same raw source.
//
// There is a distinct Source type for each kind of binding, so the same key
// can be the source of both an axis binding and a button binding.
type Source interface {
	fmt.Stringer

	// the device the source is read from. returns false for keyboard sources
	device() (DeviceID, bool)
}

// KeySource is a single key driving an axis.
type KeySource struct {
	Key Key
}

// KeyPairSource is a pair of keys driving an axis in opposing directions.
type KeyPairSource struct {
	Min Key
	Max Key
}

// KeyCrossSource is four keys driving a radial.
type KeyCrossSource struct {
	Up    Key
	Down  Key
	Left  Key
	Right Key
}

// KeyButtonSource is a single key driving a button.
type KeyButtonSource struct {
	Key Key
}

// DeviceAxisSource is a single axis on a device driving an axis.
type DeviceAxisSource struct {
	Device DeviceID
	Axis   int
}

// DeviceStickSource is a pair of axes on a device driving a radial.
type DeviceStickSource struct {
	Device DeviceID
	X      int
	Y      int
}

// DeviceButtonSource is a single button on a device driving a button.
type DeviceButtonSource struct {
	Device DeviceID
	Button int
}

// DeviceButtonCrossSource is four buttons on a device driving a radial. This
// is the usual way of binding a directional pad.
type DeviceButtonCrossSource struct {
	Device DeviceID
	Up     int
	Down   int
	Left   int
	Right  int
}

func (s KeySource) String() string {
	return fmt.Sprintf("key %s", s.Key)
}

func (s KeyPairSource) String() string {
	return fmt.Sprintf("keys %s/%s", s.Min, s.Max)
}

func (s KeyCrossSource) String() string {
	return fmt.Sprintf("keys %s/%s/%s/%s", s.Up, s.Down, s.Left, s.Right)
}

func (s KeyButtonSource) String() string {
	return fmt.Sprintf("key %s", s.Key)
}

func (s DeviceAxisSource) String() string {
	return fmt.Sprintf("device %d axis %d", s.Device, s.Axis)
}

func (s DeviceStickSource) String() string {
	return fmt.Sprintf("device %d axes %d/%d", s.Device, s.X, s.Y)
}

func (s DeviceButtonSource) String() string {
	return fmt.Sprintf("device %d button %d", s.Device, s.Button)
}

func (s DeviceButtonCrossSource) String() string {
	return fmt.Sprintf("device %d buttons %d/%d/%d/%d", s.Device, s.Up, s.Down, s.Left, s.Right)
}

func (KeySource) device() (DeviceID, bool)       { return 0, false }
func (KeyPairSource) device() (DeviceID, bool)   { return 0, false }
func (KeyCrossSource) device() (DeviceID, bool)  { return 0, false }
func (KeyButtonSource) device() (DeviceID, bool) { return 0, false }

func (s DeviceAxisSource) device() (DeviceID, bool)        { return s.Device, true }
func (s DeviceStickSource) device() (DeviceID, bool)       { return s.Device, true }
func (s DeviceButtonSource) device() (DeviceID, bool)      { return s.Device, true }
func (s DeviceButtonCrossSource) device() (DeviceID, bool) { return s.Device, true }
