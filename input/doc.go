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

// Package input maps raw input from keyboards, joysticks and game controllers
// onto logical inputs and delivers the resolved values to handler functions
// once per tick.
//
// There are three kinds of logical input. An Axis is a single scalar value,
// usually in the range -1.0 to 1.0 or 0.0 to 1.0. A Radial is a two
// dimensional stick value. A Button is a binary control which is reported to
// handlers as a transition (Push, Hold, Release).
//
// The Table type holds the bindings between raw sources (a key, a pair of
// keys, an axis on a joystick, etc.) and logical inputs. The Aggregator reads
// every binding each tick and resolves the bindings into a single Snapshot.
// Resolution happens in layers, in order: keyboard, joystick, controller. A
// later layer overwrites the value of an earlier layer only if the later layer
// produced a value for the tick. Within a layer, the most recently registered
// binding wins.
//
// The Dispatcher delivers a Snapshot to the registered handlers. Button
// transitions are synthesised by the Dispatcher by comparing the level state
// of the button with the state of the previous tick.
//
// The Manager type ties the parts together and the Tick() function is the
// entry point that should be called once per frame, after platform events
// have been polled.
//
// Devices are owned by the Registry. Bindings refer to devices by DeviceID and
// never own the device. A device that is disconnected during a session
// produces no values for any binding that refers to it.
//
// Everything in the package is intended to be used from a single goroutine,
// the one driving the game loop.
package input
