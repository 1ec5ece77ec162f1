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

// Aggregator resolves the bindings in a Table into a Snapshot.
type Aggregator struct {
	table    *Table
	keyboard Keyboard
	devices  *Registry

	// raw axis values with an absolute value less than or equal to the
	// DeadZone produce no value. the default value is DefaultDeadZone
	DeadZone int
}

// NewAggregator is the preferred method of initialisation for the Aggregator
// type. The keyboard may be nil, in which case keyboard bindings never
// produce a value.
func NewAggregator(table *Table, keyboard Keyboard, devices *Registry) *Aggregator {
	return &Aggregator{
		table:    table,
		keyboard: keyboard,
		devices:  devices,
		DeadZone: DefaultDeadZone,
	}
}

// SetKeyboard changes the keyboard used for keyboard bindings.
func (agg *Aggregator) SetKeyboard(keyboard Keyboard) {
	agg.keyboard = keyboard
}

// Resolve reads the current state of every bound source and returns the
// resolved snapshot.
func (agg *Aggregator) Resolve() Snapshot {
	var snap Snapshot

	if p, ok := agg.keyboard.(Poller); ok {
		p.Poll()
	}

	// bindings for devices that aren't available are skipped. the layer for
	// each binding is decided once per call
	type entry struct {
		src Source
		b   binding
		dev Device
	}

	var layers [numLayers][]entry

	for _, src := range agg.table.order {
		b := agg.table.bindings[src]

		id, isDevice := src.device()
		if !isDevice {
			if agg.keyboard == nil {
				continue
			}
			layers[LayerKeyboard] = append(layers[LayerKeyboard], entry{src: src, b: b})
			continue
		}

		if agg.devices == nil {
			continue
		}

		dev, kind, ok := agg.devices.Device(id)
		if !ok {
			continue
		}

		layer := LayerJoystick
		if kind == Controller {
			layer = LayerController
		}
		layers[layer] = append(layers[layer], entry{src: src, b: b, dev: dev})
	}

	for _, l := range layers {
		for _, e := range l {
			agg.resolve(&snap, e.src, e.b, e.dev)
		}
	}

	return snap
}

func (agg *Aggregator) resolve(snap *Snapshot, src Source, b binding, dev Device) {
	switch s := src.(type) {
	case KeySource:
		if agg.keyboard.KeyDown(s.Key) {
			snap.SetAxis(b.axis, b.max)
		} else if b.hasOff {
			snap.SetAxis(b.axis, b.off)
		}

	case KeyPairSource:
		switch {
		case agg.keyboard.KeyDown(s.Max):
			snap.SetAxis(b.axis, b.max)
		case agg.keyboard.KeyDown(s.Min):
			snap.SetAxis(b.axis, b.min)
		default:
			snap.SetAxis(b.axis, b.off)
		}

	case KeyCrossSource:
		snap.SetRadial(b.radial, cross(
			agg.keyboard.KeyDown(s.Up),
			agg.keyboard.KeyDown(s.Down),
			agg.keyboard.KeyDown(s.Left),
			agg.keyboard.KeyDown(s.Right),
		))

	case KeyButtonSource:
		if agg.keyboard.KeyDown(s.Key) {
			snap.SetButton(b.button, true)
		}

	case DeviceAxisSource:
		raw := dev.Axis(s.Axis)
		if withinDeadZone(raw, agg.DeadZone) {
			return
		}
		snap.SetAxis(b.axis, b.shape(raw))

	case DeviceStickSource:
		x := dev.Axis(s.X)
		y := dev.Axis(s.Y)
		if withinDeadZone(x, agg.DeadZone) && withinDeadZone(y, agg.DeadZone) {
			return
		}
		snap.SetRadial(b.radial, b.stick(x, y))

	case DeviceButtonSource:
		if dev.Button(s.Button) {
			snap.SetButton(b.button, true)
		}

	case DeviceButtonCrossSource:
		up := dev.Button(s.Up)
		down := dev.Button(s.Down)
		left := dev.Button(s.Left)
		right := dev.Button(s.Right)
		if !up && !down && !left && !right {
			return
		}
		snap.SetRadial(b.radial, cross(up, down, left, right))
	}
}

// Vec2 is a convenience function for creating radial values.
func Vec2(x, y float64) f64.Vec2 {
	return f64.Vec2{x, y}
}
