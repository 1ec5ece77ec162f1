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
	"slices"

	"github.com/resdl/resdl/logger"
)

type target int

const (
	targetAxis target = iota
	targetRadial
	targetButton
)

// binding is immutable once it has been added to the table
type binding struct {
	target target
	axis   Axis
	radial Radial
	button Button

	shape ShapeS16
	stick ShapeStick

	min    float64
	off    float64
	max    float64
	hasOff bool
}

func (b binding) logical() string {
	switch b.target {
	case targetAxis:
		return fmt.Sprintf("axis %s", b.axis)
	case targetRadial:
		return fmt.Sprintf("radial %s", b.radial)
	case targetButton:
		return fmt.Sprintf("button %s", b.button)
	}
	return "unknown"
}

// Table is the set of bindings between raw sources and logical inputs. There
// is at most one binding for any Source. Many sources can be bound to the
// same logical input.
//
// The zero value is not usable. Use NewTable() for initialisation.
type Table struct {
	// order of registration. a replaced binding moves to the end
	order    []Source
	bindings map[Source]binding
}

// NewTable is the preferred method of initialisation for the Table type.
func NewTable() *Table {
	return &Table{
		bindings: make(map[Source]binding),
	}
}

func (tab *Table) add(src Source, b binding) {
	if _, ok := tab.bindings[src]; ok {
		tab.order = slices.DeleteFunc(tab.order, func(s Source) bool {
			return s == src
		})
	}
	tab.order = append(tab.order, src)
	tab.bindings[src] = b
}

// Unbind removes any binding for the source. It is not an error to unbind a
// source that has no binding.
func (tab *Table) Unbind(src Source) {
	if _, ok := tab.bindings[src]; !ok {
		return
	}
	delete(tab.bindings, src)
	tab.order = slices.DeleteFunc(tab.order, func(s Source) bool {
		return s == src
	})
}

// UnbindDevice removes every binding that refers to the device. Returns the
// number of bindings removed.
func (tab *Table) UnbindDevice(dev DeviceID) int {
	var n int
	tab.order = slices.DeleteFunc(tab.order, func(s Source) bool {
		if id, ok := s.device(); ok && id == dev {
			delete(tab.bindings, s)
			n++
			return true
		}
		return false
	})
	return n
}

// Len returns the number of bindings in the table.
func (tab *Table) Len() int {
	return len(tab.order)
}

// Bound returns true if there is a binding for the source.
func (tab *Table) Bound(src Source) bool {
	_, ok := tab.bindings[src]
	return ok
}

// Clear removes all bindings.
func (tab *Table) Clear() {
	tab.order = tab.order[:0]
	clear(tab.bindings)
}

// BindingInfo describes a binding in the table.
type BindingInfo struct {
	Source  Source
	Logical string
}

func (bi BindingInfo) String() string {
	return fmt.Sprintf("%s -> %s", bi.Source, bi.Logical)
}

// Bindings returns a description of every binding in registration order.
func (tab *Table) Bindings() []BindingInfo {
	info := make([]BindingInfo, 0, len(tab.order))
	for _, src := range tab.order {
		info = append(info, BindingInfo{
			Source:  src,
			Logical: tab.bindings[src].logical(),
		})
	}
	return info
}

func (tab *Table) validAxis(axis Axis, src Source) bool {
	if axis.valid() {
		return true
	}
	logger.Logf(logger.Allow, "input", "ignoring binding of %s to %s", src, axis)
	return false
}

func (tab *Table) validRadial(radial Radial, src Source) bool {
	if radial.valid() {
		return true
	}
	logger.Logf(logger.Allow, "input", "ignoring binding of %s to %s", src, radial)
	return false
}

func (tab *Table) validButton(button Button, src Source) bool {
	if button.valid() {
		return true
	}
	logger.Logf(logger.Allow, "input", "ignoring binding of %s to %s", src, button)
	return false
}

// BindKey binds a single key to an axis. The axis takes the value while the
// key is held and has no value otherwise.
func (tab *Table) BindKey(key Key, axis Axis, value float64) {
	src := KeySource{Key: key}
	if !tab.validAxis(axis, src) {
		return
	}
	tab.add(src, binding{target: targetAxis, axis: axis, max: value})
}

// BindKeyRange binds a single key to an axis. The axis takes the max value
// while the key is held and the off value when it is not.
func (tab *Table) BindKeyRange(key Key, axis Axis, off float64, max float64) {
	src := KeySource{Key: key}
	if !tab.validAxis(axis, src) {
		return
	}
	tab.add(src, binding{target: targetAxis, axis: axis, off: off, max: max, hasOff: true})
}

// BindKeyPair binds two keys to an axis. The axis takes the min value while
// the min key is held, the max value while the max key is held and the off
// value when neither is held. If both keys are held the max value is used.
func (tab *Table) BindKeyPair(minKey Key, maxKey Key, axis Axis, min float64, off float64, max float64) {
	src := KeyPairSource{Min: minKey, Max: maxKey}
	if !tab.validAxis(axis, src) {
		return
	}
	tab.add(src, binding{target: targetAxis, axis: axis, min: min, off: off, max: max, hasOff: true})
}

// BindKeyCross binds four keys to a radial. The radial value is a unit vector
// in the direction of the held keys, or the zero vector if no keys are held.
// Up is the negative Y direction.
func (tab *Table) BindKeyCross(up Key, down Key, left Key, right Key, radial Radial) {
	src := KeyCrossSource{Up: up, Down: down, Left: left, Right: right}
	if !tab.validRadial(radial, src) {
		return
	}
	tab.add(src, binding{target: targetRadial, radial: radial})
}

// BindKeyButton binds a key to a button.
func (tab *Table) BindKeyButton(key Key, button Button) {
	src := KeyButtonSource{Key: key}
	if !tab.validButton(button, src) {
		return
	}
	tab.add(src, binding{target: targetButton, button: button})
}

// BindDeviceAxis binds an axis on a device to a logical axis. If shape is nil
// then ScaleS16 is used.
func (tab *Table) BindDeviceAxis(dev DeviceID, deviceAxis int, axis Axis, shape ShapeS16) {
	src := DeviceAxisSource{Device: dev, Axis: deviceAxis}
	if !tab.validAxis(axis, src) {
		return
	}
	if shape == nil {
		shape = ScaleS16
	}
	tab.add(src, binding{target: targetAxis, axis: axis, shape: shape})
}

// BindDeviceStick binds two axes on a device to a radial. If shape is nil then
// ScaleStick is used.
func (tab *Table) BindDeviceStick(dev DeviceID, x int, y int, radial Radial, shape ShapeStick) {
	src := DeviceStickSource{Device: dev, X: x, Y: y}
	if !tab.validRadial(radial, src) {
		return
	}
	if shape == nil {
		shape = ScaleStick
	}
	tab.add(src, binding{target: targetRadial, radial: radial, stick: shape})
}

// BindDeviceButton binds a button on a device to a logical button.
func (tab *Table) BindDeviceButton(dev DeviceID, deviceButton int, button Button) {
	src := DeviceButtonSource{Device: dev, Button: deviceButton}
	if !tab.validButton(button, src) {
		return
	}
	tab.add(src, binding{target: targetButton, button: button})
}

// BindDeviceButtonCross binds four buttons on a device to a radial. The
// normalisation of the value is the same as for BindKeyCross except that the
// radial has no value if none of the buttons are pressed.
func (tab *Table) BindDeviceButtonCross(dev DeviceID, up int, down int, left int, right int, radial Radial) {
	src := DeviceButtonCrossSource{Device: dev, Up: up, Down: down, Left: left, Right: right}
	if !tab.validRadial(radial, src) {
		return
	}
	tab.add(src, binding{target: targetRadial, radial: radial})
}
