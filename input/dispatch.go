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

// AxisHandler receives the value of an axis.
type AxisHandler func(value float64)

// RadialHandler receives the value of a radial.
type RadialHandler func(value f64.Vec2)

// ButtonHandler receives the transition state of a button.
type ButtonHandler func(state ButtonState)

type axisSlot struct {
	handler AxisHandler
	off     float64
	hasOff  bool
}

type radialSlot struct {
	handler RadialHandler
	off     f64.Vec2
	hasOff  bool
}

type buttonSlot struct {
	handler  ButtonHandler
	filter   StateFilter
	previous ButtonState
}

// Dispatcher delivers resolved values to handler functions. There is at most
// one handler for each logical input.
//
// Handlers are called synchronously by Dispatch(). A handler must not
// register or unregister handlers with the Dispatcher that is calling it.
type Dispatcher struct {
	axes    [NumAxes]axisSlot
	radials [NumRadials]radialSlot
	buttons [NumButtons]buttonSlot
}

// NewDispatcher is the preferred method of initialisation for the Dispatcher
// type.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// OnAxis registers the handler for the axis, replacing any existing handler.
// A nil handler removes the existing handler.
func (dsp *Dispatcher) OnAxis(axis Axis, handler AxisHandler) {
	if !axis.valid() {
		return
	}
	dsp.axes[axis].handler = handler
}

// OnRadial registers the handler for the radial, replacing any existing
// handler. A nil handler removes the existing handler.
func (dsp *Dispatcher) OnRadial(radial Radial, handler RadialHandler) {
	if !radial.valid() {
		return
	}
	dsp.radials[radial].handler = handler
}

// OnButton registers the handler for the button, replacing any existing
// handler. A nil handler removes the existing handler. The filter selects
// which states are delivered to the handler. A filter of zero is the same as
// FilterDefault.
//
// The previous state of the button is reset to Off.
func (dsp *Dispatcher) OnButton(button Button, handler ButtonHandler, filter StateFilter) {
	if !button.valid() {
		return
	}
	if filter == 0 {
		filter = FilterDefault
	}
	dsp.buttons[button] = buttonSlot{
		handler: handler,
		filter:  filter,
	}
}

// SetAxisOffValue sets the value delivered to the axis handler on ticks when
// the axis has no resolved value.
func (dsp *Dispatcher) SetAxisOffValue(axis Axis, v float64) {
	if !axis.valid() {
		return
	}
	dsp.axes[axis].off = v
	dsp.axes[axis].hasOff = true
}

// ClearAxisOffValue removes the off value for the axis. The axis handler will
// not be called on ticks when the axis has no resolved value.
func (dsp *Dispatcher) ClearAxisOffValue(axis Axis) {
	if !axis.valid() {
		return
	}
	dsp.axes[axis].off = 0
	dsp.axes[axis].hasOff = false
}

// SetRadialOffValue sets the value delivered to the radial handler on ticks
// when the radial has no resolved value.
func (dsp *Dispatcher) SetRadialOffValue(radial Radial, v f64.Vec2) {
	if !radial.valid() {
		return
	}
	dsp.radials[radial].off = v
	dsp.radials[radial].hasOff = true
}

// ClearRadialOffValue removes the off value for the radial.
func (dsp *Dispatcher) ClearRadialOffValue(radial Radial) {
	if !radial.valid() {
		return
	}
	dsp.radials[radial].off = f64.Vec2{}
	dsp.radials[radial].hasOff = false
}

// Previous returns the state of the button as computed on the most recent
// call to Dispatch(). The state is only tracked for buttons with a handler.
func (dsp *Dispatcher) Previous(button Button) ButtonState {
	if !button.valid() {
		return Off
	}
	return dsp.buttons[button].previous
}

// Dispatch delivers the snapshot to the registered handlers. Axes are
// delivered first, followed by radials and then buttons. Each group is
// delivered in the order of the logical ID.
func (dsp *Dispatcher) Dispatch(snap *Snapshot) {
	for i := range dsp.axes {
		a := &dsp.axes[i]
		if a.handler == nil {
			continue
		}
		if snap.axesSet[i] {
			a.handler(snap.axes[i])
		} else if a.hasOff {
			a.handler(a.off)
		}
	}

	for i := range dsp.radials {
		r := &dsp.radials[i]
		if r.handler == nil {
			continue
		}
		if snap.radialSet[i] {
			r.handler(snap.radials[i])
		} else if r.hasOff {
			r.handler(r.off)
		}
	}

	for i := range dsp.buttons {
		b := &dsp.buttons[i]
		if b.handler == nil {
			continue
		}
		state := transition(b.previous, snap.buttons[i])
		b.previous = state
		if b.filter.allows(state) {
			b.handler(state)
		}
	}
}
