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

package input_test

import (
	"math"
	"testing"

	"github.com/resdl/resdl/curated"
	"github.com/resdl/resdl/input"
	"github.com/resdl/resdl/input/inputtest"
	"github.com/resdl/resdl/test"
)

func resolveAxis(agg *input.Aggregator, axis input.Axis) (float64, bool) {
	snap := agg.Resolve()
	return snap.Axis(axis)
}

func TestKeyPair(t *testing.T) {
	var kb inputtest.Keyboard
	tab := input.NewTable()
	agg := input.NewAggregator(tab, &kb, nil)

	tab.BindKeyPair(input.KeyLeft, input.KeyRight, input.MainX, -1.0, 0.0, 1.0)

	// neither key held gives the off value
	v, ok := resolveAxis(agg, input.MainX)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, 0.0)

	kb.Press(input.KeyLeft)
	v, ok = resolveAxis(agg, input.MainX)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, -1.0)

	kb.ReleaseAll()
	kb.Press(input.KeyRight)
	v, ok = resolveAxis(agg, input.MainX)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, 1.0)

	// both keys held. the max key wins
	kb.Press(input.KeyLeft)
	v, ok = resolveAxis(agg, input.MainX)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, 1.0)
}

func TestSingleKey(t *testing.T) {
	var kb inputtest.Keyboard
	tab := input.NewTable()
	agg := input.NewAggregator(tab, &kb, nil)

	tab.BindKey(input.KeyLCtrl, input.Aux0, 1.0)

	// no off value so the axis is not resolved when the key isn't held
	_, ok := resolveAxis(agg, input.Aux0)
	test.ExpectFailure(t, ok)

	kb.Press(input.KeyLCtrl)
	v, ok := resolveAxis(agg, input.Aux0)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, 1.0)

	// rebinding with an off value
	tab.BindKeyRange(input.KeyLCtrl, input.Aux0, 0.25, 0.75)
	test.ExpectEquality(t, tab.Len(), 1)

	v, ok = resolveAxis(agg, input.Aux0)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, 0.75)

	kb.ReleaseAll()
	v, ok = resolveAxis(agg, input.Aux0)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, 0.25)
}

func TestKeyCross(t *testing.T) {
	var kb inputtest.Keyboard
	tab := input.NewTable()
	agg := input.NewAggregator(tab, &kb, nil)

	tab.BindKeyCross(input.KeyW, input.KeyS, input.KeyA, input.KeyD, input.RadialMain)

	snap := agg.Resolve()
	v, ok := snap.Radial(input.RadialMain)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, input.Vec2(0, 0))

	kb.Press(input.KeyW)
	snap = agg.Resolve()
	v, _ = snap.Radial(input.RadialMain)
	test.ExpectEquality(t, v, input.Vec2(0, -1))

	// diagonal is normalised
	kb.Press(input.KeyD)
	snap = agg.Resolve()
	v, _ = snap.Radial(input.RadialMain)
	test.ExpectApproximate(t, v[0], 0.7071, 0.0001)
	test.ExpectApproximate(t, v[1], -0.7071, 0.0001)
	test.ExpectApproximate(t, math.Hypot(v[0], v[1]), 1.0, 1e-9)

	// opposing keys cancel
	kb.ReleaseAll()
	kb.Press(input.KeyW, input.KeyS)
	snap = agg.Resolve()
	v, _ = snap.Radial(input.RadialMain)
	test.ExpectEquality(t, v, input.Vec2(0, 0))

	kb.Press(input.KeyA)
	snap = agg.Resolve()
	v, _ = snap.Radial(input.RadialMain)
	test.ExpectEquality(t, v, input.Vec2(-1, 0))
}

func TestDeadZone(t *testing.T) {
	reg := input.NewRegistry()
	dev := inputtest.NewDevice("pad")
	id := reg.Add(input.Controller, dev)

	tab := input.NewTable()
	agg := input.NewAggregator(tab, nil, reg)
	tab.BindDeviceAxis(id, 0, input.MainX, nil)

	for _, raw := range []int16{0, 1, -1, 500, -500, 1000, -1000} {
		dev.Axes[0] = raw
		_, ok := resolveAxis(agg, input.MainX)
		test.ExpectFailure(t, ok, raw)
	}

	dev.Axes[0] = 1001
	_, ok := resolveAxis(agg, input.MainX)
	test.ExpectSuccess(t, ok)

	dev.Axes[0] = math.MaxInt16
	v, ok := resolveAxis(agg, input.MainX)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, 1.0)

	dev.Axes[0] = math.MinInt16
	v, ok = resolveAxis(agg, input.MainX)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, -1.0)

	// custom dead zone
	agg.DeadZone = 2000
	dev.Axes[0] = 1500
	_, ok = resolveAxis(agg, input.MainX)
	test.ExpectFailure(t, ok)
}

func TestDeviceStick(t *testing.T) {
	reg := input.NewRegistry()
	dev := inputtest.NewDevice("pad")
	id := reg.Add(input.Controller, dev)

	tab := input.NewTable()
	agg := input.NewAggregator(tab, nil, reg)
	tab.BindDeviceStick(id, 0, 1, input.RadialSecondary, nil)

	dev.Axes[0] = 100
	dev.Axes[1] = -100
	snap := agg.Resolve()
	_, ok := snap.Radial(input.RadialSecondary)
	test.ExpectFailure(t, ok)

	// one axis outside the dead zone is enough
	dev.Axes[0] = math.MaxInt16
	snap = agg.Resolve()
	v, ok := snap.Radial(input.RadialSecondary)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v[0], 1.0)
	test.ExpectApproximate(t, v[1], -100.0/math.MaxInt16, 1e-9)
}

func TestDeviceButtonCross(t *testing.T) {
	reg := input.NewRegistry()
	dev := inputtest.NewDevice("pad")
	id := reg.Add(input.Joystick, dev)

	tab := input.NewTable()
	agg := input.NewAggregator(tab, nil, reg)
	tab.BindDeviceButtonCross(id, 11, 12, 13, 14, input.RadialAux)

	snap := agg.Resolve()
	_, ok := snap.Radial(input.RadialAux)
	test.ExpectFailure(t, ok)

	dev.Buttons[11] = true
	snap = agg.Resolve()
	v, ok := snap.Radial(input.RadialAux)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, input.Vec2(0, -1))

	dev.Buttons[14] = true
	snap = agg.Resolve()
	v, _ = snap.Radial(input.RadialAux)
	test.ExpectApproximate(t, v[0], math.Sqrt2/2, 1e-9)
	test.ExpectApproximate(t, v[1], -math.Sqrt2/2, 1e-9)
}

func TestButtons(t *testing.T) {
	var kb inputtest.Keyboard
	reg := input.NewRegistry()
	dev := inputtest.NewDevice("pad")
	id := reg.Add(input.Controller, dev)

	tab := input.NewTable()
	agg := input.NewAggregator(tab, &kb, reg)
	tab.BindKeyButton(input.KeySpace, input.ButtonA)
	tab.BindDeviceButton(id, 0, input.ButtonA)

	snap := agg.Resolve()
	test.ExpectFailure(t, snap.Button(input.ButtonA))

	// either source is enough for the button to be down
	kb.Press(input.KeySpace)
	snap = agg.Resolve()
	test.ExpectSuccess(t, snap.Button(input.ButtonA))

	kb.ReleaseAll()
	dev.Buttons[0] = true
	snap = agg.Resolve()
	test.ExpectSuccess(t, snap.Button(input.ButtonA))

	// a key bound to a button and to an axis are different sources
	tab.BindKey(input.KeySpace, input.Aux1, 1.0)
	test.ExpectEquality(t, tab.Len(), 3)
}

func TestLayerPriority(t *testing.T) {
	var kb inputtest.Keyboard
	reg := input.NewRegistry()
	pad := inputtest.NewDevice("pad")
	joy := inputtest.NewDevice("joy")
	padID := reg.Add(input.Controller, pad)
	joyID := reg.Add(input.Joystick, joy)

	tab := input.NewTable()
	agg := input.NewAggregator(tab, &kb, reg)

	// controller binding registered first. registration order is not
	// important between layers
	tab.BindDeviceAxis(padID, 0, input.MainX, nil)
	tab.BindDeviceAxis(joyID, 0, input.MainX, nil)
	tab.BindKeyPair(input.KeyLeft, input.KeyRight, input.MainX, -1.0, 0.0, 1.0)

	// only the keyboard produces a value
	kb.Press(input.KeyLeft)
	v, _ := resolveAxis(agg, input.MainX)
	test.ExpectEquality(t, v, -1.0)

	// joystick overrides keyboard
	joy.Axes[0] = math.MaxInt16
	v, _ = resolveAxis(agg, input.MainX)
	test.ExpectEquality(t, v, 1.0)

	// controller overrides joystick
	pad.Axes[0] = math.MinInt16
	v, _ = resolveAxis(agg, input.MainX)
	test.ExpectEquality(t, v, -1.0)

	// controller in the dead zone produces no value so joystick value is used
	pad.Axes[0] = 10
	v, _ = resolveAxis(agg, input.MainX)
	test.ExpectEquality(t, v, 1.0)

	// keyboard off value is used when neither device produces a value
	joy.Axes[0] = 0
	kb.ReleaseAll()
	v, ok := resolveAxis(agg, input.MainX)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, 0.0)
}

func TestLaterBindingWins(t *testing.T) {
	var kb inputtest.Keyboard
	tab := input.NewTable()
	agg := input.NewAggregator(tab, &kb, nil)

	tab.BindKeyPair(input.KeyLeft, input.KeyRight, input.MainY, -1.0, 0.0, 1.0)
	tab.BindKeyRange(input.KeySpace, input.MainY, 0.25, 0.5)

	kb.Press(input.KeyLeft)
	v, _ := resolveAxis(agg, input.MainY)
	test.ExpectEquality(t, v, 0.25)

	// replacing a binding makes it the most recent binding
	tab.BindKeyPair(input.KeyLeft, input.KeyRight, input.MainY, -2.0, 0.0, 2.0)
	v, _ = resolveAxis(agg, input.MainY)
	test.ExpectEquality(t, v, -2.0)
}

func TestDisconnectedDevice(t *testing.T) {
	reg := input.NewRegistry()
	dev := inputtest.NewDevice("pad")
	id := reg.Add(input.Controller, dev)

	tab := input.NewTable()
	agg := input.NewAggregator(tab, nil, reg)
	tab.BindDeviceAxis(id, 0, input.MainX, nil)
	tab.BindDeviceButton(id, 0, input.ButtonB)

	dev.Axes[0] = math.MaxInt16
	dev.Buttons[0] = true
	_, ok := resolveAxis(agg, input.MainX)
	test.ExpectSuccess(t, ok)

	dev.Detached = true
	snap := agg.Resolve()
	_, ok = snap.Axis(input.MainX)
	test.ExpectFailure(t, ok)
	test.ExpectFailure(t, snap.Button(input.ButtonB))

	// disconnection is reported once
	errs := reg.Detached()
	test.DemandEquality(t, len(errs), 1)
	test.ExpectSuccess(t, curated.Is(errs[0], input.DeviceDisconnected))
	test.ExpectSuccess(t, dev.Closed)
	test.ExpectEquality(t, len(reg.Detached()), 0)

	// reattaching the same device value does not revive the bindings
	dev.Detached = false
	_, ok = resolveAxis(agg, input.MainX)
	test.ExpectFailure(t, ok)
}

func TestNoKeyboard(t *testing.T) {
	tab := input.NewTable()
	agg := input.NewAggregator(tab, nil, nil)
	tab.BindKeyPair(input.KeyLeft, input.KeyRight, input.MainX, -1.0, 0.0, 1.0)
	tab.BindDeviceAxis(0, 0, input.MainY, nil)

	snap := agg.Resolve()
	_, ok := snap.Axis(input.MainX)
	test.ExpectFailure(t, ok)
	_, ok = snap.Axis(input.MainY)
	test.ExpectFailure(t, ok)
}
