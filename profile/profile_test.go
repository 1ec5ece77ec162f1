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

package profile_test

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/resdl/resdl/curated"
	"github.com/resdl/resdl/input"
	"github.com/resdl/resdl/input/inputtest"
	"github.com/resdl/resdl/profile"
	"github.com/resdl/resdl/test"
)

const example = `
deadzone: 2000
keyboard:
  keys:
    - {key: LCtrl, axis: Aux0, value: 1}
    - {key: Space, axis: Aux1, value: 0.5, off: -0.5}
  pairs:
    - {min: Left, max: Right, axis: MainX, values: [-1, 0, 1]}
  crosses:
    - {up: W, down: S, left: A, right: D, radial: Main}
  buttons:
    - {key: Return, button: Start}
controller:
  axes:
    - {axis: 2, to: MainX}
    - {axis: 5, to: Aux0, shape: trigger}
  sticks:
    - {x: 0, y: 1, radial: Main}
  buttons:
    - {button: 0, to: A}
joystick:
  axes:
    - {axis: 0, to: MainX, shape: invert}
`

func TestRead(t *testing.T) {
	p, err := profile.Read(strings.NewReader(example))
	test.DemandSuccess(t, err)
	test.DemandInequality(t, p.DeadZone, nil)
	test.ExpectEquality(t, *p.DeadZone, 2000)
	test.ExpectEquality(t, len(p.Keyboard.Keys), 2)
	test.ExpectEquality(t, len(p.Controller.Axes), 2)
	test.ExpectEquality(t, p.Controller.Axes[1].Shape, "trigger")
}

func TestApply(t *testing.T) {
	p, err := profile.Read(strings.NewReader(example))
	test.DemandSuccess(t, err)

	var kb inputtest.Keyboard
	m := input.NewManager(&kb)
	pad := inputtest.NewDevice("pad")
	joy := inputtest.NewDevice("joy")
	m.Devices.Add(input.Controller, pad)
	m.Devices.Add(input.Joystick, joy)

	test.ExpectSuccess(t, p.Apply(m))
	test.ExpectEquality(t, m.Aggregator.DeadZone, 2000)

	// 5 keyboard bindings, 4 controller bindings and 1 joystick binding
	test.ExpectEquality(t, m.Bindings.Len(), 10)

	// keyboard single key with off value
	m.Tick()
	snap := m.Last()
	v, ok := snap.Axis(input.Aux1)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, -0.5)

	// joystick axis is inverted
	joy.Axes[0] = math.MaxInt16
	m.Tick()
	snap = m.Last()
	v, _ = snap.Axis(input.MainX)
	test.ExpectEquality(t, v, -1.0)

	// controller trigger
	pad.Axes[5] = math.MaxInt16
	m.Tick()
	snap = m.Last()
	v, _ = snap.Axis(input.Aux0)
	test.ExpectEquality(t, v, 1.0)

	// controller button and keyboard button
	pad.Buttons[0] = true
	kb.Press(input.KeyReturn)
	m.Tick()
	snap = m.Last()
	test.ExpectSuccess(t, snap.Button(input.ButtonA))
	test.ExpectSuccess(t, snap.Button(input.ButtonStart))
}

func TestUnknownNames(t *testing.T) {
	_, err := profile.Read(strings.NewReader("keyboard:\n  keys:\n    - {key: Hyper, axis: MainX, value: 1}\n"))
	test.ExpectSuccess(t, curated.Is(err, profile.UnknownKey))

	_, err = profile.Read(strings.NewReader("keyboard:\n  keys:\n    - {key: A, axis: MainW, value: 1}\n"))
	test.ExpectSuccess(t, curated.Is(err, profile.UnknownAxis))

	_, err = profile.Read(strings.NewReader("controller:\n  sticks:\n    - {x: 0, y: 1, radial: Left}\n"))
	test.ExpectSuccess(t, curated.Is(err, profile.UnknownRadial))

	_, err = profile.Read(strings.NewReader("joystick:\n  buttons:\n    - {button: 0, to: Turbo}\n"))
	test.ExpectSuccess(t, curated.Is(err, profile.UnknownButton))

	_, err = profile.Read(strings.NewReader("controller:\n  axes:\n    - {axis: 0, to: MainX, shape: cubic}\n"))
	test.ExpectSuccess(t, curated.Is(err, profile.UnknownShape))

	_, err = profile.Read(strings.NewReader("keyboard:\n  pairs:\n    - {min: Left, max: Right, axis: MainX, values: [-1, 1]}\n"))
	test.ExpectSuccess(t, curated.Is(err, profile.BadValues))

	// unknown fields are an error
	_, err = profile.Read(strings.NewReader("mouse:\n  sensitivity: 10\n"))
	test.ExpectSuccess(t, curated.Is(err, profile.ProfileError))
}

func TestEmpty(t *testing.T) {
	p, err := profile.Read(strings.NewReader(""))
	test.DemandSuccess(t, err)

	m := input.NewManager(nil)
	test.ExpectSuccess(t, p.Apply(m))
	test.ExpectEquality(t, m.Bindings.Len(), 0)
	test.ExpectEquality(t, m.Aggregator.DeadZone, input.DefaultDeadZone)
}

func TestSaveLoad(t *testing.T) {
	p, err := profile.Read(strings.NewReader(example))
	test.DemandSuccess(t, err)

	filename := filepath.Join(t.TempDir(), "profile.yaml")
	test.DemandSuccess(t, p.Save(filename))

	q, err := profile.Load(filename)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, *q.DeadZone, *p.DeadZone)
	test.ExpectEquality(t, len(q.Keyboard.Pairs), 1)
	test.ExpectEquality(t, q.Keyboard.Pairs[0].Values[0], -1.0)
	test.DemandInequality(t, q.Keyboard.Keys[1].Off, nil)
	test.ExpectEquality(t, *q.Keyboard.Keys[1].Off, -0.5)

	_, err = profile.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	test.ExpectFailure(t, err)

	_ = os.Remove(filename)
}
