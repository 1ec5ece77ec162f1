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
	"strings"
	"testing"

	"github.com/resdl/resdl/curated"
	"github.com/resdl/resdl/input"
	"github.com/resdl/resdl/input/inputtest"
	"github.com/resdl/resdl/test"
)

func TestUnbind(t *testing.T) {
	var kb inputtest.Keyboard
	tab := input.NewTable()
	agg := input.NewAggregator(tab, &kb, nil)

	// unbinding a source that was never bound
	tab.Unbind(input.KeySource{Key: input.KeyQ})
	test.ExpectEquality(t, tab.Len(), 0)

	tab.BindKeyPair(input.KeyLeft, input.KeyRight, input.MainX, -1.0, 0.0, 1.0)
	tab.BindKeyButton(input.KeyLeft, input.ButtonX)
	test.ExpectEquality(t, tab.Len(), 2)

	src := input.KeyPairSource{Min: input.KeyLeft, Max: input.KeyRight}
	test.ExpectSuccess(t, tab.Bound(src))

	// the same keys in the other order is a different source
	test.ExpectFailure(t, tab.Bound(input.KeyPairSource{Min: input.KeyRight, Max: input.KeyLeft}))

	tab.Unbind(src)
	test.ExpectEquality(t, tab.Len(), 1)
	test.ExpectFailure(t, tab.Bound(src))

	// second unbind is a no-op
	tab.Unbind(src)
	test.ExpectEquality(t, tab.Len(), 1)

	snap := agg.Resolve()
	_, ok := snap.Axis(input.MainX)
	test.ExpectFailure(t, ok)

	kb.Press(input.KeyLeft)
	snap = agg.Resolve()
	test.ExpectSuccess(t, snap.Button(input.ButtonX))

	tab.Clear()
	test.ExpectEquality(t, tab.Len(), 0)
}

func TestBindingOrder(t *testing.T) {
	tab := input.NewTable()
	tab.BindKey(input.KeyA, input.Aux0, 1.0)
	tab.BindKey(input.KeyB, input.Aux1, 1.0)
	tab.BindDeviceButton(3, 1, input.ButtonStart)

	// rebinding moves the binding to the end
	tab.BindKey(input.KeyA, input.Aux2, 1.0)

	var s strings.Builder
	for _, b := range tab.Bindings() {
		s.WriteString(b.String())
		s.WriteString("\n")
	}
	test.ExpectEquality(t, s.String(), "key B -> axis Aux1\ndevice 3 button 1 -> button Start\nkey A -> axis Aux2\n")
}

func TestInvalidBinding(t *testing.T) {
	tab := input.NewTable()
	tab.BindKey(input.KeyA, input.NumAxes, 1.0)
	tab.BindKeyCross(input.KeyW, input.KeyS, input.KeyA, input.KeyD, input.NumRadials)
	tab.BindDeviceButton(0, 0, -1)
	test.ExpectEquality(t, tab.Len(), 0)
}

func TestRegistry(t *testing.T) {
	reg := input.NewRegistry()
	a := inputtest.NewDevice("a")
	b := inputtest.NewDevice("b")
	aID := reg.Add(input.Joystick, a)
	bID := reg.Add(input.Controller, b)
	test.ExpectInequality(t, aID, bID)
	test.ExpectEquality(t, reg.Len(), 2)

	kind, err := reg.Kind(bID)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, kind, input.Controller)
	test.ExpectEquality(t, reg.Name(aID), "a")

	_, err = reg.Kind(99)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, input.UnknownDevice))

	_, _, ok := reg.Device(99)
	test.ExpectFailure(t, ok)

	reg.Close(aID)
	test.ExpectSuccess(t, a.Closed)
	_, _, ok = reg.Device(aID)
	test.ExpectFailure(t, ok)

	var names []string
	reg.Each(func(_ input.DeviceID, _ input.DeviceKind, name string) {
		names = append(names, name)
	})
	test.DemandEquality(t, len(names), 1)
	test.ExpectEquality(t, names[0], "b")

	// a closed device is not reported as detached
	test.ExpectEquality(t, len(reg.Detached()), 0)

	// IDs are not reused
	c := inputtest.NewDevice("c")
	cID := reg.Add(input.Joystick, c)
	test.ExpectEquality(t, int(cID), 2)

	reg.CloseAll()
	test.ExpectSuccess(t, b.Closed)
	test.ExpectSuccess(t, c.Closed)
}

func TestDumpGraph(t *testing.T) {
	reg := input.NewRegistry()
	id := reg.Add(input.Controller, inputtest.NewDevice("pad"))

	tab := input.NewTable()
	tab.BindKeyPair(input.KeyLeft, input.KeyRight, input.MainX, -1.0, 0.0, 1.0)
	tab.BindDeviceAxis(id, 2, input.MainX, nil)

	var w strings.Builder
	input.DumpGraph(&w, tab, reg)
	test.ExpectSuccess(t, strings.Contains(w.String(), "digraph"))
	test.ExpectSuccess(t, strings.Contains(w.String(), "controller"))
}
