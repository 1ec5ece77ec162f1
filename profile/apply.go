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

package profile

import (
	"strings"

	"github.com/resdl/resdl/curated"
	"github.com/resdl/resdl/input"
)

func key(name string) (input.Key, error) {
	k, ok := input.KeyByName(name)
	if !ok {
		return input.KeyUnknown, curated.Errorf(UnknownKey, name)
	}
	return k, nil
}

func axis(name string) (input.Axis, error) {
	a, ok := input.AxisByName(name)
	if !ok {
		return 0, curated.Errorf(UnknownAxis, name)
	}
	return a, nil
}

func radial(name string) (input.Radial, error) {
	r, ok := input.RadialByName(name)
	if !ok {
		return 0, curated.Errorf(UnknownRadial, name)
	}
	return r, nil
}

func button(name string) (input.Button, error) {
	b, ok := input.ButtonByName(name)
	if !ok {
		return 0, curated.Errorf(UnknownButton, name)
	}
	return b, nil
}

func shape(name string) (input.ShapeS16, error) {
	switch strings.ToLower(name) {
	case "", "scale":
		return input.ScaleS16, nil
	case "invert":
		return input.InvertS16, nil
	case "trigger":
		return input.ScaleTrigger, nil
	}
	return nil, curated.Errorf(UnknownShape, name)
}

// Validate checks that every name in the profile is recognised.
func (p *Profile) Validate() error {
	tab := input.NewTable()
	if err := p.ApplyKeyboard(tab); err != nil {
		return err
	}
	if err := p.ApplyDevice(tab, 0, input.Controller); err != nil {
		return err
	}
	if err := p.ApplyDevice(tab, 0, input.Joystick); err != nil {
		return err
	}
	return nil
}

// ApplyKeyboard adds the keyboard bindings in the profile to the table.
func (p *Profile) ApplyKeyboard(tab *input.Table) error {
	for _, b := range p.Keyboard.Keys {
		k, err := key(b.Key)
		if err != nil {
			return err
		}
		a, err := axis(b.Axis)
		if err != nil {
			return err
		}
		if b.Off != nil {
			tab.BindKeyRange(k, a, *b.Off, b.Value)
		} else {
			tab.BindKey(k, a, b.Value)
		}
	}

	for _, b := range p.Keyboard.Pairs {
		if len(b.Values) != 3 {
			return curated.Errorf(BadValues, b.Min, b.Max)
		}
		mn, err := key(b.Min)
		if err != nil {
			return err
		}
		mx, err := key(b.Max)
		if err != nil {
			return err
		}
		a, err := axis(b.Axis)
		if err != nil {
			return err
		}
		tab.BindKeyPair(mn, mx, a, b.Values[0], b.Values[1], b.Values[2])
	}

	for _, b := range p.Keyboard.Crosses {
		var keys [4]input.Key
		for i, n := range []string{b.Up, b.Down, b.Left, b.Right} {
			k, err := key(n)
			if err != nil {
				return err
			}
			keys[i] = k
		}
		r, err := radial(b.Radial)
		if err != nil {
			return err
		}
		tab.BindKeyCross(keys[0], keys[1], keys[2], keys[3], r)
	}

	for _, b := range p.Keyboard.Buttons {
		k, err := key(b.Key)
		if err != nil {
			return err
		}
		btn, err := button(b.Button)
		if err != nil {
			return err
		}
		tab.BindKeyButton(k, btn)
	}

	return nil
}

// ApplyDevice adds the bindings for the kind of device to the table.
func (p *Profile) ApplyDevice(tab *input.Table, id input.DeviceID, kind input.DeviceKind) error {
	dev := &p.Joystick
	if kind == input.Controller {
		dev = &p.Controller
	}

	for _, b := range dev.Axes {
		a, err := axis(b.To)
		if err != nil {
			return err
		}
		s, err := shape(b.Shape)
		if err != nil {
			return err
		}
		tab.BindDeviceAxis(id, b.Axis, a, s)
	}

	for _, b := range dev.Sticks {
		r, err := radial(b.Radial)
		if err != nil {
			return err
		}
		tab.BindDeviceStick(id, b.X, b.Y, r, nil)
	}

	for _, b := range dev.Buttons {
		btn, err := button(b.To)
		if err != nil {
			return err
		}
		tab.BindDeviceButton(id, b.Button, btn)
	}

	for _, b := range dev.Crosses {
		r, err := radial(b.Radial)
		if err != nil {
			return err
		}
		tab.BindDeviceButtonCross(id, b.Up, b.Down, b.Left, b.Right, r)
	}

	return nil
}

// Apply adds every binding in the profile to the manager's binding table.
// Device bindings are applied to every open device in the manager's
// registry. The aggregator's dead zone is changed if the profile specifies
// one.
func (p *Profile) Apply(m *input.Manager) error {
	if p.DeadZone != nil {
		m.Aggregator.DeadZone = *p.DeadZone
	}

	err := p.ApplyKeyboard(m.Bindings)
	if err != nil {
		return err
	}

	m.Devices.Each(func(id input.DeviceID, kind input.DeviceKind, _ string) {
		if err != nil {
			return
		}
		err = p.ApplyDevice(m.Bindings, id, kind)
	})

	return err
}
