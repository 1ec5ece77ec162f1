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
	"errors"
	"io"
	"os"

	"github.com/resdl/resdl/curated"
	"gopkg.in/yaml.v3"
)

// Sentinal error patterns.
const (
	ProfileError  = "profile: %v"
	UnknownKey    = "profile: unknown key (%s)"
	UnknownAxis   = "profile: unknown axis (%s)"
	UnknownRadial = "profile: unknown radial (%s)"
	UnknownButton = "profile: unknown button (%s)"
	UnknownShape  = "profile: unknown shape (%s)"
	BadValues     = "profile: key pair %s/%s requires three values"
)

// Key binds a single key to an axis. If Off is nil then the axis has no value
// while the key is not held.
type Key struct {
	Key   string   `yaml:"key"`
	Axis  string   `yaml:"axis"`
	Value float64  `yaml:"value"`
	Off   *float64 `yaml:"off,omitempty"`
}

// Pair binds two keys to an axis. Values is the list of min, off and max
// values.
type Pair struct {
	Min    string    `yaml:"min"`
	Max    string    `yaml:"max"`
	Axis   string    `yaml:"axis"`
	Values []float64 `yaml:"values,flow"`
}

// Cross binds four keys to a radial.
type Cross struct {
	Up     string `yaml:"up"`
	Down   string `yaml:"down"`
	Left   string `yaml:"left"`
	Right  string `yaml:"right"`
	Radial string `yaml:"radial"`
}

// KeyButton binds a key to a button.
type KeyButton struct {
	Key    string `yaml:"key"`
	Button string `yaml:"button"`
}

// Keyboard is the set of keyboard bindings in a profile.
type Keyboard struct {
	Keys    []Key       `yaml:"keys,omitempty"`
	Pairs   []Pair      `yaml:"pairs,omitempty"`
	Crosses []Cross     `yaml:"crosses,omitempty"`
	Buttons []KeyButton `yaml:"buttons,omitempty"`
}

// Axis binds a device axis to an axis. Shape is one of "scale", "invert" or
// "trigger". The default shape is "scale".
type Axis struct {
	Axis  int    `yaml:"axis"`
	To    string `yaml:"to"`
	Shape string `yaml:"shape,omitempty"`
}

// Stick binds two device axes to a radial.
type Stick struct {
	X      int    `yaml:"x"`
	Y      int    `yaml:"y"`
	Radial string `yaml:"radial"`
}

// Button binds a device button to a button.
type Button struct {
	Button int    `yaml:"button"`
	To     string `yaml:"to"`
}

// ButtonCross binds four device buttons to a radial.
type ButtonCross struct {
	Up     int    `yaml:"up"`
	Down   int    `yaml:"down"`
	Left   int    `yaml:"left"`
	Right  int    `yaml:"right"`
	Radial string `yaml:"radial"`
}

// Device is the set of bindings for a single kind of device.
type Device struct {
	Axes    []Axis        `yaml:"axes,omitempty"`
	Sticks  []Stick       `yaml:"sticks,omitempty"`
	Buttons []Button      `yaml:"buttons,omitempty"`
	Crosses []ButtonCross `yaml:"crosses,omitempty"`
}

// Profile is a complete binding profile.
type Profile struct {
	DeadZone   *int     `yaml:"deadzone,omitempty"`
	Keyboard   Keyboard `yaml:"keyboard"`
	Controller Device   `yaml:"controller"`
	Joystick   Device   `yaml:"joystick"`
}

// Read a profile from the reader. The profile is validated before being
// returned.
func Read(r io.Reader) (*Profile, error) {
	var p Profile

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	err := dec.Decode(&p)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, curated.Errorf(ProfileError, err)
	}

	err = p.Validate()
	if err != nil {
		return nil, err
	}

	return &p, nil
}

// Load a profile from the named file.
func Load(filename string) (*Profile, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, curated.Errorf(ProfileError, err)
	}
	defer f.Close()
	return Read(f)
}

// Write the profile to the writer as a YAML document.
func (p *Profile) Write(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	err := enc.Encode(p)
	if err != nil {
		return curated.Errorf(ProfileError, err)
	}
	err = enc.Close()
	if err != nil {
		return curated.Errorf(ProfileError, err)
	}
	return nil
}

// Save the profile to the named file.
func (p *Profile) Save(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf(ProfileError, err)
	}
	err = p.Write(f)
	if err != nil {
		_ = f.Close()
		return err
	}
	err = f.Close()
	if err != nil {
		return curated.Errorf(ProfileError, err)
	}
	return nil
}
