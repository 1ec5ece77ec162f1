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

	"github.com/resdl/resdl/curated"
	"github.com/resdl/resdl/logger"
)

// Sentinal error patterns.
const (
	DeviceDisconnected = "input: device %d (%s) disconnected"
	UnknownDevice      = "input: unknown device %d"
)

// Device is implemented by joystick and game controller types. Axis values
// are in the full signed 16 bit range.
type Device interface {
	Name() string
	Axis(axis int) int16
	Button(button int) bool
	Attached() bool
	Close()
}

// DeviceKind is the category of a Device. The kind decides which resolution
// layer bindings on the device belong to.
type DeviceKind int

// List of valid DeviceKind values.
const (
	Joystick DeviceKind = iota
	Controller
)

func (k DeviceKind) String() string {
	switch k {
	case Joystick:
		return "joystick"
	case Controller:
		return "controller"
	}
	return fmt.Sprintf("DeviceKind(%d)", int(k))
}

// DeviceID is a non-owning reference to a device in a Registry. A DeviceID is
// never reused by the Registry that issued it.
type DeviceID int

type registryEntry struct {
	device   Device
	kind     DeviceKind
	name     string
	closed   bool
	detached bool
}

// Registry owns every open device. Bindings refer to devices in the registry
// by DeviceID only.
type Registry struct {
	entries []registryEntry
}

// NewRegistry is the preferred method of initialisation for the Registry type.
func NewRegistry() *Registry {
	return &Registry{}
}

// Add takes ownership of the device and returns the DeviceID that bindings
// should use to refer to it.
func (r *Registry) Add(kind DeviceKind, dev Device) DeviceID {
	id := DeviceID(len(r.entries))
	r.entries = append(r.entries, registryEntry{
		device: dev,
		kind:   kind,
		name:   dev.Name(),
	})
	logger.Logf(logger.Allow, "input", "%s %d opened: %s", kind, id, dev.Name())
	return id
}

// Len returns the number of devices ever added to the registry, including
// devices that have since been closed.
func (r *Registry) Len() int {
	return len(r.entries)
}

// Device returns the device for the DeviceID. The boolean return value is
// false if the ID is unknown, if the device has been closed, or if the device
// is no longer attached.
func (r *Registry) Device(id DeviceID) (Device, DeviceKind, bool) {
	if id < 0 || int(id) >= len(r.entries) {
		return nil, Joystick, false
	}
	e := &r.entries[id]
	if e.closed || e.detached {
		return nil, e.kind, false
	}
	if !e.device.Attached() {
		e.detached = true
		logger.Logf(logger.Allow, "input", "%s %d disconnected: %s", e.kind, id, e.name)
		return nil, e.kind, false
	}
	return e.device, e.kind, true
}

// Kind returns the DeviceKind of the device. Returns an error if the ID is
// not known.
func (r *Registry) Kind(id DeviceID) (DeviceKind, error) {
	if id < 0 || int(id) >= len(r.entries) {
		return Joystick, curated.Errorf(UnknownDevice, int(id))
	}
	return r.entries[id].kind, nil
}

// Name returns the name of the device as reported when it was added.
func (r *Registry) Name(id DeviceID) string {
	if id < 0 || int(id) >= len(r.entries) {
		return ""
	}
	return r.entries[id].name
}

// Each calls the function for every device that is open and attached, in the
// order they were added.
func (r *Registry) Each(f func(id DeviceID, kind DeviceKind, name string)) {
	for i := range r.entries {
		e := &r.entries[i]
		if e.closed || e.detached {
			continue
		}
		f(DeviceID(i), e.kind, e.name)
	}
}

// Detached checks the attached state of every open device. A
// DeviceDisconnected error is returned for each device that has become
// detached since the previous call. Each device is reported only once.
//
// Bindings on a detached device produce no values regardless of whether this
// function is called.
func (r *Registry) Detached() []error {
	_, errs := r.detached()
	return errs
}

func (r *Registry) detached() ([]DeviceID, []error) {
	var ids []DeviceID
	var errs []error
	for i := range r.entries {
		e := &r.entries[i]
		if e.closed {
			continue
		}
		if !e.detached && e.device.Attached() {
			continue
		}
		if !e.detached {
			e.detached = true
			logger.Logf(logger.Allow, "input", "%s %d disconnected: %s", e.kind, i, e.name)
		}
		ids = append(ids, DeviceID(i))
		errs = append(errs, curated.Errorf(DeviceDisconnected, i, e.name))

		// a detached device is reported once. closing the entry means it
		// will be skipped on subsequent calls
		e.device.Close()
		e.closed = true
	}
	return ids, errs
}

// Close the device with the ID. Bindings that refer to the device remain in
// the binding table but produce no values.
func (r *Registry) Close(id DeviceID) {
	if id < 0 || int(id) >= len(r.entries) {
		return
	}
	e := &r.entries[id]
	if e.closed {
		return
	}
	e.device.Close()
	e.closed = true
	logger.Logf(logger.Allow, "input", "%s %d closed: %s", e.kind, id, e.name)
}

// CloseAll closes every device in the registry.
func (r *Registry) CloseAll() {
	for i := range r.entries {
		r.Close(DeviceID(i))
	}
}
