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

import "github.com/resdl/resdl/logger"

// Manager ties together the binding table, the device registry, the
// aggregator and the dispatcher.
type Manager struct {
	Bindings   *Table
	Devices    *Registry
	Aggregator *Aggregator
	Dispatcher *Dispatcher

	last      Snapshot
	observers []func(*Snapshot)

	// DeviceDisconnected errors collected by Tick() and not yet taken by
	// Disconnected()
	disconnected []error
}

// NewManager is the preferred method of initialisation for the Manager type.
// The keyboard may be nil.
func NewManager(keyboard Keyboard) *Manager {
	m := &Manager{
		Bindings:   NewTable(),
		Devices:    NewRegistry(),
		Dispatcher: NewDispatcher(),
	}
	m.Aggregator = NewAggregator(m.Bindings, keyboard, m.Devices)
	return m
}

// Observe adds a function that is called with the resolved snapshot at the
// end of every tick. Observers are called after the handlers.
func (m *Manager) Observe(f func(*Snapshot)) {
	m.observers = append(m.observers, f)
}

// Tick resolves the current state of all bound inputs and dispatches the
// result to the registered handlers. Tick should be called once per frame
// after platform events have been processed.
func (m *Manager) Tick() {
	ids, errs := m.Devices.detached()
	for _, id := range ids {
		if n := m.Bindings.UnbindDevice(id); n > 0 {
			logger.Logf(logger.Allow, "input", "removed %d bindings for device %d", n, id)
		}
	}
	m.disconnected = append(m.disconnected, errs...)

	m.last = m.Aggregator.Resolve()
	m.Dispatcher.Dispatch(&m.last)

	for _, f := range m.observers {
		f(&m.last)
	}
}

// Disconnected returns a DeviceDisconnected error for every device found to
// be detached by Tick() since the previous call to Disconnected(). Bindings
// on those devices have already been removed from the binding table.
func (m *Manager) Disconnected() []error {
	errs := m.disconnected
	m.disconnected = nil
	return errs
}

// Last returns the snapshot resolved by the most recent call to Tick().
func (m *Manager) Last() Snapshot {
	return m.last
}

// Close releases all devices in the registry.
func (m *Manager) Close() {
	m.Devices.CloseAll()
}
