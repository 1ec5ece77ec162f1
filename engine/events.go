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

package engine

import (
	"fmt"
	"image"
	"time"
)

// EventKind identifies the kind of a platform Event.
type EventKind int

// List of valid EventKind values.
const (
	EventQuit EventKind = iota
	EventFocusGained
	EventFocusLost
	EventResized
	EventDeviceAdded

	numEventKinds
)

func (k EventKind) String() string {
	switch k {
	case EventQuit:
		return "quit"
	case EventFocusGained:
		return "focus gained"
	case EventFocusLost:
		return "focus lost"
	case EventResized:
		return "resized"
	case EventDeviceAdded:
		return "device added"
	}
	return fmt.Sprintf("EventKind(%d)", int(k))
}

// Event is a platform event.
type Event struct {
	Kind EventKind

	// new size of the drawable area for EventResized
	Size image.Point
}

// EventSource is implemented by platforms that produce events.
type EventSource interface {
	// PollEvent returns the next pending event. Returns false if there are
	// no pending events.
	PollEvent() (Event, bool)

	// WaitEvent blocks until there is an event or until the timeout has
	// elapsed. Returns false if the timeout elapsed.
	WaitEvent(timeout time.Duration) (Event, bool)
}

// EventHandler is called for each event of the kind it was registered for.
type EventHandler func(Event)

// EventManager calls handler functions for events from an EventSource. There
// is at most one handler for each kind of event. Events with no handler are
// discarded.
type EventManager struct {
	source   EventSource
	handlers [numEventKinds]EventHandler
}

// NewEventManager is the preferred method of initialisation for the
// EventManager type.
func NewEventManager(source EventSource) *EventManager {
	return &EventManager{
		source: source,
	}
}

// SetHandler sets the handler for the kind of event. A nil handler removes the
// existing handler.
func (em *EventManager) SetHandler(kind EventKind, handler EventHandler) {
	if kind < 0 || kind >= numEventKinds {
		return
	}
	em.handlers[kind] = handler
}

func (em *EventManager) handle(ev Event) {
	if ev.Kind < 0 || ev.Kind >= numEventKinds {
		return
	}
	if h := em.handlers[ev.Kind]; h != nil {
		h(ev)
	}
}

// PollAndHandle handles every pending event. It does not block. Returns the
// number of events that were handled or discarded.
func (em *EventManager) PollAndHandle() int {
	n := 0
	for {
		ev, ok := em.source.PollEvent()
		if !ok {
			return n
		}
		em.handle(ev)
		n++
	}
}

// WaitAndHandle waits for a single event and handles it. Returns false if the
// timeout elapsed before an event arrived.
func (em *EventManager) WaitAndHandle(timeout time.Duration) bool {
	ev, ok := em.source.WaitEvent(timeout)
	if !ok {
		return false
	}
	em.handle(ev)
	return true
}
