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
	"context"
	"slices"
	"time"

	"github.com/resdl/resdl/curated"
	"github.com/resdl/resdl/input"
	"github.com/resdl/resdl/logger"
	"github.com/resdl/resdl/render"
)

// Sentinal error patterns.
const (
	NotAnObject = "engine: %T is neither an Updater nor a Renderer"
	FrameError  = "engine: %v"
)

// Platform is the interface to the window, or the headless equivalent.
type Platform interface {
	EventSource

	// PrepareFrame is called before any object is rendered. The returned
	// surface is passed to every Renderer for the frame
	PrepareFrame() render.Surface

	// FinalizeFrame is called after every object has been rendered
	FinalizeFrame() error

	// UpdateGeometry is called when the window has been resized
	UpdateGeometry()
}

// Updater is implemented by objects that change over time. The duration is
// the time elapsed since the previous frame.
type Updater interface {
	Update(elapsed time.Duration)
}

// Renderer is implemented by objects that draw to the render target.
type Renderer interface {
	Render(surface render.Surface)
}

// Orderer is an optional interface for a Renderer. Objects with a lower order
// are drawn first. Objects without an Order() function have an order of
// zero. Objects with the same order are drawn in the order they were added.
type Orderer interface {
	Order() int
}

// Handle is a reference to an object added to the Engine. A Handle stays
// valid until the object is removed.
type Handle int

type slot struct {
	obj   any
	order int
	used  bool
}

// how often the frame rate is logged
const fpsPeriod = 100

// how long to wait for an event when the window does not have focus. the
// timeout means that context cancellation is noticed in good time
const unfocusedWait = 100 * time.Millisecond

// Engine is the game loop.
type Engine struct {
	Events *EventManager
	Input  *input.Manager

	platform Platform

	// object arena. free slots are reused
	slots []slot
	free  []Handle

	// handles of renderers sorted by order
	renderOrder []Handle

	frame    int
	done     bool
	hasFocus bool

	// stop after the number of frames. zero means no limit
	FrameLimit int

	// used to measure elapsed time. replaceable for testing
	Now func() time.Time
}

// NewEngine is the preferred method of initialisation for the Engine type.
// The engine takes responsibility for the quit, focus and resize events.
func NewEngine(plt Platform, in *input.Manager) *Engine {
	eng := &Engine{
		Events:   NewEventManager(plt),
		Input:    in,
		platform: plt,
		hasFocus: true,
		Now:      time.Now,
	}

	eng.Events.SetHandler(EventQuit, func(_ Event) {
		eng.done = true
	})
	eng.Events.SetHandler(EventFocusLost, func(_ Event) {
		eng.hasFocus = false
	})
	eng.Events.SetHandler(EventFocusGained, func(_ Event) {
		eng.hasFocus = true
	})
	eng.Events.SetHandler(EventResized, func(_ Event) {
		plt.UpdateGeometry()
	})

	return eng
}

// Add an object to the engine. The object must implement Updater or Renderer,
// or both.
func (eng *Engine) Add(obj any) (Handle, error) {
	_, isUpdater := obj.(Updater)
	r, isRenderer := obj.(Renderer)
	if !isUpdater && !isRenderer {
		return -1, curated.Errorf(NotAnObject, obj)
	}

	s := slot{obj: obj, used: true}
	if o, ok := r.(Orderer); ok {
		s.order = o.Order()
	}

	var h Handle
	if len(eng.free) > 0 {
		h = eng.free[len(eng.free)-1]
		eng.free = eng.free[:len(eng.free)-1]
		eng.slots[h] = s
	} else {
		h = Handle(len(eng.slots))
		eng.slots = append(eng.slots, s)
	}

	if isRenderer {
		// insert after every renderer with the same or lower order
		i, _ := slices.BinarySearchFunc(eng.renderOrder, s.order+1, func(e Handle, order int) int {
			return eng.slots[e].order - order
		})
		eng.renderOrder = slices.Insert(eng.renderOrder, i, h)
	}

	return h, nil
}

// Remove the object with the handle. Other handles are not affected. It is
// not an error to remove a handle that is not in use.
func (eng *Engine) Remove(h Handle) {
	if h < 0 || int(h) >= len(eng.slots) || !eng.slots[h].used {
		return
	}
	eng.slots[h] = slot{}
	eng.free = append(eng.free, h)
	eng.renderOrder = slices.DeleteFunc(eng.renderOrder, func(e Handle) bool {
		return e == h
	})
}

// Object returns the object for the handle. Returns nil if the handle is not
// in use.
func (eng *Engine) Object(h Handle) any {
	if h < 0 || int(h) >= len(eng.slots) {
		return nil
	}
	return eng.slots[h].obj
}

// Len returns the number of objects in the engine.
func (eng *Engine) Len() int {
	return len(eng.slots) - len(eng.free)
}

// Frame returns the number of frames completed by the engine. Frame
// implements the random.Clock interface.
func (eng *Engine) Frame() int {
	return eng.frame
}

// Stop the engine at the end of the current frame.
func (eng *Engine) Stop() {
	eng.done = true
}

// Run the game loop until a quit event, until the frame limit has been
// reached, or until the context is cancelled. Returns the context's error if
// the context was cancelled.
func (eng *Engine) Run(ctx context.Context) error {
	eng.done = false

	ticks := NewTicks(eng.Now)
	var accumulated time.Duration
	var count int

	for !eng.done {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if eng.hasFocus {
			eng.Events.PollAndHandle()
		} else {
			eng.Events.WaitAndHandle(unfocusedWait)
		}
		if eng.done {
			break
		}

		if eng.Input != nil {
			eng.Input.Tick()
		}

		elapsed := ticks.Lap()
		accumulated += elapsed

		for _, s := range eng.slots {
			if u, ok := s.obj.(Updater); ok && s.used {
				u.Update(elapsed)
			}
		}

		surface := eng.platform.PrepareFrame()
		for _, h := range eng.renderOrder {
			eng.slots[h].obj.(Renderer).Render(surface)
		}
		err := eng.platform.FinalizeFrame()
		if err != nil {
			return curated.Errorf(FrameError, err)
		}

		eng.frame++
		count++

		if count == fpsPeriod {
			if accumulated > 0 {
				logger.Logf(logger.Allow, "engine", "%.1f fps", float64(count)/accumulated.Seconds())
			}
			accumulated = 0
			count = 0
		}

		if eng.FrameLimit > 0 && eng.frame >= eng.FrameLimit {
			eng.done = true
		}
	}

	return nil
}
