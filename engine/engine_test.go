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

package engine_test

import (
	"context"
	"image"
	"image/color"
	"strings"
	"testing"
	"time"

	"github.com/resdl/resdl/curated"
	"github.com/resdl/resdl/engine"
	"github.com/resdl/resdl/input"
	"github.com/resdl/resdl/input/inputtest"
	"github.com/resdl/resdl/render"
	"github.com/resdl/resdl/test"
)

// an event is delivered by the platform at the start of the frame it is
// stamped with, or at any later frame
type stamped struct {
	frame int
	ev    engine.Event
}

type platform struct {
	frame  int
	events []stamped

	waits    int
	geometry int
}

func (plt *platform) PollEvent() (engine.Event, bool) {
	if len(plt.events) == 0 || plt.events[0].frame > plt.frame {
		return engine.Event{}, false
	}
	ev := plt.events[0].ev
	plt.events = plt.events[1:]
	return ev, true
}

func (plt *platform) WaitEvent(_ time.Duration) (engine.Event, bool) {
	plt.waits++
	return plt.PollEvent()
}

func (plt *platform) PrepareFrame() render.Surface {
	return plt
}

func (plt *platform) FinalizeFrame() error {
	plt.frame++
	return nil
}

func (plt *platform) UpdateGeometry() {
	plt.geometry++
}

func (plt *platform) Size() image.Point { return image.Pt(320, 200) }
func (plt *platform) SetColor(_ color.RGBA) {}
func (plt *platform) Clear() {}
func (plt *platform) DrawRect(_ image.Rectangle) {}
func (plt *platform) FillRect(_ image.Rectangle) {}
func (plt *platform) DrawLine(_ image.Point, _ image.Point) {}
func (plt *platform) DrawPoints(_ []image.Point) {}

type object struct {
	name    string
	order   int
	updates int
	elapsed time.Duration
	log     *[]string
}

func (o *object) Update(elapsed time.Duration) {
	o.updates++
	o.elapsed += elapsed
}

func (o *object) Render(_ render.Surface) {
	*o.log = append(*o.log, o.name)
}

func (o *object) Order() int {
	return o.order
}

// renderOnly does not implement Orderer
type renderOnly struct {
	name string
	log  *[]string
}

func (o *renderOnly) Render(_ render.Surface) {
	*o.log = append(*o.log, o.name)
}

// fixed clock advancing by 10ms every time it is read
func clock() func() time.Time {
	t := time.Unix(0, 0)
	return func() time.Time {
		t = t.Add(10 * time.Millisecond)
		return t
	}
}

func TestRenderOrder(t *testing.T) {
	plt := &platform{}
	eng := engine.NewEngine(plt, nil)
	eng.FrameLimit = 1
	eng.Now = clock()

	var log []string
	_, err := eng.Add(&object{name: "b", order: 1, log: &log})
	test.ExpectSuccess(t, err)
	_, err = eng.Add(&object{name: "a", order: -1, log: &log})
	test.ExpectSuccess(t, err)
	_, err = eng.Add(&renderOnly{name: "c", log: &log})
	test.ExpectSuccess(t, err)
	_, err = eng.Add(&object{name: "d", order: 1, log: &log})
	test.ExpectSuccess(t, err)
	_, err = eng.Add(&renderOnly{name: "e", log: &log})
	test.ExpectSuccess(t, err)

	test.DemandSuccess(t, eng.Run(context.Background()))
	test.ExpectEquality(t, strings.Join(log, ""), "acebd")
}

func TestAddRemove(t *testing.T) {
	plt := &platform{}
	eng := engine.NewEngine(plt, nil)
	eng.FrameLimit = 3
	eng.Now = clock()

	_, err := eng.Add(struct{}{})
	test.ExpectSuccess(t, curated.Is(err, engine.NotAnObject))

	var log []string
	a := &object{name: "a", log: &log}
	b := &object{name: "b", log: &log}
	ha, _ := eng.Add(a)
	hb, _ := eng.Add(b)
	test.ExpectEquality(t, eng.Len(), 2)

	eng.Remove(ha)
	eng.Remove(ha)
	test.ExpectEquality(t, eng.Len(), 1)
	test.ExpectEquality(t, eng.Object(ha), nil)
	test.ExpectEquality(t, eng.Object(hb).(*object), b)

	// slot is reused without disturbing the other handle
	c := &object{name: "c", log: &log}
	hc, _ := eng.Add(c)
	test.ExpectEquality(t, hc, ha)
	test.ExpectEquality(t, eng.Object(hb).(*object), b)

	test.DemandSuccess(t, eng.Run(context.Background()))
	test.ExpectEquality(t, a.updates, 0)
	test.ExpectEquality(t, b.updates, 3)
	test.ExpectEquality(t, c.updates, 3)
	test.ExpectEquality(t, strings.Join(log, ""), "bcbcbc")
	test.ExpectEquality(t, eng.Frame(), 3)
}

func TestElapsed(t *testing.T) {
	plt := &platform{}
	eng := engine.NewEngine(plt, nil)
	eng.FrameLimit = 5
	eng.Now = clock()

	var log []string
	o := &object{log: &log}
	_, _ = eng.Add(o)

	test.DemandSuccess(t, eng.Run(context.Background()))
	test.ExpectEquality(t, o.updates, 5)
	test.ExpectEquality(t, o.elapsed, 50*time.Millisecond)
}

func TestEvents(t *testing.T) {
	plt := &platform{events: []stamped{
		{frame: 1, ev: engine.Event{Kind: engine.EventResized, Size: image.Pt(100, 100)}},
		{frame: 2, ev: engine.Event{Kind: engine.EventFocusLost}},
		{frame: 4, ev: engine.Event{Kind: engine.EventFocusGained}},
		{frame: 4, ev: engine.Event{Kind: engine.EventDeviceAdded}},
		{frame: 6, ev: engine.Event{Kind: engine.EventQuit}},
	}}
	eng := engine.NewEngine(plt, nil)
	eng.Now = clock()

	var added int
	eng.Events.SetHandler(engine.EventDeviceAdded, func(_ engine.Event) {
		added++
	})

	test.DemandSuccess(t, eng.Run(context.Background()))

	// the quit event arrives at the start of frame 6 so six frames are
	// completed
	test.ExpectEquality(t, eng.Frame(), 6)
	test.ExpectEquality(t, plt.geometry, 1)
	test.ExpectEquality(t, added, 1)

	// focus was lost at frame 2. frames 3 and 4 waited for events. the wait
	// in frame 4 received the focus gained event and the device added event
	// was picked up by the poll in frame 5
	test.ExpectEquality(t, plt.waits, 2)
}

func TestContext(t *testing.T) {
	plt := &platform{}
	eng := engine.NewEngine(plt, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := eng.Run(ctx)
	test.ExpectEquality(t, err, context.Canceled)
	test.ExpectEquality(t, eng.Frame(), 0)
}

func TestInputTick(t *testing.T) {
	plt := &platform{}

	var kb inputtest.Keyboard
	in := input.NewManager(&kb)
	in.Bindings.BindKeyPair(input.KeyLeft, input.KeyRight, input.MainX, -1, 0, 1)

	var ticks int
	in.Dispatcher.OnAxis(input.MainX, func(_ float64) {
		ticks++
	})

	eng := engine.NewEngine(plt, in)
	eng.FrameLimit = 10
	test.DemandSuccess(t, eng.Run(context.Background()))
	test.ExpectEquality(t, ticks, 10)
	test.ExpectEquality(t, kb.Polls, 10)
}

func TestEventManager(t *testing.T) {
	plt := &platform{events: []stamped{
		{ev: engine.Event{Kind: engine.EventQuit}},
		{ev: engine.Event{Kind: engine.EventResized}},
		{ev: engine.Event{Kind: engine.EventQuit}},
	}}
	em := engine.NewEventManager(plt)

	var quits int
	em.SetHandler(engine.EventQuit, func(_ engine.Event) {
		quits++
	})

	// events without a handler are discarded
	test.ExpectEquality(t, em.PollAndHandle(), 3)
	test.ExpectEquality(t, quits, 2)
	test.ExpectEquality(t, em.PollAndHandle(), 0)

	plt.events = append(plt.events, stamped{ev: engine.Event{Kind: engine.EventQuit}})
	em.SetHandler(engine.EventQuit, nil)
	test.ExpectSuccess(t, em.WaitAndHandle(time.Millisecond))
	test.ExpectEquality(t, quits, 2)
	test.ExpectFailure(t, em.WaitAndHandle(time.Millisecond))
}

func TestTicks(t *testing.T) {
	tk := engine.NewTicks(clock())
	test.ExpectEquality(t, tk.Elapsed(), 10*time.Millisecond)
	test.ExpectEquality(t, tk.Lap(), 20*time.Millisecond)
	test.ExpectEquality(t, tk.Elapsed(), 10*time.Millisecond)
}
