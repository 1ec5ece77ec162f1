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

package sdlwindow

import (
	"fmt"
	"image"
	"image/color"
	"runtime"
	"time"

	"github.com/resdl/resdl/engine"
	"github.com/resdl/resdl/logger"
	"github.com/resdl/resdl/render"
	"github.com/veandco/go-sdl2/sdl"
)

// Window implements the engine.Platform and render.Surface interfaces.
type Window struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	target   *sdl.Texture

	targetSize image.Point
	aspect     float64

	// area of the window the target is copied to
	dest sdl.Rect
}

// NewWindow is the preferred method of initialisation for the Window type.
// The width and height is the size of the render target. The window is
// created at the size of the render target multiplied by the scale.
//
// SDL is initialised by this function. Destroy() should be called when the
// window is no longer required.
func NewWindow(title string, width int, height int, pixelAspect float64, scale int) (*Window, error) {
	// the SDL package calls LockOSThread() but we call it here too. it can't
	// hurt and we never unlock it in any case
	runtime.LockOSThread()

	err := sdl.Init(sdl.INIT_EVERYTHING)
	if err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}

	var sdlVersion sdl.Version
	sdl.VERSION(&sdlVersion)
	logger.Logf(logger.Allow, "sdl", "version %d.%d.%d", sdlVersion.Major, sdlVersion.Minor, sdlVersion.Patch)

	win := &Window{
		targetSize: image.Pt(width, height),
		aspect:     render.AspectFor(width, height, pixelAspect),
	}

	winW := int32(float64(width*scale) * pixelAspect)
	if pixelAspect <= 0 {
		winW = int32(width * scale)
	}

	win.window, err = sdl.CreateWindow(title,
		sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		winW, int32(height*scale),
		sdl.WINDOW_ALLOW_HIGHDPI|sdl.WINDOW_RESIZABLE)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("sdl: %w", err)
	}

	win.renderer, err = sdl.CreateRenderer(win.window, -1,
		sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC|sdl.RENDERER_TARGETTEXTURE)
	if err != nil {
		_ = win.Destroy()
		return nil, fmt.Errorf("sdl: %w", err)
	}

	win.target, err = win.renderer.CreateTexture(sdl.PIXELFORMAT_RGBA8888, sdl.TEXTUREACCESS_TARGET,
		int32(width), int32(height))
	if err != nil {
		_ = win.Destroy()
		return nil, fmt.Errorf("sdl: %w", err)
	}

	win.UpdateGeometry()

	return win, nil
}

// Destroy cleans up the resources. Every resource is released even if an
// earlier one fails to be destroyed. The first error is returned.
func (win *Window) Destroy() error {
	err := teardown(
		func() error {
			if win.target == nil {
				return nil
			}
			t := win.target
			win.target = nil
			return t.Destroy()
		},
		func() error {
			if win.renderer == nil {
				return nil
			}
			r := win.renderer
			win.renderer = nil
			return r.Destroy()
		},
		func() error {
			if win.window == nil {
				return nil
			}
			w := win.window
			win.window = nil
			return w.Destroy()
		},
	)
	sdl.Quit()
	return err
}

// SetTitle changes the title of the window.
func (win *Window) SetTitle(title string) {
	win.window.SetTitle(title)
}

// UpdateGeometry implements the engine.Platform interface.
func (win *Window) UpdateGeometry() {
	w, h, err := win.renderer.GetOutputSize()
	if err != nil {
		logger.Logf(logger.Allow, "sdl", "output size: %v", err)
		return
	}
	r := render.Letterbox(image.Pt(int(w), int(h)), win.aspect)
	win.dest = sdl.Rect{X: int32(r.Min.X), Y: int32(r.Min.Y), W: int32(r.Dx()), H: int32(r.Dy())}
}

// PrepareFrame implements the engine.Platform interface.
func (win *Window) PrepareFrame() render.Surface {
	err := win.renderer.SetRenderTarget(win.target)
	if err != nil {
		logger.Logf(logger.Allow, "sdl", "render target: %v", err)
	}
	return win
}

// FinalizeFrame implements the engine.Platform interface.
func (win *Window) FinalizeFrame() error {
	err := win.renderer.SetRenderTarget(nil)
	if err != nil {
		return fmt.Errorf("sdl: %w", err)
	}
	err = win.renderer.SetDrawColor(0, 0, 0, 255)
	if err != nil {
		return fmt.Errorf("sdl: %w", err)
	}
	err = win.renderer.Clear()
	if err != nil {
		return fmt.Errorf("sdl: %w", err)
	}
	err = win.renderer.Copy(win.target, nil, &win.dest)
	if err != nil {
		return fmt.Errorf("sdl: %w", err)
	}
	win.renderer.Present()
	return nil
}

// translate an SDL event. returns false if the event is of no interest to
// the engine
func translate(ev sdl.Event) (engine.Event, bool) {
	switch ev := ev.(type) {
	case *sdl.QuitEvent:
		return engine.Event{Kind: engine.EventQuit}, true
	case *sdl.WindowEvent:
		switch ev.Event {
		case sdl.WINDOWEVENT_FOCUS_LOST:
			return engine.Event{Kind: engine.EventFocusLost}, true
		case sdl.WINDOWEVENT_FOCUS_GAINED:
			return engine.Event{Kind: engine.EventFocusGained}, true
		case sdl.WINDOWEVENT_SIZE_CHANGED:
			return engine.Event{
				Kind: engine.EventResized,
				Size: image.Pt(int(ev.Data1), int(ev.Data2)),
			}, true
		}
	case *sdl.JoyDeviceAddedEvent:
		return engine.Event{Kind: engine.EventDeviceAdded}, true
	}
	return engine.Event{}, false
}

// PollEvent implements the engine.EventSource interface.
func (win *Window) PollEvent() (engine.Event, bool) {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		if e, ok := translate(ev); ok {
			return e, true
		}
	}
	return engine.Event{}, false
}

// WaitEvent implements the engine.EventSource interface.
func (win *Window) WaitEvent(timeout time.Duration) (engine.Event, bool) {
	ev := sdl.WaitEventTimeout(int(timeout.Milliseconds()))
	if ev == nil {
		return engine.Event{}, false
	}
	return translate(ev)
}

// Size implements the render.Surface interface.
func (win *Window) Size() image.Point {
	return win.targetSize
}

// SetColor implements the render.Surface interface.
func (win *Window) SetColor(c color.RGBA) {
	logError("set color", win.renderer.SetDrawColor(c.R, c.G, c.B, c.A))
}

// Clear implements the render.Surface interface.
func (win *Window) Clear() {
	logError("clear", win.renderer.Clear())
}

func toRect(r image.Rectangle) *sdl.Rect {
	return &sdl.Rect{X: int32(r.Min.X), Y: int32(r.Min.Y), W: int32(r.Dx()), H: int32(r.Dy())}
}

// DrawRect implements the render.Surface interface.
func (win *Window) DrawRect(r image.Rectangle) {
	logError("draw rect", win.renderer.DrawRect(toRect(r)))
}

// FillRect implements the render.Surface interface.
func (win *Window) FillRect(r image.Rectangle) {
	logError("fill rect", win.renderer.FillRect(toRect(r)))
}

// DrawLine implements the render.Surface interface.
func (win *Window) DrawLine(from image.Point, to image.Point) {
	logError("draw line", win.renderer.DrawLine(int32(from.X), int32(from.Y), int32(to.X), int32(to.Y)))
}

// DrawPoints implements the render.Surface interface.
func (win *Window) DrawPoints(points []image.Point) {
	if len(points) == 0 {
		return
	}
	pts := make([]sdl.Point, len(points))
	for i, p := range points {
		pts[i] = sdl.Point{X: int32(p.X), Y: int32(p.Y)}
	}
	logError("draw points", win.renderer.DrawPoints(pts))
}
