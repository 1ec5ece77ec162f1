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

package headless

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"time"

	"github.com/gogpu/gg"
	"github.com/resdl/resdl/digest"
	"github.com/resdl/resdl/engine"
	"github.com/resdl/resdl/logger"
	"github.com/resdl/resdl/render"
)

// Platform implements the engine.Platform and render.Surface interfaces.
type Platform struct {
	dc   *gg.Context
	size image.Point
	col  color.RGBA

	events chan engine.Event

	frame    int
	frameDir string

	// hash of every frame produced
	digest *digest.Video

	// paces frames to the nominal refresh rate. nil if not pacing
	pace *time.Ticker
}

// NewPlatform is the preferred method of initialisation for the Platform
// type. If frameDir is not empty then every frame is saved to the directory
// as a PNG file. If refreshRate is greater than zero then FinalizeFrame()
// waits so that frames are produced at that rate.
func NewPlatform(width int, height int, frameDir string, refreshRate int) (*Platform, error) {
	if frameDir != "" {
		err := os.MkdirAll(frameDir, 0o755)
		if err != nil {
			return nil, fmt.Errorf("headless: %w", err)
		}
	}

	plt := &Platform{
		dc:       gg.NewContext(width, height),
		size:     image.Pt(width, height),
		col:      render.Black,
		events:   make(chan engine.Event, 16),
		frameDir: frameDir,
		digest:   digest.NewVideo(),
	}

	if refreshRate > 0 {
		plt.pace = time.NewTicker(time.Second / time.Duration(refreshRate))
	}

	logger.Logf(logger.Allow, "headless", "render target %dx%d", width, height)

	return plt, nil
}

// Destroy releases the resources used by the platform.
func (plt *Platform) Destroy() error {
	if plt.pace != nil {
		plt.pace.Stop()
	}
	return plt.dc.Close()
}

// Post an event to the platform. The event is returned by a subsequent call
// to PollEvent() or WaitEvent(). Post is safe to call from any goroutine.
func (plt *Platform) Post(ev engine.Event) {
	select {
	case plt.events <- ev:
	default:
		logger.Logf(logger.Allow, "headless", "dropped %s event", ev.Kind)
	}
}

// PollEvent implements the engine.EventSource interface.
func (plt *Platform) PollEvent() (engine.Event, bool) {
	select {
	case ev := <-plt.events:
		return ev, true
	default:
		return engine.Event{}, false
	}
}

// WaitEvent implements the engine.EventSource interface.
func (plt *Platform) WaitEvent(timeout time.Duration) (engine.Event, bool) {
	select {
	case ev := <-plt.events:
		return ev, true
	case <-time.After(timeout):
		return engine.Event{}, false
	}
}

// UpdateGeometry implements the engine.Platform interface. The render target
// of a headless platform never changes size.
func (plt *Platform) UpdateGeometry() {
}

// PrepareFrame implements the engine.Platform interface.
func (plt *Platform) PrepareFrame() render.Surface {
	return plt
}

// FinalizeFrame implements the engine.Platform interface.
func (plt *Platform) FinalizeFrame() error {
	plt.digest.Frame(plt.dc.Image())

	if plt.frameDir != "" {
		fn := filepath.Join(plt.frameDir, fmt.Sprintf("frame%06d.png", plt.frame))
		err := plt.dc.SavePNG(fn)
		if err != nil {
			return fmt.Errorf("headless: %w", err)
		}
	}
	plt.frame++

	if plt.pace != nil {
		<-plt.pace.C
	}

	return nil
}

// Digest returns the hash of every frame produced so far.
func (plt *Platform) Digest() digest.Digest {
	return plt.digest
}

// Image returns the contents of the render target.
func (plt *Platform) Image() image.Image {
	return plt.dc.Image()
}

// Size implements the render.Surface interface.
func (plt *Platform) Size() image.Point {
	return plt.size
}

// SetColor implements the render.Surface interface.
func (plt *Platform) SetColor(c color.RGBA) {
	plt.col = c
	plt.dc.SetColor(c)
}

// Clear implements the render.Surface interface.
func (plt *Platform) Clear() {
	plt.dc.ClearWithColor(gg.FromColor(plt.col))
}

// outlines are offset by half a pixel so that they cover whole pixels
const centre = 0.5

// DrawRect implements the render.Surface interface.
func (plt *Platform) DrawRect(r image.Rectangle) {
	plt.dc.SetLineWidth(1)
	plt.dc.DrawRectangle(float64(r.Min.X)+centre, float64(r.Min.Y)+centre, float64(r.Dx()-1), float64(r.Dy()-1))
	plt.stroke()
}

// FillRect implements the render.Surface interface.
func (plt *Platform) FillRect(r image.Rectangle) {
	plt.dc.DrawRectangle(float64(r.Min.X), float64(r.Min.Y), float64(r.Dx()), float64(r.Dy()))
	if err := plt.dc.Fill(); err != nil {
		logger.Logf(logger.Allow, "headless", "fill: %v", err)
	}
}

// DrawLine implements the render.Surface interface.
func (plt *Platform) DrawLine(from image.Point, to image.Point) {
	plt.dc.SetLineWidth(1)
	plt.dc.DrawLine(float64(from.X)+centre, float64(from.Y)+centre, float64(to.X)+centre, float64(to.Y)+centre)
	plt.stroke()
}

// DrawPoints implements the render.Surface interface.
func (plt *Platform) DrawPoints(points []image.Point) {
	for _, p := range points {
		plt.dc.DrawRectangle(float64(p.X), float64(p.Y), 1, 1)
	}
	if len(points) > 0 {
		if err := plt.dc.Fill(); err != nil {
			logger.Logf(logger.Allow, "headless", "fill: %v", err)
		}
	}
}

func (plt *Platform) stroke() {
	if err := plt.dc.Stroke(); err != nil {
		logger.Logf(logger.Allow, "headless", "stroke: %v", err)
	}
}
