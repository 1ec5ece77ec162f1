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


package games

import (
	"image"
	"math"
	"time"

	"github.com/resdl/resdl/curated"
	"github.com/resdl/resdl/engine"
	"github.com/resdl/resdl/input"
	"github.com/resdl/resdl/profile"
	"github.com/resdl/resdl/random"
	"github.com/resdl/resdl/render"
	"golang.org/x/image/math/f64"
)

// physics of the goose. applied once per frame
const (
	gooseStep     = 0.1
	gooseDamping  = 0.98
	gooseStopped  = 0.1
	gooseModifier = 5
)

// number of clouds in each repetition of the cloud field
const gooseClouds = 300

var cloudSize = image.Pt(6, 3)

// Goose is a goose flying over parallax clouds. The goose accelerates with the
// MainX and MainY axes and Aux0 multiplies the acceleration.
type Goose struct {
	Position f64.Vec2
	Velocity f64.Vec2

	// size of the goose in pixels
	Size image.Point

	mod    float64
	clouds *render.PointDistribution
}

// NewGoose is the preferred method of initialisation for the Goose type.
func NewGoose(eng *engine.Engine, rnd *random.Random) (*Goose, error) {
	if eng.Input == nil {
		return nil, curated.Errorf(NoInput)
	}

	g := &Goose{
		Size:   image.Pt(16, 10),
		clouds: render.NewPointDistribution(gooseClouds, rnd),
	}

	dsp := eng.Input.Dispatcher
	dsp.SetAxisOffValue(input.Aux0, 0)
	dsp.OnAxis(input.Aux0, func(v float64) {
		g.mod = gooseModifier * v
	})
	dsp.OnAxis(input.MainX, func(v float64) {
		g.Velocity[0] += v + g.mod*v
	})
	dsp.OnAxis(input.MainY, func(v float64) {
		g.Velocity[1] += v + g.mod*v
	})

	if _, err := eng.Add(g); err != nil {
		return nil, err
	}

	return g, nil
}

// Update implements the engine.Updater interface. The goose moves by the same
// amount every frame regardless of the elapsed time.
func (g *Goose) Update(_ time.Duration) {
	for i := range g.Position {
		g.Position[i] += g.Velocity[i] * gooseStep
		g.Velocity[i] *= gooseDamping
		if math.Abs(g.Velocity[i]) < gooseStopped {
			g.Velocity[i] = 0
		}
	}
}

// Heading returns the direction of travel in degrees.
func (g *Goose) Heading() float64 {
	return math.Atan2(g.Velocity[1], g.Velocity[0]) * 180 / math.Pi
}

// Bounds returns the area covered by the goose on a surface of the given
// size. The goose is drawn in the centre of the surface, pulled in the
// direction of travel.
func (g *Goose) Bounds(size image.Point) image.Rectangle {
	p := image.Pt(
		int(float64(size.X-g.Size.X)/2+g.Velocity[0]),
		int(float64(size.Y-g.Size.Y)/2+g.Velocity[1]),
	)
	return image.Rectangle{Min: p, Max: p.Add(g.Size)}
}

func (g *Goose) drawClouds(surface render.Surface, factor float64) {
	size := surface.Size()
	origin := image.Pt(int(g.Position[0]*factor), int(g.Position[1]*factor))
	for _, p := range g.clouds.MapToWindow(size.X*int(factor), origin, size) {
		surface.FillRect(image.Rectangle{Min: p, Max: p.Add(cloudSize)})
	}
}

// Render implements the engine.Renderer interface. The goose flies between
// two layers of clouds.
func (g *Goose) Render(surface render.Surface) {
	surface.SetColor(render.LightBlue)
	surface.Clear()

	surface.SetColor(render.LightGrey)
	g.drawClouds(surface, 2)

	r := g.Bounds(surface.Size())
	surface.SetColor(render.White)
	surface.FillRect(r)
	surface.SetColor(render.DarkGrey)
	surface.DrawRect(r)

	// beak points in the direction of travel
	if g.Velocity != (f64.Vec2{}) {
		c := r.Min.Add(r.Size().Div(2))
		a := g.Heading() * math.Pi / 180
		l := float64(g.Size.X)
		beak := c.Add(image.Pt(int(math.Cos(a)*l), int(math.Sin(a)*l)))
		surface.DrawLine(c, beak)
	}

	surface.SetColor(render.White)
	g.drawClouds(surface, 3)
}

// Profile implements the Game interface.
func (g *Goose) Profile() *profile.Profile {
	return &profile.Profile{
		Keyboard: profile.Keyboard{
			Keys: []profile.Key{
				{Key: "Left", Axis: "MainX", Value: -1},
				{Key: "Right", Axis: "MainX", Value: 1},
				{Key: "Up", Axis: "MainY", Value: -1},
				{Key: "Down", Axis: "MainY", Value: 1},
				{Key: "A", Axis: "MainX", Value: -1},
				{Key: "D", Axis: "MainX", Value: 1},
				{Key: "W", Axis: "MainY", Value: -1},
				{Key: "S", Axis: "MainY", Value: 1},
				{Key: "LShift", Axis: "Aux0", Value: 1},
				{Key: "RShift", Axis: "Aux0", Value: 1},
			},
		},
		Controller: profile.Device{
			Axes: []profile.Axis{
				{Axis: input.ControllerLeftX, To: "MainX"},
				{Axis: input.ControllerLeftY, To: "MainY"},
				{Axis: input.ControllerTriggerRight, To: "Aux0", Shape: "trigger"},
			},
		},
		Joystick: profile.Device{
			Axes: []profile.Axis{
				{Axis: 0, To: "MainX"},
				{Axis: 1, To: "MainY"},
			},
		},
	}
}
