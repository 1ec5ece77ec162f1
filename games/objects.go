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
	"image/color"
	"time"

	"github.com/resdl/resdl/render"
	"golang.org/x/image/math/f64"
)

// ClearScreen fills the render target with a single colour. It is drawn
// before every other object.
type ClearScreen struct {
	Color color.RGBA
}

// Order implements the engine.Orderer interface.
func (cls *ClearScreen) Order() int {
	return -1
}

// Render implements the engine.Renderer interface.
func (cls *ClearScreen) Render(surface render.Surface) {
	surface.SetColor(cls.Color)
	surface.Clear()
}

// Sprite is an outlined rectangle that moves at a constant speed.
type Sprite struct {
	Size  image.Point
	Color color.RGBA

	// pixels per millisecond
	Speed f64.Vec2

	// offset from the top-left corner of the render target
	Position f64.Vec2
}

// NewSprite is the preferred method of initialisation for the Sprite type.
func NewSprite(w int, h int) *Sprite {
	return &Sprite{
		Size:  image.Pt(w, h),
		Color: render.White,
	}
}

// Update implements the engine.Updater interface.
func (spr *Sprite) Update(elapsed time.Duration) {
	ms := float64(elapsed) / float64(time.Millisecond)
	spr.Position[0] += spr.Speed[0] * ms
	spr.Position[1] += spr.Speed[1] * ms
}

// Bounds returns the area covered by the sprite.
func (spr *Sprite) Bounds() image.Rectangle {
	p := image.Pt(int(spr.Position[0]), int(spr.Position[1]))
	return image.Rectangle{Min: p, Max: p.Add(spr.Size)}
}

// Render implements the engine.Renderer interface.
func (spr *Sprite) Render(surface render.Surface) {
	surface.SetColor(spr.Color)
	surface.DrawRect(spr.Bounds())
}
