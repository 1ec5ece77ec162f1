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

package render

import (
	"image"
	"image/color"
)

// Surface is the interface to the render target. Coordinates are in pixels of
// the render target with the origin at the top left.
type Surface interface {
	// the size of the render target
	Size() image.Point

	// the colour used by subsequent drawing functions
	SetColor(c color.RGBA)

	// fill the entire render target with the current colour
	Clear()

	DrawRect(r image.Rectangle)
	FillRect(r image.Rectangle)
	DrawLine(from image.Point, to image.Point)
	DrawPoints(points []image.Point)
}

// List of named colours.
var (
	Black     = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	White     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Grey      = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	DarkGrey  = color.RGBA{R: 64, G: 64, B: 64, A: 255}
	LightGrey = color.RGBA{R: 192, G: 192, B: 192, A: 255}
	Magenta   = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	Cyan      = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	LightBlue = color.RGBA{R: 173, G: 216, B: 230, A: 255}
)
