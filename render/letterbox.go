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

import "image"

// AspectFor returns the display aspect ratio (width divided by height) of a
// render target of the given size. The pixelAspect value is the aspect ratio
// of a single pixel. If pixelAspect is not greater than zero the pixels are
// assumed to be square.
func AspectFor(width int, height int, pixelAspect float64) float64 {
	if height <= 0 {
		return 1.0
	}
	if pixelAspect <= 0 {
		pixelAspect = 1.0
	}
	return float64(width) * pixelAspect / float64(height)
}

// Letterbox returns the rectangle inside an area of the given size that
// preserves the aspect ratio. The rectangle is centred in the area. If the
// area is wider than the aspect ratio then the rectangle is pillar boxed,
// otherwise it is letter boxed.
func Letterbox(area image.Point, aspect float64) image.Rectangle {
	if aspect <= 0 || area.X <= 0 || area.Y <= 0 {
		return image.Rectangle{Max: area}
	}

	w := area.X
	h := int(float64(area.X) / aspect)

	var offset image.Point

	if h > area.Y {
		w = int(float64(area.Y) * aspect)
		h = area.Y
		offset.X = (area.X - w) / 2
	} else {
		offset.Y = (area.Y - h) / 2
	}

	return image.Rect(0, 0, w, h).Add(offset)
}

// ToTarget converts a point in the window to a point in the render target. The
// dest rectangle is the letterbox as returned by Letterbox(). Returns false if
// the point is outside the letterbox.
func ToTarget(p image.Point, dest image.Rectangle, target image.Point) (image.Point, bool) {
	if !p.In(dest) || dest.Dx() == 0 || dest.Dy() == 0 {
		return image.Point{}, false
	}
	p = p.Sub(dest.Min)
	return image.Point{
		X: p.X * target.X / dest.Dx(),
		Y: p.Y * target.Y / dest.Dy(),
	}, true
}
