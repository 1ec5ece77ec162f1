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

	"github.com/resdl/resdl/random"
)

// PointDistribution is a fixed set of points distributed uniformly over the
// unit square. It is used to scatter background objects over a repeating
// field.
type PointDistribution struct {
	points [][2]float64
}

// NewPointDistribution is the preferred method of initialisation for the
// PointDistribution type.
func NewPointDistribution(count int, rnd *random.Random) *PointDistribution {
	r := rnd.Rand()
	dist := &PointDistribution{
		points: make([][2]float64, count),
	}
	for i := range dist.points {
		dist.points[i] = [2]float64{r.Float64(), r.Float64()}
	}
	return dist
}

// Len returns the number of points in the distribution.
func (dist *PointDistribution) Len() int {
	return len(dist.points)
}

// MapToWindow scales the distribution to a square field of the given size and
// returns the points that are visible through a window of the given size. The
// field repeats in both directions. The origin is the position of the window
// in the field and can be any value.
func (dist *PointDistribution) MapToWindow(scale int, origin image.Point, window image.Point) []image.Point {
	if scale <= 0 {
		return nil
	}

	// origin normalised to the extent of the field
	origin.X = wrap(origin.X, scale)
	origin.Y = wrap(origin.Y, scale)

	result := make([]image.Point, 0, len(dist.points))
	for _, p := range dist.points {
		q := image.Point{
			X: wrap(int(p[0]*float64(scale))-origin.X, scale),
			Y: wrap(int(p[1]*float64(scale))-origin.Y, scale),
		}
		if q.X < window.X && q.Y < window.Y {
			result = append(result, q)
		}
	}
	return result
}

// wrap v to the range 0 to n-1
func wrap(v int, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}
