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

package input

import (
	"math"

	"golang.org/x/image/math/f64"
)

// ShapeS16 converts a raw axis value into the value delivered to an axis
// handler.
type ShapeS16 func(raw int16) float64

// ShapeStick converts a pair of raw axis values into the value delivered to a
// radial handler.
type ShapeStick func(x, y int16) f64.Vec2

// DefaultDeadZone is the dead zone threshold used by an Aggregator unless
// otherwise specified. Raw axis values with an absolute value less than or
// equal to the threshold are ignored.
const DefaultDeadZone = 1000

// ScaleS16 maps the signed 16 bit range to approximately -1.0 to 1.0. The
// most negative raw value is clamped to exactly -1.0.
func ScaleS16(raw int16) float64 {
	return math.Max(float64(raw)/math.MaxInt16, -1.0)
}

// InvertS16 is the same as ScaleS16 but with the sign reversed.
func InvertS16(raw int16) float64 {
	return -ScaleS16(raw)
}

// ScaleTrigger maps a trigger axis to the range 0.0 to 1.0. Game controller
// triggers report only positive values. Negative values, as reported by some
// joysticks at rest, are clamped to zero.
func ScaleTrigger(raw int16) float64 {
	return math.Max(float64(raw)/math.MaxInt16, 0.0)
}

// ScaleStick applies ScaleS16 to both components.
func ScaleStick(x, y int16) f64.Vec2 {
	return f64.Vec2{ScaleS16(x), ScaleS16(y)}
}

// diagonal is the per-component magnitude of a unit vector at 45 degrees
var diagonal = math.Sqrt2 / 2

// cross returns the normalised direction for four directional inputs. The
// result has a magnitude of one or is the zero vector. Opposing directions
// cancel each other out.
func cross(up, down, left, right bool) f64.Vec2 {
	var v f64.Vec2
	if left {
		v[0]--
	}
	if right {
		v[0]++
	}
	if up {
		v[1]--
	}
	if down {
		v[1]++
	}
	if v[0] != 0 && v[1] != 0 {
		v[0] *= diagonal
		v[1] *= diagonal
	}
	return v
}

// withinDeadZone returns true if the absolute raw value is not greater than
// the threshold
func withinDeadZone(raw int16, threshold int) bool {
	v := int(raw)
	if v < 0 {
		v = -v
	}
	return v <= threshold
}
