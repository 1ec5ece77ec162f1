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

package random

import (
	"math/rand"
	"time"
)

// the base seed for all random numbers
var baseSeed int64

// initialise base seed
func init() {
	baseSeed = int64(time.Now().Nanosecond())
}

// Clock is implemented by any type that can report the current frame number.
type Clock interface {
	Frame() int
}

// Random is a random number generator that is sensitive to the frame number
// of the game loop. Two Random instances with the same clock, and with
// ZeroSeed set, produce the same numbers for the same frame.
type Random struct {
	clock Clock

	// use zero seed rather than the random base seed. this is only really
	// useful for tests where random numbers must be predictable
	ZeroSeed bool
}

// NewRandom is the preferred method of initialisation for the Random type. A
// nil clock is the same as a clock that is always at frame zero.
func NewRandom(clock Clock) *Random {
	return &Random{
		clock: clock,
	}
}

func (rnd *Random) frame() int64 {
	if rnd.clock == nil {
		return 0
	}
	return int64(rnd.clock.Frame())
}

// Rand returns a new generator from the standard library seeded according to
// the current frame.
func (rnd *Random) Rand() *rand.Rand {
	if rnd.ZeroSeed {
		return rand.New(rand.NewSource(rnd.frame()))
	}
	return rand.New(rand.NewSource(baseSeed + rnd.frame()))
}

// Intn returns a random number in the range 0 to n-1. The number is the same
// for every call during the same frame.
func (rnd *Random) Intn(n int) int {
	return rnd.Rand().Intn(n)
}

// Float64 returns a random number in the range 0.0 to 1.0. The number is the
// same for every call during the same frame.
func (rnd *Random) Float64() float64 {
	return rnd.Rand().Float64()
}
